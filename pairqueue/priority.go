package pairqueue

import "container/heap"

// ScoreFunc scores a candidate pair; lower scores are drawn first.
type ScoreFunc func(i, j int) float64

// ProductiveFunc classifies a pair as "likely productive" against a
// caller-held solution vector (spec.md §4.6's secondary ordering):
// productive pairs are always drawn before non-productive ones,
// regardless of score.
type ProductiveFunc func(i, j int) bool

type scoredPair struct {
	pair       Pair
	score      float64
	productive bool
}

type pairHeap []scoredPair

func (h pairHeap) Len() int { return len(h) }
func (h pairHeap) Less(a, b int) bool {
	if h[a].productive != h[b].productive {
		return h[a].productive
	}
	return h[a].score < h[b].score
}
func (h pairHeap) Swap(a, b int)      { h[a], h[b] = h[b], h[a] }
func (h *pairHeap) Push(x interface{}) { *h = append(*h, x.(scoredPair)) }
func (h *pairHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// PairPriority is a min-heap strategy keyed by a caller-supplied score,
// with pairs classified "likely productive" against a solution vector
// always drawn ahead of the rest (spec.md §4.6). New pairs (m, j), j < m,
// are pushed as soon as the basis grows to size m+1.
type PairPriority struct {
	n          int
	h          pairHeap
	score      ScoreFunc
	productive ProductiveFunc
}

// NewPairPriority returns an empty PairPriority strategy. score must be
// non-nil; productive may be nil (no productivity classification).
func NewPairPriority(score ScoreFunc, productive ProductiveFunc) *PairPriority {
	pp := &PairPriority{score: score, productive: productive}
	heap.Init(&pp.h)
	return pp
}

// NextPair implements Strategy.
func (pp *PairPriority) NextPair() (Pair, bool) {
	if pp.h.Len() == 0 {
		return Pair{}, false
	}
	item := heap.Pop(&pp.h).(scoredPair)
	return item.pair, true
}

// Grew implements Strategy.
func (pp *PairPriority) Grew(n int) error {
	if n < 0 {
		return ErrNegativeCount
	}
	m := n - 1
	for j := 0; j < m; j++ {
		entry := scoredPair{pair: Pair{I: m, J: j}, score: pp.score(m, j)}
		if pp.productive != nil {
			entry.productive = pp.productive(m, j)
		}
		heap.Push(&pp.h, entry)
	}
	pp.n = n
	return nil
}

// Shrunk implements Strategy. It drops any queued pair referencing an
// index that can no longer be valid under the shrunk basis size; see
// doc.go for why this is an accepted approximation rather than an exact
// remapping.
func (pp *PairPriority) Shrunk(r, k int) error {
	if r < 0 || k < 0 {
		return ErrNegativeCount
	}
	pp.n -= r
	kept := pp.h[:0]
	for _, e := range pp.h {
		if e.pair.I < pp.n && e.pair.J < pp.n {
			kept = append(kept, e)
		}
	}
	pp.h = kept
	heap.Init(&pp.h)
	return nil
}

type intHeap []int

func (h intHeap) Len() int            { return len(h) }
func (h intHeap) Less(a, b int) bool  { return h[a] < h[b] }
func (h intHeap) Swap(a, b int)       { h[a], h[b] = h[b], h[a] }
func (h *intHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *intHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// BatchPriority is a min-heap over i; when i is popped, pairs
// (i, 0..i-1) are emitted as a batch before the next i is considered
// (spec.md §4.6).
type BatchPriority struct {
	n      int
	h      intHeap
	curI   int
	curJ   int
	active bool
}

// NewBatchPriority returns an empty BatchPriority strategy.
func NewBatchPriority() *BatchPriority {
	bp := &BatchPriority{}
	heap.Init(&bp.h)
	return bp
}

// NextPair implements Strategy.
func (bp *BatchPriority) NextPair() (Pair, bool) {
	for {
		if bp.active && bp.curJ < bp.curI {
			p := Pair{I: bp.curI, J: bp.curJ}
			bp.curJ++
			if bp.curJ >= bp.curI {
				bp.active = false
			}
			return p, true
		}
		if bp.h.Len() == 0 {
			return Pair{}, false
		}
		i := heap.Pop(&bp.h).(int)
		bp.curI = i
		bp.curJ = 0
		bp.active = i > 0
		if !bp.active {
			continue
		}
	}
}

// Grew implements Strategy.
func (bp *BatchPriority) Grew(n int) error {
	if n < 0 {
		return ErrNegativeCount
	}
	heap.Push(&bp.h, n-1)
	bp.n = n
	return nil
}

// Shrunk implements Strategy; see PairPriority.Shrunk for the accepted
// approximation this relies on.
func (bp *BatchPriority) Shrunk(r, k int) error {
	if r < 0 || k < 0 {
		return ErrNegativeCount
	}
	bp.n -= r
	kept := bp.h[:0]
	for _, i := range bp.h {
		if i < bp.n {
			kept = append(kept, i)
		}
	}
	bp.h = kept
	heap.Init(&bp.h)
	if bp.curI >= bp.n {
		bp.active = false
	}
	return nil
}
