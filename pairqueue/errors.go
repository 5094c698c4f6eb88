package pairqueue

import "errors"

// ErrNegativeCount indicates Grew or Shrunk was called with a negative
// argument, which can never occur under a well-behaved BinomialSet.
var ErrNegativeCount = errors.New("pairqueue: negative count")
