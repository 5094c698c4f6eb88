package projectlift

import "errors"

// Sentinel errors for projectlift package operations.
var (
	// ErrNilInstance indicates New was called with a nil working instance.
	ErrNilInstance = errors.New("projectlift: nil working instance")

	// ErrNilOracle indicates New was called without an LPOracle or HermiteOracle.
	ErrNilOracle = errors.New("projectlift: nil oracle")

	// ErrNoUnliftedVariable indicates pickLiftVariable was called with an
	// empty unlifted set.
	ErrNoUnliftedVariable = errors.New("projectlift: no unlifted variable remains")

	// ErrIndexTranslation indicates relaxIndex's one-hot round trip lost
	// its single nonzero coordinate, which should be unreachable given a
	// well-formed Instance permutation.
	ErrIndexTranslation = errors.New("projectlift: variable index translation failed")
)
