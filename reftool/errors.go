package reftool

import "errors"

// Sentinel errors for reftool package operations.
var (
	// ErrMalformedHeader indicates a file's first line did not parse as two
	// whitespace-separated non-negative integers. ReadMatrix also returns it
	// for a data-row entry that does not parse as an integer.
	ErrMalformedHeader = errors.New("reftool: malformed dimension header")

	// ErrTruncatedMatrix indicates a file's header promised more rows than
	// the file actually contains.
	ErrTruncatedMatrix = errors.New("reftool: truncated matrix, fewer rows than header declares")

	// ErrRowLengthMismatch indicates a data row's column count disagrees
	// with the header, or with an earlier row when writing.
	ErrRowLengthMismatch = errors.New("reftool: row length disagrees with header")

	// ErrNotAVector indicates ReadVector was used against a file whose
	// header declares more than one row.
	ErrNotAVector = errors.New("reftool: expected a single-row matrix")

	// ErrUnknownExtension indicates Path or Clean was asked about an
	// extension outside the known p.* set.
	ErrUnknownExtension = errors.New("reftool: unknown file extension")
)
