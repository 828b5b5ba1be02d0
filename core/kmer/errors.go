package kmer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned for k < 1.
	ErrInvalidK = errors.New("k-mer length must be >= 1")
	// ErrInvalidAlphabetSize is returned for A < 1.
	ErrInvalidAlphabetSize = errors.New("alphabet size must be >= 1")
	// ErrSizeOverflow is returned when A^K does not fit in an int.
	ErrSizeOverflow = errors.New("A^K overflows int")
)

// SizeMismatchError reports a container whose length is not A^K.
type SizeMismatchError struct {
	A, K int
	Want int // A^K, or -1 when A^K itself overflowed
	Got  int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("container length %d does not match %d^%d = %d", e.Got, e.A, e.K, e.Want)
}

// SymbolRangeError reports a symbol code outside [0, A).
type SymbolRangeError struct {
	Code uint8
	A    int
	Pos  int // 0-based position in the code stream
}

func (e *SymbolRangeError) Error() string {
	return fmt.Sprintf("symbol code %d at position %d outside alphabet of size %d", e.Code, e.Pos+1, e.A)
}

// IndexRangeError reports a k-mer index outside [0, A^K).
type IndexRangeError struct {
	Index uint64
	Size  int
}

func (e *IndexRangeError) Error() string {
	return fmt.Sprintf("k-mer index %d outside [0, %d)", e.Index, e.Size)
}

// ViewError reports which vector of a Matrix failed during CountEach.
type ViewError struct {
	Vector int
	Err    error
}

func (e *ViewError) Error() string { return fmt.Sprintf("vector %d: %v", e.Vector, e.Err) }

func (e *ViewError) Unwrap() error { return e.Err }
