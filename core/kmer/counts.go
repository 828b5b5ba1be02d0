package kmer

import "math"

// Size returns A^K, the number of distinct k-mers.
func Size(a, k int) (int, error) {
	if a < 1 {
		return 0, ErrInvalidAlphabetSize
	}
	if k < 1 {
		return 0, ErrInvalidK
	}
	n := 1
	for i := 0; i < k; i++ {
		if n > math.MaxInt/a {
			return 0, ErrSizeOverflow
		}
		n *= a
	}
	return n, nil
}

// Index computes Σ code[i]·A^(K-1-i) for one full k-mer, K = len(codes).
func Index(codes []uint8, a int) (uint64, error) {
	if len(codes) == 0 {
		return 0, ErrInvalidK
	}
	if _, err := Size(a, len(codes)); err != nil {
		return 0, err
	}
	var idx uint64
	for i, c := range codes {
		if int(c) >= a {
			return 0, &SymbolRangeError{Code: c, A: a, Pos: i}
		}
		idx = idx*uint64(a) + uint64(c)
	}
	return idx, nil
}

// Decode is the inverse of Index: the K base-A digits of idx, most
// significant first.
func Decode(idx uint64, a, k int) ([]uint8, error) {
	n, err := Size(a, k)
	if err != nil {
		return nil, err
	}
	if idx >= uint64(n) {
		return nil, &IndexRangeError{Index: idx, Size: n}
	}
	out := make([]uint8, k)
	for i := k - 1; i >= 0; i-- {
		out[i] = uint8(idx % uint64(a))
		idx /= uint64(a)
	}
	return out, nil
}

// Counts is a k-mer count vector: a Store of length A^K tagged with A and K.
// It owns its Store unless it is a Matrix view, in which case it shares the
// matrix backing slice.
type Counts[T Integer] struct {
	a, k  int
	store Store[T]
}

// New allocates zeroed counts of length A^K with alloc (Zeros when nil).
func New[T Integer](a, k int, alloc Allocator[T]) (*Counts[T], error) {
	n, err := Size(a, k)
	if err != nil {
		return nil, err
	}
	if alloc == nil {
		alloc = Zeros[T]
	}
	return Wrap(a, k, alloc(n))
}

// Wrap ties an existing store to (A, K). The store length must be A^K.
func Wrap[T Integer](a, k int, store Store[T]) (*Counts[T], error) {
	n, err := Size(a, k)
	if err != nil {
		return nil, err
	}
	if store.Len() != n {
		return nil, &SizeMismatchError{A: a, K: k, Want: n, Got: store.Len()}
	}
	return &Counts[T]{a: a, k: k, store: store}, nil
}

func (c *Counts[T]) A() int { return c.a }
func (c *Counts[T]) K() int { return c.k }
func (c *Counts[T]) Len() int { return c.store.Len() }
func (c *Counts[T]) At(i int) T { return c.store.At(i) }
func (c *Counts[T]) Store() Store[T] { return c.store }

// Values copies the counts into a new slice.
func (c *Counts[T]) Values() []T {
	n := c.store.Len()
	out := make([]T, n)
	if d, ok := c.store.(*Dense[T]); ok {
		copy(out, d.data)
		return out
	}
	for i := 0; i < n; i++ {
		out[i] = c.store.At(i)
	}
	return out
}

// Reset zeroes every count.
func (c *Counts[T]) Reset() { c.store.Reset() }
