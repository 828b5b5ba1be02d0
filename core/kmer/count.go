package kmer

import "kmervec-core/alphabet"

// Count slides a window of k codes over codes (step 1, overlapping) and
// increments c at each window's index. With reset, c is zeroed first so it
// reflects only this call. A stream shorter than k adds nothing.
//
// The window index is rolled forward as
//
//	next = (prev mod A^(K-1))·A + code
//
// which equals (prev·A) mod A^K without the intermediate overflow.
//
// Counting is not transactional: on error, windows before the failing code
// have already been counted.
func Count[T Integer](c *Counts[T], codes alphabet.Codes, k int, reset bool) (*Counts[T], error) {
	size, err := Size(c.a, k)
	if err != nil {
		if err == ErrSizeOverflow {
			return c, &SizeMismatchError{A: c.a, K: k, Want: -1, Got: c.store.Len()}
		}
		return c, err
	}
	if c.store.Len() != size {
		return c, &SizeMismatchError{A: c.a, K: k, Want: size, Got: c.store.Len()}
	}
	if reset {
		c.store.Reset()
	}

	var (
		a    = uint64(c.a)
		high = uint64(size) / a // A^(K-1)
		idx  uint64
		fill int // codes currently in the window, capped at k
		pos  int
	)
	for {
		code, ok, err := codes.Next()
		if err != nil {
			return c, err
		}
		if !ok {
			break
		}
		if uint64(code) >= a {
			return c, &SymbolRangeError{Code: code, A: c.a, Pos: pos}
		}
		pos++
		idx = (idx%high)*a + uint64(code)
		if fill < k {
			fill++
			if fill < k {
				continue
			}
		}
		c.store.Inc(int(idx))
	}
	return c, nil
}

// CountNew allocates zeroed counts of length A^K with alloc and counts codes
// into them.
func CountNew[T Integer](alloc Allocator[T], a int, codes alphabet.Codes, k int, reset bool) (*Counts[T], error) {
	c, err := New[T](a, k, alloc)
	if err != nil {
		return nil, err
	}
	return Count(c, codes, k, reset)
}

// CountSequence encodes seq with alpha and counts its k-mers into c
// (k = c.K()). alpha.Size() must equal c.A().
func CountSequence[T Integer](c *Counts[T], alpha *alphabet.Alphabet, seq []byte, reset bool) (*Counts[T], error) {
	if alpha.Size() != c.a {
		n, _ := Size(alpha.Size(), c.k)
		return c, &SizeMismatchError{A: alpha.Size(), K: c.k, Want: n, Got: c.store.Len()}
	}
	return Count(c, alpha.NewSymbols(seq), c.k, reset)
}

// CountIndices counts already-encoded k-mer indices, each in [0, A^K).
func CountIndices[T Integer](c *Counts[T], indices []uint64, reset bool) (*Counts[T], error) {
	n := c.store.Len()
	if reset {
		c.store.Reset()
	}
	for _, i := range indices {
		if i >= uint64(n) {
			return c, &IndexRangeError{Index: i, Size: n}
		}
		c.store.Inc(int(i))
	}
	return c, nil
}

// CountNewIndices allocates zeroed counts and counts indices into them.
func CountNewIndices[T Integer](alloc Allocator[T], a, k int, indices []uint64) (*Counts[T], error) {
	c, err := New[T](a, k, alloc)
	if err != nil {
		return nil, err
	}
	return CountIndices(c, indices, false)
}
