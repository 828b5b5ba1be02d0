package kmer

import "fmt"

// Equal compares two stores element-wise, regardless of backing type.
func Equal[T Integer](a, b Store[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	sa, aSparse := a.(*Sparse[T])
	sb, bSparse := b.(*Sparse[T])
	if aSparse && bSparse {
		if len(sa.nz) != len(sb.nz) {
			return false
		}
		for i, v := range sa.nz {
			if sb.nz[i] != v {
				return false
			}
		}
		return true
	}
	for i, n := 0, a.Len(); i < n; i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}

// Sum adds up all counts. Counts are non-negative, so uint64 holds the total
// of any store whose element type does.
func Sum[T Integer](s Store[T]) uint64 {
	var total uint64
	if sp, ok := s.(*Sparse[T]); ok {
		for _, v := range sp.nz {
			total += uint64(v)
		}
		return total
	}
	for i, n := 0, s.Len(); i < n; i++ {
		total += uint64(s.At(i))
	}
	return total
}

// Dot is the dot product of two equal-length stores, accumulated in float64
// so narrow element types do not overflow.
func Dot[T Integer](a, b Store[T]) float64 {
	mustSameLen(a, b)
	var d float64
	for i, n := 0, a.Len(); i < n; i++ {
		d += float64(a.At(i)) * float64(b.At(i))
	}
	return d
}

// SqEuclidean is the squared Euclidean distance between two equal-length
// stores. It approximates edit distance between the source sequences.
func SqEuclidean[T Integer](a, b Store[T]) float64 {
	mustSameLen(a, b)
	var d float64
	for i, n := 0, a.Len(); i < n; i++ {
		x := float64(a.At(i)) - float64(b.At(i))
		d += x * x
	}
	return d
}

func mustSameLen[T Integer](a, b Store[T]) {
	if a.Len() != b.Len() {
		panic(fmt.Sprintf("kmer: store lengths differ (%d vs %d)", a.Len(), b.Len()))
	}
}
