package kmer

import "sort"

// Integer is the set of count element types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Store is a fixed-length numeric array supporting indexed increment.
// Overflow of T is not guarded.
type Store[T Integer] interface {
	Len() int
	At(i int) T
	Set(i int, v T)
	Inc(i int)
	Reset()
}

// Allocator returns a zero-initialized Store of length n.
type Allocator[T Integer] func(n int) Store[T]

// Zeros allocates a Dense store.
func Zeros[T Integer](n int) Store[T] { return NewDense[T](n) }

// SparseZeros allocates a Sparse store.
func SparseZeros[T Integer](n int) Store[T] { return NewSparse[T](n) }

/* --------------------------------- Dense --------------------------------- */

// Dense is a contiguous slice of counts.
type Dense[T Integer] struct {
	data []T
}

func NewDense[T Integer](n int) *Dense[T] { return &Dense[T]{data: make([]T, n)} }

// DenseOf wraps data without copying.
func DenseOf[T Integer](data []T) *Dense[T] { return &Dense[T]{data: data} }

func (d *Dense[T]) Len() int { return len(d.data) }
func (d *Dense[T]) At(i int) T { return d.data[i] }
func (d *Dense[T]) Set(i int, v T) { d.data[i] = v }
func (d *Dense[T]) Inc(i int) { d.data[i]++ }
func (d *Dense[T]) Values() []T { return d.data }
func (d *Dense[T]) Reset() { clear(d.data) }

/* --------------------------------- Sparse -------------------------------- */

// Sparse holds only nonzero counts. Useful when A^K dwarfs the number of
// distinct k-mers actually present.
type Sparse[T Integer] struct {
	n  int
	nz map[int]T
}

func NewSparse[T Integer](n int) *Sparse[T] {
	return &Sparse[T]{n: n, nz: make(map[int]T)}
}

func (s *Sparse[T]) Len() int { return s.n }

func (s *Sparse[T]) At(i int) T {
	s.check(i)
	return s.nz[i]
}

func (s *Sparse[T]) Set(i int, v T) {
	s.check(i)
	if v == 0 {
		delete(s.nz, i)
		return
	}
	s.nz[i] = v
}

func (s *Sparse[T]) Inc(i int) {
	s.check(i)
	v := s.nz[i] + 1
	if v == 0 { // wrapped
		delete(s.nz, i)
		return
	}
	s.nz[i] = v
}

func (s *Sparse[T]) Reset() { clear(s.nz) }

// NNZ is the number of stored (nonzero) entries.
func (s *Sparse[T]) NNZ() int { return len(s.nz) }

// NonZero returns the indices of nonzero entries in ascending order.
func (s *Sparse[T]) NonZero() []int {
	idx := make([]int, 0, len(s.nz))
	for i := range s.nz {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}

func (s *Sparse[T]) check(i int) {
	if i < 0 || i >= s.n {
		panic(&IndexRangeError{Index: uint64(i), Size: s.n})
	}
}

/* ------------------------------ strided view ----------------------------- */

// strided is a non-owning view of every stride-th element of a backing slice.
type strided[T Integer] struct {
	data   []T
	off    int
	stride int
	n      int
}

func (v *strided[T]) Len() int { return v.n }
func (v *strided[T]) At(i int) T { return v.data[v.pos(i)] }
func (v *strided[T]) Set(i int, x T) { v.data[v.pos(i)] = x }
func (v *strided[T]) Inc(i int) { v.data[v.pos(i)]++ }

func (v *strided[T]) Reset() {
	for i := 0; i < v.n; i++ {
		v.data[v.off+i*v.stride] = 0
	}
}

func (v *strided[T]) pos(i int) int {
	if i < 0 || i >= v.n {
		panic(&IndexRangeError{Index: uint64(i), Size: v.n})
	}
	return v.off + i*v.stride
}

// NonZeroIndices lists indices with a nonzero count, using the sparse index
// when the store keeps one.
func NonZeroIndices[T Integer](s Store[T]) []int {
	if sp, ok := s.(*Sparse[T]); ok {
		return sp.NonZero()
	}
	var out []int
	for i, n := 0, s.Len(); i < n; i++ {
		if s.At(i) != 0 {
			out = append(out, i)
		}
	}
	return out
}
