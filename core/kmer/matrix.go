package kmer

import (
	"context"
	"fmt"
	"sync"

	"kmervec-core/alphabet"
)

// Layout selects how a Matrix groups its count vectors.
type Layout int

const (
	// Columns stores each count vector as a column of an (A^K × N) matrix.
	// Storage is column-major, so a vector is one contiguous run and per-k-mer
	// increments touch adjacent memory.
	Columns Layout = iota
	// Rows stores each count vector as a row of an (N × A^K) matrix. A vector
	// is strided by N in the column-major backing slice.
	Rows
)

func (l Layout) String() string {
	switch l {
	case Columns:
		return "columns"
	case Rows:
		return "rows"
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// ParseLayout accepts "columns" or "rows".
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "columns", "cols", "col":
		return Columns, nil
	case "rows", "row":
		return Rows, nil
	}
	return 0, fmt.Errorf("invalid layout %q (want columns | rows)", s)
}

// Matrix owns a column-major backing slice holding N count vectors that share
// A and K. Views share its storage; they stay usable as long as anything
// references them, but are only meaningful while the matrix is in use.
type Matrix[T Integer] struct {
	a, k   int
	size   int // A^K
	n      int
	layout Layout
	data   []T
}

// NewMatrix allocates a zeroed matrix for n count vectors.
func NewMatrix[T Integer](a, k, n int, layout Layout) (*Matrix[T], error) {
	size, err := Size(a, k)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("negative vector count %d", n)
	}
	if layout != Columns && layout != Rows {
		return nil, fmt.Errorf("invalid layout %v", layout)
	}
	if n > 0 && size > int(^uint(0)>>1)/n {
		return nil, ErrSizeOverflow
	}
	return &Matrix[T]{a: a, k: k, size: size, n: n, layout: layout, data: make([]T, size*n)}, nil
}

func (m *Matrix[T]) A() int { return m.a }
func (m *Matrix[T]) K() int { return m.k }
func (m *Matrix[T]) N() int { return m.n }
func (m *Matrix[T]) Layout() Layout { return m.layout }

// Dims returns (rows, cols): (A^K, N) for Columns, (N, A^K) for Rows.
func (m *Matrix[T]) Dims() (rows, cols int) {
	if m.layout == Columns {
		return m.size, m.n
	}
	return m.n, m.size
}

// At reads element (r, c) of the matrix.
func (m *Matrix[T]) At(r, c int) T {
	rows, cols := m.Dims()
	if r < 0 || r >= rows || c < 0 || c >= cols {
		panic(fmt.Sprintf("kmer: matrix index (%d, %d) out of range (%d, %d)", r, c, rows, cols))
	}
	return m.data[r+c*rows]
}

// Data exposes the column-major backing slice.
func (m *Matrix[T]) Data() []T { return m.data }

// View returns count vector i as a non-owning projection of the matrix.
// It panics if i is outside [0, N).
func (m *Matrix[T]) View(i int) *Counts[T] {
	if i < 0 || i >= m.n {
		panic(fmt.Sprintf("kmer: view %d out of range [0, %d)", i, m.n))
	}
	var s Store[T]
	switch m.layout {
	case Columns:
		s = DenseOf(m.data[i*m.size : (i+1)*m.size : (i+1)*m.size])
	default:
		s = &strided[T]{data: m.data, off: i, stride: m.n, n: m.size}
	}
	return &Counts[T]{a: m.a, k: m.k, store: s}
}

// Views returns all N views in order.
func (m *Matrix[T]) Views() []*Counts[T] {
	out := make([]*Counts[T], m.n)
	for i := range out {
		out[i] = m.View(i)
	}
	return out
}

// Reset zeroes the whole matrix.
func (m *Matrix[T]) Reset() { clear(m.data) }

// CountEach counts sources[i] into view i using up to threads goroutines.
// Views are disjoint, so workers never share memory. The first error (or
// ctx cancellation) stops the remaining work and is returned.
func (m *Matrix[T]) CountEach(ctx context.Context, sources []alphabet.Codes, reset bool, threads int) error {
	if len(sources) != m.n {
		return fmt.Errorf("got %d sources for %d vectors", len(sources), m.n)
	}
	if threads < 1 {
		threads = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int, threads*2)
	var (
		once  sync.Once
		first error
		wg    sync.WaitGroup
	)
	fail := func(err error) {
		once.Do(func() {
			first = err
			cancel()
		})
	}

	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-jobs:
					if !ok {
						return
					}
					if _, err := Count(m.View(i), sources[i], m.k, reset); err != nil {
						fail(&ViewError{Vector: i, Err: err})
						return
					}
				}
			}
		}()
	}

feed:
	for i := range sources {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if first != nil {
		return first
	}
	return ctx.Err()
}
