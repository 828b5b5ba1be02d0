package kmer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kmervec-core/alphabet"
)

func TestDenseSparseEqual(t *testing.T) {
	seq := []byte("GATTACAGATTACACCGGTT")
	for k := 1; k <= 4; k++ {
		d, err := CountNew[int64](Zeros[int64], 4, alphabet.DNA.NewSymbols(seq), k, true)
		require.NoError(t, err)
		s, err := CountNew[int64](SparseZeros[int64], 4, alphabet.DNA.NewSymbols(seq), k, true)
		require.NoError(t, err)
		assert.True(t, Equal(d.Store(), s.Store()), "k=%d", k)
		assert.True(t, Equal(s.Store(), d.Store()), "k=%d", k)
		assert.Equal(t, d.Values(), s.Values())
	}
}

func TestEqualDetectsDifference(t *testing.T) {
	a := NewDense[int](4)
	b := NewSparse[int](4)
	assert.True(t, Equal[int](a, b))
	b.Inc(2)
	assert.False(t, Equal[int](a, b))
	a.Inc(2)
	assert.True(t, Equal[int](a, b))
	assert.False(t, Equal[int](a, NewDense[int](5)))

	c := NewSparse[int](4)
	c.Inc(1)
	assert.False(t, Equal[int](b, c))
}

func TestSparseStore(t *testing.T) {
	s := NewSparse[uint8](8)
	s.Inc(3)
	s.Inc(3)
	s.Inc(7)
	assert.Equal(t, 2, s.NNZ())
	assert.Equal(t, []int{3, 7}, s.NonZero())
	s.Set(7, 0)
	assert.Equal(t, []int{3}, s.NonZero())
	assert.Equal(t, uint8(0), s.At(5))

	s.Set(1, 255)
	s.Inc(1) // wraps to zero
	assert.Equal(t, uint8(0), s.At(1))
	assert.Equal(t, 1, s.NNZ())

	s.Reset()
	assert.Equal(t, 0, s.NNZ())
	assert.Panics(t, func() { s.Inc(8) })
}

func TestDenseReset(t *testing.T) {
	d := DenseOf([]int{1, 2, 3})
	d.Reset()
	assert.Equal(t, []int{0, 0, 0}, d.Values())
}

func TestNonZeroIndices(t *testing.T) {
	d := DenseOf([]int{0, 2, 0, 1})
	assert.Equal(t, []int{1, 3}, NonZeroIndices[int](d))
	s := NewSparse[int](4)
	s.Inc(0)
	assert.Equal(t, []int{0}, NonZeroIndices[int](s))
}

func TestDistances(t *testing.T) {
	a := DenseOf([]uint16{1, 2, 0, 3})
	b := DenseOf([]uint16{0, 2, 1, 3})
	assert.Equal(t, 13.0, Dot[uint16](a, b))
	assert.Equal(t, 2.0, SqEuclidean[uint16](a, b))
	assert.Panics(t, func() { Dot[uint16](a, DenseOf([]uint16{1})) })

	// narrow element types must not overflow the accumulator
	big := DenseOf([]uint16{65535, 65535})
	assert.Equal(t, 2*65535.0*65535.0, Dot[uint16](big, big))
}
