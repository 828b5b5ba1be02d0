package kmer

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/shenwei356/kmers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kmervec-core/alphabet"
)

func dna(t *testing.T, s string) []uint8 {
	t.Helper()
	codes, err := alphabet.DNA.Encode([]byte(s))
	require.NoError(t, err)
	return codes
}

func TestIndexGATTACA(t *testing.T) {
	idx, err := Index(dna(t, "GATTACA"), 4)
	require.NoError(t, err)
	assert.Equal(t, uint64(9156), idx)

	back, err := Decode(idx, 4, 7)
	require.NoError(t, err)
	assert.Equal(t, "GATTACA", alphabet.DNA.Text(back))
}

// The base-4 DNA index must agree with the 2-bit packing used by other
// k-mer tools.
func TestIndexMatchesTwoBitPacking(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for k := 1; k <= 31; k += 3 {
		seq := make([]byte, k)
		for i := range seq {
			seq[i] = "ACGT"[rng.Intn(4)]
		}
		want, err := kmers.Encode(seq)
		require.NoError(t, err)
		got, err := Index(dna(t, string(seq)), 4)
		require.NoError(t, err)
		assert.Equal(t, want, got, "k=%d seq=%s", k, seq)
	}
}

func TestIndexBijection(t *testing.T) {
	cases := []struct{ a, k int }{{4, 1}, {4, 3}, {3, 4}, {20, 2}, {28, 2}, {2, 10}}
	for _, tc := range cases {
		n, err := Size(tc.a, tc.k)
		require.NoError(t, err)
		seen := make([]bool, n)
		for i := 0; i < n; i++ {
			digits, err := Decode(uint64(i), tc.a, tc.k)
			require.NoError(t, err)
			idx, err := Index(digits, tc.a)
			require.NoError(t, err)
			require.Equal(t, uint64(i), idx)
			require.False(t, seen[idx])
			seen[idx] = true
		}
	}
}

func TestSize(t *testing.T) {
	n, err := Size(4, 6)
	require.NoError(t, err)
	assert.Equal(t, 4096, n)

	_, err = Size(4, 0)
	assert.ErrorIs(t, err, ErrInvalidK)
	_, err = Size(0, 3)
	assert.ErrorIs(t, err, ErrInvalidAlphabetSize)
	_, err = Size(4, 40)
	assert.ErrorIs(t, err, ErrSizeOverflow)
}

func TestCountOneMersGATTACA(t *testing.T) {
	c, err := CountNew[int64](Zeros[int64], 4, alphabet.DNA.NewSymbols([]byte("GATTACA")), 1, true)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1, 1, 2}, c.Values())
}

func TestCountOneMersUint16(t *testing.T) {
	c, err := CountNew[uint16](Zeros[uint16], 4, alphabet.FromCodes([]uint8{2, 0, 3, 3, 0, 1, 0}), 1, true)
	require.NoError(t, err)
	assert.Equal(t, []uint16{3, 1, 1, 2}, c.Values())
}

func TestCountTwoMersAATT(t *testing.T) {
	c, err := New[int](4, 2, nil)
	require.NoError(t, err)
	_, err = CountSequence(c, alphabet.DNA, []byte("AATT"), true)
	require.NoError(t, err)

	want := make([]int, 16)
	want[0] = 1  // AA
	want[3] = 1  // AT
	want[15] = 1 // TT
	assert.Equal(t, want, c.Values())
}

func TestCountResetAndAccumulate(t *testing.T) {
	c, err := New[int](4, 2, nil)
	require.NoError(t, err)

	_, err = CountSequence(c, alphabet.DNA, []byte("ACGT"), true)
	require.NoError(t, err)
	once := c.Values()
	want := make([]int, 16)
	want[1], want[6], want[11] = 1, 1, 1 // AC CG GT
	assert.Equal(t, want, once)

	_, err = CountSequence(c, alphabet.DNA, []byte("ACGT"), true)
	require.NoError(t, err)
	assert.Equal(t, once, c.Values(), "reset must discard the previous pass")

	_, err = CountSequence(c, alphabet.DNA, []byte("ACGT"), false)
	require.NoError(t, err)
	for i, v := range c.Values() {
		assert.Equal(t, 2*once[i], v, "index %d", i)
	}
}

func TestCountSumEqualsWindows(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		k := 1 + rng.Intn(6)
		n := rng.Intn(40)
		codes := make([]uint8, n)
		for i := range codes {
			codes[i] = uint8(rng.Intn(4))
		}
		c, err := CountNew[int32](Zeros[int32], 4, alphabet.FromCodes(codes), k, true)
		require.NoError(t, err)
		want := n - k + 1
		if want < 0 {
			want = 0
		}
		assert.Equal(t, uint64(want), Sum(c.Store()), "n=%d k=%d", n, k)
	}
}

func TestCountShortSequence(t *testing.T) {
	c, err := CountNew[int](Zeros[int], 4, alphabet.DNA.NewSymbols([]byte("ACG")), 5, true)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), Sum(c.Store()))
	assert.Equal(t, 1024, c.Len())
}

func TestCountSizeMismatch(t *testing.T) {
	c, err := New[int](4, 2, nil)
	require.NoError(t, err)
	_, err = Count(c, alphabet.FromCodes([]uint8{0, 1, 2}), 3, true)
	var sm *SizeMismatchError
	require.True(t, errors.As(err, &sm))
	assert.Equal(t, 64, sm.Want)
	assert.Equal(t, 16, sm.Got)

	_, err = Wrap[int](4, 2, NewDense[int](15))
	require.ErrorAs(t, err, &sm)

	_, err = CountSequence(c, alphabet.AminoAcid, []byte("MK"), true)
	require.ErrorAs(t, err, &sm)
}

func TestCountSymbolRange(t *testing.T) {
	c, err := New[int](4, 2, nil)
	require.NoError(t, err)
	_, err = Count(c, alphabet.FromCodes([]uint8{0, 1, 4, 2}), 2, true)
	var sr *SymbolRangeError
	require.ErrorAs(t, err, &sr)
	assert.Equal(t, uint8(4), sr.Code)
	assert.Equal(t, 2, sr.Pos)
}

func TestCountUnrecognizedSymbolPropagates(t *testing.T) {
	c, err := New[int](4, 3, nil)
	require.NoError(t, err)
	_, err = CountSequence(c, alphabet.DNA, []byte("ACGNT"), true)
	var use *alphabet.UnrecognizedSymbolError
	require.ErrorAs(t, err, &use)
	assert.Equal(t, byte('N'), use.Symbol)
}

// Rolling the index forward must agree with recomputing it per window.
func TestRollingIndexMatchesDirect(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, a := range []int{2, 4, 20, 28} {
		for k := 1; k <= 4; k++ {
			codes := make([]uint8, 60)
			for i := range codes {
				codes[i] = uint8(rng.Intn(a))
			}
			c, err := CountNew[int](Zeros[int], a, alphabet.FromCodes(codes), k, true)
			require.NoError(t, err)

			var idx []uint64
			for i := 0; i+k <= len(codes); i++ {
				x, err := Index(codes[i:i+k], a)
				require.NoError(t, err)
				idx = append(idx, x)
			}
			d, err := CountNewIndices[int](Zeros[int], a, k, idx)
			require.NoError(t, err)
			assert.Equal(t, d.Values(), c.Values(), "a=%d k=%d", a, k)
		}
	}
}

func TestCountLargeKNoOverflow(t *testing.T) {
	// 4^31 sits near MaxInt; the rolling update must stay below A^K.
	codes := dna(t, "TTTTTTTTTTTTTTTTTTTTTTTTTTTTTTTT") // 32 T
	sp := SparseZeros[uint8]
	c, err := CountNew[uint8](sp, 4, alphabet.FromCodes(codes), 31, true)
	require.NoError(t, err)
	n, _ := Size(4, 31)
	assert.Equal(t, uint8(2), c.At(n-1))
	assert.Equal(t, uint64(2), Sum(c.Store()))
}

func TestCountIndices(t *testing.T) {
	c, err := CountNewIndices[int64](Zeros[int64], 4, 1, []uint64{2, 0, 3, 3, 0, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1, 1, 2}, c.Values())

	_, err = CountIndices(c, []uint64{4}, true)
	var ir *IndexRangeError
	require.ErrorAs(t, err, &ir)
	assert.Equal(t, uint64(4), ir.Index)
}

func TestAminoAcidCounts(t *testing.T) {
	c, err := CountNew[int](SparseZeros[int], alphabet.AminoAcid.Size(), alphabet.AminoAcid.NewSymbols([]byte("MKMKM")), 2, true)
	require.NoError(t, err)
	m, _ := alphabet.AminoAcid.Code('M')
	k, _ := alphabet.AminoAcid.Code('K')
	mk, _ := Index([]uint8{m, k}, 28)
	km, _ := Index([]uint8{k, m}, 28)
	assert.Equal(t, 2, c.At(int(mk)))
	assert.Equal(t, 2, c.At(int(km)))
	assert.Equal(t, uint64(4), Sum(c.Store()))
}
