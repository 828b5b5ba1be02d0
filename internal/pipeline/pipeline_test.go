package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kmervec-core/alphabet"
	"kmervec-core/kmer"
	"kmervec/internal/profile"
	"kmervec/internal/seqio"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func dnaConfig(k, threads int) Config {
	return Config{Threads: threads, Format: seqio.Auto, Alphabet: alphabet.DNA, K: k}
}

func manyRecords(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, ">r%d\n%s\n", i, strings.Repeat("ACGT", i%7+1))
	}
	return b.String()
}

func TestForEachProfileKeepsInputOrder(t *testing.T) {
	fa := writeFile(t, "many.fa", manyRecords(200))
	var ids []string
	n, err := ForEachProfile[int64](context.Background(), dnaConfig(2, 8), []string{fa}, nil, func(p profile.Profile) error {
		ids = append(ids, p.ID)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 200, n)
	require.Len(t, ids, 200)
	for i, id := range ids {
		assert.Equal(t, fmt.Sprintf("r%d", i), id)
	}
}

func TestForEachProfileCounts(t *testing.T) {
	fa := writeFile(t, "x.fa", ">a first\nGATTACA\n>b\nAATT\n")
	var got []profile.Profile
	_, err := ForEachProfile[uint16](context.Background(), dnaConfig(1, 2), []string{fa}, kmer.SparseZeros[uint16],
		func(p profile.Profile) error {
			got = append(got, p)
			return nil
		})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "first", got[0].Desc)
	assert.Equal(t, fa, got[0].Source)
	assert.Equal(t, []profile.Entry{{Index: 0, Count: 3}, {Index: 1, Count: 1}, {Index: 2, Count: 1}, {Index: 3, Count: 2}}, got[0].Entries)
	// worker vectors are reset between records
	assert.Equal(t, []profile.Entry{{Index: 0, Count: 2}, {Index: 1, Count: 0}, {Index: 2, Count: 0}, {Index: 3, Count: 2}}, got[1].Entries)
	assert.Equal(t, 4, got[1].Windows)
}

func TestForEachProfileUnrecognizedSymbol(t *testing.T) {
	fa := writeFile(t, "bad.fa", ">ok\nACGT\n>bad\nACNT\n")
	_, err := ForEachProfile[int64](context.Background(), dnaConfig(2, 2), []string{fa}, nil, func(profile.Profile) error { return nil })
	var re *RecordError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "bad", re.ID)
	var use *alphabet.UnrecognizedSymbolError
	require.ErrorAs(t, err, &use)
	assert.Equal(t, byte('N'), use.Symbol)
}

func TestForEachProfileVisitError(t *testing.T) {
	fa := writeFile(t, "many.fa", manyRecords(50))
	stop := errors.New("stop")
	calls := 0
	_, err := ForEachProfile[int64](context.Background(), dnaConfig(2, 4), []string{fa}, nil, func(profile.Profile) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestForEachProfileMissingFile(t *testing.T) {
	_, err := ForEachProfile[int64](context.Background(), dnaConfig(2, 1), []string{filepath.Join(t.TempDir(), "nope.fa")}, nil,
		func(profile.Profile) error { return nil })
	assert.Error(t, err)
}

func TestForEachProfileBadK(t *testing.T) {
	fa := writeFile(t, "x.fa", ">a\nACGT\n")
	_, err := ForEachProfile[int64](context.Background(), dnaConfig(0, 1), []string{fa}, nil, func(profile.Profile) error { return nil })
	assert.ErrorIs(t, err, kmer.ErrInvalidK)
}

func TestForEachProfileCanceled(t *testing.T) {
	fa := writeFile(t, "many.fa", manyRecords(100))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ForEachProfile[int64](ctx, dnaConfig(2, 2), []string{fa}, nil, func(profile.Profile) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAccumulate(t *testing.T) {
	a := writeFile(t, "a.fa", ">a\nACGT\n")
	b := writeFile(t, "b.fa", ">b\nACGT\n>c\nA\n")
	n, p, err := Accumulate[int32](context.Background(), dnaConfig(2, 1), []string{a, b}, kmer.Zeros[int32])
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, MergedID, p.ID)
	assert.Equal(t, 3, p.Records)
	assert.Equal(t, 9, p.Length)
	assert.Equal(t, 6, p.Windows)
	assert.Equal(t, uint64(6), p.Total)
	assert.Equal(t, uint64(2), p.Entries[1].Count)  // AC
	assert.Equal(t, uint64(2), p.Entries[6].Count)  // CG
	assert.Equal(t, uint64(2), p.Entries[11].Count) // GT
}

func TestAccumulateError(t *testing.T) {
	a := writeFile(t, "a.fa", ">a\nACGX\n")
	_, _, err := Accumulate[int64](context.Background(), dnaConfig(2, 1), []string{a}, nil)
	var re *RecordError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "a", re.ID)
}

func TestMatrixMatchesPerRecord(t *testing.T) {
	fa := writeFile(t, "many.fa", manyRecords(30))
	cfg := dnaConfig(3, 4)
	cfg.Profile = profile.Options{NonZero: true}

	var want []profile.Profile
	_, err := ForEachProfile[int64](context.Background(), cfg, []string{fa}, nil, func(p profile.Profile) error {
		want = append(want, p)
		return nil
	})
	require.NoError(t, err)

	for _, layout := range []kmer.Layout{kmer.Columns, kmer.Rows} {
		var got []profile.Profile
		n, err := ForEachMatrixProfile[int64](context.Background(), cfg, []string{fa}, layout, func(p profile.Profile) error {
			got = append(got, p)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 30, n)
		assert.Equal(t, want, got, "layout %s", layout)
	}
}

func TestCountMatrixRecordError(t *testing.T) {
	fa := writeFile(t, "x.fa", ">a\nACGT\n>b\nAC*T\n")
	_, _, err := CountMatrix[uint8](context.Background(), dnaConfig(2, 2), []string{fa}, kmer.Rows)
	var re *RecordError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "b", re.ID)
}

func TestCountMatrixChecksVectorCount(t *testing.T) {
	fa := writeFile(t, "many.fa", manyRecords(12))
	cfg := dnaConfig(2, 2)
	tooMany := errors.New("too many")
	var seen int
	cfg.CheckMatrix = func(vectors int) error {
		seen = vectors
		return tooMany
	}
	m, recs, err := CountMatrix[int64](context.Background(), cfg, []string{fa}, kmer.Columns)
	assert.ErrorIs(t, err, tooMany)
	assert.Nil(t, m)
	assert.Len(t, recs, 12)
	assert.Equal(t, 12, seen)
}
