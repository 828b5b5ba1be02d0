// Package profile turns k-mer count vectors into labeled, filterable results
// for the writers.
package profile

import (
	"sort"

	"github.com/shenwei356/kmers"
	"github.com/twotwotwo/sorts"

	"kmervec-core/alphabet"
	"kmervec-core/kmer"
	"kmervec/pkg/api"
)

// Entry is one k-mer index and its count.
type Entry struct {
	Index uint64
	Count uint64
}

// Profile is the per-record (or merged) k-mer count result.
type Profile struct {
	Source   string
	ID       string
	Desc     string
	Alphabet *alphabet.Alphabet
	K        int
	Length   int // residues counted over
	Windows  int // max(0, Length-K+1) summed over records
	Records  int // >1 only for merged profiles
	Total    uint64
	Entries  []Entry
}

// Options selects which entries a Profile keeps.
type Options struct {
	NonZero bool // drop zero counts
	Top     int  // keep the Top most frequent (implies NonZero); 0 keeps all
}

// Meta describes where a count vector came from.
type Meta struct {
	Source  string
	ID      string
	Desc    string
	Length  int
	Windows int
	Records int
}

// Windows is the number of k-mer windows in a sequence of length n.
func Windows(n, k int) int {
	if n < k {
		return 0
	}
	return n - k + 1
}

// Build extracts a Profile from c according to o. Counts are reported as
// uint64; a signed counter that wrapped negative shows up as a value near 2^64.
func Build[T kmer.Integer](m Meta, alpha *alphabet.Alphabet, c *kmer.Counts[T], o Options) Profile {
	p := Profile{
		Source:   m.Source,
		ID:       m.ID,
		Desc:     m.Desc,
		Alphabet: alpha,
		K:        c.K(),
		Length:   m.Length,
		Windows:  m.Windows,
		Records:  m.Records,
		Total:    kmer.Sum(c.Store()),
	}
	s := c.Store()
	if o.NonZero || o.Top > 0 {
		idx := kmer.NonZeroIndices(s)
		p.Entries = make([]Entry, len(idx))
		for i, x := range idx {
			p.Entries[i] = Entry{Index: uint64(x), Count: uint64(s.At(x))}
		}
	} else {
		n := s.Len()
		p.Entries = make([]Entry, n)
		for i := 0; i < n; i++ {
			p.Entries[i] = Entry{Index: uint64(i), Count: uint64(s.At(i))}
		}
	}
	if o.Top > 0 {
		p.Entries = Top(p.Entries, o.Top)
	}
	return p
}

// byCount orders entries by descending count, then ascending index.
type byCount []Entry

func (b byCount) Len() int      { return len(b) }
func (b byCount) Swap(i, j int) { b[i], b[j] = b[j], b[i] }
func (b byCount) Less(i, j int) bool {
	if b[i].Count != b[j].Count {
		return b[i].Count > b[j].Count
	}
	return b[i].Index < b[j].Index
}

var _ sort.Interface = byCount(nil)

// Top returns the n most frequent entries, most frequent first. entries is
// reordered in place.
func Top(entries []Entry, n int) []Entry {
	sorts.Quicksort(byCount(entries))
	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// Label renders k-mer index idx as residues.
func (p Profile) Label(idx uint64) string {
	return Label(p.Alphabet, p.K, idx)
}

// Label renders index idx of a K-mer over alpha.
func Label(alpha *alphabet.Alphabet, k int, idx uint64) string {
	if alpha == alphabet.DNA && k <= 32 {
		return string(kmers.Decode(idx, k))
	}
	digits, err := kmer.Decode(idx, alpha.Size(), k)
	if err != nil {
		return "?"
	}
	return alpha.Text(digits)
}

// ToAPI converts p to the stable wire schema.
func ToAPI(p Profile) api.ProfileV1 {
	out := api.ProfileV1{
		SequenceID:  p.ID,
		Description: p.Desc,
		SourceFile:  p.Source,
		Alphabet:    p.Alphabet.Name(),
		A:           p.Alphabet.Size(),
		K:           p.K,
		Length:      p.Length,
		Windows:     p.Windows,
		Total:       p.Total,
		Counts:      make([]api.KmerCountV1, len(p.Entries)),
	}
	if p.Records > 1 {
		out.Records = p.Records
	}
	for i, e := range p.Entries {
		out.Counts[i] = api.KmerCountV1{Kmer: p.Label(e.Index), Index: e.Index, Count: e.Count}
	}
	return out
}
