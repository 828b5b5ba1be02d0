package pipeline

import (
	"context"
	"strings"

	"kmervec-core/kmer"
	"kmervec/internal/profile"
	"kmervec/internal/seqio"
)

// MergedID is the sequence id of an accumulated profile.
const MergedID = "merged"

// Accumulate counts every record of seqFiles into a single vector without
// resetting between records, and returns the number of records read and
// the combined profile.
func Accumulate[T kmer.Integer](
	ctx context.Context,
	cfg Config,
	seqFiles []string,
	alloc kmer.Allocator[T],
) (int, profile.Profile, error) {
	c, err := kmer.New[T](cfg.Alphabet.Size(), cfg.K, alloc)
	if err != nil {
		return 0, profile.Profile{}, err
	}
	m := profile.Meta{ID: MergedID, Source: strings.Join(seqFiles, ",")}
	for _, path := range seqFiles {
		err := seqio.Stream(ctx, path, cfg.Format, func(r seqio.Record) error {
			if _, err := kmer.CountSequence(c, cfg.Alphabet, r.Seq, false); err != nil {
				return &RecordError{Source: r.Source, ID: r.ID, Err: err}
			}
			m.Records++
			m.Length += len(r.Seq)
			m.Windows += profile.Windows(len(r.Seq), cfg.K)
			return nil
		})
		if err != nil {
			return m.Records, profile.Profile{}, err
		}
	}
	return m.Records, profile.Build(m, cfg.Alphabet, c, cfg.Profile), nil
}
