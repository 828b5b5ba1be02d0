package pipeline

import (
	"context"
	"errors"

	"kmervec-core/alphabet"
	"kmervec-core/kmer"
	"kmervec/internal/profile"
	"kmervec/internal/seqio"
)

// CountMatrix loads every record of seqFiles and counts record i into view i
// of a new Matrix with the given layout.
func CountMatrix[T kmer.Integer](
	ctx context.Context,
	cfg Config,
	seqFiles []string,
	layout kmer.Layout,
) (*kmer.Matrix[T], []seqio.Record, error) {
	recs, err := seqio.ReadAll(ctx, seqFiles, cfg.Format)
	if err != nil {
		return nil, nil, err
	}
	if cfg.CheckMatrix != nil {
		if err := cfg.CheckMatrix(len(recs)); err != nil {
			return nil, recs, err
		}
	}
	m, err := kmer.NewMatrix[T](cfg.Alphabet.Size(), cfg.K, len(recs), layout)
	if err != nil {
		return nil, recs, err
	}
	sources := make([]alphabet.Codes, len(recs))
	for i, r := range recs {
		sources[i] = cfg.Alphabet.NewSymbols(r.Seq)
	}
	threads := cfg.Threads
	if threads < 1 {
		threads = 1
	}
	if err := m.CountEach(ctx, sources, true, threads); err != nil {
		var ve *kmer.ViewError
		if errors.As(err, &ve) && ve.Vector < len(recs) {
			r := recs[ve.Vector]
			return nil, recs, &RecordError{Source: r.Source, ID: r.ID, Err: ve.Err}
		}
		return nil, recs, err
	}
	return m, recs, nil
}

// ForEachMatrixProfile is CountMatrix followed by one visit per view, in
// input order.
func ForEachMatrixProfile[T kmer.Integer](
	ctx context.Context,
	cfg Config,
	seqFiles []string,
	layout kmer.Layout,
	visit func(profile.Profile) error,
) (int, error) {
	m, recs, err := CountMatrix[T](ctx, cfg, seqFiles, layout)
	if err != nil {
		return len(recs), err
	}
	for i, r := range recs {
		if err := visit(profile.Build(meta(r, cfg.K), cfg.Alphabet, m.View(i), cfg.Profile)); err != nil {
			return len(recs), err
		}
	}
	return len(recs), nil
}
