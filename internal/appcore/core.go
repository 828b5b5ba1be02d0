// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"io"

	"kmervec-core/alphabet"
	"kmervec-core/kmer"
	"kmervec/internal/cmdutil"
	"kmervec/internal/pipeline"
	"kmervec/internal/profile"
	"kmervec/internal/runutil"
	"kmervec/internal/seqio"
	"kmervec/internal/writers"
)

// MaxListedKmers caps profiles that write every k-mer, zeros included.
const MaxListedKmers = 1 << 24

type Options struct {
	SeqFiles []string
	Format   seqio.Format

	Alphabet *alphabet.Alphabet
	K        int
	Sparse   bool
	Layout   string // none | columns | rows
	Merge    bool

	Threads int

	Output  string
	Header  bool
	Profile profile.Options

	Quiet           bool
	NoMatchExitCode int
}

// Run counts o.SeqFiles with element type T, streams the profiles to the
// writer for o.Output, and returns the process exit code.
func Run[T kmer.Integer](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
) int {
	outw := bufio.NewWriter(stdout)

	thr := runutil.EffectiveThreads(o.Threads)

	elem := runutil.ElementSize[T]()
	checkDense := func(vectors int) error {
		if err := runutil.CheckDense(o.Alphabet.Size(), o.K, elem, vectors); err != nil {
			return err
		}
		for _, w := range runutil.MemoryWarnings(o.Alphabet.Size(), o.K, elem, vectors, false) {
			cmdutil.Warnf(stderr, o.Quiet, "%s", w)
		}
		return nil
	}
	matrix := o.Layout != "none"

	// per-record mode keeps one vector per worker; the matrix is vetted
	// once its record count is known
	if !o.Sparse && !matrix {
		vectors := thr
		if o.Merge {
			vectors = 1
		}
		if err := checkDense(vectors); err != nil {
			cmdutil.Errorf(stderr, "%v", err)
			return 2
		}
	}

	if o.Sparse && !o.Profile.NonZero && o.Profile.Top == 0 {
		if n, err := kmer.Size(o.Alphabet.Size(), o.K); err != nil || n > MaxListedKmers {
			cmdutil.Warnf(stderr, o.Quiet, "%d^%d k-mers are too many to list; only non-zero counts are written", o.Alphabet.Size(), o.K)
			o.Profile.NonZero = true
		}
	}

	alloc := kmer.Zeros[T]
	if o.Sparse {
		alloc = kmer.SparseZeros[T]
	}

	inCh, writeErr := writers.StartWriter(outw, o.Output, o.Header, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	send := func(p profile.Profile) error {
		select {
		case inCh <- p:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	cfg := pipeline.Config{
		Threads:  thr,
		Format:   o.Format,
		Alphabet: o.Alphabet,
		K:        o.K,
		Profile:  o.Profile,
	}
	if matrix {
		cfg.CheckMatrix = checkDense
	}

	var (
		total int
		perr  error
	)
	switch {
	case o.Merge:
		var p profile.Profile
		total, p, perr = pipeline.Accumulate[T](ctx, cfg, o.SeqFiles, alloc)
		if perr == nil && total > 0 {
			perr = send(p)
		}
	case matrix:
		layout, err := kmer.ParseLayout(o.Layout)
		if err != nil {
			perr = err
			break
		}
		total, perr = pipeline.ForEachMatrixProfile[T](ctx, cfg, o.SeqFiles, layout, send)
	default:
		total, perr = pipeline.ForEachProfile[T](ctx, cfg, o.SeqFiles, alloc, send)
	}

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		cmdutil.Errorf(stderr, "%v", werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		cmdutil.Errorf(stderr, "%v", e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		if errors.Is(perr, runutil.ErrDenseTooLarge) {
			cmdutil.Errorf(stderr, "%v", perr)
			return 2
		}
		cmdutil.Errorf(stderr, "%v", perr)
		return 3
	}
	if total == 0 {
		cmdutil.Warnf(stderr, o.Quiet, "no sequence records read")
		return o.NoMatchExitCode
	}
	return 0
}
