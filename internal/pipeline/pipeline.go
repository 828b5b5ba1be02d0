// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"kmervec-core/alphabet"
	"kmervec-core/kmer"
	"kmervec/internal/profile"
	"kmervec/internal/seqio"
)

// Config controls the counting pipeline.
type Config struct {
	Threads  int // number of worker goroutines (>=1)
	Format   seqio.Format
	Alphabet *alphabet.Alphabet
	K        int
	Profile  profile.Options

	// CheckMatrix, if set, vets a matrix of the given vector count before
	// it is allocated.
	CheckMatrix func(vectors int) error
}

// RecordError ties a counting failure to the record that caused it.
type RecordError struct {
	Source string
	ID     string
	Err    error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s: record %q: %v", e.Source, e.ID, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// firstError keeps the first failure and cancels the run.
type firstError struct {
	mu     sync.Mutex
	err    error
	cancel context.CancelFunc
}

func (f *firstError) set(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err == nil {
		f.err = err
		f.cancel()
	}
}

func (f *firstError) get() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func meta(r seqio.Record, k int) profile.Meta {
	return profile.Meta{
		Source:  r.Source,
		ID:      r.ID,
		Desc:    r.Desc,
		Length:  len(r.Seq),
		Windows: profile.Windows(len(r.Seq), k),
		Records: 1,
	}
}

// ForEachProfile counts every record of seqFiles into its own vector and
// calls visit with the resulting profiles in input order. It returns the
// number of records read and the first error encountered (including context
// cancellation).
func ForEachProfile[T kmer.Integer](
	ctx context.Context,
	cfg Config,
	seqFiles []string,
	alloc kmer.Allocator[T],
	visit func(profile.Profile) error,
) (int, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if alloc == nil {
		alloc = kmer.Zeros[T]
	}
	// fail fast on bad A/K before spinning up workers
	if _, err := kmer.Size(cfg.Alphabet.Size(), cfg.K); err != nil {
		return 0, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type job struct {
		seq int
		rec seqio.Record
	}
	type result struct {
		seq int
		p   profile.Profile
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan result, cfg.Threads*2)

	first := &firstError{cancel: cancel}
	fail := first.set

	// Workers: each owns one count vector, reset per record.
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			c, err := kmer.New[T](cfg.Alphabet.Size(), cfg.K, alloc)
			if err != nil {
				fail(err)
				return
			}
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					if _, err := kmer.CountSequence(c, cfg.Alphabet, j.rec.Seq, true); err != nil {
						fail(&RecordError{Source: j.rec.Source, ID: j.rec.ID, Err: err})
						return
					}
					p := profile.Build(meta(j.rec, cfg.K), cfg.Alphabet, c, cfg.Profile)
					select {
					case results <- result{seq: j.seq, p: p}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: restores input order.
	var cwg sync.WaitGroup
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]profile.Profile)
		next := 0
		for r := range results {
			pending[r.seq] = r.p
			for {
				p, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if ctx.Err() != nil {
					continue
				}
				if err := visit(p); err != nil {
					fail(err)
				}
			}
		}
	}()

	// Feed work
	n := 0
	for _, path := range seqFiles {
		err := seqio.Stream(ctx, path, cfg.Format, func(r seqio.Record) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobs <- job{seq: n, rec: r}:
				n++
				return nil
			}
		})
		if err != nil {
			fail(err)
			break
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if err := first.get(); err != nil {
		return n, err
	}
	return n, ctx.Err()
}
