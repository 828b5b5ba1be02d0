// Package seqio reads sequence records from FASTA or FASTQ files.
//
// FASTA goes through kmervec-core/fasta (streaming, cancelable). FASTQ, and
// anything explicitly requested as fastq, goes through the shenwei356/bio
// fastx reader, which also handles gzip and STDIN.
package seqio

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"

	"kmervec-core/fasta"
)

// Format names an input format.
type Format string

const (
	Auto  Format = "auto"
	FASTA Format = "fasta"
	FASTQ Format = "fastq"
)

// Record is one input sequence.
type Record struct {
	Source string // file the record came from ("-" for STDIN)
	ID     string
	Desc   string
	Seq    []byte
}

var fastqSuffixes = []string{".fq", ".fastq", ".fq.gz", ".fastq.gz"}

// Resolve picks a concrete format for path. Auto selects FASTQ by file
// suffix and FASTA otherwise (including STDIN).
func Resolve(path string, f Format) (Format, error) {
	switch f {
	case FASTA, FASTQ:
		return f, nil
	case Auto, "":
		lp := strings.ToLower(path)
		for _, s := range fastqSuffixes {
			if strings.HasSuffix(lp, s) {
				return FASTQ, nil
			}
		}
		return FASTA, nil
	}
	return "", fmt.Errorf("unknown input format %q", f)
}

// Stream calls emit for each record of path, in file order.
func Stream(ctx context.Context, path string, f Format, emit func(Record) error) error {
	rf, err := Resolve(path, f)
	if err != nil {
		return err
	}
	if rf == FASTQ {
		return streamFastx(ctx, path, emit)
	}
	return fasta.StreamPathCtx(ctx, path, func(r fasta.Record) error {
		return emit(Record{Source: path, ID: r.ID, Desc: r.Desc, Seq: r.Seq})
	})
}

// ReadAll collects every record of every path.
func ReadAll(ctx context.Context, paths []string, f Format) ([]Record, error) {
	var recs []Record
	for _, p := range paths {
		rf, err := Resolve(p, f)
		if err != nil {
			return recs, err
		}
		if rf == FASTA {
			frs, err := fasta.ReadAll(ctx, p)
			for _, r := range frs {
				recs = append(recs, Record{Source: p, ID: r.ID, Desc: r.Desc, Seq: r.Seq})
			}
			if err != nil {
				return recs, err
			}
			continue
		}
		err = streamFastx(ctx, p, func(r Record) error {
			recs = append(recs, r)
			return nil
		})
		if err != nil {
			return recs, err
		}
	}
	return recs, nil
}

func streamFastx(ctx context.Context, path string, emit func(Record) error) error {
	// residues are validated by the counter against the chosen alphabet
	r, err := fastx.NewReader(seq.Unlimit, path, "")
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer r.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.Wrapf(err, "read %s", path)
		}
		id := string(rec.ID)
		desc := strings.TrimSpace(strings.TrimPrefix(string(rec.Name), id))
		// the reader reuses its buffers between records
		residues := append([]byte(nil), rec.Seq.Seq...)
		if err := emit(Record{Source: path, ID: id, Desc: desc, Seq: residues}); err != nil {
			return err
		}
	}
}
