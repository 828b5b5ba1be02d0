// core/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"io"

	"github.com/pkg/errors"
)

// Record is one parsed FASTA entry.
type Record struct {
	ID   string // header up to the first space or tab
	Desc string // remainder of the header line, trimmed
	Seq  []byte
}

// maxLine allows very long single-line sequences (64 MiB).
const maxLine = 64 * 1024 * 1024

// StreamCtx parses FASTA from r and calls emit once per record, in input
// order. Sequence lines are concatenated with surrounding whitespace removed.
// Lines before the first header are treated as an anonymous record.
//
// It returns promptly once ctx is Done, even mid-record. A non-nil error from
// emit stops the scan and is returned as-is.
func StreamCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		rec     Record
		started bool
		seq     = make([]byte, 0, 1<<16)
	)

	flush := func() error {
		if !started && len(seq) == 0 {
			return nil
		}
		rec.Seq = append([]byte(nil), seq...)
		if err := emit(rec); err != nil {
			return err
		}
		seq = seq[:0]
		rec = Record{}
		return nil
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			rec.ID, rec.Desc = parseHeader(line[1:])
			started = true
			continue
		}
		if line[0] == ';' { // old-style comment line
			continue
		}
		seq = append(seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "fasta scan")
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	return flush()
}

// StreamPathCtx opens path (gzip / "-" aware) and streams its records.
// Read errors name the path; errors from emit are returned unchanged.
func StreamPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	fromEmit := false
	err = StreamCtx(ctx, rc, func(r Record) error {
		err := emit(r)
		fromEmit = err != nil
		return err
	})
	if err == nil || fromEmit || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return errors.Wrapf(err, "read %s", path)
}

func parseHeader(hdr []byte) (id, desc string) {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i]), string(bytes.TrimSpace(hdr[i+1:]))
	}
	return string(hdr), ""
}
