// core/fasta/open.go
package fasta

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"

	"github.com/pkg/errors"
)

var gzipMagic = [2]byte{0x1f, 0x8b}

// source couples a decoded stream with everything that must be closed
// behind it, innermost first.
type source struct {
	io.Reader
	closers []io.Closer
}

func (s *source) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Open returns a reader for path, "-" meaning STDIN. Gzip input is
// recognized by its magic bytes, so compressed STDIN works too.
func Open(path string) (io.ReadCloser, error) {
	var (
		raw    io.Reader
		closer io.Closer = io.NopCloser(nil)
	)
	if path == "-" {
		raw = os.Stdin
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open fasta")
		}
		raw, closer = fh, fh
	}

	br := bufio.NewReaderSize(raw, 1<<16)
	if sig, _ := br.Peek(2); len(sig) == 2 && sig[0] == gzipMagic[0] && sig[1] == gzipMagic[1] {
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = closer.Close()
			return nil, errors.Wrapf(err, "gzip %s", path)
		}
		return &source{Reader: gr, closers: []io.Closer{gr, closer}}, nil
	}
	return &source{Reader: br, closers: []io.Closer{closer}}, nil
}
