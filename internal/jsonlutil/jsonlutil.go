// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// Pooled 64 KiB buffered writers shared by the JSON and JSONL writers.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Start runs a JSONL encoder goroutine for values of type T.
//   - encode: converts one value to its wire type and calls enc.Encode
//   - isBroken: recognizes broken/closed pipe errors, which are not reported
//
// Values sent after a failed encode are drained so senders never block.
func Start[T any](out io.Writer, bufSize int, encode func(*json.Encoder, T) error, isBroken func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw, flush := Buffered(out)
		enc := json.NewEncoder(bw)

		var err error
		for v := range in {
			if err != nil {
				continue
			}
			err = encode(enc, v)
		}
		if ferr := flush(); err == nil {
			err = ferr
		}
		if err != nil && isBroken(err) {
			err = nil
		}
		done <- err
	}()

	return in, done
}

// Buffered wraps out in a pooled buffered writer. Call the returned flush
// exactly once when done writing.
func Buffered(out io.Writer) (w *bufio.Writer, flush func() error) {
	bw := bwPool.Get().(*bufio.Writer)
	bw.Reset(out)
	return bw, func() error {
		err := bw.Flush()
		bw.Reset(io.Discard)
		bwPool.Put(bw)
		return err
	}
}
