// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"kmervec/internal/profile"
)

// Args is what every registered writer receives.
type Args struct {
	Header bool
	In     <-chan profile.Profile
}

// WriterFunc serializes every profile of a.In to w.
type WriterFunc func(w io.Writer, a Args) error

// Profile writers by format name. Register in init() blocks.
var ProfileWriters = map[string]WriterFunc{}

// Register adds or replaces the writer for format.
func Register(format string, fn WriterFunc) { ProfileWriters[format] = fn }

// Formats lists the registered format names in sorted order.
func Formats() []string {
	out := make([]string, 0, len(ProfileWriters))
	for f := range ProfileWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, a Args) error {
	fn, ok := ProfileWriters[format]
	if !ok {
		drain(a.In)
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, a)
}

func drain(ch <-chan profile.Profile) {
	for range ch {
	}
}

// StartWriter spins up a writer goroutine for profiles. Close the returned
// channel when done and read the error channel once.
func StartWriter(out io.Writer, format string, header bool, bufSize int) (chan<- profile.Profile, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan profile.Profile, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := Write(format, out, Args{Header: header, In: in})
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()
	return in, errCh
}
