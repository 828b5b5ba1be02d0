package writers

import (
	"errors"
	"io"
	"os"
	"syscall"
)

// closedReader lists errors meaning the reader of our output went away.
var closedReader = []error{syscall.EPIPE, io.ErrClosedPipe, os.ErrClosed}

// IsBrokenPipe reports whether err means the consumer stopped reading
// (`kmervec ... | head`). Such output errors end the run successfully.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	for _, target := range closedReader {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
