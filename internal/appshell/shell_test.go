package appshell

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunDefaultsToHelp(t *testing.T) {
	var got []string
	code := run(func(_ context.Context, argv []string, _, _ io.Writer) int {
		got = argv
		return 0
	}, nil, io.Discard, io.Discard)
	assert.Equal(t, 0, code)
	assert.Equal(t, []string{"-h"}, got)
}

func TestRunPassesExitCode(t *testing.T) {
	code := run(func(context.Context, []string, io.Writer, io.Writer) int { return 3 },
		[]string{"-k", "2"}, io.Discard, io.Discard)
	assert.Equal(t, 3, code)
}
