package cmdutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarnf(t *testing.T) {
	var b bytes.Buffer
	Warnf(&b, false, "k=%d is large", 14)
	assert.Equal(t, "WARN: k=14 is large\n", b.String())

	b.Reset()
	Warnf(&b, true, "hidden")
	assert.Empty(t, b.String())
}

func TestErrorf(t *testing.T) {
	var b bytes.Buffer
	Errorf(&b, "bad %s", "input")
	assert.Equal(t, "ERROR: bad input\n", b.String())
}
