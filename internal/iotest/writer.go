// Package iotest provides IO utilities for testing.
package iotest

import (
	"bytes"
	"io"
	"testing"

	"go.abhg.dev/code2img/internal/linebuf"
)

var _newline = []byte("\n")

// Writer builds an io.Writer that writes to the given testing.TB,
// one log entry per line of output.
// An unterminated final line is flushed when the test finishes.
func Writer(t testing.TB) io.Writer {
	w, done := linebuf.Writer(func(line []byte) {
		t.Logf("%s", bytes.TrimSuffix(line, _newline))
	})
	t.Cleanup(done)
	return w
}
