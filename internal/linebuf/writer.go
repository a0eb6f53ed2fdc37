// Package linebuf provides line-buffered IO utilities.
package linebuf

import (
	"bytes"
	"io"
	"sync"
)

var _newline = []byte("\n")

// Writer returns an io.Writer that calls emit
// for every complete line written to it,
// including the trailing newline.
// done flushes any unterminated final line.
func Writer(emit func([]byte)) (_ io.Writer, done func()) {
	w := lineWriter{emit: emit}
	return &w, w.flush
}

type lineWriter struct {
	emit func([]byte)

	mu sync.Mutex // guards buff

	// Holds text from prior writes
	// for which we haven't yet seen a newline.
	buff bytes.Buffer
}

func (w *lineWriter) Write(bs []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	total := len(bs)
	for len(bs) > 0 {
		head, tail, ok := bytes.Cut(bs, _newline)
		if !ok {
			// No newline. Buffer it for later.
			w.buff.Write(bs)
			break
		}

		if w.buff.Len() == 0 {
			// Nothing buffered from a prior partial write.
			// This is the majority case.
			// Cut dropped the newline; the emitted line keeps it.
			w.emit(bs[:len(head)+1])
		} else {
			w.buff.Write(head)
			w.buff.WriteByte('\n')
			w.emit(w.buff.Bytes())
			w.buff.Reset()
		}
		bs = tail
	}
	return total, nil
}

// flush emits buffered text, even if it doesn't end with a newline.
func (w *lineWriter) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buff.Len() > 0 {
		w.emit(w.buff.Bytes())
		w.buff.Reset()
	}
}
