package render

import (
	"io"
	"net/http"

	"github.com/dirty-go/dirty/pkg/markup"
)

// DefaultFlushEvery is the fragment interval between flushes when
// streaming.
const DefaultFlushEvery = 32

// StreamOption configures Stream.
type StreamOption func(*streamConfig)

type streamConfig struct {
	flushEvery int
}

// WithFlushEvery sets how many fragments are written between flushes.
// Values below one fall back to DefaultFlushEvery.
func WithFlushEvery(n int) StreamOption {
	return func(c *streamConfig) {
		if n >= 1 {
			c.flushEvery = n
		}
	}
}

// errFlusher is the buffered-writer flavor of flushing (bufio.Writer,
// gzip.Writer).
type errFlusher interface {
	Flush() error
}

// Stream writes the node's fragments to w, flushing every flushEvery
// fragments and once more at the end. Flushing engages when w implements
// http.Flusher or Flush() error; otherwise Stream degrades to WriteTo.
// Combined with a lazy document this keeps time-to-first-byte flat no
// matter how large the tree is.
func Stream(w io.Writer, n markup.Node, opts ...StreamOption) (int64, error) {
	cfg := streamConfig{flushEvery: DefaultFlushEvery}
	for _, opt := range opts {
		opt(&cfg)
	}

	flush := flushFunc(w)

	var written int64
	var err error
	pending := 0
	for f := range n.Fragments() {
		var nn int
		nn, err = io.WriteString(w, f)
		written += int64(nn)
		if err != nil {
			return written, err
		}
		pending++
		if pending >= cfg.flushEvery {
			pending = 0
			if err = flush(); err != nil {
				return written, err
			}
		}
	}
	if pending > 0 {
		err = flush()
	}
	return written, err
}

// flushFunc resolves the writer's flush capability once, up front.
func flushFunc(w io.Writer) func() error {
	switch f := w.(type) {
	case errFlusher:
		return f.Flush
	case http.Flusher:
		return func() error {
			f.Flush()
			return nil
		}
	default:
		return func() error { return nil }
	}
}

// FlushableWriter wraps an io.Writer with flush counting. This is useful
// for testing streaming behavior without an http.ResponseWriter.
type FlushableWriter struct {
	io.Writer
	FlushCount int
}

// Flush implements http.Flusher.
func (w *FlushableWriter) Flush() {
	w.FlushCount++
}
