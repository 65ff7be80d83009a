package serve

import (
	"net/http"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// acceptsGzip reports whether the client advertises gzip support.
func acceptsGzip(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept-Encoding"), "gzip")
}

// gzipResponseWriter couples a gzip stream to the response writer so that
// one Flush pushes buffered bytes all the way to the client.
type gzipResponseWriter struct {
	gz *gzip.Writer
	rw http.ResponseWriter
}

func newGzipResponseWriter(rw http.ResponseWriter) *gzipResponseWriter {
	return &gzipResponseWriter{gz: gzip.NewWriter(rw), rw: rw}
}

func (w *gzipResponseWriter) Write(p []byte) (int, error) {
	return w.gz.Write(p)
}

func (w *gzipResponseWriter) Flush() error {
	if err := w.gz.Flush(); err != nil {
		return err
	}
	if f, ok := w.rw.(http.Flusher); ok {
		f.Flush()
	}
	return nil
}

// Close finishes the gzip stream. It does not close the response.
func (w *gzipResponseWriter) Close() error {
	return w.gz.Close()
}
