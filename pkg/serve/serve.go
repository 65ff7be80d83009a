// Package serve delivers markup trees over HTTP. Pages are streamed:
// fragments are written and flushed as the tree produces them, so
// time-to-first-byte does not depend on document size.
package serve

import (
	"io"
	"iter"
	"log/slog"
	"net/http"
	"time"

	"github.com/dirty-go/dirty/pkg/markup"
	"github.com/dirty-go/dirty/pkg/render"
	"github.com/dirty-go/dirty/xml"
)

// PageFunc builds the page for a request. Returning an error produces a
// 500 response; once streaming has begun there is no way back.
type PageFunc func(r *http.Request) (markup.Node, error)

// DefaultContentType is sent for pages that are not xml Documents when no
// override is configured.
const DefaultContentType = "text/html; charset=utf-8"

type config struct {
	logger      *slog.Logger
	flushEvery  int
	contentType string
	compress    bool
	metrics     *Metrics
	tracing     bool
}

func newConfig(opts ...Option) config {
	cfg := config{flushEvery: render.DefaultFlushEvery}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	return cfg
}

// Option configures Handler and FeedHandler.
type Option func(*config)

// WithLogger sets the logger. A nil logger falls back to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithFlushEvery sets how many fragments are written between flushes.
// Values below one keep the default.
func WithFlushEvery(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.flushEvery = n
		}
	}
}

// WithContentType overrides the Content-Type header.
func WithContentType(ct string) Option {
	return func(c *config) { c.contentType = ct }
}

// WithCompression enables gzip encoding for clients that accept it. The
// gzip stream is flushed on the same cadence as the response, so streaming
// stays incremental under compression.
func WithCompression() Option {
	return func(c *config) { c.compress = true }
}

// WithMetrics attaches Prometheus instruments. Share one Metrics across
// handlers; see NewMetrics.
func WithMetrics(m *Metrics) Option {
	return func(c *config) { c.metrics = m }
}

// WithTracing starts an OpenTelemetry span per request from the global
// tracer provider.
func WithTracing() Option {
	return func(c *config) { c.tracing = true }
}

// Handler serves page as a streamed response. A PageFunc error is logged
// and answered with a 500 while that is still possible; write errors after
// the first byte only abort the stream.
func Handler(page PageFunc, opts ...Option) http.Handler {
	return &handler{page: page, cfg: newConfig(opts...)}
}

type handler struct {
	page PageFunc
	cfg  config
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.cfg.metrics != nil {
		h.cfg.metrics.inFlight.Inc()
		defer h.cfg.metrics.inFlight.Dec()
	}

	r, span := h.cfg.startSpan(r)
	start := time.Now()

	node, err := h.page(r)
	if err != nil {
		h.cfg.logger.Error("page build failed", "path", r.URL.Path, "error", err)
		if h.cfg.metrics != nil {
			h.cfg.metrics.requests.WithLabelValues(r.URL.Path, "error").Inc()
		}
		endSpan(span, 0, 0, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", h.cfg.pageContentType(node))

	out := io.Writer(w)
	var gz *gzipResponseWriter
	if h.cfg.compress && acceptsGzip(r) {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Set("Vary", "Accept-Encoding")
		gz = newGzipResponseWriter(w)
		out = gz
	}

	counted := &countingNode{node: node}
	written, err := render.Stream(out, counted, render.WithFlushEvery(h.cfg.flushEvery))
	if gz != nil {
		if cerr := gz.Close(); err == nil {
			err = cerr
		}
	}

	status := "ok"
	if err != nil {
		status = "aborted"
		h.cfg.logger.Warn("stream aborted", "path", r.URL.Path, "written", written, "error", err)
	}
	if h.cfg.metrics != nil {
		h.cfg.metrics.requests.WithLabelValues(r.URL.Path, status).Inc()
		h.cfg.metrics.duration.Observe(time.Since(start).Seconds())
		h.cfg.metrics.fragments.Add(float64(counted.count))
		h.cfg.metrics.bytes.Add(float64(written))
	}
	endSpan(span, counted.count, written, err)
}

// pageContentType resolves the Content-Type for a page: the configured
// override when present, the XML type for xml Documents, HTML otherwise.
func (c config) pageContentType(n markup.Node) string {
	if c.contentType != "" {
		return c.contentType
	}
	if _, ok := n.(*xml.Document); ok {
		return "application/xml; charset=utf-8"
	}
	return DefaultContentType
}

// countingNode counts fragments on their way to the writer.
type countingNode struct {
	node  markup.Node
	count int64
}

func (c *countingNode) Fragments() iter.Seq[string] {
	return func(yield func(string) bool) {
		for f := range c.node.Fragments() {
			c.count++
			if !yield(f) {
				return
			}
		}
	}
}
