// Package publish renders markup trees and writes them to a storage
// target, turning lazy documents into published static files.
package publish

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/dirty-go/dirty/pkg/markup"
	"github.com/dirty-go/dirty/pkg/render"
	"github.com/dirty-go/dirty/xml"
)

// Target is a storage backend for published documents. Implement it to
// publish somewhere other than S3 (disk, GCS, a CDN API).
type Target interface {
	// Put stores one document body under key.
	Put(ctx context.Context, key, contentType string, body io.Reader) error
}

// Publisher renders nodes and hands the output to a Target.
type Publisher struct {
	target Target
	logger *slog.Logger
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithLogger sets the logger. A nil logger falls back to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) { p.logger = logger }
}

// New creates a Publisher writing to target.
func New(target Target, opts ...Option) *Publisher {
	p := &Publisher{target: target}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// Publish renders doc and stores it under key. The content type follows
// the document: XML documents publish as application/xml, everything else
// as HTML.
func (p *Publisher) Publish(ctx context.Context, key string, doc markup.Node) error {
	body := render.String(doc)
	if err := p.target.Put(ctx, key, contentTypeFor(doc), strings.NewReader(body)); err != nil {
		return fmt.Errorf("publish %s: %w", key, err)
	}
	p.logger.Info("published", "key", key, "bytes", len(body))
	return nil
}

// PublishSite stores every page in pages, visiting keys in sorted order so
// runs are reproducible. The first failure stops the run.
func (p *Publisher) PublishSite(ctx context.Context, pages map[string]markup.Node) error {
	keys := make([]string, 0, len(pages))
	for k := range pages {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := p.Publish(ctx, k, pages[k]); err != nil {
			return err
		}
	}
	return nil
}

func contentTypeFor(doc markup.Node) string {
	if _, ok := doc.(*xml.Document); ok {
		return "application/xml; charset=utf-8"
	}
	return "text/html; charset=utf-8"
}
