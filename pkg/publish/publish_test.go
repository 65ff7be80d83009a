package publish_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/dirty-go/dirty/html"
	"github.com/dirty-go/dirty/pkg/markup"
	"github.com/dirty-go/dirty/pkg/publish"
	"github.com/dirty-go/dirty/pkg/render"
	"github.com/dirty-go/dirty/xml"
)

type put struct {
	key         string
	contentType string
	body        string
}

// fakeTarget records every Put and can fail a chosen key. Failed puts are
// recorded too, so tests can see what was attempted.
type fakeTarget struct {
	puts    []put
	failKey string
}

func (f *fakeTarget) Put(_ context.Context, key, contentType string, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.puts = append(f.puts, put{key: key, contentType: contentType, body: string(data)})
	if key == f.failKey {
		return errors.New("bucket unavailable")
	}
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublisher_Publish(t *testing.T) {
	target := &fakeTarget{}
	pub := publish.New(target, publish.WithLogger(quietLogger()))

	page := html.Div(html.Class("home"), html.P("hello"))
	if err := pub.Publish(context.Background(), "index.html", page); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	if len(target.puts) != 1 {
		t.Fatalf("expected 1 put, got %d", len(target.puts))
	}
	got := target.puts[0]
	if got.key != "index.html" {
		t.Errorf("expected key index.html, got %s", got.key)
	}
	if got.contentType != "text/html; charset=utf-8" {
		t.Errorf("expected HTML content type, got %s", got.contentType)
	}
	if got.body != render.String(page) {
		t.Errorf("body mismatch: %s", got.body)
	}
}

func TestPublisher_PublishXML(t *testing.T) {
	target := &fakeTarget{}
	pub := publish.New(target, publish.WithLogger(quietLogger()))

	doc := xml.New(markup.NewTag("feed").New("empty"))
	if err := pub.Publish(context.Background(), "feed.xml", doc); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	got := target.puts[0]
	if got.contentType != "application/xml; charset=utf-8" {
		t.Errorf("expected XML content type, got %s", got.contentType)
	}
	if got.body != doc.String() {
		t.Errorf("body mismatch: %s", got.body)
	}
}

func TestPublisher_PublishError(t *testing.T) {
	target := &fakeTarget{failKey: "broken.html"}
	pub := publish.New(target, publish.WithLogger(quietLogger()))

	err := pub.Publish(context.Background(), "broken.html", html.P("x"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(err.Error(), "publish broken.html:") {
		t.Errorf("error should name the failing key, got: %v", err)
	}
	if !strings.Contains(err.Error(), "bucket unavailable") {
		t.Errorf("error should wrap the target failure, got: %v", err)
	}
}

func TestPublisher_PublishSiteOrder(t *testing.T) {
	target := &fakeTarget{}
	pub := publish.New(target, publish.WithLogger(quietLogger()))

	pages := map[string]markup.Node{
		"posts/new.html": html.P("new post"),
		"index.html":     html.H1("home"),
		"about.html":     html.P("about"),
	}
	if err := pub.PublishSite(context.Background(), pages); err != nil {
		t.Fatalf("publish site failed: %v", err)
	}

	want := []string{"about.html", "index.html", "posts/new.html"}
	if len(target.puts) != len(want) {
		t.Fatalf("expected %d puts, got %d", len(want), len(target.puts))
	}
	for i, key := range want {
		if target.puts[i].key != key {
			t.Errorf("put %d: expected key %s, got %s", i, key, target.puts[i].key)
		}
	}
}

func TestPublisher_PublishSiteStopsOnError(t *testing.T) {
	target := &fakeTarget{failKey: "b.html"}
	pub := publish.New(target, publish.WithLogger(quietLogger()))

	pages := map[string]markup.Node{
		"a.html": html.P("a"),
		"b.html": html.P("b"),
		"c.html": html.P("c"),
	}
	err := pub.PublishSite(context.Background(), pages)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "b.html") {
		t.Errorf("error should name the failing key, got: %v", err)
	}
	// a.html succeeded, b.html failed, c.html was never attempted.
	if len(target.puts) != 2 {
		t.Errorf("expected 2 puts before stopping, got %d", len(target.puts))
	}
}
