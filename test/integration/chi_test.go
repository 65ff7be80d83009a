package integration_test

import (
	"compress/gzip"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dirty-go/dirty/html"
	"github.com/dirty-go/dirty/pkg/markup"
	"github.com/dirty-go/dirty/pkg/render"
	"github.com/dirty-go/dirty/pkg/serve"
)

// membersPage is a small deterministic page used across the tests.
func membersPage(r *http.Request) (markup.Node, error) {
	return html.Html(
		html.Head(html.Title("members")),
		html.Body(
			html.H1("members"),
			html.Ul(markup.Repeat(5, func(i int) any {
				return html.Li(fmt.Sprintf("member-%d", i))
			})),
		),
	), nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// wantBody renders the page eagerly for comparison with streamed output.
func wantBody(t *testing.T) string {
	t.Helper()
	node, err := membersPage(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	return render.String(node)
}

// TestChiRouterIntegration tests that streaming handlers mount on a Chi
// router behind ordinary middleware.
func TestChiRouterIntegration(t *testing.T) {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"ok"}`)
	})
	r.Handle("/members", serve.Handler(membersPage, serve.WithLogger(quietLogger())))

	t.Run("plain API route untouched", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/ping", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("ping status = %d, want 200", rec.Code)
		}
		if got, want := rec.Body.String(), `{"status":"ok"}`; got != want {
			t.Errorf("ping body = %q, want %q", got, want)
		}
	})

	t.Run("streamed page matches eager render", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/members", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		if got, want := rec.Body.String(), wantBody(t); got != want {
			t.Errorf("body mismatch:\ngot:  %s\nwant: %s", got, want)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
			t.Errorf("unexpected content type %q", ct)
		}
	})

	t.Run("middleware runs ahead of the stream", func(t *testing.T) {
		sub := chi.NewRouter()
		var calls int
		sub.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				w.Header().Set("X-Middleware", "ran")
				next.ServeHTTP(w, r)
			})
		})
		sub.Handle("/*", serve.Handler(membersPage, serve.WithLogger(quietLogger())))

		req := httptest.NewRequest("GET", "/members", nil)
		rec := httptest.NewRecorder()
		sub.ServeHTTP(rec, req)

		if calls != 1 {
			t.Errorf("middleware ran %d times, want 1", calls)
		}
		// Headers set before the handler must survive the streamed write.
		if rec.Header().Get("X-Middleware") != "ran" {
			t.Error("middleware header missing from streamed response")
		}
	})
}

// TestGzipRoundTrip verifies a compressed stream decodes back to the page.
func TestGzipRoundTrip(t *testing.T) {
	r := chi.NewRouter()
	r.Handle("/members", serve.Handler(membersPage,
		serve.WithLogger(quietLogger()),
		serve.WithCompression(),
	))

	req := httptest.NewRequest("GET", "/members", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if enc := rec.Header().Get("Content-Encoding"); enc != "gzip" {
		t.Fatalf("expected gzip encoding, got %q", enc)
	}

	zr, err := gzip.NewReader(rec.Body)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	defer zr.Close()
	body, err := io.ReadAll(zr)
	if err != nil {
		t.Fatalf("gunzip: %v", err)
	}

	if got, want := string(body), wantBody(t); got != want {
		t.Errorf("body mismatch:\ngot:  %s\nwant: %s", got, want)
	}
}

// TestServeMuxMount checks the handler also works behind net/http's mux.
func TestServeMuxMount(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "User-agent: *")
	})
	mux.Handle("/", serve.Handler(membersPage, serve.WithLogger(quietLogger())))

	t.Run("static route wins", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/robots.txt", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if got, want := rec.Body.String(), "User-agent: *\n"; got != want {
			t.Errorf("robots.txt = %q, want %q", got, want)
		}
	})

	t.Run("page handler serves the rest", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/anything", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if got, want := rec.Body.String(), wantBody(t); got != want {
			t.Errorf("body mismatch:\ngot:  %s\nwant: %s", got, want)
		}
	})
}
