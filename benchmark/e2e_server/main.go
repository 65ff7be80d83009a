// E2E Benchmark Server for dirty
// Serves lazily streamed pages over HTTP and WebSocket so external load
// generators can measure time-to-first-byte and streaming throughput.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dirty-go/dirty/html"
	"github.com/dirty-go/dirty/pkg/markup"
	"github.com/dirty-go/dirty/pkg/serve"
)

func main() {
	var (
		addr = flag.String("addr", ":8766", "listen address")
		rows = flag.Int("rows", 10000, "default table rows per page")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	reg := prometheus.NewRegistry()
	opts := []serve.Option{
		serve.WithLogger(logger),
		serve.WithMetrics(serve.NewMetrics(reg)),
	}

	page := tablePage(*rows)

	router := chi.NewRouter()
	router.Handle("/", serve.Handler(page, opts...))
	router.Handle("/table", serve.Handler(page, opts...))
	router.Handle("/ws", serve.FeedHandler(page, opts...))
	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	log.Printf("benchmark server on http://%s (ws://%s/ws)", displayAddr(*addr), displayAddr(*addr))
	log.Printf("GET /table?rows=N streams a table of N rows")

	if err := http.ListenAndServe(*addr, router); err != nil {
		log.Fatal(err)
	}
}

func displayAddr(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "localhost" + addr
	}
	return addr
}

// tablePage serves a table of defaultRows rows, overridable per request
// with ?rows=N.
func tablePage(defaultRows int) serve.PageFunc {
	return func(r *http.Request) (markup.Node, error) {
		rows := defaultRows
		if v := r.URL.Query().Get("rows"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("invalid rows parameter %q", v)
			}
			rows = n
		}
		return buildPage(rows), nil
	}
}

func buildPage(rows int) markup.Node {
	return html.Html(
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.Title(fmt.Sprintf("%d rows", rows)),
			html.Style(markup.Raw(pageCSS)),
		),
		html.Body(
			html.H1("streaming table"),
			html.P(fmt.Sprintf("%d rows, generated while they stream", rows)),
			html.Table(
				html.Tr(html.Th("#"), html.Th("name"), html.Th("square")),
				markup.Repeat(rows, func(i int) any {
					return html.Tr(
						html.Td(i),
						html.Td(fmt.Sprintf("row-%d", i)),
						html.Td(i*i),
					)
				}),
			),
		),
	)
}

const pageCSS = `
body {
	font: 16px/1.5 "Helvetica Neue", Arial, sans-serif;
	margin: 2rem auto;
	max-width: 72rem;
	color: #222;
}
h1 { font-size: 1.4rem; border-bottom: 2px solid #0a7; padding-bottom: 0.3rem; }
p { color: #555; }
table { border-collapse: collapse; width: 100%; font-variant-numeric: tabular-nums; }
th, td { border: 1px solid #ddd; padding: 2px 8px; text-align: left; }
th { background: #f4f4f4; }
tr:nth-child(even) td { background: #fafafa; }
`
