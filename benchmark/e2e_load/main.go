// Load driver for the streaming handlers.
//
// Answers the operational questions for a page that streams: how quickly
// the first byte reaches a client under concurrent load, how long a fully
// streamed page takes end to end, and how much allocator and GC work the
// load generates.
//
// The real handler runs behind a loopback listener; N concurrent HTTP
// readers (plus optional WebSocket consumers) pull pages until the
// deadline. No browser is involved, so the numbers isolate the server
// path: render, fragment buffering, chunked write, kernel, client read.
//
// Run:
//
//	go run ./benchmark/e2e_load -clients=200 -duration=30s -rows=10000 -ws-clients=20
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/dirty-go/dirty/html"
	"github.com/dirty-go/dirty/internal/benchstat"
	"github.com/dirty-go/dirty/pkg/markup"
	"github.com/dirty-go/dirty/pkg/serve"
)

func main() {
	var (
		clients    = flag.Int("clients", 100, "number of concurrent HTTP readers")
		wsClients  = flag.Int("ws-clients", 0, "number of concurrent WebSocket consumers")
		duration   = flag.Duration("duration", 15*time.Second, "how long to run the load test")
		rows       = flag.Int("rows", 10000, "table rows per page (affects render cost)")
		flushEvery = flag.Int("flush-every", 0, "fragments per flush (0 for the default)")
	)
	flag.Parse()

	if *clients < 0 {
		log.Fatal("-clients must be >= 0")
	}
	if *wsClients < 0 {
		log.Fatal("-ws-clients must be >= 0")
	}
	if *clients+*wsClients == 0 {
		log.Fatal("need at least one client")
	}
	if *duration <= 0 {
		log.Fatal("-duration must be > 0")
	}
	if *rows < 0 {
		log.Fatal("-rows must be >= 0")
	}

	// Keep the GC target at its default so runs compare across machines.
	debug.SetGCPercent(100)

	// Aborted streams are expected when the deadline cuts clients off
	// mid-page; keep them out of the output.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	opts := []serve.Option{serve.WithLogger(logger)}
	if *flushEvery > 0 {
		opts = append(opts, serve.WithFlushEvery(*flushEvery))
	}

	page := tablePage(*rows)
	router := chi.NewRouter()
	router.Handle("/table", serve.Handler(page, opts...))
	router.Handle("/ws", serve.FeedHandler(page, opts...))

	ln, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		log.Fatalf("listen: %v", err)
	}

	httpServer := &http.Server{Handler: router}
	go func() {
		_ = httpServer.Serve(ln)
	}()
	defer func() {
		_ = httpServer.Shutdown(context.Background())
	}()

	pageURL := fmt.Sprintf("http://%s/table?rows=%d", ln.Addr().String(), *rows)
	wsURL := fmt.Sprintf("ws://%s/ws?rows=%d", ln.Addr().String(), *rows)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	ttfb := newSampleCollector(1024)
	full := newSampleCollector(1024)

	var (
		totalPages  atomic.Uint64
		totalFeeds  atomic.Uint64
		totalBytes  atomic.Uint64
		totalErrors atomic.Uint64
	)

	watch := benchstat.StartRuntimeWatch()

	var wg sync.WaitGroup
	wg.Add(*clients + *wsClients)
	for i := 0; i < *clients; i++ {
		go func() {
			defer wg.Done()
			runReader(ctx, pageURL, ttfb, full, &totalPages, &totalBytes, &totalErrors)
		}()
	}
	for i := 0; i < *wsClients; i++ {
		go func() {
			defer wg.Done()
			runFeed(ctx, wsURL, ttfb, full, &totalFeeds, &totalBytes, &totalErrors)
		}()
	}

	wg.Wait()

	rt := watch.Stop()
	ttfbSeries := ttfb.finish()
	fullSeries := full.finish()

	pages := totalPages.Load()
	feeds := totalFeeds.Load()
	bytes := totalBytes.Load()
	errs := totalErrors.Load()
	runSeconds := (*duration).Seconds()
	if runSeconds <= 0 {
		runSeconds = 0.001
	}

	fmt.Println("=== Dirty E2E Load Benchmark ===")
	fmt.Printf("Clients: %d HTTP, %d WebSocket\n", *clients, *wsClients)
	fmt.Printf("Duration: %s\n", (*duration).String())
	fmt.Printf("Rows per page: %d\n", *rows)
	fmt.Printf("Pages completed: %d (plus %d feeds)\n", pages, feeds)
	fmt.Printf("Errors: %d\n", errs)
	fmt.Printf("Throughput: %.1f pages/s, %.2f MB/s\n", float64(pages+feeds)/runSeconds, float64(bytes)/(1024*1024)/runSeconds)
	fmt.Println()

	printLatencies("TTFB (request start → first bytes):", ttfbSeries)
	fmt.Println()
	printLatencies("Full page (request start → last byte):", fullSeries)
	fmt.Println()

	fmt.Println("Runtime (process-wide):")
	fmt.Printf("  allocated %.1f MB over %d GC cycles (%.2f ms avg pause)\n", rt.AllocMB, rt.NumGC, rt.PauseAvgMS)
	fmt.Printf("  %.1f%% of CPU in GC, %.1f M objects allocated\n", 100*rt.GCCPUFraction, float64(rt.AllocsObjects)/1e6)
	fmt.Printf("  heap live at exit: %.1f MB\n", rt.HeapLiveMB)
}

func printLatencies(header string, s *benchstat.Series) {
	if s.Len() == 0 {
		fmt.Println("No latency samples recorded.")
		return
	}
	fmt.Println(header)
	fmt.Printf("  min: %s\n", s.Quantile(0))
	fmt.Printf("  p50: %s\n", s.Quantile(0.50))
	fmt.Printf("  p95: %s\n", s.Quantile(0.95))
	fmt.Printf("  p99: %s\n", s.Quantile(0.99))
	fmt.Printf("  max: %s\n", s.Quantile(1))
}

// runReader fetches the page in a loop, timing first byte and full body.
func runReader(
	ctx context.Context,
	url string,
	ttfb, full *sampleCollector,
	totalPages, totalBytes, totalErrors *atomic.Uint64,
) {
	client := &http.Client{}
	buf := make([]byte, 32*1024)

	for ctx.Err() == nil {
		start := time.Now()
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			totalErrors.Add(1)
			return
		}
		resp, err := client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			totalErrors.Add(1)
			continue
		}

		first := true
		for {
			n, err := resp.Body.Read(buf)
			if n > 0 {
				if first {
					ttfb.add(time.Since(start))
					first = false
				}
				totalBytes.Add(uint64(n))
			}
			if err != nil {
				resp.Body.Close()
				if err == io.EOF {
					full.add(time.Since(start))
					totalPages.Add(1)
				} else if ctx.Err() == nil {
					totalErrors.Add(1)
				}
				break
			}
		}
	}
}

// runFeed consumes the WebSocket fragment feed in a loop.
func runFeed(
	ctx context.Context,
	url string,
	ttfb, full *sampleCollector,
	totalFeeds, totalBytes, totalErrors *atomic.Uint64,
) {
	for ctx.Err() == nil {
		start := time.Now()
		conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			totalErrors.Add(1)
			continue
		}

		first := true
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				conn.Close()
				if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
					full.add(time.Since(start))
					totalFeeds.Add(1)
				} else if ctx.Err() == nil {
					totalErrors.Add(1)
				}
				break
			}
			if first {
				ttfb.add(time.Since(start))
				first = false
			}
			totalBytes.Add(uint64(len(msg)))
		}
	}
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
		return html.Html(
			html.Head(html.Title(fmt.Sprintf("%d rows", rows))),
			html.Body(
				html.Table(
					markup.Repeat(rows, func(i int) any {
						return html.Tr(
							html.Td(i),
							html.Td(fmt.Sprintf("row-%d", i)),
							html.Td(i*i),
						)
					}),
				),
			),
		), nil
	}
}

// sampleCollector funnels latency samples from many goroutines into one
// Series without contending on a mutex in the hot path. The collector
// goroutine owns the Series until finish.
type sampleCollector struct {
	ch     chan time.Duration
	series *benchstat.Series
	done   chan struct{}
}

func newSampleCollector(buffer int) *sampleCollector {
	c := &sampleCollector{
		ch:     make(chan time.Duration, buffer),
		series: benchstat.NewSeries(buffer),
		done:   make(chan struct{}),
	}
	go func() {
		defer close(c.done)
		for d := range c.ch {
			c.series.Add(d)
		}
	}()
	return c
}

func (c *sampleCollector) add(d time.Duration) {
	c.ch <- d
}

// finish stops the collector and hands the series back. Call only after
// every sender has finished.
func (c *sampleCollector) finish() *benchstat.Series {
	close(c.ch)
	<-c.done
	return c.series
}
