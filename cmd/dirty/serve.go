package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/dirty-go/dirty/internal/config"
	"github.com/dirty-go/dirty/pkg/serve"
)

func serveCmd() *cobra.Command {
	var (
		addr       string
		configPath string
		compress   bool
		metrics    bool
		flushEvery int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the demo gallery server",
		Long: `Start an HTTP server that streams lazily generated pages.

The gallery shows the library at work: a streaming table of any
size, an XML feed, and a WebSocket fragment feed. Responses begin
before the page is fully built.

Configuration is read from dirty.json in the working directory;
flags override it.

Examples:
  dirty serve
  dirty serve --addr=0.0.0.0:8080
  dirty serve --compress --metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, configPath, compress, metrics, flushEvery)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from dirty.json)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to dirty.json")
	cmd.Flags().BoolVar(&compress, "compress", false, "Gzip streamed responses")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Expose Prometheus metrics on /metrics")
	cmd.Flags().IntVar(&flushEvery, "flush-every", 0, "Fragments per flush (default from dirty.json)")

	return cmd
}

func runServe(addr, configPath string, compress, metrics bool, flushEvery int) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	// Flags override the file.
	if addr != "" {
		cfg.Addr = addr
	}
	if flushEvery > 0 {
		cfg.FlushEvery = flushEvery
	}
	if compress {
		cfg.Compress = true
	}
	if metrics {
		cfg.Metrics = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	opts := []serve.Option{
		serve.WithLogger(logger),
		serve.WithFlushEvery(cfg.FlushEvery),
	}
	if cfg.Compress {
		opts = append(opts, serve.WithCompression())
	}

	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)

	if cfg.Metrics {
		reg := prometheus.NewRegistry()
		opts = append(opts, serve.WithMetrics(serve.NewMetrics(reg)))
		router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	router.Handle("/", serve.Handler(indexPage, opts...))
	router.Handle("/table", serve.Handler(tablePage, opts...))
	router.Handle("/feed.xml", serve.Handler(feedPage, opts...))
	router.Handle("/ws", serve.FeedHandler(tablePage, opts...))
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	announce(cfg)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
		fmt.Println("\n  Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}

// loadConfig resolves the configuration: an explicit --config path must
// exist, otherwise dirty.json in the working directory is used when
// present.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load(".")
}

// announce prints the banner, listen address and route map on startup.
func announce(cfg *config.Config) {
	fmt.Print(banner)
	fmt.Printf("\033[32m✓\033[0m Serving on http://%s\n", cfg.Addr)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  GET\t/\tgallery home")
	fmt.Fprintln(tw, "  GET\t/table?rows=N\tstreaming table")
	fmt.Fprintln(tw, "  GET\t/feed.xml\tXML feed")
	fmt.Fprintln(tw, "  GET\t/ws\tWebSocket fragment feed")
	if cfg.Metrics {
		fmt.Fprintln(tw, "  GET\t/metrics\tPrometheus metrics")
	}
	tw.Flush()
	fmt.Println()
}
