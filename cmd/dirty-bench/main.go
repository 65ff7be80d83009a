// Command dirty-bench measures render performance for lazily built pages:
// time to first fragment, full render time, and the GC cost of a sustained
// render loop. Results go to stdout as JSON with a summary on stderr.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dirty-go/dirty/html"
	"github.com/dirty-go/dirty/internal/benchstat"
	"github.com/dirty-go/dirty/pkg/markup"
)

type profile struct {
	Rows       int
	Depth      int
	Attrs      int
	Iterations int
	Warmup     int
}

var profiles = map[string]profile{
	"fast":     {Rows: 1000, Depth: 2, Attrs: 2, Iterations: 50, Warmup: 5},
	"standard": {Rows: 10000, Depth: 3, Attrs: 4, Iterations: 200, Warmup: 20},
	"stress":   {Rows: 100000, Depth: 4, Attrs: 6, Iterations: 100, Warmup: 10},
}

type benchConfig struct {
	Profile    string
	Rows       int
	Depth      int
	Attrs      int
	Iterations int
	Warmup     int
	JSONOutput string
}

func main() {
	log.SetFlags(0)

	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	debug.SetGCPercent(100)

	// Warmup renders settle the allocator before measurement starts.
	for i := 0; i < cfg.Warmup; i++ {
		renderOnce(cfg)
	}

	firsts := benchstat.NewSeries(cfg.Iterations)
	fulls := benchstat.NewSeries(cfg.Iterations)
	var fragments, bytes uint64

	watch := benchstat.StartRuntimeWatch()
	start := time.Now()
	for i := 0; i < cfg.Iterations; i++ {
		first, full, frags, n := renderOnce(cfg)
		firsts.Add(first)
		fulls.Add(full)
		fragments += frags
		bytes += n
	}
	elapsed := time.Since(start)
	rt := watch.Stop()

	report := benchReport{
		Env: benchstat.DescribeEnv(),
		Workload: workloadInfo{
			Profile:    cfg.Profile,
			Rows:       cfg.Rows,
			Depth:      cfg.Depth,
			Attrs:      cfg.Attrs,
			Iterations: cfg.Iterations,
			Warmup:     cfg.Warmup,
		},
		FirstFragment: firsts.Summary(),
		FullRender:    fulls.Summary(),
		Throughput:    throughput(cfg, elapsed, fragments, bytes),
		Runtime:       rt,
	}

	printSummary(report)
	if err := benchstat.WriteJSON(cfg.JSONOutput, report); err != nil {
		log.Fatalf("write json: %v", err)
	}
}

// renderOnce builds the page and pulls every fragment, timing the build
// plus first fragment and the complete render.
func renderOnce(cfg benchConfig) (first, full time.Duration, fragments, bytes uint64) {
	start := time.Now()
	page := makePage(cfg.Rows, cfg.Depth, cfg.Attrs)
	for f := range page.Fragments() {
		if fragments == 0 {
			first = time.Since(start)
		}
		fragments++
		bytes += uint64(len(f))
	}
	full = time.Since(start)
	return first, full, fragments, bytes
}

// makePage builds a table whose rows materialize only during rendering.
func makePage(rows, depth, attrs int) markup.Node {
	return html.Html(
		html.Head(html.Title("bench")),
		html.Body(
			html.Table(
				markup.Repeat(rows, func(i int) any {
					return benchRow(i, depth, attrs)
				}),
			),
		),
	)
}

func benchRow(i, depth, attrs int) *markup.Element {
	inner := any(fmt.Sprintf("row-%d", i))
	for d := 0; d < depth; d++ {
		inner = html.Div(html.Class(fmt.Sprintf("level-%d", d)), inner)
	}

	args := make([]any, 0, attrs+1)
	for a := 0; a < attrs; a++ {
		args = append(args, html.DataAttr(fmt.Sprintf("col%d", a), i))
	}
	args = append(args, html.Td(inner))
	return html.Tr(args...)
}

func parseConfig() (benchConfig, error) {
	var (
		profileFlag = flag.String("profile", "standard", "workload profile: fast, standard or stress")
		rowsFlag    = flag.Int("rows", 0, "table rows per render (overrides the profile)")
		depthFlag   = flag.Int("depth", 0, "nesting depth per row (overrides the profile)")
		attrsFlag   = flag.Int("attrs", 0, "attributes per row (overrides the profile)")
		iterFlag    = flag.Int("iterations", 0, "measured renders (overrides the profile)")
		warmupFlag  = flag.Int("warmup", 0, "unmeasured renders before timing (overrides the profile)")
		jsonFlag    = flag.String("json", "-", "JSON report path, - for stdout")
	)
	flag.Parse()

	name := strings.ToLower(strings.TrimSpace(*profileFlag))
	base, ok := profiles[name]
	if !ok {
		return benchConfig{}, fmt.Errorf("unknown profile %q", name)
	}

	cfg := benchConfig{
		Profile:    name,
		Rows:       base.Rows,
		Depth:      base.Depth,
		Attrs:      base.Attrs,
		Iterations: base.Iterations,
		Warmup:     base.Warmup,
		JSONOutput: *jsonFlag,
	}

	// Explicitly set flags win over the profile, zero values included.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			cfg.Rows = *rowsFlag
		case "depth":
			cfg.Depth = *depthFlag
		case "attrs":
			cfg.Attrs = *attrsFlag
		case "iterations":
			cfg.Iterations = *iterFlag
		case "warmup":
			cfg.Warmup = *warmupFlag
		}
	})

	switch {
	case cfg.Rows < 0:
		return benchConfig{}, errors.New("-rows must be >= 0")
	case cfg.Depth < 0:
		return benchConfig{}, errors.New("-depth must be >= 0")
	case cfg.Attrs < 0:
		return benchConfig{}, errors.New("-attrs must be >= 0")
	case cfg.Iterations <= 0:
		return benchConfig{}, errors.New("-iterations must be > 0")
	case cfg.Warmup < 0:
		return benchConfig{}, errors.New("-warmup must be >= 0")
	case cfg.JSONOutput == "":
		return benchConfig{}, errors.New("-json must not be empty")
	}

	return cfg, nil
}

type benchReport struct {
	Env           benchstat.Env           `json:"env"`
	Workload      workloadInfo            `json:"workload"`
	FirstFragment benchstat.Quantiles     `json:"first_fragment"`
	FullRender    benchstat.Quantiles     `json:"full_render"`
	Throughput    throughputInfo          `json:"throughput"`
	Runtime       benchstat.RuntimeReport `json:"runtime"`
}

type workloadInfo struct {
	Profile    string `json:"profile"`
	Rows       int    `json:"rows"`
	Depth      int    `json:"depth"`
	Attrs      int    `json:"attrs"`
	Iterations int    `json:"iterations"`
	Warmup     int    `json:"warmup"`
}

type throughputInfo struct {
	RendersPerSec      float64 `json:"renders_per_sec"`
	FragmentsPerRender float64 `json:"fragments_per_render"`
	BytesPerRender     float64 `json:"bytes_per_render"`
	MBPerSec           float64 `json:"mb_per_sec"`
}

func throughput(cfg benchConfig, elapsed time.Duration, fragments, bytes uint64) throughputInfo {
	seconds := elapsed.Seconds()
	if seconds <= 0 {
		seconds = 0.001
	}
	iterations := float64(cfg.Iterations)
	return throughputInfo{
		RendersPerSec:      iterations / seconds,
		FragmentsPerRender: float64(fragments) / iterations,
		BytesPerRender:     float64(bytes) / iterations,
		MBPerSec:           float64(bytes) / (1 << 20) / seconds,
	}
}

func printSummary(r benchReport) {
	tw := tabwriter.NewWriter(os.Stderr, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "profile\t%s (rows=%d depth=%d attrs=%d)\n",
		r.Workload.Profile, r.Workload.Rows, r.Workload.Depth, r.Workload.Attrs)
	fmt.Fprintf(tw, "iterations\t%d measured, %d warmup\n", r.Workload.Iterations, r.Workload.Warmup)
	fmt.Fprintf(tw, "first fragment\tp50 %.3f ms\tp95 %.3f ms\tp99 %.3f ms\n",
		r.FirstFragment.P50MS, r.FirstFragment.P95MS, r.FirstFragment.P99MS)
	fmt.Fprintf(tw, "full render\tp50 %.2f ms\tp95 %.2f ms\tmax %.2f ms\n",
		r.FullRender.P50MS, r.FullRender.P95MS, r.FullRender.MaxMS)
	fmt.Fprintf(tw, "throughput\t%.1f renders/s\t%.0f fragments/render\t%.2f MB/s\n",
		r.Throughput.RendersPerSec, r.Throughput.FragmentsPerRender, r.Throughput.MBPerSec)
	fmt.Fprintf(tw, "gc\t%d cycles\t%.2f ms avg pause\t%.1f%% of cpu\n",
		r.Runtime.NumGC, r.Runtime.PauseAvgMS, 100*r.Runtime.GCCPUFraction)
	tw.Flush()
}
