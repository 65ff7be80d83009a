// Package benchstat collects latency samples and Go runtime counters for
// the benchmark binaries and turns them into summaries and JSON reports.
package benchstat

import (
	"encoding/json"
	"os"
	"runtime"
	"runtime/debug"
	"runtime/metrics"
	"slices"
	"time"
)

// Series accumulates duration samples for one measured phase. It is not
// safe for concurrent use; funnel samples through a channel or mutex first.
type Series struct {
	samples []time.Duration
	sorted  bool
}

// NewSeries returns a Series with room for n samples.
func NewSeries(n int) *Series {
	return &Series{samples: make([]time.Duration, 0, n)}
}

// Add records one sample.
func (s *Series) Add(d time.Duration) {
	s.samples = append(s.samples, d)
	s.sorted = false
}

// Len reports how many samples have been recorded.
func (s *Series) Len() int { return len(s.samples) }

// Quantile returns the q-th quantile, interpolating linearly between the
// two nearest samples. The backing slice is sorted on first use.
func (s *Series) Quantile(q float64) time.Duration {
	n := len(s.samples)
	if n == 0 {
		return 0
	}
	if !s.sorted {
		slices.Sort(s.samples)
		s.sorted = true
	}
	if q <= 0 {
		return s.samples[0]
	}
	if q >= 1 {
		return s.samples[n-1]
	}
	pos := q * float64(n-1)
	lo := int(pos)
	if lo+1 >= n {
		return s.samples[n-1]
	}
	frac := pos - float64(lo)
	return s.samples[lo] + time.Duration(frac*float64(s.samples[lo+1]-s.samples[lo]))
}

// Summary reports the canonical quantile set in milliseconds.
func (s *Series) Summary() Quantiles {
	if len(s.samples) == 0 {
		return Quantiles{}
	}
	return Quantiles{
		MinMS: millis(s.Quantile(0)),
		P50MS: millis(s.Quantile(0.50)),
		P95MS: millis(s.Quantile(0.95)),
		P99MS: millis(s.Quantile(0.99)),
		MaxMS: millis(s.Quantile(1)),
	}
}

// Quantiles is a latency summary in milliseconds.
type Quantiles struct {
	MinMS float64 `json:"min_ms"`
	P50MS float64 `json:"p50_ms"`
	P95MS float64 `json:"p95_ms"`
	P99MS float64 `json:"p99_ms"`
	MaxMS float64 `json:"max_ms"`
}

func millis(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// RuntimeWatch brackets a measured region and reports what the runtime did
// in between: allocation volume, GC cycles and pauses, and the share of CPU
// spent collecting.
type RuntimeWatch struct {
	mem     runtime.MemStats
	cpu     float64
	gcCPU   float64
	objects uint64
}

// StartRuntimeWatch forces a collection so the region starts from a settled
// heap, then snapshots the runtime counters.
func StartRuntimeWatch() *RuntimeWatch {
	w := &RuntimeWatch{}
	runtime.GC()
	runtime.ReadMemStats(&w.mem)
	w.cpu, w.gcCPU, w.objects = readCounters()
	return w
}

// Stop snapshots the counters again and returns the delta.
func (w *RuntimeWatch) Stop() RuntimeReport {
	var mem runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&mem)
	cpu, gcCPU, objects := readCounters()

	numGC := mem.NumGC - w.mem.NumGC
	r := RuntimeReport{
		AllocMB:       float64(mem.TotalAlloc-w.mem.TotalAlloc) / (1 << 20),
		HeapLiveMB:    float64(mem.HeapAlloc) / (1 << 20),
		NumGC:         numGC,
		PauseTotalMS:  millis(time.Duration(mem.PauseTotalNs - w.mem.PauseTotalNs)),
		AllocsObjects: objects - w.objects,
	}
	if numGC > 0 {
		r.PauseAvgMS = r.PauseTotalMS / float64(numGC)
	}
	if total := cpu - w.cpu; total > 0 {
		if gc := gcCPU - w.gcCPU; gc > 0 {
			r.GCCPUFraction = gc / total
		}
	}
	return r
}

func readCounters() (cpuSeconds, gcSeconds float64, allocObjects uint64) {
	samples := []metrics.Sample{
		{Name: "/cpu/classes/total:cpu-seconds"},
		{Name: "/cpu/classes/gc/total:cpu-seconds"},
		{Name: "/gc/heap/allocs:objects"},
	}
	metrics.Read(samples)
	return samples[0].Value.Float64(), samples[1].Value.Float64(), samples[2].Value.Uint64()
}

// RuntimeReport is the runtime delta over a measured region.
type RuntimeReport struct {
	AllocMB       float64 `json:"alloc_mb"`
	HeapLiveMB    float64 `json:"heap_live_mb"`
	NumGC         uint32  `json:"num_gc"`
	PauseTotalMS  float64 `json:"pause_total_ms"`
	PauseAvgMS    float64 `json:"pause_avg_ms"`
	GCCPUFraction float64 `json:"gc_cpu_fraction"`
	AllocsObjects uint64  `json:"allocs_objects"`
}

// Env describes the machine and toolchain a report was produced on.
type Env struct {
	Timestamp string `json:"timestamp"`
	Go        string `json:"go"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	CPUs      int    `json:"cpus"`
	Commit    string `json:"commit,omitempty"`
}

// DescribeEnv captures the current environment. The commit comes from the
// VCS stamp embedded in the binary, when present.
func DescribeEnv() Env {
	return Env{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Go:        runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		CPUs:      runtime.NumCPU(),
		Commit:    vcsRevision(),
	}
}

func vcsRevision() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}

// WriteJSON writes the report to path as indented JSON, or to stdout when
// path is "-".
func WriteJSON(path string, report any) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
