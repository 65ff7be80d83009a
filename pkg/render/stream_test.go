package render

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/dirty-go/dirty/pkg/markup"
)

func TestStreamFlushCadence(t *testing.T) {
	div := markup.NewTag("div")
	p := markup.NewTag("p")

	// "<div", ">", ten of ("<p", ">", "x", "</p>"), "</div>": 43 fragments.
	el := div.New(markup.Repeat(10, func(i int) any { return p.New("x") }))

	tests := []struct {
		name      string
		opts      []StreamOption
		wantFlush int
	}{
		{"default cadence", nil, 2},
		{"every 10 fragments", []StreamOption{WithFlushEvery(10)}, 5},
		{"cadence larger than stream", []StreamOption{WithFlushEvery(1000)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := &FlushableWriter{Writer: &buf}
			if _, err := Stream(w, el, tt.opts...); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if w.FlushCount != tt.wantFlush {
				t.Errorf("FlushCount = %d, want %d", w.FlushCount, tt.wantFlush)
			}
			if got := String(el); buf.String() != got {
				t.Errorf("streamed output differs from String: %q vs %q", buf.String(), got)
			}
		})
	}
}

func TestStreamPlainWriter(t *testing.T) {
	div := markup.NewTag("div")
	el := div.New("x")

	var buf bytes.Buffer
	n, err := Stream(&buf, el)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "<div>x</div>" {
		t.Errorf("got %q", buf.String())
	}
	if n != int64(len("<div>x</div>")) {
		t.Errorf("n = %d", n)
	}
}

func TestStreamBufferedWriter(t *testing.T) {
	div := markup.NewTag("div")
	el := div.New(markup.Repeat(100, func(i int) any { return "x" }))

	var buf bytes.Buffer
	bw := bufio.NewWriterSize(&buf, 16)
	if _, err := Stream(bw, el, WithFlushEvery(8)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The final flush pushes everything through the bufio layer.
	if got, want := buf.String(), String(el); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !strings.Contains(buf.String(), "xxxx") {
		t.Error("content missing")
	}
}

func TestStreamInvalidCadenceFallsBack(t *testing.T) {
	cfg := streamConfig{flushEvery: DefaultFlushEvery}
	WithFlushEvery(0)(&cfg)
	if cfg.flushEvery != DefaultFlushEvery {
		t.Errorf("flushEvery = %d, want default %d", cfg.flushEvery, DefaultFlushEvery)
	}
	WithFlushEvery(-3)(&cfg)
	if cfg.flushEvery != DefaultFlushEvery {
		t.Errorf("flushEvery = %d, want default %d", cfg.flushEvery, DefaultFlushEvery)
	}
}
