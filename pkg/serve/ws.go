package serve

import (
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// FeedHandler streams a page over a WebSocket, one text message per
// fragment, then closes with a normal closure. It puts the fragment
// sequence itself on the wire, which the load tools use to observe
// inter-fragment timing.
func FeedHandler(page PageFunc, opts ...Option) http.Handler {
	cfg := newConfig(opts...)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r, span := cfg.startSpan(r)

		node, err := page(r)
		if err != nil {
			cfg.logger.Error("page build failed", "path", r.URL.Path, "error", err)
			if cfg.metrics != nil {
				cfg.metrics.requests.WithLabelValues(r.URL.Path, "error").Inc()
			}
			endSpan(span, 0, 0, err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already written its own HTTP error.
			cfg.logger.Error("websocket upgrade failed", "path", r.URL.Path, "error", err)
			endSpan(span, 0, 0, err)
			return
		}
		defer conn.Close()

		status := "ok"
		var fragments, written int64
		var streamErr error
		for f := range node.Fragments() {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(f)); err != nil {
				cfg.logger.Warn("feed aborted", "path", r.URL.Path, "fragments", fragments, "error", err)
				status = "aborted"
				streamErr = err
				break
			}
			fragments++
			written += int64(len(f))
		}

		// Settle the accounting before the close frame goes out, so a
		// client that saw the closure also sees the final counts.
		if cfg.metrics != nil {
			cfg.metrics.requests.WithLabelValues(r.URL.Path, status).Inc()
			cfg.metrics.fragments.Add(float64(fragments))
			cfg.metrics.bytes.Add(float64(written))
		}
		endSpan(span, fragments, written, streamErr)

		if status == "ok" {
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			if err := conn.WriteMessage(websocket.CloseMessage, msg); err != nil {
				cfg.logger.Debug("close message failed", "path", r.URL.Path, "error", err)
			}
		}
	})
}
