// Package web serves the live render to browsers: a static page, a one-shot
// PNG snapshot endpoint, and a websocket that pushes fresh snapshots while
// the progressive render refines.
package web

import (
	"bytes"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"

	mandel "mandelview"
)

// pushInterval is how often the websocket endpoint sends a fresh snapshot.
const pushInterval = 200 * time.Millisecond

// New creates the remote-view server for files in ./static plus the
// snapshot endpoints. The caller owns ListenAndServe and shutdown.
func New(addr string, src mandel.Snapshotter) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(src))
	mux.HandleFunc("/frame.png", frameHandler(src))
	mux.Handle("/", http.FileServer(http.Dir("./static")))

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// frameHandler serves a single PNG snapshot of the current frame.
func frameHandler(src mandel.Snapshotter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		img, err := src.Snapshot()
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		if err := png.Encode(w, img); err != nil {
			log.Printf("encode frame: %v", err)
		}
	}
}

// websocketHandler upgrades the connection and pushes PNG-encoded snapshots
// at a fixed interval until the client goes away.
func websocketHandler(src mandel.Snapshotter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}
		defer c.CloseNow()

		ctx := r.Context()
		ticker := time.NewTicker(pushInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			img, err := src.Snapshot()
			if err != nil {
				// No frame published yet.
				continue
			}
			var buf bytes.Buffer
			if err := png.Encode(&buf, img); err != nil {
				log.Printf("encode frame: %v", err)
				return
			}
			if err := c.Write(ctx, websocket.MessageBinary, buf.Bytes()); err != nil {
				return
			}
		}
	}
}
