// Command explorer is the interactive Mandelbrot explorer. It pans, zooms
// and adjusts iteration depth over a continuously refined render, exports
// snapshots to PNG and can serve the live frame to browsers.
//
// Keys: W/A/S/D or arrows pan, I/O zoom, E/Q iteration depth, R export,
// L cycle landmarks, B save bookmark, G cycle bookmarks, Escape quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/hajimehoshi/ebiten/v2"

	"mandelview/config"
	"mandelview/store"
	"mandelview/web"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	cfgPath := flag.String("config", "", "path to YAML config (optional)")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	var bookmarks *store.Store
	if cfg.Bookmarks.Path != "" {
		var err error
		bookmarks, err = store.Open(cfg.Bookmarks.Path)
		if err != nil {
			return fmt.Errorf("open bookmarks: %w", err)
		}
		defer bookmarks.Close()
	}

	app := newApp(cfg, bookmarks)

	if cfg.Remote.Enabled {
		srv := web.New(cfg.Remote.Listen, app)
		go func() {
			log.Printf("remote view on http://%s", cfg.Remote.Listen)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("remote view: %v", err)
			}
		}()
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(app)
}
