package main

import (
	"errors"
	"fmt"
	"image"
	"log"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	mandel "mandelview"
	"mandelview/config"
	"mandelview/render"
	"mandelview/store"
)

var errNoFrame = errors.New("no frame published yet")

// app is the ebiten front end around the render scheduler. All render state
// is touched only from Update/Draw; the published snapshot is the one piece
// shared with the remote-view goroutines, behind a mutex.
type app struct {
	cfg       config.Config
	sched     *render.Scheduler
	bookmarks *store.Store

	// Window size as reported by Layout.
	width, height int

	fbImg *ebiten.Image

	landmarkIdx int
	bookmarkIdx int

	mu     sync.Mutex
	latest *image.RGBA
}

func newApp(cfg config.Config, bookmarks *store.Store) *app {
	w, h := uint32(cfg.Window.Width), uint32(cfg.Window.Height)
	return &app{
		cfg:       cfg,
		sched:     render.NewScheduler(cfg.Params(w, h), nil, time.Duration(cfg.Frame.Budget)),
		bookmarks: bookmarks,
		width:     cfg.Window.Width,
		height:    cfg.Window.Height,
	}
}

// Update implements ebiten.Game. One call is one frame of the scheduler.
func (a *app) Update() error {
	if err := a.handleActions(); err != nil {
		return err
	}

	in := pollInput()
	p := a.sched.Params()
	if uint32(a.width) != p.Width || uint32(a.height) != p.Height {
		in.Width = uint32(a.width)
		in.Height = uint32(a.height)
	}

	if a.sched.Frame(in) && a.cfg.Remote.Enabled {
		a.publish()
	}
	return nil
}

// handleActions runs the one-shot key commands: quit, export, landmark and
// bookmark handling.
func (a *app) handleActions() error {
	switch pollAction() {
	case actionQuit:
		return ebiten.Termination

	case actionExport:
		img := copyFrame(a.sched.Buffer())
		if err := exportPNG(img, a.cfg.Export.Path); err != nil {
			log.Printf("export: %v", err)
			break
		}
		log.Printf("frame saved to %q", a.cfg.Export.Path)

	case actionLandmark:
		a.landmarkIdx = (a.landmarkIdx + 1) % len(mandel.Landmarks)
		l := mandel.Landmarks[a.landmarkIdx]
		a.jumpTo(l.View(uint32(a.width), uint32(a.height)))
		log.Printf("landmark: %s", l.Name)

	case actionSaveBookmark:
		if a.bookmarks == nil {
			break
		}
		name := time.Now().Format("2006-01-02T15:04:05")
		if err := a.bookmarks.Save(name, store.ViewOf(a.sched.Params())); err != nil {
			log.Printf("save bookmark: %v", err)
			break
		}
		log.Printf("bookmark saved: %s", name)

	case actionNextBookmark:
		if a.bookmarks == nil {
			break
		}
		if err := a.gotoNextBookmark(); err != nil {
			log.Printf("bookmark: %v", err)
		}
	}
	return nil
}

func (a *app) gotoNextBookmark() error {
	names, err := a.bookmarks.Names()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return errors.New("no bookmarks saved")
	}
	a.bookmarkIdx = (a.bookmarkIdx + 1) % len(names)
	name := names[a.bookmarkIdx]
	v, err := a.bookmarks.Get(name)
	if err != nil {
		return fmt.Errorf("load %q: %w", name, err)
	}
	a.jumpTo(v.Params(uint32(a.width), uint32(a.height)))
	log.Printf("bookmark: %s", name)
	return nil
}

func (a *app) jumpTo(p mandel.Params) {
	a.sched.SetParams(p)
}

// Draw implements ebiten.Game: blit the frame buffer to the screen. The
// buffer keeps its contents between frames, so partially refined renders
// stay visible.
func (a *app) Draw(screen *ebiten.Image) {
	buf := a.sched.Buffer()
	w, h := buf.Rect.Dx(), buf.Rect.Dy()
	if a.fbImg == nil || a.fbImg.Bounds().Dx() != w || a.fbImg.Bounds().Dy() != h {
		if a.fbImg != nil {
			a.fbImg.Deallocate()
		}
		a.fbImg = ebiten.NewImage(w, h)
	}
	a.fbImg.WritePixels(buf.Pix)
	screen.DrawImage(a.fbImg, nil)
}

// Layout implements ebiten.Game: render at the window's pixel size.
func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		a.width, a.height = outsideWidth, outsideHeight
	}
	return a.width, a.height
}

// publish stores a copy of the frame buffer for the remote view.
func (a *app) publish() {
	img := copyFrame(a.sched.Buffer())
	a.mu.Lock()
	a.latest = img
	a.mu.Unlock()
}

// Snapshot implements mandel.Snapshotter for the remote view.
func (a *app) Snapshot() (*image.RGBA, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.latest == nil {
		return nil, errNoFrame
	}
	return copyFrame(a.latest), nil
}

func copyFrame(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Rect)
	copy(dst.Pix, src.Pix)
	return dst
}
