package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	mandel "mandelview"
)

// pollInput reads the held navigation keys. Pan and zoom repeat while held;
// iteration depth changes once per key press so a tap doubles exactly once.
func pollInput() mandel.Input {
	var in mandel.Input

	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.PanUp = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.PanDown = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.PanLeft = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.PanRight = true
	}

	if ebiten.IsKeyPressed(ebiten.KeyI) {
		in.ZoomIn = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyO) {
		in.ZoomOut = true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		in.IterUp = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		in.IterDown = true
	}

	return in
}

type action int

const (
	actionNone action = iota
	actionQuit
	actionExport
	actionLandmark
	actionSaveBookmark
	actionNextBookmark
)

// pollAction reads the one-shot command keys.
func pollAction() action {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return actionQuit
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return actionExport
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		return actionLandmark
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		return actionSaveBookmark
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		return actionNextBookmark
	}
	return actionNone
}
