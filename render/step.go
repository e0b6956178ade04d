package render

import (
	"image"
	"image/color"

	mandel "mandelview"
)

// Step advances the render by exactly one transition: paint one block, wrap
// to the next row, halve the block size for the next pass, or finish. Calls
// after the traversal is done are no-ops, so the frame loop can invoke it
// unconditionally inside its time budget.
//
// The row and column bounds use strict >, so a block whose top-left corner
// lies exactly on the buffer edge still counts as part of the grid. That
// admits one extra (fully clipped) block column and row per pass; the paint
// itself clips, so the only effect is the exact step count.
func Step(img *image.RGBA, p mandel.Params, pr *Progress) {
	if pr.state == phaseDone {
		return
	}

	tlx := pr.indexX * pr.blockSize
	tly := pr.indexY * pr.blockSize

	switch {
	case tlx > p.Width:
		// Row exhausted. Wrap to the start of the next one.
		pr.indexX = 0
		pr.indexY++
	case tly > p.Height:
		// Pass complete. Restart from the top at half the block size.
		pr.indexY = 0
		pr.blockSize /= 2
	case pr.blockSize < 1:
		pr.state = phaseDone
	default:
		paintBlock(img, p, pr)
		pr.indexX++
	}
}

// paintBlock samples the escape time once, at the center of the current
// block, and fills the whole block with the resulting gray. At block size 1
// the center is the pixel itself, so the final pass is per-pixel exact.
func paintBlock(img *image.RGBA, p mandel.Params, pr *Progress) {
	tlx := pr.indexX * pr.blockSize
	tly := pr.indexY * pr.blockSize

	cx := tlx + pr.blockSize/2
	cy := tly + pr.blockSize/2
	n := mandel.EscapeTime(p.ScreenToWorld(int(cx), int(cy)), p.Iterations)

	v := uint8(255 * n / p.Iterations)
	gray := color.RGBA{R: v, G: v, B: v, A: 0xff}

	for y := tly; y < tly+pr.blockSize && y < p.Height; y++ {
		for x := tlx; x < tlx+pr.blockSize && x < p.Width; x++ {
			img.SetRGBA(int(x), int(y), gray)
		}
	}
}
