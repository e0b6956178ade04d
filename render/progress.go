// Package render holds the progressive, time-budgeted Mandelbrot renderer:
// a resumable coarse-to-fine block traversal over the frame buffer and the
// per-frame scheduler that drives it against a wall-clock deadline.
package render

// InitialBlockSize is the edge length of the coarsest paint pass. Each
// completed pass over the buffer halves it, down to single pixels.
const InitialBlockSize = 128

type phase uint8

const (
	phaseScanning phase = iota
	phaseDone
)

// Progress is the resumable traversal state of one render: which block of
// which refinement level gets painted next. It is owned by the frame loop
// and rebuilt whenever the view changes; the buffer it paints into is never
// cleared, stale pixels are simply overwritten by the next coarse pass.
type Progress struct {
	state     phase
	blockSize uint32
	indexX    uint32
	indexY    uint32
}

// NewProgress returns the initial state: scanning from the top-left at the
// coarsest block size.
func NewProgress() Progress {
	return Progress{blockSize: InitialBlockSize}
}

// Reset rewinds to the initial state.
func (p *Progress) Reset() {
	*p = NewProgress()
}

// Done reports whether the finest pass has completed. Once true it stays
// true until Reset.
func (p *Progress) Done() bool {
	return p.state == phaseDone
}

// BlockSize returns the edge length of the refinement level currently being
// painted, or 0 once the traversal has finished its finest pass.
func (p *Progress) BlockSize() uint32 {
	return p.blockSize
}
