package mandel

// Tuning constants for viewport updates. Pan speed scales with the visible
// domain so movement feels constant at any zoom depth.
const (
	PanFraction = 0.02
	ZoomFactor  = 0.95

	MinIter = 1
	MaxIter = 1 << 20

	DefaultRealDomain = 4.0
	DefaultMaxIter    = 64
)

// Params describes the view: which part of the complex plane is mapped onto
// the pixel buffer, and how deep the escape-time iteration goes. It is a
// comparable value type; the render loop detects view changes with !=.
type Params struct {
	Center     complex128
	Width      uint32
	Height     uint32
	RealDomain float64
	Iterations uint32
}

// DefaultParams returns the home view: the whole set centered on the origin.
func DefaultParams(width, height uint32) Params {
	return Params{
		Width:      width,
		Height:     height,
		RealDomain: DefaultRealDomain,
		Iterations: DefaultMaxIter,
	}
}

// ScreenToWorld maps a pixel coordinate to the complex-plane point it
// represents. The vertical span is aspect-corrected so the set is not
// stretched. Width must be nonzero; the caller guarantees this by
// construction.
func (p Params) ScreenToWorld(x, y int) complex128 {
	w := float64(p.Width)
	h := float64(p.Height)
	imagDomain := p.RealDomain * h / w

	re := real(p.Center) + p.RealDomain*(float64(x)-w/2)/w
	im := imag(p.Center) + imagDomain*(float64(y)-h/2)/h
	return complex(re, im)
}

// Input is one frame's worth of view deltas, collected by the frontend and
// applied as a whole before any rendering happens.
type Input struct {
	PanUp, PanDown, PanLeft, PanRight bool
	ZoomIn, ZoomOut                   bool
	IterUp, IterDown                  bool

	// Both nonzero on a window resize.
	Width, Height uint32
}

// Apply returns a new Params with in's deltas applied. Iteration depth is
// clamped to [MinIter, MaxIter].
func (p Params) Apply(in Input) Params {
	next := p

	if in.PanUp {
		next.Center -= complex(0, PanFraction*next.RealDomain)
	}
	if in.PanDown {
		next.Center += complex(0, PanFraction*next.RealDomain)
	}
	if in.PanLeft {
		next.Center -= complex(PanFraction*next.RealDomain, 0)
	}
	if in.PanRight {
		next.Center += complex(PanFraction*next.RealDomain, 0)
	}

	if in.ZoomIn {
		next.RealDomain *= ZoomFactor
	}
	if in.ZoomOut {
		next.RealDomain /= ZoomFactor
	}

	if in.IterDown {
		next.Iterations /= 2
		if next.Iterations < MinIter {
			next.Iterations = MinIter
		}
	}
	if in.IterUp {
		next.Iterations *= 2
		if next.Iterations > MaxIter {
			next.Iterations = MaxIter
		}
	}

	if in.Width != 0 && in.Height != 0 {
		next.Width = in.Width
		next.Height = in.Height
	}

	return next
}
