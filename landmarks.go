package mandel

// Landmark is a named view of the set: a center point, the visible width
// along the real axis, and an iteration depth that resolves the detail at
// that zoom level.
type Landmark struct {
	Name       string
	Center     complex128
	RealDomain float64
	Iterations uint32
}

// View builds the Params for this landmark at the given buffer size.
func (l Landmark) View(width, height uint32) Params {
	return Params{
		Center:     l.Center,
		Width:      width,
		Height:     height,
		RealDomain: l.RealDomain,
		Iterations: l.Iterations,
	}
}

// Classic landmarks in the Mandelbrot set.
var (
	// Home – the full set centered on the origin
	Home = Landmark{
		Name:       "home",
		RealDomain: 4.0,
		Iterations: 64,
	}

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Landmark{
		Name:       "seahorse-valley",
		Center:     complex(-0.75, 0.10),
		RealDomain: 0.1,
		Iterations: 512,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Landmark{
		Name:       "elephant-valley",
		Center:     complex(-1.80, -0.06),
		RealDomain: 0.1,
		Iterations: 512,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Landmark{
		Name:       "spiral-minibrot",
		Center:     complex(-0.74275, 0.13175),
		RealDomain: 0.0015,
		Iterations: 2048,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Landmark{
		Name:       "triple-spiral",
		Center:     complex(-0.7465, 0.0965),
		RealDomain: 0.003,
		Iterations: 1024,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Landmark{
		Name:       "valley-of-the-dragon",
		Center:     complex(-0.7375, 0.1825),
		RealDomain: 0.005,
		Iterations: 1024,
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Landmark{
		Name:       "minibrot-in-mini-spiral",
		Center:     complex(-1.73825, -0.02275),
		RealDomain: 0.0015,
		Iterations: 2048,
	}
)

// Landmarks lists the catalogue in cycling order, starting from the home
// view.
var Landmarks = []Landmark{
	Home,
	SeahorseValley,
	ElephantValley,
	SpiralMinibrot,
	TripleSpiral,
	ValleyOfTheDragon,
	MinibrotInMiniSpiral,
}

// LandmarkByName looks a landmark up by its name.
func LandmarkByName(name string) (Landmark, bool) {
	for _, l := range Landmarks {
		if l.Name == name {
			return l, true
		}
	}
	return Landmark{}, false
}
