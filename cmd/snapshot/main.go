// Command snapshot renders a single view to completion, with no frame
// deadline, and writes the result as a PNG file.
//
//	snapshot -landmark seahorse-valley -width 1920 -height 1080 -o seahorse.png
//	snapshot -re -0.74275 -im 0.13175 -domain 0.0015 -iter 2048
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	mandel "mandelview"
	"mandelview/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	landmark := flag.String("landmark", "", "render a named landmark instead of explicit coordinates")
	re := flag.Float64("re", 0, "real part of the view center")
	im := flag.Float64("im", 0, "imaginary part of the view center")
	domain := flag.Float64("domain", mandel.DefaultRealDomain, "visible width along the real axis")
	iter := flag.Uint("iter", mandel.DefaultMaxIter, "escape-time iteration cap")
	width := flag.Uint("width", 1920, "output width in pixels")
	height := flag.Uint("height", 1080, "output height in pixels")
	out := flag.String("o", "mandel.png", "output file")
	flag.Parse()

	if *width == 0 || *height == 0 {
		return fmt.Errorf("output size %dx%d: both dimensions must be positive", *width, *height)
	}

	var params mandel.Params
	if *landmark != "" {
		l, ok := mandel.LandmarkByName(*landmark)
		if !ok {
			return fmt.Errorf("unknown landmark %q", *landmark)
		}
		params = l.View(uint32(*width), uint32(*height))
	} else {
		if *domain <= 0 {
			return fmt.Errorf("domain %v: must be positive", *domain)
		}
		if *iter < mandel.MinIter || *iter > mandel.MaxIter {
			return fmt.Errorf("iter %d: must be in [%d, %d]", *iter, mandel.MinIter, mandel.MaxIter)
		}
		params = mandel.Params{
			Center:     complex(*re, *im),
			Width:      uint32(*width),
			Height:     uint32(*height),
			RealDomain: *domain,
			Iterations: uint32(*iter),
		}
	}

	log.Printf("rendering %dx%d at %v, domain %v, %d iterations",
		params.Width, params.Height, params.Center, params.RealDomain, params.Iterations)

	sched := render.NewScheduler(params, nil, render.FrameBudget)
	img := sched.Drain()

	f, err := os.Create(*out)
	if err != nil {
		return fmt.Errorf("create %q: %w", *out, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}

	log.Printf("fully rendered file saved to %q", *out)
	return nil
}
