package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// exportPNG writes img to path as a PNG file.
func exportPNG(img *image.RGBA, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode PNG: %w", err)
	}
	return f.Close()
}
