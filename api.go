package mandel

import (
	"image"
)

// Snapshotter hands out a copy of the most recently presented frame. The
// explorer implements it for the exporter and the remote view; copies are
// taken so callers never observe a half-painted buffer.
type Snapshotter interface {
	Snapshot() (*image.RGBA, error)
}
