package pointer

import "fmt"

// ScrollDelta is the amount of a scroll. The concrete type is one of
// PixelDelta, LineDelta or PageDelta; values are never converted between
// units.
type ScrollDelta interface {
	isScrollDelta()
	fmt.Stringer
}

// PixelDelta is a scroll amount in physical pixels.
type PixelDelta struct {
	X float64
	Y float64
}

// LineDelta is a scroll amount in lines (or rows and columns).
type LineDelta struct {
	X float32
	Y float32
}

// PageDelta is a scroll amount in pages.
type PageDelta struct {
	X float32
	Y float32
}

func (PixelDelta) isScrollDelta() {}
func (LineDelta) isScrollDelta()  {}
func (PageDelta) isScrollDelta()  {}

func (d PixelDelta) String() string { return fmt.Sprintf("%gpx,%gpx", d.X, d.Y) }
func (d LineDelta) String() string  { return fmt.Sprintf("%g lines,%g lines", d.X, d.Y) }
func (d PageDelta) String() string  { return fmt.Sprintf("%g pages,%g pages", d.X, d.Y) }
