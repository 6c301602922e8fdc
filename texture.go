package pyramid

// Checker is a tightly packed RGB bitmap.
type Checker struct {
	Width, Height int
	Pix           []byte // 3 bytes per pixel, row-major
}

var (
	checkerEven = [3]byte{255, 255, 255}
	checkerOdd  = [3]byte{50, 50, 200}
)

// NewChecker fills a w×h bitmap with alternating squares by (x+y) parity.
func NewChecker(w, h int) *Checker {
	c := &Checker{Width: w, Height: h, Pix: make([]byte, w*h*3)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			col := checkerOdd
			if (x+y)%2 == 0 {
				col = checkerEven
			}
			copy(c.Pix[(y*w+x)*3:], col[:])
		}
	}
	return c
}

// At returns the pixel at (x, y).
func (c *Checker) At(x, y int) [3]byte {
	i := (y*c.Width + x) * 3
	return [3]byte{c.Pix[i], c.Pix[i+1], c.Pix[i+2]}
}
