package coord

import (
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Debug rendering of one pair's configuration space.

const drawPadding = 10

// DrawConfigSpace renders the conflict rectangles between robots a and b
// as a PNG, with a's arclength on the horizontal axis and b's on the
// vertical, and cats it to the terminal. lenA and lenB are the two path
// lengths; scale is pixels per metre.
func (d *Delta) DrawConfigSpace(a, b int, lenA, lenB, scale float64, file string) error {
	width := int(scale*lenA) + drawPadding*2
	height := int(scale*lenB) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)

	// The reachable configuration space.
	c.SetLineWidth(1)
	c.SetRGB(0.3, 0.3, 0.3)
	c.DrawRectangle(0, 0, lenA, lenB)
	c.Stroke()

	// Conflict rectangles, left/bottom guarded edges highlighted.
	for _, x := range d.Between(a, b) {
		c.DrawRectangle(x.Interval1.Lo, x.Interval2.Lo,
			x.Interval1.Hi-x.Interval1.Lo, x.Interval2.Hi-x.Interval2.Lo)
		c.SetRGB(0.5, 0, 0)
		c.FillPreserve()
		c.SetRGB(1, 0.5, 0)
		c.Stroke()

		if x.Orientation == 1 {
			c.MoveTo(x.Interval1.Lo, 0)
			c.LineTo(x.Interval1.Lo, x.Interval2.Hi)
		} else {
			c.MoveTo(0, x.Interval2.Lo)
			c.LineTo(x.Interval1.Hi, x.Interval2.Lo)
		}
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	if err := c.SavePNG(file); err != nil {
		return err
	}
	imgcat.CatFile(file, os.Stdout)
	return nil
}
