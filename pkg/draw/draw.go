// Package draw rasterizes geometric shapes onto a two-color canvas.
//
// Every pixel write goes through the canvas' guarded WritePixel, so shapes that overscan
// the canvas are clipped instead of aborting mid-draw. Invalid arguments (negative origins,
// non-positive sizes) are rejected before any pixel is written.
package draw

import (
	"cmp"
	"fmt"
	"image"
	"math"
	"slices"

	"github.com/aretw0/ipcli/pkg/raster"
)

// Canvas is the pixel surface the algorithms draw on. *raster.Image implements it.
type Canvas interface {
	Width() int
	Height() int
	At(x, y int) bool
	WritePixel(x, y int, color bool) error
}

var _ Canvas = (*raster.Image)(nil)

// plotter writes pixels of a single color and keeps the first write warning.
// clipped is set when a shape stops scanning at the canvas edge, so skipped is a lower bound.
type plotter struct {
	canvas  Canvas
	color   bool
	first   error
	skipped int
	clipped bool
}

func newPlotter(c Canvas, color bool) *plotter {
	return &plotter{canvas: c, color: color}
}

func (p *plotter) plot(x, y int) {
	if err := p.canvas.WritePixel(x, y, p.color); err != nil {
		if p.first == nil {
			p.first = err
		}
		p.skipped++
	}
}

// clip records the warning for pixels left of or above the canvas without visiting them.
// (x, y) is one such pixel.
func (p *plotter) clip(x, y int) {
	p.plot(x, y)
	p.clipped = true
}

func (p *plotter) err() error {
	if p.first == nil {
		return nil
	}
	if p.clipped {
		return fmt.Errorf("%w (clipped at canvas edge)", p.first)
	}
	if p.skipped == 1 {
		return p.first
	}
	return fmt.Errorf("%w (%d pixels skipped)", p.first, p.skipped)
}

func negativeOrigin(x, y int) error {
	if x < 0 || y < 0 {
		return fmt.Errorf("%w: (%d, %d)", raster.ErrNegativeCoordinate, x, y)
	}
	return nil
}

// Rectangle fills the half-open box [x, x+w) x [y, y+h).
func Rectangle(c Canvas, x, y, w, h int, color bool) error {
	if err := negativeOrigin(x, y); err != nil {
		return err
	}
	if w < 1 || h < 1 {
		return fmt.Errorf("%w: rectangle %dx%d", raster.ErrInvalidSize, w, h)
	}
	p := newPlotter(c, color)
	for j := y; j < min(y+h, c.Height()); j++ {
		for i := x; i < min(x+w, c.Width()); i++ {
			p.plot(i, j)
		}
	}
	return p.err()
}

// RectangleOutline draws the four edges of the box [x, x+w) x [y, y+h).
func RectangleOutline(c Canvas, x, y, w, h int, color bool) error {
	if err := negativeOrigin(x, y); err != nil {
		return err
	}
	if w < 1 || h < 1 {
		return fmt.Errorf("%w: rectangle %dx%d", raster.ErrInvalidSize, w, h)
	}
	right, bottom := x+w-1, y+h-1
	p := newPlotter(c, color)
	line(p, x, y, right, y)
	line(p, x, bottom, right, bottom)
	line(p, x, y, x, bottom)
	line(p, right, y, right, bottom)
	return p.err()
}

// Line draws a segment from (x1, y1) to (x2, y2).
// It steps one pixel at a time along the dominant axis and rounds the other coordinate,
// so the line has no gaps along that axis.
func Line(c Canvas, x1, y1, x2, y2 int, color bool) error {
	p := newPlotter(c, color)
	line(p, x1, y1, x2, y2)
	return p.err()
}

func line(p *plotter, x1, y1, x2, y2 int) {
	dx, dy := x2-x1, y2-y1
	if dx == 0 && dy == 0 {
		p.plot(x1, y1)
		return
	}
	if abs(dx) >= abs(dy) {
		if x1 > x2 {
			x1, y1, x2, y2 = x2, y2, x1, y1
		}
		slope := float64(y2-y1) / float64(x2-x1)
		at := func(x int) int { return int(math.Round(float64(y1) + slope*float64(x-x1))) }
		from, to := span(x1, x2, p.canvas.Width())
		if from > x1 {
			p.plot(x1, at(x1))
			p.skipped += min(x2, -1) - x1
		}
		for x := from; x <= to; x++ {
			p.plot(x, at(x))
		}
		return
	}
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	slope := float64(x2-x1) / float64(y2-y1)
	at := func(y int) int { return int(math.Round(float64(x1) + slope*float64(y-y1))) }
	from, to := span(y1, y2, p.canvas.Height())
	if from > y1 {
		p.plot(at(y1), y1)
		p.skipped += min(y2, -1) - y1
	}
	for y := from; y <= to; y++ {
		p.plot(at(y), y)
	}
}

// span clips the inclusive range [lo, hi] of a line's major axis to [0, size).
// Steps before 0 always fail the negative-coordinate guard and steps at or past size are
// always clipped, so neither needs walking.
func span(lo, hi, size int) (int, int) {
	return max(lo, 0), min(hi, size-1)
}

// CurveSamples is the number of parameter values sampled along a quadratic curve.
const CurveSamples = 101

// Curve draws the quadratic Bezier curve with control points (x0, y0), (x1, y1), (x2, y2).
// The curve is sampled at CurveSamples evenly spaced values of t in [0, 1]; every pixel in
// the control points' bounding box that a sample rounds to is drawn.
func Curve(c Canvas, x0, y0, x1, y1, x2, y2 int, color bool) error {
	hits := make(map[image.Point]struct{}, CurveSamples)
	for i := 0; i < CurveSamples; i++ {
		t := float64(i) / float64(CurveSamples-1)
		hits[quadPoint(t, x0, y0, x1, y1, x2, y2)] = struct{}{}
	}

	// Rounded samples stay inside the control points' bounding box, so plotting the hits in
	// row-major order matches a scan of that box.
	points := make([]image.Point, 0, len(hits))
	for pt := range hits {
		points = append(points, pt)
	}
	slices.SortFunc(points, func(a, b image.Point) int {
		if a.Y != b.Y {
			return cmp.Compare(a.Y, b.Y)
		}
		return cmp.Compare(a.X, b.X)
	})
	p := newPlotter(c, color)
	for _, pt := range points {
		p.plot(pt.X, pt.Y)
	}
	return p.err()
}

func quadPoint(t float64, x0, y0, x1, y1, x2, y2 int) image.Point {
	u := 1 - t
	a, b, cc := u*u, 2*u*t, t*t
	x := a*float64(x0) + b*float64(x1) + cc*float64(x2)
	y := a*float64(y0) + b*float64(y1) + cc*float64(y2)
	return image.Point{X: int(math.Round(x)), Y: int(math.Round(y))}
}

func validateCircle(xc, yc, radius int) error {
	if err := negativeOrigin(xc, yc); err != nil {
		return err
	}
	if radius < 0 {
		return fmt.Errorf("%w: radius %d", raster.ErrInvalidSize, radius)
	}
	return nil
}

// Circle fills the disk of pixels strictly closer than radius to (xc, yc).
func Circle(c Canvas, xc, yc, radius int, color bool) error {
	if err := validateCircle(xc, yc, radius); err != nil {
		return err
	}
	r2 := radius * radius
	p := newPlotter(c, color)
	left, top := xc-radius+1, yc-radius+1
	if radius > 0 && (left < 0 || top < 0) {
		// (left, yc) and (xc, top) both lie inside the disk.
		if left < 0 {
			p.clip(left, yc)
		} else {
			p.clip(xc, top)
		}
	}
	for y := max(top, 0); y < min(yc+radius, c.Height()); y++ {
		for x := max(left, 0); x < min(xc+radius, c.Width()); x++ {
			dx, dy := x-xc, y-yc
			if dx*dx+dy*dy < r2 {
				p.plot(x, y)
			}
		}
	}
	return p.err()
}

// CircleOutline draws a circle of the given radius around (xc, yc) using the integer
// midpoint algorithm in Jesko's formulation, plotting the eight symmetric octant points.
func CircleOutline(c Canvas, xc, yc, radius int, color bool) error {
	if err := validateCircle(xc, yc, radius); err != nil {
		return err
	}
	p := newPlotter(c, color)
	t1 := radius / 16
	x, y := radius, 0
	for x >= y {
		if y > xc && y > yc && y >= c.Width()-xc && y >= c.Height()-yc {
			// Every remaining octant point is past an edge.
			p.clip(xc-x, yc-y)
			break
		}
		p.plot(xc+x, yc+y)
		p.plot(xc+x, yc-y)
		p.plot(xc-x, yc+y)
		p.plot(xc-x, yc-y)
		p.plot(xc+y, yc+x)
		p.plot(xc+y, yc-x)
		p.plot(xc-y, yc+x)
		p.plot(xc-y, yc-x)
		y++
		t1 += y
		if t2 := t1 - x; t2 >= 0 {
			t1 = t2
			x--
		}
	}
	return p.err()
}

// FloodFill recolors the 4-connected region around the seed (x, y) to color.
// It is a no-op when the seed already has the target color or lies past the canvas edge.
// An explicit worklist keeps the stack depth constant regardless of canvas size.
func FloodFill(c Canvas, x, y int, color bool) error {
	if err := negativeOrigin(x, y); err != nil {
		return err
	}
	inBounds := func(px, py int) bool {
		return px >= 0 && py >= 0 && px < c.Width() && py < c.Height()
	}
	if !inBounds(x, y) || c.At(x, y) == color {
		return nil
	}

	p := newPlotter(c, color)
	stack := []image.Point{{X: x, Y: y}}
	for len(stack) > 0 {
		pt := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !inBounds(pt.X, pt.Y) || c.At(pt.X, pt.Y) == color {
			continue
		}
		p.plot(pt.X, pt.Y)
		stack = append(stack,
			image.Point{X: pt.X + 1, Y: pt.Y},
			image.Point{X: pt.X - 1, Y: pt.Y},
			image.Point{X: pt.X, Y: pt.Y + 1},
			image.Point{X: pt.X, Y: pt.Y - 1},
		)
	}
	return p.err()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
