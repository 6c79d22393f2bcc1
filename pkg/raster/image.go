package raster

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrInvalidDimensions is returned when an image is created with a width or height below 1.
	ErrInvalidDimensions = errors.New("at least one dimension of the image is smaller than 1")

	// ErrNegativeCoordinate is reported when a pixel is addressed with x < 0 or y < 0.
	ErrNegativeCoordinate = errors.New("negative coordinate")

	// ErrInvalidSize is reported when a size argument (resize, rectangle, radius) is out of range.
	ErrInvalidSize = errors.New("invalid size")

	// ErrOutOfBounds is returned by ReadPixel for coordinates past the right or bottom edge.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// Image is a rectangular grid of on/off pixels.
// Every row has the same length and both dimensions are at least 1.
type Image struct {
	grid [][]bool
}

// New creates a width x height image with every pixel set to color.
func New(width, height int, color bool) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	grid := make([][]bool, height)
	for y := range grid {
		grid[y] = newRow(width, color)
	}
	return &Image{grid: grid}, nil
}

// MustNew is like New but panics on invalid dimensions.
func MustNew(width, height int, color bool) *Image {
	img, err := New(width, height, color)
	if err != nil {
		panic(err)
	}
	return img
}

func newRow(width int, color bool) []bool {
	row := make([]bool, width)
	if color {
		for x := range row {
			row[x] = true
		}
	}
	return row
}

// Width returns the number of columns.
func (img *Image) Width() int {
	return len(img.grid[0])
}

// Height returns the number of rows.
func (img *Image) Height() int {
	return len(img.grid)
}

// InBounds reports whether (x, y) addresses a pixel of the image.
func (img *Image) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < img.Width() && y < img.Height()
}

// At returns the pixel at (x, y), or false outside the image.
func (img *Image) At(x, y int) bool {
	if !img.InBounds(x, y) {
		return false
	}
	return img.grid[y][x]
}

// ReadPixel returns the pixel at (x, y).
func (img *Image) ReadPixel(x, y int) (bool, error) {
	if x < 0 || y < 0 {
		return false, fmt.Errorf("%w: (%d, %d)", ErrNegativeCoordinate, x, y)
	}
	if x >= img.Width() || y >= img.Height() {
		return false, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	return img.grid[y][x], nil
}

// WritePixel sets the pixel at (x, y).
// Negative coordinates are rejected with ErrNegativeCoordinate; coordinates past the
// right or bottom edge are clipped and return nil.
func (img *Image) WritePixel(x, y int, color bool) error {
	if x < 0 || y < 0 {
		return fmt.Errorf("%w: (%d, %d)", ErrNegativeCoordinate, x, y)
	}
	if x >= img.Width() || y >= img.Height() {
		return nil
	}
	img.grid[y][x] = color
	return nil
}

// FlipPixel negates the pixel at (x, y) with the same guards as WritePixel.
func (img *Image) FlipPixel(x, y int) error {
	if x < 0 || y < 0 {
		return fmt.Errorf("%w: (%d, %d)", ErrNegativeCoordinate, x, y)
	}
	if x >= img.Width() || y >= img.Height() {
		return nil
	}
	img.grid[y][x] = !img.grid[y][x]
	return nil
}

// Clear sets every pixel to color.
func (img *Image) Clear(color bool) {
	for _, row := range img.grid {
		for x := range row {
			row[x] = color
		}
	}
}

// Resize changes the image dimensions in place.
// Columns are adjusted first, then rows. New pixels are always off; existing pixels keep
// their value. A non-positive width or height is rejected and leaves the image unchanged.
func (img *Image) Resize(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: cannot resize to %dx%d", ErrInvalidSize, width, height)
	}

	if w := img.Width(); width > w {
		for y, row := range img.grid {
			img.grid[y] = append(row, make([]bool, width-w)...)
		}
	} else if width < w {
		for y, row := range img.grid {
			img.grid[y] = row[:width:width]
		}
	}

	if h := img.Height(); height > h {
		for i := h; i < height; i++ {
			img.grid = append(img.grid, newRow(width, false))
		}
	} else if height < h {
		img.grid = img.grid[:height:height]
	}
	return nil
}

// Coordinates enumerates every pixel coordinate in row-major order.
func (img *Image) Coordinates() []image.Point {
	points := make([]image.Point, 0, img.Width()*img.Height())
	for y, row := range img.grid {
		for x := range row {
			points = append(points, image.Point{X: x, Y: y})
		}
	}
	return points
}

// Invert flips every pixel, visiting them in Coordinates order.
func (img *Image) Invert() {
	for _, p := range img.Coordinates() {
		img.grid[p.Y][p.X] = !img.grid[p.Y][p.X]
	}
}

// CountOn returns the number of pixels that are on.
func (img *Image) CountOn() int {
	n := 0
	for _, row := range img.grid {
		for _, on := range row {
			if on {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the image.
func (img *Image) Clone() *Image {
	grid := make([][]bool, len(img.grid))
	for y, row := range img.grid {
		grid[y] = append([]bool(nil), row...)
	}
	return &Image{grid: grid}
}

// Equal reports whether both images have the same dimensions and pixels.
func (img *Image) Equal(other *Image) bool {
	if other == nil || img.Width() != other.Width() || img.Height() != other.Height() {
		return false
	}
	for y, row := range img.grid {
		for x, on := range row {
			if other.grid[y][x] != on {
				return false
			}
		}
	}
	return true
}
