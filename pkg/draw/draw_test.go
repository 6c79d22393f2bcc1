package draw_test

import (
	"image"
	"testing"

	"github.com/aretw0/ipcli/pkg/draw"
	"github.com/aretw0/ipcli/pkg/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func onPixels(img *raster.Image) map[image.Point]bool {
	set := make(map[image.Point]bool)
	for _, p := range img.Coordinates() {
		if img.At(p.X, p.Y) {
			set[p] = true
		}
	}
	return set
}

func TestRectangle(t *testing.T) {
	img := raster.MustNew(10, 10, false)
	require.NoError(t, draw.Rectangle(img, 1, 1, 5, 3, true))

	assert.Equal(t, 15, img.CountOn())
	for _, p := range img.Coordinates() {
		inside := p.X >= 1 && p.X < 6 && p.Y >= 1 && p.Y < 4
		assert.Equal(t, inside, img.At(p.X, p.Y), "pixel %v", p)
	}
}

func TestRectangle_Rejects(t *testing.T) {
	img := raster.MustNew(5, 5, false)
	assert.ErrorIs(t, draw.Rectangle(img, -1, 0, 2, 2, true), raster.ErrNegativeCoordinate)
	assert.ErrorIs(t, draw.Rectangle(img, 0, 0, 0, 2, true), raster.ErrInvalidSize)
	assert.ErrorIs(t, draw.RectangleOutline(img, 0, 0, 2, -1, true), raster.ErrInvalidSize)
	assert.Equal(t, 0, img.CountOn())
}

func TestRectangle_ClipsAtEdge(t *testing.T) {
	img := raster.MustNew(4, 4, false)
	require.NoError(t, draw.Rectangle(img, 2, 2, 10, 10, true))
	assert.Equal(t, 4, img.CountOn())
	assert.Equal(t, 4, img.Width())
}

func TestRectangleOutline(t *testing.T) {
	img := raster.MustNew(8, 8, false)
	require.NoError(t, draw.RectangleOutline(img, 1, 2, 4, 3, true))

	// 4x3 box border: 2*4 + 2*(3-2) pixels
	assert.Equal(t, 10, img.CountOn())
	assert.True(t, img.At(1, 2))
	assert.True(t, img.At(4, 4))
	assert.False(t, img.At(2, 3), "interior must stay off")
}

func TestLine(t *testing.T) {
	t.Run("Horizontal", func(t *testing.T) {
		img := raster.MustNew(6, 3, false)
		require.NoError(t, draw.Line(img, 5, 1, 0, 1, true))
		assert.Equal(t, 6, img.CountOn())
	})

	t.Run("Vertical", func(t *testing.T) {
		img := raster.MustNew(3, 6, false)
		require.NoError(t, draw.Line(img, 1, 0, 1, 5, true))
		assert.Equal(t, 6, img.CountOn())
	})

	t.Run("Single point", func(t *testing.T) {
		img := raster.MustNew(3, 3, false)
		require.NoError(t, draw.Line(img, 2, 2, 2, 2, true))
		assert.Equal(t, 1, img.CountOn())
		assert.True(t, img.At(2, 2))
	})

	t.Run("Diagonal", func(t *testing.T) {
		img := raster.MustNew(5, 5, false)
		require.NoError(t, draw.Line(img, 0, 0, 4, 4, true))
		for i := 0; i < 5; i++ {
			assert.True(t, img.At(i, i))
		}
		assert.Equal(t, 5, img.CountOn())
	})

	t.Run("No gaps along dominant axis", func(t *testing.T) {
		img := raster.MustNew(10, 10, false)
		require.NoError(t, draw.Line(img, 0, 9, 3, 0, true))
		for y := 0; y < 10; y++ {
			found := false
			for x := 0; x < 10; x++ {
				found = found || img.At(x, y)
			}
			assert.True(t, found, "row %d has no pixel", y)
		}
	})

	t.Run("Negative overscan is warned", func(t *testing.T) {
		img := raster.MustNew(5, 5, false)
		err := draw.Line(img, -2, 0, 4, 0, true)
		assert.ErrorIs(t, err, raster.ErrNegativeCoordinate)
		assert.Equal(t, 5, img.CountOn())
	})
}

func TestCurve(t *testing.T) {
	img := raster.MustNew(12, 12, false)
	require.NoError(t, draw.Curve(img, 0, 0, 5, 10, 10, 0, true))

	assert.True(t, img.At(0, 0), "start point")
	assert.True(t, img.At(10, 0), "end point")
	// t = 0.5 lands on (5, 5)
	assert.True(t, img.At(5, 5))
	for p := range onPixels(img) {
		assert.LessOrEqual(t, p.X, 10)
		assert.LessOrEqual(t, p.Y, 10)
	}
}

func TestCurve_Collinear(t *testing.T) {
	img := raster.MustNew(10, 3, false)
	require.NoError(t, draw.Curve(img, 0, 1, 4, 1, 9, 1, true))
	assert.Equal(t, 10, img.CountOn())
}

func TestCircle(t *testing.T) {
	img := raster.MustNew(15, 15, false)
	require.NoError(t, draw.Circle(img, 7, 7, 4, true))

	for _, p := range img.Coordinates() {
		dx, dy := p.X-7, p.Y-7
		assert.Equal(t, dx*dx+dy*dy < 16, img.At(p.X, p.Y), "pixel %v", p)
	}
}

func TestCircle_Rejects(t *testing.T) {
	img := raster.MustNew(5, 5, false)
	assert.ErrorIs(t, draw.Circle(img, -1, 2, 2, true), raster.ErrNegativeCoordinate)
	assert.ErrorIs(t, draw.Circle(img, 2, 2, -1, true), raster.ErrInvalidSize)
	assert.ErrorIs(t, draw.CircleOutline(img, 2, 2, -3, true), raster.ErrInvalidSize)
	assert.Equal(t, 0, img.CountOn())
}

func TestCircleOutline(t *testing.T) {
	const xc, yc, r = 10, 10, 6
	img := raster.MustNew(21, 21, false)
	require.NoError(t, draw.CircleOutline(img, xc, yc, r, true))

	outline := onPixels(img)
	require.NotEmpty(t, outline)
	assert.True(t, outline[image.Point{X: xc + r, Y: yc}])
	assert.True(t, outline[image.Point{X: xc, Y: yc - r}])

	for p := range outline {
		dx, dy := p.X-xc, p.Y-yc
		d2 := dx*dx + dy*dy
		assert.Less(t, d2, (r+1)*(r+1), "pixel %v too far", p)
		assert.Greater(t, d2, (r-1)*(r-1), "pixel %v too close", p)
		// eight-fold symmetry
		assert.True(t, outline[image.Point{X: xc - dx, Y: yc + dy}])
		assert.True(t, outline[image.Point{X: xc + dy, Y: yc + dx}])
	}
}

func TestCircleOutline_HugsDisk(t *testing.T) {
	const xc, yc, r = 8, 8, 5
	img := raster.MustNew(17, 17, false)
	require.NoError(t, draw.CircleOutline(img, xc, yc, r, true))
	outline := onPixels(img)

	require.NoError(t, draw.Circle(img, xc, yc, r, true))
	disk := raster.MustNew(17, 17, false)
	require.NoError(t, draw.Circle(disk, xc, yc, r, true))

	// The union only adds rim pixels to the disk.
	for p := range onPixels(img) {
		if disk.At(p.X, p.Y) {
			continue
		}
		assert.True(t, outline[p], "pixel %v is in neither shape", p)
	}
}

func TestFloodFill(t *testing.T) {
	img := raster.MustNew(7, 7, false)
	require.NoError(t, draw.RectangleOutline(img, 1, 1, 5, 5, true))

	require.NoError(t, draw.FloodFill(img, 3, 3, true))
	assert.Equal(t, 25, img.CountOn(), "interior filled, outside untouched")
	assert.False(t, img.At(0, 0))

	require.NoError(t, draw.FloodFill(img, 0, 0, true))
	assert.Equal(t, 49, img.CountOn())
}

func TestFloodFill_Idempotent(t *testing.T) {
	img := raster.MustNew(9, 9, false)
	require.NoError(t, draw.Line(img, 0, 4, 8, 4, true))
	require.NoError(t, draw.FloodFill(img, 2, 2, true))
	once := img.Clone()
	require.NoError(t, draw.FloodFill(img, 2, 2, true))
	assert.True(t, once.Equal(img))
}

func TestFloodFill_SeedAlreadyColored(t *testing.T) {
	img := raster.MustNew(5, 5, false)
	require.NoError(t, draw.FloodFill(img, 2, 2, false))
	assert.Equal(t, 0, img.CountOn())
}

func TestFloodFill_Guards(t *testing.T) {
	img := raster.MustNew(5, 5, false)
	assert.ErrorIs(t, draw.FloodFill(img, -1, 2, true), raster.ErrNegativeCoordinate)
	assert.NoError(t, draw.FloodFill(img, 5, 5, true))
	assert.Equal(t, 0, img.CountOn())
}

func TestFloodFill_LargeCanvas(t *testing.T) {
	img := raster.MustNew(600, 600, false)
	require.NoError(t, draw.FloodFill(img, 300, 300, true))
	assert.Equal(t, 600*600, img.CountOn())
}

func TestHugeShapes_ClipToCanvas(t *testing.T) {
	const huge = 100000

	t.Run("Rectangle", func(t *testing.T) {
		img := raster.MustNew(10, 10, false)
		require.NoError(t, draw.Rectangle(img, 0, 0, huge, huge, true))
		assert.Equal(t, 100, img.CountOn())
	})

	t.Run("Rectangle outline", func(t *testing.T) {
		img := raster.MustNew(10, 10, false)
		require.NoError(t, draw.RectangleOutline(img, 2, 2, huge, huge, true))
		// only the top and left edges reach the canvas
		assert.Equal(t, 8+7, img.CountOn())
	})

	t.Run("Circle", func(t *testing.T) {
		img := raster.MustNew(10, 10, false)
		err := draw.Circle(img, 5, 5, huge, true)
		assert.ErrorIs(t, err, raster.ErrNegativeCoordinate)
		assert.Equal(t, 100, img.CountOn())
	})

	t.Run("Circle away from the origin", func(t *testing.T) {
		img := raster.MustNew(10, 10, false)
		require.NoError(t, draw.Circle(img, huge, huge, 3, true))
		assert.Equal(t, 0, img.CountOn())
	})

	t.Run("Circle outline", func(t *testing.T) {
		img := raster.MustNew(10, 10, false)
		err := draw.CircleOutline(img, 0, 0, huge, true)
		assert.ErrorIs(t, err, raster.ErrNegativeCoordinate)
		assert.Equal(t, 0, img.CountOn())
	})

	t.Run("Curve", func(t *testing.T) {
		img := raster.MustNew(10, 10, false)
		require.NoError(t, draw.Curve(img, 0, 0, huge, huge, 0, huge, true))
		assert.True(t, img.At(0, 0))
		assert.LessOrEqual(t, img.CountOn(), draw.CurveSamples)
	})

	t.Run("Line", func(t *testing.T) {
		img := raster.MustNew(10, 10, false)
		err := draw.Line(img, -huge, 3, huge, 3, true)
		assert.ErrorIs(t, err, raster.ErrNegativeCoordinate)
		assert.Contains(t, err.Error(), "100000 pixels skipped")
		assert.Equal(t, 10, img.CountOn())
	})
}

func TestCircle_ClippedMatchesUnclipped(t *testing.T) {
	small := raster.MustNew(6, 6, false)
	err := draw.Circle(small, 1, 2, 4, true)
	assert.ErrorIs(t, err, raster.ErrNegativeCoordinate)

	for _, p := range small.Coordinates() {
		dx, dy := p.X-1, p.Y-2
		assert.Equal(t, dx*dx+dy*dy < 16, small.At(p.X, p.Y), "pixel %v", p)
	}
}
