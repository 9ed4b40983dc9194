package mesh

import (
	"fmt"

	"github.com/paulmach/orb"
)

// RasterGrid is a single-band elevation grid. Data is row-major with row
// zero along the top edge (Ymax); Dx and Dy are positive cell sizes.
type RasterGrid struct {
	Xmin, Ymax float64
	Dx, Dy     float64
	Rows, Cols int
	NoData     float64
	Data       []float64
}

// NewRasterGrid validates the georeferencing and array shape.
func NewRasterGrid(xmin, ymax, dx, dy float64, rows, cols int, nodata float64, data []float64) (*RasterGrid, error) {
	if dx <= 0 || dy <= 0 {
		return nil, &ValidationError{Param: "cell size", Reason: fmt.Sprintf("must be positive, got %g x %g", dx, dy)}
	}
	if rows < 1 || cols < 1 {
		return nil, &ValidationError{Param: "raster dimensions", Reason: fmt.Sprintf("%d x %d", rows, cols)}
	}
	if len(data) != rows*cols {
		return nil, &ValidationError{Param: "raster data", Reason: fmt.Sprintf("length %d != %d x %d", len(data), rows, cols)}
	}
	return &RasterGrid{Xmin: xmin, Ymax: ymax, Dx: dx, Dy: dy, Rows: rows, Cols: cols, NoData: nodata, Data: data}, nil
}

func (g *RasterGrid) At(r, c int) float64 {
	return g.Data[r*g.Cols+c]
}

// Bound returns the raster's bounding extent.
func (g *RasterGrid) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{g.Xmin, g.Ymax - float64(g.Rows)*g.Dy},
		Max: orb.Point{g.Xmin + float64(g.Cols)*g.Dx, g.Ymax},
	}
}

// Resolution is the cell width, used to pace stream densification.
func (g *RasterGrid) Resolution() float64 { return g.Dx }

// Bilinear samples the elevation surface at p. Grid nodes sit at the cell
// origins (Xmin + i*Dx, Ymax - j*Dy). Queries outside the extent clamp to
// the nearest valid interpolation cell edge, so boundary samples pushed
// past the raster perimeter by buffering still resolve.
func (g *RasterGrid) Bilinear(p orb.Point) float64 {
	fc := (p[0] - g.Xmin) / g.Dx
	fr := (g.Ymax - p[1]) / g.Dy
	if fc < 0 {
		fc = 0
	}
	if m := float64(g.Cols - 1); fc > m {
		fc = m
	}
	if fr < 0 {
		fr = 0
	}
	if m := float64(g.Rows - 1); fr > m {
		fr = m
	}
	c0 := int(fc)
	r0 := int(fr)
	if c0 > g.Cols-2 {
		c0 = g.Cols - 2
	}
	if r0 > g.Rows-2 {
		r0 = g.Rows - 2
	}
	if c0 < 0 {
		c0 = 0
	}
	if r0 < 0 {
		r0 = 0
	}
	c1, r1 := c0, r0
	if g.Cols > 1 {
		c1 = c0 + 1
	}
	if g.Rows > 1 {
		r1 = r0 + 1
	}
	tx := fc - float64(c0)
	ty := fr - float64(r0)
	top := (1-tx)*g.At(r0, c0) + tx*g.At(r0, c1)
	bot := (1-tx)*g.At(r1, c0) + tx*g.At(r1, c1)
	return (1-ty)*top + ty*bot
}
