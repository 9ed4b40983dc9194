package mesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/WrenRaming/tribsmesh/wavelet"
)

// Params control point generation. Zero values for NeighborCount and
// BufferScale are replaced by the defaults; MaxLevel <= 0 derives the
// deepest decomposition the raster admits.
type Params struct {
	MaxLevel      int
	Threshold     float64
	NeighborCount int
	BufferScale   float64
}

// DefaultParams returns the reference tool's empirical settings.
func DefaultParams() Params {
	return Params{
		Threshold:     0.1,
		NeighborCount: DefaultNeighborCount,
		BufferScale:   DefaultBufferScale,
	}
}

// Generator runs the adaptive mesh-point pipeline: wavelet feature
// extraction, spacing estimation, boundary sampling, stream insertion,
// merge, elevation interpolation, Delaunay triangulation. Each stage
// consumes its input fully and hands a fresh set to the next; nothing is
// shared or retried.
type Generator struct {
	Raster    *RasterGrid
	Watershed orb.Polygon
	Streams   []orb.LineString
	Outlet    orb.Point
	Params    Params
}

func (g *Generator) validate() error {
	if g.Raster == nil {
		return &ValidationError{Param: "raster", Reason: "nil"}
	}
	p := &g.Params
	if p.NeighborCount == 0 {
		p.NeighborCount = DefaultNeighborCount
	}
	if p.BufferScale == 0 {
		p.BufferScale = DefaultBufferScale
	}
	if p.Threshold <= 0 || p.Threshold > 1 {
		return &ValidationError{Param: "threshold", Reason: fmt.Sprintf("must be in (0, 1], got %g", p.Threshold)}
	}
	if p.NeighborCount < 1 {
		return &ValidationError{Param: "neighbor count", Reason: fmt.Sprintf("must be at least 1, got %d", p.NeighborCount)}
	}
	if p.BufferScale < 0 {
		return &ValidationError{Param: "buffer scale", Reason: fmt.Sprintf("must be positive, got %g", p.BufferScale)}
	}
	return nil
}

// GeneratePoints runs every stage up to and including elevation
// interpolation, returning the classified point table.
func (g *Generator) GeneratePoints() ([]ClassifiedPoint, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}

	interior := g.extractInterior()

	spacing, err := EstimateSpacing(interior, g.Params.NeighborCount)
	if err != nil {
		var degen *DegenerateInputError
		if !errors.As(err, &degen) {
			return nil, err
		}
		// Too few wavelet-significant points to estimate density (flat
		// raster being the extreme case). Fall back to the cell diagonal
		// so the boundary ring still gets sampled.
		spacing = Spacing{Median: math.Hypot(g.Raster.Dx, g.Raster.Dy)}
	}

	inside, boundary, err := SampleBoundary(g.Watershed, interior, spacing.Median, g.Params.BufferScale)
	if err != nil {
		return nil, err
	}

	stream, inside, err := InsertStreamPoints(g.Streams, inside, g.Raster.Resolution())
	if err != nil {
		return nil, err
	}

	pts := MergePoints(inside, boundary, stream, g.Outlet)
	for i := range pts {
		pts[i].Elevation = g.Raster.Bilinear(pts[i].Point)
	}
	return pts, nil
}

// Generate runs the full pipeline and triangulates the surviving points.
func (g *Generator) Generate() (*MeshResult, error) {
	pts, err := g.GeneratePoints()
	if err != nil {
		return nil, err
	}
	return BuildMesh(pts)
}

// extractInterior decomposes the raster and extracts significant-detail
// points. Rasters too small to decompose contribute no interior points;
// downstream falls back to boundary and stream points alone.
func (g *Generator) extractInterior() []orb.Point {
	pyr, err := wavelet.Decompose(g.Raster.Data, g.Raster.Rows, g.Raster.Cols, g.Params.MaxLevel)
	if err != nil {
		return nil
	}
	return pyr.SignificantPoints(g.Raster.Bound(), g.Params.Threshold)
}
