package mesh

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/WrenRaming/tribsmesh/geometry2D"
)

// DefaultBufferScale sizes the boundary buffer as a fraction of the
// median spacing. Empirical, exposed for calibration.
const DefaultBufferScale = 0.75

// SampleBoundary buffers the watershed polygon outward by spacing*scale
// and resamples the buffered exterior at uniform arc length. Buffer
// samples that regress inside the original polygon (concave reaches) are
// discarded, as are interior points falling outside it. The retained
// interior points and the boundary ring samples come back separately so
// the stream stage can keep thinning the interior set.
func SampleBoundary(watershed orb.Polygon, interior []orb.Point, spacing, scale float64) (inside, boundary []orb.Point, err error) {
	if spacing <= 0 {
		return nil, nil, &ValidationError{Param: "spacing", Reason: fmt.Sprintf("must be positive, got %g", spacing)}
	}
	if scale <= 0 {
		return nil, nil, &ValidationError{Param: "buffer scale", Reason: fmt.Sprintf("must be positive, got %g", scale)}
	}
	if len(watershed) == 0 || len(watershed[0]) < 4 {
		return nil, nil, &GeometryError{Reason: "watershed polygon is empty or degenerate"}
	}

	dist := spacing * scale
	buffered, oerr := geometry2D.OffsetRing(watershed[0], dist)
	if oerr != nil {
		return nil, nil, &GeometryError{Reason: "watershed boundary failed to buffer", Err: oerr}
	}

	n := int(math.Ceil(planar.Length(buffered) / dist))
	for _, p := range geometry2D.ResampleRing(buffered, n) {
		if planar.PolygonContains(watershed, p) {
			continue
		}
		boundary = append(boundary, p)
	}

	for _, p := range interior {
		if planar.PolygonContains(watershed, p) {
			inside = append(inside, p)
		}
	}
	return inside, boundary, nil
}
