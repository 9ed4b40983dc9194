package geometry2D

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// miterLimit caps the spike length at sharp convex corners, in multiples
// of the offset distance. Corners beyond it are beveled.
const miterLimit = 4.0

// OffsetRing displaces a closed ring outward by dist, joining edges with
// miters and beveling corners sharper than the miter limit. Outward is
// derived from the ring's winding, so either orientation is accepted.
//
// The offset ring of a concave polygon can re-enter the source polygon;
// callers filter offset samples by containment against the source rather
// than relying on a clean result here.
func OffsetRing(ring orb.Ring, dist float64) (orb.Ring, error) {
	if dist <= 0 {
		return nil, fmt.Errorf("offset distance must be positive, got %g", dist)
	}
	v := compactRing(ring)
	if len(v) < 3 {
		return nil, fmt.Errorf("ring has %d distinct vertices, need at least 3", len(v))
	}
	if planar.Area(ring) == 0 {
		return nil, fmt.Errorf("ring has zero area")
	}

	// For a CCW ring the interior lies left of travel, so the outward
	// normal is the right-hand one; CW flips it.
	sign := 1.0
	if ring.Orientation() == orb.CW {
		sign = -1.0
	}
	normal := func(a, b orb.Point) (float64, float64, bool) {
		dx := b[0] - a[0]
		dy := b[1] - a[1]
		n := math.Hypot(dx, dy)
		if n == 0 {
			return 0, 0, false
		}
		return sign * dy / n, sign * -dx / n, true
	}

	k := len(v)
	out := make(orb.Ring, 0, k+1)
	for i := 0; i < k; i++ {
		prev := v[(i+k-1)%k]
		next := v[(i+1)%k]
		nux, nuy, ok1 := normal(prev, v[i])
		nwx, nwy, ok2 := normal(v[i], next)
		if !ok1 || !ok2 {
			continue
		}
		dot := nux*nwx + nuy*nwy
		cosHalf := math.Sqrt(math.Max(0, (1+dot)/2))
		if cosHalf < 1/miterLimit {
			// Bevel: one point per adjoining edge.
			out = append(out,
				orb.Point{v[i][0] + nux*dist, v[i][1] + nuy*dist},
				orb.Point{v[i][0] + nwx*dist, v[i][1] + nwy*dist})
			continue
		}
		bx, by := nux+nwx, nuy+nwy
		bn := math.Hypot(bx, by)
		scale := dist / cosHalf
		out = append(out, orb.Point{v[i][0] + bx/bn*scale, v[i][1] + by/bn*scale})
	}
	if len(out) < 3 {
		return nil, fmt.Errorf("ring collapsed during offset")
	}
	out = append(out, out[0])
	return out, nil
}

// compactRing drops the closing vertex and any zero-length edges.
func compactRing(ring orb.Ring) []orb.Point {
	v := []orb.Point(ring)
	if len(v) > 1 && v[0] == v[len(v)-1] {
		v = v[:len(v)-1]
	}
	out := make([]orb.Point, 0, len(v))
	for i, p := range v {
		if i > 0 && p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	if len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}
