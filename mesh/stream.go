package mesh

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/WrenRaming/tribsmesh/geometry2D"
)

// InsertStreamPoints walks each stream polyline end to end, emitting a
// chain of stream points whose spacing tightens near surviving interior
// points and relaxes elsewhere. Interior points within res of a stream
// are spliced into that stream's chain and dropped from the interior
// working set (marked first, compacted after, never removed
// mid-iteration). The reduced interior set is returned alongside the
// stream points.
//
// With no surviving interior points there is nothing to pace against and
// the full densified chain is emitted, one point per raster cell of
// stream length.
func InsertStreamPoints(streams []orb.LineString, interior []orb.Point, res float64) (stream, remaining []orb.Point, err error) {
	if res <= 0 {
		return nil, nil, &ValidationError{Param: "raster resolution", Reason: fmt.Sprintf("must be positive, got %g", res)}
	}
	remaining = append([]orb.Point(nil), interior...)

	for si, line := range streams {
		verts := geometry2D.Densify(line, res)
		if len(verts) < 2 {
			return nil, nil, &GeometryError{Reason: fmt.Sprintf("stream polyline %d has zero length", si)}
		}
		begin, end := verts[0], verts[len(verts)-1]
		chain := []orb.Point{begin}

		streamTree := newTree(verts)
		removed := make([]bool, len(remaining))
		for i, p := range remaining {
			if _, d, ok := nearest(streamTree, p); ok && d <= res {
				removed[i] = true
				chain = append(chain, p)
			}
		}
		kept := make([]orb.Point, 0, len(remaining))
		for i, p := range remaining {
			if !removed[i] {
				kept = append(kept, p)
			}
		}
		remaining = kept

		if len(remaining) == 0 {
			for _, v := range verts[1:] {
				chain = appendDistinct(chain, v)
			}
			stream = append(stream, chain...)
			continue
		}

		intTree := newTree(remaining)
		cur := begin
		lastIdx := 0
		for {
			_, disInterior, _ := nearest(intTree, cur)
			if planar.Distance(cur, end) <= disInterior {
				break
			}
			// Advance to the farthest densified vertex still closer to
			// the current position than the nearest interior point, with
			// ties broken toward the larger index. Indices only move
			// forward, so the walk terminates.
			next := -1
			best := -1.0
			for j := lastIdx + 1; j < len(verts); j++ {
				if d := planar.Distance(cur, verts[j]); d < disInterior && d >= best {
					best, next = d, j
				}
			}
			if next < 0 {
				break
			}
			chain = appendDistinct(chain, verts[next])
			cur = verts[next]
			lastIdx = next
		}
		chain = appendDistinct(chain, end)
		stream = append(stream, chain...)
	}
	return stream, remaining, nil
}

func appendDistinct(pts []orb.Point, p orb.Point) []orb.Point {
	if len(pts) > 0 && pts[len(pts)-1] == p {
		return pts
	}
	return append(pts, p)
}
