package mesh

import "github.com/paulmach/orb"

// Boundary codes attached to mesh vertices, matching the values the
// downstream mesh-partitioning tool expects.
const (
	Interior = 0
	Boundary = 1
	Outlet   = 2
	Stream   = 3
)

// ClassifiedPoint is a mesh vertex: planar position, sampled elevation,
// and its role in the basin.
type ClassifiedPoint struct {
	orb.Point
	Elevation float64
	Code      int
}

// MergePoints unions the four point groups and removes exact-coordinate
// duplicates. The non-outlet groups fold in first-wins order interior,
// boundary, stream; the outlet is applied last and overwrites any
// colliding assignment, so exactly one Outlet point always survives.
// Output order is first-occurrence order, which makes the merge
// idempotent.
func MergePoints(interior, boundary, stream []orb.Point, outlet orb.Point) []ClassifiedPoint {
	index := make(map[orb.Point]int)
	var out []ClassifiedPoint
	add := func(pts []orb.Point, code int) {
		for _, p := range pts {
			if _, ok := index[p]; ok {
				continue
			}
			index[p] = len(out)
			out = append(out, ClassifiedPoint{Point: p, Code: code})
		}
	}
	add(interior, Interior)
	add(boundary, Boundary)
	add(stream, Stream)

	if i, ok := index[outlet]; ok {
		out[i].Code = Outlet
	} else {
		out = append(out, ClassifiedPoint{Point: outlet, Code: Outlet})
	}
	return out
}
