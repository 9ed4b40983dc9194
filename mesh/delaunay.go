package mesh

import (
	"github.com/fogleman/delaunay"
)

// MeshResult is the triangulated point set handed back to the caller:
// classified vertices plus triangle index triples into Vertices. Built
// once per pipeline run and not mutated afterward.
type MeshResult struct {
	Vertices  []ClassifiedPoint
	Triangles [][3]int
}

// BuildMesh constructs a 2D Delaunay triangulation over the (x, y)
// positions. Elevation and boundary code ride along as vertex attributes
// and play no part in the triangulation predicate.
func BuildMesh(pts []ClassifiedPoint) (*MeshResult, error) {
	if len(pts) < 3 {
		return nil, &DegenerateInputError{Op: "triangulation", Need: 3, Have: len(pts)}
	}
	dp := make([]delaunay.Point, len(pts))
	for i, p := range pts {
		dp[i] = delaunay.Point{X: p.Point[0], Y: p.Point[1]}
	}
	tri, err := delaunay.Triangulate(dp)
	if err != nil {
		return nil, &TriangulationError{Err: err}
	}
	if len(tri.Triangles) == 0 {
		// All input points collinear.
		return nil, &DegenerateInputError{Op: "triangulation", Need: 3, Have: 0}
	}
	ts := make([][3]int, 0, len(tri.Triangles)/3)
	for i := 0; i+2 < len(tri.Triangles); i += 3 {
		ts = append(ts, [3]int{tri.Triangles[i], tri.Triangles[i+1], tri.Triangles[i+2]})
	}
	return &MeshResult{Vertices: pts, Triangles: ts}, nil
}
