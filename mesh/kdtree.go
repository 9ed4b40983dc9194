package mesh

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// treePoint carries its index in the source slice so queries can name the
// matched point, not just its coordinates.
type treePoint struct {
	x, y float64
	id   int
}

func (p treePoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(treePoint)
	if d == 0 {
		return p.x - q.x
	}
	return p.y - q.y
}

func (p treePoint) Dims() int { return 2 }

// Distance is the squared Euclidean distance, per the kdtree contract.
func (p treePoint) Distance(c kdtree.Comparable) float64 {
	q := c.(treePoint)
	dx := p.x - q.x
	dy := p.y - q.y
	return dx*dx + dy*dy
}

type treePoints []treePoint

func (p treePoints) Index(i int) kdtree.Comparable        { return p[i] }
func (p treePoints) Len() int                             { return len(p) }
func (p treePoints) Pivot(d kdtree.Dim) int               { return plane{treePoints: p, Dim: d}.Pivot() }
func (p treePoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

type plane struct {
	kdtree.Dim
	treePoints
}

func (p plane) Less(i, j int) bool {
	if p.Dim == 0 {
		return p.treePoints[i].x < p.treePoints[j].x
	}
	return p.treePoints[i].y < p.treePoints[j].y
}

func (p plane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }

func (p plane) Slice(start, end int) kdtree.SortSlicer {
	return plane{treePoints: p.treePoints[start:end], Dim: p.Dim}
}

func (p plane) Swap(i, j int) {
	p.treePoints[i], p.treePoints[j] = p.treePoints[j], p.treePoints[i]
}

// newTree indexes pts for nearest-neighbor queries.
func newTree(pts []orb.Point) *kdtree.Tree {
	tp := make(treePoints, len(pts))
	for i, p := range pts {
		tp[i] = treePoint{x: p[0], y: p[1], id: i}
	}
	return kdtree.New(tp, false)
}

// nearest returns the index and Euclidean distance of the point nearest
// to q. ok is false for an empty tree.
func nearest(t *kdtree.Tree, q orb.Point) (id int, dist float64, ok bool) {
	got, d := t.Nearest(treePoint{x: q[0], y: q[1], id: -1})
	if got == nil {
		return 0, 0, false
	}
	return got.(treePoint).id, math.Sqrt(d), true
}

// nearestN returns the Euclidean distances to the k nearest points,
// ascending. Fewer than k points yields a shorter slice.
func nearestN(t *kdtree.Tree, q orb.Point, k int) []float64 {
	keep := kdtree.NewNKeeper(k)
	t.NearestSet(keep, treePoint{x: q[0], y: q[1], id: -1})
	out := make([]float64, 0, k)
	for _, cd := range keep.Heap {
		if cd.Comparable == nil {
			continue
		}
		out = append(out, math.Sqrt(cd.Dist))
	}
	sort.Float64s(out)
	return out
}
