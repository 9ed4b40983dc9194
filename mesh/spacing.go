package mesh

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/stat"
)

// DefaultNeighborCount is the nearest-neighbor count the spacing estimate
// is taken over. Empirical, exposed for calibration.
const DefaultNeighborCount = 6

// Spacing summarizes local point density over an interior point set.
// Median is the working value the boundary sampler sizes its buffer with;
// Max is kept for diagnostics.
type Spacing struct {
	Median float64
	Max    float64
}

// EstimateSpacing queries each point's n nearest neighbors (self included
// as rank zero), takes the per-rank median across all points, and returns
// the maximum over ranks as the representative spacing.
func EstimateSpacing(pts []orb.Point, n int) (Spacing, error) {
	if n < 1 {
		return Spacing{}, &ValidationError{Param: "neighbor count", Reason: fmt.Sprintf("must be at least 1, got %d", n)}
	}
	if len(pts) < n+1 {
		return Spacing{}, &DegenerateInputError{Op: "spacing estimation", Need: n + 1, Have: len(pts)}
	}

	t := newTree(pts)
	ranks := make([][]float64, n+1)
	for i := range ranks {
		ranks[i] = make([]float64, 0, len(pts))
	}
	var sp Spacing
	for _, p := range pts {
		ds := nearestN(t, p, n+1)
		for r, d := range ds {
			ranks[r] = append(ranks[r], d)
			if d > sp.Max {
				sp.Max = d
			}
		}
	}
	for _, rd := range ranks {
		sort.Float64s(rd)
		if med := stat.Quantile(0.5, stat.Empirical, rd, nil); med > sp.Median {
			sp.Median = med
		}
	}
	return sp, nil
}
