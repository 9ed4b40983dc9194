package mesh

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitGrid(n int) []orb.Point {
	pts := make([]orb.Point, 0, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			pts = append(pts, orb.Point{float64(c), float64(r)})
		}
	}
	return pts
}

func TestEstimateSpacingUnitGrid(t *testing.T) {
	// On a unit lattice every point's first two non-self neighbors are
	// one cell away, so the spacing estimate is exactly one.
	sp, err := EstimateSpacing(unitGrid(3), 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sp.Median, 1e-12)
	assert.InDelta(t, 1.0, sp.Max, 1e-12)
}

func TestEstimateSpacingScales(t *testing.T) {
	pts := unitGrid(4)
	for i := range pts {
		pts[i][0] *= 3
		pts[i][1] *= 3
	}
	sp, err := EstimateSpacing(pts, DefaultNeighborCount)
	require.NoError(t, err)
	assert.Greater(t, sp.Median, 3.0-1e-9)
	assert.GreaterOrEqual(t, sp.Max, sp.Median)
}

func TestEstimateSpacingDegenerate(t *testing.T) {
	var derr *DegenerateInputError
	_, err := EstimateSpacing(unitGrid(2), 6)
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 7, derr.Need)
	assert.Equal(t, 4, derr.Have)

	_, err = EstimateSpacing(nil, 6)
	assert.ErrorAs(t, err, &derr)
}

func TestEstimateSpacingValidation(t *testing.T) {
	var verr *ValidationError
	_, err := EstimateSpacing(unitGrid(3), 0)
	assert.ErrorAs(t, err, &verr)
}
