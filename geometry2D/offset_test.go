package geometry2D

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareRing() orb.Ring {
	return orb.Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}
}

func TestOffsetRingSquare(t *testing.T) {
	out, err := OffsetRing(squareRing(), 1.5)
	require.NoError(t, err)
	require.True(t, len(out) >= 4)
	assert.Equal(t, out[0], out[len(out)-1])

	// Miter corners of a square land on its diagonals.
	assert.InDelta(t, -1.5, out[0][0], 1e-9)
	assert.InDelta(t, -1.5, out[0][1], 1e-9)

	// Every source vertex must be strictly inside the offset ring.
	poly := orb.Polygon{out}
	for _, p := range squareRing() {
		assert.True(t, planar.PolygonContains(poly, p), "vertex %v outside offset", p)
	}
	assert.Greater(t, planar.Area(out), planar.Area(squareRing()))
}

func TestOffsetRingClockwise(t *testing.T) {
	cw := orb.Ring{{0, 0}, {0, 4}, {4, 4}, {4, 0}, {0, 0}}
	require.Equal(t, orb.CW, cw.Orientation())
	out, err := OffsetRing(cw, 1.0)
	require.NoError(t, err)
	// Outward regardless of winding.
	assert.Greater(t, math.Abs(planar.Area(out)), math.Abs(planar.Area(cw)))
	assert.True(t, planar.PolygonContains(orb.Polygon{out}, orb.Point{2, 2}))
}

func TestOffsetRingDegenerate(t *testing.T) {
	_, err := OffsetRing(orb.Ring{{0, 0}, {1, 1}, {0, 0}}, 1)
	assert.Error(t, err)

	// Zero area.
	_, err = OffsetRing(orb.Ring{{0, 0}, {2, 0}, {4, 0}, {0, 0}}, 1)
	assert.Error(t, err)

	_, err = OffsetRing(squareRing(), 0)
	assert.Error(t, err)
}
