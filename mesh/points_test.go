package mesh

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergePointsCodes(t *testing.T) {
	pts := MergePoints(
		[]orb.Point{{0, 0}, {1, 1}},
		[]orb.Point{{2, 2}},
		[]orb.Point{{3, 3}},
		orb.Point{4, 4},
	)
	require.Len(t, pts, 5)

	outlets := 0
	for _, p := range pts {
		assert.GreaterOrEqual(t, p.Code, Interior)
		assert.LessOrEqual(t, p.Code, Stream)
		if p.Code == Outlet {
			outlets++
		}
	}
	assert.Equal(t, 1, outlets)
}

func TestMergePointsOutletWinsCollision(t *testing.T) {
	// Interior and stream points share the outlet's coordinate; the
	// outlet classification must survive.
	at := orb.Point{7, 7}
	pts := MergePoints([]orb.Point{at}, nil, []orb.Point{at}, at)
	require.Len(t, pts, 1)
	assert.Equal(t, Outlet, pts[0].Code)
}

func TestMergePointsDedup(t *testing.T) {
	pts := MergePoints(
		[]orb.Point{{0, 0}, {0, 0}, {1, 0}},
		[]orb.Point{{1, 0}, {2, 0}},
		nil,
		orb.Point{9, 9},
	)
	require.Len(t, pts, 4)
	// First-occurrence group order: (1,0) arrived as interior.
	assert.Equal(t, Interior, pts[1].Code)
	assert.Equal(t, Boundary, pts[2].Code)
}

func TestMergePointsIdempotent(t *testing.T) {
	first := MergePoints(
		[]orb.Point{{0, 0}, {1, 1}, {0, 0}},
		[]orb.Point{{2, 2}, {1, 1}},
		[]orb.Point{{3, 3}},
		orb.Point{1, 1},
	)

	// Feed the merge its own output, regrouped by code.
	var interior, boundary, stream []orb.Point
	var outlet orb.Point
	for _, p := range first {
		switch p.Code {
		case Interior:
			interior = append(interior, p.Point)
		case Boundary:
			boundary = append(boundary, p.Point)
		case Stream:
			stream = append(stream, p.Point)
		case Outlet:
			outlet = p.Point
		}
	}
	second := MergePoints(interior, boundary, stream, outlet)
	require.Len(t, second, len(first))
	got := make(map[orb.Point]int)
	for _, p := range second {
		got[p.Point] = p.Code
	}
	for _, p := range first {
		assert.Equal(t, p.Code, got[p.Point])
	}
}
