package wavelet

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxLevel(t *testing.T) {
	assert.Equal(t, 0, MaxLevel(1, 1))
	assert.Equal(t, 1, MaxLevel(2, 2))
	assert.Equal(t, 2, MaxLevel(4, 4))
	assert.Equal(t, 2, MaxLevel(4, 100))
	assert.Equal(t, 3, MaxLevel(8, 8))
}

func TestDecompose(t *testing.T) {
	// One Haar step over a single 2x2 block.
	data := []float64{1, 2, 3, 4}
	p, err := Decompose(data, 2, 2, 0)
	require.NoError(t, err)
	require.Len(t, p.Levels, 1)

	lv := p.Levels[0]
	assert.Equal(t, 1, lv.Vertical.Rows)
	assert.Equal(t, 1, lv.Vertical.Cols)
	// (1+2-3-4)/2, (1-2+3-4)/2, (1-2-3+4)/2
	assert.InDelta(t, -2.0, lv.Horizontal.At(0, 0), 1e-12)
	assert.InDelta(t, -1.0, lv.Vertical.At(0, 0), 1e-12)
	assert.InDelta(t, 0.0, lv.Diagonal.At(0, 0), 1e-12)
	assert.InDelta(t, 2.0, p.NormalizingCoeff, 1e-12)
}

func TestDecomposeDepth(t *testing.T) {
	data := make([]float64, 64)
	for i := range data {
		data[i] = float64(i % 5)
	}
	p, err := Decompose(data, 8, 8, 0)
	require.NoError(t, err)
	assert.Len(t, p.Levels, 3)

	// Supplied depth is honored when it is admissible.
	p, err = Decompose(data, 8, 8, 2)
	require.NoError(t, err)
	assert.Len(t, p.Levels, 2)

	// Each level halves the subband, rounding odd dimensions up.
	assert.Equal(t, 4, p.Levels[0].Diagonal.Rows)
	assert.Equal(t, 2, p.Levels[1].Diagonal.Rows)
}

func TestDecomposeValidation(t *testing.T) {
	_, err := Decompose([]float64{1, 2}, 2, 2, 0)
	assert.Error(t, err)
	_, err = Decompose([]float64{1}, 1, 1, 0)
	assert.Error(t, err)
}

func TestFlatRasterYieldsNoPoints(t *testing.T) {
	data := make([]float64, 16)
	for i := range data {
		data[i] = 10
	}
	p, err := Decompose(data, 4, 4, 0)
	require.NoError(t, err)
	assert.Zero(t, p.NormalizingCoeff)

	bound := orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{4, 4}}
	assert.Empty(t, p.SignificantPoints(bound, 0.1))
}

func TestSignificantPointsCheckerboard(t *testing.T) {
	// A checkerboard has unit diagonal detail in every level-1 block and
	// nothing deeper, so every level-1 cell is significant.
	data := make([]float64, 64)
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			data[r*8+c] = float64((r + c) % 2)
		}
	}
	p, err := Decompose(data, 8, 8, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p.NormalizingCoeff, 1e-12)

	bound := orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{8, 8}}
	pts := p.SignificantPoints(bound, 0.5)
	assert.Len(t, pts, 16)
	// Level-1 subband is 4x4: cell width 2, top row maps to y = ymax.
	assert.Contains(t, pts, orb.Point{0, 8})
	assert.Contains(t, pts, orb.Point{6, 2})
}

func TestSignificanceMonotonicInThreshold(t *testing.T) {
	data := make([]float64, 256)
	for r := 0; r < 16; r++ {
		for c := 0; c < 16; c++ {
			data[r*16+c] = float64(r*r%7) + float64(c%3)
		}
	}
	p, err := Decompose(data, 16, 16, 0)
	require.NoError(t, err)

	bound := orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{16, 16}}
	prev := -1
	for _, tau := range []float64{1.0, 0.7, 0.4, 0.2, 0.05} {
		n := len(p.SignificantPoints(bound, tau))
		assert.GreaterOrEqual(t, n, prev, "tau=%g", tau)
		prev = n
	}
}
