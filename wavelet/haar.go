package wavelet

import (
	"fmt"
	"math"
)

// Subband is one directional detail component at a single decomposition
// level, stored row-major.
type Subband struct {
	Rows, Cols int
	Data       []float64
}

func (sb *Subband) At(r, c int) float64 {
	return sb.Data[r*sb.Cols+c]
}

// Level groups the three detail subbands produced by one decomposition
// step. The three subbands share the same dimensions.
type Level struct {
	Vertical   *Subband
	Horizontal *Subband
	Diagonal   *Subband
}

// Pyramid is a multilevel 2D Haar detail pyramid. Levels[0] is the finest
// level (one decomposition of the input), each subsequent level decomposes
// the previous level's approximation. NormalizingCoeff is the maximum
// absolute detail value over all levels and subbands; it is zero only for
// a perfectly flat input.
type Pyramid struct {
	Levels           []Level
	NormalizingCoeff float64
}

// MaxLevel returns the deepest decomposition level a rows x cols grid
// supports with the two-tap Haar filter.
func MaxLevel(rows, cols int) int {
	n := rows
	if cols < n {
		n = cols
	}
	if n < 2 {
		return 0
	}
	return int(math.Floor(math.Log2(float64(n))))
}

// Decompose builds the detail pyramid for a row-major grid. maxLevel <= 0
// selects the deepest level the grid dimensions admit. Odd dimensions are
// handled by symmetric edge extension, matching the usual DWT convention.
func Decompose(data []float64, rows, cols, maxLevel int) (*Pyramid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("wavelet: invalid grid dimensions %dx%d", rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("wavelet: grid data length %d != %d x %d", len(data), rows, cols)
	}
	deepest := MaxLevel(rows, cols)
	if maxLevel <= 0 || maxLevel > deepest {
		maxLevel = deepest
	}
	if maxLevel == 0 {
		return nil, fmt.Errorf("wavelet: grid %dx%d too small to decompose", rows, cols)
	}

	p := &Pyramid{Levels: make([]Level, 0, maxLevel)}
	approx := data
	ar, ac := rows, cols
	for l := 0; l < maxLevel; l++ {
		var lv Level
		approx, ar, ac, lv = haarStep(approx, ar, ac)
		p.Levels = append(p.Levels, lv)
		for _, sb := range []*Subband{lv.Vertical, lv.Horizontal, lv.Diagonal} {
			for _, v := range sb.Data {
				if a := math.Abs(v); a > p.NormalizingCoeff {
					p.NormalizingCoeff = a
				}
			}
		}
	}
	return p, nil
}

// haarStep performs one 2D Haar decomposition over 2x2 blocks, returning
// the coarser approximation and the three detail subbands. Odd row or
// column counts replicate the trailing edge.
func haarStep(a []float64, rows, cols int) ([]float64, int, int, Level) {
	hr := (rows + 1) / 2
	hc := (cols + 1) / 2
	at := func(r, c int) float64 {
		if r >= rows {
			r = rows - 1
		}
		if c >= cols {
			c = cols - 1
		}
		return a[r*cols+c]
	}
	approx := make([]float64, hr*hc)
	lv := Level{
		Vertical:   &Subband{Rows: hr, Cols: hc, Data: make([]float64, hr*hc)},
		Horizontal: &Subband{Rows: hr, Cols: hc, Data: make([]float64, hr*hc)},
		Diagonal:   &Subband{Rows: hr, Cols: hc, Data: make([]float64, hr*hc)},
	}
	for r := 0; r < hr; r++ {
		for c := 0; c < hc; c++ {
			p00 := at(2*r, 2*c)
			p01 := at(2*r, 2*c+1)
			p10 := at(2*r+1, 2*c)
			p11 := at(2*r+1, 2*c+1)
			i := r*hc + c
			approx[i] = (p00 + p01 + p10 + p11) / 2
			// Horizontal detail responds to variation down the rows,
			// vertical to variation across the columns.
			lv.Horizontal.Data[i] = (p00 + p01 - p10 - p11) / 2
			lv.Vertical.Data[i] = (p00 - p01 + p10 - p11) / 2
			lv.Diagonal.Data[i] = (p00 - p01 - p10 + p11) / 2
		}
	}
	return approx, hr, hc, lv
}
