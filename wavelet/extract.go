package wavelet

import (
	"math"

	"github.com/paulmach/orb"
)

// SignificantPoints returns the geographic coordinates of every subband
// cell whose normalized detail magnitude exceeds the level-scaled
// threshold 2^(1-level) * threshold. The scaling loosens the test at
// coarse levels so large terrain structure registers alongside fine
// texture. Coordinate-equal cells across levels collapse to one point.
//
// A flat input (zero normalizing coefficient) yields no points.
func (p *Pyramid) SignificantPoints(bound orb.Bound, threshold float64) []orb.Point {
	if p.NormalizingCoeff == 0 {
		return nil
	}
	width := bound.Max[0] - bound.Min[0]
	height := bound.Max[1] - bound.Min[1]

	seen := make(map[orb.Point]struct{})
	var pts []orb.Point
	for li, lv := range p.Levels {
		level := li + 1
		cut := math.Pow(2, float64(1-level)) * threshold
		sb := lv.Vertical
		dx := width / float64(sb.Cols)
		dy := height / float64(sb.Rows)
		for r := 0; r < sb.Rows; r++ {
			for c := 0; c < sb.Cols; c++ {
				m := math.Abs(lv.Vertical.At(r, c))
				if h := math.Abs(lv.Horizontal.At(r, c)); h > m {
					m = h
				}
				if d := math.Abs(lv.Diagonal.At(r, c)); d > m {
					m = d
				}
				if m/p.NormalizingCoeff <= cut {
					continue
				}
				// Row 0 sits at the top of the extent.
				pt := orb.Point{
					bound.Min[0] + float64(c)*dx,
					bound.Max[1] - float64(r)*dy,
				}
				if _, ok := seen[pt]; ok {
					continue
				}
				seen[pt] = struct{}{}
				pts = append(pts, pt)
			}
		}
	}
	return pts
}
