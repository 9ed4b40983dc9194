package geometry2D

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// PointAt returns the point at arc-length distance d along the vertex
// chain, clamped to the chain's ends.
func PointAt(line []orb.Point, d float64) orb.Point {
	if len(line) == 0 {
		return orb.Point{}
	}
	if d <= 0 {
		return line[0]
	}
	for i := 1; i < len(line); i++ {
		seg := planar.Distance(line[i-1], line[i])
		if d <= seg && seg > 0 {
			t := d / seg
			return orb.Point{
				line[i-1][0] + t*(line[i][0]-line[i-1][0]),
				line[i-1][1] + t*(line[i][1]-line[i-1][1]),
			}
		}
		d -= seg
	}
	return line[len(line)-1]
}

// ResampleRing places n points at equal arc-length spacing around a closed
// ring, starting from its first vertex. The closing position (perimeter
// itself) is excluded so no sample duplicates the start.
func ResampleRing(ring orb.Ring, n int) []orb.Point {
	if n <= 0 || len(ring) < 2 {
		return nil
	}
	perim := planar.Length(ring)
	if perim == 0 {
		return nil
	}
	pts := make([]orb.Point, n)
	for i := 0; i < n; i++ {
		pts[i] = PointAt(ring, float64(i)/float64(n)*perim)
	}
	return pts
}

// Densify returns vertices spaced step apart along a polyline, both
// endpoints always included. The final stride is shortened to land on the
// far endpoint exactly.
func Densify(line orb.LineString, step float64) []orb.Point {
	if step <= 0 || len(line) < 2 {
		return nil
	}
	length := planar.Length(line)
	if length == 0 {
		return nil
	}
	n := int(math.Ceil(length / step))
	pts := make([]orb.Point, 0, n+1)
	chain := []orb.Point(line)
	for i := 0; i <= n; i++ {
		d := float64(i) * step
		if d > length {
			d = length
		}
		p := PointAt(chain, d)
		if len(pts) > 0 && p == pts[len(pts)-1] {
			continue
		}
		pts = append(pts, p)
	}
	return pts
}
