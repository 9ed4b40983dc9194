package readfiles

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// geometries decodes a GeoJSON document, accepting a FeatureCollection,
// a single Feature, or a bare geometry.
func geometries(filename string) []orb.Geometry {
	data, err := os.ReadFile(filename)
	if err != nil {
		panic(fmt.Errorf("unable to open file %s\n %s", filename, err))
	}
	if fc, err := geojson.UnmarshalFeatureCollection(data); err == nil {
		gs := make([]orb.Geometry, 0, len(fc.Features))
		for _, f := range fc.Features {
			gs = append(gs, f.Geometry)
		}
		return gs
	}
	if f, err := geojson.UnmarshalFeature(data); err == nil {
		return []orb.Geometry{f.Geometry}
	}
	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		panic(fmt.Errorf("file %s is not valid GeoJSON: %s", filename, err))
	}
	return []orb.Geometry{g.Geometry()}
}

// ReadWatershed returns the first polygon in a GeoJSON document.
func ReadWatershed(filename string) orb.Polygon {
	for _, g := range geometries(filename) {
		switch v := g.(type) {
		case orb.Polygon:
			return v
		case orb.MultiPolygon:
			if len(v) > 0 {
				return v[0]
			}
		}
	}
	panic(fmt.Errorf("no polygon found in %s", filename))
}

// ReadStreams returns every polyline in a GeoJSON document.
func ReadStreams(filename string) []orb.LineString {
	var lines []orb.LineString
	for _, g := range geometries(filename) {
		switch v := g.(type) {
		case orb.LineString:
			lines = append(lines, v)
		case orb.MultiLineString:
			lines = append(lines, v...)
		}
	}
	if len(lines) == 0 {
		panic(fmt.Errorf("no polylines found in %s", filename))
	}
	return lines
}

// ReadOutlet returns the first point in a GeoJSON document.
func ReadOutlet(filename string) orb.Point {
	for _, g := range geometries(filename) {
		if p, ok := g.(orb.Point); ok {
			return p
		}
	}
	panic(fmt.Errorf("no point found in %s", filename))
}
