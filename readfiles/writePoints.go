package readfiles

import (
	"bufio"
	"fmt"
	"os"

	"github.com/WrenRaming/tribsmesh/mesh"
)

// WritePoints writes the tRIBS .points table consumed by the external
// MeshBuilder tool: a count line, then one "x y z bc" row per vertex.
func WritePoints(filename string, pts []mesh.ClassifiedPoint) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("unable to create file %s: %w", filename, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "%d\n", len(pts))
	for _, p := range pts {
		fmt.Fprintf(w, "%.6f %.6f %.6f %d\n", p.Point[0], p.Point[1], p.Elevation, p.Code)
	}
	return w.Flush()
}

// WriteMeshBuildInput writes the MeshBuilder .in keyword file with the
// reference tool's fixed routing constants.
func WriteMeshBuildInput(filename, baseName, pointFile string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("unable to create file %s: %w", filename, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "VELOCITYRATIO:\n%g\n", 1.2)
	fmt.Fprintf(w, "BASEFLOW:\n%g\n", 0.2)
	fmt.Fprintf(w, "VELOCITYCOEF:\n%d\n", 60)
	fmt.Fprintf(w, "FLOWEXP:\n%g\n", 0.3)
	fmt.Fprintf(w, "OUTFILENAME:\n%s\n", baseName)
	fmt.Fprintf(w, "POINTFILENAME:\n%s\n", pointFile)
	return w.Flush()
}
