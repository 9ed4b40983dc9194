package readfiles

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/WrenRaming/tribsmesh/mesh"
)

// ReadAsciiGrid reads an ESRI ASCII grid DEM. The header carries ncols,
// nrows, the lower-left corner, the cell size and an optional NODATA
// value; data rows follow north to south.
func ReadAsciiGrid(filename string, verbose bool) *mesh.RasterGrid {
	var (
		file *os.File
		err  error
	)
	if verbose {
		fmt.Printf("Reading ASCII grid file named: %s\n", filename)
	}
	if file, err = os.Open(filename); err != nil {
		panic(fmt.Errorf("unable to open file %s\n %s", filename, err))
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)
	next := func() string {
		if !scanner.Scan() {
			panic(fmt.Errorf("unexpected end of grid file %s", filename))
		}
		return scanner.Text()
	}
	nextFloat := func(label string) float64 {
		v, err := strconv.ParseFloat(next(), 64)
		if err != nil {
			panic(fmt.Errorf("bad %s in %s: %s", label, filename, err))
		}
		return v
	}

	var (
		ncols, nrows       int
		xll, yll, cellsize float64
		nodata             = -9999.0
	)
	// Header keywords in any of the usual casings; data starts at the
	// first non-keyword token.
	var first string
	for {
		key := strings.ToLower(next())
		done := false
		switch key {
		case "ncols":
			ncols = int(nextFloat("ncols"))
		case "nrows":
			nrows = int(nextFloat("nrows"))
		case "xllcorner":
			xll = nextFloat("xllcorner")
		case "yllcorner":
			yll = nextFloat("yllcorner")
		case "cellsize":
			cellsize = nextFloat("cellsize")
		case "nodata_value":
			nodata = nextFloat("nodata_value")
		default:
			first = key
			done = true
		}
		if done {
			break
		}
	}
	if ncols < 1 || nrows < 1 {
		panic(fmt.Errorf("grid file %s has no ncols/nrows header", filename))
	}
	if verbose {
		fmt.Printf("ncols = %d, nrows = %d, cellsize = %g\n", ncols, nrows, cellsize)
	}

	data := make([]float64, 0, nrows*ncols)
	v, err := strconv.ParseFloat(first, 64)
	if err != nil {
		panic(fmt.Errorf("bad grid value in %s: %s", filename, err))
	}
	data = append(data, v)
	for len(data) < nrows*ncols {
		data = append(data, nextFloat("grid value"))
	}

	g, err := mesh.NewRasterGrid(xll, yll+float64(nrows)*cellsize, cellsize, cellsize, nrows, ncols, nodata, data)
	if err != nil {
		panic(err)
	}
	return g
}
