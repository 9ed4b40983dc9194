/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/WrenRaming/tribsmesh/InputParameters"
	"github.com/WrenRaming/tribsmesh/mesh"
	"github.com/WrenRaming/tribsmesh/readfiles"
)

type MeshRun struct {
	ParamFile string
	Profile   bool
	Verbose   bool
}

// MeshCmd represents the mesh command
var MeshCmd = &cobra.Command{
	Use:   "mesh",
	Short: "Generate the TIN point set and Delaunay mesh for a watershed",
	Long: `Generate the TIN point set and Delaunay mesh for a watershed

Reads the DEM, watershed boundary, stream network and outlet named in the
mesh parameters file, runs the wavelet-adaptive point generator, and
writes the .points table plus the MeshBuilder .in file.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		mr := &MeshRun{}
		if mr.ParamFile, err = cmd.Flags().GetString("meshParametersFile"); err != nil {
			panic(err)
		}
		mr.Profile, _ = cmd.Flags().GetBool("profile")
		mr.Verbose, _ = cmd.Flags().GetBool("verbose")
		mp := processMeshInput(mr)
		RunMesh(mr, mp)
	},
}

func processMeshInput(mr *MeshRun) (mp *InputParameters.MeshParameters) {
	if len(mr.ParamFile) == 0 {
		err := fmt.Errorf("must supply a mesh parameters file (-I, --meshParametersFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Test Basin"
DEMFile: basin_dem.asc
WatershedFile: basin_boundary.geojson
StreamsFile: basin_streams.geojson
OutletFile: basin_outlet.geojson
Threshold: 0.1
NeighborCount: 6
BufferScale: 0.75
OutputBase: basin
########################################
`
		fmt.Printf("Example parameters file:%s", exampleFile)
		os.Exit(1)
	}
	data, err := os.ReadFile(mr.ParamFile)
	if err != nil {
		fmt.Printf("error reading mesh parameters file: %s\n", err.Error())
		os.Exit(1)
	}
	mp = &InputParameters.MeshParameters{}
	if err = mp.Parse(data); err != nil {
		fmt.Printf("error parsing mesh parameters file: %s\n", err.Error())
		os.Exit(1)
	}
	if mr.Verbose {
		mp.Print()
	}
	return
}

func RunMesh(mr *MeshRun, mp *InputParameters.MeshParameters) {
	if mr.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	grid := readfiles.ReadAsciiGrid(mp.DEMFile, mr.Verbose)
	watershed := readfiles.ReadWatershed(mp.WatershedFile)
	streams := readfiles.ReadStreams(mp.StreamsFile)
	outlet := readfiles.ReadOutlet(mp.OutletFile)

	params := mesh.DefaultParams()
	params.MaxLevel = mp.MaxLevel
	if mp.Threshold != 0 {
		params.Threshold = mp.Threshold
	}
	if mp.NeighborCount != 0 {
		params.NeighborCount = mp.NeighborCount
	}
	if mp.BufferScale != 0 {
		params.BufferScale = mp.BufferScale
	}

	gen := &mesh.Generator{
		Raster:    grid,
		Watershed: watershed,
		Streams:   streams,
		Outlet:    outlet,
		Params:    params,
	}
	pts, err := gen.GeneratePoints()
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	if mr.Verbose {
		var counts [4]int
		for _, p := range pts {
			counts[p.Code]++
		}
		fmt.Printf("points: %d interior, %d boundary, %d outlet, %d stream\n",
			counts[mesh.Interior], counts[mesh.Boundary], counts[mesh.Outlet], counts[mesh.Stream])
	}

	result, err := mesh.BuildMesh(pts)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}

	base := mp.OutputBase
	if len(base) == 0 {
		base = "mesh"
	}
	pointFile := base + ".points"
	if err = readfiles.WritePoints(pointFile, result.Vertices); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	if err = readfiles.WriteMeshBuildInput(base+".in", base, pointFile); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("wrote %s: %d vertices, %d triangles\n", pointFile, len(result.Vertices), len(result.Triangles))
}

func init() {
	rootCmd.AddCommand(MeshCmd)
	MeshCmd.Flags().StringP("meshParametersFile", "I", "", "YAML file with DEM/vector paths and generator parameters")
	MeshCmd.Flags().BoolP("profile", "p", false, "write a CPU profile of the run")
	MeshCmd.Flags().BoolP("verbose", "v", false, "print parameters and stage counts")
}
