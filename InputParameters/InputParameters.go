package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type MeshParameters struct {
	Title         string  `yaml:"Title"`
	DEMFile       string  `yaml:"DEMFile"`
	WatershedFile string  `yaml:"WatershedFile"`
	StreamsFile   string  `yaml:"StreamsFile"`
	OutletFile    string  `yaml:"OutletFile"`
	MaxLevel      int     `yaml:"MaxLevel"`      // wavelet decomposition depth, 0 derives from the DEM
	Threshold     float64 `yaml:"Threshold"`     // significance threshold in (0, 1]
	NeighborCount int     `yaml:"NeighborCount"` // nearest neighbors for spacing estimation
	BufferScale   float64 `yaml:"BufferScale"`   // boundary buffer as a fraction of median spacing
	OutputBase    string  `yaml:"OutputBase"`    // base name for the .points and .in outputs
}

func (mp *MeshParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, mp)
}

func (mp *MeshParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", mp.Title)
	fmt.Printf("[%s]\t\t= DEM File\n", mp.DEMFile)
	fmt.Printf("[%s]\t\t= Watershed File\n", mp.WatershedFile)
	fmt.Printf("[%s]\t\t= Streams File\n", mp.StreamsFile)
	fmt.Printf("[%s]\t\t= Outlet File\n", mp.OutletFile)
	fmt.Printf("[%d]\t\t\t\t= Max Wavelet Level\n", mp.MaxLevel)
	fmt.Printf("%8.5f\t\t= Threshold\n", mp.Threshold)
	fmt.Printf("[%d]\t\t\t\t= Neighbor Count\n", mp.NeighborCount)
	fmt.Printf("%8.5f\t\t= Buffer Scale\n", mp.BufferScale)
	fmt.Printf("[%s]\t\t= Output Base\n", mp.OutputBase)
}
