package capacity

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var tablesYAML []byte

// designData holds the IS 800 lookup tables, keyed by bolt diameter in mm.
type designData struct {
	NetTensileArea    map[int]float64 `yaml:"net_tensile_area"`
	StandardClearance map[int]int     `yaml:"standard_clearance"`
	OversizeClearance map[int]int     `yaml:"oversize_clearance"`
}

var tables designData

func init() {
	if err := yaml.Unmarshal(tablesYAML, &tables); err != nil {
		panic(fmt.Sprintf("capacity: corrupt embedded design tables: %v", err))
	}
}

// NetTensileArea returns the threaded net tensile area of a bolt in mm².
func NetTensileArea(diameter int) (float64, error) {
	area, ok := tables.NetTensileArea[diameter]
	if !ok {
		return 0, fmt.Errorf("%w: %d mm has no net tensile area entry", ErrUnknownDiameter, diameter)
	}
	return area, nil
}
