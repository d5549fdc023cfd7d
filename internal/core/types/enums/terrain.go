package enums

import "strings"

// TerrainType — тип тайла местности.
//
// Используется и как id фундамента в атрибуте строительства:
// здание запоминает, на какой местности заложено.
type TerrainType uint8

const (
	TerrainGrass    TerrainType = iota // 0
	TerrainDirt                        // 1
	TerrainForest                      // 2
	TerrainWater                       // 3
	TerrainShallows                    // 4
	TerrainGoldSeam                    // 5
	TerrainStoneSeam                   // 6
)

var terrainTypeToString = map[TerrainType]string{
	TerrainGrass:     "GRASS",
	TerrainDirt:      "DIRT",
	TerrainForest:    "FOREST",
	TerrainWater:     "WATER",
	TerrainShallows:  "SHALLOWS",
	TerrainGoldSeam:  "GOLD_SEAM",
	TerrainStoneSeam: "STONE_SEAM",
}

var terrainTypeStringToType = map[string]TerrainType{
	"GRASS":      TerrainGrass,
	"DIRT":       TerrainDirt,
	"FOREST":     TerrainForest,
	"WATER":      TerrainWater,
	"SHALLOWS":   TerrainShallows,
	"GOLD_SEAM":  TerrainGoldSeam,
	"STONE_SEAM": TerrainStoneSeam,
}

func (t TerrainType) String() string {
	if val, ok := terrainTypeToString[t]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseTerrainType(s string) TerrainType {
	upper := strings.ToUpper(s)
	if val, ok := terrainTypeStringToType[upper]; ok {
		return val
	}
	return TerrainGrass
}

// Passable возвращает, могут ли сухопутные юниты ходить по тайлу.
func (t TerrainType) Passable() bool {
	return t != TerrainWater
}
