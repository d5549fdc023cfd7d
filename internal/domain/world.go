package domain

import (
	"github.com/fidget77/openage/internal/core/types"
	"github.com/fidget77/openage/internal/core/types/enums"
)

// Tile - клетка карты.
type Tile struct {
	X       int               `json:"x"`
	Y       int               `json:"y"`
	Terrain enums.TerrainType `json:"terrain"`
}

// World - терраин матча плюс пространственный индекс юнитов.
// Юнитами владеет UnitContainer; индекс хранит только указатели для
// быстрых выборок "кто стоит в клетке / в радиусе".
type World struct {
	Map    [][]Tile `json:"map"` // [y][x]
	Width  int      `json:"width"`
	Height int      `json:"height"`

	// SpatialHash: индекс клетки -> юниты в ней.
	// Ключ: Y * Width + X. Клиенту не отправляется.
	SpatialHash map[int][]*Unit `json:"-"`
}

// NewWorld создаёт мир width x height, целиком из травы.
func NewWorld(width, height int) *World {
	w := &World{
		Width:       width,
		Height:      height,
		SpatialHash: make(map[int][]*Unit),
	}
	w.Map = make([][]Tile, height)
	for y := 0; y < height; y++ {
		row := make([]Tile, width)
		for x := 0; x < width; x++ {
			row[x] = Tile{X: x, Y: y, Terrain: enums.TerrainGrass}
		}
		w.Map[y] = row
	}
	return w
}

// InBounds сообщает, лежит ли клетка в пределах карты.
func (w *World) InBounds(x, y int) bool {
	return x >= 0 && x < w.Width && y >= 0 && y < w.Height
}

// TileAt возвращает клетку. false - за границей карты.
func (w *World) TileAt(x, y int) (*Tile, bool) {
	if !w.InBounds(x, y) {
		return nil, false
	}
	return &w.Map[y][x], true
}

// SetTerrain меняет терраин клетки. За границей - no-op.
func (w *World) SetTerrain(x, y int, t enums.TerrainType) {
	if !w.InBounds(x, y) {
		return
	}
	w.Map[y][x].Terrain = t
}

// IsPassable сообщает, проходима ли клетка для сухопутных юнитов.
func (w *World) IsPassable(x, y int) bool {
	tile, ok := w.TileAt(x, y)
	return ok && tile.Terrain.Passable()
}

// TileOf возвращает клетку, накрывающую физическую позицию.
func TileOf(p types.Phys3) TilePos {
	return TilePos{X: p.NE.Int(), Y: p.SE.Int()}
}
