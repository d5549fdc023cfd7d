package terrain

import (
	"math/rand"

	"github.com/fidget77/openage/internal/domain"
)

// Константы генерации
const (
	MapWidth  = 48
	MapHeight = 48

	DefaultForests    = 6
	DefaultLakes      = 2
	DefaultGoldSeams  = 3
	DefaultStoneSeams = 3

	// PatchMinR/PatchMaxR - разброс радиусов пятен местности
	PatchMinR = 2
	PatchMaxR = 5

	// SpawnMargin - отступ стартовых точек от края карты
	SpawnMargin = 6
)

// Map - результат генерации: мир и размеченные на нем точки интереса.
// Юниты (деревья, залежи, ратуши) по этим точкам расставляет движок -
// генератор отвечает только за местность.
type Map struct {
	World  *domain.World
	Spawns []domain.TilePos

	// Клетки, на которых движок ставит юниты-залежи
	Forests    []domain.TilePos
	Berries    []domain.TilePos
	GoldSeams  []domain.TilePos
	StoneSeams []domain.TilePos
}

// Generate создает карту по умолчанию для матча на players игроков.
// Вся генерация детерминирована переданным rng.
func Generate(players int, rng *rand.Rand) *Map {
	return NewMap(MapWidth, MapHeight, rng).
		WithLakes(DefaultLakes).
		WithForests(DefaultForests).
		WithGoldSeams(DefaultGoldSeams).
		WithStoneSeams(DefaultStoneSeams).
		WithSpawns(players).
		Build()
}

// Patch - круглое пятно местности
type Patch struct {
	X, Y, R int
}

// Contains проверяет попадание клетки в пятно
func (p Patch) Contains(x, y int) bool {
	dx, dy := x-p.X, y-p.Y
	return dx*dx+dy*dy <= p.R*p.R
}

// Overlaps проверяет пересечение двух пятен (с зазором в одну клетку)
func (p Patch) Overlaps(other Patch) bool {
	dx, dy := p.X-other.X, p.Y-other.Y
	r := p.R + other.R + 1
	return dx*dx+dy*dy <= r*r
}
