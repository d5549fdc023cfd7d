package domain

import (
	"math"

	"github.com/fidget77/openage/internal/core/types"
)

// TilePos - целочисленные координаты клетки.
type TilePos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Center возвращает физическую точку в середине клетки.
func (p TilePos) Center() types.Phys3 {
	half := types.PhysFromFloat(0.5)
	return types.Phys3{
		NE: types.PhysFromInt(p.X) + half,
		SE: types.PhysFromInt(p.Y) + half,
	}
}

// DistanceTo возвращает точное расстояние до другой клетки (float)
func (p TilePos) DistanceTo(other TilePos) float64 {
	return math.Sqrt(math.Pow(float64(p.X-other.X), 2) + math.Pow(float64(p.Y-other.Y), 2))
}

// DistanceSquaredTo возвращает квадрат расстояния (int) для сравнения без корней
func (p TilePos) DistanceSquaredTo(other TilePos) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// IsAdjacent возвращает true, если цель в соседней клетке (включая диагональ)
func (p TilePos) IsAdjacent(other TilePos) bool {
	dx := p.X - other.X
	dy := p.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= 1 && dy <= 1 && (dx != 0 || dy != 0)
}

// Shift возвращает новую позицию со смещением (не меняя текущую)
func (p TilePos) Shift(dx, dy int) TilePos {
	return TilePos{X: p.X + dx, Y: p.Y + dy}
}
