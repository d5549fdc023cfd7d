package domain

import (
	"errors"

	"github.com/fidget77/openage/internal/core/types"
)

func (w *World) GetIndex(x, y int) int {
	return y*w.Width + x
}

// UnitsAt возвращает юниты в конкретной клетке (быстро!)
func (w *World) UnitsAt(x, y int) []*Unit {
	if !w.InBounds(x, y) {
		return nil
	}
	return w.SpatialHash[w.GetIndex(x, y)]
}

// AddUnit добавляет юнит в индекс по его текущей позиции.
func (w *World) AddUnit(u *Unit) {
	tp := TileOf(u.Pos)
	if !w.InBounds(tp.X, tp.Y) {
		return
	}
	idx := w.GetIndex(tp.X, tp.Y)
	w.SpatialHash[idx] = append(w.SpatialHash[idx], u)
}

// RemoveUnit удаляет юнит из индекса (смерть, погрузка в гарнизон).
func (w *World) RemoveUnit(u *Unit) {
	tp := TileOf(u.Pos)
	if !w.InBounds(tp.X, tp.Y) {
		return
	}
	idx := w.GetIndex(tp.X, tp.Y)
	units := w.SpatialHash[idx]

	for i, other := range units {
		if other.ID == u.ID {
			// Swap with last: порядок внутри клетки не важен
			lastIdx := len(units) - 1
			units[i] = units[lastIdx]
			w.SpatialHash[idx] = units[:lastIdx]
			return
		}
	}
}

// UpdateUnitPos перемещает юнит и перевешивает его в индексе.
func (w *World) UpdateUnitPos(u *Unit, newPos types.Phys3) error {
	tp := TileOf(newPos)
	if !w.InBounds(tp.X, tp.Y) {
		return errors.New("out of bounds")
	}

	w.RemoveUnit(u)
	u.Pos = newPos
	w.AddUnit(u)
	return nil
}

// UnitsInRadius возвращает живые юниты не дальше radius от центра
// (по плоскости, высота не учитывается). Обходятся только клетки
// накрывающего квадрата, не весь индекс.
func (w *World) UnitsInRadius(center types.Phys3, radius types.Phys) []*Unit {
	r := radius.Int() + 1
	ct := TileOf(center)

	var out []*Unit
	for y := ct.Y - r; y <= ct.Y+r; y++ {
		for x := ct.X - r; x <= ct.X+r; x++ {
			for _, u := range w.UnitsAt(x, y) {
				if !u.IsAlive() {
					continue
				}
				if center.DistanceTo(u.Pos) <= radius {
					out = append(out, u)
				}
			}
		}
	}
	return out
}
