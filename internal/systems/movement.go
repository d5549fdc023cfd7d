package systems

import (
	"github.com/fidget77/openage/internal/core/types"
	"github.com/fidget77/openage/internal/domain"
)

// StepResult - результат вычисления одного шага движения
type StepResult struct {
	NewPos  types.Phys3
	Moved   bool
	Arrived bool
	// Blocked - шаг упёрся в непроходимую клетку или край карты
	Blocked bool
}

// SetCourse разворачивает юнит на цель: пишет в direction-запись вектор
// с длиной скорости. Стоящий юнит получает нулевой вектор, но запись
// остаётся - по ней рендер ориентирует спрайт.
func SetCourse(u *domain.Unit, target types.Phys3) {
	speed := types.Phys(0)
	if sp, err := domain.UnitAttr[domain.SpeedAttr](u); err == nil {
		speed = sp.Speed
	}

	dir := ensureDirection(u)
	dir.Dir = target.Sub(u.Pos).Normalized(speed)
}

// CalculateStep вычисляет следующий шаг юнита к цели. Не меняет мир:
// применяет позицию вызывающий через World.UpdateUnitPos.
func CalculateStep(u *domain.Unit, w *domain.World, target types.Phys3) StepResult {
	dir, err := domain.UnitAttr[domain.DirectionAttr](u)
	if err != nil || dir.Dir.IsZero() {
		// Курс не проложен - считаем, что стоим у цели
		return StepResult{NewPos: u.Pos, Arrived: true}
	}

	remaining := u.Pos.DistanceTo(target)
	step := dir.Dir.FlatLength()

	// Шаг накрывает остаток пути - дошли, встаём точно в цель
	if step >= remaining || remaining <= types.PhysFromFloat(domain.ArrivalEpsilonTiles) {
		res := StepResult{NewPos: target, Moved: true, Arrived: true}
		tp := domain.TileOf(target)
		if !w.InBounds(tp.X, tp.Y) || !w.IsPassable(tp.X, tp.Y) {
			return StepResult{NewPos: u.Pos, Blocked: true}
		}
		return res
	}

	next := u.Pos.Add(dir.Dir)
	tp := domain.TileOf(next)
	if !w.InBounds(tp.X, tp.Y) || !w.IsPassable(tp.X, tp.Y) {
		return StepResult{NewPos: u.Pos, Blocked: true}
	}
	return StepResult{NewPos: next, Moved: true}
}

// ensureDirection возвращает собственную direction-запись юнита.
// Запись unshared: шаблон отдаёт только заготовку, мутируем всегда свою.
func ensureDirection(u *domain.Unit) *domain.DirectionAttr {
	if a, ok := u.Attributes.Lookup(domain.AttrDirection); ok {
		return a.(*domain.DirectionAttr)
	}
	d := &domain.DirectionAttr{}
	u.Attributes.Add(d)
	return d
}
