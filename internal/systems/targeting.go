package systems

import (
	"github.com/fidget77/openage/internal/core/types"
	"github.com/fidget77/openage/internal/core/types/enums"
	"github.com/fidget77/openage/internal/domain"
)

// ValidationResult - результат проверки цели приказа
type ValidationResult struct {
	Target *domain.Unit
	Valid  bool
	Reason string // Почему цель не годится, если Valid == false
}

// ValidateOrderTarget проверяет, что цель приказа ещё существует и
// находится не дальше rangeLimit (0 - дистанция не проверяется).
func ValidateOrderTarget(actor *domain.Unit, ref domain.UnitReference, rangeLimit types.Phys) ValidationResult {
	target, ok := ref.Get()
	if !ok {
		return ValidationResult{Valid: false, Reason: "target is gone"}
	}
	if !target.IsAlive() {
		return ValidationResult{Valid: false, Reason: "target is dead"}
	}
	if rangeLimit > 0 && actor.Pos.DistanceTo(target.Pos) > rangeLimit {
		return ValidationResult{Valid: false, Reason: "target out of range"}
	}
	return ValidationResult{Target: target, Valid: true}
}

// NearestEnemy возвращает ближайший живой вражеский юнит в радиусе.
// Гайю и юниты без владельца не трогаем.
func NearestEnemy(w *domain.World, u *domain.Unit, radius types.Phys) *domain.Unit {
	me := u.Owner()
	if me == nil {
		return nil
	}

	var best *domain.Unit
	var bestDist types.Phys
	for _, other := range w.UnitsInRadius(u.Pos, radius) {
		if other == u || !me.IsEnemy(other.Owner()) {
			continue
		}
		d := u.Pos.DistanceTo(other.Pos)
		if best == nil || d < bestDist {
			best, bestDist = other, d
		}
	}
	return best
}

// NearestResourceSpot возвращает ближайшую непустую залежь ресурса res.
func NearestResourceSpot(w *domain.World, pos types.Phys3, res enums.GameResource, radius types.Phys) *domain.Unit {
	var best *domain.Unit
	var bestDist types.Phys
	for _, u := range w.UnitsInRadius(pos, radius) {
		spot, err := domain.UnitAttr[domain.ResourceAttr](u)
		if err != nil || spot.Resource != res || spot.Amount <= 0 {
			continue
		}
		d := pos.DistanceTo(u.Pos)
		if best == nil || d < bestDist {
			best, bestDist = u, d
		}
	}
	return best
}

// NearestDropsite возвращает ближайший достроенный склад игрока,
// принимающий ресурс res.
func NearestDropsite(w *domain.World, worker *domain.Unit, res enums.GameResource, radius types.Phys) *domain.Unit {
	me := worker.Owner()
	if me == nil {
		return nil
	}

	var best *domain.Unit
	var bestDist types.Phys
	for _, u := range w.UnitsInRadius(worker.Pos, radius) {
		if u.Owner() != me || !IsCompleted(u) {
			continue
		}
		site, err := domain.UnitAttr[domain.DropsiteAttr](u)
		if err != nil || !site.Accepting(res) {
			continue
		}
		d := worker.Pos.DistanceTo(u.Pos)
		if best == nil || d < bestDist {
			best, bestDist = u, d
		}
	}
	return best
}

// IsCompleted сообщает, достроен ли юнит. Юниты без записи
// строительства считаются готовыми от рождения.
func IsCompleted(u *domain.Unit) bool {
	b, err := domain.UnitAttr[domain.BuildingAttr](u)
	if err != nil {
		return true
	}
	return b.Completed >= 1.0
}
