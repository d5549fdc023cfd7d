package systems

import (
	"github.com/fidget77/openage/internal/core/types"
	"github.com/fidget77/openage/internal/domain"
)

// ComputeStanceAction решает, что юнит делает сам, без приказа игрока.
// Возвращает цель для атаки или nil (стоим дальше).
//
// Вызывается только для юнитов без активного приказа: явный приказ
// игрока всегда важнее инстинктов стойки.
func ComputeStanceAction(u *domain.Unit, w *domain.World) *domain.Unit {
	atk, err := domain.UnitAttr[domain.AttackAttr](u)
	if err != nil {
		return nil // не боец
	}

	provoked := wasProvoked(u)
	if !ShouldEngage(atk.Stance, provoked) {
		return nil
	}

	// Радиус поиска: агрессивная стойка смотрит дальше собственной
	// дистанции атаки, stand ground - только на расстоянии удара
	radius := types.PhysFromInt(domain.AggroRadius)
	if atk.Stance == domain.StanceStandGround {
		radius = atk.Range
	}

	return NearestEnemy(w, u, radius)
}

// wasProvoked сообщает, бит ли юнит: текущее здоровье ниже максимума.
// Грубый, но детерминированный признак - отдельного журнала обид нет.
func wasProvoked(u *domain.Unit) bool {
	max := u.MaxHP()
	return max > 0 && u.CurrentHP() < max
}
