package systems

import (
	"github.com/fidget77/openage/internal/domain"
)

// HealPulse - один цикл лечения target лекарем healer.
// Возвращает восстановленные HP; 0 и false - лечение не состоялось
// (нет heal-записи, цель вне дальности, мертва или цела).
func HealPulse(healer, target *domain.Unit) (uint32, bool) {
	h, err := domain.UnitAttr[domain.HealAttr](healer)
	if err != nil {
		return 0, false
	}
	if !target.IsAlive() {
		return 0, false
	}
	if healer.Pos.DistanceTo(target.Pos) > h.Range {
		return 0, false
	}

	max := target.MaxHP()
	d := ensureDamaged(target)
	if d.HP >= max {
		return 0, false
	}

	healed := h.Life
	if d.HP+healed > max {
		healed = max - d.HP
	}
	d.HP += healed
	return healed, true
}

// HealDue сообщает, пора ли лекарю пульсировать на данном тике.
// Rate - циклов в секунду; tickRate - тиков в секунду.
func HealDue(h *domain.HealAttr, tick int64, tickRate int) bool {
	if h.Rate <= 0 || tickRate <= 0 {
		return false
	}
	interval := int64(float64(tickRate) / h.Rate)
	if interval < 1 {
		interval = 1
	}
	return tick%interval == 0
}
