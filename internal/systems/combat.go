package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/fidget77/openage/internal/domain"
	"github.com/fidget77/openage/pkg/logger"
)

// AttackResult - итог одного удара
type AttackResult struct {
	Damage uint32
	// Died - цель добита этим ударом (уничтожает её вызывающий)
	Died bool
	// OutOfRange - удар не состоялся, цель дальше дистанции атаки
	OutOfRange bool
}

// ApplyAttack наносит один удар attacker по target.
//
// Урон считается по классам: по каждому классу из таблицы атаки
// вычитается броня того же класса (не ниже нуля), суммы складываются.
// Суммарный урон не опускается ниже domain.MinDamage - даже полностью
// бронированная цель теряет здоровье.
func ApplyAttack(attacker, target *domain.Unit) AttackResult {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":     "combat_system",
		"attacker_id":   attacker.ID,
		"attacker_name": attacker.Name(),
		"target_id":     target.ID,
		"target_name":   target.Name(),
	})

	// --- Проверка граничных условий ---

	atk, err := domain.UnitAttr[domain.AttackAttr](attacker)
	if err != nil {
		combatLogger.Warn("Attack failed: attacker has no attack attribute.")
		return AttackResult{}
	}
	if !target.IsAlive() {
		combatLogger.Info("Attack ineffective: target is already dead.")
		return AttackResult{}
	}
	if attacker.Pos.DistanceTo(target.Pos) > atk.Range {
		return AttackResult{OutOfRange: true}
	}

	return dealDamage(atk, target, combatLogger)
}

// dealDamage применяет таблицу урона к цели. Дистанцию не проверяет:
// прилетевший снаряд бьёт из любой дали.
func dealDamage(atk *domain.AttackAttr, target *domain.Unit, log *logrus.Entry) AttackResult {
	// --- Расчёт урона ---

	// Броня цели: через тип (shared), отсутствие - нулевая броня
	var armor domain.TypeAmountMap
	if ar, err := domain.UnitAttr[domain.ArmorAttr](target); err == nil {
		armor = ar.Armor
	}

	var total uint32
	for class, dmg := range atk.Damage {
		block := armor[class]
		if dmg > block {
			total += dmg - block
		}
	}
	// Минимум урона: броня смягчает, но не обнуляет удар
	if total < domain.MinDamage {
		total = domain.MinDamage
	}

	// --- Применение ---

	d := ensureDamaged(target)
	hpBefore := d.HP
	if total >= d.HP {
		d.HP = 0
	} else {
		d.HP -= total
	}
	died := d.HP == 0

	log.WithFields(logrus.Fields{
		"final_damage": total,
		"hp_before":    hpBefore,
		"hp_after":     d.HP,
		"target_died":  died,
	}).Info("Attack resolved.")

	return AttackResult{Damage: total, Died: died}
}

// ensureDamaged возвращает собственную запись текущего здоровья юнита,
// создавая её от максимума типа. Мутировать шаблонную запись нельзя -
// боль одного юнита не должна стать болью всех юнитов типа.
func ensureDamaged(u *domain.Unit) *domain.DamagedAttr {
	if a, ok := u.Attributes.Lookup(domain.AttrDamaged); ok {
		return a.(*domain.DamagedAttr)
	}
	d := &domain.DamagedAttr{HP: u.MaxHP()}
	u.Attributes.Add(d)
	return d
}

// ShouldEngage решает, отвечает ли юнит в данной стойке на цель.
// provoked - цель уже ударила нас (или союзника рядом).
func ShouldEngage(stance domain.AttackStance, provoked bool) bool {
	switch stance {
	case domain.StanceAggressive:
		return true
	case domain.StanceDefensive, domain.StanceStandGround:
		return provoked
	default: // StancePassive
		return false
	}
}
