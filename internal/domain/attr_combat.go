package domain

import (
	"github.com/fidget77/openage/internal/core/types"
)

// AttackStance - Внутренний числовой идентификатор боевой стойки
type AttackStance uint8

const (
	// StancePassive - не отвечать даже на атаку (стойка по умолчанию)
	StancePassive AttackStance = iota
	// StanceAggressive - атаковать всё враждебное в радиусе обзора
	StanceAggressive
	// StanceDefensive - отвечать на атаку, не преследуя далеко
	StanceDefensive
	// StanceStandGround - отвечать, не сходя с места
	StanceStandGround
)

// Маппинг для логов Domain -> String
var stanceToString = map[AttackStance]string{
	StancePassive:     "PASSIVE",
	StanceAggressive:  "AGGRESSIVE",
	StanceDefensive:   "DEFENSIVE",
	StanceStandGround: "STAND_GROUND",
}

// Маппинг для конвертации JSON -> Domain
var stringToStance = map[string]AttackStance{
	"PASSIVE":      StancePassive,
	"AGGRESSIVE":   StanceAggressive,
	"DEFENSIVE":    StanceDefensive,
	"STAND_GROUND": StanceStandGround,
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (s AttackStance) String() string {
	if v, ok := stanceToString[s]; ok {
		return v
	}
	return "PASSIVE"
}

// ParseStance конвертирует строку из JSON в AttackStance.
// Второй результат false - строка не распознана.
func ParseStance(s string) (AttackStance, bool) {
	v, ok := stringToStance[s]
	return v, ok
}

// ArmorAttr - таблица брони по классам урона.
// Запись shared: броня задаётся типом юнита.
type ArmorAttr struct {
	Armor TypeAmountMap
}

func (a *ArmorAttr) Type() AttrType { return AttrArmor }

func (a *ArmorAttr) Copy() Attribute {
	return &ArmorAttr{Armor: a.Armor.Clone()}
}

// AttackAttr - атака юнита: тип снаряда, дальность, высота запуска,
// урон по классам и текущая стойка. Запись unshared: стойку каждый юнит
// меняет независимо, сам атрибут - мутабельное боевое состояние.
//
// Стойка хранится как есть; переключают её внешние системы (AI, приказы
// игрока), схема не содержит логики переходов.
type AttackAttr struct {
	// PType - тип юнита-снаряда (nil для ближнего боя)
	PType      *UnitType
	Range      types.Phys
	InitHeight types.Phys
	Damage     TypeAmountMap
	Stance     AttackStance
}

// NewAttackAttr создаёт запись атаки со стойкой по умолчанию.
func NewAttackAttr(ptype *UnitType, rng, initHeight types.Phys, damage TypeAmountMap) *AttackAttr {
	return &AttackAttr{
		PType:      ptype,
		Range:      rng,
		InitHeight: initHeight,
		Damage:     damage,
		Stance:     StancePassive,
	}
}

func (a *AttackAttr) Type() AttrType { return AttrAttack }

// Copy дублирует таблицу урона; ссылка на тип снаряда остаётся общей.
func (a *AttackAttr) Copy() Attribute {
	c := *a
	c.Damage = a.Damage.Clone()
	return &c
}

// HealAttr - лечение: дальность, объём за цикл и частота циклов.
// Запись shared.
type HealAttr struct {
	Range types.Phys
	// Life - сколько HP восстанавливает один цикл
	Life uint32
	// Rate - циклов в секунду
	Rate float64
}

func (a *HealAttr) Type() AttrType { return AttrHeal }

func (a *HealAttr) Copy() Attribute {
	c := *a
	return &c
}
