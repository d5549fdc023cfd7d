package enums

import "strings"

// UnitClass — игровой класс юнита.
//
// Класс определяет роль юнита в симуляции и служит ключом
// multitype-атрибута: один и тот же житель переключается между
// подтипами "лесоруб" / "собиратель" / "шахтер" в зависимости
// от текущей задачи.
type UnitClass uint8

const (
	ClassUnknown    UnitClass = iota // 0
	ClassCivilian                    // 1
	ClassLumberjack                  // 2
	ClassForager                     // 3
	ClassMiner                       // 4
	ClassInfantry                    // 5
	ClassArcher                      // 6
	ClassCavalry                     // 7
	ClassSiege                       // 8
	ClassBuilding                    // 9
	ClassAmbient                     // 10 (деревья, залежи, дикие животные)
)

var unitClassToString = map[UnitClass]string{
	ClassCivilian:   "CIVILIAN",
	ClassLumberjack: "LUMBERJACK",
	ClassForager:    "FORAGER",
	ClassMiner:      "MINER",
	ClassInfantry:   "INFANTRY",
	ClassArcher:     "ARCHER",
	ClassCavalry:    "CAVALRY",
	ClassSiege:      "SIEGE",
	ClassBuilding:   "BUILDING",
	ClassAmbient:    "AMBIENT",
}

var unitClassStringToType = map[string]UnitClass{
	"CIVILIAN":   ClassCivilian,
	"LUMBERJACK": ClassLumberjack,
	"FORAGER":    ClassForager,
	"MINER":      ClassMiner,
	"INFANTRY":   ClassInfantry,
	"ARCHER":     ClassArcher,
	"CAVALRY":    ClassCavalry,
	"SIEGE":      ClassSiege,
	"BUILDING":   ClassBuilding,
	"AMBIENT":    ClassAmbient,
}

func (c UnitClass) String() string {
	if val, ok := unitClassToString[c]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseUnitClass(s string) UnitClass {
	upper := strings.ToUpper(s)
	if val, ok := unitClassStringToType[upper]; ok {
		return val
	}
	return ClassUnknown
}
