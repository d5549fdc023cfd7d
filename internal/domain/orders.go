package domain

import (
	"github.com/fidget77/openage/internal/core/types"
	"github.com/fidget77/openage/internal/core/types/enums"
)

// OrderKind - Внутренний числовой идентификатор приказа юниту
type OrderKind uint8

const (
	OrderNone OrderKind = iota
	OrderMove
	OrderAttack
	OrderGather
	OrderDeposit
	OrderBuild
	OrderHeal
	OrderGarrison
)

// Маппинг для логов Domain -> String
var orderKindToString = map[OrderKind]string{
	OrderNone:     "NONE",
	OrderMove:     "MOVE",
	OrderAttack:   "ATTACK",
	OrderGather:   "GATHER",
	OrderDeposit:  "DEPOSIT",
	OrderBuild:    "BUILD",
	OrderHeal:     "HEAL",
	OrderGarrison: "GARRISON",
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (k OrderKind) String() string {
	if s, ok := orderKindToString[k]; ok {
		return s
	}
	return "NONE"
}

// Order - текущий приказ юнита. Одновременно активен не более одного;
// новый приказ замещает прежний целиком.
//
// Target и TargetRef взаимодополняются: движение идёт в точку, атака и
// добыча - по ссылке на цель. Протухшая ссылка означает, что цель
// исчезла - системы снимают приказ.
type Order struct {
	Kind      OrderKind
	Target    types.Phys3
	TargetRef UnitReference
	// Resource - вид ресурса для GATHER (какую задачу выбрал рабочий)
	Resource enums.GameResource
	// Auto - приказ выдан стойкой, а не игроком: стойка вправе его
	// заменить или снять (возврат с поводка)
	Auto bool
}
