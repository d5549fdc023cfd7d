package domain

import "strings"

// ActionType - Внутренний числовой идентификатор действия игрока
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionMove
	ActionAttack
	ActionStance
	ActionGather
	ActionBuild
	ActionTrain
	ActionRally
	ActionGarrison
	ActionUngarrison
	ActionStop
	ActionCheat
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":       ActionInit,
	"MOVE":       ActionMove,
	"ATTACK":     ActionAttack,
	"STANCE":     ActionStance,
	"GATHER":     ActionGather,
	"BUILD":      ActionBuild,
	"TRAIN":      ActionTrain,
	"RALLY":      ActionRally,
	"GARRISON":   ActionGarrison,
	"UNGARRISON": ActionUngarrison,
	"STOP":       ActionStop,
	"CHEAT":      ActionCheat,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:       "INIT",
	ActionMove:       "MOVE",
	ActionAttack:     "ATTACK",
	ActionStance:     "STANCE",
	ActionGather:     "GATHER",
	ActionBuild:      "BUILD",
	ActionTrain:      "TRAIN",
	ActionRally:      "RALLY",
	ActionGarrison:   "GARRISON",
	ActionUngarrison: "UNGARRISON",
	ActionStop:       "STOP",
	ActionCheat:      "CHEAT",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
