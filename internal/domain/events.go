package domain

import "strings"

// EventType - Внутренний числовой идентификатор события симуляции
type EventType uint8

const (
	EventUnknown EventType = iota
	EventConstructionComplete
	EventTrainComplete
	EventUnitDied
	EventResourceDepleted
)

// Маппинг для конвертации JSON -> Domain
var eventStringToCmd = map[string]EventType{
	"CONSTRUCTION_COMPLETE": EventConstructionComplete,
	"TRAIN_COMPLETE":        EventTrainComplete,
	"UNIT_DIED":             EventUnitDied,
	"RESOURCE_DEPLETED":     EventResourceDepleted,
}

// Маппинг для логов Domain -> String
var eventCmdToString = map[EventType]string{
	EventConstructionComplete: "CONSTRUCTION_COMPLETE",
	EventTrainComplete:        "TRAIN_COMPLETE",
	EventUnitDied:             "UNIT_DIED",
	EventResourceDepleted:     "RESOURCE_DEPLETED",
}

// ParseEvent конвертирует строку из JSON в EventType
func ParseEvent(s string) EventType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := eventStringToCmd[upper]; ok {
		return val
	}
	return EventUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (e EventType) String() string {
	if val, ok := eventCmdToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}
