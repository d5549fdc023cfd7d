package enums

// ObjectState — состояние размещения юнита на местности.
//
// Строящееся здание стоит как "floating" (прозрачно для прохода),
// а по завершении стройки переводится в состояние, записанное
// в его атрибуте строительства.
type ObjectState uint8

const (
	StateRemoved ObjectState = iota
	StateFloating
	StatePlaced
	StatePlacedNoCollision
)

var objectStateToString = map[ObjectState]string{
	StateRemoved:           "REMOVED",
	StateFloating:          "FLOATING",
	StatePlaced:            "PLACED",
	StatePlacedNoCollision: "PLACED_NO_COLLISION",
}

func (s ObjectState) String() string {
	if val, ok := objectStateToString[s]; ok {
		return val
	}
	return "UNKNOWN"
}
