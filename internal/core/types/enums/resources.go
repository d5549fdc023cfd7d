package enums

import "strings"

// GameResource — вид игрового ресурса.
type GameResource uint8

const (
	ResourceWood GameResource = iota // 0
	ResourceFood                     // 1
	ResourceGold                     // 2
	ResourceStone                    // 3

	// ResourceCount — количество видов ресурсов.
	// Используется как размер массивов ResourceBundle.
	ResourceCount
)

var gameResourceToString = map[GameResource]string{
	ResourceWood:  "WOOD",
	ResourceFood:  "FOOD",
	ResourceGold:  "GOLD",
	ResourceStone: "STONE",
}

var gameResourceStringToType = map[string]GameResource{
	"WOOD":  ResourceWood,
	"FOOD":  ResourceFood,
	"GOLD":  ResourceGold,
	"STONE": ResourceStone,
}

// String возвращает строковое представление (для логов и дебага)
func (r GameResource) String() string {
	if val, ok := gameResourceToString[r]; ok {
		return val
	}
	return "UNKNOWN"
}

// ParseGameResource конвертирует строку в Enum (нужно для загрузки определений типов)
func ParseGameResource(s string) (GameResource, bool) {
	upper := strings.ToUpper(s)
	val, ok := gameResourceStringToType[upper]
	return val, ok
}
