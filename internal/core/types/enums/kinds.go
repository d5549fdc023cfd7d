package enums

import "strings"

// UnitKind — грубый вид юнита, упаковывается в UnitID при спавне.
type UnitKind uint8

const (
	KindUnknown UnitKind = iota
	KindUnit
	KindBuilding
	KindProjectile
	KindResourceSpot
	KindAmbient
)

var unitKindToString = map[UnitKind]string{
	KindUnit:         "UNIT",
	KindBuilding:     "BUILDING",
	KindProjectile:   "PROJECTILE",
	KindResourceSpot: "RESOURCE_SPOT",
	KindAmbient:      "AMBIENT",
}

var unitKindStringToType = map[string]UnitKind{
	"UNIT":          KindUnit,
	"BUILDING":      KindBuilding,
	"PROJECTILE":    KindProjectile,
	"RESOURCE_SPOT": KindResourceSpot,
	"AMBIENT":       KindAmbient,
}

func (k UnitKind) String() string {
	if val, ok := unitKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

func ParseUnitKind(s string) UnitKind {
	upper := strings.ToUpper(s)
	if val, ok := unitKindStringToType[upper]; ok {
		return val
	}
	return KindUnknown
}
