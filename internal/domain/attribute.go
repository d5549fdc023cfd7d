package domain

// AttrType - Внутренний числовой идентификатор вида атрибута.
// Закрытое множество: по одному значению на схему (см. attr_*.go).
type AttrType uint8

const (
	AttrUnknown AttrType = iota
	AttrOwner
	AttrHitPoints
	AttrDamaged
	AttrArmor
	AttrAttack
	AttrHeal
	AttrSpeed
	AttrDirection
	AttrProjectile
	AttrBuilding
	AttrDropsite
	AttrResource
	AttrWorker
	AttrMultiType
	AttrGarrison

	// AttrTypeCount - количество видов (для итерации и массивов)
	AttrTypeCount = iota - 1
)

// AttrCategory - категория записи: общая или индивидуальная.
//
// Shared-записи одинаковы для всех юнитов одного типа и живут в наборе
// типа (шаблоне). Unshared-записи - текущее состояние конкретного юнита,
// при спавне копируются в его собственный набор.
type AttrCategory uint8

const (
	// CategoryUnshared - состояние конкретного юнита (текущие HP, приказ атаки...)
	CategoryUnshared AttrCategory = iota
	// CategoryShared - данные уровня типа (броня, скорость, ставки добычи...)
	CategoryShared
)

// Маппинг для логов Domain -> String
var attrTypeToString = map[AttrType]string{
	AttrOwner:      "owner",
	AttrHitPoints:  "hitpoints",
	AttrDamaged:    "damaged",
	AttrArmor:      "armor",
	AttrAttack:     "attack",
	AttrHeal:       "heal",
	AttrSpeed:      "speed",
	AttrDirection:  "direction",
	AttrProjectile: "projectile",
	AttrBuilding:   "building",
	AttrDropsite:   "dropsite",
	AttrResource:   "resource",
	AttrWorker:     "worker",
	AttrMultiType:  "multitype",
	AttrGarrison:   "garrison",
}

// Маппинг для конвертации YAML/JSON -> Domain
var attrStringToType = map[string]AttrType{
	"owner":      AttrOwner,
	"hitpoints":  AttrHitPoints,
	"damaged":    AttrDamaged,
	"armor":      AttrArmor,
	"attack":     AttrAttack,
	"heal":       AttrHeal,
	"speed":      AttrSpeed,
	"direction":  AttrDirection,
	"projectile": AttrProjectile,
	"building":   AttrBuilding,
	"dropsite":   AttrDropsite,
	"resource":   AttrResource,
	"worker":     AttrWorker,
	"multitype":  AttrMultiType,
	"garrison":   AttrGarrison,
}

// Категория - чистая функция вида, никогда не состояние записи.
// Таблица закрыта: каждый вид объявлен ровно один раз.
var attrTypeCategory = map[AttrType]AttrCategory{
	AttrOwner:      CategoryShared,
	AttrHitPoints:  CategoryShared,
	AttrDamaged:    CategoryUnshared,
	AttrArmor:      CategoryShared,
	AttrAttack:     CategoryUnshared,
	AttrHeal:       CategoryShared,
	AttrSpeed:      CategoryShared,
	AttrDirection:  CategoryUnshared,
	AttrProjectile: CategoryUnshared,
	AttrBuilding:   CategoryUnshared,
	AttrDropsite:   CategoryShared,
	AttrResource:   CategoryUnshared,
	AttrWorker:     CategoryShared,
	AttrMultiType:  CategoryShared,
	AttrGarrison:   CategoryUnshared,
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (t AttrType) String() string {
	if s, ok := attrTypeToString[t]; ok {
		return s
	}
	return "unknown"
}

// ParseAttrType конвертирует строку из YAML/JSON в AttrType
func ParseAttrType(s string) AttrType {
	if t, ok := attrStringToType[s]; ok {
		return t
	}
	return AttrUnknown
}

// Category возвращает категорию вида. Неизвестный вид считается
// unshared: такие записи всегда копируются, а не разделяются.
func (t AttrType) Category() AttrCategory {
	if c, ok := attrTypeCategory[t]; ok {
		return c
	}
	return CategoryUnshared
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (c AttrCategory) String() string {
	if c == CategoryShared {
		return "shared"
	}
	return "unshared"
}

// Attribute - одна запись-характеристика юнита или типа юнита.
//
// Каждая схема (attr_*.go) несёт фиксированный вид, полезную нагрузку
// фиксированной формы и умеет глубоко копировать себя. Copy обязан
// вернуть независимую запись: вложенные map и слайсы дублируются,
// ссылки на внешние объекты (игрок, тип юнита, слабые ссылки на юниты)
// копируются как ссылки. Copy не может завершиться ошибкой; протухшая
// слабая ссылка копируется как есть - валидность проверяет читатель.
type Attribute interface {
	Type() AttrType
	Copy() Attribute
}

// TypeAmountMap - таблица "класс урона/брони -> величина".
// Ключи - числовые идентификаторы классов атаки (melee, pierce, siege...).
type TypeAmountMap map[int]uint32

// Clone возвращает независимую копию таблицы. Nil остаётся nil.
func (m TypeAmountMap) Clone() TypeAmountMap {
	if m == nil {
		return nil
	}
	out := make(TypeAmountMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Общепринятые классы урона/брони. Ключи TypeAmountMap не ограничены
// этим списком: моды добавляют свои классы без перекомпиляции ядра.
const (
	ArmorClassMelee = iota
	ArmorClassPierce
	ArmorClassSiege
	ArmorClassBuilding
	ArmorClassCavalry
)
