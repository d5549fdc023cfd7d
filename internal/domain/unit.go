package domain

import (
	"fmt"

	"github.com/fidget77/openage/internal/core/types"
	"github.com/fidget77/openage/internal/core/types/enums"
)

// GraphicSet - спрайты типа по виду анимации.
type GraphicSet map[enums.GraphicType]uint32

// Clone возвращает независимую копию набора спрайтов.
func (g GraphicSet) Clone() GraphicSet {
	if g == nil {
		return nil
	}
	out := make(GraphicSet, len(g))
	for k, v := range g {
		out[k] = v
	}
	return out
}

// UnitType - шаблон, из которого порождаются юниты. Несёт имя, класс
// задачи, спрайты, цену, время обучения и набор атрибутов по умолчанию.
//
// Shared-записи DefaultAttributes юниты читают прямо отсюда через
// Unit.Attribute - копий у экземпляров нет, правка шаблона видна всем.
// Unshared-записи - заготовки: при спавне копируются юниту.
type UnitType struct {
	ID    uint16          `json:"id"`
	Name  string          `json:"name"`
	Class enums.UnitClass `json:"class"`
	Kind  enums.UnitKind  `json:"kind"`

	Graphics          GraphicSet
	DefaultAttributes AttributeSet

	Cost ResourceBundle `json:"cost"`
	// TrainTime - тиков от заказа до выхода юнита
	TrainTime int `json:"trainTime"`
}

// Initialise наполняет атрибуты свежесозданного юнита из шаблона.
//
// divergent=false - обычный спавн: копируются только unshared-записи,
// shared юнит читает через тип. divergent=true - полная независимая
// копия всего набора: экземпляр расходится с шаблоном (превращённые
// юниты, герои, сценарные твари).
//
// После копирования выставляется свежее текущее здоровье: если тип даёт
// максимум HP, а заготовки damaged в шаблоне не было, юнит получает
// полное здоровье.
func (t *UnitType) Initialise(u *Unit, divergent bool) {
	u.Type = t
	if divergent {
		u.Attributes.AddCopies(&t.DefaultAttributes)
	} else {
		u.Attributes.AddCopiesFiltered(&t.DefaultAttributes, false, true)
	}

	if !u.Attributes.Has(AttrDamaged) {
		if hp, err := UnitAttr[HitPointsAttr](u); err == nil {
			u.Attributes.Add(&DamagedAttr{HP: hp.HP})
		}
	}
}

// Unit - один объект мира: боец, здание, снаряд, залежь. Владеет
// собственным набором unshared-атрибутов; shared-данные читает через
// тип. Юнитами владеет UnitContainer, внешние руки держат UnitID или
// UnitReference.
type Unit struct {
	ID   types.UnitID
	Type *UnitType

	Attributes AttributeSet

	Pos types.Phys3
	// Placement - как юнит стоит в мире (фундамент плавает до постройки)
	Placement enums.ObjectState

	Order *Order
	Dead  bool
}

// Attribute возвращает запись вида t: сперва собственный набор юнита,
// затем шаблон типа. Так unshared-состояние перекрывает shared-данные,
// а shared читаются без копий.
func (u *Unit) Attribute(t AttrType) (Attribute, bool) {
	if a, ok := u.Attributes.Lookup(t); ok {
		return a, true
	}
	if u.Type != nil {
		return u.Type.DefaultAttributes.Lookup(t)
	}
	return nil, false
}

// HasAttribute сообщает, достижима ли запись вида t (своя или типа).
func (u *Unit) HasAttribute(t AttrType) bool {
	_, ok := u.Attribute(t)
	return ok
}

// UnitAttr - типизированный доступ к атрибуту юнита с фолбэком на тип:
//
//	speed, err := domain.UnitAttr[domain.SpeedAttr](u)
//
// Семантика ошибки та же, что у GetAttr.
func UnitAttr[T any, PT attrPtr[T]](u *Unit) (PT, error) {
	var probe T
	t := PT(&probe).Type()
	a, ok := u.Attribute(t)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingAttribute, t)
	}
	return a.(PT), nil
}

// MaxHP возвращает максимум здоровья (0 - бессмертный реквизит).
func (u *Unit) MaxHP() uint32 {
	hp, err := UnitAttr[HitPointsAttr](u)
	if err != nil {
		return 0
	}
	return hp.HP
}

// CurrentHP возвращает текущее здоровье.
func (u *Unit) CurrentHP() uint32 {
	d, err := UnitAttr[DamagedAttr](u)
	if err != nil {
		return u.MaxHP()
	}
	return d.HP
}

// IsAlive сообщает, жив ли юнит.
//
// Юнит с записью здоровья, сбитой в ноль, уже мертв, даже если жнец
// еще не успел выставить флаг. Реквизит без записи здоровья бессмертен.
func (u *Unit) IsAlive() bool {
	if u == nil || u.Dead {
		return false
	}
	return u.MaxHP() == 0 || u.CurrentHP() > 0
}

// Owner возвращает игрока-владельца (nil у гайи без owner-записи).
func (u *Unit) Owner() *Player {
	own, err := UnitAttr[OwnerAttr](u)
	if err != nil {
		return nil
	}
	return own.Player
}

// Name возвращает имя типа (для логов).
func (u *Unit) Name() string {
	if u.Type == nil {
		return "untyped"
	}
	return u.Type.Name
}

// SetOrder назначает новый приказ, замещая прежний.
func (u *Unit) SetOrder(o *Order) {
	u.Order = o
}

// ClearOrder снимает текущий приказ.
func (u *Unit) ClearOrder() {
	u.Order = nil
}
