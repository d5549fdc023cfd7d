package domain

import (
	"testing"

	"github.com/fidget77/openage/internal/core/types"
	"github.com/fidget77/openage/internal/core/types/enums"
)

// testMilitiaType собирает шаблон бойца: shared-записи плюс заготовка
// направления (unshared).
func testMilitiaType() *UnitType {
	t := &UnitType{
		ID:    11,
		Name:  "militia",
		Class: enums.ClassInfantry,
		Kind:  enums.KindUnit,
	}
	t.DefaultAttributes.Add(&HitPointsAttr{HP: 40, BarHeight: 1.0})
	t.DefaultAttributes.Add(&ArmorAttr{Armor: TypeAmountMap{ArmorClassMelee: 1}})
	t.DefaultAttributes.Add(&SpeedAttr{Speed: types.PhysFromFloat(0.9)})
	t.DefaultAttributes.Add(&DirectionAttr{})
	return t
}

func TestUnitType_Initialise_Template(t *testing.T) {
	typ := testMilitiaType()
	c := NewUnitContainer(1)
	u := c.NewUnit(enums.KindUnit)
	typ.Initialise(u, false)

	// Unshared-записи скопированы, shared остались в шаблоне
	if !u.Attributes.Has(AttrDirection) {
		t.Error("unshared direction was not copied to the instance")
	}
	if u.Attributes.Has(AttrSpeed) || u.Attributes.Has(AttrArmor) || u.Attributes.Has(AttrHitPoints) {
		t.Errorf("shared records copied on non-divergent spawn: %v", u.Attributes.Types())
	}

	// Но через юнит shared-данные читаются - фолбэк на тип
	speed, err := UnitAttr[SpeedAttr](u)
	if err != nil {
		t.Fatalf("UnitAttr speed: %v", err)
	}
	if speed.Speed != types.PhysFromFloat(0.9) {
		t.Errorf("speed through type fallback = %v", speed.Speed)
	}

	// Свежее текущее здоровье равно максимуму типа
	if u.CurrentHP() != 40 {
		t.Errorf("fresh CurrentHP = %d, want 40", u.CurrentHP())
	}
	if !u.Attributes.Has(AttrDamaged) {
		t.Error("instance must own its damaged record")
	}
}

func TestUnitType_Initialise_Divergent(t *testing.T) {
	typ := testMilitiaType()
	c := NewUnitContainer(1)
	u := c.NewUnit(enums.KindUnit)
	typ.Initialise(u, true)

	// Полная копия: и shared-записи теперь собственные
	for _, kind := range []AttrType{AttrHitPoints, AttrArmor, AttrSpeed, AttrDirection} {
		if !u.Attributes.Has(kind) {
			t.Errorf("divergent spawn missing own %s", kind)
		}
	}

	// Правка собственной брони не трогает шаблон
	own, _ := GetAttr[ArmorAttr](&u.Attributes)
	own.Armor[ArmorClassMelee] = 77
	tmpl, _ := GetAttr[ArmorAttr](&typ.DefaultAttributes)
	if tmpl.Armor[ArmorClassMelee] != 1 {
		t.Errorf("template armor mutated through divergent instance: %d", tmpl.Armor[ArmorClassMelee])
	}
}

func TestUnit_AttributeOverridesTemplate(t *testing.T) {
	typ := testMilitiaType()
	c := NewUnitContainer(1)
	u := c.NewUnit(enums.KindUnit)
	typ.Initialise(u, false)

	// Собственная запись перекрывает шаблонную
	u.Attributes.Add(&SpeedAttr{Speed: types.PhysFromFloat(0.2)})
	speed, err := UnitAttr[SpeedAttr](u)
	if err != nil {
		t.Fatalf("UnitAttr: %v", err)
	}
	if speed.Speed != types.PhysFromFloat(0.2) {
		t.Errorf("own record must win over template: %v", speed.Speed)
	}
}

func TestUnit_AttributeUntyped(t *testing.T) {
	c := NewUnitContainer(1)
	u := c.NewUnit(enums.KindUnit)

	if _, ok := u.Attribute(AttrHeal); ok {
		t.Error("typeless unit reported an attribute it cannot have")
	}
	if u.HasAttribute(AttrOwner) {
		t.Error("HasAttribute on empty unit")
	}
	if u.MaxHP() != 0 {
		t.Errorf("MaxHP without hitpoints = %d, want 0", u.MaxHP())
	}
}

func TestUnit_IsAlive(t *testing.T) {
	typ := testMilitiaType()
	c := NewUnitContainer(1)

	u := c.NewUnit(enums.KindUnit)
	typ.Initialise(u, false)
	if !u.IsAlive() {
		t.Error("fresh unit must be alive")
	}

	// Ноль здоровья означает смерть еще до флага Dead
	d, _ := UnitAttr[DamagedAttr](u)
	d.HP = 0
	if u.IsAlive() {
		t.Error("unit beaten to zero HP must read as dead")
	}

	d.HP = 40
	u.Dead = true
	if u.IsAlive() {
		t.Error("Dead flag must win regardless of HP")
	}

	// Реквизит без записи здоровья жив всегда
	spot := c.NewUnit(enums.KindResourceSpot)
	if !spot.IsAlive() {
		t.Error("unit without a hitpoints record must stay alive")
	}

	var none *Unit
	if none.IsAlive() {
		t.Error("nil unit is not alive")
	}
}

func TestUnit_Owner(t *testing.T) {
	p := &Player{ID: 3, Name: "green"}
	typ := testMilitiaType()
	typ.DefaultAttributes.Add(&OwnerAttr{Player: p})

	c := NewUnitContainer(1)
	u := c.NewUnit(enums.KindUnit)
	typ.Initialise(u, false)

	if u.Owner() != p {
		t.Error("Owner() must resolve through the type's shared owner record")
	}
}
