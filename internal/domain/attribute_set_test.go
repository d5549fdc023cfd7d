package domain

import (
	"errors"
	"testing"

	"github.com/fidget77/openage/internal/core/types"
	"github.com/fidget77/openage/internal/core/types/enums"
)

// Фабрики записей: по одной на каждый вид.
var sampleAttrFactories = map[AttrType]func() Attribute{
	AttrOwner:     func() Attribute { return &OwnerAttr{Player: &Player{ID: 1, Name: "red"}} },
	AttrHitPoints: func() Attribute { return &HitPointsAttr{HP: 60, BarHeight: 1.2} },
	AttrDamaged:   func() Attribute { return &DamagedAttr{HP: 45} },
	AttrArmor:     func() Attribute { return &ArmorAttr{Armor: TypeAmountMap{ArmorClassMelee: 2}} },
	AttrAttack: func() Attribute {
		return NewAttackAttr(nil, types.PhysFromInt(4), types.PhysFromFloat(1.5), TypeAmountMap{ArmorClassMelee: 6})
	},
	AttrHeal:      func() Attribute { return &HealAttr{Range: types.PhysFromInt(3), Life: 2, Rate: 0.5} },
	AttrSpeed:     func() Attribute { return &SpeedAttr{Speed: types.PhysFromFloat(0.9)} },
	AttrDirection: func() Attribute { return &DirectionAttr{Dir: types.Phys3Delta{NE: types.PhysFromInt(1)}} },
	AttrProjectile: func() Attribute {
		return &ProjectileAttr{Arc: 0.78, Launched: true}
	},
	AttrBuilding: func() Attribute {
		return &BuildingAttr{Completed: 0.4, FoundationTerrain: enums.TerrainDirt, CompletionState: enums.StatePlaced}
	},
	AttrDropsite: func() Attribute {
		return &DropsiteAttr{Accepts: []enums.GameResource{enums.ResourceWood, enums.ResourceFood}}
	},
	AttrResource: func() Attribute { return NewResourceAttr(enums.ResourceGold, 800) },
	AttrWorker: func() Attribute {
		w := &WorkerAttr{Capacity: 10}
		w.GatherRate.Set(enums.ResourceWood, 0.3)
		return w
	},
	AttrMultiType: func() Attribute {
		return &MultiTypeAttr{Types: map[enums.UnitClass]*UnitType{enums.ClassCivilian: {ID: 7, Name: "villager"}}}
	},
	AttrGarrison: func() Attribute { return &GarrisonAttr{Content: []UnitReference{{}}} },
}

// fullSampleSet возвращает набор со всеми пятнадцатью видами.
func fullSampleSet() *AttributeSet {
	s := NewAttributeSet()
	for _, mk := range sampleAttrFactories {
		s.Add(mk())
	}
	return s
}

func TestAttributeSet_AddHasLookup(t *testing.T) {
	for kind, mk := range sampleAttrFactories {
		s := NewAttributeSet()
		s.Add(mk())

		if !s.Has(kind) {
			t.Errorf("Has(%s) = false after Add", kind)
		}
		got, ok := s.Lookup(kind)
		if !ok {
			t.Fatalf("Lookup(%s) returned no record after Add", kind)
		}
		if got.Type() != kind {
			t.Errorf("Lookup(%s).Type() = %s", kind, got.Type())
		}
	}
}

func TestAttributeSet_AddReplacesSameKind(t *testing.T) {
	s := NewAttributeSet()
	s.Add(&DamagedAttr{HP: 10})
	s.Add(&DamagedAttr{HP: 99})

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (second add must replace)", s.Len())
	}
	d, err := GetAttr[DamagedAttr](s)
	if err != nil {
		t.Fatalf("GetAttr: %v", err)
	}
	if d.HP != 99 {
		t.Errorf("HP = %d, want 99 (the later record)", d.HP)
	}
}

func TestAttributeSet_Remove(t *testing.T) {
	s := NewAttributeSet()
	s.Add(&SpeedAttr{Speed: types.PhysFromInt(1)})

	if !s.Remove(AttrSpeed) {
		t.Error("Remove(speed) = false, record was present")
	}
	if s.Has(AttrSpeed) {
		t.Error("Has(speed) = true after Remove")
	}
	if s.Remove(AttrSpeed) {
		t.Error("Remove(speed) = true on empty slot")
	}
}

func TestAttributeSet_LookupAbsent(t *testing.T) {
	s := NewAttributeSet()
	if _, ok := s.Lookup(AttrArmor); ok {
		t.Error("Lookup on empty set returned a record")
	}
	if s.Has(AttrArmor) {
		t.Error("Has on empty set returned true")
	}
}

func TestGetAttr_Missing(t *testing.T) {
	s := NewAttributeSet()
	_, err := GetAttr[AttackAttr](s)
	if err == nil {
		t.Fatal("GetAttr on empty set returned no error")
	}
	if !errors.Is(err, ErrMissingAttribute) {
		t.Errorf("error %v is not ErrMissingAttribute", err)
	}
}

func TestGetAttr_Typed(t *testing.T) {
	s := NewAttributeSet()
	s.Add(&HitPointsAttr{HP: 75, BarHeight: 2})

	hp, err := GetAttr[HitPointsAttr](s)
	if err != nil {
		t.Fatalf("GetAttr: %v", err)
	}
	if hp.HP != 75 {
		t.Errorf("hp.HP = %d, want 75", hp.HP)
	}
	// Указатель ведёт в набор: правка видна через Lookup
	hp.HP = 33
	again, _ := GetAttr[HitPointsAttr](s)
	if again.HP != 33 {
		t.Errorf("mutation through typed accessor lost: HP = %d", again.HP)
	}
}

func TestAttributeSet_AddCopies_DeepCopy(t *testing.T) {
	owner := &Player{ID: 2, Name: "blue"}
	src := NewAttributeSet()
	src.Add(&OwnerAttr{Player: owner})
	src.Add(&ArmorAttr{Armor: TypeAmountMap{ArmorClassMelee: 2, ArmorClassPierce: 1}})
	src.Add(&GarrisonAttr{Content: []UnitReference{{}}})

	dst := NewAttributeSet()
	dst.AddCopies(src)

	if dst.Len() != src.Len() {
		t.Fatalf("copy Len() = %d, want %d", dst.Len(), src.Len())
	}

	// Копия независима: правка карты брони не течёт в источник
	dstArmor, _ := GetAttr[ArmorAttr](dst)
	dstArmor.Armor[ArmorClassMelee] = 100
	srcArmor, _ := GetAttr[ArmorAttr](src)
	if srcArmor.Armor[ArmorClassMelee] != 2 {
		t.Errorf("source armor mutated through copy: %d", srcArmor.Armor[ArmorClassMelee])
	}

	// И в обратную сторону
	srcArmor.Armor[ArmorClassPierce] = 50
	if dstArmor.Armor[ArmorClassPierce] != 1 {
		t.Errorf("copy armor mutated through source: %d", dstArmor.Armor[ArmorClassPierce])
	}

	// Слайс гарнизона - отдельный бэк-массив
	dstGar, _ := GetAttr[GarrisonAttr](dst)
	dstGar.Content = append(dstGar.Content, UnitReference{})
	srcGar, _ := GetAttr[GarrisonAttr](src)
	if len(srcGar.Content) != 1 {
		t.Errorf("source garrison grew with the copy: len = %d", len(srcGar.Content))
	}

	// Ссылка на игрока - общая, это ссылка на коллаборатора, не payload
	dstOwner, _ := GetAttr[OwnerAttr](dst)
	if dstOwner.Player != owner {
		t.Error("owner referent was cloned, must alias")
	}
}

func TestAttributeSet_AddCopiesFiltered(t *testing.T) {
	src := fullSampleSet()

	tests := []struct {
		name     string
		shared   bool
		unshared bool
		want     AttrCategory
	}{
		{"shared only", true, false, CategoryShared},
		{"unshared only", false, true, CategoryUnshared},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := NewAttributeSet()
			dst.AddCopiesFiltered(src, tt.shared, tt.unshared)

			for _, kind := range src.Types() {
				wantPresent := kind.Category() == tt.want
				if dst.Has(kind) != wantPresent {
					t.Errorf("kind %s (category %s): present = %v, want %v",
						kind, kind.Category(), dst.Has(kind), wantPresent)
				}
			}
		})
	}
}

func TestAttributeSet_AddCopiesFiltered_BothEqualsFull(t *testing.T) {
	src := fullSampleSet()

	full := NewAttributeSet()
	full.AddCopies(src)

	both := NewAttributeSet()
	both.AddCopiesFiltered(src, true, true)

	if full.Len() != both.Len() {
		t.Fatalf("AddCopiesFiltered(true,true) Len = %d, AddCopies Len = %d", both.Len(), full.Len())
	}
	for _, kind := range full.Types() {
		if !both.Has(kind) {
			t.Errorf("kind %s present in full copy, absent in (true,true) copy", kind)
		}
	}
}

// Сценарий: шаблон типа с shared-записями, экземпляр с собственным
// текущим здоровьем.
func TestAttributeSet_TemplateInstanceScenario(t *testing.T) {
	typeSet := NewAttributeSet()
	typeSet.Add(&ArmorAttr{Armor: TypeAmountMap{ArmorClassMelee: 2}})
	typeSet.Add(&SpeedAttr{Speed: types.PhysFromFloat(1.5)})

	entity := NewAttributeSet()
	entity.AddCopiesFiltered(typeSet, true, true)
	entity.Add(&DamagedAttr{HP: 50})

	wantKinds := []AttrType{AttrDamaged, AttrArmor, AttrSpeed}
	if entity.Len() != len(wantKinds) {
		t.Fatalf("entity Len() = %d, want %d", entity.Len(), len(wantKinds))
	}
	for _, k := range wantKinds {
		if !entity.Has(k) {
			t.Errorf("entity missing kind %s", k)
		}
	}

	d, err := GetAttr[DamagedAttr](entity)
	if err != nil {
		t.Fatalf("GetAttr damaged: %v", err)
	}
	if d.HP != 50 {
		t.Errorf("damaged.HP = %d, want 50", d.HP)
	}

	// Броня экземпляра независима от шаблона
	entArmor, _ := GetAttr[ArmorAttr](entity)
	entArmor.Armor[ArmorClassMelee] = 9
	typeArmor, _ := GetAttr[ArmorAttr](typeSet)
	if typeArmor.Armor[ArmorClassMelee] != 2 {
		t.Errorf("template armor mutated through instance: %d", typeArmor.Armor[ArmorClassMelee])
	}
}

func TestAttributeSet_TypesSorted(t *testing.T) {
	s := fullSampleSet()
	kinds := s.Types()

	if len(kinds) != AttrTypeCount {
		t.Fatalf("Types() len = %d, want %d", len(kinds), AttrTypeCount)
	}
	for i := 1; i < len(kinds); i++ {
		if kinds[i-1] >= kinds[i] {
			t.Fatalf("Types() not sorted: %v", kinds)
		}
	}
}

func TestAttributeSet_ZeroValueUsable(t *testing.T) {
	var s AttributeSet
	s.Add(&DamagedAttr{HP: 5})
	if !s.Has(AttrDamaged) {
		t.Error("zero-value set did not accept Add")
	}
}

func TestAttrType_Category(t *testing.T) {
	tests := []struct {
		kind AttrType
		want AttrCategory
	}{
		{AttrOwner, CategoryShared},
		{AttrHitPoints, CategoryShared},
		{AttrDamaged, CategoryUnshared},
		{AttrArmor, CategoryShared},
		{AttrAttack, CategoryUnshared},
		{AttrHeal, CategoryShared},
		{AttrSpeed, CategoryShared},
		{AttrDirection, CategoryUnshared},
		{AttrProjectile, CategoryUnshared},
		{AttrBuilding, CategoryUnshared},
		{AttrDropsite, CategoryShared},
		{AttrResource, CategoryUnshared},
		{AttrWorker, CategoryShared},
		{AttrMultiType, CategoryShared},
		{AttrGarrison, CategoryUnshared},
		{AttrUnknown, CategoryUnshared},
	}

	for _, tt := range tests {
		if got := tt.kind.Category(); got != tt.want {
			t.Errorf("%s.Category() = %s, want %s", tt.kind, got, tt.want)
		}
	}
}

func TestAttrType_StringParseRoundTrip(t *testing.T) {
	for kind := AttrOwner; kind <= AttrGarrison; kind++ {
		s := kind.String()
		if s == "unknown" {
			t.Fatalf("kind %d has no string name", kind)
		}
		if back := ParseAttrType(s); back != kind {
			t.Errorf("ParseAttrType(%q) = %v, want %v", s, back, kind)
		}
	}
	if ParseAttrType("no-such-kind") != AttrUnknown {
		t.Error("ParseAttrType on garbage must return AttrUnknown")
	}
}
