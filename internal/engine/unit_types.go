package engine

import (
	"sort"

	"github.com/fidget77/openage/internal/core/types"
	"github.com/fidget77/openage/internal/core/types/enums"
	"github.com/fidget77/openage/internal/domain"
	"github.com/fidget77/openage/internal/infrastructure/storage"
)

// TypeRegistry - реестр типов юнитов матча: имя -> шаблон. Один реестр
// разделяется всеми скирмишами сервиса; шаблоны после сборки не
// мутируются (unshared-записи копируются юнитам при спавне).
type TypeRegistry struct {
	byName map[string]*domain.UnitType
}

// NewTypeRegistry собирает реестр. path - YAML с определениями типов;
// непустой путь целиком замещает встроенный набор (межтиповые ссылки
// вроде снаряда или producer не могут торчать из одного набора в
// другой).
func NewTypeRegistry(path string) (*TypeRegistry, error) {
	if path != "" {
		defs, err := storage.LoadTypeDefs(path)
		if err != nil {
			return nil, err
		}
		return &TypeRegistry{byName: defs}, nil
	}
	return &TypeRegistry{byName: builtinTypes()}, nil
}

// Get возвращает тип по имени.
func (r *TypeRegistry) Get(name string) (*domain.UnitType, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Names возвращает отсортированный список имен типов (для отладки).
func (r *TypeRegistry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len возвращает число зарегистрированных типов.
func (r *TypeRegistry) Len() int {
	return len(r.byName)
}

// builtinTypes возвращает встроенный набор типов: его достаточно для
// полноценного скирмиша без единого конфига. Числа подобраны под
// классические пропорции: пехота рубит лучника за четыре удара,
// полная ноша рабочего собирается примерно за десять секунд.
func builtinTypes() map[string]*domain.UnitType {
	reg := map[string]*domain.UnitType{}
	nextID := uint16(0)
	add := func(t *domain.UnitType) *domain.UnitType {
		nextID++
		t.ID = nextID
		reg[t.Name] = t
		return t
	}
	cost := func(wood, food, gold, stone float64) domain.ResourceBundle {
		var b domain.ResourceBundle
		b.Set(enums.ResourceWood, wood)
		b.Set(enums.ResourceFood, food)
		b.Set(enums.ResourceGold, gold)
		b.Set(enums.ResourceStone, stone)
		return b
	}

	// --- Снаряды ---

	arrow := add(&domain.UnitType{Name: "arrow", Kind: enums.KindProjectile})
	arrow.DefaultAttributes.Add(&domain.SpeedAttr{Speed: types.PhysFromFloat(3.0)})
	arrow.DefaultAttributes.Add(&domain.ProjectileAttr{Arc: 0.8})

	// --- Залежи (юниты гайи) ---

	spot := func(name string, res enums.GameResource, amount float64) {
		t := add(&domain.UnitType{Name: name, Class: enums.ClassAmbient, Kind: enums.KindResourceSpot})
		t.DefaultAttributes.Add(domain.NewResourceAttr(res, amount))
	}
	spot("tree", enums.ResourceWood, 100)
	spot("berry_bush", enums.ResourceFood, 125)
	spot("gold_mine", enums.ResourceGold, 400)
	spot("stone_mine", enums.ResourceStone, 350)

	// --- Рабочие ---
	// Крестьянин и его задачи-варианты. Все четыре типа разделяют одну
	// multitype-запись: у дерева рабочий перерождается в лесоруба и
	// обратно, не теряя ни ноши, ни здоровья.

	worker := func(name string, class enums.UnitClass, rates domain.ResourceBundle) *domain.UnitType {
		t := add(&domain.UnitType{Name: name, Class: class, Kind: enums.KindUnit, TrainTime: 100})
		t.Cost = cost(0, 50, 0, 0)
		sprite := uint32(t.ID) * 10
		t.Graphics = domain.GraphicSet{
			enums.GraphicStanding: sprite + 1,
			enums.GraphicWalking:  sprite + 2,
			enums.GraphicCarrying: sprite + 3,
			enums.GraphicWork:     sprite + 4,
			enums.GraphicDying:    sprite + 5,
		}
		t.DefaultAttributes.Add(&domain.HitPointsAttr{HP: 25, BarHeight: 1.2})
		t.DefaultAttributes.Add(&domain.SpeedAttr{Speed: types.PhysFromFloat(0.8)})
		t.DefaultAttributes.Add(domain.NewAttackAttr(nil,
			types.PhysFromFloat(1.5), 0, domain.TypeAmountMap{domain.ArmorClassMelee: 2}))
		t.DefaultAttributes.Add(&domain.WorkerAttr{Capacity: 10, GatherRate: rates})
		return t
	}
	gatherRates := func(fast ...enums.GameResource) domain.ResourceBundle {
		var b domain.ResourceBundle
		for res := enums.GameResource(0); res < enums.ResourceCount; res++ {
			b.Set(res, 0.08)
		}
		for _, res := range fast {
			b.Set(res, 0.10)
		}
		return b
	}

	villager := worker("villager", enums.ClassCivilian, gatherRates())
	lumberjack := worker("lumberjack", enums.ClassLumberjack, gatherRates(enums.ResourceWood))
	forager := worker("forager", enums.ClassForager, gatherRates(enums.ResourceFood))
	miner := worker("miner", enums.ClassMiner, gatherRates(enums.ResourceGold, enums.ResourceStone))

	variants := &domain.MultiTypeAttr{Types: map[enums.UnitClass]*domain.UnitType{
		enums.ClassCivilian:   villager,
		enums.ClassLumberjack: lumberjack,
		enums.ClassForager:    forager,
		enums.ClassMiner:      miner,
	}}
	for _, t := range []*domain.UnitType{villager, lumberjack, forager, miner} {
		t.DefaultAttributes.Add(variants)
	}

	// --- Бойцы ---

	militia := add(&domain.UnitType{Name: "militia", Class: enums.ClassInfantry, Kind: enums.KindUnit, TrainTime: 150})
	militia.Cost = cost(0, 60, 20, 0)
	militia.DefaultAttributes.Add(&domain.HitPointsAttr{HP: 40, BarHeight: 1.4})
	militia.DefaultAttributes.Add(&domain.SpeedAttr{Speed: types.PhysFromFloat(0.9)})
	militia.DefaultAttributes.Add(&domain.ArmorAttr{Armor: domain.TypeAmountMap{
		domain.ArmorClassMelee:  1,
		domain.ArmorClassPierce: 1,
	}})
	militia.DefaultAttributes.Add(domain.NewAttackAttr(nil,
		types.PhysFromFloat(1.5), 0, domain.TypeAmountMap{domain.ArmorClassMelee: 4}))

	archer := add(&domain.UnitType{Name: "archer", Class: enums.ClassArcher, Kind: enums.KindUnit, TrainTime: 160})
	archer.Cost = cost(25, 0, 45, 0)
	archer.DefaultAttributes.Add(&domain.HitPointsAttr{HP: 30, BarHeight: 1.4})
	archer.DefaultAttributes.Add(&domain.SpeedAttr{Speed: types.PhysFromFloat(0.96)})
	archer.DefaultAttributes.Add(domain.NewAttackAttr(arrow,
		types.PhysFromFloat(4.0), types.PhysFromFloat(1.0), domain.TypeAmountMap{domain.ArmorClassPierce: 4}))

	monk := add(&domain.UnitType{Name: "monk", Class: enums.ClassCivilian, Kind: enums.KindUnit, TrainTime: 220})
	monk.Cost = cost(0, 0, 100, 0)
	monk.DefaultAttributes.Add(&domain.HitPointsAttr{HP: 30, BarHeight: 1.6})
	monk.DefaultAttributes.Add(&domain.SpeedAttr{Speed: types.PhysFromFloat(0.7)})
	monk.DefaultAttributes.Add(&domain.HealAttr{Range: types.PhysFromFloat(4.0), Life: 2, Rate: 2.0})

	// --- Здания ---

	building := func(name string, hp uint32, c domain.ResourceBundle) *domain.UnitType {
		t := add(&domain.UnitType{Name: name, Class: enums.ClassBuilding, Kind: enums.KindBuilding})
		t.Cost = c
		t.DefaultAttributes.Add(&domain.HitPointsAttr{HP: hp, BarHeight: 2.4})
		t.DefaultAttributes.Add(&domain.ArmorAttr{Armor: domain.TypeAmountMap{
			domain.ArmorClassMelee:  2,
			domain.ArmorClassPierce: 8,
		}})
		t.DefaultAttributes.Add(&domain.BuildingAttr{
			FoundationTerrain: enums.TerrainDirt,
			CompletionState:   enums.StatePlaced,
		})
		return t
	}
	producer := func(t, trained *domain.UnitType) {
		bld, _ := domain.GetAttr[domain.BuildingAttr](&t.DefaultAttributes)
		bld.Producer = trained
	}
	dropsite := func(t *domain.UnitType, accepts ...enums.GameResource) {
		t.DefaultAttributes.Add(&domain.DropsiteAttr{Accepts: accepts})
	}

	tc := building("town_centre", 2400, cost(275, 0, 0, 0))
	producer(tc, villager)
	dropsite(tc, enums.ResourceWood, enums.ResourceFood, enums.ResourceGold, enums.ResourceStone)
	tc.DefaultAttributes.Add(&domain.GarrisonAttr{})

	building("house", 550, cost(30, 0, 0, 0))

	barracks := building("barracks", 1200, cost(175, 0, 0, 0))
	producer(barracks, militia)

	archeryRange := building("archery_range", 1200, cost(175, 0, 0, 0))
	producer(archeryRange, archer)

	monastery := building("monastery", 1200, cost(175, 0, 0, 0))
	producer(monastery, monk)

	mill := building("mill", 600, cost(100, 0, 0, 0))
	dropsite(mill, enums.ResourceFood)

	camp := building("lumber_camp", 600, cost(100, 0, 0, 0))
	dropsite(camp, enums.ResourceWood)

	mining := building("mining_camp", 600, cost(100, 0, 0, 0))
	dropsite(mining, enums.ResourceGold, enums.ResourceStone)

	tower := building("watch_tower", 1020, cost(50, 0, 0, 125))
	tower.DefaultAttributes.Add(&domain.GarrisonAttr{})
	towerAtk := domain.NewAttackAttr(arrow,
		types.PhysFromFloat(7.0), types.PhysFromFloat(2.0), domain.TypeAmountMap{domain.ArmorClassPierce: 5})
	// Башня стреляет сама: стойка по умолчанию боевая, не пассивная
	towerAtk.Stance = domain.StanceAggressive
	tower.DefaultAttributes.Add(towerAtk)

	return reg
}
