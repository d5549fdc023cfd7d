package storage

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/fidget77/openage/internal/core/types"
	"github.com/fidget77/openage/internal/core/types/enums"
	"github.com/fidget77/openage/internal/domain"
)

// TypeDefFile - корень YAML-файла с определениями типов юнитов.
type TypeDefFile struct {
	Types []TypeDef `yaml:"types"`
}

// TypeDef - одно определение типа юнита в YAML. Секции-указатели
// опциональны: отсутствие секции означает отсутствие записи в наборе
// атрибутов по умолчанию.
type TypeDef struct {
	Name      string             `yaml:"name"`
	Class     string             `yaml:"class"`
	Kind      string             `yaml:"kind"`
	Cost      map[string]float64 `yaml:"cost"`
	TrainTime int                `yaml:"train_time"`

	HitPoints *uint32            `yaml:"hitpoints"`
	BarHeight float64            `yaml:"bar_height"`
	Speed     *float64           `yaml:"speed"`
	// Arc - крутизна дуги полета (только для kind: PROJECTILE)
	Arc *float64 `yaml:"arc"`
	Armor     map[string]uint32  `yaml:"armor"`
	Attack    *AttackDef         `yaml:"attack"`
	Heal      *HealDef           `yaml:"heal"`
	Worker    *WorkerDef         `yaml:"worker"`
	Dropsite  []string           `yaml:"dropsite"`
	Resource  *ResourceSpotDef   `yaml:"resource"`
	Building  *BuildingDef       `yaml:"building"`
	Garrison  bool               `yaml:"garrison"`
	// Variants - таблица multitype: класс задачи -> имя типа-варианта
	Variants map[string]string `yaml:"variants"`
}

// AttackDef - секция атаки. Projectile - имя типа снаряда (пусто для
// ближнего боя), разрешается вторым проходом.
type AttackDef struct {
	Damage     map[string]uint32 `yaml:"damage"`
	Range      float64           `yaml:"range"`
	InitHeight float64           `yaml:"height"`
	Projectile string            `yaml:"projectile"`
}

type HealDef struct {
	Range float64 `yaml:"range"`
	Life  uint32  `yaml:"life"`
	Rate  float64 `yaml:"rate"`
}

type WorkerDef struct {
	Capacity float64            `yaml:"capacity"`
	Rates    map[string]float64 `yaml:"rates"`
}

type ResourceSpotDef struct {
	Resource string  `yaml:"resource"`
	Amount   float64 `yaml:"amount"`
}

// BuildingDef - секция здания. Producer - имя типа, который здание
// обучает по умолчанию, разрешается вторым проходом.
type BuildingDef struct {
	Foundation string `yaml:"foundation"`
	Producer   string `yaml:"producer"`
}

// Имена классов урона/брони в конфиге. В бинарь зашиты только числовые
// идентификаторы, строки живут на границе с YAML.
var armorClassNames = map[string]int{
	"melee":    domain.ArmorClassMelee,
	"pierce":   domain.ArmorClassPierce,
	"siege":    domain.ArmorClassSiege,
	"building": domain.ArmorClassBuilding,
	"cavalry":  domain.ArmorClassCavalry,
}

// LoadTypeDefs читает YAML-файл определений и собирает из него реестр
// типов юнитов. Отсутствующий файл - ошибка: вызывающий сам решает,
// падать или жить на встроенных типах.
func LoadTypeDefs(path string) (map[string]*domain.UnitType, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read typedefs: %w", err)
	}

	var file TypeDefFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse typedefs: %w", err)
	}

	return BuildTypes(file.Types)
}

// BuildTypes превращает определения в живые UnitType. Два прохода:
// сперва каждый тип собирается сам по себе, затем разрешаются ссылки
// между типами (снаряд атаки, producer здания, варианты multitype).
func BuildTypes(defs []TypeDef) (map[string]*domain.UnitType, error) {
	registry := make(map[string]*domain.UnitType, len(defs))

	for i := range defs {
		def := &defs[i]
		if def.Name == "" {
			return nil, fmt.Errorf("type #%d: name is required", i)
		}
		if _, exists := registry[def.Name]; exists {
			return nil, fmt.Errorf("duplicate type name: %s", def.Name)
		}

		t, err := def.build(uint16(i + 1))
		if err != nil {
			return nil, fmt.Errorf("type %s: %w", def.Name, err)
		}
		registry[def.Name] = t
	}

	for i := range defs {
		if err := defs[i].link(registry); err != nil {
			return nil, fmt.Errorf("type %s: %w", defs[i].Name, err)
		}
	}

	return registry, nil
}

// build собирает тип и его локальные атрибуты (без межтиповых ссылок).
func (d *TypeDef) build(id uint16) (*domain.UnitType, error) {
	t := &domain.UnitType{
		ID:        id,
		Name:      d.Name,
		Class:     enums.ParseUnitClass(d.Class),
		Kind:      enums.ParseUnitKind(d.Kind),
		TrainTime: d.TrainTime,
	}

	cost, err := parseBundle(d.Cost)
	if err != nil {
		return nil, fmt.Errorf("cost: %w", err)
	}
	t.Cost = cost

	if d.HitPoints != nil {
		t.DefaultAttributes.Add(&domain.HitPointsAttr{HP: *d.HitPoints, BarHeight: d.BarHeight})
	}
	if d.Speed != nil {
		t.DefaultAttributes.Add(&domain.SpeedAttr{Speed: types.PhysFromFloat(*d.Speed)})
	}

	if len(d.Armor) > 0 {
		armor, err := parseAmounts(d.Armor)
		if err != nil {
			return nil, fmt.Errorf("armor: %w", err)
		}
		t.DefaultAttributes.Add(&domain.ArmorAttr{Armor: armor})
	}

	if d.Attack != nil {
		damage, err := parseAmounts(d.Attack.Damage)
		if err != nil {
			return nil, fmt.Errorf("attack: %w", err)
		}
		t.DefaultAttributes.Add(domain.NewAttackAttr(
			nil, // снаряд подвяжет второй проход
			types.PhysFromFloat(d.Attack.Range),
			types.PhysFromFloat(d.Attack.InitHeight),
			damage,
		))
	}

	if d.Heal != nil {
		t.DefaultAttributes.Add(&domain.HealAttr{
			Range: types.PhysFromFloat(d.Heal.Range),
			Life:  d.Heal.Life,
			Rate:  d.Heal.Rate,
		})
	}

	if d.Worker != nil {
		rates, err := parseBundle(d.Worker.Rates)
		if err != nil {
			return nil, fmt.Errorf("worker: %w", err)
		}
		t.DefaultAttributes.Add(&domain.WorkerAttr{
			Capacity:   d.Worker.Capacity,
			GatherRate: rates,
		})
	}

	if len(d.Dropsite) > 0 {
		accepts := make([]enums.GameResource, 0, len(d.Dropsite))
		for _, name := range d.Dropsite {
			res, ok := enums.ParseGameResource(name)
			if !ok {
				return nil, fmt.Errorf("dropsite: unknown resource %q", name)
			}
			accepts = append(accepts, res)
		}
		t.DefaultAttributes.Add(&domain.DropsiteAttr{Accepts: accepts})
	}

	if d.Resource != nil {
		res, ok := enums.ParseGameResource(d.Resource.Resource)
		if !ok {
			return nil, fmt.Errorf("resource: unknown resource %q", d.Resource.Resource)
		}
		t.DefaultAttributes.Add(domain.NewResourceAttr(res, d.Resource.Amount))
	}

	if d.Building != nil {
		t.DefaultAttributes.Add(&domain.BuildingAttr{
			FoundationTerrain: enums.ParseTerrainType(d.Building.Foundation),
			CompletionState:   enums.StatePlaced,
		})
	}

	if d.Garrison {
		t.DefaultAttributes.Add(&domain.GarrisonAttr{})
	}

	// Снарядам нужна projectile-заготовка: без нее запуск не сможет
	// подвязать стрелка, и снаряд упадет сиротой
	if t.Kind == enums.KindProjectile {
		arc := 0.5
		if d.Arc != nil {
			arc = *d.Arc
		}
		t.DefaultAttributes.Add(&domain.ProjectileAttr{Arc: arc})
	}

	return t, nil
}

// link разрешает ссылки на другие типы по имени.
func (d *TypeDef) link(registry map[string]*domain.UnitType) error {
	t := registry[d.Name]

	if d.Attack != nil && d.Attack.Projectile != "" {
		ptype, ok := registry[d.Attack.Projectile]
		if !ok {
			return fmt.Errorf("attack: unknown projectile type %q", d.Attack.Projectile)
		}
		atk, err := domain.GetAttr[domain.AttackAttr](&t.DefaultAttributes)
		if err != nil {
			return err
		}
		atk.PType = ptype
	}

	if d.Building != nil && d.Building.Producer != "" {
		producer, ok := registry[d.Building.Producer]
		if !ok {
			return fmt.Errorf("building: unknown producer type %q", d.Building.Producer)
		}
		bld, err := domain.GetAttr[domain.BuildingAttr](&t.DefaultAttributes)
		if err != nil {
			return err
		}
		bld.Producer = producer
	}

	if len(d.Variants) > 0 {
		variants := make(map[enums.UnitClass]*domain.UnitType, len(d.Variants))
		for clsName, typeName := range d.Variants {
			cls := enums.ParseUnitClass(clsName)
			if cls == enums.ClassUnknown {
				return fmt.Errorf("variants: unknown class %q", clsName)
			}
			vt, ok := registry[typeName]
			if !ok {
				return fmt.Errorf("variants: unknown type %q", typeName)
			}
			variants[cls] = vt
		}
		t.DefaultAttributes.Add(&domain.MultiTypeAttr{Types: variants})
	}

	return nil
}

func parseBundle(m map[string]float64) (domain.ResourceBundle, error) {
	var out domain.ResourceBundle
	for name, amount := range m {
		res, ok := enums.ParseGameResource(name)
		if !ok {
			return out, fmt.Errorf("unknown resource %q", name)
		}
		out.Set(res, amount)
	}
	return out, nil
}

func parseAmounts(m map[string]uint32) (domain.TypeAmountMap, error) {
	out := make(domain.TypeAmountMap, len(m))
	for name, amount := range m {
		cls, ok := armorClassNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown damage class %q", name)
		}
		out[cls] = amount
	}
	return out, nil
}
