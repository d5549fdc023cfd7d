package systems

import (
	"os"
	"testing"

	"github.com/fidget77/openage/internal/core/types"
	"github.com/fidget77/openage/internal/core/types/enums"
	"github.com/fidget77/openage/internal/domain"
	"github.com/fidget77/openage/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	// Exit with the result of the tests
	os.Exit(m.Run())
}

// --- Общие фабрики для тестов систем ---

func newMilitiaType() *domain.UnitType {
	t := &domain.UnitType{ID: 11, Name: "militia", Class: enums.ClassInfantry, Kind: enums.KindUnit}
	t.DefaultAttributes.Add(&domain.HitPointsAttr{HP: 40, BarHeight: 1})
	t.DefaultAttributes.Add(&domain.ArmorAttr{Armor: domain.TypeAmountMap{domain.ArmorClassMelee: 1}})
	t.DefaultAttributes.Add(&domain.SpeedAttr{Speed: types.PhysFromFloat(0.5)})
	atk := domain.NewAttackAttr(nil, types.PhysFromInt(2), 0, domain.TypeAmountMap{domain.ArmorClassMelee: 4})
	t.DefaultAttributes.Add(atk)
	return t
}

func newVillagerType() *domain.UnitType {
	t := &domain.UnitType{ID: 7, Name: "villager", Class: enums.ClassCivilian, Kind: enums.KindUnit}
	t.DefaultAttributes.Add(&domain.HitPointsAttr{HP: 25, BarHeight: 1})
	t.DefaultAttributes.Add(&domain.SpeedAttr{Speed: types.PhysFromFloat(0.4)})
	w := &domain.WorkerAttr{Capacity: 10}
	w.GatherRate.Set(enums.ResourceWood, 2)
	w.GatherRate.Set(enums.ResourceFood, 2)
	t.DefaultAttributes.Add(w)
	return t
}

func newMillType() *domain.UnitType {
	t := &domain.UnitType{ID: 30, Name: "mill", Class: enums.ClassBuilding, Kind: enums.KindBuilding}
	t.DefaultAttributes.Add(&domain.HitPointsAttr{HP: 200, BarHeight: 3})
	t.DefaultAttributes.Add(&domain.DropsiteAttr{Accepts: []enums.GameResource{enums.ResourceWood, enums.ResourceFood}})
	return t
}

func newTreeType() *domain.UnitType {
	t := &domain.UnitType{ID: 50, Name: "tree", Class: enums.ClassAmbient, Kind: enums.KindResourceSpot}
	t.DefaultAttributes.Add(domain.NewResourceAttr(enums.ResourceWood, 100))
	return t
}

// spawnAt порождает и размещает юнит данного типа.
func spawnAt(c *domain.UnitContainer, w *domain.World, typ *domain.UnitType, x, y int) *domain.Unit {
	u := c.NewUnit(typ.Kind)
	typ.Initialise(u, false)
	u.Pos = types.Phys3{NE: types.PhysFromInt(x), SE: types.PhysFromInt(y)}
	u.Placement = enums.StatePlaced
	w.AddUnit(u)
	return u
}

func attachOwner(typ *domain.UnitType, p *domain.Player) {
	typ.DefaultAttributes.Add(&domain.OwnerAttr{Player: p})
}
