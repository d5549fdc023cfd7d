package systems

import (
	"testing"

	"github.com/fidget77/openage/internal/core/types/enums"
	"github.com/fidget77/openage/internal/domain"
)

func newTowerType() *domain.UnitType {
	t := &domain.UnitType{ID: 33, Name: "tower", Class: enums.ClassBuilding, Kind: enums.KindBuilding}
	t.DefaultAttributes.Add(&domain.HitPointsAttr{HP: 150, BarHeight: 4})
	t.DefaultAttributes.Add(&domain.GarrisonAttr{})
	return t
}

func TestGarrisonAndRelease(t *testing.T) {
	w := domain.NewWorld(10, 10)
	c := domain.NewUnitContainer(1)

	tower := spawnAt(c, w, newTowerType(), 5, 5)
	a := spawnAt(c, w, newMilitiaType(), 4, 5)
	b := spawnAt(c, w, newMilitiaType(), 6, 5)

	if !GarrisonUnit(w, c, tower, a) || !GarrisonUnit(w, c, tower, b) {
		t.Fatal("garrison failed")
	}

	// Спрятанные сняты с карты, но живы
	if len(w.UnitsAt(4, 5)) != 0 {
		t.Error("garrisoned unit still on the map")
	}
	if !a.IsAlive() || !c.Valid(a.ID) {
		t.Error("garrisoned unit died")
	}

	g, _ := domain.UnitAttr[domain.GarrisonAttr](tower)
	if len(g.Content) != 2 {
		t.Fatalf("garrison content = %d", len(g.Content))
	}

	released := UngarrisonAll(w, tower)
	if len(released) != 2 {
		t.Fatalf("released %d, want 2", len(released))
	}
	if len(g.Content) != 0 {
		t.Error("garrison list not cleared")
	}
	// Выпущенные снова индексированы на карте рядом с башней
	for _, u := range released {
		tp := domain.TileOf(u.Pos)
		if !tp.IsAdjacent(domain.TilePos{X: 5, Y: 5}) && tp != (domain.TilePos{X: 5, Y: 5}) {
			t.Errorf("released unit at %v, want near the tower", tp)
		}
		if len(w.UnitsAt(tp.X, tp.Y)) == 0 {
			t.Error("released unit not indexed")
		}
	}
}

func TestGarrison_DanglingDropped(t *testing.T) {
	w := domain.NewWorld(10, 10)
	c := domain.NewUnitContainer(1)

	tower := spawnAt(c, w, newTowerType(), 5, 5)
	a := spawnAt(c, w, newMilitiaType(), 4, 5)
	b := spawnAt(c, w, newMilitiaType(), 6, 5)

	GarrisonUnit(w, c, tower, a)
	GarrisonUnit(w, c, tower, b)

	// Один погиб внутри: ссылка протухает, чистка - при выгрузке
	c.Destroy(a.ID)

	released := UngarrisonAll(w, tower)
	if len(released) != 1 || released[0] != b {
		t.Errorf("released = %d units, want only the survivor", len(released))
	}
}

func TestGarrison_Limits(t *testing.T) {
	w := domain.NewWorld(30, 30)
	c := domain.NewUnitContainer(1)

	tower := spawnAt(c, w, newTowerType(), 15, 15)
	milType := newMilitiaType()

	// Заполняем до отказа
	for i := 0; i < domain.GarrisonCapacityDefault; i++ {
		u := spawnAt(c, w, milType, 14, 15)
		if !GarrisonUnit(w, c, tower, u) {
			t.Fatalf("garrison refused unit %d below capacity", i)
		}
	}
	extra := spawnAt(c, w, milType, 14, 15)
	if GarrisonUnit(w, c, tower, extra) {
		t.Error("garrison overfilled")
	}

	// Юнит без гарнизонной записи не прячет никого
	plain := spawnAt(c, w, milType, 16, 15)
	target := spawnAt(c, w, milType, 17, 15)
	if GarrisonUnit(w, c, plain, target) {
		t.Error("plain unit hosted a garrison")
	}

	// Сам в себя не прячемся
	if GarrisonUnit(w, c, tower, tower) {
		t.Error("tower garrisoned itself")
	}
}
