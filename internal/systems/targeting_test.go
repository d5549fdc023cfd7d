package systems

import (
	"testing"

	"github.com/fidget77/openage/internal/core/types"
	"github.com/fidget77/openage/internal/core/types/enums"
	"github.com/fidget77/openage/internal/domain"
)

func TestValidateOrderTarget(t *testing.T) {
	w := domain.NewWorld(10, 10)
	c := domain.NewUnitContainer(1)

	actor := spawnAt(c, w, newMilitiaType(), 2, 2)
	target := spawnAt(c, w, newMilitiaType(), 3, 2)

	res := ValidateOrderTarget(actor, c.Ref(target.ID), types.PhysFromInt(5))
	if !res.Valid || res.Target != target {
		t.Fatalf("valid target rejected: %+v", res)
	}

	// Дистанция
	res = ValidateOrderTarget(actor, c.Ref(target.ID), types.PhysFromFloat(0.5))
	if res.Valid || res.Reason != "target out of range" {
		t.Errorf("out-of-range target accepted: %+v", res)
	}

	// Ноль - без проверки дистанции
	res = ValidateOrderTarget(actor, c.Ref(target.ID), 0)
	if !res.Valid {
		t.Error("zero range limit must skip the distance check")
	}

	// Протухшая ссылка
	ref := c.Ref(target.ID)
	c.Destroy(target.ID)
	res = ValidateOrderTarget(actor, ref, 0)
	if res.Valid || res.Reason != "target is gone" {
		t.Errorf("dangling target accepted: %+v", res)
	}
}

func TestNearestEnemy(t *testing.T) {
	w := domain.NewWorld(30, 30)
	c := domain.NewUnitContainer(1)

	red := &domain.Player{ID: 1}
	blue := &domain.Player{ID: 2}
	gaia := &domain.Player{ID: domain.GaiaID}

	redType := newMilitiaType()
	attachOwner(redType, red)
	blueType := newMilitiaType()
	attachOwner(blueType, blue)
	gaiaType := newTreeType()
	attachOwner(gaiaType, gaia)

	me := spawnAt(c, w, redType, 10, 10)
	spawnAt(c, w, gaiaType, 11, 10)         // гайя - не цель
	spawnAt(c, w, redType, 12, 10)          // свой - не цель
	near := spawnAt(c, w, blueType, 13, 10) // ближайший враг
	spawnAt(c, w, blueType, 18, 10)         // дальний враг

	got := NearestEnemy(w, me, types.PhysFromInt(10))
	if got != near {
		t.Errorf("NearestEnemy picked %v", got)
	}

	// Вне радиуса врагов нет
	if NearestEnemy(w, me, types.PhysFromInt(2)) != nil {
		t.Error("enemy found beyond the radius")
	}
}

func TestNearestResourceSpotAndDropsite(t *testing.T) {
	w := domain.NewWorld(30, 30)
	c := domain.NewUnitContainer(1)
	red := &domain.Player{ID: 1}

	vilType := newVillagerType()
	attachOwner(vilType, red)
	worker := spawnAt(c, w, vilType, 10, 10)

	treeNear := spawnAt(c, w, newTreeType(), 12, 10)
	spawnAt(c, w, newTreeType(), 16, 10)

	// Пустая залежь не предлагается
	empty := spawnAt(c, w, newTreeType(), 11, 10)
	dep, _ := domain.UnitAttr[domain.ResourceAttr](empty)
	dep.Amount = 0

	got := NearestResourceSpot(w, worker.Pos, enums.ResourceWood, types.PhysFromInt(10))
	if got != treeNear {
		t.Errorf("NearestResourceSpot picked %v", got)
	}
	if NearestResourceSpot(w, worker.Pos, enums.ResourceGold, types.PhysFromInt(10)) != nil {
		t.Error("found a gold spot among trees")
	}

	// Склад: чужой и недостроенный не считаются
	millType := newMillType()
	attachOwner(millType, red)
	mine := spawnAt(c, w, millType, 8, 10)

	foreignMill := newMillType()
	attachOwner(foreignMill, &domain.Player{ID: 2})
	spawnAt(c, w, foreignMill, 9, 10)

	halfBuilt := spawnAt(c, w, millType, 10, 11)
	halfBuilt.Attributes.Add(&domain.BuildingAttr{Completed: 0.5})

	got = NearestDropsite(w, worker, enums.ResourceWood, types.PhysFromInt(10))
	if got != mine {
		t.Errorf("NearestDropsite picked %v", got)
	}
	if NearestDropsite(w, worker, enums.ResourceGold, types.PhysFromInt(10)) != nil {
		t.Error("mill accepted gold in the search")
	}
}
