package domain

import (
	"testing"

	"github.com/fidget77/openage/internal/core/types"
	"github.com/fidget77/openage/internal/core/types/enums"
)

func TestWorld_AddRemoveUnit(t *testing.T) {
	world := NewWorld(10, 10)
	c := NewUnitContainer(1)

	u := c.NewUnit(enums.KindUnit)
	u.Pos = types.Phys3{NE: types.PhysFromInt(5), SE: types.PhysFromInt(5)}

	world.AddUnit(u)
	if len(world.SpatialHash) == 0 {
		t.Error("SpatialHash should not be empty after adding unit")
	}

	at := world.UnitsAt(5, 5)
	if len(at) != 1 || at[0] != u {
		t.Errorf("UnitsAt(5,5) = %v", at)
	}

	world.RemoveUnit(u)
	if len(world.UnitsAt(5, 5)) != 0 {
		t.Error("unit still indexed after removal")
	}
}

func TestWorld_UpdateUnitPos(t *testing.T) {
	world := NewWorld(8, 8)
	c := NewUnitContainer(1)

	u := c.NewUnit(enums.KindUnit)
	u.Pos = types.Phys3{NE: types.PhysFromInt(1), SE: types.PhysFromInt(1)}
	world.AddUnit(u)

	newPos := types.Phys3{NE: types.PhysFromFloat(3.5), SE: types.PhysFromFloat(2.25)}
	if err := world.UpdateUnitPos(u, newPos); err != nil {
		t.Fatalf("UpdateUnitPos: %v", err)
	}
	if u.Pos != newPos {
		t.Errorf("unit pos = %v, want %v", u.Pos, newPos)
	}
	if len(world.UnitsAt(1, 1)) != 0 {
		t.Error("unit still indexed at the old tile")
	}
	if len(world.UnitsAt(3, 2)) != 1 {
		t.Error("unit not indexed at the new tile")
	}

	// За границу не переносим
	bad := types.Phys3{NE: types.PhysFromInt(200)}
	if err := world.UpdateUnitPos(u, bad); err == nil {
		t.Error("UpdateUnitPos out of bounds must fail")
	}
}

func TestWorld_UnitsInRadius(t *testing.T) {
	world := NewWorld(20, 20)
	c := NewUnitContainer(1)

	center := types.Phys3{NE: types.PhysFromInt(10), SE: types.PhysFromInt(10)}

	near := c.NewUnit(enums.KindUnit)
	near.Pos = types.Phys3{NE: types.PhysFromInt(11), SE: types.PhysFromInt(10)}
	world.AddUnit(near)

	far := c.NewUnit(enums.KindUnit)
	far.Pos = types.Phys3{NE: types.PhysFromInt(17), SE: types.PhysFromInt(10)}
	world.AddUnit(far)

	dead := c.NewUnit(enums.KindUnit)
	dead.Pos = types.Phys3{NE: types.PhysFromInt(10), SE: types.PhysFromInt(11)}
	world.AddUnit(dead)
	dead.Dead = true

	got := world.UnitsInRadius(center, types.PhysFromInt(3))
	if len(got) != 1 || got[0] != near {
		t.Errorf("UnitsInRadius = %d units, want only the near one", len(got))
	}
}

func TestWorld_TerrainPassability(t *testing.T) {
	world := NewWorld(4, 4)
	world.SetTerrain(2, 2, enums.TerrainWater)

	if world.IsPassable(2, 2) {
		t.Error("water tile reported passable")
	}
	if !world.IsPassable(0, 0) {
		t.Error("grass tile reported impassable")
	}
	if world.IsPassable(-1, 0) || world.IsPassable(0, 99) {
		t.Error("out-of-bounds tile reported passable")
	}

	tile, ok := world.TileAt(2, 2)
	if !ok || tile.Terrain != enums.TerrainWater {
		t.Errorf("TileAt(2,2) = %+v, %v", tile, ok)
	}
}

func TestTilePos_Geometry(t *testing.T) {
	a := TilePos{X: 0, Y: 0}
	b := TilePos{X: 3, Y: 4}

	if d := a.DistanceTo(b); d != 5 {
		t.Errorf("DistanceTo = %v, want 5", d)
	}
	if d := a.DistanceSquaredTo(b); d != 25 {
		t.Errorf("DistanceSquaredTo = %v, want 25", d)
	}
	if a.IsAdjacent(b) {
		t.Error("distant tiles reported adjacent")
	}
	if !a.IsAdjacent(TilePos{X: 1, Y: 1}) {
		t.Error("diagonal neighbour not adjacent")
	}
	if a.IsAdjacent(a) {
		t.Error("tile adjacent to itself")
	}
	if got := a.Shift(2, -1); got != (TilePos{X: 2, Y: -1}) {
		t.Errorf("Shift = %v", got)
	}
}

func TestTileOf(t *testing.T) {
	p := types.Phys3{NE: types.PhysFromFloat(3.7), SE: types.PhysFromFloat(0.2)}
	if got := TileOf(p); got != (TilePos{X: 3, Y: 0}) {
		t.Errorf("TileOf = %v, want {3 0}", got)
	}
}
