package actions

import (
	"github.com/fidget77/openage/internal/core/types"
	"github.com/fidget77/openage/internal/domain"
	"github.com/fidget77/openage/internal/engine/handlers"
)

// ownUnits разрешает список строковых ID в живые юниты отправителя.
// Чужие, мёртвые и протухшие ID молча отбрасываются: клиент мог
// кликнуть по тому, что уже умерло - это не повод ронять команду.
func ownUnits(ctx handlers.Context, ids []string) []*domain.Unit {
	out := make([]*domain.Unit, 0, len(ids))
	for _, s := range ids {
		id, err := types.ParseUnitID(s)
		if err != nil {
			continue
		}
		u, ok := ctx.Units.Get(id)
		if !ok || !u.IsAlive() {
			continue
		}
		if u.Owner() != ctx.Actor {
			continue
		}
		out = append(out, u)
	}
	return out
}

// ownUnit - то же для одиночного ID (здания-производители, хосты)
func ownUnit(ctx handlers.Context, s string) (*domain.Unit, bool) {
	units := ownUnits(ctx, []string{s})
	if len(units) == 0 {
		return nil, false
	}
	return units[0], true
}

// anyUnit разрешает ID в живой юнит без проверки владельца (цели)
func anyUnit(ctx handlers.Context, s string) (*domain.Unit, bool) {
	id, err := types.ParseUnitID(s)
	if err != nil {
		return nil, false
	}
	u, ok := ctx.Units.Get(id)
	if !ok || !u.IsAlive() {
		return nil, false
	}
	return u, true
}

// pointFrom собирает мировую точку из клиентских координат
func pointFrom(x, y float64) types.Phys3 {
	return types.Phys3{
		NE: types.PhysFromFloat(x),
		SE: types.PhysFromFloat(y),
	}
}
