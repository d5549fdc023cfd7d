package actions

import (
	"fmt"

	"github.com/fidget77/openage/internal/core/types/enums"
	"github.com/fidget77/openage/internal/domain"
	"github.com/fidget77/openage/internal/engine/handlers"
	"github.com/fidget77/openage/internal/systems"
	"github.com/fidget77/openage/pkg/api"
)

// HandleBuild работает в двух формах. С типом и точкой - заложить
// новый фундамент: цена списывается сразу, здание рождается плавающим
// и достраивается рабочими. С TargetID - присоединить рабочих к уже
// существующей стройке (своей).
func HandleBuild(ctx handlers.Context, p api.BuildPayload) (handlers.Result, error) {
	workers := make([]*domain.Unit, 0, len(p.UnitIDs))
	for _, u := range ownUnits(ctx, p.UnitIDs) {
		if u.HasAttribute(domain.AttrWorker) {
			workers = append(workers, u)
		}
	}
	if len(workers) == 0 {
		return handlers.Result{Msg: "В выделении нет рабочих.", MsgType: "ERROR"}, nil
	}

	var site *domain.Unit
	if p.TargetID != "" {
		found, ok := ownUnit(ctx, p.TargetID)
		if !ok || systems.IsCompleted(found) {
			return handlers.Result{Msg: "Стройка не найдена.", MsgType: "ERROR"}, nil
		}
		site = found
	} else {
		placed, result := placeFoundation(ctx, p)
		if placed == nil {
			return result, nil
		}
		site = placed
	}

	ref := ctx.Units.Ref(site.ID)
	for _, w := range workers {
		w.SetOrder(&domain.Order{
			Kind:      domain.OrderBuild,
			Target:    site.Pos,
			TargetRef: ref,
		})
	}

	if p.TargetID != "" {
		return handlers.EmptyResult(), nil
	}
	return handlers.Result{
		Msg:     fmt.Sprintf("%s закладывает фундамент: %s", ctx.Actor.Name, site.Name()),
		MsgType: "ECONOMY",
	}, nil
}

// placeFoundation проверяет тип, клетку и цену и ставит фундамент.
// nil - отказ; причина в возвращенном Result.
func placeFoundation(ctx handlers.Context, p api.BuildPayload) (*domain.Unit, handlers.Result) {
	t, ok := ctx.Types.Get(p.Type)
	if !ok || t.Kind != enums.KindBuilding {
		return nil, handlers.Result{Msg: fmt.Sprintf("Неизвестное здание: %s", p.Type), MsgType: "ERROR"}
	}

	tp := domain.TilePos{X: int(p.X), Y: int(p.Y)}
	if !ctx.World.IsPassable(tp.X, tp.Y) {
		return nil, handlers.Result{Msg: "Здесь нельзя строить.", MsgType: "ERROR"}
	}
	if len(ctx.World.UnitsAt(tp.X, tp.Y)) > 0 {
		return nil, handlers.Result{Msg: "Клетка занята.", MsgType: "ERROR"}
	}

	if !ctx.Actor.Spend(t.Cost) {
		return nil, handlers.Result{Msg: fmt.Sprintf("Не хватает ресурсов: нужно %s", t.Cost), MsgType: "ERROR"}
	}

	return ctx.SpawnUnit(t, ctx.Actor, tp.Center()), handlers.Result{}
}
