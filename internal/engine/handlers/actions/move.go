package actions

import (
	"github.com/fidget77/openage/internal/domain"
	"github.com/fidget77/openage/internal/engine/handlers"
	"github.com/fidget77/openage/pkg/api"
)

// HandleMove отправляет юниты в точку. Здания и прочие неподвижные
// выпадают из выборки молча - клиент шлет рамку выделения как есть.
func HandleMove(ctx handlers.Context, p api.MovePayload) (handlers.Result, error) {
	if !ctx.World.InBounds(int(p.X), int(p.Y)) {
		return handlers.Result{Msg: "Точка за краем карты.", MsgType: "ERROR"}, nil
	}

	target := pointFrom(p.X, p.Y)
	for _, u := range ownUnits(ctx, p.UnitIDs) {
		if !u.HasAttribute(domain.AttrSpeed) {
			continue
		}
		u.SetOrder(&domain.Order{Kind: domain.OrderMove, Target: target})
	}
	return handlers.EmptyResult(), nil
}

// HandleStop снимает текущие приказы. Юнит останавливается там, где
// стоит; стойка на следующем тике вправе выдать новый авто-приказ.
func HandleStop(ctx handlers.Context, p api.UnitsPayload) (handlers.Result, error) {
	for _, u := range ownUnits(ctx, p.UnitIDs) {
		u.ClearOrder()
	}
	return handlers.EmptyResult(), nil
}
