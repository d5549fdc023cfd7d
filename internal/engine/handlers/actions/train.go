package actions

import (
	"fmt"

	"github.com/fidget77/openage/internal/core/types/enums"
	"github.com/fidget77/openage/internal/engine/handlers"
	"github.com/fidget77/openage/internal/systems"
	"github.com/fidget77/openage/pkg/api"
)

// HandleTrain заказывает юнита в здании. Цена списывается сразу; выйдет
// юнит через TrainTime тиков из клетки рядом со зданием. Если здание
// снесут раньше - очередь отменится и деньги вернутся.
func HandleTrain(ctx handlers.Context, p api.TrainPayload) (handlers.Result, error) {
	b, ok := ownUnit(ctx, p.BuildingID)
	if !ok {
		return handlers.Result{Msg: "Здание не найдено.", MsgType: "ERROR"}, nil
	}
	if !systems.IsCompleted(b) {
		return handlers.Result{Msg: "Здание еще не достроено.", MsgType: "ERROR"}, nil
	}

	t, ok := ctx.Types.Get(p.Type)
	if !ok || t.Kind != enums.KindUnit {
		return handlers.Result{Msg: fmt.Sprintf("Неизвестный юнит: %s", p.Type), MsgType: "ERROR"}, nil
	}

	if !ctx.Actor.Spend(t.Cost) {
		return handlers.Result{Msg: fmt.Sprintf("Не хватает ресурсов: нужно %s", t.Cost), MsgType: "ERROR"}, nil
	}

	ctx.EnqueueTrain(b, t, ctx.Tick+int64(t.TrainTime))
	return handlers.Result{
		Msg:     fmt.Sprintf("%s: началось обучение (%s)", b.Name(), t.Name),
		MsgType: "ECONOMY",
	}, nil
}

// HandleRally ставит точку сбора здания: свежеобученные юниты пойдут
// туда сразу после выхода.
func HandleRally(ctx handlers.Context, p api.RallyPayload) (handlers.Result, error) {
	b, ok := ownUnit(ctx, p.BuildingID)
	if !ok {
		return handlers.Result{Msg: "Здание не найдено.", MsgType: "ERROR"}, nil
	}
	if !ctx.World.InBounds(int(p.X), int(p.Y)) {
		return handlers.Result{Msg: "Точка за краем карты.", MsgType: "ERROR"}, nil
	}
	ctx.SetRally(b.ID, pointFrom(p.X, p.Y))
	return handlers.EmptyResult(), nil
}
