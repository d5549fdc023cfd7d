package events

import (
	"fmt"

	"github.com/fidget77/openage/internal/core/types"
	"github.com/fidget77/openage/internal/domain"
	"github.com/fidget77/openage/internal/engine/handlers"
	"github.com/fidget77/openage/pkg/api"
)

// findUnit разрешает строковый ID события в живой юнит
func findUnit(ctx handlers.Context, s string) (*domain.Unit, bool) {
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

// HandleTrainComplete - юнит вышел из здания; остается объявить
func HandleTrainComplete(ctx handlers.Context, p api.UnitEventPayload) (handlers.Result, error) {
	return handlers.Result{
		Msg:     fmt.Sprintf("Обучение завершено: %s", p.Name),
		MsgType: "ECONOMY",
	}, nil
}

// HandleResourceDepleted убирает выработанную залежь с карты.
// Рабочие, что стояли над ней, перенацелятся сами: их ссылка на цель
// протухнет следующим тиком.
func HandleResourceDepleted(ctx handlers.Context, p api.UnitEventPayload) (handlers.Result, error) {
	spot, ok := findUnit(ctx, p.UnitID)
	if !ok {
		return handlers.EmptyResult(), nil
	}

	ctx.World.RemoveUnit(spot)
	ctx.Units.Destroy(spot.ID)

	return handlers.Result{
		Msg:     fmt.Sprintf("Залежь истощена: %s", p.Name),
		MsgType: "ECONOMY",
	}, nil
}

// HandleUnitDied - снос здания; движок уже похоронил юнит, событие
// несет только имя для ленты матча
func HandleUnitDied(ctx handlers.Context, p api.UnitEventPayload) (handlers.Result, error) {
	return handlers.Result{
		Msg:     fmt.Sprintf("Разрушено: %s", p.Name),
		MsgType: "COMBAT",
	}, nil
}
