package actions

import (
	"github.com/fidget77/openage/internal/domain"
	"github.com/fidget77/openage/internal/engine/handlers"
	"github.com/fidget77/openage/pkg/api"
)

// HandleGather отправляет рабочих на залежь. Вид ресурса берется из
// самой залежи и фиксируется в приказе: когда она истощится, рабочий
// сам перенацелится на соседнюю того же вида.
func HandleGather(ctx handlers.Context, p api.TargetPayload) (handlers.Result, error) {
	spot, ok := anyUnit(ctx, p.TargetID)
	if !ok {
		return handlers.Result{Msg: "Залежь не найдена.", MsgType: "ERROR"}, nil
	}
	carry, err := domain.UnitAttr[domain.ResourceAttr](spot)
	if err != nil {
		return handlers.Result{Msg: "Здесь нечего добывать.", MsgType: "ERROR"}, nil
	}

	ref := ctx.Units.Ref(spot.ID)
	sent := 0
	for _, u := range ownUnits(ctx, p.UnitIDs) {
		if !u.HasAttribute(domain.AttrWorker) {
			continue
		}
		u.SetOrder(&domain.Order{
			Kind:      domain.OrderGather,
			Target:    spot.Pos,
			TargetRef: ref,
			Resource:  carry.Resource,
		})
		sent++
	}
	if sent == 0 {
		return handlers.Result{Msg: "В выделении нет рабочих.", MsgType: "ERROR"}, nil
	}
	return handlers.EmptyResult(), nil
}
