package actions

import (
	"fmt"

	"github.com/fidget77/openage/internal/domain"
	"github.com/fidget77/openage/internal/engine/handlers"
	"github.com/fidget77/openage/internal/systems"
	"github.com/fidget77/openage/pkg/api"
)

// HandleGarrison отправляет юниты прятаться в свое здание. Внутрь они
// войдут, когда дойдут; мест может не хватить - опоздавшие останутся
// стоять у стен.
func HandleGarrison(ctx handlers.Context, p api.TargetPayload) (handlers.Result, error) {
	host, ok := ownUnit(ctx, p.TargetID)
	if !ok || !host.HasAttribute(domain.AttrGarrison) {
		return handlers.Result{Msg: "Укрытие не найдено.", MsgType: "ERROR"}, nil
	}

	ref := ctx.Units.Ref(host.ID)
	sent := 0
	for _, u := range ownUnits(ctx, p.UnitIDs) {
		if u == host || !u.HasAttribute(domain.AttrSpeed) {
			continue
		}
		u.SetOrder(&domain.Order{
			Kind:      domain.OrderGarrison,
			Target:    host.Pos,
			TargetRef: ref,
		})
		sent++
	}
	if sent == 0 {
		return handlers.Result{Msg: "Некому прятаться.", MsgType: "ERROR"}, nil
	}
	return handlers.EmptyResult(), nil
}

// HandleUngarrison выпускает весь гарнизон здания наружу
func HandleUngarrison(ctx handlers.Context, p api.HostPayload) (handlers.Result, error) {
	host, ok := ownUnit(ctx, p.HostID)
	if !ok {
		return handlers.Result{Msg: "Укрытие не найдено.", MsgType: "ERROR"}, nil
	}

	released := systems.UngarrisonAll(ctx.World, host)
	if len(released) == 0 {
		return handlers.Result{Msg: "Внутри никого нет.", MsgType: "ERROR"}, nil
	}
	return handlers.Result{
		Msg:     fmt.Sprintf("%s: гарнизон выходит (%d)", host.Name(), len(released)),
		MsgType: "INFO",
	}, nil
}
