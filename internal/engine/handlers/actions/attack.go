package actions

import (
	"fmt"

	"github.com/fidget77/openage/internal/domain"
	"github.com/fidget77/openage/internal/engine/handlers"
	"github.com/fidget77/openage/pkg/api"
)

// HandleAttack нацеливает бойцов на вражеский юнит. До цели они дойдут
// сами: проход приказов гонит юнит на дистанцию удара и бьет по
// кулдауну. Своих бить нельзя.
func HandleAttack(ctx handlers.Context, p api.TargetPayload) (handlers.Result, error) {
	target, ok := anyUnit(ctx, p.TargetID)
	if !ok {
		return handlers.Result{Msg: "Цель не найдена.", MsgType: "ERROR"}, nil
	}
	if target.Owner() == ctx.Actor {
		return handlers.Result{Msg: "Нельзя атаковать своих.", MsgType: "ERROR"}, nil
	}

	ref := ctx.Units.Ref(target.ID)
	sent := 0
	for _, u := range ownUnits(ctx, p.UnitIDs) {
		if u == target || !u.HasAttribute(domain.AttrAttack) {
			continue
		}
		u.SetOrder(&domain.Order{
			Kind:      domain.OrderAttack,
			Target:    u.Pos, // точка поводка для защитной стойки
			TargetRef: ref,
		})
		sent++
	}
	if sent == 0 {
		return handlers.Result{Msg: "В выделении нет бойцов.", MsgType: "ERROR"}, nil
	}
	return handlers.EmptyResult(), nil
}

// HandleStance переключает боевую стойку выделенных бойцов
func HandleStance(ctx handlers.Context, p api.StancePayload) (handlers.Result, error) {
	stance, ok := domain.ParseStance(p.Stance)
	if !ok {
		return handlers.Result{}, fmt.Errorf("unknown stance: %s", p.Stance)
	}

	for _, u := range ownUnits(ctx, p.UnitIDs) {
		// Запись атаки unshared: при спавне она скопирована юниту,
		// переключение не заденет шаблон типа
		atk, err := domain.UnitAttr[domain.AttackAttr](u)
		if err != nil {
			continue
		}
		atk.Stance = stance
	}
	return handlers.EmptyResult(), nil
}
