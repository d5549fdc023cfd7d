package admin

import (
	"fmt"
	"strings"

	"github.com/fidget77/openage/internal/core/types/enums"
	"github.com/fidget77/openage/internal/engine/handlers"
	"github.com/fidget77/openage/pkg/api"
)

// Чит-коды в духе классических стратегий. Набираются в чате;
// регистр не важен.
const cheatAmount = 1000

// HandleCheat разбирает чит-код и применяет его к отправителю
func HandleCheat(ctx handlers.Context, p api.CheatPayload) (handlers.Result, error) {
	switch strings.ToLower(strings.TrimSpace(p.Code)) {
	case "lumberjack":
		ctx.Actor.Deposit(enums.ResourceWood, cheatAmount)
		return cheatResult("Лес сам валится: +%d дерева", cheatAmount), nil
	case "cheese steak jimmy's":
		ctx.Actor.Deposit(enums.ResourceFood, cheatAmount)
		return cheatResult("Амбары полны: +%d еды", cheatAmount), nil
	case "robin hood":
		ctx.Actor.Deposit(enums.ResourceGold, cheatAmount)
		return cheatResult("Казна звенит: +%d золота", cheatAmount), nil
	case "rock on":
		ctx.Actor.Deposit(enums.ResourceStone, cheatAmount)
		return cheatResult("Каменоломни щедры: +%d камня", cheatAmount), nil
	case "aegis":
		on := ctx.ToggleInstantBuild()
		state := "выключена"
		if on {
			state = "включена"
		}
		return handlers.Result{
			Msg:     fmt.Sprintf("Мгновенная стройка %s", state),
			MsgType: "INFO",
		}, nil
	default:
		return handlers.Result{Msg: "Неизвестный чит-код.", MsgType: "ERROR"}, nil
	}
}

func cheatResult(format string, amount int) handlers.Result {
	return handlers.Result{
		Msg:     fmt.Sprintf(format, amount),
		MsgType: "ECONOMY",
	}
}
