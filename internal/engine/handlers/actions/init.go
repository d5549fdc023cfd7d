package actions

import "github.com/fidget77/openage/internal/engine/handlers"

// HandleInit - первая команда клиента после входа. Полный снимок
// (WELCOME) в ответ отправляет движок; хендлеру остается поздороваться.
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     "Добро пожаловать на поле боя.",
		MsgType: "INFO",
	}, nil
}
