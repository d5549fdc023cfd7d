package engine

import (
	"context"

	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"

	"github.com/fidget77/openage/pkg/logger"
)

// Фазы жизни матча. Команды юнитам и тики симуляции открыты только в
// running; finished - терминальная фаза (снимки продолжают уходить,
// чтобы клиенты видели финальный счет).
const (
	StateLobby    = "lobby"
	StateRunning  = "running"
	StateFinished = "finished"
)

// События переходов
const (
	EventStart  = "start"
	EventFinish = "finish"
)

// newLifecycle создает автомат фаз матча.
func newLifecycle(skirmishID int) *fsm.FSM {
	return fsm.NewFSM(
		StateLobby,
		fsm.Events{
			{Name: EventStart, Src: []string{StateLobby}, Dst: StateRunning},
			{Name: EventFinish, Src: []string{StateRunning}, Dst: StateFinished},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				logger.Log.WithFields(logrus.Fields{
					"skirmish": skirmishID,
					"from":     e.Src,
					"to":       e.Dst,
				}).Info("Skirmish state changed")
			},
		},
	)
}
