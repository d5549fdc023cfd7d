package agent

import (
	"encoding/json"
	"log"
	"math"

	"github.com/fidget77/openage/internal/engine"
	"github.com/fidget77/openage/pkg/api"
)

// Bot представляет собой безголового клиента-статиста для нагрузочных
// прогонов и демо. Он входит в матч тем же путем, что и живой игрок
// (JoinPlayer + подписка в хабе), видит только DTO из снимков и шлет
// обратно обычные команды через ProcessCommand - никаких обходных
// путей в движок. Внутренний ИИ матча (processAI) устроен иначе: тот
// сидит в горутине матча и правит домен напрямую.
//
// Скрипт нарочно примитивный: держать рабочих при деле и подливать
// новых из ратуши. Для дымовой нагрузки на протокол этого достаточно.
type Bot struct {
	Name    string
	Service *engine.GameService
	Inbox   chan api.ServerResponse

	token    string
	playerID uint8
	lastActs int64 // тик последнего раунда решений
}

func NewBot(name string, service *engine.GameService) (*Bot, error) {
	token, player, err := service.JoinPlayer(name, "")
	if err != nil {
		return nil, err
	}
	log.Printf("[BOT] %s seated as player %d", name, player.ID)
	return &Bot{
		Name:     name,
		Service:  service,
		Inbox:    service.Hub.Register(token),
		token:    token,
		playerID: uint8(player.ID),
	}, nil
}

// Run запускает цикл жизни бота. Должен быть запущен в горутине.
func (b *Bot) Run() {
	defer b.Service.Hub.Unregister(b.token)

	b.send("INIT", nil)
	for state := range b.Inbox {
		if state.State != "running" {
			continue
		}
		// Решения не чаще раза в 30 тиков: живой игрок тоже не
		// кликает каждый кадр
		if state.Tick-b.lastActs < 30 {
			continue
		}
		b.lastActs = state.Tick
		b.act(state)
	}
	log.Printf("[BOT] %s shut down", b.Name)
}

// act - один раунд решений поверх присланного снимка
func (b *Bot) act(state api.ServerResponse) {
	var idleWorkers, idleArmy []api.UnitView
	var townCentre, enemy *api.UnitView
	var spots []api.UnitView

	for i := range state.Units {
		u := state.Units[i]
		switch {
		case u.Kind == "RESOURCE_SPOT":
			spots = append(spots, u)
		case u.Owner != b.playerID:
			if enemy == nil && u.Owner != 0 && u.Kind != "PROJECTILE" {
				e := u
				enemy = &e
			}
		case u.Type == "villager" && u.Order == "":
			idleWorkers = append(idleWorkers, u)
		case u.Type == "militia" && u.Order == "":
			idleArmy = append(idleArmy, u)
		case u.Type == "town_centre" && townCentre == nil:
			tc := u
			townCentre = &tc
		}
	}

	// 1. Праздные рабочие - к ближайшей залежи
	for _, w := range idleWorkers {
		if spot := nearestSpot(w, spots); spot != nil {
			b.send("GATHER", api.TargetPayload{
				UnitIDs:  []string{w.ID},
				TargetID: spot.ID,
			})
		}
	}

	// 2. Ратуша без дела - заказать рабочего (движок сам откажет,
	// если не хватит еды; бот не ведет бухгалтерию)
	if townCentre != nil && len(idleWorkers) == 0 {
		b.send("TRAIN", api.TrainPayload{
			BuildingID: townCentre.ID,
			Type:       "villager",
		})
	}

	// 3. Праздная пехота идет бить первого видимого врага
	if enemy != nil && len(idleArmy) > 0 {
		ids := make([]string, 0, len(idleArmy))
		for _, u := range idleArmy {
			ids = append(ids, u.ID)
		}
		b.send("ATTACK", api.TargetPayload{
			UnitIDs:  ids,
			TargetID: enemy.ID,
		})
	}
}

func nearestSpot(w api.UnitView, spots []api.UnitView) *api.UnitView {
	var best *api.UnitView
	bestDist := math.MaxFloat64
	for i := range spots {
		dx := spots[i].Pos.X - w.Pos.X
		dy := spots[i].Pos.Y - w.Pos.Y
		d := dx*dx + dy*dy
		if d < bestDist {
			bestDist = d
			best = &spots[i]
		}
	}
	return best
}

func (b *Bot) send(action string, payload interface{}) {
	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			log.Printf("[BOT] %s payload marshal failed: %v", b.Name, err)
			return
		}
		raw = data
	}
	b.Service.ProcessCommand(api.ClientCommand{
		Token:   b.token,
		Action:  action,
		Payload: raw,
	})
}
