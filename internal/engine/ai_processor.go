package engine

import (
	"encoding/json"

	"github.com/fidget77/openage/internal/core/types"
	"github.com/fidget77/openage/internal/core/types/enums"
	"github.com/fidget77/openage/internal/domain"
	"github.com/fidget77/openage/internal/systems"
	"github.com/fidget77/openage/pkg/api"
	"github.com/fidget77/openage/pkg/logger"
)

// Ритм и аппетиты компьютерного противника
const (
	// aiDecisionEveryTicks - как часто ИИ пересматривает планы
	aiDecisionEveryTicks = 50
	// aiWorkerTarget - сколько рабочих ИИ хочет иметь
	aiWorkerTarget = 12
	// aiAttackSquad - с каким отрядом ИИ идет в атаку
	aiAttackSquad = 5
)

// processAI дает компьютерным игрокам принять решения. Решения
// конвертируются в те же команды, что шлют живые игроки, и проходят
// через общий executeCommand - ИИ не имеет обходных путей в движок.
func (s *Skirmish) processAI() {
	if s.CurrentTick%aiDecisionEveryTicks != 0 {
		return
	}
	for _, p := range s.Players {
		if p.IsAI && !s.eliminated[p.ID] {
			s.aiTurn(p)
		}
	}
}

// aiRoster - перепись хозяйства ИИ на момент решения
type aiRoster struct {
	workers     []*domain.Unit
	idleWorkers []*domain.Unit
	army        []*domain.Unit
	idleArmy    []*domain.Unit
	townCentres []*domain.Unit
	barracks    []*domain.Unit
	foundations []*domain.Unit
}

func (s *Skirmish) aiTurn(p *domain.Player) {
	r := s.aiSurvey(p)

	// 1. Недострои важнее всего: свободные руки - на стройку
	if len(r.foundations) > 0 && len(r.idleWorkers) > 0 {
		s.aiCommand(p, domain.ActionBuild, api.BuildPayload{
			UnitIDs:  unitIDs(r.idleWorkers),
			TargetID: r.foundations[0].ID.Text(),
		})
		return
	}

	// 2. Праздные рабочие идут добывать то, чего меньше на складе
	if len(r.idleWorkers) > 0 {
		s.aiAssignGather(p, r.idleWorkers)
	}

	// 3. Экономика: рабочих до целевого числа
	if len(r.workers) < aiWorkerTarget && len(r.townCentres) > 0 {
		tc := r.townCentres[0]
		if vill, ok := s.Types.Get("villager"); ok &&
			p.CanAfford(vill.Cost) && s.Production.Pending(tc.ID) == 0 {
			s.aiCommand(p, domain.ActionTrain, api.TrainPayload{
				BuildingID: tc.ID.Text(),
				Type:       "villager",
			})
		}
	}

	// 4. Военная инфраструктура
	if len(r.barracks) == 0 && len(r.townCentres) > 0 {
		if barr, ok := s.Types.Get("barracks"); ok && p.CanAfford(barr.Cost) && len(r.workers) > 0 {
			if site := s.aiBuildSite(r.townCentres[0]); site != nil {
				s.aiCommand(p, domain.ActionBuild, api.BuildPayload{
					UnitIDs: unitIDs(r.workers[:1]),
					Type:    "barracks",
					X:       float64(site.X) + 0.5,
					Y:       float64(site.Y) + 0.5,
				})
			}
		}
	}

	// 5. Армия
	if len(r.barracks) > 0 && systems.IsCompleted(r.barracks[0]) {
		b := r.barracks[0]
		if mil, ok := s.Types.Get("militia"); ok &&
			p.CanAfford(mil.Cost) && s.Production.Pending(b.ID) < 3 {
			s.aiCommand(p, domain.ActionTrain, api.TrainPayload{
				BuildingID: b.ID.Text(),
				Type:       "militia",
			})
		}
	}

	// 6. Отряд собрался - в атаку
	if len(r.idleArmy) >= aiAttackSquad {
		if target := s.aiPickTarget(p); target != nil {
			s.aiCommand(p, domain.ActionAttack, api.TargetPayload{
				UnitIDs:  unitIDs(r.idleArmy),
				TargetID: target.ID.Text(),
			})
		}
	}
}

// aiSurvey собирает перепись юнитов игрока
func (s *Skirmish) aiSurvey(p *domain.Player) aiRoster {
	var r aiRoster
	for _, u := range s.Units.All() {
		if u.Owner() != p || !u.IsAlive() {
			continue
		}
		switch {
		case u.HasAttribute(domain.AttrWorker):
			r.workers = append(r.workers, u)
			if u.Order == nil {
				r.idleWorkers = append(r.idleWorkers, u)
			}
		case unitKind(u) == enums.KindBuilding:
			if !systems.IsCompleted(u) {
				r.foundations = append(r.foundations, u)
			}
			switch u.Name() {
			case "town_centre":
				r.townCentres = append(r.townCentres, u)
			case "barracks":
				r.barracks = append(r.barracks, u)
			}
		case u.HasAttribute(domain.AttrAttack) && u.HasAttribute(domain.AttrSpeed):
			r.army = append(r.army, u)
			// Идущие на сбор по rally тоже считаются свободными
			if u.Order == nil || (!u.Order.Auto && u.Order.Kind == domain.OrderMove) {
				r.idleArmy = append(r.idleArmy, u)
			}
		}
	}
	return r
}

// aiAssignGather отправляет праздных рабочих на дефицитный ресурс
func (s *Skirmish) aiAssignGather(p *domain.Player, idle []*domain.Unit) {
	res := enums.ResourceWood
	if p.Stockpile.Get(enums.ResourceFood) < p.Stockpile.Get(enums.ResourceWood) {
		res = enums.ResourceFood
	}
	radius := types.PhysFromInt(searchRadiusTiles)
	for _, w := range idle {
		spot := systems.NearestResourceSpot(s.World, w.Pos, res, radius)
		if spot == nil {
			// Дефицитного рядом нет - берем что есть
			other := enums.ResourceFood
			if res == enums.ResourceFood {
				other = enums.ResourceWood
			}
			spot = systems.NearestResourceSpot(s.World, w.Pos, other, radius)
		}
		if spot == nil {
			continue
		}
		s.aiCommand(p, domain.ActionGather, api.TargetPayload{
			UnitIDs:  []string{w.ID.Text()},
			TargetID: spot.ID.Text(),
		})
	}
}

// aiBuildSite ищет клетку под новое здание недалеко от ратуши
func (s *Skirmish) aiBuildSite(tc *domain.Unit) *domain.TilePos {
	home := domain.TileOf(tc.Pos)
	for ring := 3; ring <= 6; ring++ {
		for dy := -ring; dy <= ring; dy++ {
			for dx := -ring; dx <= ring; dx++ {
				if dx != -ring && dx != ring && dy != -ring && dy != ring {
					continue
				}
				cand := home.Shift(dx, dy)
				if !s.World.IsPassable(cand.X, cand.Y) {
					continue
				}
				if len(s.World.UnitsAt(cand.X, cand.Y)) > 0 {
					continue
				}
				return &cand
			}
		}
	}
	return nil
}

// aiPickTarget выбирает, кого бить: вражескую ратушу, а без нее -
// первого попавшегося вражеского юнита
func (s *Skirmish) aiPickTarget(p *domain.Player) *domain.Unit {
	var fallback *domain.Unit
	for _, u := range s.Units.All() {
		if !u.IsAlive() || !p.IsEnemy(u.Owner()) {
			continue
		}
		if u.Name() == "town_centre" {
			return u
		}
		if fallback == nil {
			fallback = u
		}
	}
	return fallback
}

// aiCommand конвертирует решение ИИ во внутреннюю команду.
// Токен пуст: действия ИИ не пишутся в запись матча, на повторе ИИ
// примет их заново из того же состояния.
func (s *Skirmish) aiCommand(p *domain.Player, action domain.ActionType, payload interface{}) {
	raw, err := json.Marshal(payload)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to marshal AI payload")
		return
	}
	s.executeCommand(SkirmishCommand{
		Cmd:    domain.InternalCommand{Action: action, Payload: raw},
		Source: p,
	})
}

func unitIDs(units []*domain.Unit) []string {
	out := make([]string, 0, len(units))
	for _, u := range units {
		out = append(out, u.ID.Text())
	}
	return out
}
