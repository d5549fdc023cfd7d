package engine

import (
	"fmt"

	"github.com/fidget77/openage/internal/core/types"
	"github.com/fidget77/openage/internal/core/types/enums"
	"github.com/fidget77/openage/internal/domain"
	"github.com/fidget77/openage/internal/systems"
	"github.com/fidget77/openage/pkg/api"
	"github.com/fidget77/openage/pkg/logger"
)

// unitKind достает род юнита из упакованного ID
func unitKind(u *domain.Unit) enums.UnitKind {
	return enums.UnitKind(u.ID.Kind())
}

// processOrders исполняет по одному шагу каждого активного приказа.
// Снаряды пропускаются: их "приказ" - полетный план, он обрабатывается
// отдельным проходом.
func (s *Skirmish) processOrders() {
	for _, u := range s.Units.All() {
		if !u.IsAlive() || u.Order == nil {
			continue
		}
		if unitKind(u) == enums.KindProjectile {
			continue
		}

		switch u.Order.Kind {
		case domain.OrderMove:
			s.tickMove(u)
		case domain.OrderAttack:
			s.tickAttack(u)
		case domain.OrderGather:
			s.tickGather(u)
		case domain.OrderDeposit:
			s.tickDeposit(u)
		case domain.OrderBuild:
			s.tickBuild(u)
		case domain.OrderHeal:
			s.tickHeal(u)
		case domain.OrderGarrison:
			s.tickGarrison(u)
		default:
			u.ClearOrder()
		}
	}
}

// stepToward делает один шаг юнита к target и применяет его к миру
func (s *Skirmish) stepToward(u *domain.Unit, target types.Phys3) systems.StepResult {
	systems.SetCourse(u, target)
	step := systems.CalculateStep(u, s.World, target)
	if step.Moved {
		if err := s.World.UpdateUnitPos(u, step.NewPos); err != nil {
			step.Moved = false
			step.Blocked = true
		}
	}
	return step
}

func (s *Skirmish) tickMove(u *domain.Unit) {
	step := s.stepToward(u, u.Order.Target)
	if step.Arrived || step.Blocked {
		u.ClearOrder()
	}
}

func (s *Skirmish) tickAttack(u *domain.Unit) {
	o := u.Order
	res := systems.ValidateOrderTarget(u, o.TargetRef, 0)
	if !res.Valid {
		u.ClearOrder() // цели больше нет; стойка подберет следующую
		return
	}
	target := res.Target

	atk, err := domain.UnitAttr[domain.AttackAttr](u)
	if err != nil {
		u.ClearOrder()
		return
	}

	if u.Pos.DistanceTo(target.Pos) > atk.Range {
		// Цель вне дистанции удара. Авто-приказ от стойки ограничен:
		// stand ground не двигается вовсе, защитная стойка гонится не
		// дальше поводка от точки, где начался бой.
		if o.Auto {
			switch atk.Stance {
			case domain.StanceStandGround:
				u.ClearOrder()
				return
			case domain.StanceDefensive:
				if u.Pos.DistanceTo(o.Target) > types.PhysFromInt(domain.LeashRadius) {
					u.SetOrder(&domain.Order{Kind: domain.OrderMove, Target: o.Target})
					return
				}
			}
		}
		if !u.HasAttribute(domain.AttrSpeed) {
			u.ClearOrder() // зданию не догнать
			return
		}
		s.stepToward(u, target.Pos)
		return
	}

	if s.CurrentTick-s.lastSwing[u.ID] < attackIntervalTicks {
		return
	}
	s.lastSwing[u.ID] = s.CurrentTick

	if atk.PType != nil {
		if p := systems.LaunchProjectile(s.Units, s.World, u, target.Pos); p != nil {
			// Полетный план: точка цели на момент выстрела
			p.SetOrder(&domain.Order{Kind: domain.OrderMove, Target: target.Pos})
		}
		return
	}

	result := systems.ApplyAttack(u, target)
	if result.Died {
		s.creditKill(u.Owner(), target)
	}
}

func (s *Skirmish) tickGather(u *domain.Unit) {
	o := u.Order
	res := systems.ValidateOrderTarget(u, o.TargetRef, 0)
	if !res.Valid {
		s.retargetGather(u, o.Resource)
		return
	}
	spot := res.Target

	// С полной ношей сперва к складу
	if wk, err := domain.UnitAttr[domain.WorkerAttr](u); err == nil {
		if carry, cerr := domain.UnitAttr[domain.ResourceAttr](u); cerr == nil &&
			carry.Resource == o.Resource && carry.Amount >= wk.Capacity {
			s.switchToDeposit(u, o.Resource)
			return
		}
	}

	if u.Pos.DistanceTo(spot.Pos) > interactReach {
		s.stepToward(u, spot.Pos)
		return
	}

	systems.SwitchTaskType(u, o.Resource)
	result := systems.GatherTick(u, spot)

	if result.SpotDepleted {
		s.emitEvent(domain.EventResourceDepleted, api.UnitEventPayload{
			UnitID: spot.ID.Text(),
			Name:   spot.Name(),
		})
	}
	if result.Full {
		s.switchToDeposit(u, o.Resource)
		return
	}
	if result.SpotDepleted {
		s.retargetGather(u, o.Resource)
	}
}

func (s *Skirmish) tickDeposit(u *domain.Unit) {
	o := u.Order
	res := systems.ValidateOrderTarget(u, o.TargetRef, 0)
	if !res.Valid {
		s.switchToDeposit(u, o.Resource) // склад снесли, ищем другой
		return
	}
	site := res.Target

	if u.Pos.DistanceTo(site.Pos) > interactReach {
		s.stepToward(u, site.Pos)
		return
	}

	owner := u.Owner()
	if owner == nil {
		u.ClearOrder()
		return
	}
	if _, ok := systems.Deposit(u, site, owner); ok {
		s.retargetGather(u, o.Resource) // с пустыми руками обратно к залежи
		return
	}
	u.ClearOrder()
}

// switchToDeposit перенацеливает рабочего на ближайший склад его ресурса
func (s *Skirmish) switchToDeposit(u *domain.Unit, res enums.GameResource) {
	site := systems.NearestDropsite(s.World, u, res, types.PhysFromInt(searchRadiusTiles))
	if site == nil {
		u.ClearOrder() // нести некуда
		return
	}
	u.SetOrder(&domain.Order{
		Kind:      domain.OrderDeposit,
		Target:    site.Pos,
		TargetRef: s.Units.Ref(site.ID),
		Resource:  res,
	})
}

// retargetGather перенацеливает рабочего на ближайшую непустую залежь
func (s *Skirmish) retargetGather(u *domain.Unit, res enums.GameResource) {
	spot := systems.NearestResourceSpot(s.World, u.Pos, res, types.PhysFromInt(searchRadiusTiles))
	if spot == nil {
		u.ClearOrder()
		return
	}
	u.SetOrder(&domain.Order{
		Kind:      domain.OrderGather,
		Target:    spot.Pos,
		TargetRef: s.Units.Ref(spot.ID),
		Resource:  res,
	})
}

func (s *Skirmish) tickBuild(u *domain.Unit) {
	o := u.Order
	res := systems.ValidateOrderTarget(u, o.TargetRef, 0)
	if !res.Valid {
		u.ClearOrder()
		return
	}
	site := res.Target

	if systems.IsCompleted(site) {
		u.ClearOrder() // достроили без нас
		return
	}

	if u.Pos.DistanceTo(site.Pos) > interactReach {
		s.stepToward(u, site.Pos)
		return
	}
	s.buildersAt[site.ID] = append(s.buildersAt[site.ID], u)
}

func (s *Skirmish) tickHeal(u *domain.Unit) {
	o := u.Order
	res := systems.ValidateOrderTarget(u, o.TargetRef, 0)
	if !res.Valid {
		u.ClearOrder()
		return
	}
	target := res.Target

	h, err := domain.UnitAttr[domain.HealAttr](u)
	if err != nil {
		u.ClearOrder()
		return
	}
	if target.CurrentHP() >= target.MaxHP() {
		u.ClearOrder() // пациент здоров
		return
	}

	if u.Pos.DistanceTo(target.Pos) > h.Range {
		s.stepToward(u, target.Pos)
		return
	}
	if !systems.HealDue(h, s.CurrentTick, s.tickRate) {
		return
	}
	systems.HealPulse(u, target)
}

func (s *Skirmish) tickGarrison(u *domain.Unit) {
	o := u.Order
	res := systems.ValidateOrderTarget(u, o.TargetRef, 0)
	if !res.Valid {
		u.ClearOrder()
		return
	}
	host := res.Target

	if u.Pos.DistanceTo(host.Pos) > interactReach {
		s.stepToward(u, host.Pos)
		return
	}
	// GarrisonUnit сам убирает вошедшего из мира и снимает его приказ
	if !systems.GarrisonUnit(s.World, s.Units, host, u) {
		u.ClearOrder() // мест нет
	}
}

// processConstruction продвигает стройки, у фундаментов которых за этот
// тик отметились строители.
func (s *Skirmish) processConstruction() {
	for _, b := range s.Units.All() {
		builders := s.buildersAt[b.ID]
		if len(builders) == 0 {
			continue
		}

		n := len(builders)
		if s.instantBuild {
			n = int(1.0/domain.ConstructRatePerTick) + 1
		}

		if systems.ConstructTick(b, n) {
			for _, worker := range builders {
				worker.ClearOrder()
			}
			s.emitEvent(domain.EventConstructionComplete, api.UnitEventPayload{
				UnitID: b.ID.Text(),
				Name:   b.Name(),
			})
		}
	}
}

// processEvents разбирает события, накопленные за тик. События,
// порожденные обработчиками, дойдут в следующем тике.
func (s *Skirmish) processEvents() {
	if len(s.pendingEvents) == 0 {
		return
	}
	events := s.pendingEvents
	s.pendingEvents = nil

	for _, ev := range events {
		handler, ok := s.Service.eventHandlers[ev.Type]
		if !ok {
			continue
		}
		ctx := s.handlerContext(nil)
		result, err := handler(ctx, ev.Payload)
		if err != nil {
			logger.Log.WithError(err).WithField("event", ev.Type.String()).Warn("Event handler failed")
			continue
		}
		if result.Msg != "" {
			s.AddLog(result.Msg, result.MsgType)
		}
	}
}

// processProduction выпускает юниты, чье обучение завершилось
func (s *Skirmish) processProduction() {
	for _, item := range s.Production.PopReady(s.CurrentTick) {
		b, ok := item.Building.Get()
		if !ok || !b.IsAlive() {
			// здание снесено: его очередь уже отменена и оплачена обратно
			continue
		}

		exit := s.findExitTile(b)
		if exit == nil {
			// все выходы заставлены, пробуем в следующий тик
			s.Production.Enqueue(item.Building, item.Type, item.Player, s.CurrentTick+1)
			continue
		}

		u := s.spawnUnit(item.Type, item.Player, exit.Center())
		s.emitEvent(domain.EventTrainComplete, api.UnitEventPayload{
			UnitID: u.ID.Text(),
			Name:   u.Name(),
		})
		if rally, ok := s.rallies[b.ID]; ok {
			u.SetOrder(&domain.Order{Kind: domain.OrderMove, Target: rally})
		}
	}
}

// findExitTile ищет свободную проходимую клетку вокруг здания
func (s *Skirmish) findExitTile(b *domain.Unit) *domain.TilePos {
	home := domain.TileOf(b.Pos)
	for ring := 1; ring <= 3; ring++ {
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

// processProjectiles продвигает снаряды по полетным планам. Упавший
// снаряд раздает урон по клетке и исчезает; убийства записываются на
// владельца стрелка.
func (s *Skirmish) processProjectiles() {
	for _, p := range s.Units.All() {
		if unitKind(p) != enums.KindProjectile || !p.IsAlive() {
			continue
		}
		if p.Order == nil {
			continue // заготовка без полетного плана
		}

		if !systems.ProjectileStep(p, s.World, p.Order.Target) {
			continue
		}

		// Кто стоял в клетке падения до удара
		tp := domain.TileOf(p.Pos)
		standing := make([]*domain.Unit, 0, 4)
		for _, v := range s.World.UnitsAt(tp.X, tp.Y) {
			if v != p && v.IsAlive() && v.MaxHP() > 0 {
				standing = append(standing, v)
			}
		}

		systems.ImpactDamage(p, s.World)

		var shooter *domain.Player
		if pr, err := domain.UnitAttr[domain.ProjectileAttr](p); err == nil {
			if l, ok := pr.Launcher.Get(); ok {
				shooter = l.Owner()
			}
		}
		for _, v := range standing {
			if v.CurrentHP() == 0 {
				s.creditKill(shooter, v)
			}
		}

		s.World.RemoveUnit(p)
		s.Units.Destroy(p.ID)
	}
}

// processStances дает бойцам без приказа действовать по стойке
func (s *Skirmish) processStances() {
	for _, u := range s.Units.All() {
		if !u.IsAlive() || u.Order != nil {
			continue
		}
		if unitKind(u) == enums.KindProjectile {
			continue
		}

		target := systems.ComputeStanceAction(u, s.World)
		if target == nil {
			continue
		}
		u.SetOrder(&domain.Order{
			Kind:      domain.OrderAttack,
			Target:    u.Pos, // точка поводка: сюда защитная стойка вернется
			TargetRef: s.Units.Ref(target.ID),
			Auto:      true,
		})
	}
}

// reapDead убирает из мира все, что добито за тик
func (s *Skirmish) reapDead() {
	for _, u := range s.Units.All() {
		if u.Dead || u.MaxHP() == 0 || u.CurrentHP() > 0 {
			continue
		}
		s.killUnit(u)
	}
}

// killUnit хоронит юнит вместе с гарнизоном внутри
func (s *Skirmish) killUnit(u *domain.Unit) {
	if g, err := domain.UnitAttr[domain.GarrisonAttr](u); err == nil {
		for _, ref := range g.Content {
			if occupant, ok := ref.Get(); ok {
				s.removeUnit(occupant)
			}
		}
		g.Content = nil
	}

	if unitKind(u) == enums.KindBuilding {
		s.emitEvent(domain.EventUnitDied, api.UnitEventPayload{
			UnitID: u.ID.Text(),
			Name:   u.Name(),
		})
	}
	s.removeUnit(u)
}

// removeUnit вычеркивает юнит из матча: статистика, очереди, мир
func (s *Skirmish) removeUnit(u *domain.Unit) {
	if own := u.Owner(); own != nil {
		own.Losses++
	}

	// Недообученные юниты снесенного здания возвращаются деньгами
	for _, item := range s.Production.CancelFor(u.ID) {
		if item.Player != nil && item.Type != nil {
			item.Player.Stockpile.Add(item.Type.Cost)
			s.AddLog(fmt.Sprintf("Обучение %s отменено, ресурсы возвращены", item.Type.Name), "ECONOMY")
		}
	}

	delete(s.rallies, u.ID)
	delete(s.lastSwing, u.ID)
	s.World.RemoveUnit(u)
	s.Units.Destroy(u.ID)
}
