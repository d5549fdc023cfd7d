package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"

	"github.com/fidget77/openage/internal/core/types"
	"github.com/fidget77/openage/internal/core/types/enums"
	"github.com/fidget77/openage/internal/domain"
	"github.com/fidget77/openage/internal/engine/handlers"
	"github.com/fidget77/openage/internal/systems"
	"github.com/fidget77/openage/pkg/api"
	"github.com/fidget77/openage/pkg/logger"
)

// Тюнинг симуляции
const (
	// DefaultTickRate - тиков симуляции в секунду
	DefaultTickRate = 10
	// broadcastEveryTicks - каждый который тик рассылается снимок
	broadcastEveryTicks = 2
	// attackIntervalTicks - тиков между ударами/выстрелами бойца
	attackIntervalTicks = 10
	// searchRadiusTiles - радиус, в котором рабочие ищут склады и залежи
	searchRadiusTiles = 32
)

// interactReach - с какой дистанции юнит достает до залежи, фундамента
// или гарнизонного здания (диагональный сосед - 1.42 клетки)
var interactReach = types.PhysFromFloat(1.5)

// SkirmishCommand обертка, чтобы передать команду и того, кто её вызвал
type SkirmishCommand struct {
	Cmd    domain.InternalCommand
	Source *domain.Player
}

// joinRequest - заявка на вход в матч. Обрабатывается горутиной
// скирмиша на границе тика; ответ приходит в Reply (nil - мест нет).
type joinRequest struct {
	Name  string
	Token string
	IsAI  bool
	Reply chan *domain.Player
}

// Skirmish представляет собой один изолированный запущенный матч.
// Всем состоянием владеет горутина Run; снаружи с матчем разговаривают
// только через каналы.
type Skirmish struct {
	ID    int
	World *domain.World

	// Локальные данные симуляции
	Units      *domain.UnitContainer
	Players    []*domain.Player // индекс = PlayerID, [0] - гайя
	Types      *TypeRegistry
	Production *ProductionManager
	Lifecycle  *fsm.FSM

	// Каналы коммуникации
	CommandChan chan SkirmishCommand // Команды от игроков
	JoinChan    chan joinRequest     // Вход новых игроков

	// Ссылка на Service для доступа к Hub и глобальным настройкам
	Service *GameService

	CurrentTick int64 // Локальное время этого матча

	Logs []api.LogEntry // Локальные логи матча

	Rng    *rand.Rand            // Локальный генератор
	Seed   int64                 // Сид, с которого начался матч
	Record *domain.RecordSession // Лента команд для записи матча

	// Точки спавна: по одной на игрока, выдаются по мере входа
	spawns     []domain.TilePos
	spawnsUsed int

	// Точки сбора зданий (куда идут свежеобученные юниты)
	rallies map[types.UnitID]types.Phys3

	// Тик последнего удара каждого бойца (кулдаун атаки)
	lastSwing map[types.UnitID]int64

	// Строители, достоявшие до фундамента в текущем тике
	buildersAt map[types.UnitID][]*domain.Unit

	// События симуляции, накопленные за тик
	pendingEvents []pendingEvent

	// Тайлы, изменившиеся с прошлого снимка (достройки красят землю)
	terrainDirty []domain.TilePos

	eliminated map[domain.PlayerID]bool
	winner     domain.PlayerID

	tickRate     int
	instantBuild bool
	recordSaved  bool
	stop         chan struct{}
	done         chan struct{}
}

// pendingEvent - событие симуляции, ждущее обработки в конце тика
type pendingEvent struct {
	Type    domain.EventType
	Payload json.RawMessage
}

// NewSkirmish создает матч: мир, гайю и одного ИИ-противника. Живым
// матч становится после go Run(); до первого человеческого входа он
// стоит в лобби.
func NewSkirmish(id int, cfg Config, reg *TypeRegistry, service *GameService) *Skirmish {
	seed := cfg.Seed + int64(id) // Skirmish N Seed = MasterSeed + N
	s := &Skirmish{
		ID:          id,
		Types:       reg,
		Production:  NewProductionManager(),
		Lifecycle:   newLifecycle(id),
		CommandChan: make(chan SkirmishCommand, 100),
		JoinChan:    make(chan joinRequest, 8),
		Service:     service,
		Logs:        []api.LogEntry{},
		Rng:         rand.New(rand.NewSource(seed)),
		Seed:        seed,
		rallies:     make(map[types.UnitID]types.Phys3),
		lastSwing:   make(map[types.UnitID]int64),
		eliminated:  make(map[domain.PlayerID]bool),
		tickRate:    cfg.TickRate,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}

	s.buildWorld(cfg.ShardId)

	s.Record = &domain.RecordSession{
		MapWidth:  s.World.Width,
		MapHeight: s.World.Height,
		Seed:      seed,
		Shard:     cfg.ShardId,
		Timestamp: time.Now().Unix(),
		Actions:   make([]domain.RecordAction, 0),
	}

	// Одинокий человек всегда получает противника
	s.admitPlayer(joinRequest{Name: "Воевода", IsAI: true})

	return s
}

// Run запускает игровой цикл ЭТОГО матча.
func (s *Skirmish) Run() {
	defer close(s.done)

	interval := time.Second / time.Duration(s.tickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Log.WithFields(logrus.Fields{
		"skirmish": s.ID,
		"seed":     s.Seed,
	}).Info("Skirmish loop started")

	var loop int64
	for {
		select {
		case <-s.stop:
			// Гаснем штатно: недоигранный матч уходит на диск как есть
			s.SaveRecord()
			return
		case <-ticker.C:
		}
		loop++

		// 1. Вход новых игроков (неблокирующий)
		s.drainJoins()

		// 2. Все накопленные команды, в порядке прихода
		s.drainCommands()

		// 3. Тик симуляции (время стоит в лобби и после финиша)
		if s.Lifecycle.Is(StateRunning) {
			s.CurrentTick++
			s.tick()
		}

		// 4. Рассылка снимков
		if loop%broadcastEveryTicks == 0 {
			s.publish()
		}
	}
}

// Stop останавливает цикл матча. Вызывается сервисом один раз.
func (s *Skirmish) Stop() {
	close(s.stop)
}

// tick - один шаг симуляции. Порядок проходов фиксирован: он часть
// детерминизма записи матча.
func (s *Skirmish) tick() {
	s.buildersAt = make(map[types.UnitID][]*domain.Unit)

	s.processOrders()
	s.processConstruction()
	s.processEvents()
	s.processProduction()
	s.processProjectiles()
	s.processStances()
	s.processAI()
	s.reapDead()
	s.checkVictory()
}

func (s *Skirmish) drainJoins() {
	for {
		select {
		case req := <-s.JoinChan:
			p := s.admitPlayer(req)
			if req.Reply != nil {
				req.Reply <- p
			}
		default:
			return
		}
	}
}

func (s *Skirmish) drainCommands() {
	for {
		select {
		case sc := <-s.CommandChan:
			s.executeCommand(sc)
		default:
			return
		}
	}
}

// admitPlayer впускает игрока в матч. Повторный вход по старому токену
// возвращает прежнего игрока; новый получает стартовую базу на
// свободной точке спавна. nil - мест нет или матч завершен.
func (s *Skirmish) admitPlayer(req joinRequest) *domain.Player {
	if req.Token != "" {
		for _, p := range s.Players {
			if p.SessionToken == req.Token {
				s.AddLog(fmt.Sprintf("%s возвращается в матч", p.Name), "INFO")
				return p
			}
		}
	}

	if s.Lifecycle.Is(StateFinished) {
		return nil
	}
	if s.spawnsUsed >= len(s.spawns) || len(s.Players) > domain.MaxPlayers {
		return nil
	}

	id := domain.PlayerID(len(s.Players))
	p := &domain.Player{
		ID:           id,
		Name:         req.Name,
		Color:        uint8(id),
		Civilisation: civilisations[int(id-1)%len(civilisations)],
		SessionToken: req.Token,
		IsAI:         req.IsAI,
	}
	p.Stockpile.Set(enums.ResourceWood, domain.StartingWood)
	p.Stockpile.Set(enums.ResourceFood, domain.StartingFood)
	p.Stockpile.Set(enums.ResourceGold, domain.StartingGold)
	p.Stockpile.Set(enums.ResourceStone, domain.StartingStone)
	s.Players = append(s.Players, p)

	s.spawnStartingBase(p)
	s.AddLog(fmt.Sprintf("%s входит в матч", p.Name), "INFO")

	// Первый человек открывает матч
	if !req.IsAI && s.Lifecycle.Is(StateLobby) {
		if err := s.Lifecycle.Event(context.Background(), EventStart); err == nil {
			s.AddLog("Матч начался. Стройте, добывайте, воюйте!", "INFO")
		}
	}
	return p
}

var civilisations = []string{"slavs", "byzantines", "franks", "goths", "teutons", "celts", "britons", "persians"}

// spawnStartingBase выдает игроку стартовый набор: готовую ратушу на
// точке спавна и работников вокруг нее.
func (s *Skirmish) spawnStartingBase(p *domain.Player) {
	tp := s.spawns[s.spawnsUsed]
	s.spawnsUsed++

	tc, ok := s.Types.Get("town_centre")
	if !ok {
		logger.Log.Error("Type town_centre is not defined, spawn skipped")
		return
	}
	s.spawnCompleted(tc, p, tp.Center())

	vill, ok := s.Types.Get("villager")
	if !ok {
		return
	}
	placed := 0
	// Кольца вокруг ратуши, ближние первыми
	for ring := 1; ring <= 4 && placed < domain.StartingVills; ring++ {
		for dy := -ring; dy <= ring && placed < domain.StartingVills; dy++ {
			for dx := -ring; dx <= ring && placed < domain.StartingVills; dx++ {
				if dx != -ring && dx != ring && dy != -ring && dy != ring {
					continue // внутренность кольца уже пройдена
				}
				cand := tp.Shift(dx, dy)
				if !s.World.IsPassable(cand.X, cand.Y) {
					continue
				}
				if len(s.World.UnitsAt(cand.X, cand.Y)) > 0 {
					continue
				}
				s.spawnUnit(vill, p, cand.Center())
				placed++
			}
		}
	}
}

// executeCommand выполняет команду в контексте матча
func (s *Skirmish) executeCommand(sc SkirmishCommand) {
	if sc.Source == nil {
		return
	}

	// До старта и после финиша проходит только INIT
	if !s.Lifecycle.Is(StateRunning) && sc.Cmd.Action != domain.ActionInit {
		logger.Log.WithFields(logrus.Fields{
			"skirmish": s.ID,
			"action":   sc.Cmd.Action.String(),
			"state":    s.Lifecycle.Current(),
		}).Debug("Command ignored outside running state")
		return
	}

	handler, ok := s.Service.actionHandlers[sc.Cmd.Action]
	if !ok {
		s.AddLog(fmt.Sprintf("Неизвестное действие: %s", sc.Cmd.Action), "ERROR")
		return
	}

	// Команды людей пишутся в запись матча до исполнения: ИИ свои
	// решения на повторе примет заново, детерминированно по сиду
	if sc.Cmd.Token != "" {
		s.recordAction(sc)
	}

	ctx := s.handlerContext(sc.Source)
	result, err := handler(ctx, sc.Cmd.Payload)
	if err != nil {
		s.AddLog(err.Error(), "ERROR")
		return
	}

	if result.Msg != "" {
		s.AddLog(result.Msg, result.MsgType)
	}

	// INIT получает персональный полный снимок немедленно
	if sc.Cmd.Action == domain.ActionInit && sc.Source.SessionToken != "" {
		welcome := s.BuildStateFor(sc.Source, true)
		s.Service.Hub.SendTo(sc.Source.SessionToken, welcome)
	}
}

func (s *Skirmish) recordAction(sc SkirmishCommand) {
	s.Record.Actions = append(s.Record.Actions, domain.RecordAction{
		Tick:    int(s.CurrentTick),
		Player:  sc.Source.ID,
		Action:  sc.Cmd.Action,
		Payload: sc.Cmd.Payload,
	})
}

// handlerContext собирает контекст для хендлеров: доступ к миру и
// замыкания-руки в движок, чтобы не тащить в хендлеры весь Skirmish.
func (s *Skirmish) handlerContext(actor *domain.Player) handlers.Context {
	return handlers.Context{
		Units: s.Units,
		World: s.World,
		Types: s.Types,
		Actor: actor,
		Tick:  s.CurrentTick,
		Rng:   s.Rng,

		SpawnUnit: s.spawnUnit,
		EnqueueTrain: func(b *domain.Unit, t *domain.UnitType, readyTick int64) {
			s.Production.Enqueue(s.Units.Ref(b.ID), t, actor, readyTick)
		},
		SetRally: func(id types.UnitID, pos types.Phys3) {
			s.rallies[id] = pos
		},
		ToggleInstantBuild: func() bool {
			s.instantBuild = !s.instantBuild
			return s.instantBuild
		},
		MarkTerrainDirty: s.markTerrainDirty,
	}
}

// emitEvent откладывает событие симуляции до конца тика
func (s *Skirmish) emitEvent(t domain.EventType, payload interface{}) {
	raw, err := json.Marshal(payload)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to marshal event payload")
		return
	}
	s.pendingEvents = append(s.pendingEvents, pendingEvent{Type: t, Payload: raw})
}

func (s *Skirmish) markTerrainDirty(tp domain.TilePos) {
	s.terrainDirty = append(s.terrainDirty, tp)
}

// spawnUnit порождает юнит типа t в точке pos. Залежи встают без
// коллизии, недостроенные здания рождаются плавающими фундаментами.
func (s *Skirmish) spawnUnit(t *domain.UnitType, owner *domain.Player, pos types.Phys3) *domain.Unit {
	u := s.Units.NewUnit(t.Kind)
	t.Initialise(u, false)
	if owner != nil {
		u.Attributes.Add(&domain.OwnerAttr{Player: owner})
	}
	u.Pos = pos

	switch {
	case t.Kind == enums.KindResourceSpot:
		u.Placement = enums.StatePlacedNoCollision
	case !systems.IsCompleted(u):
		u.Placement = enums.StateFloating
	default:
		u.Placement = enums.StatePlaced
	}

	s.World.AddUnit(u)
	return u
}

// spawnCompleted - как spawnUnit, но здание выходит сразу достроенным
// (стартовые ратуши, базы ИИ).
func (s *Skirmish) spawnCompleted(t *domain.UnitType, owner *domain.Player, pos types.Phys3) *domain.Unit {
	u := s.spawnUnit(t, owner, pos)
	if b, err := domain.UnitAttr[domain.BuildingAttr](u); err == nil {
		b.Completed = 1.0
		u.Placement = b.CompletionState
	}
	return u
}

// creditKill записывает убийство на счет игрока p
func (s *Skirmish) creditKill(p *domain.Player, victim *domain.Unit) {
	if p == nil || !p.IsEnemy(victim.Owner()) {
		return
	}
	p.Kills++
}

// checkVictory пересчитывает счет юнитов и проверяет условие победы:
// игрок без единого юнита выбывает; последний оставшийся побеждает.
func (s *Skirmish) checkVictory() {
	for _, p := range s.Players {
		p.Units = 0
	}
	for _, u := range s.Units.All() {
		if own := u.Owner(); own != nil && u.IsAlive() {
			own.Units++
		}
	}

	contenders := make([]*domain.Player, 0, len(s.Players))
	for _, p := range s.Players {
		if p.IsGaia() || s.eliminated[p.ID] {
			continue
		}
		if p.Units == 0 {
			s.eliminated[p.ID] = true
			s.AddLog(fmt.Sprintf("%s выбывает из матча", p.Name), "INFO")
			continue
		}
		contenders = append(contenders, p)
	}

	// Побеждает последний из как минимум двух сошедшихся
	if len(contenders) != 1 || len(s.Players) <= 2 {
		return
	}
	if !s.Lifecycle.Is(StateRunning) {
		return
	}

	winner := contenders[0]
	s.winner = winner.ID
	s.AddLog(fmt.Sprintf("%s побеждает!", winner.Name), "INFO")
	if err := s.Lifecycle.Event(context.Background(), EventFinish); err != nil {
		logger.Log.WithError(err).Warn("Failed to finish skirmish")
	}
	s.SaveRecord()
}

// SaveRecord сохраняет запись матча на диск. Повторные вызовы
// (финиш + graceful shutdown) молча схлопываются в один.
func (s *Skirmish) SaveRecord() {
	if s.recordSaved || s.Service == nil || s.Service.Records == nil {
		return
	}
	if len(s.Record.Actions) == 0 {
		return // нечего воспроизводить
	}

	s.Record.Players = s.Record.Players[:0]
	for _, p := range s.Players {
		if p.IsGaia() {
			continue
		}
		s.Record.Players = append(s.Record.Players, *p)
	}

	if err := s.Service.Records.Save(s.Record); err != nil {
		logger.Log.WithError(err).Error("Failed to save match record")
		return
	}
	s.recordSaved = true
	logger.Log.WithFields(logrus.Fields{
		"skirmish": s.ID,
		"actions":  len(s.Record.Actions),
	}).Info("Match record saved")
}

// publish рассылает снимок матча всем подключенным игрокам
func (s *Skirmish) publish() {
	// Логи и терраин-патч уходят один раз, всем одинаковые
	currentLogs := s.Logs
	s.Logs = []api.LogEntry{}

	patch := s.drainTerrainPatch()

	for _, p := range s.Players {
		if p.SessionToken == "" || !s.Service.Hub.HasSubscriber(p.SessionToken) {
			continue
		}
		resp := s.BuildStateFor(p, false)
		resp.Logs = currentLogs
		resp.TerrainPatch = patch
		s.Service.Hub.SendTo(p.SessionToken, resp)
	}
}

func (s *Skirmish) drainTerrainPatch() []api.TileView {
	if len(s.terrainDirty) == 0 {
		return nil
	}
	patch := make([]api.TileView, 0, len(s.terrainDirty))
	for _, tp := range s.terrainDirty {
		if tile, ok := s.World.TileAt(tp.X, tp.Y); ok {
			patch = append(patch, tileView(tile))
		}
	}
	s.terrainDirty = s.terrainDirty[:0]
	return patch
}
