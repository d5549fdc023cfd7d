package engine

import (
	"errors"
	"sync"
	"time"

	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"

	"github.com/fidget77/openage/internal/domain"
	"github.com/fidget77/openage/internal/engine/handlers"
	"github.com/fidget77/openage/internal/engine/handlers/actions"
	"github.com/fidget77/openage/internal/engine/handlers/admin"
	"github.com/fidget77/openage/internal/engine/handlers/events"
	"github.com/fidget77/openage/internal/infrastructure/storage"
	"github.com/fidget77/openage/internal/network"
	"github.com/fidget77/openage/pkg/api"
	"github.com/fidget77/openage/pkg/logger"
)

// joinTimeout - сколько ждем, пока горутина матча впустит игрока
const joinTimeout = 5 * time.Second

var (
	ErrNoSeat      = errors.New("no free seat in any skirmish")
	ErrJoinTimeout = errors.New("skirmish did not answer join request")
)

// GameService - корень движка: владеет всеми матчами, реестром типов,
// рассыльщиком и хранилищем записей. Сам матчей не трогает - каждым
// владеет его горутина, сервис только маршрутизирует команды по токенам.
type GameService struct {
	cfg Config

	Hub     *network.Broadcaster
	Records *storage.RecordService
	Types   *TypeRegistry

	mu         sync.RWMutex
	skirmishes map[int]*Skirmish
	seats      map[string]seat
	nextID     int

	actionHandlers map[domain.ActionType]handlers.HandlerFunc
	eventHandlers  map[domain.EventType]handlers.HandlerFunc
}

// seat - место игрока: в каком матче и кем он сидит
type seat struct {
	skirmish *Skirmish
	player   *domain.Player
}

func NewService(cfg Config) (*GameService, error) {
	reg, err := NewTypeRegistry(cfg.TypeDefs)
	if err != nil {
		return nil, err
	}

	s := &GameService{
		cfg:        cfg,
		Hub:        network.NewBroadcaster(),
		Records:    storage.NewRecordService(cfg.RecordDir),
		Types:      reg,
		skirmishes: make(map[int]*Skirmish),
		seats:      make(map[string]seat),
		nextID:     1,
	}
	s.registerHandlers()
	return s, nil
}

func (s *GameService) registerHandlers() {
	s.actionHandlers = map[domain.ActionType]handlers.HandlerFunc{
		domain.ActionInit:       handlers.WithEmptyPayload(actions.HandleInit),
		domain.ActionMove:       handlers.WithPayload(actions.HandleMove),
		domain.ActionAttack:     handlers.WithPayload(actions.HandleAttack),
		domain.ActionStance:     handlers.WithPayload(actions.HandleStance),
		domain.ActionGather:     handlers.WithPayload(actions.HandleGather),
		domain.ActionBuild:      handlers.WithPayload(actions.HandleBuild),
		domain.ActionTrain:      handlers.WithPayload(actions.HandleTrain),
		domain.ActionRally:      handlers.WithPayload(actions.HandleRally),
		domain.ActionGarrison:   handlers.WithPayload(actions.HandleGarrison),
		domain.ActionUngarrison: handlers.WithPayload(actions.HandleUngarrison),
		domain.ActionStop:       handlers.WithPayload(actions.HandleStop),
		domain.ActionCheat:      handlers.WithPayload(admin.HandleCheat),
	}
	s.eventHandlers = map[domain.EventType]handlers.HandlerFunc{
		domain.EventConstructionComplete: handlers.WithPayload(events.HandleConstructionComplete),
		domain.EventTrainComplete:        handlers.WithPayload(events.HandleTrainComplete),
		domain.EventResourceDepleted:     handlers.WithPayload(events.HandleResourceDepleted),
		domain.EventUnitDied:             handlers.WithPayload(events.HandleUnitDied),
	}
}

// Start поднимает первый матч, чтобы входящим было куда садиться
func (s *GameService) Start() {
	s.CreateSkirmish()
}

// CreateSkirmish создает матч и запускает его горутину
func (s *GameService) CreateSkirmish() *Skirmish {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	sk := NewSkirmish(id, s.cfg, s.Types, s)
	s.skirmishes[id] = sk
	s.mu.Unlock()

	go sk.Run()
	return sk
}

// JoinPlayer сажает игрока в матч: по прежнему токену - на старое
// место, иначе в первый матч со свободным местом (или в новый).
// Возвращает токен сессии - клиент шлет его в каждой команде.
func (s *GameService) JoinPlayer(name, prevToken string) (string, *domain.Player, error) {
	// Переподключение: место уже есть
	if prevToken != "" {
		s.mu.RLock()
		st, ok := s.seats[prevToken]
		s.mu.RUnlock()
		if ok {
			p, err := s.askToJoin(st.skirmish, name, prevToken, false)
			if err != nil || p == nil {
				return "", nil, ErrJoinTimeout
			}
			return prevToken, p, nil
		}
	}

	id, err := uuid.NewV4()
	if err != nil {
		return "", nil, err
	}
	token := id.String()

	// Новичок: пробуем матчи по порядку, на отказ отвечаем новым матчем
	for _, sk := range s.joinOrder() {
		p, err := s.askToJoin(sk, name, token, false)
		if err != nil {
			continue
		}
		if p != nil {
			s.seat(token, sk, p)
			return token, p, nil
		}
	}

	sk := s.CreateSkirmish()
	p, err := s.askToJoin(sk, name, token, false)
	if err != nil || p == nil {
		return "", nil, ErrNoSeat
	}
	s.seat(token, sk, p)
	return token, p, nil
}

// joinOrder возвращает матчи от новых к старым: свежие лобби первыми
func (s *GameService) joinOrder() []*Skirmish {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Skirmish, 0, len(s.skirmishes))
	for id := s.nextID - 1; id >= 1; id-- {
		if sk, ok := s.skirmishes[id]; ok {
			out = append(out, sk)
		}
	}
	return out
}

// askToJoin передает заявку горутине матча и ждет вердикта
func (s *GameService) askToJoin(sk *Skirmish, name, token string, isAI bool) (*domain.Player, error) {
	req := joinRequest{
		Name:  name,
		Token: token,
		IsAI:  isAI,
		Reply: make(chan *domain.Player, 1),
	}
	select {
	case sk.JoinChan <- req:
	case <-time.After(joinTimeout):
		return nil, ErrJoinTimeout
	}
	select {
	case p := <-req.Reply:
		return p, nil
	case <-time.After(joinTimeout):
		return nil, ErrJoinTimeout
	}
}

func (s *GameService) seat(token string, sk *Skirmish, p *domain.Player) {
	s.mu.Lock()
	s.seats[token] = seat{skirmish: sk, player: p}
	s.mu.Unlock()
}

// ProcessCommand маршрутизирует команду клиента в его матч.
// Вызывается из горутин чтения сокетов; пишет только в канал.
func (s *GameService) ProcessCommand(cmd api.ClientCommand) {
	action := domain.ParseAction(cmd.Action)
	if action == domain.ActionUnknown {
		logger.Log.WithField("action", cmd.Action).Warn("Unknown action ignored")
		return
	}

	s.mu.RLock()
	st, ok := s.seats[cmd.Token]
	s.mu.RUnlock()
	if !ok {
		logger.Log.Warn("Command with unseated token ignored")
		return
	}

	sc := SkirmishCommand{
		Cmd: domain.InternalCommand{
			Action:  action,
			Token:   cmd.Token,
			Payload: cmd.Payload,
		},
		Source: st.player,
	}
	select {
	case st.skirmish.CommandChan <- sc:
	default:
		// Матч захлебнулся - потерять команду лучше, чем повесить сокет
		logger.Log.WithFields(logrus.Fields{
			"skirmish": st.skirmish.ID,
			"action":   cmd.Action,
		}).Warn("Command channel full, command dropped")
	}
}

// Skirmishes возвращает снимок списка матчей (для отладочных ручек)
func (s *GameService) Skirmishes() []*Skirmish {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Skirmish, 0, len(s.skirmishes))
	for id := 1; id < s.nextID; id++ {
		if sk, ok := s.skirmishes[id]; ok {
			out = append(out, sk)
		}
	}
	return out
}

// Skirmish возвращает матч по номеру
func (s *GameService) Skirmish(id int) (*Skirmish, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sk, ok := s.skirmishes[id]
	return sk, ok
}

// Shutdown гасит все матчи и дожидается, пока каждый сохранит свою
// запись. Незавершенные матчи пишутся как есть - их можно будет
// досмотреть инструментом воспроизведения.
func (s *GameService) Shutdown() {
	s.mu.RLock()
	all := make([]*Skirmish, 0, len(s.skirmishes))
	for _, sk := range s.skirmishes {
		all = append(all, sk)
	}
	s.mu.RUnlock()

	for _, sk := range all {
		sk.Stop()
	}
	for _, sk := range all {
		select {
		case <-sk.done:
		case <-time.After(joinTimeout):
			logger.Log.WithField("skirmish", sk.ID).Warn("Skirmish did not stop in time")
		}
	}
}
