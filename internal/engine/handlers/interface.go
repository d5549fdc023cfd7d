package handlers

import (
	"encoding/json"
	"math/rand"

	"github.com/fidget77/openage/internal/core/types"
	"github.com/fidget77/openage/internal/domain"
)

// TypeSource отдает определение типа юнита по имени.
// TypeRegistry движка неявно реализует этот интерфейс.
type TypeSource interface {
	Get(name string) (*domain.UnitType, bool)
}

// Context передает хендлеру состояние матча.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
// Все вызовы идут из горутины матча, синхронизация не нужна.
type Context struct {
	Units *domain.UnitContainer
	World *domain.World
	Types TypeSource
	Actor *domain.Player // Кто отдал команду; nil для внутренних событий
	Tick  int64
	Rng   *rand.Rand

	// Операции, живущие на стороне движка. Хендлер не знает про
	// Skirmish напрямую - только про эти замыкания.
	SpawnUnit          func(t *domain.UnitType, owner *domain.Player, pos types.Phys3) *domain.Unit
	EnqueueTrain       func(b *domain.Unit, t *domain.UnitType, readyTick int64)
	SetRally           func(id types.UnitID, pos types.Phys3)
	ToggleInstantBuild func() bool
	MarkTerrainDirty   func(tp domain.TilePos)
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в матчевый лог напрямую, он возвращает данные.
type Result struct {
	Msg     string          // Текст лога
	MsgType string          // Тип лога (INFO, COMBAT, ECONOMY)
	Event   json.RawMessage // Сырые данные события для обработки движком
}

// HandlerFunc - это контракт для любой команды (MOVE, ATTACK, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
