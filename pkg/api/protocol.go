package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Он представляет собой полный "снимок" матча, видимый для конкретного
// игрока. Рассылается с фиксированной частотой (несколько раз в секунду),
// а также немедленно в ответ на INIT.
type ServerResponse struct {
	// Type тип сообщения: "WELCOME" при входе, дальше "UPDATE".
	Type string `json:"type"`

	// Tick текущее время матча в тиках симуляции.
	Tick int64 `json:"tick"`

	// State фаза матча: "lobby", "running", "finished".
	State string `json:"state,omitempty"`

	// MyPlayerID номер игрока, которым управляет данный клиент.
	MyPlayerID uint8 `json:"myPlayerId,omitempty"`

	// Token сессионный токен (выдается один раз в WELCOME).
	Token string `json:"token,omitempty"`

	// Grid метаданные о размере всей карты.
	Grid *GridMeta `json:"grid,omitempty"`

	// Map срез тайлов карты. Отправляется целиком в WELCOME,
	// дальше опускается (местность меняется редко, см. TerrainPatch).
	Map []TileView `json:"map,omitempty"`

	// TerrainPatch тайлы, изменившиеся с прошлого снимка
	// (достроенные фундаменты красят местность под собой).
	TerrainPatch []TileView `json:"terrainPatch,omitempty"`

	// Players состояние всех игроков матча (склад, счет).
	Players []PlayerView `json:"players,omitempty"`

	// Units срез всех юнитов матча.
	Units []UnitView `json:"units,omitempty"`

	// Logs срез новых сообщений, сгенерированных с прошлого снимка.
	Logs []LogEntry `json:"logs,omitempty"`

	// Winner номер победителя (только в состоянии "finished").
	Winner uint8 `json:"winner,omitempty"`
}

// GridMeta содержит общие размеры карты, чтобы клиент знал,
// какую сетку для рендеринга нужно подготовить.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView это DTO (Data Transfer Object) для одного тайла карты.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Terrain тип местности ("GRASS", "FOREST", "WATER", ...).
	Terrain string `json:"terrain"`

	// Passable true, если по тайлу можно ходить.
	Passable bool `json:"passable"`
}

// UnitView это DTO для одного юнита. Поля-указатели опускаются,
// если у юнита нет соответствующей записи атрибута.
type UnitView struct {
	ID   string `json:"id"`
	Type string `json:"type"` // Имя типа: "villager", "militia", "town_centre"
	Kind string `json:"kind"` // UNIT, BUILDING, PROJECTILE, RESOURCE_SPOT
	Name string `json:"name"`

	// Owner номер игрока-владельца (0 - гайя).
	Owner uint8 `json:"owner"`

	Pos struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	} `json:"pos"`

	// Placement как юнит стоит в мире (фундаменты "плавают").
	Placement string `json:"placement"`

	// HP и MaxHP текущее и максимальное здоровье (0/0 - неуязвимый реквизит).
	HP    uint32 `json:"hp"`
	MaxHP uint32 `json:"maxHp"`

	// Order вид текущего приказа ("MOVE", "GATHER", ...), пусто - стоит.
	Order string `json:"order,omitempty"`

	// Stance боевая стойка (только у юнитов с атакой).
	Stance string `json:"stance,omitempty"`

	// Carry переносимый ресурс рабочего или остаток залежи.
	Carry *CarryView `json:"carry,omitempty"`

	// Building прогресс стройки (только у зданий).
	Building *BuildingView `json:"building,omitempty"`

	// Garrison число юнитов внутри (только у гарнизонных зданий).
	Garrison int `json:"garrison,omitempty"`
}

// CarryView показывает груз рабочего или содержимое залежи.
type CarryView struct {
	Resource string  `json:"resource"`
	Amount   float64 `json:"amount"`
}

// BuildingView показывает прогресс стройки.
type BuildingView struct {
	// Completed доля готовности, 0..1.
	Completed float64 `json:"completed"`
}

// PlayerView это DTO для игрока: склад и счет.
type PlayerView struct {
	ID           uint8   `json:"id"`
	Name         string  `json:"name"`
	Color        uint8   `json:"color"`
	Civilisation string  `json:"civilisation,omitempty"`
	IsAI         bool    `json:"isAI"`
	Eliminated   bool    `json:"eliminated,omitempty"`
	Wood         float64 `json:"wood"`
	Food         float64 `json:"food"`
	Gold         float64 `json:"gold"`
	Stone        float64 `json:"stone"`
	Units        int     `json:"units"`
	Kills        int     `json:"kills"`
	Losses       int     `json:"losses"`
}

// LogEntry представляет одну запись в ленте событий матча.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, ECONOMY, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token сессионный токен. Пуст только в первом сообщении "JOIN".
	Token string `json:"token,omitempty"`

	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// JoinPayload - первое сообщение клиента: имя и (опционально) прежний
// токен для переподключения.
type JoinPayload struct {
	Name  string `json:"name"`
	Token string `json:"token,omitempty"`
}

// MovePayload приказывает юнитам идти в точку.
type MovePayload struct {
	UnitIDs []string `json:"unitIds"`
	X       float64  `json:"x"`
	Y       float64  `json:"y"`
}

// TargetPayload используется для действий, нацеленных на другой юнит
// (ATTACK, GATHER, GARRISON).
type TargetPayload struct {
	UnitIDs  []string `json:"unitIds"`
	TargetID string   `json:"targetId"`
}

// StancePayload переключает боевую стойку юнитов.
type StancePayload struct {
	UnitIDs []string `json:"unitIds"`
	Stance  string   `json:"stance"` // PASSIVE, AGGRESSIVE, DEFENSIVE, STAND_GROUND
}

// BuildPayload закладывает фундамент здания и отправляет строителей.
// Вторая форма - продолжить существующую стройку: вместо типа и точки
// передается TargetID фундамента.
type BuildPayload struct {
	UnitIDs []string `json:"unitIds"`
	Type    string   `json:"type,omitempty"` // Имя типа здания
	X       float64  `json:"x,omitempty"`
	Y       float64  `json:"y,omitempty"`

	// TargetID фундамент, к которому присоединяются строители.
	TargetID string `json:"targetId,omitempty"`
}

// TrainPayload заказывает юнита в здании.
type TrainPayload struct {
	BuildingID string `json:"buildingId"`
	Type       string `json:"type"` // Имя типа юнита
}

// RallyPayload ставит точку сбора здания.
type RallyPayload struct {
	BuildingID string  `json:"buildingId"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
}

// HostPayload используется для действий над зданием-хозяином (UNGARRISON).
type HostPayload struct {
	HostID string `json:"hostId"`
}

// UnitsPayload - просто список юнитов (STOP).
type UnitsPayload struct {
	UnitIDs []string `json:"unitIds"`
}

// CheatPayload - чит-код в духе классических стратегий.
type CheatPayload struct {
	Code string `json:"code"`
}
