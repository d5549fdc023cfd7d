package domain

import "encoding/json"

// RecordAction - одна команда игрока в записи матча.
type RecordAction struct {
	Tick    int             `json:"tick"`
	Player  PlayerID        `json:"player"`  // Кто сделал
	Action  ActionType      `json:"action"`  // Что сделал
	Payload json.RawMessage `json:"payload"` // С какими параметрами
}

// RecordSession - полная запись матча. Зерна и списка команд достаточно
// для детерминированного повтора: мир и рандом восстанавливаются из
// Seed, команды накатываются на те же тики.
type RecordSession struct {
	MapWidth  int            `json:"mapWidth"`
	MapHeight int            `json:"mapHeight"`
	Seed      int64          `json:"seed"`
	Shard     uint8          `json:"shard"`
	Timestamp int64          `json:"timestamp"`
	Players   []Player       `json:"players,omitempty"`
	Actions   []RecordAction `json:"actions"`
}
