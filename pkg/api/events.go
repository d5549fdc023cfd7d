package api

// UnitEventPayload - груз внутренних событий симуляции, привязанных к
// одному юниту (достройка, выпуск из очереди, исчерпание залежи, снос).
// Гоняется через json, как и команды игроков: обработчики событий и
// обработчики команд разбирают payload одним механизмом.
type UnitEventPayload struct {
	UnitID string `json:"unitId"`
	Name   string `json:"name,omitempty"`
}
