package domain

import "encoding/json"

// InternalCommand - команда игрока, уже прошедшая разбор на границе.
// Использует ActionType вместо строки: быстро и безопасно.
type InternalCommand struct {
	Action ActionType
	// Token - сессионный токен отправителя (маппится в игрока)
	Token   string
	Payload json.RawMessage // Сырые данные (парсятся хендлером)
}
