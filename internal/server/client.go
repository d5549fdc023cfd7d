package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/fidget77/openage/internal/engine"
	"github.com/fidget77/openage/pkg/api"
	"github.com/fidget77/openage/pkg/logger"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и GameService. Внутрь движка он
// не заглядывает: команды уходят через ProcessCommand, снимки приходят
// через личный канал хаба.
type Client struct {
	Game  *engine.GameService
	Conn  *websocket.Conn
	Send  chan api.ServerResponse
	Token string
}

func NewClient(game *engine.GameService, conn *websocket.Conn) *Client {
	return &Client{
		Game: game,
		Conn: conn,
		Send: make(chan api.ServerResponse, 256),
	}
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		if c.Token != "" {
			c.Game.Hub.Unregister(c.Token)
			logger.Log.Info("Client disconnected")
		}
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Warn("failed to close websocket connection")
		}
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// 1. HANDSHAKE (JOIN)
	// Первое сообщение - всегда JOIN: имя и, при переподключении,
	// прежний токен. Все остальное до входа игнорируется.
	var joinCmd api.ClientCommand
	if err := c.Conn.ReadJSON(&joinCmd); err != nil {
		logger.Log.Warn("Handshake failed")
		return
	}
	if !strings.EqualFold(joinCmd.Action, "JOIN") {
		logger.Log.WithField("action", joinCmd.Action).Warn("First message is not JOIN, dropping connection")
		return
	}

	var join api.JoinPayload
	if len(joinCmd.Payload) > 0 {
		if err := json.Unmarshal(joinCmd.Payload, &join); err != nil {
			logger.Log.WithError(err).Warn("Malformed JOIN payload")
			return
		}
	}
	if join.Name == "" {
		join.Name = "Безымянный"
	}

	// 2. ПОСАДКА В МАТЧ
	token, player, err := c.Game.JoinPlayer(join.Name, join.Token)
	if err != nil {
		logger.Log.WithError(err).Warn("Join refused")
		return
	}
	c.Token = token

	logger.Log.WithFields(logrus.Fields{
		"player": player.Name,
		"id":     player.ID,
	}).Info("Client logged in")

	// 3. ПОДПИСКА НА ОБНОВЛЕНИЯ
	gameUpdates := c.Game.Hub.Register(token)

	// Пересылка снимков из хаба в writePump
	go func() {
		for msg := range gameUpdates {
			c.Send <- msg
		}
		close(c.Send)
	}()

	// INIT триггерит персональный WELCOME с картой и токеном
	c.Game.ProcessCommand(api.ClientCommand{Action: "INIT", Token: token})

	// 4. ЦИКЛ ЧТЕНИЯ КОМАНД
	for {
		var cmd api.ClientCommand
		err := c.Conn.ReadJSON(&cmd)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Errorf("WS Error: %v", err)
			}
			break
		}
		// Токен из рукопожатия, что бы клиент ни прислал
		cmd.Token = token
		c.Game.ProcessCommand(cmd)
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Warn("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
