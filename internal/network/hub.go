package network

import (
	"sync"

	"github.com/fidget77/openage/pkg/api"
)

// Broadcaster занимается только рассылкой сообщений подписчикам.
// Ключ - сессионный токен клиента; это единственная структура,
// которую трогают из нескольких горутин, поэтому она под мьютексом.
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: токен сессии -> личный канал
	subscribers map[string]chan api.ServerResponse
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerResponse),
	}
}

// Register создает личный канал для клиента (игрока или бота)
func (b *Broadcaster) Register(token string) chan api.ServerResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[token]; ok {
		close(old)
	}

	ch := make(chan api.ServerResponse, 100)
	b.subscribers[token] = ch
	return ch
}

// Unregister удаляет подписчика
func (b *Broadcaster) Unregister(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[token]; ok {
		close(ch)
		delete(b.subscribers, token)
	}
}

// SendTo отправляет сообщение конкретному токену (Unicast)
func (b *Broadcaster) SendTo(token string, msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[token]; ok {
		select {
		case ch <- msg:
		default:
			// Канал полон: клиент не успевает, снимок можно уронить -
			// следующий снимок заменит этот целиком
		}
	}
}

// Broadcast отправляет всем (нужен для зрителей/игроков)
func (b *Broadcaster) Broadcast(msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
}

// HasSubscriber проверяет, подключен ли клиент с таким токеном.
// Используется, чтобы не строить снимки для отвалившихся игроков.
func (b *Broadcaster) HasSubscriber(token string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[token]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
