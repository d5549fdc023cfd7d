package engine

import (
	"container/heap"

	"github.com/fidget77/openage/internal/core/types"
	"github.com/fidget77/openage/internal/domain"
)

// ProductionItem - один заказ на обучение юнита в здании
type ProductionItem struct {
	Building domain.UnitReference // Здание-производитель
	Type     *domain.UnitType     // Кого обучаем
	Player   *domain.Player       // Заказчик (для возврата цены при отмене)

	ReadyTick int64 // Приоритет. Чем меньше, тем раньше выход.
	Index     int   // Индекс в куче (нужен для update)
}

// ProductionQueue реализует heap.Interface и хранит ProductionItems
type ProductionQueue []*ProductionItem

func (pq ProductionQueue) Len() int { return len(pq) }

func (pq ProductionQueue) Less(i, j int) bool {
	// Мы хотим MinHeap, поэтому возвращаем true, если i < j
	return pq[i].ReadyTick < pq[j].ReadyTick
}

func (pq ProductionQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *ProductionQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*ProductionItem)
	item.Index = n
	*pq = append(*pq, item)
}

func (pq *ProductionQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // избегаем утечки памяти
	item.Index = -1 // для безопасности
	*pq = old[0 : n-1]
	return item
}

// ProductionManager владеет общей очередью обучения скирмиша.
type ProductionManager struct {
	queue ProductionQueue
}

func NewProductionManager() *ProductionManager {
	pm := &ProductionManager{queue: make(ProductionQueue, 0)}
	heap.Init(&pm.queue)
	return pm
}

// Enqueue ставит заказ: здание building выпустит юнита типа t на тике
// readyTick. Цена уже списана вызывающим.
func (pm *ProductionManager) Enqueue(building domain.UnitReference, t *domain.UnitType, p *domain.Player, readyTick int64) {
	heap.Push(&pm.queue, &ProductionItem{
		Building:  building,
		Type:      t,
		Player:    p,
		ReadyTick: readyTick,
	})
}

// PopReady снимает с очереди все заказы, созревшие к тику tick,
// в порядке созревания.
func (pm *ProductionManager) PopReady(tick int64) []*ProductionItem {
	var ready []*ProductionItem
	for pm.queue.Len() > 0 && pm.queue[0].ReadyTick <= tick {
		ready = append(ready, heap.Pop(&pm.queue).(*ProductionItem))
	}
	return ready
}

// CancelFor снимает все заказы здания (оно погибло). Возвращает снятые
// заказы - вызывающий возвращает игрокам ресурсы.
func (pm *ProductionManager) CancelFor(buildingID types.UnitID) []*ProductionItem {
	var cancelled []*ProductionItem
	for i := 0; i < pm.queue.Len(); {
		if pm.queue[i].Building.ID() == buildingID {
			cancelled = append(cancelled, heap.Remove(&pm.queue, i).(*ProductionItem))
			// heap.Remove переставил хвост на место i - индекс не двигаем
			continue
		}
		i++
	}
	return cancelled
}

// Pending возвращает число заказов в очереди здания.
func (pm *ProductionManager) Pending(buildingID types.UnitID) int {
	n := 0
	for _, item := range pm.queue {
		if item.Building.ID() == buildingID {
			n++
		}
	}
	return n
}

func (pm *ProductionManager) Len() int {
	return pm.queue.Len()
}

// DebugDump возвращает снимок очереди для отладки
func (pm *ProductionManager) DebugDump() []map[string]interface{} {
	// Инициализируем как пустой слайс, а не nil. Тогда в JSON это будет "[]", а не "null"
	result := make([]map[string]interface{}, 0)

	for _, item := range pm.queue {
		result = append(result, map[string]interface{}{
			"building":   item.Building.ID().String(),
			"type":       item.Type.Name,
			"player":     item.Player.ID,
			"ready_tick": item.ReadyTick,
			"index":      item.Index,
		})
	}
	return result
}
