package domain

import (
	"github.com/fidget77/openage/internal/core/types"
	"github.com/fidget77/openage/internal/core/types/enums"
)

// UnitContainer монопольно владеет всеми юнитами матча. Внешний код
// держит types.UnitID или UnitReference, никогда не голый *Unit с
// неограниченным временем жизни.
//
// Слоты переиспользуются: при уничтожении юнита поколение слота растёт,
// и все выданные ранее ID этого слота перестают резолвиться. Это и есть
// механика слабых ссылок - протухший ID просто не находит юнита.
//
// Не потокобезопасен: контейнером владеет горутина скирмиша.
type UnitContainer struct {
	shardID uint8
	slots   []unitSlot
	free    []uint32
	count   int
}

type unitSlot struct {
	unit *Unit
	gen  uint16
}

// NewUnitContainer создаёт пустой контейнер. shardID зашивается в ID
// всех порождённых юнитов.
func NewUnitContainer(shardID uint8) *UnitContainer {
	return &UnitContainer{shardID: shardID}
}

// NewUnit порождает пустой юнит указанного рода и регистрирует его.
// Атрибуты наполняет вызывающий (обычно UnitType.Initialise).
func (c *UnitContainer) NewUnit(kind enums.UnitKind) *Unit {
	var idx uint32
	if n := len(c.free); n > 0 {
		idx = c.free[n-1]
		c.free = c.free[:n-1]
	} else {
		idx = uint32(len(c.slots))
		// Поколение живого слота всегда >= 1, поэтому ID юнита
		// никогда не совпадает с NilUnitID
		c.slots = append(c.slots, unitSlot{gen: 1})
	}

	s := &c.slots[idx]
	u := &Unit{ID: types.PackUnitID(c.shardID, uint8(kind), s.gen, idx)}
	s.unit = u
	c.count++
	return u
}

// Get возвращает живой юнит по ID. false - юнит уничтожен, ID протух
// или чужой.
func (c *UnitContainer) Get(id types.UnitID) (*Unit, bool) {
	if id.IsNil() || id.Shard() != c.shardID {
		return nil, false
	}
	idx := id.Index()
	if idx >= uint32(len(c.slots)) {
		return nil, false
	}
	s := &c.slots[idx]
	if s.unit == nil || s.gen != id.Generation() {
		return nil, false
	}
	return s.unit, true
}

// Valid сообщает, резолвится ли ID в живой юнит.
func (c *UnitContainer) Valid(id types.UnitID) bool {
	_, ok := c.Get(id)
	return ok
}

// Destroy уничтожает юнит: помечает мёртвым, освобождает слот и
// поднимает поколение - все выданные ссылки протухают немедленно.
// Возвращает false, если ID уже не резолвится.
func (c *UnitContainer) Destroy(id types.UnitID) bool {
	u, ok := c.Get(id)
	if !ok {
		return false
	}
	u.Dead = true

	idx := id.Index()
	s := &c.slots[idx]
	s.unit = nil
	s.gen++
	if s.gen == 0 { // переполнение uint16: ноль зарезервирован
		s.gen = 1
	}
	c.free = append(c.free, idx)
	c.count--
	return true
}

// Len возвращает число живых юнитов.
func (c *UnitContainer) Len() int {
	return c.count
}

// All возвращает живые юниты в порядке индексов слотов.
// Порядок детерминирован - симуляция обходит юниты только так.
func (c *UnitContainer) All() []*Unit {
	out := make([]*Unit, 0, c.count)
	for i := range c.slots {
		if u := c.slots[i].unit; u != nil {
			out = append(out, u)
		}
	}
	return out
}

// Ref выдаёт слабую ссылку на юнит с данным ID.
func (c *UnitContainer) Ref(id types.UnitID) UnitReference {
	return UnitReference{container: c, id: id}
}

// UnitReference - слабая ссылка: находит юнит, пока тот жив, и не
// продлевает ему жизнь. Нулевое значение - вечно протухшая ссылка.
//
// Читатель обязан проверять Valid/Get перед использованием: схемы
// (снаряд, гарнизон) хранят ссылку как есть и сами её не чистят.
type UnitReference struct {
	container *UnitContainer
	id        types.UnitID
}

// ID возвращает идентификатор, на который указывает ссылка.
func (r UnitReference) ID() types.UnitID {
	return r.id
}

// Valid сообщает, жив ли ещё юнит.
func (r UnitReference) Valid() bool {
	return r.container != nil && r.container.Valid(r.id)
}

// Get возвращает юнит, если тот жив.
func (r UnitReference) Get() (*Unit, bool) {
	if r.container == nil {
		return nil, false
	}
	return r.container.Get(r.id)
}
