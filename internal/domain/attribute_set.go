package domain

import (
	"errors"
	"fmt"
	"sort"
)

// ErrMissingAttribute возвращается типизированным доступом GetAttr, когда
// запрошенного вида в наборе нет. Для вызывающего это нарушение контракта
// (он ошибочно заявил наличие), а не штатная ситуация: проверяемое
// отсутствие выражается через Lookup/Has, без ошибок.
var ErrMissingAttribute = errors.New("missing attribute")

// AttributeSet - набор записей-характеристик: не более одной записи
// каждого вида. Набор монопольно владеет своими записями; записи никогда
// не разделяются по ссылке между двумя наборами - любой перенос между
// наборами идёт через глубокую копию (AddCopies*).
//
// Нулевое значение готово к использованию. Набор не потокобезопасен:
// мутации строго из симуляционной горутины владельца (см. engine).
type AttributeSet struct {
	attrs map[AttrType]Attribute
}

// NewAttributeSet создаёт пустой набор (для шаблона типа юнита).
func NewAttributeSet() *AttributeSet {
	return &AttributeSet{attrs: make(map[AttrType]Attribute)}
}

// Add вставляет запись или заменяет прежнюю запись того же вида.
// Всегда успешна; прежняя запись отбрасывается целиком.
func (s *AttributeSet) Add(a Attribute) {
	if s.attrs == nil {
		s.attrs = make(map[AttrType]Attribute)
	}
	s.attrs[a.Type()] = a
}

// Remove удаляет запись вида t. Возвращает true, если запись была.
func (s *AttributeSet) Remove(t AttrType) bool {
	if _, ok := s.attrs[t]; !ok {
		return false
	}
	delete(s.attrs, t)
	return true
}

// Has сообщает, есть ли в наборе запись вида t.
func (s *AttributeSet) Has(t AttrType) bool {
	_, ok := s.attrs[t]
	return ok
}

// Lookup возвращает запись вида t. Отсутствие - не ошибка: второй
// результат false.
func (s *AttributeSet) Lookup(t AttrType) (Attribute, bool) {
	a, ok := s.attrs[t]
	return a, ok
}

// Len возвращает число записей в наборе.
func (s *AttributeSet) Len() int {
	return len(s.attrs)
}

// Types возвращает виды записей набора в возрастающем порядке.
// Для снапшотов и логов: обход map недетерминирован.
func (s *AttributeSet) Types() []AttrType {
	out := make([]AttrType, 0, len(s.attrs))
	for t := range s.attrs {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AddCopies дублирует каждую запись src в s (замещая одноимённые виды).
// Используется при спавне "расходящегося" юнита: полная независимая
// копия шаблона, дальше экземпляр живёт своей жизнью.
func (s *AttributeSet) AddCopies(src *AttributeSet) {
	for _, a := range src.attrs {
		s.Add(a.Copy())
	}
}

// AddCopiesFiltered дублирует записи src с фильтром по категории:
// запись копируется, если (shared и она shared) или (unshared и она
// unshared). Обычный спавн берёт только unshared-базу (свежие текущие
// HP и т.п.), а shared-данные читает через тип юнита.
func (s *AttributeSet) AddCopiesFiltered(src *AttributeSet, shared, unshared bool) {
	for t, a := range src.attrs {
		switch t.Category() {
		case CategoryShared:
			if !shared {
				continue
			}
		case CategoryUnshared:
			if !unshared {
				continue
			}
		}
		s.Add(a.Copy())
	}
}

// attrPtr связывает тип схемы T с его указательной реализацией Attribute.
// Схемы реализуют интерфейс на указателе, поэтому PT = *T.
type attrPtr[T any] interface {
	*T
	Attribute
}

// GetAttr - типизированный доступ к записи набора:
//
//	hp, err := domain.GetAttr[domain.HitPointsAttr](set)
//
// Вид определяется по типу схемы, результат уже конкретного типа -
// вызывающий работает с полями напрямую, без приведения. Если записи
// нет - ErrMissingAttribute, обёрнутая именем вида.
func GetAttr[T any, PT attrPtr[T]](s *AttributeSet) (PT, error) {
	var probe T
	t := PT(&probe).Type()
	a, ok := s.Lookup(t)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingAttribute, t)
	}
	return a.(PT), nil
}
