package domain

import (
	"fmt"
	"strings"

	"github.com/fidget77/openage/internal/core/types/enums"
)

// ResourceBundle - количество каждого ресурса: склад игрока, цена типа
// юнита, ставки добычи рабочего.
//
// Массив, не map: копируется присваиванием, нулевое значение - пустой
// склад. Это важно для Copy атрибутов и для цен типов - случайного
// алиасинга между двумя бандлами не бывает.
type ResourceBundle [enums.ResourceCount]float64

// Get возвращает количество ресурса res.
func (b ResourceBundle) Get(res enums.GameResource) float64 {
	return b[res]
}

// Set выставляет количество ресурса res.
func (b *ResourceBundle) Set(res enums.GameResource, amount float64) {
	b[res] = amount
}

// Add прибавляет other покомпонентно.
func (b *ResourceBundle) Add(other ResourceBundle) {
	for i := range b {
		b[i] += other[i]
	}
}

// Deposit прибавляет amount ресурса res.
func (b *ResourceBundle) Deposit(res enums.GameResource, amount float64) {
	b[res] += amount
}

// HasAtLeast сообщает, хватает ли b на покрытие cost.
func (b ResourceBundle) HasAtLeast(cost ResourceBundle) bool {
	for i := range b {
		if b[i] < cost[i] {
			return false
		}
	}
	return true
}

// Sub списывает cost покомпонентно. Возвращает false и ничего не
// меняет, если хоть одного ресурса не хватает.
func (b *ResourceBundle) Sub(cost ResourceBundle) bool {
	if !b.HasAtLeast(cost) {
		return false
	}
	for i := range b {
		b[i] -= cost[i]
	}
	return true
}

// Sum возвращает суммарный объём по всем ресурсам.
func (b ResourceBundle) Sum() float64 {
	var total float64
	for _, v := range b {
		total += v
	}
	return total
}

// IsZero сообщает, пуст ли бандл.
func (b ResourceBundle) IsZero() bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (b ResourceBundle) String() string {
	parts := make([]string, 0, len(b))
	for i, v := range b {
		if v == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%.1f", enums.GameResource(i), v))
	}
	if len(parts) == 0 {
		return "empty"
	}
	return strings.Join(parts, " ")
}
