package domain

import (
	"github.com/fidget77/openage/internal/core/types/enums"
)

// DropsiteAttr - перечень ресурсов, которые здание принимает на склад.
// Запись shared: список задаётся типом здания.
type DropsiteAttr struct {
	Accepts []enums.GameResource
}

func (a *DropsiteAttr) Type() AttrType { return AttrDropsite }

func (a *DropsiteAttr) Copy() Attribute {
	c := *a
	if a.Accepts != nil {
		c.Accepts = make([]enums.GameResource, len(a.Accepts))
		copy(c.Accepts, a.Accepts)
	}
	return &c
}

// Accepting сообщает, принимает ли склад ресурс res.
// Пустой (и nil) список не принимает ничего.
func (a *DropsiteAttr) Accepting(res enums.GameResource) bool {
	for _, r := range a.Accepts {
		if r == res {
			return true
		}
	}
	return false
}

// ResourceAttr - залежь ресурса (дерево, золотая жила, туша).
// Запись unshared: остаток у каждой залежи свой.
type ResourceAttr struct {
	Resource enums.GameResource
	Amount   float64
}

// NewResourceAttr создаёт залежь указанного вида.
func NewResourceAttr(res enums.GameResource, amount float64) *ResourceAttr {
	return &ResourceAttr{Resource: res, Amount: amount}
}

// NewFoodSpot создаёт залежь еды - исторический вид по умолчанию
// (туши, кусты; вид не выводим из нулевого значения enum).
func NewFoodSpot(amount float64) *ResourceAttr {
	return NewResourceAttr(enums.ResourceFood, amount)
}

func (a *ResourceAttr) Type() AttrType { return AttrResource }

func (a *ResourceAttr) Copy() Attribute {
	c := *a
	return &c
}

// WorkerAttr - рабочий: сколько несёт за раз и с какой скоростью
// добывает каждый ресурс. Запись shared.
type WorkerAttr struct {
	Capacity float64
	// GatherRate - единиц ресурса за тик, по каждому виду
	GatherRate ResourceBundle
}

func (a *WorkerAttr) Type() AttrType { return AttrWorker }

// Copy обходится присваиванием: ResourceBundle - массив, копируется
// по значению.
func (a *WorkerAttr) Copy() Attribute {
	c := *a
	return &c
}
