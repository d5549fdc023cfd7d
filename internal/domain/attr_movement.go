package domain

import (
	"github.com/fidget77/openage/internal/core/types"
)

// SpeedAttr - базовая скорость перемещения (phys-единиц за тик).
// Запись shared: скорость определяется типом юнита.
type SpeedAttr struct {
	Speed types.Phys
}

func (a *SpeedAttr) Type() AttrType { return AttrSpeed }

func (a *SpeedAttr) Copy() Attribute {
	c := *a
	return &c
}

// DirectionAttr - текущий вектор движения юнита.
// Запись unshared: каждый юнит движется по-своему. Вектор также задаёт
// ориентацию спрайта, поэтому хранится и у стоящих юнитов.
type DirectionAttr struct {
	Dir types.Phys3Delta
}

func (a *DirectionAttr) Type() AttrType { return AttrDirection }

func (a *DirectionAttr) Copy() Attribute {
	c := *a
	return &c
}

// ProjectileAttr - состояние летящего снаряда: крутизна дуги, слабая
// ссылка на запустившего и флаг "уже в полёте". Запись unshared.
//
// Launcher может протухнуть, если запустивший погиб до попадания -
// копирование сохраняет ссылку как есть, валидность проверяет читатель.
type ProjectileAttr struct {
	Arc      float64
	Launcher UnitReference
	Launched bool
}

func (a *ProjectileAttr) Type() AttrType { return AttrProjectile }

func (a *ProjectileAttr) Copy() Attribute {
	c := *a
	return &c
}
