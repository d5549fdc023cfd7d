package domain

// OwnerAttr привязывает юнит к игроку-владельцу.
// Запись shared: все юниты типа, порождённые для игрока, разделяют её.
type OwnerAttr struct {
	Player *Player
}

func (a *OwnerAttr) Type() AttrType { return AttrOwner }

// Copy копирует ссылку на игрока, не самого игрока.
func (a *OwnerAttr) Copy() Attribute {
	c := *a
	return &c
}

// HitPointsAttr - максимум здоровья и высота полоски HP над спрайтом.
// Запись shared: максимум общий для типа, текущее здоровье - в DamagedAttr.
type HitPointsAttr struct {
	HP        uint32  `json:"hp"`
	BarHeight float64 `json:"barHeight"`
}

func (a *HitPointsAttr) Type() AttrType { return AttrHitPoints }

func (a *HitPointsAttr) Copy() Attribute {
	c := *a
	return &c
}

// DamagedAttr - текущее здоровье конкретного юнита.
type DamagedAttr struct {
	HP uint32 `json:"hp"`
}

func (a *DamagedAttr) Type() AttrType { return AttrDamaged }

func (a *DamagedAttr) Copy() Attribute {
	c := *a
	return &c
}
