package enums

// GraphicType — тип анимации юнита.
//
// Описывает действие, для которого выбирается спрайт: клиент получает
// из графического набора типа юнита id спрайта по этому ключу.
type GraphicType uint8

const (
	GraphicConstruct GraphicType = iota
	GraphicShadow
	GraphicDecay
	GraphicDying
	GraphicStanding
	GraphicWalking
	GraphicCarrying
	GraphicAttack
	GraphicHeal
	GraphicWork
)
