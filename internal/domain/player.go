package domain

import (
	"github.com/fidget77/openage/internal/core/types/enums"
)

// PlayerID - порядковый номер игрока в матче (0 - гайя).
type PlayerID uint8

// GaiaID - нейтральный "игрок": деревья, залежи, дикие животные.
const GaiaID PlayerID = 0

// Player - участник матча. На игрока ссылаются owner-атрибуты его
// юнитов; сам игрок владеет только складом и счётом, юнитами владеет
// UnitContainer.
type Player struct {
	ID           PlayerID `json:"id"`
	Name         string   `json:"name"`
	Color        uint8    `json:"color"`
	Civilisation string   `json:"civilisation"`
	// SessionToken - токен подключённого клиента (пуст у AI и гайи)
	SessionToken string `json:"-"`
	IsAI         bool   `json:"isAI"`

	Stockpile ResourceBundle `json:"stockpile"`

	// Счёт. Units - живые юниты игрока, поддерживается контейнером.
	Units  int `json:"units"`
	Kills  int `json:"kills"`
	Losses int `json:"losses"`
}

// Deposit зачисляет amount ресурса res на склад.
func (p *Player) Deposit(res enums.GameResource, amount float64) {
	p.Stockpile.Deposit(res, amount)
}

// CanAfford сообщает, хватает ли склада на цену cost.
func (p *Player) CanAfford(cost ResourceBundle) bool {
	return p.Stockpile.HasAtLeast(cost)
}

// Spend списывает cost со склада. false - не хватило, склад не тронут.
func (p *Player) Spend(cost ResourceBundle) bool {
	return p.Stockpile.Sub(cost)
}

// IsGaia сообщает, нейтрален ли игрок.
func (p *Player) IsGaia() bool {
	return p.ID == GaiaID
}

// IsEnemy сообщает, враждебен ли other. Дипломатии нет: все, кроме
// гайи и самого себя, враги.
func (p *Player) IsEnemy(other *Player) bool {
	if other == nil || other.ID == p.ID {
		return false
	}
	return !p.IsGaia() && !other.IsGaia()
}
