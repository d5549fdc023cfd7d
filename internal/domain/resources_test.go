package domain

import (
	"testing"

	"github.com/fidget77/openage/internal/core/types/enums"
)

func TestResourceBundle_SpendFlow(t *testing.T) {
	var stock ResourceBundle
	stock.Set(enums.ResourceWood, 100)
	stock.Set(enums.ResourceFood, 50)

	var cost ResourceBundle
	cost.Set(enums.ResourceWood, 60)

	if !stock.HasAtLeast(cost) {
		t.Fatal("HasAtLeast = false with sufficient stock")
	}
	if !stock.Sub(cost) {
		t.Fatal("Sub failed with sufficient stock")
	}
	if got := stock.Get(enums.ResourceWood); got != 40 {
		t.Errorf("wood after spend = %v, want 40", got)
	}

	// Недостача: склад не трогаем
	var tooMuch ResourceBundle
	tooMuch.Set(enums.ResourceFood, 500)
	if stock.Sub(tooMuch) {
		t.Fatal("Sub succeeded beyond the stock")
	}
	if got := stock.Get(enums.ResourceFood); got != 50 {
		t.Errorf("failed Sub must leave stock intact, food = %v", got)
	}
}

func TestResourceBundle_ValueSemantics(t *testing.T) {
	var a ResourceBundle
	a.Set(enums.ResourceGold, 10)

	b := a // массив: копия по значению
	b.Set(enums.ResourceGold, 99)

	if a.Get(enums.ResourceGold) != 10 {
		t.Error("bundles alias: assignment must copy")
	}
}

func TestResourceBundle_AddDeposit(t *testing.T) {
	var a, b ResourceBundle
	a.Set(enums.ResourceWood, 5)
	b.Set(enums.ResourceWood, 7)
	b.Set(enums.ResourceStone, 3)

	a.Add(b)
	if a.Get(enums.ResourceWood) != 12 || a.Get(enums.ResourceStone) != 3 {
		t.Errorf("Add result = %s", a)
	}

	a.Deposit(enums.ResourceGold, 2.5)
	if a.Get(enums.ResourceGold) != 2.5 {
		t.Errorf("Deposit result = %v", a.Get(enums.ResourceGold))
	}

	if a.Sum() != 12+3+2.5 {
		t.Errorf("Sum = %v", a.Sum())
	}
	if a.IsZero() {
		t.Error("IsZero on non-empty bundle")
	}
	if !(ResourceBundle{}).IsZero() {
		t.Error("IsZero on empty bundle = false")
	}
}

func TestPlayer_SpendDeposit(t *testing.T) {
	p := &Player{ID: 1, Name: "red"}
	p.Deposit(enums.ResourceFood, 80)

	var cost ResourceBundle
	cost.Set(enums.ResourceFood, 50)

	if !p.CanAfford(cost) {
		t.Fatal("CanAfford = false with sufficient stockpile")
	}
	if !p.Spend(cost) {
		t.Fatal("Spend failed")
	}
	if p.Stockpile.Get(enums.ResourceFood) != 30 {
		t.Errorf("food after spend = %v", p.Stockpile.Get(enums.ResourceFood))
	}
	if p.Spend(cost) {
		t.Error("Spend succeeded beyond the stockpile")
	}
}

func TestPlayer_Relations(t *testing.T) {
	gaia := &Player{ID: GaiaID}
	red := &Player{ID: 1}
	blue := &Player{ID: 2}

	if !red.IsEnemy(blue) || !blue.IsEnemy(red) {
		t.Error("two belligerents must be enemies")
	}
	if red.IsEnemy(red) {
		t.Error("player is own enemy")
	}
	if red.IsEnemy(gaia) || gaia.IsEnemy(red) {
		t.Error("gaia fights nobody")
	}
	if red.IsEnemy(nil) {
		t.Error("nil player treated as enemy")
	}
	if !gaia.IsGaia() || red.IsGaia() {
		t.Error("IsGaia misreports")
	}
}
