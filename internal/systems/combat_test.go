package systems

import (
	"testing"

	"github.com/fidget77/openage/internal/domain"
)

func TestApplyAttack(t *testing.T) {
	w := domain.NewWorld(10, 10)
	c := domain.NewUnitContainer(1)
	milType := newMilitiaType()

	attacker := spawnAt(c, w, milType, 4, 4)
	target := spawnAt(c, w, milType, 5, 4)

	// Урон 4 (melee) против брони 1 (melee) = 3
	res := ApplyAttack(attacker, target)
	if res.OutOfRange {
		t.Fatal("adjacent target reported out of range")
	}
	if res.Damage != 3 {
		t.Errorf("damage = %d, want 3 (4 melee - 1 armor)", res.Damage)
	}
	if target.CurrentHP() != 37 {
		t.Errorf("target HP = %d, want 37", target.CurrentHP())
	}
	if res.Died {
		t.Error("target died from a scratch")
	}

	// Шаблон не пострадал: боль юнита не общая
	tmplHP, _ := domain.GetAttr[domain.DamagedAttr](&milType.DefaultAttributes)
	if tmplHP != nil {
		t.Fatal("template grew a damaged record")
	}

	// Добивание
	for i := 0; i < 20; i++ {
		res = ApplyAttack(attacker, target)
		if res.Died {
			break
		}
	}
	if !res.Died || target.CurrentHP() != 0 {
		t.Errorf("target not finished: died=%v hp=%d", res.Died, target.CurrentHP())
	}

	// По мёртвому не бьём
	res = ApplyAttack(attacker, target)
	if res.Damage != 0 {
		t.Error("attack on a corpse dealt damage")
	}
}

func TestApplyAttack_MinDamageFloor(t *testing.T) {
	w := domain.NewWorld(10, 10)
	c := domain.NewUnitContainer(1)

	milType := newMilitiaType()
	// Цель бронирована сильнее любого входящего урона
	tank := &domain.UnitType{ID: 90, Name: "tank"}
	tank.DefaultAttributes.Add(&domain.HitPointsAttr{HP: 50})
	tank.DefaultAttributes.Add(&domain.ArmorAttr{Armor: domain.TypeAmountMap{domain.ArmorClassMelee: 99}})

	attacker := spawnAt(c, w, milType, 4, 4)
	target := spawnAt(c, w, tank, 4, 5)

	res := ApplyAttack(attacker, target)
	if res.Damage != domain.MinDamage {
		t.Errorf("damage = %d, want the min floor %d", res.Damage, domain.MinDamage)
	}
	if target.CurrentHP() != 50-domain.MinDamage {
		t.Errorf("target HP = %d", target.CurrentHP())
	}
}

func TestApplyAttack_Range(t *testing.T) {
	w := domain.NewWorld(20, 20)
	c := domain.NewUnitContainer(1)
	milType := newMilitiaType()

	attacker := spawnAt(c, w, milType, 0, 0)
	target := spawnAt(c, w, milType, 9, 9)

	res := ApplyAttack(attacker, target)
	if !res.OutOfRange {
		t.Error("distant target must be out of melee range")
	}
	if target.CurrentHP() != 40 {
		t.Error("out-of-range attack mutated the target")
	}
}

func TestApplyAttack_NoAttackAttr(t *testing.T) {
	w := domain.NewWorld(10, 10)
	c := domain.NewUnitContainer(1)

	vilType := newVillagerType() // у крестьянина нет attack-записи
	pacifist := spawnAt(c, w, vilType, 1, 1)
	target := spawnAt(c, w, newMilitiaType(), 1, 2)

	res := ApplyAttack(pacifist, target)
	if res.Damage != 0 || res.Died {
		t.Error("unit without attack attribute dealt damage")
	}
}

func TestShouldEngage(t *testing.T) {
	tests := []struct {
		stance   domain.AttackStance
		provoked bool
		want     bool
	}{
		{domain.StanceAggressive, false, true},
		{domain.StanceAggressive, true, true},
		{domain.StanceDefensive, false, false},
		{domain.StanceDefensive, true, true},
		{domain.StanceStandGround, false, false},
		{domain.StanceStandGround, true, true},
		{domain.StancePassive, false, false},
		{domain.StancePassive, true, false},
	}

	for _, tt := range tests {
		if got := ShouldEngage(tt.stance, tt.provoked); got != tt.want {
			t.Errorf("ShouldEngage(%s, provoked=%v) = %v, want %v", tt.stance, tt.provoked, got, tt.want)
		}
	}
}

func TestComputeStanceAction(t *testing.T) {
	w := domain.NewWorld(20, 20)
	c := domain.NewUnitContainer(1)

	red := &domain.Player{ID: 1, Name: "red"}
	blue := &domain.Player{ID: 2, Name: "blue"}

	redMil := newMilitiaType()
	attachOwner(redMil, red)
	blueMil := newMilitiaType()
	attachOwner(blueMil, blue)

	guard := spawnAt(c, w, redMil, 5, 5)
	enemy := spawnAt(c, w, blueMil, 7, 5)

	// Пассивная стойка по умолчанию: цели нет
	if got := ComputeStanceAction(guard, w); got != nil {
		t.Errorf("passive stance engaged %v", got.ID)
	}

	// Агрессивная: враг в пределах агро-радиуса
	atk, _ := domain.UnitAttr[domain.AttackAttr](guard)
	atk.Stance = domain.StanceAggressive
	if got := ComputeStanceAction(guard, w); got != enemy {
		t.Error("aggressive stance ignored an enemy in aggro range")
	}

	// Защитная без провокации молчит, после удара - отвечает
	atk.Stance = domain.StanceDefensive
	if got := ComputeStanceAction(guard, w); got != nil {
		t.Error("unprovoked defensive stance engaged")
	}
	if res := ApplyAttack(enemy, guard); res.Damage == 0 {
		t.Fatal("setup: enemy strike did not land")
	}
	if got := ComputeStanceAction(guard, w); got != enemy {
		t.Error("provoked defensive stance stayed idle")
	}
}
