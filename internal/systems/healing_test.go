package systems

import (
	"testing"

	"github.com/fidget77/openage/internal/core/types"
	"github.com/fidget77/openage/internal/core/types/enums"
	"github.com/fidget77/openage/internal/domain"
)

// newMonkType - лекарь: 30 HP, лечит по 4 HP за цикл, 2 цикла в секунду.
func newMonkType() *domain.UnitType {
	typ := &domain.UnitType{
		ID:    25,
		Name:  "monk",
		Class: enums.ClassCivilian,
		Kind:  enums.KindUnit,
	}
	typ.DefaultAttributes.Add(&domain.HitPointsAttr{HP: 30})
	typ.DefaultAttributes.Add(&domain.SpeedAttr{Speed: types.PhysFromFloat(0.4)})
	typ.DefaultAttributes.Add(&domain.HealAttr{
		Range: types.PhysFromInt(4),
		Life:  4,
		Rate:  2,
	})
	return typ
}

func TestHealPulse(t *testing.T) {
	w := domain.NewWorld(10, 10)
	c := domain.NewUnitContainer(1)

	monk := spawnAt(c, w, newMonkType(), 2, 2)
	wounded := spawnAt(c, w, newMilitiaType(), 3, 2)

	d, err := domain.UnitAttr[domain.DamagedAttr](wounded)
	if err != nil {
		t.Fatal(err)
	}
	d.HP = 33

	healed, ok := HealPulse(monk, wounded)
	if !ok || healed != 4 {
		t.Fatalf("HealPulse() = %d, %v, want 4, true", healed, ok)
	}
	if wounded.CurrentHP() != 37 {
		t.Errorf("HP after pulse = %d, want 37", wounded.CurrentHP())
	}

	// Добор до максимума, не дальше
	healed, ok = HealPulse(monk, wounded)
	if !ok || healed != 3 {
		t.Fatalf("clamped pulse = %d, %v, want 3, true", healed, ok)
	}
	if wounded.CurrentHP() != wounded.MaxHP() {
		t.Errorf("HP = %d, want max %d", wounded.CurrentHP(), wounded.MaxHP())
	}

	// Здоровая цель - пульс вхолостую
	if _, ok := HealPulse(monk, wounded); ok {
		t.Error("healed a target at full HP")
	}
}

func TestHealPulse_Refusals(t *testing.T) {
	w := domain.NewWorld(20, 20)
	c := domain.NewUnitContainer(1)

	monk := spawnAt(c, w, newMonkType(), 2, 2)

	// Вне дальности (range 4)
	far := spawnAt(c, w, newMilitiaType(), 12, 2)
	df, _ := domain.UnitAttr[domain.DamagedAttr](far)
	df.HP = 1
	if _, ok := HealPulse(monk, far); ok {
		t.Error("healed beyond range")
	}
	if far.CurrentHP() != 1 {
		t.Errorf("out-of-range target mutated: HP %d", far.CurrentHP())
	}

	// Мёртвых не лечим
	dead := spawnAt(c, w, newMilitiaType(), 3, 2)
	dd, _ := domain.UnitAttr[domain.DamagedAttr](dead)
	dd.HP = 0
	if _, ok := HealPulse(monk, dead); ok {
		t.Error("healed a corpse")
	}

	// Ополченец лечить не умеет
	militia := spawnAt(c, w, newMilitiaType(), 4, 2)
	wounded := spawnAt(c, w, newMilitiaType(), 5, 2)
	dw, _ := domain.UnitAttr[domain.DamagedAttr](wounded)
	dw.HP = 10
	if _, ok := HealPulse(militia, wounded); ok {
		t.Error("unit without a heal record healed someone")
	}
}

func TestHealDue(t *testing.T) {
	h := &domain.HealAttr{Rate: 2} // 2 цикла в секунду

	// При 10 тиках в секунду пульс каждые 5 тиков
	var due int
	for tick := int64(1); tick <= 20; tick++ {
		if HealDue(h, tick, 10) {
			due++
		}
	}
	if due != 4 {
		t.Errorf("pulses over 20 ticks = %d, want 4", due)
	}

	// Rate выше tickRate - пульс каждый тик
	fast := &domain.HealAttr{Rate: 100}
	for tick := int64(1); tick <= 5; tick++ {
		if !HealDue(fast, tick, 10) {
			t.Fatalf("fast healer idle on tick %d", tick)
		}
	}

	// Нулевой rate - никогда
	if HealDue(&domain.HealAttr{Rate: 0}, 5, 10) {
		t.Error("zero-rate healer pulsed")
	}
}
