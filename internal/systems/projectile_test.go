package systems

import (
	"testing"

	"github.com/fidget77/openage/internal/core/types"
	"github.com/fidget77/openage/internal/core/types/enums"
	"github.com/fidget77/openage/internal/domain"
)

func newArcherTypes() (archer, arrow *domain.UnitType) {
	arrow = &domain.UnitType{ID: 60, Name: "arrow", Kind: enums.KindProjectile}
	arrow.DefaultAttributes.Add(&domain.SpeedAttr{Speed: types.PhysFromInt(2)})
	arrow.DefaultAttributes.Add(&domain.ProjectileAttr{Arc: 0.6})
	arrow.DefaultAttributes.Add(&domain.DirectionAttr{})

	archer = &domain.UnitType{ID: 12, Name: "archer", Class: enums.ClassArcher, Kind: enums.KindUnit}
	archer.DefaultAttributes.Add(&domain.HitPointsAttr{HP: 30, BarHeight: 1})
	archer.DefaultAttributes.Add(&domain.SpeedAttr{Speed: types.PhysFromFloat(0.5)})
	archer.DefaultAttributes.Add(domain.NewAttackAttr(
		arrow, types.PhysFromInt(6), types.PhysFromFloat(1.0),
		domain.TypeAmountMap{domain.ArmorClassPierce: 5},
	))
	return archer, arrow
}

func TestLaunchProjectile(t *testing.T) {
	w := domain.NewWorld(20, 20)
	c := domain.NewUnitContainer(1)
	archerType, _ := newArcherTypes()

	shooter := spawnAt(c, w, archerType, 3, 3)
	target := types.Phys3{NE: types.PhysFromInt(8), SE: types.PhysFromInt(3)}

	p := LaunchProjectile(c, w, shooter, target)
	if p == nil {
		t.Fatal("archer produced no projectile")
	}

	pr, err := domain.UnitAttr[domain.ProjectileAttr](p)
	if err != nil {
		t.Fatalf("projectile without projectile record: %v", err)
	}
	if !pr.Launched {
		t.Error("launched flag not set")
	}
	got, ok := pr.Launcher.Get()
	if !ok || got != shooter {
		t.Error("launcher reference does not resolve to the shooter")
	}
	// Старт поднят на высоту запуска
	if p.Pos.Up != types.PhysFromFloat(1.0) {
		t.Errorf("launch height = %v", p.Pos.Up)
	}

	// Ближний бой без типа снаряда не стреляет
	mil := spawnAt(c, w, newMilitiaType(), 5, 5)
	if LaunchProjectile(c, w, mil, target) != nil {
		t.Error("melee unit launched a projectile")
	}
}

func TestProjectileFlightAndImpact(t *testing.T) {
	w := domain.NewWorld(20, 20)
	c := domain.NewUnitContainer(1)
	archerType, _ := newArcherTypes()

	red := &domain.Player{ID: 1}
	attachOwner(archerType, red)

	shooter := spawnAt(c, w, archerType, 3, 3)
	victimType := newMilitiaType()
	victim := spawnAt(c, w, victimType, 7, 3)

	p := LaunchProjectile(c, w, shooter, victim.Pos)
	if p == nil {
		t.Fatal("no projectile")
	}

	landed := false
	for i := 0; i < 10; i++ {
		if ProjectileStep(p, w, victim.Pos) {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatal("arrow never landed (speed 2, distance 4)")
	}

	hit := ImpactDamage(p, w)
	if hit != 1 {
		t.Errorf("impact hit %d units, want 1", hit)
	}
	// Пирс 5 без пирс-брони = 5
	if victim.CurrentHP() != 35 {
		t.Errorf("victim HP = %d, want 35", victim.CurrentHP())
	}
}

func TestImpactDamage_OrphanArrow(t *testing.T) {
	w := domain.NewWorld(20, 20)
	c := domain.NewUnitContainer(1)
	archerType, _ := newArcherTypes()

	shooter := spawnAt(c, w, archerType, 3, 3)
	victim := spawnAt(c, w, newMilitiaType(), 5, 3)

	p := LaunchProjectile(c, w, shooter, victim.Pos)

	// Стрелок погиб в полёте стрелы: ссылка протухла, урона нет
	c.Destroy(shooter.ID)

	for i := 0; i < 10; i++ {
		if ProjectileStep(p, w, victim.Pos) {
			break
		}
	}
	if hit := ImpactDamage(p, w); hit != 0 {
		t.Errorf("orphan arrow hit %d units, want 0", hit)
	}
	if victim.CurrentHP() != 40 {
		t.Error("orphan arrow dealt damage")
	}
}
