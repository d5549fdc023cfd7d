package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/fidget77/openage/internal/core/types"
	"github.com/fidget77/openage/internal/core/types/enums"
	"github.com/fidget77/openage/internal/domain"
)

// LaunchProjectile порождает снаряд из атаки launcher по точке target.
// Снаряд - полноценный юнит своего типа: прогрессом полёта управляет
// projectile-запись (дуга, слабая ссылка на запустившего, флаг полёта).
// nil - у атакующего нет типа снаряда (ближний бой).
func LaunchProjectile(c *domain.UnitContainer, w *domain.World, launcher *domain.Unit, target types.Phys3) *domain.Unit {
	atk, err := domain.UnitAttr[domain.AttackAttr](launcher)
	if err != nil || atk.PType == nil {
		return nil
	}

	p := c.NewUnit(enums.KindProjectile)
	atk.PType.Initialise(p, false)

	// Старт: позиция стрелка, поднятая на высоту запуска
	p.Pos = launcher.Pos
	p.Pos.Up += atk.InitHeight
	w.AddUnit(p)

	if pr, err := domain.UnitAttr[domain.ProjectileAttr](p); err == nil {
		pr.Launcher = c.Ref(launcher.ID)
		pr.Launched = true
	}

	SetCourse(p, target)

	sysLog("projectile_system").WithFields(logrus.Fields{
		"projectile": p.ID,
		"launcher":   launcher.ID,
		"target":     target.String(),
	}).Debug("Projectile launched.")

	return p
}

// ProjectileStep - один тик полёта. Снаряд летит по прямой курсом из
// direction-записи; попадание - достижение цели. true - снаряд
// приземлился, урон и уборку делает вызывающий.
func ProjectileStep(p *domain.Unit, w *domain.World, target types.Phys3) bool {
	pr, err := domain.UnitAttr[domain.ProjectileAttr](p)
	if err != nil || !pr.Launched {
		return false
	}

	res := CalculateStep(p, w, target)
	if res.Blocked {
		// Улетел за карту - считаем упавшим
		return true
	}
	if res.Moved {
		_ = w.UpdateUnitPos(p, res.NewPos)
	}
	return res.Arrived
}

// ImpactDamage наносит урон от приземлившегося снаряда по юнитам в
// клетке падения. Стрельба по своим возможна - снаряд не разбирает.
func ImpactDamage(p *domain.Unit, w *domain.World) int {
	pr, err := domain.UnitAttr[domain.ProjectileAttr](p)
	if err != nil {
		return 0
	}

	// Таблицу урона берём у запустившего; сирота падает безвредно
	launcher, ok := pr.Launcher.Get()
	if !ok {
		return 0
	}
	atk, err := domain.UnitAttr[domain.AttackAttr](launcher)
	if err != nil {
		return 0
	}

	log := sysLog("projectile_system").WithFields(logrus.Fields{
		"projectile": p.ID,
		"launcher":   launcher.ID,
	})

	tp := domain.TileOf(p.Pos)
	hit := 0
	for _, u := range w.UnitsAt(tp.X, tp.Y) {
		if u == p || !u.IsAlive() {
			continue
		}
		dealDamage(atk, u, log)
		hit++
	}
	return hit
}
