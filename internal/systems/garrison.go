package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/fidget77/openage/internal/core/types"
	"github.com/fidget77/openage/internal/domain"
)

// GarrisonUnit прячет юнит u внутрь host. Юнит снимается с карты, но
// остаётся жив в контейнере; в гарнизонном списке хранится слабая
// ссылка. false - host не вмещает или не умеет прятать.
func GarrisonUnit(w *domain.World, c *domain.UnitContainer, host, u *domain.Unit) bool {
	if !host.HasAttribute(domain.AttrGarrison) || !u.IsAlive() || host == u {
		return false
	}

	g := ensureGarrison(host)
	if len(g.Content) >= domain.GarrisonCapacityDefault {
		return false
	}

	g.Content = append(g.Content, c.Ref(u.ID))
	w.RemoveUnit(u)
	u.Pos = host.Pos
	u.ClearOrder()

	garrisonLog(host).WithFields(logrus.Fields{
		"unit_id": u.ID,
		"inside":  len(g.Content),
	}).Info("Unit garrisoned.")
	return true
}

// UngarrisonAll выпускает всех из host вокруг него. Протухшие ссылки
// (погибшие внутри) молча отбрасываются - чистим список только здесь,
// на стороне читателя.
func UngarrisonAll(w *domain.World, host *domain.Unit) []*domain.Unit {
	g, err := domain.UnitAttr[domain.GarrisonAttr](host)
	if err != nil || len(g.Content) == 0 {
		return nil
	}

	// Выпускаем на соседние клетки по кругу
	spots := exitSpots(w, host.Pos, len(g.Content))

	var out []*domain.Unit
	for i, ref := range g.Content {
		u, ok := ref.Get()
		if !ok || !u.IsAlive() {
			continue // погиб внутри
		}
		if i < len(spots) {
			u.Pos = spots[i]
		} else {
			u.Pos = host.Pos
		}
		w.AddUnit(u)
		out = append(out, u)
	}
	g.Content = g.Content[:0]

	garrisonLog(host).WithField("released", len(out)).Info("Garrison released.")
	return out
}

// ensureGarrison возвращает собственный гарнизонный список host.
func ensureGarrison(host *domain.Unit) *domain.GarrisonAttr {
	if a, ok := host.Attributes.Lookup(domain.AttrGarrison); ok {
		return a.(*domain.GarrisonAttr)
	}
	g := &domain.GarrisonAttr{}
	host.Attributes.Add(g)
	return g
}

// exitSpots подбирает проходимые клетки вокруг центра.
func exitSpots(w *domain.World, center types.Phys3, n int) []types.Phys3 {
	ct := domain.TileOf(center)
	offsets := [][2]int{
		{1, 0}, {0, 1}, {-1, 0}, {0, -1},
		{1, 1}, {-1, 1}, {-1, -1}, {1, -1},
	}

	var out []types.Phys3
	for _, off := range offsets {
		if len(out) >= n {
			break
		}
		x, y := ct.X+off[0], ct.Y+off[1]
		if !w.IsPassable(x, y) {
			continue
		}
		out = append(out, types.Phys3{
			NE: types.PhysFromInt(x),
			SE: types.PhysFromInt(y),
		})
	}
	return out
}

func garrisonLog(host *domain.Unit) *logrus.Entry {
	return sysLog("garrison_system").WithFields(logrus.Fields{
		"host_id":   host.ID,
		"host_name": host.Name(),
	})
}
