package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/fidget77/openage/internal/domain"
	"github.com/fidget77/openage/pkg/logger"
)

// ConstructTick - один тик стройки с builders строителями у стены.
// Прогресс монотонный: никогда не убывает, сверху зажат единицей.
// true возвращается ровно один раз - тиком, которым стройка дошла
// до конца; дальше внешняя система применяет завершение.
func ConstructTick(b *domain.Unit, builders int) bool {
	site, err := domain.UnitAttr[domain.BuildingAttr](b)
	if err != nil || builders <= 0 {
		return false
	}
	if site.Completed >= 1.0 {
		return false
	}

	site.Completed += domain.ConstructRatePerTick * float64(builders)
	if site.Completed < 1.0 {
		return false
	}
	site.Completed = 1.0
	return true
}

// ApplyCompletion применяет достройку к зданию: постоянное размещение
// из completion_state, терраформирование клетки под фундамент и полное
// здоровье. Вызывается движком по событию CONSTRUCTION_COMPLETE.
func ApplyCompletion(w *domain.World, b *domain.Unit) {
	site, err := domain.UnitAttr[domain.BuildingAttr](b)
	if err != nil {
		return
	}

	b.Placement = site.CompletionState

	tp := domain.TileOf(b.Pos)
	w.SetTerrain(tp.X, tp.Y, site.FoundationTerrain)

	// Достроенное здание целое
	d := ensureDamaged(b)
	d.HP = b.MaxHP()

	logger.Log.WithFields(logrus.Fields{
		"component": "construction_system",
		"unit_id":   b.ID,
		"name":      b.Name(),
		"placement": b.Placement.String(),
	}).Info("Construction complete.")
}
