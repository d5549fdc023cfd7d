package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/fidget77/openage/internal/domain"
	"github.com/fidget77/openage/pkg/logger"
	"github.com/fidget77/openage/pkg/terrain"
)

// buildWorld генерирует карту матча и заселяет ее гайей: деревья по
// лесам, кусты еды, золотые и каменные жилы. Вся генерация идет от
// локального rng - матчи с одним сидом идентичны.
func (s *Skirmish) buildWorld(shard uint8) {
	m := terrain.Generate(domain.MaxPlayers, s.Rng)
	s.World = m.World
	s.spawns = m.Spawns
	s.Units = domain.NewUnitContainer(shard)

	// Гайя всегда занимает нулевой номер
	s.Players = []*domain.Player{{ID: domain.GaiaID, Name: "Гайя"}}

	s.placeSpots("tree", m.Forests)
	s.placeSpots("berry_bush", m.Berries)
	s.placeSpots("gold_mine", m.GoldSeams)
	s.placeSpots("stone_mine", m.StoneSeams)

	logger.Log.WithFields(logrus.Fields{
		"skirmish": s.ID,
		"width":    s.World.Width,
		"height":   s.World.Height,
		"spots":    s.Units.Len(),
		"spawns":   len(s.spawns),
	}).Info("World generated")
}

// placeSpots ставит юниты-залежи типа typeName на перечисленные клетки.
// Залежи принадлежат гайе: owner-записи у них нет.
func (s *Skirmish) placeSpots(typeName string, at []domain.TilePos) {
	t, ok := s.Types.Get(typeName)
	if !ok {
		logger.Log.WithField("type", typeName).Warn("Spot type is not defined, terrain left bare")
		return
	}
	for _, tp := range at {
		s.spawnUnit(t, nil, tp.Center())
	}
}
