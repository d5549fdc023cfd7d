package domain

// Параметры симуляции (в тиках и phys-единицах)
const (
	// AggroRadius - радиус, в котором агрессивная стойка ищет цель
	AggroRadius = 6
	// LeashRadius - дальше этого защитная стойка не преследует
	LeashRadius = 3
	// ArrivalEpsilonTiles - ближе этого считаем, что юнит дошёл
	ArrivalEpsilonTiles = 0.1
	// GarrisonCapacityDefault - вместимость гарнизона по умолчанию
	GarrisonCapacityDefault = 10
	// ConstructRatePerTick - прирост Completed за тик одного строителя
	ConstructRatePerTick = 0.01
	// MinDamage - нижняя граница суммарного урона за удар
	MinDamage = 1
)

// Параметры матча
const (
	MaxPlayers    = 8
	StartingWood  = 200
	StartingFood  = 200
	StartingGold  = 100
	StartingStone = 100
	StartingVills = 3
)
