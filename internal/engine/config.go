package engine

import "time"

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят все матчи:
	// Skirmish N Seed = MasterSeed + N
	Seed    int64
	ShardId uint8

	// TickRate - частота симуляции, тиков в секунду
	TickRate int

	// RecordDir - каталог для записей сыгранных матчей
	RecordDir string

	// TypeDefs - путь к YAML с определениями типов юнитов.
	// Пусто - работаем на встроенном наборе.
	TypeDefs string
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:      time.Now().UnixNano(),
		ShardId:   0,
		TickRate:  DefaultTickRate,
		RecordDir: "records",
	}
}
