package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/fidget77/openage/internal/agent"
	"github.com/fidget77/openage/internal/engine"
	"github.com/fidget77/openage/internal/server"
	"github.com/fidget77/openage/internal/version"
	"github.com/fidget77/openage/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var shard uint64
	var typeDefs, recordDir string
	var bots int
	// Читаем флаг -seed. По умолчанию 0 (значит сгенерировать случайно).
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 for random)")
	flag.Uint64Var(&shard, "shard", 0, "Shard id baked into unit IDs")
	flag.StringVar(&typeDefs, "types", "", "Path to YAML unit type definitions (empty for builtin set)")
	flag.StringVar(&recordDir, "records", "records", "Directory for match records")
	flag.IntVar(&bots, "bots", 0, "Number of headless agents to seat on start")
	flag.Parse()

	logger.Log.Info("Starting openage skirmish server...")
	logger.Log.Info(version.String())

	// Формируем конфиг
	cfg := engine.NewConfig()
	cfg.ShardId = uint8(shard)
	cfg.RecordDir = recordDir
	cfg.TypeDefs = typeDefs
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("🎲 Using explicit Master Seed: %d", seed)
	} else {
		logger.Log.Infof("🎲 Using random Master Seed: %d", cfg.Seed)
	}

	port := os.Getenv("OPENAGE_PORT")
	if port == "" {
		port = "8080"
	}

	// 2. Инициализация ядра с конфигом
	gameService, err := engine.NewService(cfg)
	if err != nil {
		logger.Log.Fatal("Engine init error:", err)
	}
	gameService.Start()

	// Статисты для нагрузочных прогонов
	for i := 0; i < bots; i++ {
		bot, err := agent.NewBot("Статист", gameService)
		if err != nil {
			logger.Log.WithError(err).Warn("Failed to seat bot")
			continue
		}
		go bot.Run()
	}

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 3. Запуск сервера
	srv := server.New(gameService, port)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	// Каждый матч сохраняет свою запись перед выходом
	gameService.Shutdown()

	logger.Log.Info("Done.")
}
