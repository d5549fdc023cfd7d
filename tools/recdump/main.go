package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fidget77/openage/internal/domain"
	"github.com/fidget77/openage/internal/infrastructure/storage"
)

// recdump - просмотр записей матчей (.oarec) из консоли.
// Запись детерминирована: зерно + команды = весь матч, так что дамп
// команд фактически показывает всю партию.
func main() {
	if len(os.Args) < 2 {
		printHelp()
		return
	}

	switch os.Args[1] {
	case "info":
		withRecord(func(path string) {
			s := mustLoad(path)
			fmt.Printf("file:      %s\n", path)
			fmt.Printf("seed:      %d\n", s.Seed)
			fmt.Printf("shard:     %d\n", s.Shard)
			fmt.Printf("recorded:  %s\n", time.Unix(s.Timestamp, 0).Format(time.RFC3339))
			fmt.Printf("map:       %dx%d\n", s.MapWidth, s.MapHeight)
			fmt.Printf("actions:   %d\n", len(s.Actions))
			for _, p := range s.Players {
				tag := ""
				if p.IsAI {
					tag = " [AI]"
				}
				fmt.Printf("player %d:  %s%s kills=%d losses=%d\n", p.ID, p.Name, tag, p.Kills, p.Losses)
			}
		})
	case "actions":
		withRecord(func(path string) {
			s := mustLoad(path)
			for _, a := range s.Actions {
				fmt.Printf("%6d  p%d  %-10s %s\n", a.Tick, a.Player, a.Action, string(a.Payload))
			}
		})
	default:
		printHelp()
	}
}

func withRecord(fn func(path string)) {
	if len(os.Args) < 3 {
		fmt.Printf("Usage: recdump %s <file.oarec>\n", os.Args[1])
		os.Exit(1)
	}
	fn(os.Args[2])
}

func mustLoad(path string) *domain.RecordSession {
	svc := &storage.RecordService{}
	s, err := svc.Load(path)
	if err != nil {
		fmt.Printf("Failed to read record: %v\n", err)
		os.Exit(1)
	}
	return s
}

func printHelp() {
	fmt.Println(`recdump - чтение записей матчей (.oarec)
Commands:
  info <file>     - заголовок записи: зерно, карта, игроки, счет
  actions <file>  - лента команд: тик, игрок, действие, параметры`)
}
