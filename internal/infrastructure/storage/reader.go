package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fidget77/openage/internal/domain"
)

// maxOrderCount ограничивает число команд в одном файле записи.
// Поврежденный заголовок не должен ронять чтение аллокацией.
const maxOrderCount = 1 << 22

func (s *RecordService) Load(path string) (*domain.RecordSession, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(f)
}

func readBinary(r io.Reader) (*domain.RecordSession, error) {
	// 1. Читаем заголовок целиком
	var header RecordFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("invalid magic")
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}
	if header.OrderCount < 0 || header.OrderCount > maxOrderCount {
		return nil, fmt.Errorf("implausible order count: %d", header.OrderCount)
	}

	session := &domain.RecordSession{
		Seed:      header.Seed,
		Shard:     header.Shard,
		Timestamp: header.Timestamp,
		MapWidth:  int(header.MapWidth),
		MapHeight: int(header.MapHeight),
		Actions:   make([]domain.RecordAction, header.OrderCount),
	}

	// 2. Читаем блок игроков
	if header.PlayersLen > 0 {
		blob := make([]byte, header.PlayersLen)
		if _, err := io.ReadFull(r, blob); err != nil {
			return nil, fmt.Errorf("failed to read players: %w", err)
		}
		if err := json.Unmarshal(blob, &session.Players); err != nil {
			return nil, fmt.Errorf("failed to parse players: %w", err)
		}
	}

	// 3. Читаем команды
	for i := 0; i < int(header.OrderCount); i++ {
		var oh OrderHeader
		if err := binary.Read(r, binary.LittleEndian, &oh); err != nil {
			return nil, err
		}

		act := domain.RecordAction{
			Tick:   int(oh.Tick),
			Action: domain.ActionType(oh.ActionType),
			Player: domain.PlayerID(oh.Player),
		}

		if oh.PayloadLen > 0 {
			act.Payload = make([]byte, oh.PayloadLen)
			if _, err := io.ReadFull(r, act.Payload); err != nil {
				return nil, err
			}
		} else {
			act.Payload = json.RawMessage{}
		}

		session.Actions[i] = act
	}

	return session, nil
}
