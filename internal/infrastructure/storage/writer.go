package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fidget77/openage/internal/domain"
)

const (
	MagicHeader string = `OAREC` // 5 байт
	Version1    uint32 = 1
)

// RecordFileHeader — это точное представление заголовка файла в памяти.
// binary.Write умеет писать это целиком, так как тут нет слайсов и строк,
// только массивы и числа.
type RecordFileHeader struct {
	Magic      [5]byte // 5 байт
	Version    uint32  // 4 байта
	Seed       int64   // 8 байт
	Shard      uint8   // 1 байт
	Timestamp  int64   // 8 байт
	MapWidth   uint16  // 2 байта
	MapHeight  uint16  // 2 байта
	PlayersLen uint32  // 4 байта: длина JSON-блока игроков
	OrderCount int32   // 4 байта
}

// OrderHeader — заголовок каждой записи команды.
type OrderHeader struct {
	Tick       int32  // 4
	ActionType uint8  // 1
	Player     uint8  // 1
	PayloadLen uint16 // 2
}

// RecordService пишет и читает записи матчей (.oarec)
type RecordService struct {
	SaveDir string
}

func NewRecordService(dir string) *RecordService {
	// Создаем папку если нет
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		_ = os.Mkdir(dir, 0755)
	}
	return &RecordService{SaveDir: dir}
}

func (s *RecordService) Save(session *domain.RecordSession) error {
	filename := fmt.Sprintf("match_%d_%d.oarec", session.Seed, session.Timestamp)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return writeBinary(f, session)
}

func writeBinary(w io.Writer, s *domain.RecordSession) error {
	// Игроки - структуры с переменной длиной (имена), поэтому они
	// уходят в файл JSON-блоком, а его длина - в заголовок.
	playersBlob, err := json.Marshal(s.Players)
	if err != nil {
		return fmt.Errorf("failed to marshal players: %w", err)
	}

	// 1. Подготавливаем и пишем ГЛОБАЛЬНЫЙ ЗАГОЛОВОК
	header := RecordFileHeader{
		Version:    Version1,
		Seed:       s.Seed,
		Shard:      s.Shard,
		Timestamp:  s.Timestamp,
		MapWidth:   uint16(s.MapWidth),
		MapHeight:  uint16(s.MapHeight),
		PlayersLen: uint32(len(playersBlob)),
		OrderCount: int32(len(s.Actions)),
	}
	copy(header.Magic[:], MagicHeader) // Копируем строку в массив [5]byte

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if _, err := w.Write(playersBlob); err != nil {
		return fmt.Errorf("failed to write players: %w", err)
	}

	// 2. Пишем команды
	for _, act := range s.Actions {
		payloadLen := len(act.Payload)
		if payloadLen > 65535 {
			return fmt.Errorf("payload too long: %d", payloadLen)
		}

		// Подготавливаем заголовок команды
		actHeader := OrderHeader{
			Tick:       int32(act.Tick),
			ActionType: uint8(act.Action),
			Player:     uint8(act.Player),
			PayloadLen: uint16(payloadLen),
		}

		// Пишем заголовок команды одной командой
		if err := binary.Write(w, binary.LittleEndian, &actHeader); err != nil {
			return err
		}

		// Пишем динамические данные (тело)
		if payloadLen > 0 {
			if _, err := w.Write(act.Payload); err != nil {
				return err
			}
		}
	}

	return nil
}
