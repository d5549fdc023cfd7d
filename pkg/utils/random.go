package utils

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
)

// GenerateID создает короткий уникальный ID для матчей и записей лога
// (сессии клиентов используют полноценный UUID, см. internal/server)
func GenerateID() string {
	b := make([]byte, 8) // 16 символов hex
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// GenerateSeed возвращает случайное зерно для нового матча.
// Дальше вся симуляция детерминирована этим числом.
func GenerateSeed() int64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("failed to generate seed: " + err.Error())
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
