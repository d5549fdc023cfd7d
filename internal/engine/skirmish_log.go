package engine

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fidget77/openage/pkg/api"
	"github.com/fidget77/openage/pkg/logger"
)

// AddLog добавляет лог в историю матча
func (s *Skirmish) AddLog(text, logType string) {
	s.Logs = append(s.Logs, api.LogEntry{
		ID:        fmt.Sprintf("%d_%d", s.ID, time.Now().UnixNano()),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
	logger.Log.WithFields(logrus.Fields{
		"skirmish":  s.ID,
		"component": "game_log",
		"log_type":  logType,
	}).Info(text)
}
