// Package version отдает метаданные сборки сервера.
//
// Номер билда считается в днях от нулевого дня проекта, поэтому любые
// две сборки сравнимы без обращения к git. Вместе с номером наружу
// уходит версия формата записей: клиент по ней видит, прочитает ли
// сервер его .oarec-файлы.
package version

import (
	"fmt"
	"time"

	"github.com/fidget77/openage/internal/infrastructure/storage"
)

// Заполняются линкером через -ldflags -X.
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
	BuildCI     string
)

// buildEpoch - день нулевого билда, от него идет счет BuildID
var buildEpoch = time.Date(
	2025, time.June, 1,
	0, 0, 0, 0,
	time.UTC,
)

// VersionInfo - структурный ответ ручки /version.
type VersionInfo struct {
	BuildID      int    `json:"buildId"`
	BuildDate    string `json:"buildDate"`
	Commit       string `json:"commit"`
	Branch       string `json:"branch"`
	CI           string `json:"ci"`
	RecordFormat uint32 `json:"recordFormat"`
	Calculated   bool   `json:"calculated"`
	Error        string `json:"error,omitempty"`
}

// CalculateBuildID переводит BuildDate в номер билда.
func CalculateBuildID() (int, error) {
	if BuildDate == "" {
		return 0, fmt.Errorf("BuildDate is empty")
	}

	t, err := time.ParseInLocation("2006-01-02", BuildDate, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid BuildDate %q: %w", BuildDate, err)
	}

	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("BuildDate %s is before epoch", BuildDate)
	}

	// Счет в часах: и эпоха, и дата сборки в UTC, переводов времени нет
	days := int(t.Sub(buildEpoch).Hours() / 24)
	return days, nil
}

// Info собирает метаданные сборки. Безопасна в любой момент: при
// невычислимом номере билда заполняет Error вместо паники.
func Info() VersionInfo {
	info := VersionInfo{
		BuildDate:    BuildDate,
		Commit:       BuildCommit,
		Branch:       BuildBranch,
		CI:           BuildCI,
		RecordFormat: storage.Version1,
	}

	id, err := CalculateBuildID()
	if err != nil {
		info.Error = err.Error()
		return info
	}

	info.BuildID = id
	info.Calculated = true
	return info
}

// String возвращает строку сборки для лога запуска.
func String() string {
	info := Info()

	if !info.Calculated {
		return fmt.Sprintf("Build unknown, rec-format v%d (%s)", info.RecordFormat, info.Error)
	}

	return fmt.Sprintf(
		"Build %d (%s) rec-format v%d commit[%s] branch[%s] ci[%s]",
		info.BuildID,
		info.BuildDate,
		info.RecordFormat,
		coalesce(info.Commit, "unknown"),
		coalesce(info.Branch, "unknown"),
		coalesce(info.CI, "local"),
	)
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
