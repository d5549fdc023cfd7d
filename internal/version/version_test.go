package version

import (
	"strings"
	"testing"

	"github.com/fidget77/openage/internal/infrastructure/storage"
)

func TestCalculateBuildID(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		expected  int
		wantError bool
	}{
		{
			name:     "epoch date",
			date:     "2025-06-01",
			expected: 0,
		},
		{
			name:     "next day after epoch",
			date:     "2025-06-02",
			expected: 1,
		},
		{
			name:     "one year later",
			date:     "2026-06-01",
			expected: 365,
		},
		{
			name:     "date with leap years included",
			date:     "2032-06-01",
			expected: 2557,
		},
		{
			name:      "invalid format",
			date:      "invalid",
			wantError: true,
		},
		{
			name:      "empty date",
			date:      "",
			wantError: true,
		},
		{
			name:      "before epoch",
			date:      "2025-05-31",
			wantError: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			old := BuildDate
			defer func() { BuildDate = old }()

			BuildDate = tt.date

			got, err := CalculateBuildID()

			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error, got nil (id=%d)", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.expected {
				t.Errorf("CalculateBuildID() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestInfo_RecordFormat(t *testing.T) {
	old := BuildDate
	defer func() { BuildDate = old }()

	BuildDate = "2025-06-02"
	info := Info()
	if !info.Calculated {
		t.Fatalf("Info() not calculated: %s", info.Error)
	}
	if info.RecordFormat != storage.Version1 {
		t.Errorf("RecordFormat = %d, want %d", info.RecordFormat, storage.Version1)
	}
	if !strings.Contains(String(), "rec-format") {
		t.Errorf("String() misses the record format: %s", String())
	}

	// Без даты сборки формат записей все равно известен
	BuildDate = ""
	info = Info()
	if info.Calculated {
		t.Error("Info() with empty BuildDate must not calculate a build id")
	}
	if info.RecordFormat != storage.Version1 {
		t.Errorf("RecordFormat without BuildDate = %d, want %d", info.RecordFormat, storage.Version1)
	}
}
