package testutil

import (
	"vocabtracker/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestEntry creates a test word entry
func NewTestEntry(id int64, foreign, english, pronunciation string) domain.WordEntry {
	return domain.WordEntry{
		ID:            id,
		Foreign:       foreign,
		English:       english,
		Pronunciation: pronunciation,
	}
}
