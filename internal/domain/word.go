package domain

import (
	"errors"
	"strings"
)

// ErrValidationSkip is returned when an add request lacks a foreign word or translation.
// The list is left untouched.
var ErrValidationSkip = errors.New("foreign word and english translation are required")

// WordEntry represents one vocabulary record
type WordEntry struct {
	ID            int64  `json:"id"`
	Foreign       string `json:"foreign"`
	English       string `json:"english"`
	Pronunciation string `json:"pronunciation"`
}

// WordInput is what a client supplies when adding a word; the store assigns the ID
type WordInput struct {
	Foreign       string `validate:"required"`
	English       string `validate:"required"`
	Pronunciation string
}

// Trimmed returns a copy with surrounding whitespace removed from every field
func (in WordInput) Trimmed() WordInput {
	return WordInput{
		Foreign:       strings.TrimSpace(in.Foreign),
		English:       strings.TrimSpace(in.English),
		Pronunciation: strings.TrimSpace(in.Pronunciation),
	}
}

// Export is a serialized word list ready to be handed to a downloader
type Export struct {
	FileName string
	MIME     string
	Data     []byte
}
