package wordstore

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"vocabtracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV(t *testing.T) {
	entries := []domain.WordEntry{
		{ID: 1, Foreign: "gato", English: "cat", Pronunciation: "GAH-toh"},
		{ID: 2, Foreign: "perro", English: "dog", Pronunciation: ""},
	}

	data, err := ExportCSV(entries)

	require.NoError(t, err)
	assert.Equal(t, "Foreign,English,Pronunciation\ngato,cat,GAH-toh\nperro,dog,\n", string(data))
}

func TestExportCSV_Empty(t *testing.T) {
	data, err := ExportCSV(nil)

	require.NoError(t, err)
	assert.Equal(t, "Foreign,English,Pronunciation\n", string(data))
}

func TestExportCSV_NaiveSplitRoundTrip(t *testing.T) {
	entries := []domain.WordEntry{
		{ID: 1, Foreign: "gato", English: "cat", Pronunciation: "GAH-toh"},
		{ID: 2, Foreign: "жёлтый", English: "yellow", Pronunciation: "ZHOL-tyy"},
		{ID: 3, Foreign: "犬", English: "dog", Pronunciation: "inu"},
	}

	data, err := ExportCSV(entries)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, len(entries)+1)
	assert.Equal(t, "Foreign,English,Pronunciation", lines[0])

	for i, line := range lines[1:] {
		fields := strings.Split(line, ",")
		require.Len(t, fields, 3)
		assert.Equal(t, entries[i].Foreign, fields[0])
		assert.Equal(t, entries[i].English, fields[1])
		assert.Equal(t, entries[i].Pronunciation, fields[2])
	}
}

func TestExportCSV_QuotesDelimiters(t *testing.T) {
	entries := []domain.WordEntry{
		{ID: 1, Foreign: "hola, amigo", English: "hi\nfriend", Pronunciation: `say "OH-lah"`},
	}

	data, err := ExportCSV(entries)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"hola, amigo", "hi\nfriend", `say "OH-lah"`}, records[1])
}
