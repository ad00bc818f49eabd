package jsonstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), itemsFile)

	want := []itemJSON{
		{ItemID: "ITEM-1234", Name: "Wallet", Description: "Black leather", Location: "Library", ItemType: "lost", Status: "reported"},
		{ItemID: "ITEM-5678", Name: "Umbrella", Description: "Red", Location: "Cafeteria", ItemType: "found", Status: "reported"},
	}
	require.NoError(t, writeRecords(path, want))

	got, err := readRecords[itemJSON](path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWriteRecordsEmptyCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), claimsFile)

	require.NoError(t, writeRecords(path, []claimJSON(nil)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(data)), "nil collection must serialize as an empty array")
}

func TestWriteRecordsIndentation(t *testing.T) {
	path := filepath.Join(t.TempDir(), usersFile)

	require.NoError(t, writeRecords(path, []accountJSON{{ID: 1, Name: "Admin"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n    \"", "records must be pretty-printed with 4-space indentation")
}

func TestReadRecordsMissingFile(t *testing.T) {
	got, err := readRecords[itemJSON](filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadRecordsCorruptedFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not JSON", content: "this is not json{{{"},
		{name: "wrong shape", content: `{"id": 1}`},
		{name: "truncated array", content: `[{"item_id": "ITEM-12`},
		{name: "empty file", content: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), itemsFile)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			got, err := readRecords[itemJSON](path)
			require.NoError(t, err, "corruption must be tolerated, not surfaced")
			assert.Empty(t, got)
		})
	}
}

func TestWriteRecordsLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, writeRecords(filepath.Join(dir, itemsFile), []itemJSON{{ItemID: "ITEM-1000"}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, itemsFile, entries[0].Name())
}
