package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrapCreatesFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, bootstrapFiles(dir))

	for _, name := range []string{usersFile, itemsFile, claimsFile} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "%s should exist after bootstrap", name)
	}

	accounts, err := readRecords[accountJSON](filepath.Join(dir, usersFile))
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, 1, accounts[0].ID)
	assert.Equal(t, "admin@dlfs.com", accounts[0].Email)
	assert.Equal(t, "admin", accounts[0].Role)
	assert.Equal(t, 2, accounts[1].ID)
	assert.Equal(t, "user", accounts[1].Role)

	items, err := readRecords[itemJSON](filepath.Join(dir, itemsFile))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestBootstrapIdempotent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, bootstrapFiles(dir))
	require.NoError(t, bootstrapFiles(dir))

	accounts, err := readRecords[accountJSON](filepath.Join(dir, usersFile))
	require.NoError(t, err)
	assert.Len(t, accounts, 2, "re-running bootstrap must not re-seed")
}

func TestBootstrapPreservesExistingData(t *testing.T) {
	dir := t.TempDir()
	existing := []accountJSON{{ID: 7, Name: "Keep", Email: "keep@dlfs.com", Password: "pw", Role: "user"}}
	require.NoError(t, writeRecords(filepath.Join(dir, usersFile), existing))

	require.NoError(t, bootstrapFiles(dir))

	accounts, err := readRecords[accountJSON](filepath.Join(dir, usersFile))
	require.NoError(t, err)
	assert.Equal(t, existing, accounts, "bootstrap must not overwrite an existing users file")
}
