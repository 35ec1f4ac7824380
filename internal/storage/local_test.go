package storage

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestLocal(t *testing.T, maxBackups int) *Local {
	t.Helper()
	local, err := OpenLocal(filepath.Join(t.TempDir(), "tukiosko.db"), maxBackups)
	require.NoError(t, err)
	t.Cleanup(func() { local.Close() })
	return local
}

func TestSaveAndGetPrimaryCopy(t *testing.T) {
	local := openTestLocal(t, 5)

	require.NoError(t, local.Save("/stockcsv/products.csv", "codigo,nombre\n1,Pan"))

	content, ok := local.Get("/stockcsv/products.csv")
	require.True(t, ok)
	assert.Equal(t, "codigo,nombre\n1,Pan", content)
}

func TestGetMissingKey(t *testing.T) {
	local := openTestLocal(t, 5)

	_, ok := local.Get("/stockcsv/nope.csv")
	assert.False(t, ok)
}

func TestSaveOverwritesPrimaryCopy(t *testing.T) {
	local := openTestLocal(t, 5)

	require.NoError(t, local.Save("/stockcsv/sales.csv", "v1"))
	require.NoError(t, local.Save("/stockcsv/sales.csv", "v2"))

	content, ok := local.Get("/stockcsv/sales.csv")
	require.True(t, ok)
	assert.Equal(t, "v2", content)
}

func TestBackupsAreBounded(t *testing.T) {
	local := openTestLocal(t, 3)

	for i := 0; i < 10; i++ {
		require.NoError(t, local.Save("/stockcsv/products.csv", fmt.Sprintf("version %d", i)))
	}

	backups := local.Backups("/stockcsv/products.csv")
	assert.LessOrEqual(t, len(backups), 3)
	assert.NotEmpty(t, backups)
}

func TestBackupsPerKeyAreIndependent(t *testing.T) {
	local := openTestLocal(t, 2)

	require.NoError(t, local.Save("/stockcsv/products.csv", "p"))
	require.NoError(t, local.Save("/stockcsv/sales.csv", "s"))

	assert.NotEmpty(t, local.Backups("/stockcsv/products.csv"))
	assert.NotEmpty(t, local.Backups("/stockcsv/sales.csv"))
}
