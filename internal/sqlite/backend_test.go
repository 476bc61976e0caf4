package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lambent/pkg/types"
)

func testConfig(t *testing.T) types.Config {
	t.Helper()
	return types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
}

func attachedBackend(t *testing.T) *Backend {
	t.Helper()
	b := NewBackend()
	require.NoError(t, b.Attach(testConfig(t)))
	t.Cleanup(func() { b.Detach() })
	return b
}

func TestAttachCreatesDatabase(t *testing.T) {
	cfg := testConfig(t)
	b := NewBackend()
	require.NoError(t, b.Attach(cfg))
	defer b.Detach()

	_, err := os.Stat(filepath.Join(cfg.DataDir, dbFileName))
	assert.NoError(t, err)
}

func TestAttachCreatesDataDir(t *testing.T) {
	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: filepath.Join(t.TempDir(), "nested", "data"),
	}
	b := NewBackend()
	require.NoError(t, b.Attach(cfg))
	defer b.Detach()

	info, err := os.Stat(cfg.DataDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestAttachTwiceFails(t *testing.T) {
	b := attachedBackend(t)

	err := b.Attach(testConfig(t))
	assert.ErrorIs(t, err, types.ErrAlreadyAttached)
}

func TestAttachRejectsInvalidConfig(t *testing.T) {
	b := NewBackend()
	err := b.Attach(types.Config{Backend: "postgres", DataDir: t.TempDir()})
	assert.Error(t, err)
}

func TestDetachIsIdempotent(t *testing.T) {
	b := attachedBackend(t)

	require.NoError(t, b.Detach())
	require.NoError(t, b.Detach())
}

func TestOperationsRequireAttach(t *testing.T) {
	b := NewBackend()

	_, err := b.SaveExample(&types.Example{Name: "x", ExprText: "x"})
	assert.ErrorIs(t, err, types.ErrArchiveDetached)

	_, err = b.GetExample("some-id")
	assert.ErrorIs(t, err, types.ErrArchiveDetached)

	_, err = b.ListExamples()
	assert.ErrorIs(t, err, types.ErrArchiveDetached)

	err = b.DeleteExample("some-id")
	assert.ErrorIs(t, err, types.ErrArchiveDetached)
}

func TestReattachPreservesData(t *testing.T) {
	cfg := testConfig(t)
	b := NewBackend()
	require.NoError(t, b.Attach(cfg))

	id, err := b.SaveExample(&types.Example{
		Name:     "persisted",
		Category: "basics",
		Source:   types.SourceUser,
		ExprText: "x",
	})
	require.NoError(t, err)
	require.NoError(t, b.Detach())

	require.NoError(t, b.Attach(cfg))
	defer b.Detach()

	got, err := b.GetExample(id)
	require.NoError(t, err)
	assert.Equal(t, "persisted", got.Name)
}
