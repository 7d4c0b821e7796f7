package session

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"convertor/internal/domain/user"
)

func TestFileStore_SaveAndRead(t *testing.T) {
	store := NewFileStore(t.TempDir())

	saved := &user.User{UserID: 7, Name: "Ana Popescu", Email: "ana@example.com", PlanID: 2}
	require.NoError(t, store.Save(saved))

	got, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestFileStore_Read_MissingFile(t *testing.T) {
	store := NewFileStore(t.TempDir())

	_, err := store.Read()

	assert.ErrorIs(t, err, ErrNoSession)
}

func TestFileStore_Read_CorruptFileIsRemoved(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "user.json")
	require.NoError(t, os.WriteFile(path, []byte("{nu-e-json"), 0600))

	store := NewFileStore(dir)

	_, err := store.Read()

	assert.ErrorIs(t, err, ErrNoSession)
	assert.NoFileExists(t, path)
}

func TestFileStore_Read_InvalidUserIDIsRemoved(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "user.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"userid":0,"email":"ana@example.com"}`), 0600))

	store := NewFileStore(dir)

	_, err := store.Read()

	assert.ErrorIs(t, err, ErrNoSession)
	assert.NoFileExists(t, path)
}

func TestFileStore_Save_Permissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permisiunile POSIX nu se aplică pe Windows")
	}

	dir := t.TempDir()
	store := NewFileStore(dir)
	require.NoError(t, store.Save(&user.User{UserID: 7}))

	info, err := os.Stat(filepath.Join(dir, "user.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFileStore_Clear(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	require.NoError(t, store.Save(&user.User{UserID: 7}))

	require.NoError(t, store.Clear())
	assert.NoFileExists(t, filepath.Join(dir, "user.json"))

	// Ștergerea fără sesiune nu este o eroare.
	require.NoError(t, store.Clear())
}

func TestFileStore_UpdatePlan(t *testing.T) {
	store := NewFileStore(t.TempDir())
	require.NoError(t, store.Save(&user.User{UserID: 7, Name: "Ana Popescu", PlanID: 1}))

	require.NoError(t, store.UpdatePlan(3))

	got, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, 3, got.PlanID)
	assert.Equal(t, "Ana Popescu", got.Name)
}

func TestFileStore_UpdatePlan_NoSession(t *testing.T) {
	store := NewFileStore(t.TempDir())

	assert.ErrorIs(t, store.UpdatePlan(3), ErrNoSession)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Read()
	assert.ErrorIs(t, err, ErrNoSession)

	require.NoError(t, store.Save(&user.User{UserID: 7, PlanID: 1}))

	got, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, 7, got.UserID)

	// Mutarea copiei citite nu atinge starea internă.
	got.PlanID = 99
	again, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, 1, again.PlanID)

	require.NoError(t, store.UpdatePlan(2))
	updated, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, 2, updated.PlanID)

	require.NoError(t, store.Clear())
	_, err = store.Read()
	assert.ErrorIs(t, err, ErrNoSession)
}
