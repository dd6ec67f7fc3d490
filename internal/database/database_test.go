package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tomlord1122/todo-dbsetup/internal/config"
	"github.com/Tomlord1122/todo-dbsetup/internal/domain"
)

func testConfig(url string) config.Database {
	return config.Database{
		URL:             url,
		MaxIdleConns:    2,
		MaxOpenConns:    4,
		ConnMaxLifetime: time.Minute,
	}
}

func openTemp(t *testing.T) (Service, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "todo.db")
	svc, err := New(testConfig("sqlite:///" + path))
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })
	return svc, path
}

func TestNewSQLiteCreatesParentDirectory(t *testing.T) {
	svc, path := openTemp(t)
	require.NoError(t, Init(svc))

	assert.FileExists(t, path)
	assert.Equal(t, path, svc.Location())
}

func TestNewRejectsUnknownScheme(t *testing.T) {
	_, err := New(testConfig("mysql://root@localhost/todo"))
	assert.ErrorIs(t, err, ErrUnsupportedScheme)

	_, err = New(testConfig("todo.db"))
	assert.ErrorIs(t, err, ErrUnsupportedScheme)
}

func TestNewRejectsEmptySQLitePath(t *testing.T) {
	_, err := New(testConfig("sqlite:///"))
	assert.Error(t, err)
}

func TestInitCreatesTablesIdempotently(t *testing.T) {
	svc, _ := openTemp(t)

	require.NoError(t, Init(svc))
	require.NoError(t, svc.GetDB().Create(&domain.User{Username: "a", Email: "a@example.com", PasswordHash: "x"}).Error)

	// Second call must not drop or recreate existing tables.
	require.NoError(t, Init(svc))

	migrator := svc.GetDB().Migrator()
	assert.True(t, migrator.HasTable("users"))
	assert.True(t, migrator.HasTable("todos"))

	var count int64
	require.NoError(t, svc.GetDB().Model(&domain.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestForeignKeyEnforced(t *testing.T) {
	svc, _ := openTemp(t)
	require.NoError(t, Init(svc))

	err := svc.GetDB().Create(&domain.Todo{TaskContent: "orphan", UserID: 42}).Error
	assert.Error(t, err)
}

func TestHealthUp(t *testing.T) {
	svc, _ := openTemp(t)

	stats := svc.Health()
	assert.Equal(t, "up", stats["status"])
	assert.Equal(t, "sqlite", stats["dialect"])
}

func TestHealthDownAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.db")
	svc, err := New(testConfig("sqlite:///" + path))
	require.NoError(t, err)
	require.NoError(t, svc.Close())

	stats := svc.Health()
	assert.Equal(t, "down", stats["status"])
	assert.NotEmpty(t, stats["error"])
}

func TestSQLiteURLQueryKeepsForeignKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.db")
	svc, err := New(testConfig("sqlite:///" + path + "?cache=shared"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })
	require.NoError(t, Init(svc))

	assert.Equal(t, path, svc.Location())
	assert.FileExists(t, path)

	var foreignKeys int
	require.NoError(t, svc.GetDB().Raw("PRAGMA foreign_keys").Scan(&foreignKeys).Error)
	assert.Equal(t, 1, foreignKeys)

	err = svc.GetDB().Create(&domain.Todo{TaskContent: "orphan", UserID: 42}).Error
	assert.Error(t, err)
}
