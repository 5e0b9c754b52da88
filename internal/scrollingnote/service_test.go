package scrollingnote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&ScrollingNote{}))
	return NewService(NewRepository(db), nil)
}

func TestGet_ReturnsNilWhenUnset(t *testing.T) {
	svc := setupTestService(t)

	note, err := svc.Get()
	require.NoError(t, err)
	assert.Nil(t, note)
}

func TestSet_SecondWriteReplacesFirst(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.Set("Diwali celebration on Sunday", nil, "")
	require.NoError(t, err)
	note, err := svc.Set("Venue changed to community hall", nil, "")
	require.NoError(t, err)
	assert.Equal(t, SingletonID, note.ID)

	// Still a single row, holding the latest message.
	var count int64
	require.NoError(t, svc.Repo.DB.Model(&ScrollingNote{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	current, err := svc.Get()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "Venue changed to community hall", current.Message)
}

func TestClear_RemovesNoteAndIsIdempotent(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.Set("Annual general meeting notice", nil, "")
	require.NoError(t, err)

	require.NoError(t, svc.Clear(nil, ""))

	note, err := svc.Get()
	require.NoError(t, err)
	assert.Nil(t, note)

	// Clearing an already-empty note succeeds.
	require.NoError(t, svc.Clear(nil, ""))
}
