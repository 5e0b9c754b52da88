package document

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
	require.NoError(t, db.AutoMigrate(&Document{}))
	return NewService(NewRepository(db), nil)
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory(CategorySabhaSadasya))
	assert.True(t, ValidCategory(CategoryPatraPatrika))
	assert.True(t, ValidCategory(CategorySadasyaSuchi))
	assert.False(t, ValidCategory("newsletters"))
	assert.False(t, ValidCategory(""))
}

func TestList_UnknownCategory(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.List("newsletters")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCreateAndList_CollectionsAreIsolated(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.Create(CategorySabhaSadasya, &CreateRequest{Title: "Members 2026", PdfURL: "a.pdf"}, nil, "")
	require.NoError(t, err)
	_, err = svc.Create(CategoryPatraPatrika, &CreateRequest{Title: "Spring Newsletter", PdfURL: "b.pdf"}, nil, "")
	require.NoError(t, err)

	docs, err := svc.List(CategorySabhaSadasya)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Members 2026", docs[0].Title)

	docs, err = svc.List(CategorySadasyaSuchi)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestDelete_ScopedToCategory(t *testing.T) {
	svc := setupTestService(t)

	d, err := svc.Create(CategorySabhaSadasya, &CreateRequest{Title: "Members 2026", PdfURL: "a.pdf"}, nil, "")
	require.NoError(t, err)

	// Deleting through the wrong collection leaves the row in place.
	require.NoError(t, svc.Delete(CategoryPatraPatrika, d.ID, nil, ""))
	docs, err := svc.List(CategorySabhaSadasya)
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	require.NoError(t, svc.Delete(CategorySabhaSadasya, d.ID, nil, ""))
	docs, err = svc.List(CategorySabhaSadasya)
	require.NoError(t, err)
	assert.Empty(t, docs)
}
