package homeimage

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
	require.NoError(t, db.AutoMigrate(&HomeImage{}))
	return NewService(NewRepository(db), nil)
}

func seedSlides(t *testing.T, svc *Service) (a, b, c *HomeImage) {
	t.Helper()
	a = &HomeImage{Title: "A", ImageURL: "a.jpg", DisplayOrder: 1, IsActive: true}
	b = &HomeImage{Title: "B", ImageURL: "b.jpg", DisplayOrder: 2, IsActive: true}
	c = &HomeImage{Title: "C", ImageURL: "c.jpg", DisplayOrder: 3, IsActive: true}
	for _, img := range []*HomeImage{a, b, c} {
		require.NoError(t, svc.Repo.Create(img))
	}
	return a, b, c
}

func orderedTitles(t *testing.T, svc *Service) []string {
	t.Helper()
	images, err := svc.ListAdmin()
	require.NoError(t, err)
	titles := make([]string, len(images))
	for i, img := range images {
		titles[i] = img.Title
	}
	return titles
}

func TestReorder_MoveUpSwapsWithPredecessor(t *testing.T) {
	svc := setupTestService(t)
	a, b, c := seedSlides(t, svc)

	require.NoError(t, svc.Reorder(b.ID, DirectionUp, nil, ""))

	assert.Equal(t, []string{"B", "A", "C"}, orderedTitles(t, svc))

	// Only the two affected rows change their display_order.
	refA, err := svc.Repo.GetByID(a.ID)
	require.NoError(t, err)
	refB, err := svc.Repo.GetByID(b.ID)
	require.NoError(t, err)
	refC, err := svc.Repo.GetByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, refA.DisplayOrder)
	assert.Equal(t, 1, refB.DisplayOrder)
	assert.Equal(t, 3, refC.DisplayOrder)
}

func TestReorder_BoundariesAreNoOps(t *testing.T) {
	svc := setupTestService(t)
	a, _, c := seedSlides(t, svc)

	// First slide up and last slide down both succeed without changes.
	require.NoError(t, svc.Reorder(a.ID, DirectionUp, nil, ""))
	require.NoError(t, svc.Reorder(c.ID, DirectionDown, nil, ""))

	assert.Equal(t, []string{"A", "B", "C"}, orderedTitles(t, svc))
}

func TestReorder_UpThenDownRestoresOrder(t *testing.T) {
	svc := setupTestService(t)
	_, b, _ := seedSlides(t, svc)

	require.NoError(t, svc.Reorder(b.ID, DirectionUp, nil, ""))
	require.NoError(t, svc.Reorder(b.ID, DirectionDown, nil, ""))

	assert.Equal(t, []string{"A", "B", "C"}, orderedTitles(t, svc))
}

func TestReorder_InvalidDirection(t *testing.T) {
	svc := setupTestService(t)
	a, _, _ := seedSlides(t, svc)

	err := svc.Reorder(a.ID, "sideways", nil, "")
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestReorder_UnknownImage(t *testing.T) {
	svc := setupTestService(t)
	seedSlides(t, svc)

	err := svc.Reorder(9999, DirectionUp, nil, "")
	assert.Error(t, err)
}

func TestCreate_InactiveStaysInactive(t *testing.T) {
	svc := setupTestService(t)

	inactive := false
	img, err := svc.Create(&UpsertRequest{Title: "Draft", ImageURL: "draft.jpg", IsActive: &inactive}, nil, "")
	require.NoError(t, err)

	stored, err := svc.Repo.GetByID(img.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)

	images, err := svc.ListPublic()
	require.NoError(t, err)
	assert.Empty(t, images)
}

func TestListPublic_ExcludesInactive(t *testing.T) {
	svc := setupTestService(t)
	_, b, _ := seedSlides(t, svc)

	b.IsActive = false
	require.NoError(t, svc.Repo.Update(b))

	images, err := svc.ListPublic()
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "A", images[0].Title)
	assert.Equal(t, "C", images[1].Title)
}
