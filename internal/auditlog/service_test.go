package auditlog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestService(t *testing.T) Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&AuditLog{}))
	return NewService(NewRepository(db))
}

func TestLogAction_PersistsDirectlyWithoutKafka(t *testing.T) {
	svc := setupTestService(t)
	actor := uint(7)

	err := svc.LogAction(context.Background(), &actor, "MEMBER_CREATED",
		map[string]interface{}{"member_id": 12}, "10.0.0.1", "SUCCESS")
	require.NoError(t, err)

	page, err := svc.GetAuditLogs(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)

	entry := page.Data[0]
	require.NotNil(t, entry.UserID)
	assert.Equal(t, uint(7), *entry.UserID)
	assert.Equal(t, "MEMBER_CREATED", entry.Action)
	assert.Equal(t, "10.0.0.1", entry.IPAddress)
	assert.JSONEq(t, `{"member_id":12}`, string(entry.Details))
}

func TestLogAction_NilActorAndDetails(t *testing.T) {
	svc := setupTestService(t)

	err := svc.LogAction(context.Background(), nil, "LOGIN_FAILED", nil, "10.0.0.2", "FAILURE")
	require.NoError(t, err)

	page, err := svc.GetAuditLogs(context.Background(), Filter{Status: "FAILURE"})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Nil(t, page.Data[0].UserID)
	assert.JSONEq(t, `{}`, string(page.Data[0].Details))
}

func TestGetAuditLogs_FilterAndPagination(t *testing.T) {
	svc := setupTestService(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.LogAction(context.Background(), nil, "EVENT_CREATED", nil, "", "SUCCESS"))
	}
	require.NoError(t, svc.LogAction(context.Background(), nil, "EVENT_DELETED", nil, "", "SUCCESS"))

	page, err := svc.GetAuditLogs(context.Background(), Filter{Action: "EVENT_CREATED", Page: 1, Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
	assert.Len(t, page.Data, 3)
	assert.Equal(t, 2, page.TotalPages)

	// Defaults kick in for unset paging values.
	page, err = svc.GetAuditLogs(context.Background(), Filter{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.Limit)
	assert.Equal(t, int64(6), page.Total)
}

func TestGetAuditLogByID_NotFound(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.GetAuditLogByID(context.Background(), 404)
	assert.Error(t, err)
}
