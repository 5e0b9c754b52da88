package committee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/samajconnect/portal-backend/internal/member"
)

func setupTestService(t *testing.T) (*Service, *member.Repository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&member.Member{}, &Committee{}, &CommitteeMember{}))
	return NewService(NewRepository(db), nil), member.NewRepository(db)
}

func TestAddMember_FlattensIntoView(t *testing.T) {
	svc, memberRepo := setupTestService(t)

	m := &member.Member{FamilyHeadName: "Agarwal", Name: "Ramesh Agarwal", ImageURL: "ramesh.jpg"}
	require.NoError(t, memberRepo.Create(m))

	cm, err := svc.Create(&UpsertRequest{Name: "Education Committee"}, nil, "")
	require.NoError(t, err)

	assignment, err := svc.AddMember(cm.ID, &AssignRequest{MemberID: m.ID, Position: "President"}, nil, "")
	require.NoError(t, err)

	views, err := svc.ListPublic()
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Len(t, views[0].Members, 1)

	got := views[0].Members[0]
	assert.Equal(t, m.ID, got.ID)
	assert.Equal(t, "Ramesh Agarwal", got.Name)
	assert.Equal(t, "ramesh.jpg", got.ImageURL)
	assert.Equal(t, "President", got.Position)
	assert.Equal(t, assignment.ID, got.CommitteeMemberID)
}

func TestAddMember_UnknownCommittee(t *testing.T) {
	svc, memberRepo := setupTestService(t)

	m := &member.Member{FamilyHeadName: "Agarwal"}
	require.NoError(t, memberRepo.Create(m))

	_, err := svc.AddMember(9999, &AssignRequest{MemberID: m.ID}, nil, "")
	assert.Error(t, err)
}

func TestRemoveMember_LeavesCommitteeIntact(t *testing.T) {
	svc, memberRepo := setupTestService(t)

	m := &member.Member{FamilyHeadName: "Agarwal"}
	require.NoError(t, memberRepo.Create(m))

	cm, err := svc.Create(&UpsertRequest{Name: "Education Committee"}, nil, "")
	require.NoError(t, err)
	assignment, err := svc.AddMember(cm.ID, &AssignRequest{MemberID: m.ID}, nil, "")
	require.NoError(t, err)

	require.NoError(t, svc.RemoveMember(cm.ID, assignment.ID, nil, ""))

	views, err := svc.ListAdmin()
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Empty(t, views[0].Members)
}

func TestDelete_RemovesAssignments(t *testing.T) {
	svc, memberRepo := setupTestService(t)

	m := &member.Member{FamilyHeadName: "Agarwal"}
	require.NoError(t, memberRepo.Create(m))

	cm, err := svc.Create(&UpsertRequest{Name: "Education Committee"}, nil, "")
	require.NoError(t, err)
	_, err = svc.AddMember(cm.ID, &AssignRequest{MemberID: m.ID}, nil, "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(cm.ID, nil, ""))

	var count int64
	require.NoError(t, svc.Repo.DB.Model(&CommitteeMember{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestListPublic_ExcludesInactive(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.Create(&UpsertRequest{Name: "Education Committee"}, nil, "")
	require.NoError(t, err)

	inactive := false
	_, err = svc.Create(&UpsertRequest{Name: "Old Committee", IsActive: &inactive}, nil, "")
	require.NoError(t, err)

	views, err := svc.ListPublic()
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Education Committee", views[0].Name)
}
