package member

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Member{}))
	return db
}

func seedMembers(t *testing.T, repo *Repository, members ...Member) {
	t.Helper()
	for i := range members {
		require.NoError(t, repo.Create(&members[i]))
	}
}

func TestFetchAll_NoSearchReturnsAllOrdered(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	seedMembers(t, repo,
		Member{FamilyHeadName: "Verma", City: "Jaipur"},
		Member{FamilyHeadName: "Agarwal", City: "Kota"},
		Member{FamilyHeadName: "Mehta", City: "Udaipur"},
	)

	members, total, err := repo.FetchAll("")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, members, 3)
	assert.Equal(t, "Agarwal", members[0].FamilyHeadName)
	assert.Equal(t, "Mehta", members[1].FamilyHeadName)
	assert.Equal(t, "Verma", members[2].FamilyHeadName)
}

func TestFetchAll_SearchMatchesAcrossColumns(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	seedMembers(t, repo,
		Member{FamilyHeadName: "Agarwal", Gotra: "Kashyap"},
		Member{FamilyHeadName: "Mehta", City: "Jaipur"},
		Member{FamilyHeadName: "Verma", Business: "Textiles"},
		Member{FamilyHeadName: "Sharma", State: "Gujarat"},
	)

	cases := []struct {
		search string
		want   string
	}{
		{"kashyap", "Agarwal"}, // gotra, case-insensitive
		{"Jaipur", "Mehta"},    // city
		{"textil", "Verma"},    // business, partial match
		{"verma", "Verma"},     // family head name itself
	}

	for _, tc := range cases {
		members, total, err := repo.FetchAll(tc.search)
		require.NoError(t, err, "search %q", tc.search)
		require.Len(t, members, 1, "search %q", tc.search)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, tc.want, members[0].FamilyHeadName)
	}
}

func TestFetchAll_SearchEscapesWildcards(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	seedMembers(t, repo,
		Member{FamilyHeadName: "Agarwal", Business: "100% Cotton"},
		Member{FamilyHeadName: "Mehta", Business: "1000 Looms"},
		Member{FamilyHeadName: "Verma", Business: "snake_case traders"},
		Member{FamilyHeadName: "Sharma", Business: "snakeXcase traders"},
	)

	members, total, err := repo.FetchAll("100%")
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Agarwal", members[0].FamilyHeadName)

	// Underscore must not act as a single-character wildcard.
	members, total, err = repo.FetchAll("snake_case")
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Verma", members[0].FamilyHeadName)
}

func TestFetchAll_SpansMultipleBatches(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	// More rows than one batch holds, with repeated names so the id
	// tie-break decides ordering at the batch boundary.
	total := fetchBatchSize + 250
	rows := make([]Member, 0, total)
	for i := 0; i < total; i++ {
		rows = append(rows, Member{
			FamilyHeadName: fmt.Sprintf("Family %03d", i%400),
		})
	}
	require.NoError(t, db.CreateInBatches(&rows, 500).Error)

	members, count, err := repo.FetchAll("")
	require.NoError(t, err)
	assert.Equal(t, int64(total), count)
	require.Len(t, members, total)

	seen := make(map[uint]struct{}, total)
	for i, m := range members {
		if _, dup := seen[m.ID]; dup {
			t.Fatalf("member id %d returned twice", m.ID)
		}
		seen[m.ID] = struct{}{}

		if i == 0 {
			continue
		}
		prev := members[i-1]
		if m.FamilyHeadName < prev.FamilyHeadName {
			t.Fatalf("order regressed at index %d: %q after %q", i, m.FamilyHeadName, prev.FamilyHeadName)
		}
		if m.FamilyHeadName == prev.FamilyHeadName && m.ID < prev.ID {
			t.Fatalf("id tie-break violated at index %d: %d after %d", i, m.ID, prev.ID)
		}
	}
}

func TestFetchAll_NoMatches(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	seedMembers(t, repo, Member{FamilyHeadName: "Agarwal"})

	members, total, err := repo.FetchAll("nonexistent")
	require.NoError(t, err)
	assert.Empty(t, members)
	assert.Equal(t, int64(0), total)
}

func TestListActive_ExcludesInactive(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	seedMembers(t, repo,
		Member{FamilyHeadName: "Agarwal", Name: "Ramesh", IsActive: true},
		Member{FamilyHeadName: "Mehta", Name: "Suresh", IsActive: false},
	)

	members, err := repo.ListActive()
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Ramesh", members[0].Name)
}
