package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/samajconnect/portal-backend/config"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTAccessSecret:    "test-access-secret",
		JWTRefreshSecret:   "test-refresh-secret",
		JWTAccessTTLHours:  1,
		JWTRefreshTTLHours: 24,
	}
}

func setupTestService(t *testing.T) (Service, Repository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}))
	repo := NewRepository(db)
	return NewService(repo, nil, testConfig()), repo
}

func seedUser(t *testing.T, repo Repository, email, password, role string, approved bool) *User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &User{
		Email:        NormalizeEmail(email),
		PasswordHash: string(hash),
		Role:         role,
		IsApproved:   approved,
	}
	require.NoError(t, repo.Create(user))
	return user
}

func TestLogin_ApprovedMember(t *testing.T) {
	svc, repo := setupTestService(t)
	seedUser(t, repo, "ramesh@example.com", "secret123", RoleMember, true)

	tokens, user, err := svc.Login(LoginInput{Email: "ramesh@example.com", Password: "secret123"})
	require.NoError(t, err)
	require.NotNil(t, tokens)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "ramesh@example.com", user.Email)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(tokens.AccessToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-access-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, RoleMember, claims["role"])
}

func TestLogin_EmailIsCaseInsensitive(t *testing.T) {
	svc, repo := setupTestService(t)
	seedUser(t, repo, "Ramesh@Example.com", "secret123", RoleMember, true)

	_, _, err := svc.Login(LoginInput{Email: "ramesh@example.com", Password: "secret123"})
	require.NoError(t, err)
}

func TestLogin_WrongPasswordAndUnknownEmailAreIndistinguishable(t *testing.T) {
	svc, repo := setupTestService(t)
	seedUser(t, repo, "ramesh@example.com", "secret123", RoleMember, true)

	_, _, wrongPass := svc.Login(LoginInput{Email: "ramesh@example.com", Password: "wrong"})
	_, _, unknown := svc.Login(LoginInput{Email: "nobody@example.com", Password: "secret123"})

	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, ErrInvalidCredentials)
	assert.Equal(t, wrongPass.Error(), unknown.Error())
}

func TestLogin_UnapprovedMemberIsGated(t *testing.T) {
	svc, repo := setupTestService(t)
	seedUser(t, repo, "pending@example.com", "secret123", RoleMember, false)

	_, _, err := svc.Login(LoginInput{Email: "pending@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrPendingApproval)
}

func TestLogin_AdminSkipsApprovalGate(t *testing.T) {
	svc, repo := setupTestService(t)
	seedUser(t, repo, "admin@example.com", "secret123", RoleAdmin, false)

	tokens, user, err := svc.Login(LoginInput{Email: "admin@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotNil(t, tokens)
	assert.Equal(t, RoleAdmin, user.Role)
}

func TestRegister_CreatesUnapprovedMember(t *testing.T) {
	svc, repo := setupTestService(t)

	err := svc.Register(RegisterInput{
		Email:    "New.User@Example.com ",
		Password: "secret123",
		Name:     "New User",
	})
	require.NoError(t, err)

	user, err := repo.FindByEmail("new.user@example.com")
	require.NoError(t, err)
	assert.Equal(t, RoleMember, user.Role)
	assert.False(t, user.IsApproved)
	assert.NotEqual(t, "secret123", user.PasswordHash)
}

func TestRefresh_IssuesNewAccessToken(t *testing.T) {
	svc, repo := setupTestService(t)
	seedUser(t, repo, "ramesh@example.com", "secret123", RoleMember, true)

	tokens, _, err := svc.Login(LoginInput{Email: "ramesh@example.com", Password: "secret123"})
	require.NoError(t, err)

	accessToken, err := svc.Refresh(tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
}

func TestRefresh_RejectsGarbageToken(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.Refresh("not-a-jwt")
	assert.Error(t, err)
}
