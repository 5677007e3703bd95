package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kyamashita/study-tracker-api/internal/models"
	"github.com/kyamashita/study-tracker-api/internal/repository"
)

func setupAuthService(t *testing.T) *AuthService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // ":memory:" is per-connection
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewAuthService(repository.NewUserRepository(db))
}

func TestAuthService_Register(t *testing.T) {
	svc := setupAuthService(t)

	user, err := svc.Register(RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "alice@example.com", user.Email)
	require.NotEqual(t, "supersecret", user.PasswordHash)
	require.False(t, user.CreatedAt.IsZero())
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := setupAuthService(t)

	_, err := svc.Register(RegisterInput{Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)

	_, err = svc.Register(RegisterInput{Email: "alice@example.com", Password: "different"})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Register_EmailCaseSensitive(t *testing.T) {
	svc := setupAuthService(t)

	_, err := svc.Register(RegisterInput{Email: "Alice@example.com", Password: "supersecret"})
	require.NoError(t, err)

	// Uniqueness is an exact match: a differently-cased email is a
	// distinct account.
	_, err = svc.Register(RegisterInput{Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)
}

func TestAuthService_Login(t *testing.T) {
	svc := setupAuthService(t)

	registered, err := svc.Register(RegisterInput{Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)

	user, err := svc.Login(LoginInput{Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)

	// Wrong password and unknown email are indistinguishable.
	_, err = svc.Login(LoginInput{Email: "alice@example.com", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(LoginInput{Email: "nobody@example.com", Password: "supersecret"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_GetUser(t *testing.T) {
	svc := setupAuthService(t)

	registered, err := svc.Register(RegisterInput{Email: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)

	user, err := svc.GetUser(registered.ID)
	require.NoError(t, err)
	require.Equal(t, registered.Email, user.Email)

	_, err = svc.GetUser("missing-id")
	require.ErrorIs(t, err, ErrUserNotFound)
}
