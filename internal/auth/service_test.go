package auth

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tradex-backend/internal/models"
)

func setupAuthTest(t *testing.T) *Service {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	// One connection: a pooled second conn would get its own :memory: database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return &Service{DB: db, TokenSecret: "test-secret"}
}

func TestSignup_Success(t *testing.T) {
	svc := setupAuthTest(t)
	u, token, err := svc.Signup(context.Background(), SignupInput{
		Email:    "Trader@Example.com ",
		Password: "hunter42",
		Username: "trader1",
	})
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "trader@example.com", u.Email)
	assert.Equal(t, "trader1", u.Username)
	assert.NotEmpty(t, token)
	// Stored hash verifies against the original password.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter42")))

	claims, err := ParseToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, u.UserID, claims.UserID)
	assert.Equal(t, "trader@example.com", claims.Email)
	assert.Equal(t, "trader1", claims.Username)
}

// Password of exactly 8 characters succeeds; 7 fails and names the password rule.
func TestSignup_PasswordBoundary(t *testing.T) {
	svc := setupAuthTest(t)

	_, _, err := svc.Signup(context.Background(), SignupInput{
		Email:    "eight@example.com",
		Password: "12345678",
		Username: "eightchars",
	})
	require.NoError(t, err)

	_, _, err = svc.Signup(context.Background(), SignupInput{
		Email:    "seven@example.com",
		Password: "1234567",
		Username: "sevenchars",
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Violations, "Password must be at least 8 characters")
}

// All violations are collected, not short-circuited on the first failure.
func TestSignup_CollectsAllViolations(t *testing.T) {
	svc := setupAuthTest(t)
	_, _, err := svc.Signup(context.Background(), SignupInput{
		Email:    "not-an-email",
		Password: "short",
		Username: "ab",
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Violations, 3)
	assert.Contains(t, ve.Violations, "Invalid email format")
	assert.Contains(t, ve.Violations, "Password must be at least 8 characters")
	assert.Contains(t, ve.Violations, "Username must be at least 3 characters")
}

func TestSignup_MissingFields(t *testing.T) {
	svc := setupAuthTest(t)
	_, _, err := svc.Signup(context.Background(), SignupInput{})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Violations, "email is required")
	assert.Contains(t, ve.Violations, "password is required")
	assert.Contains(t, ve.Violations, "username is required")
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc := setupAuthTest(t)
	_, _, err := svc.Signup(context.Background(), SignupInput{
		Email: "dup@example.com", Password: "password1", Username: "first",
	})
	require.NoError(t, err)

	_, _, err = svc.Signup(context.Background(), SignupInput{
		Email: "dup@example.com", Password: "password2", Username: "second",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

// When email and username both collide the email conflict wins.
func TestSignup_EmailConflictBeforeUsername(t *testing.T) {
	svc := setupAuthTest(t)
	_, _, err := svc.Signup(context.Background(), SignupInput{
		Email: "both@example.com", Password: "password1", Username: "bothuser",
	})
	require.NoError(t, err)

	_, _, err = svc.Signup(context.Background(), SignupInput{
		Email: "both@example.com", Password: "password1", Username: "bothuser",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignup_DuplicateUsername(t *testing.T) {
	svc := setupAuthTest(t)
	_, _, err := svc.Signup(context.Background(), SignupInput{
		Email: "one@example.com", Password: "password1", Username: "sameuser",
	})
	require.NoError(t, err)

	_, _, err = svc.Signup(context.Background(), SignupInput{
		Email: "two@example.com", Password: "password1", Username: "sameuser",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}
