package auth

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tradex-backend/internal/models"
	"tradex-backend/internal/pkg/validation"
)

// Service holds dependencies for signup.
type Service struct {
	DB          *gorm.DB
	TokenSecret string
}

// SignupInput matches the signup request body.
type SignupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

// Signup validates input (collecting every violation), enforces uniqueness
// (email before username), hashes the password with bcrypt cost 10 and issues
// a signed one-hour token.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	password := strings.TrimSpace(in.Password)
	username := strings.TrimSpace(in.Username)

	var violations []string
	switch {
	case email == "":
		violations = append(violations, "email is required")
	case !validation.IsValidEmail(email):
		violations = append(violations, "Invalid email format")
	}
	switch {
	case password == "":
		violations = append(violations, "password is required")
	case len(password) < validation.MinPasswordLen:
		violations = append(violations, fmt.Sprintf("Password must be at least %d characters", validation.MinPasswordLen))
	}
	switch {
	case username == "":
		violations = append(violations, "username is required")
	case len(username) < validation.MinUsernameLen:
		violations = append(violations, fmt.Sprintf("Username must be at least %d characters", validation.MinUsernameLen))
	}
	if len(violations) > 0 {
		return nil, "", &ValidationError{Violations: violations}
	}

	// Email is checked before username so that when both collide the email
	// conflict wins.
	var existing models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, "", ErrEmailTaken
	}
	if err := s.DB.WithContext(ctx).Where("username = ?", username).First(&existing).Error; err == nil {
		return nil, "", ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return nil, "", err
	}

	u := &models.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.DB.WithContext(ctx).Create(u).Error; err != nil {
		return nil, "", err
	}

	token, err := GenerateToken(s.TokenSecret, u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}
