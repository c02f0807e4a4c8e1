package usecase

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ridemate/ridemate/internal/pkg/apperr"
	jwtpkg "github.com/ridemate/ridemate/internal/pkg/jwt"
	"github.com/ridemate/ridemate/internal/pkg/logger"
	"github.com/ridemate/ridemate/internal/pkg/models"
	"github.com/ridemate/ridemate/internal/utils"
)

const minPasswordLength = 8

// Register creates a new rider account and returns an authenticated session
func (u *UserUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var reasons []string
	if !utils.IsValidEmail(email) {
		reasons = append(reasons, "invalid email address")
	}
	if len(req.Password) < minPasswordLength {
		reasons = append(reasons, "password must be at least 8 characters")
	}
	if strings.TrimSpace(req.FullName) == "" {
		reasons = append(reasons, "full name is required")
	}
	if req.Phone != "" && !utils.IsValidPhoneNumber(req.Phone) {
		reasons = append(reasons, "invalid phone number")
	}
	if len(reasons) > 0 {
		return nil, apperr.BadRequest("Invalid registration request", reasons...)
	}

	existing, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.Internal("failed to check existing user", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal("failed to hash password", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		FullName: strings.TrimSpace(req.FullName),
		Phone:    req.Phone,
		Role:     models.RoleRider,
	}

	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, apperr.Internal("failed to create user", err)
	}

	logger.Info("User registered",
		logger.String("user_id", user.ID.String()),
		logger.String("email", utils.MaskEmail(user.Email)))

	return u.issueToken(user)
}

// Login authenticates a user by email and password
func (u *UserUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Unauthorized("Invalid email or password")
		}
		return nil, apperr.Internal("failed to get user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	if user.IsBlocked {
		return nil, apperr.Forbidden("Account is blocked")
	}

	logger.Info("User logged in",
		logger.String("user_id", user.ID.String()),
		logger.String("role", user.Role))

	return u.issueToken(user)
}

func (u *UserUC) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, user.Role, u.cfg.JWT)
	if err != nil {
		return nil, apperr.Internal("failed to generate token", err)
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}
