package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/crumbline/bakeshop/internal/hash"
	"github.com/crumbline/bakeshop/internal/logging"
	"github.com/crumbline/bakeshop/internal/models"
	"github.com/crumbline/bakeshop/internal/repo"
)

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
	TokenTTL  time.Duration
}

func (s *AuthService) signToken(user *models.User) (string, error) {
	ttl := s.TokenTTL
	if ttl == 0 {
		ttl = 7 * 24 * time.Hour
	}
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.JWTSecret)
}

func (s *AuthService) Register(ctx context.Context, mobile, password string) (*models.User, string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if !mobileRe.MatchString(mobile) {
		return nil, "", fmt.Errorf("%w: please provide a valid 10-digit mobile number", ErrValidation)
	}
	if password == "" {
		return nil, "", fmt.Errorf("%w: please provide password", ErrValidation)
	}

	if _, err := s.Repo.GetUserByMobile(ctx, mobile); err == nil {
		return nil, "", ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		l.Error("register_error", "status", 500, "error", err)
		return nil, "", err
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_error", "status", 500, "reason", "cannot hash the password", "error", err)
		return nil, "", err
	}

	user := &models.User{
		MobileNumber: mobile,
		PasswordHash: pwHash,
		Role:         models.RoleUser,
	}
	if _, err := s.Repo.CreateUser(ctx, user); err != nil {
		l.Error("register_error", "status", 500, "error", err)
		return nil, "", err
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, "", err
	}

	l.Info("register_success", "user_id", user.ID)
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, mobile, password string) (*models.User, string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	if mobile == "" || password == "" {
		return nil, "", fmt.Errorf("%w: please provide mobile number and password", ErrValidation)
	}

	user, err := s.Repo.GetUserByMobile(ctx, mobile)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		l.Error("login_error", "status", 500, "error", err)
		return nil, "", err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "status", 401, "user_id", user.ID)
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, "", err
	}

	l.Info("login_success", "user_id", user.ID)
	return user, token, nil
}

// Me returns the current user with the wishlist resolved.
func (s *AuthService) Me(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.Repo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user not found", ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}
