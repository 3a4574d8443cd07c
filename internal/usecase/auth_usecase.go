package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	domainerrors "github.com/buildloghq/buildlog-backend/internal/domain/errors"
	"github.com/buildloghq/buildlog-backend/internal/domain/model"
	"github.com/buildloghq/buildlog-backend/internal/domain/repository"
)

// AuthConfig carries the owner credentials and token settings.
type AuthConfig struct {
	OwnerEmail        string
	OwnerName         string
	OwnerUsername     string
	OwnerPasswordHash string
	JWTSecret         string
	TokenExpiry       time.Duration
}

// AuthUseCase authenticates the owner and issues the signed auth token
// carried in an HttpOnly cookie.
type AuthUseCase struct {
	config   AuthConfig
	userRepo repository.UserRepository
	logger   *zap.Logger
}

// NewAuthUseCase creates the auth usecase.
func NewAuthUseCase(config AuthConfig, userRepo repository.UserRepository, logger *zap.Logger) *AuthUseCase {
	return &AuthUseCase{
		config:   config,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Bootstrap ensures the owner account row exists. It runs once at process
// startup; request paths never create users as a side effect.
func (uc *AuthUseCase) Bootstrap(ctx context.Context) (*model.User, error) {
	user, err := uc.userRepo.FindByEmail(ctx, uc.config.OwnerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to look up owner account: %w", err)
	}
	if user != nil {
		return user, nil
	}

	user = &model.User{
		ID:    uuid.New().String(),
		Email: uc.config.OwnerEmail,
		Name:  uc.config.OwnerName,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create owner account: %w", err)
	}

	uc.logger.Info("Owner account bootstrapped",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email),
	)
	return user, nil
}

// Login verifies the owner credentials and returns a signed token.
func (uc *AuthUseCase) Login(ctx context.Context, username, password string) (string, error) {
	if username != uc.config.OwnerUsername {
		return "", domainerrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.config.OwnerPasswordHash), []byte(password)); err != nil {
		return "", domainerrors.ErrInvalidCredentials
	}

	user, err := uc.userRepo.FindByEmail(ctx, uc.config.OwnerEmail)
	if err != nil {
		return "", fmt.Errorf("failed to look up owner account: %w", err)
	}
	if user == nil {
		return "", domainerrors.ErrUserNotFound
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(uc.config.TokenExpiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(uc.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign auth token: %w", err)
	}

	uc.logger.Info("Owner logged in", zap.String("user_id", user.ID))
	return signed, nil
}

// VerifyToken validates a signed token and returns the owner user ID.
func (uc *AuthUseCase) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(uc.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", domainerrors.ErrInvalidCredentials
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", domainerrors.ErrInvalidCredentials
	}
	return claims.Subject, nil
}

// CurrentUser resolves the owner account for a verified user ID.
func (uc *AuthUseCase) CurrentUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, domainerrors.ErrUserNotFound
	}
	return user, nil
}

// TokenExpiry exposes the configured token lifetime for cookie max-age.
func (uc *AuthUseCase) TokenExpiry() time.Duration {
	return uc.config.TokenExpiry
}
