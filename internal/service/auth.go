package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"ptoshare-backend/internal/domain"
	"ptoshare-backend/internal/logger"
	"ptoshare-backend/internal/repository"
	"ptoshare-backend/internal/security"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

var (
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized)
	ErrInvalidToken       = fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
	ErrResetTokenInvalid  = fmt.Errorf("%w: reset token is invalid or expired", domain.ErrValidation)
)

type authService struct {
	userRepo    repository.UserRepository
	resetRepo   repository.PasswordResetRepository
	tokens      security.TokenManager
	email       EmailService
	publicURL   string
	resetExpiry time.Duration
	now         func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, resetRepo repository.PasswordResetRepository, tokens security.TokenManager, email EmailService, publicURL string, resetExpiry time.Duration) AuthService {
	return &authService{
		userRepo:    userRepo,
		resetRepo:   resetRepo,
		tokens:      tokens,
		email:       email,
		publicURL:   strings.TrimRight(publicURL, "/"),
		resetExpiry: resetExpiry,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *authService) Register(ctx context.Context, email, password, name string, companyID *int32) (*domain.User, string, string, error) {
	logger.EnterMethod("authService.Register", "email", email)

	email = normalizeEmail(email)
	name = strings.TrimSpace(name)
	if err := validateEmail(email); err != nil {
		return nil, "", "", err
	}
	if name == "" {
		return nil, "", "", fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if err := validatePassword(password); err != nil {
		return nil, "", "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		CompanyID:    companyID,
		CanDonate:    true,
		CreatedOn:    now,
		UpdatedOn:    now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ExitMethodWithError("authService.Register", err, "email", email)
		return nil, "", "", err
	}

	access, refresh, err := s.generateTokens(user)
	if err != nil {
		return nil, "", "", err
	}
	logger.ExitMethod("authService.Register", "userID", user.ID)
	return user, access, refresh, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Warn("Failed login attempt", "userID", user.ID)
		return nil, "", "", ErrInvalidCredentials
	}

	access, refresh, err := s.generateTokens(user)
	if err != nil {
		return nil, "", "", err
	}
	return user, access, refresh, nil
}

func (s *authService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refresh)
	if err != nil || claims.Type != security.TokenTypeRefresh {
		return "", "", ErrInvalidToken
	}

	// Reload so a revoked admin flag or removed account takes effect on refresh.
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", "", ErrInvalidToken
		}
		return "", "", err
	}
	return s.generateTokens(user)
}

func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Debug("Password reset requested for unknown email")
			return nil
		}
		return err
	}

	now := s.now()
	reset := &domain.PasswordReset{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresOn: now.Add(s.resetExpiry),
		CreatedOn: now,
	}
	if err := s.resetRepo.Create(ctx, reset); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.publicURL, reset.Token)
	if err := s.email.SendPasswordReset(ctx, user.Email, user.Name, resetURL); err != nil {
		logger.Error("Failed to send password reset email", "userID", user.ID, "error", err)
		return fmt.Errorf("failed to send password reset email: %w", err)
	}
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	reset, err := s.resetRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrResetTokenInvalid
		}
		return err
	}
	now := s.now()
	if !reset.Usable(now) {
		return ErrResetTokenInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	// Burn the token first so it cannot be replayed if the password update is retried.
	if err := s.resetRepo.MarkUsed(ctx, token, now); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrResetTokenInvalid
		}
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, reset.UserID, string(hash)); err != nil {
		return err
	}
	logger.Info("Password reset completed", "userID", reset.UserID)
	return nil
}

func (s *authService) generateTokens(user *domain.User) (string, string, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return access, refresh, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: invalid email address", domain.ErrValidation)
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}
	return nil
}
