package services

import (
	"context"
	"fmt"
	"time"

	"github.com/you/attendsvc/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	otpSvc      domain.OTPService
	tokenTTL    time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	tokenTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		otpSvc:      otpSvc,
		tokenTTL:    tokenTTL,
	}
}

// Register implements domain.AuthService
func (s *AuthServiceImpl) Register(ctx context.Context, username, password, name, email, role string) (*domain.User, error) {
	// Check if username or email is already taken
	if existing, err := s.userRepo.FindByUsername(ctx, username); err == nil && existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}
	if existing, err := s.userRepo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if role == "" {
		role = domain.RoleUser
	}

	user := &domain.User{
		Username:     username,
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login implements domain.AuthService
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	// Deactivated accounts fail the same way as bad credentials.
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	token, err := s.tokenSvc.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &domain.AuthResult{
		User:      user,
		Token:     token,
		ExpiresIn: int64(s.tokenTTL.Seconds()),
	}, nil
}

// GetUserProfile implements domain.AuthService
func (s *AuthServiceImpl) GetUserProfile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// RequestPasswordReset implements domain.AuthService. An unknown email
// still returns nil so the endpoint does not leak which addresses exist.
func (s *AuthServiceImpl) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil
		}
		return err
	}

	if _, err := s.otpSvc.Generate(ctx, user.Email); err != nil {
		return err
	}
	return nil
}

// VerifyResetOTP implements domain.AuthService. The code is checked but
// not consumed, so the subsequent ResetPassword call can present it again.
func (s *AuthServiceImpl) VerifyResetOTP(ctx context.Context, email, code string) error {
	return s.otpSvc.Check(ctx, email, code)
}

// ResetPassword implements domain.AuthService. The OTP is consumed only
// when it matches; a wrong or expired code never changes the password.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	if err := s.otpSvc.Verify(ctx, email, code); err != nil {
		return err
	}

	hashedPassword, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword)
}
