package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/you/attendsvc/domain"
)

// OTPServiceImpl implements domain.OTPService using Redis persistence.
// Codes are keyed by email; the password-reset flow is the only consumer.
type OTPServiceImpl struct {
	notificationSvc domain.NotificationService
	redisClient     *redis.Client
	config          OTPConfig
}

type OTPConfig struct {
	Length       int
	TTL          time.Duration
	MaxAttempts  int
	ResendWindow time.Duration
}

// NewOTPService creates a new Redis-based OTP service
func NewOTPService(notificationSvc domain.NotificationService, redisClient *redis.Client, config OTPConfig) domain.OTPService {
	return &OTPServiceImpl{
		notificationSvc: notificationSvc,
		redisClient:     redisClient,
		config:          config,
	}
}

// Generate implements domain.OTPService. A fresh code replaces any pending
// one for the same email and the attempts counter restarts.
func (s *OTPServiceImpl) Generate(ctx context.Context, email string) (string, error) {
	otpKey := fmt.Sprintf("otp:%s", email)
	attemptsKey := fmt.Sprintf("otp:att:%s", email)
	resendKey := fmt.Sprintf("otp:res:%s", email)

	// Check resend throttle
	ttl, err := s.redisClient.TTL(ctx, resendKey).Result()
	if err != nil {
		return "", fmt.Errorf("failed to check resend throttle: %w", err)
	}
	if ttl > 0 {
		return "", domain.ErrOTPResendLimit
	}

	code, err := s.generateSecureCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP code: %w", err)
	}

	if err := s.redisClient.Set(ctx, otpKey, code, s.config.TTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store OTP in Redis: %w", err)
	}

	if err := s.redisClient.Set(ctx, attemptsKey, 0, s.config.TTL).Err(); err != nil {
		return "", fmt.Errorf("failed to initialize attempts counter: %w", err)
	}

	if err := s.redisClient.Set(ctx, resendKey, 1, s.config.ResendWindow).Err(); err != nil {
		return "", fmt.Errorf("failed to set resend throttle: %w", err)
	}

	subject := "Password Reset Code"
	body := fmt.Sprintf(
		"<p>Your password reset code is: <strong>%s</strong></p><p>It expires in %d minutes. If you did not request a reset, ignore this email.</p>",
		code, int(s.config.TTL.Minutes()),
	)
	if err := s.notificationSvc.SendEmail(ctx, email, subject, body); err != nil {
		// Clean up Redis entries if mail fails
		s.redisClient.Del(ctx, otpKey, attemptsKey, resendKey)
		return "", fmt.Errorf("failed to send OTP email: %w", err)
	}

	return code, nil
}

// Check implements domain.OTPService. It counts against the attempts
// budget but leaves a matching code in place, so a reset with the same
// code can still follow.
func (s *OTPServiceImpl) Check(ctx context.Context, email, code string) error {
	_, err := s.match(ctx, email, code)
	return err
}

// Verify implements domain.OTPService. On success the code and counter
// are deleted; the code is single-use.
func (s *OTPServiceImpl) Verify(ctx context.Context, email, code string) error {
	otpKey, err := s.match(ctx, email, code)
	if err != nil {
		return err
	}

	attemptsKey := fmt.Sprintf("otp:att:%s", email)
	s.redisClient.Del(ctx, otpKey, attemptsKey)
	return nil
}

// match increments the attempts counter and compares the stored code.
func (s *OTPServiceImpl) match(ctx context.Context, email, code string) (string, error) {
	otpKey := fmt.Sprintf("otp:%s", email)
	attemptsKey := fmt.Sprintf("otp:att:%s", email)

	attempts, err := s.redisClient.Incr(ctx, attemptsKey).Result()
	if err != nil {
		return "", fmt.Errorf("failed to increment attempts: %w", err)
	}

	if attempts > int64(s.config.MaxAttempts) {
		s.redisClient.Del(ctx, otpKey, attemptsKey)
		return "", domain.ErrOTPMaxAttempts
	}

	storedCode, err := s.redisClient.Get(ctx, otpKey).Result()
	if err == redis.Nil {
		return "", domain.ErrOTPNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get OTP from Redis: %w", err)
	}

	if storedCode != code {
		return "", domain.ErrOTPInvalid
	}

	return otpKey, nil
}

// generateSecureCode generates a cryptographically secure OTP code
func (s *OTPServiceImpl) generateSecureCode() (string, error) {
	digits := make([]byte, s.config.Length)

	for i := 0; i < s.config.Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits), nil
}
