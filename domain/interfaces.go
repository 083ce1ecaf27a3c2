package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, userID uint, passwordHash string) error
}

// PartyRepository defines party data access operations
type PartyRepository interface {
	Create(ctx context.Context, party *Party) error
	FindByID(ctx context.Context, id uint) (*Party, error)
	FindActiveByName(ctx context.Context, name string) (*Party, error)
	ListActive(ctx context.Context) ([]Party, error)
	ListAll(ctx context.Context) ([]Party, error)
	Update(ctx context.Context, party *Party) error
}

// AttendanceRepository is the per-user-per-day record store. AppendEntry
// must be atomic for a given (userID, date) key: concurrent appends may
// not lose entries or violate the unique key.
type AttendanceRepository interface {
	AppendEntry(ctx context.Context, userID uint, userName, date string, entry Entry) (*AttendanceRecord, error)
	FindByUserAndDate(ctx context.Context, userID uint, date string) (*AttendanceRecord, error)
	FindAllByUser(ctx context.Context, userID uint) ([]AttendanceRecord, error)
	FindAll(ctx context.Context) ([]AttendanceRecord, error)
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, username, password, name, email, role string) (*User, error)
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	GetUserProfile(ctx context.Context, userID uint) (*User, error)
	RequestPasswordReset(ctx context.Context, email string) error
	VerifyResetOTP(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

// AttendanceService defines attendance business logic
type AttendanceService interface {
	CheckInOut(ctx context.Context, user *User, entryType EntryType, loc Location, partyID uint) (*AttendanceRecord, error)
	TodayRecord(ctx context.Context, userID uint) (*AttendanceRecord, error)
	ListRecords(ctx context.Context, caller *User) ([]AttendanceRecord, error)
	UserStats(ctx context.Context, caller *User, targetUserID uint, now time.Time) (UserStats, error)
}

// PartyService defines party management business logic
type PartyService interface {
	ListActive(ctx context.Context) ([]Party, error)
	ListAll(ctx context.Context) ([]Party, error)
	Create(ctx context.Context, name, description string, createdBy uint) (*Party, error)
	Update(ctx context.Context, id uint, name, description string, isActive *bool) (*Party, error)
	Deactivate(ctx context.Context, id uint) error
}

// OTPService defines OTP operations. Verify consumes the code on success;
// Check validates without consuming so a reset can still follow.
type OTPService interface {
	Generate(ctx context.Context, email string) (string, error)
	Check(ctx context.Context, email, code string) error
	Verify(ctx context.Context, email, code string) error
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations
type TokenService interface {
	GenerateToken(userID uint, username, role string) (string, error)
	ValidateToken(token string) (*TokenClaims, error)
}

// NotificationService defines notification operations
type NotificationService interface {
	SendEmail(ctx context.Context, to, subject, htmlBody string) error
}

// GeocodingService resolves coordinates to a human-readable address.
// Implementations must bound the lookup with a timeout; callers degrade to
// raw coordinates when it fails.
type GeocodingService interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
}

// PolicyService defines authorization policy operations
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
}

// TokenClaims represents JWT token claims
type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// CasbinEnforcer interface defines the methods we need from Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
