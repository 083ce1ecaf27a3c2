package domain

import "time"

// DateLayout is the calendar-day key format for attendance records,
// local to the server clock.
const DateLayout = "2006-01-02"

// Roles known to the authorization gate.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a user in the system
type User struct {
	ID           uint
	Username     string
	Name         string
	Email        string
	PasswordHash string `gorm:"column:password"`
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user may see all records and manage parties.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// Party is a client/project tag attached to check-ins. Soft-deleted via
// IsActive; names are unique among active parties.
type Party struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedBy   uint      `json:"createdBy"`
	CreatorName string    `json:"creatorName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Location is a resolved geolocation triple. Address may be empty when
// reverse geocoding was unavailable; callers fall back to raw coordinates.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// EntryType discriminates check-in and check-out events.
type EntryType string

const (
	EntryCheckIn  EntryType = "check-in"
	EntryCheckOut EntryType = "check-out"
)

// Entry is one timestamped check-in or check-out event. Only check-ins
// carry a party reference; NewCheckIn and NewCheckOut keep that invariant
// out of the hands of callers.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EntryType `json:"type"`
	Location  Location  `json:"location"`
	PartyID   uint      `json:"partyId,omitempty"`
	PartyName string    `json:"partyName,omitempty"`
}

// NewCheckIn builds a check-in entry bound to a party.
func NewCheckIn(ts time.Time, loc Location, partyID uint, partyName string) Entry {
	return Entry{Timestamp: ts, Type: EntryCheckIn, Location: loc, PartyID: partyID, PartyName: partyName}
}

// NewCheckOut builds a check-out entry; check-outs never carry a party,
// the session inherits it from the opening check-in.
func NewCheckOut(ts time.Time, loc Location) Entry {
	return Entry{Timestamp: ts, Type: EntryCheckOut, Location: loc}
}

// Session is a derived, matched check-in/check-out pair. Sessions are
// recomputed in full from entries and never edited independently.
type Session struct {
	CheckIn   time.Time `json:"checkIn"`
	CheckOut  time.Time `json:"checkOut"`
	Hours     float64   `json:"hours"`
	PartyID   uint      `json:"partyId,omitempty"`
	PartyName string    `json:"partyName,omitempty"`
}

// AttendanceRecord is the per-user-per-day aggregate root, unique on
// (UserID, Date). Entries keep submission order; Sessions and TotalHours
// are derived from entries sorted by timestamp.
type AttendanceRecord struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"userId"`
	UserName   string    `json:"userName"`
	Date       string    `json:"date"`
	Entries    []Entry   `json:"entries"`
	Sessions   []Session `json:"sessions"`
	TotalHours float64   `json:"totalHours"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// UserStats is the per-user summary produced by CalculateUserStats. The
// leave-day figures are calendar-unaware approximations.
type UserStats struct {
	TotalWorkingDays        int     `json:"totalWorkingDays"`
	TotalLeaveDays          int     `json:"totalLeaveDays"`
	TotalWorkingHours       float64 `json:"totalWorkingHours"`
	MonthlyHours            float64 `json:"monthlyHours"`
	AverageHoursPerDay      float64 `json:"averageHoursPerDay"`
	CurrentMonthWorkingDays int     `json:"currentMonthWorkingDays"`
	CurrentMonthLeaveDays   int     `json:"currentMonthLeaveDays"`
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User      *User
	Token     string
	ExpiresIn int64
}
