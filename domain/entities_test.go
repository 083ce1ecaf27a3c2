package domain

import (
	"testing"
	"time"
)

func TestEntryConstructors(t *testing.T) {
	when := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	where := Location{Latitude: 1.23, Longitude: 4.56, Address: "somewhere"}

	tests := []struct {
		name        string
		entry       Entry
		expectType  EntryType
		expectParty uint
	}{
		{
			name:        "check-in carries its party",
			entry:       NewCheckIn(when, where, 7, "Acme"),
			expectType:  EntryCheckIn,
			expectParty: 7,
		},
		{
			name:        "check-out never carries a party",
			entry:       NewCheckOut(when, where),
			expectType:  EntryCheckOut,
			expectParty: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.entry.Type != tt.expectType {
				t.Errorf("expected type %s, got %s", tt.expectType, tt.entry.Type)
			}
			if tt.entry.PartyID != tt.expectParty {
				t.Errorf("expected party %d, got %d", tt.expectParty, tt.entry.PartyID)
			}
			if !tt.entry.Timestamp.Equal(when) {
				t.Errorf("expected timestamp %v, got %v", when, tt.entry.Timestamp)
			}
			if tt.entry.Location != where {
				t.Errorf("expected location %+v, got %+v", where, tt.entry.Location)
			}
		})
	}
}

func TestUser_IsAdmin(t *testing.T) {
	tests := []struct {
		name     string
		user     *User
		expected bool
	}{
		{
			name:     "admin role",
			user:     &User{ID: 1, Username: "admin", Role: RoleAdmin, IsActive: true},
			expected: true,
		},
		{
			name:     "user role",
			user:     &User{ID: 2, Username: "john", Role: RoleUser, IsActive: true},
			expected: false,
		},
		{
			name:     "empty role",
			user:     &User{ID: 3, Username: "ghost"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.IsAdmin(); got != tt.expected {
				t.Errorf("expected IsAdmin=%v, got %v", tt.expected, got)
			}
		})
	}
}

func TestAttendanceRecord_HasCheckIn(t *testing.T) {
	when := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	where := Location{Latitude: 1, Longitude: 2}

	withCheckIn := AttendanceRecord{Entries: []Entry{
		NewCheckOut(when, where),
		NewCheckIn(when.Add(time.Hour), where, 1, "Acme"),
	}}
	if !withCheckIn.HasCheckIn() {
		t.Error("expected record with a check-in entry to count as a working day")
	}

	checkOutOnly := AttendanceRecord{Entries: []Entry{NewCheckOut(when, where)}}
	if checkOutOnly.HasCheckIn() {
		t.Error("check-out-only record must not count as a working day")
	}

	empty := AttendanceRecord{}
	if empty.HasCheckIn() {
		t.Error("empty record must not count as a working day")
	}
}
