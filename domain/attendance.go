package domain

import (
	"math"
	"sort"
	"time"
)

// CalculateSessions derives completed sessions from a day's entries.
//
// Entries are sorted ascending by timestamp (stable, so submission order
// breaks ties) and scanned once holding at most one pending check-in. A
// later check-in overwrites the pending one; a check-out with no pending
// check-in is ignored. Unmatched entries produce no session at all.
// A check-out stamped before its check-in yields negative hours; that is
// propagated rather than clamped.
func CalculateSessions(entries []Entry) []Session {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	sessions := []Session{}
	var pending *Entry

	for i := range sorted {
		entry := &sorted[i]
		switch entry.Type {
		case EntryCheckIn:
			pending = entry
		case EntryCheckOut:
			if pending == nil {
				continue
			}
			sessions = append(sessions, Session{
				CheckIn:   pending.Timestamp,
				CheckOut:  entry.Timestamp,
				Hours:     HoursBetween(pending.Timestamp, entry.Timestamp),
				PartyID:   pending.PartyID,
				PartyName: pending.PartyName,
			})
			pending = nil
		}
	}

	return sessions
}

// HoursBetween returns the elapsed wall-clock hours between two
// timestamps, rounded to two decimal places.
func HoursBetween(checkIn, checkOut time.Time) float64 {
	hours := checkOut.Sub(checkIn).Hours()
	return math.Round(hours*100) / 100
}

// SumSessionHours totals the hours across sessions.
func SumSessionHours(sessions []Session) float64 {
	var total float64
	for _, s := range sessions {
		total += s.Hours
	}
	return total
}

// Recompute regenerates the record's sessions and total hours from its
// entries. Called after every entry append, inside the store's atomic
// append operation.
func (r *AttendanceRecord) Recompute() {
	r.Sessions = CalculateSessions(r.Entries)
	r.TotalHours = SumSessionHours(r.Sessions)
}

// HasCheckIn reports whether the record counts as a working day.
func (r *AttendanceRecord) HasCheckIn() bool {
	for _, e := range r.Entries {
		if e.Type == EntryCheckIn {
			return true
		}
	}
	return false
}

// CalculateUserStats summarizes one user's records. The reference clock is
// an explicit parameter so results are reproducible in tests; leave-day
// figures assume every elapsed day was a potential working day and know
// nothing of weekends or holidays.
func CalculateUserStats(records []AttendanceRecord, now time.Time) UserStats {
	var stats UserStats

	for _, r := range records {
		if r.HasCheckIn() {
			stats.TotalWorkingDays++
		}
		stats.TotalWorkingHours += r.TotalHours

		if d, err := time.ParseInLocation(DateLayout, r.Date, now.Location()); err == nil {
			if d.Year() == now.Year() && d.Month() == now.Month() {
				stats.MonthlyHours += r.TotalHours
				if r.HasCheckIn() {
					stats.CurrentMonthWorkingDays++
				}
			}
		}
	}

	daysInMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
	daysToDate := now.Day()
	if daysToDate > daysInMonth {
		daysToDate = daysInMonth
	}
	stats.CurrentMonthLeaveDays = max(0, daysToDate-stats.CurrentMonthWorkingDays)

	if first, ok := earliestDate(records, now.Location()); ok {
		tracked := int(math.Ceil(now.Sub(first).Hours() / 24))
		stats.TotalLeaveDays = max(0, tracked-stats.TotalWorkingDays)
	}

	if stats.TotalWorkingDays > 0 {
		stats.AverageHoursPerDay = stats.TotalWorkingHours / float64(stats.TotalWorkingDays)
	}

	return stats
}

func earliestDate(records []AttendanceRecord, loc *time.Location) (time.Time, bool) {
	var first time.Time
	found := false
	for _, r := range records {
		d, err := time.ParseInLocation(DateLayout, r.Date, loc)
		if err != nil {
			continue
		}
		if !found || d.Before(first) {
			first = d
			found = true
		}
	}
	return first, found
}
