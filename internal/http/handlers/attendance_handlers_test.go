package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/you/attendsvc/domain"
	"github.com/you/attendsvc/internal/http/middleware"
	"github.com/you/attendsvc/internal/mocks"
)

// injectUser stands in for the JWT middleware in handler tests.
func injectUser(user *domain.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CurrentUserKey, user)
		c.Next()
	}
}

func attendanceRouter(svc *mocks.MockAttendanceService, user *domain.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAttendanceHandlers(svc)
	r := gin.New()
	g := r.Group("/", injectUser(user))
	g.GET("/attendance", h.List)
	g.GET("/attendance/today", h.Today)
	g.POST("/attendance/checkin-checkout", h.CheckInOut)
	g.GET("/attendance/stats", h.Stats)
	g.GET("/attendance/stats/:userId", h.Stats)
	return r
}

func checkInBody(partyID uint) map[string]interface{} {
	return map[string]interface{}{
		"type": "check-in",
		"location": map[string]interface{}{
			"latitude":  52.52,
			"longitude": 13.405,
		},
		"partyId": partyID,
	}
}

func TestAttendanceHandlers_CheckInOut(t *testing.T) {
	user := &domain.User{ID: 7, Username: "john", Name: "John Doe", Role: domain.RoleUser, IsActive: true}

	tests := []struct {
		name           string
		body           map[string]interface{}
		setupMocks     func(*mocks.MockAttendanceService)
		expectedStatus int
	}{
		{
			name:           "successful check-in",
			body:           checkInBody(1),
			setupMocks:     func(svc *mocks.MockAttendanceService) {},
			expectedStatus: http.StatusOK,
		},
		{
			name: "bad entry type",
			body: map[string]interface{}{"type": "nap", "location": map[string]interface{}{"latitude": 1.0, "longitude": 2.0}},
			setupMocks: func(svc *mocks.MockAttendanceService) {
				svc.CheckInOutFunc = func(ctx context.Context, user *domain.User, entryType domain.EntryType, loc domain.Location, partyID uint) (*domain.AttendanceRecord, error) {
					return nil, domain.ErrInvalidEntryType
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "check-in without party",
			body: checkInBody(0),
			setupMocks: func(svc *mocks.MockAttendanceService) {
				svc.CheckInOutFunc = func(ctx context.Context, user *domain.User, entryType domain.EntryType, loc domain.Location, partyID uint) (*domain.AttendanceRecord, error) {
					return nil, domain.ErrPartyRequired
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "inactive party",
			body: checkInBody(9),
			setupMocks: func(svc *mocks.MockAttendanceService) {
				svc.CheckInOutFunc = func(ctx context.Context, user *domain.User, entryType domain.EntryType, loc domain.Location, partyID uint) (*domain.AttendanceRecord, error) {
					return nil, domain.ErrPartyInvalid
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockAttendanceService()
			tt.setupMocks(svc)
			r := attendanceRouter(svc, user)

			w := performJSON(t, r, http.MethodPost, "/attendance/checkin-checkout", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var record domain.AttendanceRecord
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
				assert.Equal(t, user.ID, record.UserID)
				assert.Len(t, record.Entries, 1)
			}
		})
	}
}

func TestAttendanceHandlers_Today(t *testing.T) {
	user := &domain.User{ID: 7, Role: domain.RoleUser, IsActive: true}

	t.Run("empty day renders null", func(t *testing.T) {
		r := attendanceRouter(mocks.NewMockAttendanceService(), user)

		w := performJSON(t, r, http.MethodGet, "/attendance/today", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "null", w.Body.String())
	})

	t.Run("existing record returned", func(t *testing.T) {
		svc := mocks.NewMockAttendanceService()
		svc.TodayRecordFunc = func(ctx context.Context, userID uint) (*domain.AttendanceRecord, error) {
			return &domain.AttendanceRecord{ID: 3, UserID: userID, Date: "2025-03-10"}, nil
		}
		r := attendanceRouter(svc, user)

		w := performJSON(t, r, http.MethodGet, "/attendance/today", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var record domain.AttendanceRecord
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
		assert.Equal(t, uint(7), record.UserID)
	})
}

func TestAttendanceHandlers_List(t *testing.T) {
	user := &domain.User{ID: 7, Role: domain.RoleUser, IsActive: true}
	svc := mocks.NewMockAttendanceService()
	svc.ListRecordsFunc = func(ctx context.Context, caller *domain.User) ([]domain.AttendanceRecord, error) {
		return nil, nil
	}
	r := attendanceRouter(svc, user)

	w := performJSON(t, r, http.MethodGet, "/attendance", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	// nil slice must still render as an empty array
	assert.Equal(t, "[]", w.Body.String())
}

func TestAttendanceHandlers_Stats(t *testing.T) {
	user := &domain.User{ID: 7, Role: domain.RoleUser, IsActive: true}

	t.Run("self stats without param", func(t *testing.T) {
		svc := mocks.NewMockAttendanceService()
		var requestedID uint
		svc.UserStatsFunc = func(ctx context.Context, caller *domain.User, targetUserID uint, now time.Time) (domain.UserStats, error) {
			requestedID = targetUserID
			return domain.UserStats{TotalWorkingDays: 4, TotalWorkingHours: 32}, nil
		}
		r := attendanceRouter(svc, user)

		w := performJSON(t, r, http.MethodGet, "/attendance/stats", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, user.ID, requestedID)

		var stats domain.UserStats
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
		assert.Equal(t, 4, stats.TotalWorkingDays)
	})

	t.Run("foreign stats forbidden for non-admin", func(t *testing.T) {
		svc := mocks.NewMockAttendanceService()
		svc.UserStatsFunc = func(ctx context.Context, caller *domain.User, targetUserID uint, now time.Time) (domain.UserStats, error) {
			return domain.UserStats{}, domain.ErrInsufficientRole
		}
		r := attendanceRouter(svc, user)

		w := performJSON(t, r, http.MethodGet, "/attendance/stats/99", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unknown target user", func(t *testing.T) {
		svc := mocks.NewMockAttendanceService()
		svc.UserStatsFunc = func(ctx context.Context, caller *domain.User, targetUserID uint, now time.Time) (domain.UserStats, error) {
			return domain.UserStats{}, domain.ErrUserNotFound
		}
		r := attendanceRouter(svc, user)

		w := performJSON(t, r, http.MethodGet, "/attendance/stats/99", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed user id", func(t *testing.T) {
		r := attendanceRouter(mocks.NewMockAttendanceService(), user)

		w := performJSON(t, r, http.MethodGet, "/attendance/stats/not-a-number", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
