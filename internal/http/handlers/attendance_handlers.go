package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/you/attendsvc/domain"
	"github.com/you/attendsvc/internal/http/middleware"
)

// AttendanceHandlers handles attendance HTTP requests
type AttendanceHandlers struct {
	attendanceSvc domain.AttendanceService
}

// NewAttendanceHandlers creates new attendance handlers
func NewAttendanceHandlers(attendanceSvc domain.AttendanceService) *AttendanceHandlers {
	return &AttendanceHandlers{attendanceSvc: attendanceSvc}
}

// CheckInOutRequest represents a check-in or check-out submission
type CheckInOutRequest struct {
	Type     string `json:"type" binding:"required"`
	Location struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Address   string  `json:"address"`
	} `json:"location" binding:"required"`
	PartyID uint `json:"partyId"`
}

// CheckInOut handles a check-in or check-out submission
func (h *AttendanceHandlers) CheckInOut(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var req CheckInOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loc := domain.Location{
		Latitude:  req.Location.Latitude,
		Longitude: req.Location.Longitude,
		Address:   req.Location.Address,
	}

	record, err := h.attendanceSvc.CheckInOut(c.Request.Context(), user, domain.EntryType(req.Type), loc, req.PartyID)
	if err != nil {
		switch err {
		case domain.ErrInvalidEntryType:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Type must be check-in or check-out"})
		case domain.ErrPartyRequired:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Party is required for check-in"})
		case domain.ErrPartyInvalid:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or inactive party"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record attendance"})
		}
		return
	}

	c.JSON(http.StatusOK, record)
}

// Today returns today's record for the caller, or null when the day has
// no entries yet.
func (h *AttendanceHandlers) Today(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	record, err := h.attendanceSvc.TodayRecord(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load today's record"})
		return
	}

	c.JSON(http.StatusOK, record)
}

// List returns attendance records, scoped by the caller's role
func (h *AttendanceHandlers) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	records, err := h.attendanceSvc.ListRecords(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load attendance records"})
		return
	}

	if records == nil {
		records = []domain.AttendanceRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// Stats returns aggregated statistics. Without a :userId param the caller
// gets their own; with one, admin-or-self applies.
func (h *AttendanceHandlers) Stats(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	targetUserID := user.ID
	if param := c.Param("userId"); param != "" {
		parsed, err := strconv.ParseUint(param, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
			return
		}
		targetUserID = uint(parsed)
	}

	stats, err := h.attendanceSvc.UserStats(c.Request.Context(), user, targetUserID, time.Now())
	if err != nil {
		switch err {
		case domain.ErrInsufficientRole:
			c.JSON(http.StatusForbidden, gin.H{"error": "Access Denied"})
		case domain.ErrUserNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		}
		return
	}

	c.JSON(http.StatusOK, stats)
}
