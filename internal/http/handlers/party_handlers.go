package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/you/attendsvc/domain"
	"github.com/you/attendsvc/internal/http/middleware"
)

// PartyHandlers handles party management HTTP requests
type PartyHandlers struct {
	partySvc domain.PartyService
}

// NewPartyHandlers creates new party handlers
func NewPartyHandlers(partySvc domain.PartyService) *PartyHandlers {
	return &PartyHandlers{partySvc: partySvc}
}

// CreatePartyRequest represents party creation request
type CreatePartyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdatePartyRequest represents party update request
type UpdatePartyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive"`
}

// ListActive returns the active parties for check-in pickers
func (h *PartyHandlers) ListActive(c *gin.Context) {
	parties, err := h.partySvc.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load parties"})
		return
	}
	if parties == nil {
		parties = []domain.Party{}
	}
	c.JSON(http.StatusOK, parties)
}

// ListAll returns every party including deactivated ones
func (h *PartyHandlers) ListAll(c *gin.Context) {
	parties, err := h.partySvc.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load parties"})
		return
	}
	if parties == nil {
		parties = []domain.Party{}
	}
	c.JSON(http.StatusOK, parties)
}

// Create handles party creation
func (h *PartyHandlers) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var req CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	party, err := h.partySvc.Create(c.Request.Context(), req.Name, req.Description, user.ID)
	if err != nil {
		switch err {
		case domain.ErrPartyNameRequired:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Party name is required"})
		case domain.ErrPartyNameTaken:
			c.JSON(http.StatusConflict, gin.H{"error": "A party with this name already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create party"})
		}
		return
	}

	c.JSON(http.StatusCreated, party)
}

// Update handles party update
func (h *PartyHandlers) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid party ID"})
		return
	}

	var req UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	party, err := h.partySvc.Update(c.Request.Context(), uint(id), req.Name, req.Description, req.IsActive)
	if err != nil {
		switch err {
		case domain.ErrPartyNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
		case domain.ErrPartyNameTaken:
			c.JSON(http.StatusConflict, gin.H{"error": "A party with this name already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update party"})
		}
		return
	}

	c.JSON(http.StatusOK, party)
}

// Delete soft-deletes a party; existing attendance entries keep their
// party snapshot.
func (h *PartyHandlers) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid party ID"})
		return
	}

	if err := h.partySvc.Deactivate(c.Request.Context(), uint(id)); err != nil {
		if err == domain.ErrPartyNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Party not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete party"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Party deactivated"})
}
