package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/attendsvc/domain"
)

// PolicyHandlers exposes the Casbin policy table to admins.
type PolicyHandlers struct {
	policySvc domain.PolicyService
}

func NewPolicyHandlers(policySvc domain.PolicyService) *PolicyHandlers {
	return &PolicyHandlers{policySvc: policySvc}
}

// PolicyRequest describes one policy rule (subject, resource, action).
type PolicyRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

// List returns every stored policy rule.
func (h *PolicyHandlers) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.policySvc.GetPolicies()})
}

// Add stores a new policy rule and persists the policy table.
func (h *PolicyHandlers) Add(c *gin.Context) {
	var req PolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.policySvc.AddPolicy(req.Role, req.Resource, req.Action); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add policy"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Policy added"})
}

// Remove deletes a policy rule and persists the policy table.
func (h *PolicyHandlers) Remove(c *gin.Context) {
	var req PolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.policySvc.RemovePolicy(req.Role, req.Resource, req.Action); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove policy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Policy removed"})
}
