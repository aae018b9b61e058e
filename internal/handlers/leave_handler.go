package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Prathamahuja/employee-leave-management/internal/middleware"
	"github.com/Prathamahuja/employee-leave-management/internal/services"
)

// LeaveHandler exposes the employee-facing leave endpoints. Every route is
// behind RequireAuth, so middleware.UserID is always set here.
type LeaveHandler struct {
	leaveService *services.LeaveService
}

// NewLeaveHandler creates a new LeaveHandler.
func NewLeaveHandler(leaveService *services.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveService: leaveService}
}

// CreateLeaveInput defines the expected body for a new leave request.
type CreateLeaveInput struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

// UpdateLeaveInput defines a partial update; absent fields stay unchanged.
type UpdateLeaveInput struct {
	Type      *string `json:"type"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Reason    *string `json:"reason"`
}

func leaveID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid leave ID"})
		return 0, false
	}
	return uint(id), true
}

// Create handles POST /api/leaves.
func (h *LeaveHandler) Create(c *gin.Context) {
	var input CreateLeaveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide type, start_date, and end_date"})
		return
	}

	id, err := h.leaveService.Create(c.Request.Context(), middleware.UserID(c), services.CreateLeaveInput{
		Type:      input.Type,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Reason:    input.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide type, start_date, and end_date"})
		case errors.Is(err, services.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date format"})
		case errors.Is(err, services.ErrDateRange):
			c.JSON(http.StatusBadRequest, gin.H{"message": "End date cannot be before start date"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating leave request", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Leave request submitted successfully", "leaveId": id})
}

// MyLeaves handles GET /api/leaves/my-leaves.
func (h *LeaveHandler) MyLeaves(c *gin.Context) {
	leaves, err := h.leaveService.ListMine(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching leaves", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, leaves)
}

// GetOne handles GET /api/leaves/:id.
func (h *LeaveHandler) GetOne(c *gin.Context) {
	id, ok := leaveID(c)
	if !ok {
		return
	}

	leave, err := h.leaveService.GetOne(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		if errors.Is(err, services.ErrLeaveNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Leave not found or unauthorized"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching leave", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, leave)
}

// Update handles PUT /api/leaves/:id.
func (h *LeaveHandler) Update(c *gin.Context) {
	id, ok := leaveID(c)
	if !ok {
		return
	}

	var input UpdateLeaveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	err := h.leaveService.Update(c.Request.Context(), middleware.UserID(c), id, services.UpdateLeaveInput{
		Type:      input.Type,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Reason:    input.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLeaveNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Leave not found or unauthorized"})
		case errors.Is(err, services.ErrLeaveNotPending):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot update a leave request that is not pending"})
		case errors.Is(err, services.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date format"})
		case errors.Is(err, services.ErrDateRange):
			c.JSON(http.StatusBadRequest, gin.H{"message": "End date cannot be before start date"})
		case errors.Is(err, services.ErrNoFields):
			c.JSON(http.StatusBadRequest, gin.H{"message": "No fields to update"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating leave", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Leave updated successfully"})
}

// Delete handles DELETE /api/leaves/:id.
func (h *LeaveHandler) Delete(c *gin.Context) {
	id, ok := leaveID(c)
	if !ok {
		return
	}

	err := h.leaveService.Delete(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLeaveNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Leave not found or unauthorized"})
		case errors.Is(err, services.ErrLeaveNotPending):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot delete a leave request that is not pending"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting leave", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Leave deleted successfully"})
}
