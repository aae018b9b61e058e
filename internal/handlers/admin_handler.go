package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Prathamahuja/employee-leave-management/internal/services"
)

// AdminHandler exposes the review endpoints. Routes are behind RequireAuth
// and RequireAdmin.
type AdminHandler struct {
	adminService *services.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// DecisionInput defines the body for approving or rejecting a leave.
type DecisionInput struct {
	Status       string `json:"status"`
	AdminComment string `json:"admin_comment"`
}

// ListLeaves handles GET /api/admin/leaves.
func (h *AdminHandler) ListLeaves(c *gin.Context) {
	leaves, err := h.adminService.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching leaves", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, leaves)
}

// UpdateLeaveStatus handles PUT /api/admin/leaves/:id.
func (h *AdminHandler) UpdateLeaveStatus(c *gin.Context) {
	id, ok := leaveID(c)
	if !ok {
		return
	}

	var input DecisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status. Must be 'approved' or 'rejected'"})
		return
	}

	err := h.adminService.SetStatus(c.Request.Context(), id, input.Status, input.AdminComment)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status. Must be 'approved' or 'rejected'"})
		case errors.Is(err, services.ErrLeaveNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Leave request not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating leave status", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Leave request " + input.Status + " successfully"})
}
