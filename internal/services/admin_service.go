package services

import (
	"context"

	"github.com/Prathamahuja/employee-leave-management/internal/models"
	"github.com/Prathamahuja/employee-leave-management/internal/repositories"
)

// AdminService reviews leave requests across all users.
type AdminService struct {
	leaveRepo repositories.LeaveRepositoryInterface
}

// NewAdminService creates a new AdminService.
func NewAdminService(leaveRepo repositories.LeaveRepositoryInterface) *AdminService {
	return &AdminService{leaveRepo: leaveRepo}
}

// ListAll returns every leave joined with its owner's name, pending
// requests first, then newest start date within each status group.
func (s *AdminService) ListAll(ctx context.Context) ([]models.AdminLeave, error) {
	return s.leaveRepo.ListAllWithOwner(ctx)
}

// SetStatus approves or rejects a leave and records an optional comment.
// The current status is not checked, so an already-decided request may be
// decided again.
func (s *AdminService) SetStatus(ctx context.Context, id uint, status, adminComment string) error {
	if status != models.StatusApproved && status != models.StatusRejected {
		return ErrInvalidStatus
	}

	leave, err := s.leaveRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if leave == nil {
		return ErrLeaveNotFound
	}
	return s.leaveRepo.SetStatus(ctx, id, status, adminComment)
}
