package services

import (
	"context"
	"time"

	"github.com/Prathamahuja/employee-leave-management/internal/models"
	"github.com/Prathamahuja/employee-leave-management/internal/repositories"
)

// CreateLeaveInput carries a new leave request.
type CreateLeaveInput struct {
	Type      string
	StartDate string
	EndDate   string
	Reason    string
}

// UpdateLeaveInput carries a partial update. Nil (or empty) fields keep
// their stored value.
type UpdateLeaveInput struct {
	Type      *string
	StartDate *string
	EndDate   *string
	Reason    *string
}

// LeaveService validates and persists leave requests on behalf of their
// owner, and enforces the pending-only mutation rule.
type LeaveService struct {
	leaveRepo repositories.LeaveRepositoryInterface
}

// NewLeaveService creates a new LeaveService.
func NewLeaveService(leaveRepo repositories.LeaveRepositoryInterface) *LeaveService {
	return &LeaveService{leaveRepo: leaveRepo}
}

func validDate(s string) bool {
	_, err := time.Parse(models.DateLayout, s)
	return err == nil
}

// supplied treats empty strings like absent fields, matching the loose
// client contract where "" means "leave unchanged".
func supplied(p *string) bool {
	return p != nil && *p != ""
}

// Create validates and persists a new pending leave for ownerID, returning
// the generated id.
func (s *LeaveService) Create(ctx context.Context, ownerID uint, in CreateLeaveInput) (uint, error) {
	if in.Type == "" || in.StartDate == "" || in.EndDate == "" {
		return 0, ErrMissingFields
	}
	if !validDate(in.StartDate) || !validDate(in.EndDate) {
		return 0, ErrInvalidDate
	}
	// ISO dates compare correctly as plain strings.
	if in.StartDate > in.EndDate {
		return 0, ErrDateRange
	}

	leave := &models.Leave{
		UserID:    ownerID,
		Type:      in.Type,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Reason:    in.Reason,
		Status:    models.StatusPending,
	}
	if err := s.leaveRepo.Create(ctx, leave); err != nil {
		return 0, err
	}
	return leave.ID, nil
}

// ListMine returns all leaves owned by ownerID, newest start date first.
func (s *LeaveService) ListMine(ctx context.Context, ownerID uint) ([]models.Leave, error) {
	return s.leaveRepo.ListByOwner(ctx, ownerID)
}

// GetOne returns a leave owned by ownerID. Missing records and records
// owned by other users are both ErrLeaveNotFound.
func (s *LeaveService) GetOne(ctx context.Context, ownerID, id uint) (*models.Leave, error) {
	leave, err := s.leaveRepo.FindOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if leave == nil {
		return nil, ErrLeaveNotFound
	}
	return leave, nil
}

// Update applies the supplied fields to a pending leave owned by ownerID.
// Supplied dates are validated individually; the start/end order is checked
// only when both dates arrive in the same request.
func (s *LeaveService) Update(ctx context.Context, ownerID, id uint, in UpdateLeaveInput) error {
	leave, err := s.leaveRepo.FindOwned(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if leave == nil {
		return ErrLeaveNotFound
	}
	if leave.Status != models.StatusPending {
		return ErrLeaveNotPending
	}

	if supplied(in.StartDate) && !validDate(*in.StartDate) {
		return ErrInvalidDate
	}
	if supplied(in.EndDate) && !validDate(*in.EndDate) {
		return ErrInvalidDate
	}
	if supplied(in.StartDate) && supplied(in.EndDate) && *in.StartDate > *in.EndDate {
		return ErrDateRange
	}

	fields := map[string]any{}
	if supplied(in.Type) {
		fields["type"] = *in.Type
	}
	if supplied(in.StartDate) {
		fields["start_date"] = *in.StartDate
	}
	if supplied(in.EndDate) {
		fields["end_date"] = *in.EndDate
	}
	if supplied(in.Reason) {
		fields["reason"] = *in.Reason
	}
	if len(fields) == 0 {
		return ErrNoFields
	}

	return s.leaveRepo.UpdateFields(ctx, id, ownerID, fields)
}

// Delete removes a pending leave owned by ownerID.
func (s *LeaveService) Delete(ctx context.Context, ownerID, id uint) error {
	leave, err := s.leaveRepo.FindOwned(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if leave == nil {
		return ErrLeaveNotFound
	}
	if leave.Status != models.StatusPending {
		return ErrLeaveNotPending
	}
	return s.leaveRepo.Delete(ctx, id, ownerID)
}
