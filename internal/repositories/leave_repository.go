package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Prathamahuja/employee-leave-management/internal/models"
)

// LeaveRepositoryInterface defines the persistence operations the leave and
// admin services depend on. Owner-scoped methods filter on (id, user_id) in
// the query itself so a foreign record behaves exactly like a missing one.
type LeaveRepositoryInterface interface {
	Create(ctx context.Context, leave *models.Leave) error
	ListByOwner(ctx context.Context, userID uint) ([]models.Leave, error)
	FindOwned(ctx context.Context, id, userID uint) (*models.Leave, error)
	UpdateFields(ctx context.Context, id, userID uint, fields map[string]any) error
	Delete(ctx context.Context, id, userID uint) error

	FindByID(ctx context.Context, id uint) (*models.Leave, error)
	ListAllWithOwner(ctx context.Context) ([]models.AdminLeave, error)
	SetStatus(ctx context.Context, id uint, status, adminComment string) error
}

// LeaveRepository implements LeaveRepositoryInterface on top of gorm.
type LeaveRepository struct {
	db *gorm.DB
}

// NewLeaveRepository creates a new LeaveRepository.
func NewLeaveRepository(db *gorm.DB) *LeaveRepository {
	return &LeaveRepository{db: db}
}

// Create inserts a new leave request.
func (r *LeaveRepository) Create(ctx context.Context, leave *models.Leave) error {
	if err := r.db.WithContext(ctx).Create(leave).Error; err != nil {
		return fmt.Errorf("create leave: %w", err)
	}
	return nil
}

// ListByOwner returns all leaves of one user, newest start date first.
func (r *LeaveRepository) ListByOwner(ctx context.Context, userID uint) ([]models.Leave, error) {
	var leaves []models.Leave
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&leaves).Error
	if err != nil {
		return nil, fmt.Errorf("list leaves: %w", err)
	}
	return leaves, nil
}

// FindOwned returns the leave with the given id if userID owns it, or nil
// when it is missing or owned by someone else.
func (r *LeaveRepository) FindOwned(ctx context.Context, id, userID uint) (*models.Leave, error) {
	var leave models.Leave
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&leave).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find leave: %w", err)
	}
	return &leave, nil
}

// UpdateFields applies only the given columns to an owned leave.
func (r *LeaveRepository) UpdateFields(ctx context.Context, id, userID uint, fields map[string]any) error {
	err := r.db.WithContext(ctx).
		Model(&models.Leave{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields).Error
	if err != nil {
		return fmt.Errorf("update leave: %w", err)
	}
	return nil
}

// Delete removes an owned leave.
func (r *LeaveRepository) Delete(ctx context.Context, id, userID uint) error {
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Leave{}).Error
	if err != nil {
		return fmt.Errorf("delete leave: %w", err)
	}
	return nil
}

// FindByID returns any leave by id regardless of owner, or nil if missing.
func (r *LeaveRepository) FindByID(ctx context.Context, id uint) (*models.Leave, error) {
	var leave models.Leave
	err := r.db.WithContext(ctx).First(&leave, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find leave by id: %w", err)
	}
	return &leave, nil
}

// ListAllWithOwner returns every leave joined with its owner's name.
// Pending requests come first so the review queue surfaces actionable
// items, then newest start date within each group.
func (r *LeaveRepository) ListAllWithOwner(ctx context.Context) ([]models.AdminLeave, error) {
	var rows []models.AdminLeave
	err := r.db.WithContext(ctx).
		Model(&models.Leave{}).
		Select("leaves.*, users.name AS employee_name").
		Joins("JOIN users ON users.id = leaves.user_id").
		Order("CASE WHEN leaves.status = 'pending' THEN 0 ELSE 1 END").
		Order("leaves.start_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list all leaves: %w", err)
	}
	return rows, nil
}

// SetStatus records an admin decision together with its comment.
func (r *LeaveRepository) SetStatus(ctx context.Context, id uint, status, adminComment string) error {
	err := r.db.WithContext(ctx).
		Model(&models.Leave{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "admin_comment": adminComment}).Error
	if err != nil {
		return fmt.Errorf("set leave status: %w", err)
	}
	return nil
}
