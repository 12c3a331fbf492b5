package repositories

import (
	"context"

	models "stayflow/backoffice/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// StaffAssignmentRepository handles staff_assignments table operations
type StaffAssignmentRepository struct {
	db *gormlib.DB
}

// NewStaffAssignmentRepository creates a new staff assignment repository
func NewStaffAssignmentRepository(db *gormlib.DB) *StaffAssignmentRepository {
	return &StaffAssignmentRepository{db: db}
}

func (r *StaffAssignmentRepository) Create(ctx context.Context, assignment *models.StaffAssignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *StaffAssignmentRepository) ListByProperty(ctx context.Context, propertyID uint) ([]models.StaffAssignment, error) {
	var assignments []models.StaffAssignment

	err := r.db.WithContext(ctx).
		Where("property_id = ? AND is_active = ?", propertyID, true).
		Find(&assignments).Error

	return assignments, err
}

func (r *StaffAssignmentRepository) Deactivate(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.StaffAssignment{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
