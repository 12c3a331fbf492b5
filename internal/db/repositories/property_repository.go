package repositories

import (
	"context"

	models "stayflow/backoffice/internal/models/gorm"

	gormlib "gorm.io/gorm"
)

// PropertyRepository handles property table operations
type PropertyRepository struct {
	db *gormlib.DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *gormlib.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) Create(ctx context.Context, property *models.Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

func (r *PropertyRepository) FindByID(ctx context.Context, id uint) (*models.Property, error) {
	var property models.Property

	err := r.db.WithContext(ctx).First(&property, id).Error
	if err != nil {
		if err == gormlib.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &property, nil
}

func (r *PropertyRepository) List(ctx context.Context) ([]models.Property, error) {
	var properties []models.Property

	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&properties).Error

	return properties, err
}

func (r *PropertyRepository) Update(ctx context.Context, property *models.Property) error {
	return r.db.WithContext(ctx).Save(property).Error
}

func (r *PropertyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Property{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
