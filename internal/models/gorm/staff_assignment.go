package gorm

import (
	"time"

	"stayflow/backoffice/internal/constants"
)

// StaffAssignment links a staff account to a property it works
type StaffAssignment struct {
	ID         uint                `gorm:"column:id;primaryKey"`
	UserID     uint                `gorm:"column:user_id;index;not null"`
	PropertyID uint                `gorm:"column:property_id;index;not null"`
	Role       constants.StaffRole `gorm:"column:role;type:varchar(20);not null"`
	IsActive   bool                `gorm:"column:is_active;default:true"`
	CreatedAt  time.Time           `gorm:"column:created_at;autoCreateTime"`

	// Relationships
	User     User     `gorm:"foreignKey:UserID"`
	Property Property `gorm:"foreignKey:PropertyID"`
}

// TableName specifies the table name for GORM
func (StaffAssignment) TableName() string {
	return "staff_assignments"
}
