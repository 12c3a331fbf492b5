package gorm

import (
	"time"

	"stayflow/backoffice/internal/constants"
)

// User is a staff account
type User struct {
	ID           uint                `gorm:"column:id;primaryKey"`
	FullName     string              `gorm:"column:full_name;not null"`
	Email        string              `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string              `gorm:"column:password_hash;not null"`
	Role         constants.StaffRole `gorm:"column:role;type:varchar(20);not null"`
	IsActive     bool                `gorm:"column:is_active;default:true"`
	CreatedAt    time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
