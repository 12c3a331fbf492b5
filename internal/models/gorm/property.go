package gorm

import "time"

type Property struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Address   string    `gorm:"column:address"`
	City      string    `gorm:"column:city"`
	Timezone  string    `gorm:"column:timezone;default:UTC"`
	IsActive  bool      `gorm:"column:is_active;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Rooms []Room `gorm:"foreignKey:PropertyID"`
}

// TableName specifies the table name for GORM
func (Property) TableName() string {
	return "properties"
}
