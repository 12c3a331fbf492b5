package gorm

import "time"

// AppSetting is the singleton configuration row (company details, tax and
// currency). Loaded once per request path and passed in, never fetched
// mid-algorithm.
type AppSetting struct {
	ID          uint      `gorm:"column:id;primaryKey"`
	CompanyName string    `gorm:"column:company_name"`
	TaxRate     float64   `gorm:"column:tax_rate;default:0"`
	Currency    string    `gorm:"column:currency;type:varchar(10);default:EUR"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (AppSetting) TableName() string {
	return "app_settings"
}
