package constants

import (
	"database/sql/driver"
	"fmt"
)

// StaffRole is the role a staff account holds within the back office
type StaffRole string

const (
	RoleOwner        StaffRole = "OWNER"
	RoleManager      StaffRole = "MANAGER"
	RoleReceptionist StaffRole = "RECEPTIONIST"
	RoleCleaner      StaffRole = "CLEANER"
)

// Stringer – convenient for fmt / logs
func (r StaffRole) String() string { return string(r) }

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (r *StaffRole) Scan(src interface{}) error {
	if src == nil {
		*r = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*r = StaffRole(v)
	case []byte:
		*r = StaffRole(v)
	default:
		return fmt.Errorf("StaffRole: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (r StaffRole) Value() (driver.Value, error) { return string(r), nil }
