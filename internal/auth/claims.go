package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"stayflow/backoffice/internal/constants"
)

// StaffClaims is the JWT payload for a staff session
type StaffClaims struct {
	UserID uint                `json:"uid"`
	Email  string              `json:"email"`
	Role   constants.StaffRole `json:"role"`
	jwt.RegisteredClaims
}

// IsManagerial reports whether the role may manage properties, rooms and
// staff. Receptionists and cleaners only operate on bookings and tasks.
func (c *StaffClaims) IsManagerial() bool {
	return c.Role == constants.RoleOwner || c.Role == constants.RoleManager
}
