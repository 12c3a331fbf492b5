package auth

import (
	"context"
)

type contextKey string

var staffClaimsKey contextKey = "staff_claims"

func SetStaffClaims(ctx context.Context, claims *StaffClaims) context.Context {
	return context.WithValue(ctx, staffClaimsKey, claims)
}

func GetStaffClaims(ctx context.Context) *StaffClaims {
	val := ctx.Value(staffClaimsKey)
	if claims, ok := val.(*StaffClaims); ok {
		return claims
	}
	return nil
}
