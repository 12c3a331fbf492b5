package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// CodeChecker reports whether a booking code is already taken
type CodeChecker interface {
	CodeExists(ctx context.Context, code string) (bool, error)
}

const codeGenerationAttempts = 10

// GenerateBookingCode produces a globally unique booking code, retrying
// against the datastore a bounded number of times. The code space makes
// exhaustion practically impossible; the bound protects against a persistent
// race.
func GenerateBookingCode(ctx context.Context, checker CodeChecker) (string, error) {
	for i := 0; i < codeGenerationAttempts; i++ {
		code := "BK-" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])

		exists, err := checker.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}

	return "", ErrCodeGenerationExhausted
}
