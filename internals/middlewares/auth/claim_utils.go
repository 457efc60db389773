// internals/middlewares/auth/claim_utils.go
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["user_id"]
	if !ok {
		if raw, ok = claims["sub"]; !ok {
			return uuid.Nil, errors.New("klaim user_id tidak ada")
		}
	}
	s, ok := raw.(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("klaim user_id bukan string: %T", raw)
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("klaim user_id bukan uuid: %w", err)
	}
	return id, nil
}

// validateTokenExpiry menoleransi clock skew kecil antar server.
func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("klaim exp tidak ada")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return fmt.Errorf("klaim exp bukan angka: %T", expRaw)
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return fmt.Errorf("token kedaluwarsa pada %s", expTime.Format(time.RFC3339))
	}
	return nil
}
