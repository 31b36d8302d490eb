//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// MakeToken signs a bearer token carrying the identity claims the
// gateway reads. The signing key is arbitrary; readers configured
// without a secret parse claims unverified.
func MakeToken(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()

	claims := jwtlib.MapClaims{
		"user_id": userID.String(),
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-signing-key"))
	require.NoError(t, err)
	return signed
}
