// Package jwt reads identity claims out of the frontend's bearer
// tokens. Token issuance and the authentication protocol belong to the
// auth backend; this gateway only needs the professor id and role to
// default its listing scope, so the handling here is deliberately
// thin.
package jwt

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid token")

const (
	RoleAdmin     = "admin"
	RoleProfessor = "professor"
)

type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

type Reader struct {
	secretKey []byte
}

// NewReader builds a claims reader. With an empty secret, claims are
// parsed without signature verification; they then only ever inform
// advisory defaults, never authorization.
func NewReader(secretKey string) *Reader {
	return &Reader{secretKey: []byte(secretKey)}
}

// Read extracts claims from a compact JWT. The role is normalized to
// lower case.
func (r *Reader) Read(tokenString string) (*Claims, error) {
	claims := &Claims{}

	var err error
	if len(r.secretKey) == 0 {
		_, _, err = jwt.NewParser().ParseUnverified(tokenString, claims)
	} else {
		_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return r.secretKey, nil
		})
	}
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims.Role = strings.ToLower(strings.TrimSpace(claims.Role))
	return claims, nil
}
