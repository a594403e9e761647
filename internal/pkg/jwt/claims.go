// internal/pkg/jwt/claims.go
package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the signed token payload: the admin's identifier plus
// the registered expiry/issuer set.
type Claims struct {
	AdminID int64  `json:"admin_id"`
	Role    string `json:"role,omitempty"`
	jwt.RegisteredClaims
}
