package auth

import (
	"time"

	"hris-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

type TenantClaims struct {
	TenantID uint   `json:"usuario_id"`
	Empresa  string `json:"empresa"`
	jwt.RegisteredClaims
}

// GenerateToken issues the signed session token returned at login. The bare
// X-User-Id header keeps working for old clients; this token is the hardened
// carrier of the same tenant id.
func GenerateToken(secret string, user *models.User) (string, error) {
	claims := &TenantClaims{
		TenantID: user.ID,
		Empresa:  user.Empresa,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
