package auth

import (
	"fmt"
	"strconv"
	"strings"

	"hris-backend/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const CtxTenantIDKey = "usuario_id"

// TenantMiddleware resolves the caller's tenant id and stashes it in the
// request locals. A valid Bearer token wins; otherwise the legacy X-User-Id
// header is parsed as-is. The middleware never rejects: each endpoint decides
// between 401 and an empty result when no tenant is present.
func TenantMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := tenantFromBearer(c, cfg.JWTSecret); ok {
			c.Locals(CtxTenantIDKey, id)
			return c.Next()
		}

		if raw := c.Get("X-User-Id"); raw != "" {
			if id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32); err == nil && id > 0 {
				c.Locals(CtxTenantIDKey, uint(id))
			}
		}
		return c.Next()
	}
}

func tenantFromBearer(c *fiber.Ctx, secret string) (uint, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return 0, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return 0, false
	}

	token, err := jwt.ParseWithClaims(parts[1], &TenantClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inválido")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(*TenantClaims)
	if !ok || claims.TenantID == 0 {
		return 0, false
	}
	return claims.TenantID, true
}

// TenantID returns the tenant resolved by TenantMiddleware, if any.
func TenantID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(CtxTenantIDKey).(uint)
	return id, ok && id > 0
}

// RequireTenant is TenantID for the endpoints that answer 401 without one.
func RequireTenant(c *fiber.Ctx) (uint, error) {
	id, ok := TenantID(c)
	if !ok {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "No autorizado")
	}
	return id, nil
}
