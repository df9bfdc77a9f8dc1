package auth

import (
	"errors"
	"strings"

	"hris-backend/internal/config"
	"hris-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Empresa  string `json:"empresa"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/registro
func RegisterHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		if body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Email y contraseña son obligatorios")
		}
		if body.Empresa == "" {
			body.Empresa = "Mi Empresa"
		}

		var existing models.User
		err := db.Where("email = ?", body.Email).First(&existing).Error
		if err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "El correo ya está registrado.")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "Error al registrar")
		}

		user := models.User{
			Email:        body.Email,
			PasswordHash: Digest(body.Password),
			Empresa:      body.Empresa,
		}
		if err := db.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error al registrar")
		}

		return c.JSON(fiber.Map{
			"estado":  "Éxito",
			"mensaje": "Cuenta creada. Ya puedes iniciar sesión.",
		})
	}
}

// POST /api/login
func LoginHandler(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		// Digest comparison happens inside the query: same shape as the
		// original storage, one parameterized lookup.
		var user models.User
		err := db.Where("email = ? AND password_hash = ?", body.Email, Digest(body.Password)).
			First(&user).Error
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Correo o contraseña incorrectos.")
		}

		token, err := GenerateToken(cfg.JWTSecret, &user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar el token")
		}

		return c.JSON(fiber.Map{
			"usuario_id": user.ID,
			"empresa":    user.Empresa,
			"token":      token,
		})
	}
}
