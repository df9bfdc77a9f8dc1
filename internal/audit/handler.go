package audit

import (
	"hris-backend/internal/auth"
	"hris-backend/internal/models"
	"hris-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

// GET /api/auditoria
func ListAuditLogsHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		logs := make([]models.AuditLog, 0)

		tenantID, ok := auth.TenantID(c)
		if !ok {
			return c.JSON(logs)
		}

		if err := st.DB().
			Where("usuario_id = ?", tenantID).
			Order("id DESC").
			Find(&logs).Error; err != nil {
			return c.JSON([]models.AuditLog{})
		}
		return c.JSON(logs)
	}
}
