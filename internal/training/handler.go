package training

import (
	"fmt"
	"time"

	"hris-backend/internal/auth"
	"hris-backend/internal/models"
	"hris-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type ScanRequest struct {
	EmployeeID int `json:"id_empleado"`
	TrainingID int `json:"id_capacitacion"`
}

// POST /api/registrar-qr
// One row per scan with a server-side wall-clock timestamp. Scanning the
// same employee twice is two rows: re-training and multiple sessions are
// legitimate.
func RegisterScanHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tenantID, err := auth.RequireTenant(c)
		if err != nil {
			return err
		}

		var body ScanRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}
		if body.TrainingID == 0 {
			body.TrainingID = 1
		}

		scan := models.TrainingAttendance{
			TenantID:   tenantID,
			TrainingID: body.TrainingID,
			EmployeeID: body.EmployeeID,
			ScannedAt:  time.Now().Format(models.ScanTimeLayout),
		}
		if err := st.Append(&scan); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error al registrar asistencia: "+err.Error())
		}

		return c.JSON(fiber.Map{
			"mensaje": fmt.Sprintf("Asistencia registrada. Empleado: %d", body.EmployeeID),
		})
	}
}

// GET /api/registros-qr
// Dashboard-feeding read: a missing tenant header or a storage fault yields
// an empty array, never an error.
func ListScansHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scans := make([]models.TrainingAttendance, 0)

		tenantID, ok := auth.TenantID(c)
		if !ok {
			return c.JSON(scans)
		}

		if err := st.List(tenantID, &scans); err != nil {
			return c.JSON([]models.TrainingAttendance{})
		}
		return c.JSON(scans)
	}
}
