package employee

import (
	"strconv"

	"hris-backend/internal/audit"
	"hris-backend/internal/auth"
	"hris-backend/internal/models"
	"hris-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type CreateEmployeeRequest struct {
	EmployeeID int    `json:"id_empleado"`
	Name       string `json:"nombre"`
	Role       string `json:"puesto"`
	Department string `json:"departamento"`
}

type UpdateEmployeeRequest struct {
	Name       string `json:"nombre"`
	Role       string `json:"puesto"`
	Department string `json:"departamento"`
}

// GET /api/empleados
func ListEmployeesHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employees := make([]models.Employee, 0)

		tenantID, ok := auth.TenantID(c)
		if !ok {
			return c.JSON(employees)
		}

		if err := st.List(tenantID, &employees); err != nil {
			return c.JSON([]models.Employee{})
		}
		return c.JSON(employees)
	}
}

// POST /api/empleados
// No uniqueness check on id_empleado inside the tenant: duplicates are
// allowed, matching the shipped behavior.
func CreateEmployeeHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tenantID, err := auth.RequireTenant(c)
		if err != nil {
			return err
		}

		var body CreateEmployeeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		emp := models.Employee{
			EmployeeID: body.EmployeeID,
			Name:       body.Name,
			Role:       body.Role,
			Department: body.Department,
			TenantID:   tenantID,
		}
		if err := st.Append(&emp); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error al registrar empleado: "+err.Error())
		}

		audit.WriteLog(st, audit.LogOptions{
			TenantID:   tenantID,
			EntityType: "empleado",
			EntityID:   emp.EmployeeID,
			Action:     models.AuditActionCreate,
			After:      emp,
		})

		return c.JSON(fiber.Map{
			"estado":  "Éxito",
			"mensaje": "Empleado registrado.",
		})
	}
}

// PUT /api/empleados/:id
// Scoped by (id_empleado, usuario_id); touching zero rows is a silent no-op.
func UpdateEmployeeHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tenantID, err := auth.RequireTenant(c)
		if err != nil {
			return err
		}

		employeeID, err := parseEmployeeID(c)
		if err != nil {
			return err
		}

		var body UpdateEmployeeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Cuerpo de la petición inválido")
		}

		before := currentEmployee(st, employeeID, tenantID)

		affected, err := st.Update(&models.Employee{}, "id_empleado", employeeID, tenantID, map[string]interface{}{
			"nombre":       body.Name,
			"puesto":       body.Role,
			"departamento": body.Department,
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error al actualizar empleado: "+err.Error())
		}

		if affected > 0 {
			audit.WriteLog(st, audit.LogOptions{
				TenantID:   tenantID,
				EntityType: "empleado",
				EntityID:   employeeID,
				Action:     models.AuditActionUpdate,
				Before:     before,
				After:      body,
			})
		}

		return c.JSON(fiber.Map{"mensaje": "Datos actualizados."})
	}
}

// DELETE /api/empleados/:id
func DeleteEmployeeHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tenantID, err := auth.RequireTenant(c)
		if err != nil {
			return err
		}

		employeeID, err := parseEmployeeID(c)
		if err != nil {
			return err
		}

		before := currentEmployee(st, employeeID, tenantID)

		affected, err := st.Delete(&models.Employee{}, "id_empleado", employeeID, tenantID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error al dar de baja: "+err.Error())
		}

		if affected > 0 {
			audit.WriteLog(st, audit.LogOptions{
				TenantID:   tenantID,
				EntityType: "empleado",
				EntityID:   employeeID,
				Action:     models.AuditActionDelete,
				Before:     before,
			})
		}

		return c.JSON(fiber.Map{"mensaje": "Dado de baja."})
	}
}

func parseEmployeeID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "id_empleado inválido")
	}
	return id, nil
}

// currentEmployee fetches the pre-mutation snapshot for the audit trail.
// Best-effort: nil when the row does not exist or the read fails.
func currentEmployee(st *store.Store, employeeID int, tenantID uint) *models.Employee {
	var emp models.Employee
	err := st.DB().
		Where("id_empleado = ? AND usuario_id = ?", employeeID, tenantID).
		First(&emp).Error
	if err != nil {
		return nil
	}
	return &emp
}
