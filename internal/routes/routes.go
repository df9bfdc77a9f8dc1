package routes

import (
	"log"
	"strings"

	"hris-backend/internal/audit"
	"hris-backend/internal/auth"
	"hris-backend/internal/config"
	"hris-backend/internal/employee"
	"hris-backend/internal/ingest"
	"hris-backend/internal/stats"
	"hris-backend/internal/store"
	"hris-backend/internal/training"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"
)

// New wires the whole HTTP surface around an explicit db handle.
func New(cfg *config.Config, db *gorm.DB) *fiber.App {
	st := store.New(db)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Error inesperado:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Error inesperado del servidor",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-User-Id",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/registro", auth.RegisterHandler(db))
	api.Post("/login", auth.LoginHandler(db, cfg))

	// Tenant-scoped surface. The middleware only resolves the tenant id;
	// each handler decides between 401 and an empty result.
	scoped := api.Group("", auth.TenantMiddleware(cfg))

	scoped.Post("/subir-asistencia", ingest.UploadAttendanceHandler(st))

	scoped.Post("/registrar-qr", training.RegisterScanHandler(st))
	scoped.Get("/registros-qr", training.ListScansHandler(st))

	scoped.Get("/estadisticas", stats.StatisticsHandler(st))

	scoped.Get("/empleados", employee.ListEmployeesHandler(st))
	scoped.Post("/empleados", employee.CreateEmployeeHandler(st))
	scoped.Put("/empleados/:id", employee.UpdateEmployeeHandler(st))
	scoped.Delete("/empleados/:id", employee.DeleteEmployeeHandler(st))

	scoped.Get("/auditoria", audit.ListAuditLogsHandler(st))

	return app
}
