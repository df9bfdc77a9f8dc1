package stats

import (
	"fmt"
	"sort"
	"time"

	"hris-backend/internal/auth"
	"hris-backend/internal/models"
	"hris-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type SummaryItem struct {
	Title string `json:"titulo"`
	Value int64  `json:"valor"`
}

type ChartPoint struct {
	Name  string `json:"name"`
	Count int    `json:"asistencias"`
}

type StatisticsResponse struct {
	Summary []SummaryItem `json:"resumen"`
	Chart   []ChartPoint  `json:"datos_grafica"`
}

// GET /api/estadisticas
// Both reads deliberately swallow faults and degrade to zero/empty so the
// dashboard stays usable on a fresh tenant with no data yet.
func StatisticsHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tenantID, err := auth.RequireTenant(c)
		if err != nil {
			return err
		}

		totalEmployees, err := st.CountDistinct(&models.DailyAttendance{}, "id_empleado", tenantID)
		if err != nil {
			totalEmployees = 0
		}

		var totalTrained int64
		chart := make([]ChartPoint, 0)

		var scans []models.TrainingAttendance
		if err := st.List(tenantID, &scans); err == nil {
			distinct := make(map[int]struct{})
			hours := make(map[int]int)
			for _, scan := range scans {
				distinct[scan.EmployeeID] = struct{}{}
				if ts, err := time.ParseInLocation(models.ScanTimeLayout, scan.ScannedAt, time.Local); err == nil {
					hours[ts.Hour()]++
				}
			}
			totalTrained = int64(len(distinct))

			ordered := make([]int, 0, len(hours))
			for h := range hours {
				ordered = append(ordered, h)
			}
			sort.Ints(ordered)
			for _, h := range ordered {
				chart = append(chart, ChartPoint{
					Name:  fmt.Sprintf("%d:00", h),
					Count: hours[h],
				})
			}
		}

		pending := totalEmployees - totalTrained
		if pending < 0 {
			pending = 0
		}

		return c.JSON(StatisticsResponse{
			Summary: []SummaryItem{
				{Title: "Total en Sucursal", Value: totalEmployees},
				{Title: "Ya Capacitados", Value: totalTrained},
				{Title: "Faltan por ir", Value: pending},
			},
			Chart: chart,
		})
	}
}
