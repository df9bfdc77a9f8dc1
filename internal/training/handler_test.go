package training_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hris-backend/internal/config"
	"hris-backend/internal/database"
	"hris-backend/internal/models"
	"hris-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret:   "secreto-de-pruebas-0123456789abcdef",
		CORSOrigins: "http://localhost:5173",
	}
	return routes.New(cfg, db), db
}

func registerScan(t *testing.T, app *fiber.App, tenant string, body fiber.Map) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/registrar-qr", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	if tenant != "" {
		req.Header.Set("X-User-Id", tenant)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRegisterScanDefaultsTrainingID(t *testing.T) {
	app, db := testApp(t)

	resp := registerScan(t, app, "1", fiber.Map{"id_empleado": 101})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Asistencia registrada. Empleado: 101", out["mensaje"])

	var scans []models.TrainingAttendance
	require.NoError(t, db.Find(&scans).Error)
	require.Len(t, scans, 1)
	assert.Equal(t, 1, scans[0].TrainingID)
	assert.Equal(t, uint(1), scans[0].TenantID)

	// Server-generated wall-clock timestamp, second resolution.
	ts, err := time.ParseInLocation(models.ScanTimeLayout, scans[0].ScannedAt, time.Local)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, 5*time.Second)
}

func TestRegisterScanNoDedup(t *testing.T) {
	app, db := testApp(t)

	for i := 0; i < 2; i++ {
		resp := registerScan(t, app, "1", fiber.Map{"id_empleado": 101, "id_capacitacion": 2})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var count int64
	require.NoError(t, db.Model(&models.TrainingAttendance{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestRegisterScanRequiresTenant(t *testing.T) {
	app, _ := testApp(t)

	resp := registerScan(t, app, "", fiber.Map{"id_empleado": 101})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestListScansWithoutTenantIsEmptyArray(t *testing.T) {
	app, db := testApp(t)

	require.NoError(t, db.Create(&models.TrainingAttendance{
		TenantID: 1, TrainingID: 1, EmployeeID: 101, ScannedAt: "2026-02-23 09:05:00",
	}).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/registros-qr", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	assert.Empty(t, rows)
}

func TestListScansIsScopedByTenant(t *testing.T) {
	app, db := testApp(t)

	scans := []models.TrainingAttendance{
		{TenantID: 1, TrainingID: 1, EmployeeID: 101, ScannedAt: "2026-02-23 09:05:00"},
		{TenantID: 2, TrainingID: 1, EmployeeID: 201, ScannedAt: "2026-02-23 10:05:00"},
	}
	require.NoError(t, db.Create(&scans).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/registros-qr", nil)
	req.Header.Set("X-User-Id", "1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []models.TrainingAttendance
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	require.Len(t, rows, 1)
	assert.Equal(t, 101, rows[0].EmployeeID)
}
