package auth_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hris-backend/internal/auth"
	"hris-backend/internal/config"
	"hris-backend/internal/database"
	"hris-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testApp(t *testing.T) *fiber.App {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret:   "secreto-de-pruebas-0123456789abcdef",
		CORSOrigins: "http://localhost:5173",
	}
	return routes.New(cfg, db)
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, dest interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func TestDigestIsDeterministic(t *testing.T) {
	assert.Equal(t, auth.Digest("pw"), auth.Digest("pw"))
	assert.NotEqual(t, auth.Digest("pw"), auth.Digest("otra"))
	assert.Len(t, auth.Digest("pw"), 64)
}

func TestRegisterAndDuplicateEmail(t *testing.T) {
	app := testApp(t)

	resp := postJSON(t, app, "/api/registro", fiber.Map{
		"email": "a@x.com", "password": "pw", "empresa": "Acme",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ok map[string]string
	decode(t, resp, &ok)
	assert.Equal(t, "Éxito", ok["estado"])

	resp = postJSON(t, app, "/api/registro", fiber.Map{
		"email": "a@x.com", "password": "pw", "empresa": "Acme",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var dup map[string]string
	decode(t, resp, &dup)
	assert.Equal(t, "El correo ya está registrado.", dup["error"])
}

func TestLoginRoundTrip(t *testing.T) {
	app := testApp(t)

	resp := postJSON(t, app, "/api/registro", fiber.Map{
		"email": "a@x.com", "password": "pw", "empresa": "Acme",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, app, "/api/login", fiber.Map{"email": "a@x.com", "password": "pw"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login struct {
		TenantID uint   `json:"usuario_id"`
		Empresa  string `json:"empresa"`
		Token    string `json:"token"`
	}
	decode(t, resp, &login)
	assert.NotZero(t, login.TenantID)
	assert.Equal(t, "Acme", login.Empresa)
	assert.NotEmpty(t, login.Token)

	// A freshly registered tenant sees no data anywhere.
	for _, path := range []string{"/api/empleados", "/api/registros-qr"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("X-User-Id", fmt.Sprint(login.TenantID))
		getResp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, getResp.StatusCode)

		var rows []map[string]interface{}
		decode(t, getResp, &rows)
		assert.Empty(t, rows, path)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	app := testApp(t)

	resp := postJSON(t, app, "/api/registro", fiber.Map{
		"email": "a@x.com", "password": "pw",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, app, "/api/login", fiber.Map{"email": "a@x.com", "password": "mal"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestBearerTokenCarriesTenant(t *testing.T) {
	app := testApp(t)

	resp := postJSON(t, app, "/api/registro", fiber.Map{"email": "a@x.com", "password": "pw"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = postJSON(t, app, "/api/login", fiber.Map{"email": "a@x.com", "password": "pw"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login struct {
		Token string `json:"token"`
	}
	decode(t, resp, &login)

	// Statistics requires a tenant: the token alone must be enough.
	req := httptest.NewRequest(http.MethodGet, "/api/estadisticas", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	statsResp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, statsResp.StatusCode)

	// Without any tenant carrier the same endpoint rejects.
	req = httptest.NewRequest(http.MethodGet, "/api/estadisticas", nil)
	statsResp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, statsResp.StatusCode)
}
