package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/kardelen/uretim-api/internal/interfaces/http"
	pkgjwt "github.com/kardelen/uretim-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test yardımcıları
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "uretim-api-test"
	testExpMin    = 60
)

// buildTestApp minimal bir Fiber uygulaması kurar:
//   - AuthMiddleware JWT'yi çözer ve locals'ı doldurur
//   - RequireRole erişimi yetkilendirir
//   - middleware'leri geçen istek 200 döner
func buildTestApp(allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole verilen rolle bir JWT üretir.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err, "geçerli bir JWT üretilebilmeli")
	return "Bearer " + tok
}

// doRequest GET /protected isteği atar ve yanıtı döner.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole testleri
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminYetkiliRotayaGirer(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin, admin'e açık rotaya girebilmeli")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "admin", body["role"])
}

func TestRequireRole_DepoCokRolluRotayaGirer(t *testing.T) {
	app := buildTestApp("admin", "depo")
	resp := doRequest(t, app, tokenForRole(t, "depo"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"depo, admin veya depo'ya açık rotaya girebilmeli")
}

func TestRequireRole_UretimDepoRotasindaEngellenir(t *testing.T) {
	app := buildTestApp("admin", "depo")
	resp := doRequest(t, app, tokenForRole(t, "uretim"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"uretim, depo rotasına girememeli")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"hata yanıtı FORBIDDEN kodunu içermeli")
}

func TestRequireRole_SevkiyatUretimRotasindaEngellenir(t *testing.T) {
	app := buildTestApp("uretim", "muhendis")
	resp := doRequest(t, app, tokenForRole(t, "sevkiyat"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_RolsuzToken401(t *testing.T) {
	// Rol claim'i olmayan eski bir token'ı taklit etmek için boş rolle üret.
	app := buildTestApp("admin")
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"rolsüz token 401 dönmeli")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE")
}

func TestRequireRole_AuthHeaderYok401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole_GecersizToken401(t *testing.T) {
	app := buildTestApp("admin")
	resp := doRequest(t, app, "Bearer token.gecersiz.burada")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware — claim çıkarımı
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ClaimleriCikarir(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, "muhendis"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "muhendis", body["role"])
}

// ──────────────────────────────────────────────────────────────────────────────
// JWT pkg — generate/parse bütünlüğü
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateVeParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "depo", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "depo", role)
}

func TestJWT_SuresiDolmusTokenHata(t *testing.T) {
	// Süresi -1 dakika: üretildiği anda geçersiz
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "süresi dolmuş token hata dönmeli")
}

func TestJWT_YanlisSecretHata(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("bambaska-bir-secret", tok)
	assert.Error(t, err, "yanlış secret token'ı geçersiz kılmalı")
}
