package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-pharma-pos/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type errorBody struct {
	Error struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeError(t *testing.T, resp *http.Response) errorBody {
	t.Helper()
	var body errorBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestRequireAuth_MissingToken(t *testing.T) {
	app := fiber.New()
	app.Get("/secure", RequireAuth(), func(c *fiber.Ctx) error { return c.SendStatus(200) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/secure", nil))
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	body := decodeError(t, resp)
	assert.Equal(t, "unauthenticated", body.Error.Kind)
	assert.Equal(t, "Missing authorization token", body.Error.Message)
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	app := fiber.New()
	app.Get("/secure", RequireAuth(), func(c *fiber.Ctx) error { return c.SendStatus(200) })

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "garbage")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
	assert.Equal(t, "unauthenticated", decodeError(t, resp).Error.Kind)
}

func TestRequireRole_Forbidden(t *testing.T) {
	app := fiber.New()
	app.Get("/admin",
		func(c *fiber.Ctx) error {
			c.Locals("user_role", string(model.RoleSalesman))
			return c.Next()
		},
		RequireRole(model.RoleAdmin),
		func(c *fiber.Ctx) error { return c.SendStatus(200) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)

	body := decodeError(t, resp)
	assert.Equal(t, "unauthorized", body.Error.Kind)
	assert.Equal(t, "Forbidden: insufficient role", body.Error.Message)
}

func TestRequireRole_SuperAdminBypass(t *testing.T) {
	app := fiber.New()
	app.Get("/admin",
		func(c *fiber.Ctx) error {
			c.Locals("user_role", string(model.RoleSuperAdmin))
			return c.Next()
		},
		RequireRole(model.RoleAdmin),
		func(c *fiber.Ctx) error { return c.SendStatus(200) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestRequirePermission_Forbidden(t *testing.T) {
	app := fiber.New()
	app.Post("/sell",
		func(c *fiber.Ctx) error {
			c.Locals("user_role", string(model.RoleSalesman))
			c.Locals("user_permissions", []string{model.PermCreateProduct})
			return c.Next()
		},
		RequirePermission(model.PermCreateSell),
		func(c *fiber.Ctx) error { return c.SendStatus(201) })

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/sell", nil))
	assert.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
	assert.Equal(t, "unauthorized", decodeError(t, resp).Error.Kind)
}
