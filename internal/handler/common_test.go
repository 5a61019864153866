package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-pharma-pos/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type errorBody struct {
	Error struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestFail_KindAndMessageInBody(t *testing.T) {
	app := fiber.New()
	app.Get("/due", func(c *fiber.Ctx) error {
		return fail(c, apperror.NoDueAmount("No due amount found"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/due", nil))
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	var body errorBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "no_due_amount", body.Error.Kind)
	assert.Equal(t, "No due amount found", body.Error.Message)
}

// Kinds sharing a status code must stay distinguishable through the body.
func TestFail_DistinguishesKindsOnSameStatus(t *testing.T) {
	app := fiber.New()
	app.Get("/qty", func(c *fiber.Ctx) error {
		return fail(c, apperror.New(apperror.KindInvalidRefundQuantity, "Refund quantity exceeds sold quantity"))
	})
	app.Get("/amt", func(c *fiber.Ctx) error {
		return fail(c, apperror.New(apperror.KindInvalidRefundAmount, "Refund amount exceeds line total"))
	})

	for path, kind := range map[string]string{
		"/qty": "invalid_refund_quantity",
		"/amt": "invalid_refund_amount",
	} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		assert.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)

		var body errorBody
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, kind, body.Error.Kind)
	}
}

func TestFail_InternalHidesDetails(t *testing.T) {
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fail(c, errors.New("pq: connection refused"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	var body errorBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "internal", body.Error.Kind)
	assert.Equal(t, "Internal Server Error", body.Error.Message)
}
