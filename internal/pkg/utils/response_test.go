package utils

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/places-microservice/internal/pkg/errors"
)

func TestSendError(t *testing.T) {
	app := fiber.New()
	app.Get("/app", func(c *fiber.Ctx) error {
		return SendError(c, errors.ErrStorageUnavailable.Wrap(stderrors.New("pq: connection reset")))
	})
	app.Get("/plain", func(c *fiber.Ctx) error {
		return SendError(c, stderrors.New("boom"))
	})

	t.Run("app error keeps status and hides cause", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/app", nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.NotContains(t, string(body), "connection reset")

		var parsed map[string]map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &parsed))
		assert.Equal(t, "STORAGE_UNAVAILABLE", parsed["error"]["code"])
	})

	t.Run("unknown error becomes internal", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/plain", nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), "INTERNAL_SERVER_ERROR")
		assert.NotContains(t, string(body), "boom")
	})
}
