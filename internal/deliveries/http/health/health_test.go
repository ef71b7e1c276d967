package health

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Handler_healthCheck(t *testing.T) {
	app := echo.New()
	app.Pre(echomiddleware.RemoveTrailingSlash())
	New(app.Group("/api"))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	resp := rec.Result()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"kind":"health","status":"server is up and running"}`, strings.TrimSuffix(string(body), "\n"))
}
