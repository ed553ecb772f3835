package app

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"bloodbank/pkg/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterStaticFiles(t *testing.T) {
	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "style.css"), []byte("body{}"), 0o644))

	f := GetApp(logger.GetLogger(), staticDir)
	f.Get("/BloodBankTable", func(c *fiber.Ctx) error {
		return c.SendString("table")
	})

	resp, err := f.Test(httptest.NewRequest(http.MethodGet, "/static/style.css", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "body{}", string(body))

	// 静态目录不应拦截页面路由
	resp, err = f.Test(httptest.NewRequest(http.MethodGet, "/BloodBankTable", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRegisterStaticFilesEmptyPath(t *testing.T) {
	f := fiber.New()
	RegisterStaticFiles(f, "", "/static")

	resp, err := f.Test(httptest.NewRequest(http.MethodGet, "/static/style.css", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestNewAppWiresModules(t *testing.T) {
	a := NewApp(nil, nil, nil)
	assert.NotNil(t, a.PersonModule)
	assert.NotNil(t, a.BloodBankModule)
	assert.NotNil(t, a.BloodDonationModule)
	assert.NotNil(t, a.DonationRecordModule)
}
