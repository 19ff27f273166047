package main

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgm-logistikk/frakt-api/pkg/logger"
)

// ─────────────────────────────────────────────
// Swagger mounting
// ─────────────────────────────────────────────

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup. (testing.T.Chdir needs Go 1.24.)
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestMountSwagger_MissingSpecFileSkipsDocs(t *testing.T) {
	chdir(t, t.TempDir())

	app := fiber.New()
	log := logger.New(logger.Config{Env: "development", Level: "error"})

	assert.NotPanics(t, func() {
		mountSwagger(app, log)
	})

	// The app still serves its routes with docs disabled.
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestMountSwagger_WithSpecFileMounts(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs"), 0o755))
	spec := []byte(`{"swagger":"2.0","info":{"title":"DGM Logistikk API","version":"1.0"},"paths":{}}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "swagger.json"), spec, 0o644))

	app := fiber.New()
	log := logger.New(logger.Config{Env: "development", Level: "error"})

	assert.NotPanics(t, func() {
		mountSwagger(app, log)
	})
}
