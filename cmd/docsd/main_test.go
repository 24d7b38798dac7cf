package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvefinder/docs/pkg/logger"
	"github.com/cvefinder/docs/pkg/markdown"
	"github.com/cvefinder/docs/pkg/page"
	"github.com/cvefinder/docs/views"
)

func TestNewApp(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "api-keys.md"), []byte("# API Keys\n\nCreate a key.\n"), 0o600))

	root, err := os.OpenRoot(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })

	svc := page.NewService(page.NewResolver(root.FS()), markdown.New())
	app := newApp(svc, views.DefaultSite(), logger.NewNope())

	t.Run("page with headers", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?page=api-keys", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Create a key.")
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	})

	t.Run("static favicon", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/favicon.svg", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "<svg")
	})

	t.Run("readiness", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestNewApp_NotReadyWithoutDefaultPage(t *testing.T) {
	t.Parallel()

	root, err := os.OpenRoot(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })

	svc := page.NewService(page.NewResolver(root.FS()), markdown.New())
	app := newApp(svc, views.DefaultSite(), logger.NewNope())

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	c, err := loadCatalog("")
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pages:\n  - id: quickstart\n    label: Quickstart\n"), 0o600))
	c, err = loadCatalog(path)
	require.NoError(t, err)
	_, ok := c.Lookup("quickstart")
	assert.True(t, ok)

	_, err = loadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestShippedContent(t *testing.T) {
	t.Parallel()

	root, err := os.OpenRoot(filepath.Join("..", "..", "content"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })

	svc := page.NewService(page.NewResolver(root.FS()), markdown.New())
	require.NoError(t, svc.Check(t.Context()))

	for _, e := range svc.Catalog().Entries() {
		p, err := svc.Load(t.Context(), e.ID)
		require.NoError(t, err, e.ID)
		assert.Equal(t, e.ID, p.ID)
		assert.False(t, p.Fallback, e.ID)
		assert.NotEmpty(t, p.Heading, e.ID)
		assert.Equal(t, e.Title, p.Meta.Title, e.ID)
	}
}
