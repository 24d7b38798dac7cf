package page_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvefinder/docs/pkg/page"
)

func contentFS() fstest.MapFS {
	return fstest.MapFS{
		"api-keys.md":      {Data: []byte("# API Keys\n\nGenerate a key.\n")},
		"api-reference.md": {Data: []byte("# API Reference\n\nEndpoints.\n")},
		"faq.md":           {Data: []byte("# FAQ\n\nQuestions.\n")},
		"guides":           {Mode: os.ModeDir},
		"guides/setup.md":  {Data: []byte("# Setup\n")},
		"folder.md":        {Mode: os.ModeDir},
	}
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	r := page.NewResolver(contentFS(), page.WithRootPath("/srv/docs/"))

	tests := []struct {
		name   string
		id     string
		wantID string
	}{
		{name: "existing page", id: "faq", wantID: "faq"},
		{name: "existing default page", id: "api-keys", wantID: "api-keys"},
		{name: "unknown page falls back", id: "missing", wantID: "api-keys"},
		{name: "empty identifier falls back", id: "", wantID: "api-keys"},
		{name: "directory is not a page", id: "folder", wantID: "api-keys"},
		{name: "sanitized traversal falls back", id: page.Sanitize("../../etc/passwd"), wantID: "api-keys"},
		{name: "nested file is unreachable", id: page.Sanitize("guides/setup"), wantID: "api-keys"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := r.Resolve(tt.id)
			assert.Equal(t, tt.wantID, got.ID)
			assert.Equal(t, tt.wantID+".md", got.Name)
			assert.Equal(t, "/srv/docs/"+tt.wantID+".md", got.Path)
		})
	}
}

func TestResolver_CustomDefault(t *testing.T) {
	t.Parallel()

	r := page.NewResolver(contentFS(), page.WithDefaultPage("FAQ"))
	require.Equal(t, "faq", r.DefaultID())

	got := r.Resolve("nope")
	assert.Equal(t, "faq", got.ID)
	assert.Equal(t, "./faq.md", got.Path)
}

func TestResolver_FallbackDoesNotCheckDefault(t *testing.T) {
	t.Parallel()

	r := page.NewResolver(fstest.MapFS{}, page.WithDefaultPage("home"))

	got := r.Resolve("anything")
	assert.Equal(t, "home", got.ID)
	assert.Equal(t, "home.md", got.Name)
}

func TestResolver_Check(t *testing.T) {
	t.Parallel()

	t.Run("default present", func(t *testing.T) {
		t.Parallel()
		r := page.NewResolver(contentFS())
		require.NoError(t, r.Check(context.Background()))
	})

	t.Run("default missing", func(t *testing.T) {
		t.Parallel()
		r := page.NewResolver(contentFS(), page.WithDefaultPage("welcome"))
		err := r.Check(context.Background())
		require.ErrorIs(t, err, page.ErrContentRootMisconfigured)
	})

	t.Run("default is a directory", func(t *testing.T) {
		t.Parallel()
		r := page.NewResolver(contentFS(), page.WithDefaultPage("folder"))
		require.ErrorIs(t, r.Check(context.Background()), page.ErrContentRootMisconfigured)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		r := page.NewResolver(contentFS())
		require.ErrorIs(t, r.Check(ctx), context.Canceled)
	})
}

func TestResolver_OSRootConfinement(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := filepath.Join(dir, "content")
	require.NoError(t, os.Mkdir(content, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(content, "api-keys.md"), []byte("# Keys\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "secret.md"), []byte("# Secret\n"), 0o600))

	// A symlink inside the root pointing outside of it must not be served.
	if err := os.Symlink(filepath.Join(dir, "secret.md"), filepath.Join(content, "leak.md")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	root, err := os.OpenRoot(content)
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })

	r := page.NewResolver(root.FS(), page.WithRootPath(content))
	assert.Equal(t, "api-keys", r.Resolve("leak").ID)
	assert.Equal(t, "api-keys", r.Resolve("secret").ID)
}
