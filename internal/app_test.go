package internal_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvefinder/docs/internal"
)

type routesFunc func(r internal.Router)

func (f routesFunc) Routes(r internal.Router) { f(r) }

func serve(app *internal.App, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestApp_MiddlewareOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) internal.Middleware {
		return func(next internal.HandlerFunc) internal.HandlerFunc {
			return func(c internal.Context) error {
				order = append(order, name)
				return next(c)
			}
		}
	}

	app := internal.New(
		internal.WithMiddleware(mark("global-1"), mark("global-2")),
		internal.WithHandlers(routesFunc(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error {
				order = append(order, "handler")
				return c.String(http.StatusOK, "ok")
			}, mark("route-1"), mark("route-2"))
		})),
	)

	w := serve(app, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"global-1", "global-2", "route-1", "route-2", "handler"}, order)
}

func TestApp_ContextValuesFlowThroughMiddleware(t *testing.T) {
	t.Parallel()

	type key struct{}

	app := internal.New(
		internal.WithMiddleware(func(next internal.HandlerFunc) internal.HandlerFunc {
			return func(c internal.Context) error {
				c.Set(key{}, "from-middleware")
				return next(c)
			}
		}),
		internal.WithHandlers(routesFunc(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error {
				return c.String(http.StatusOK, internal.ContextValue[string](c, key{}))
			})
		})),
	)

	assert.Equal(t, "from-middleware", serve(app, http.MethodGet, "/").Body.String())
}

func TestApp_ErrorHandling(t *testing.T) {
	t.Parallel()

	failing := routesFunc(func(r internal.Router) {
		r.GET("/fail", func(c internal.Context) error {
			return internal.ErrNotFound("nothing here")
		})
		r.GET("/late", func(c internal.Context) error {
			_ = c.String(http.StatusOK, "partial")
			return errors.New("after write")
		})
	})

	t.Run("default handler answers 500", func(t *testing.T) {
		t.Parallel()

		app := internal.New(internal.WithHandlers(failing))
		w := serve(app, http.MethodGet, "/fail")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("custom handler sees the error", func(t *testing.T) {
		t.Parallel()

		app := internal.New(
			internal.WithHandlers(failing),
			internal.WithErrorHandler(func(c internal.Context, err error) error {
				if he := internal.AsHTTPError(err); he != nil {
					return c.String(he.Code, he.Message)
				}
				return c.String(http.StatusInternalServerError, "oops")
			}),
		)

		w := serve(app, http.MethodGet, "/fail")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "nothing here", w.Body.String())
	})

	t.Run("error after write keeps the response", func(t *testing.T) {
		t.Parallel()

		called := false
		app := internal.New(
			internal.WithHandlers(failing),
			internal.WithErrorHandler(func(c internal.Context, err error) error {
				called = true
				return nil
			}),
		)

		w := serve(app, http.MethodGet, "/late")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "partial", w.Body.String())
		assert.False(t, called)
	})
}

func TestApp_NotFoundAndMethodNotAllowed(t *testing.T) {
	t.Parallel()

	app := internal.New(
		internal.WithHandlers(routesFunc(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error { return c.String(http.StatusOK, "home") })
		})),
		internal.WithNotFoundHandler(func(c internal.Context) error {
			return c.String(http.StatusNotFound, "custom 404")
		}),
		internal.WithMethodNotAllowedHandler(func(c internal.Context) error {
			return c.String(http.StatusMethodNotAllowed, "custom 405")
		}),
	)

	w := serve(app, http.MethodGet, "/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "custom 404", w.Body.String())

	w = serve(app, http.MethodPost, "/")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "custom 405", w.Body.String())
}

func TestApp_RouterGroups(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHandlers(routesFunc(func(r internal.Router) {
		r.Route("/api", func(r internal.Router) {
			r.GET("/pages", func(c internal.Context) error { return c.String(http.StatusOK, "pages") })
		})
		r.Group(func(r internal.Router) {
			r.Use(func(next internal.HandlerFunc) internal.HandlerFunc {
				return func(c internal.Context) error {
					c.SetHeader("X-Group", "yes")
					return next(c)
				}
			})
			r.GET("/grouped", func(c internal.Context) error { return c.String(http.StatusOK, "grouped") })
			r.HEAD("/grouped", func(c internal.Context) error { return c.NoContent(http.StatusOK) })
		})
		r.Mount("/raw", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("raw"))
		}))
	})))

	assert.Equal(t, "pages", serve(app, http.MethodGet, "/api/pages").Body.String())

	w := serve(app, http.MethodGet, "/grouped")
	assert.Equal(t, "grouped", w.Body.String())
	assert.Equal(t, "yes", w.Header().Get("X-Group"))

	assert.Equal(t, http.StatusOK, serve(app, http.MethodHead, "/grouped").Code)
	assert.Equal(t, "raw", serve(app, http.MethodGet, "/raw").Body.String())
}

func TestApp_StaticFiles(t *testing.T) {
	t.Parallel()

	assets := fstest.MapFS{
		"static/favicon.svg": {Data: []byte("<svg/>")},
	}
	app := internal.New(internal.WithStaticFiles("/static/", assets, "static"))

	w := serve(app, http.MethodGet, "/static/favicon.svg")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<svg/>", w.Body.String())
	assert.Equal(t, "public, max-age=3600", w.Header().Get("Cache-Control"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	assert.Equal(t, http.StatusNotFound, serve(app, http.MethodGet, "/static/").Code)
}

func TestApp_HealthChecks(t *testing.T) {
	t.Parallel()

	healthy := true
	app := internal.New(internal.WithHealthChecks(
		internal.WithReadinessCheck("content", func(context.Context) error {
			if healthy {
				return nil
			}
			return errors.New("default page missing")
		}),
		internal.WithLivenessPath("/livez"),
		internal.WithReadinessPath(""),
	))

	assert.Equal(t, http.StatusOK, serve(app, http.MethodGet, "/livez").Code)
	assert.Equal(t, http.StatusOK, serve(app, http.MethodGet, "/health/ready").Code)

	healthy = false
	w := serve(app, http.MethodGet, "/health/ready?format=json")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "default page missing")
}

func TestApp_Run(t *testing.T) {
	t.Parallel()

	t.Run("startup hook failure aborts", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("content root missing")
		err := internal.New().Run("127.0.0.1:0",
			internal.StartupHook(func(context.Context) error { return boom }),
		)
		require.ErrorIs(t, err, boom)
	})

	t.Run("graceful shutdown runs hooks", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		var hooks []string
		err := internal.New().Run("127.0.0.1:0",
			internal.WithContext(ctx),
			internal.ShutdownTimeout(time.Second),
			internal.StartupHook(func(context.Context) error { hooks = append(hooks, "start"); return nil }),
			internal.ShutdownHook(func(context.Context) error { hooks = append(hooks, "stop"); return nil }),
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"start", "stop"}, hooks)
	})

	t.Run("shutdown hook errors are joined", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err := internal.New().Run("127.0.0.1:0",
			internal.WithContext(ctx),
			internal.ShutdownHook(func(context.Context) error { return errors.New("flush failed") }),
		)
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "flush failed"))
	})
}
