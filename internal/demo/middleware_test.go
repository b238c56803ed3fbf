package demo

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(m *Middleware) *gin.Engine {
	router := gin.New()
	router.Use(m.InjectContext())
	router.Use(m.Handler())
	handler := func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	}
	router.GET("/api/books", handler)
	router.HEAD("/api/books", handler)
	router.OPTIONS("/api/books", handler)
	router.POST("/api/books", handler)
	router.PATCH("/api/books/:id", handler)
	router.DELETE("/api/books/:id", handler)
	router.POST("/api/search/run", handler)
	router.GET("/flag", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"demo": c.GetBool(ContextKeyDemoMode)})
	})
	return router
}

func TestNewMiddleware(t *testing.T) {
	assert.True(t, NewMiddleware(true).IsEnabled())
	assert.False(t, NewMiddleware(false).IsEnabled())
}

func TestMiddleware_AllowsReadRequests(t *testing.T) {
	router := newTestRouter(NewMiddleware(true))

	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodOptions} {
		t.Run(method, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(method, "/api/books", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestMiddleware_BlocksWriteRequests(t *testing.T) {
	router := newTestRouter(NewMiddleware(true))

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/books"},
		{http.MethodPatch, "/api/books/abc"},
		{http.MethodDelete, "/api/books/abc"},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusForbidden, w.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, true, response["demo_mode"])
			assert.Contains(t, response["error"], "demo mode")
		})
	}
}

func TestMiddleware_BlocksWritesOutsideBooksAPI(t *testing.T) {
	router := newTestRouter(NewMiddleware(true))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/search/run", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMiddleware_DisabledAllowsAllRequests(t *testing.T) {
	router := newTestRouter(NewMiddleware(false))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/books", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestMiddleware_InjectContext(t *testing.T) {
	for _, enabled := range []bool{true, false} {
		router := newTestRouter(NewMiddleware(enabled))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/flag", nil)
		router.ServeHTTP(w, req)

		var response map[string]bool
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, enabled, response["demo"])
	}
}
