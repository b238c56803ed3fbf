package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/demo"
)

// Pinger is implemented by backends that hold a connection worth checking.
type Pinger interface {
	Ping() error
}

type HealthResponse struct {
	Status   string            `json:"status"`
	Time     string            `json:"time"`
	Version  string            `json:"version,omitempty"`
	Backend  string            `json:"backend"`
	Books    int               `json:"books"`
	DemoMode bool              `json:"demo_mode"`
	Checks   map[string]string `json:"checks"`
}

type HealthController struct {
	store   BookStore
	db      Pinger
	backend string
	version string
}

// NewHealthController creates a health controller. db may be nil when the
// store runs on the memory backend.
func NewHealthController(store BookStore, db Pinger, backend, version string) *HealthController {
	return &HealthController{
		store:   store,
		db:      db,
		backend: backend,
		version: version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	// Check database connectivity
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			checks["database"] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks["database"] = "ok"
		}
	} else {
		checks["database"] = "not configured"
	}

	health := HealthResponse{
		Status:   status,
		Time:     time.Now().Format(time.RFC3339),
		Version:  h.version,
		Backend:  h.backend,
		Books:    h.store.Count(),
		DemoMode: c.GetBool(demo.ContextKeyDemoMode),
		Checks:   checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
