package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply demo mode middleware if enabled
	if cfg.DemoMiddleware != nil && cfg.DemoMiddleware.IsEnabled() {
		router.Use(cfg.DemoMiddleware.InjectContext())
		router.Use(cfg.DemoMiddleware.Handler())
	}

	health := NewHealthController(cfg.Store, cfg.Database, cfg.Backend, cfg.Version)
	booksController := NewBooksController(cfg.Store, cfg.DefaultPageSize, cfg.MaxPageSize)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Books API endpoints
	books := router.Group("/api/books")
	{
		books.GET("", booksController.ListBooks)
		books.GET("/all", booksController.GetAllBooks)
		books.GET("/search", booksController.SearchBooks)
		books.GET("/stats", booksController.GetBookStats)
		books.GET("/:id", booksController.GetBook)
		books.POST("", booksController.CreateBook)
		books.PATCH("/:id", booksController.UpdateBook)
		books.DELETE("/:id", booksController.DeleteBook)
		books.DELETE("", booksController.ClearBooks)
	}

	return router
}
