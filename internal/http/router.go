package http

import (
	"github.com/gin-gonic/gin"
)

// RouterConfig bundles everything the router needs, improving testability and
// keeping the constructor's parameter count down.
type RouterConfig struct {
	Catalog *CatalogController
	Members *MembersController
	Health  *HealthController
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.GET("/health", cfg.Health.Status)

	api := router.Group("/api")
	{
		api.POST("/books", cfg.Catalog.AddBook)
		api.GET("/books/available", cfg.Catalog.GetAvailableBooks)
		api.POST("/loans", cfg.Catalog.BorrowBook)
		api.POST("/returns", cfg.Catalog.ReturnBook)

		api.POST("/members", cfg.Members.Register)
		api.POST("/members/:id/suspend", cfg.Members.Suspend)
		api.POST("/members/:id/reactivate", cfg.Members.Reactivate)
		api.GET("/members/:id/loans", cfg.Members.GetLoans)
	}

	return router
}
