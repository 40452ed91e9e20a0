package api

import (
	"promptlab-backend/internal/api/v1/collection"
	"promptlab-backend/internal/api/v1/health"
	"promptlab-backend/internal/api/v1/prompt"
	"promptlab-backend/internal/middleware"
	"promptlab-backend/internal/services"
	"promptlab-backend/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the engine over a fresh store.
func NewRouter() *gin.Engine {
	return NewRouterWithStore(store.New())
}

// NewRouterWithStore builds the gin engine with every route wired over
// the given store. Tests pass their own store for isolation.
func NewRouterWithStore(st *store.Store) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	// Configure CORS: any origin, method, and header, with credentials.
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum age for preflight requests
	}))

	root := router.Group("")
	{
		health.RegisterRoutes(root)

		promptSvc := services.NewPromptService(st)
		prompt.NewHandler(promptSvc).RegisterRoutes(root)

		collectionSvc := services.NewCollectionService(st)
		collection.NewHandler(collectionSvc).RegisterRoutes(root)
	}

	return router
}
