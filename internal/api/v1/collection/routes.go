package collection

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	collections := router.Group("/collections")
	{
		collections.GET("", h.ListCollections)
		collections.POST("", h.CreateCollection)
		collections.GET("/:id", h.GetCollection)
		collections.DELETE("/:id", h.DeleteCollection)
	}
}
