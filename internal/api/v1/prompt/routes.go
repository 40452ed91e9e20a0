package prompt

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	prompts := router.Group("/prompts")
	{
		prompts.GET("", h.ListPrompts)
		prompts.POST("", h.CreatePrompt)
		prompts.GET("/:id", h.GetPrompt)
		prompts.PUT("/:id", h.UpdatePrompt)
		prompts.PATCH("/:id", h.PatchPrompt)
		prompts.DELETE("/:id", h.DeletePrompt)
	}
}
