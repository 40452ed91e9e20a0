package prompt

import (
	"errors"
	"net/http"

	"promptlab-backend/internal/models"
	"promptlab-backend/internal/services"
	"promptlab-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// Handler serves the /prompts endpoints. The service is injected so
// tests can run against an isolated store.
type Handler struct {
	prompts *services.PromptService
}

func NewHandler(prompts *services.PromptService) *Handler {
	return &Handler{prompts: prompts}
}

// ListPrompts returns all prompts, optionally filtered by collection
// and search term, newest first.
func (h *Handler) ListPrompts(c *gin.Context) {
	prompts := h.prompts.List(c.Query("collection_id"), c.Query("search"))
	if prompts == nil {
		prompts = []models.Prompt{}
	}

	c.JSON(http.StatusOK, PromptListResponse{
		Prompts: prompts,
		Total:   len(prompts),
	})
}

// GetPrompt returns a single prompt by id.
func (h *Handler) GetPrompt(c *gin.Context) {
	prompt, err := h.prompts.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, prompt)
}

// CreatePrompt stores a new prompt.
func (h *Handler) CreatePrompt(c *gin.Context) {
	var req CreatePromptRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	prompt, err := h.prompts.Create(services.PromptInput{
		Title:        req.Title,
		Content:      req.Content,
		Description:  req.Description,
		CollectionID: req.CollectionID,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, prompt)
}

// UpdatePrompt replaces all mutable fields of an existing prompt.
func (h *Handler) UpdatePrompt(c *gin.Context) {
	var req UpdatePromptRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	prompt, err := h.prompts.Update(c.Param("id"), services.PromptInput{
		Title:        req.Title,
		Content:      req.Content,
		Description:  req.Description,
		CollectionID: req.CollectionID,
	})
	if err != nil {
		respondPromptError(c, err)
		return
	}

	c.JSON(http.StatusOK, prompt)
}

// PatchPrompt merges the provided fields into an existing prompt.
func (h *Handler) PatchPrompt(c *gin.Context) {
	var req PatchPromptRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	prompt, err := h.prompts.Patch(c.Param("id"), services.PromptPatch{
		Title:        req.Title,
		Content:      req.Content,
		Description:  req.Description,
		CollectionID: req.CollectionID,
	})
	if err != nil {
		respondPromptError(c, err)
		return
	}

	c.JSON(http.StatusOK, prompt)
}

// DeletePrompt removes a prompt by id.
func (h *Handler) DeletePrompt(c *gin.Context) {
	if err := h.prompts.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		return
	}

	c.Status(http.StatusNoContent)
}

func respondPromptError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPromptNotFound):
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
	case errors.Is(err, services.ErrCollectionNotFound):
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, err.Error()))
	}
}
