package collection

import (
	"errors"
	"net/http"

	"promptlab-backend/internal/models"
	"promptlab-backend/internal/services"
	"promptlab-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// Handler serves the /collections endpoints.
type Handler struct {
	collections *services.CollectionService
}

func NewHandler(collections *services.CollectionService) *Handler {
	return &Handler{collections: collections}
}

// ListCollections returns all collections.
func (h *Handler) ListCollections(c *gin.Context) {
	collections := h.collections.List()
	if collections == nil {
		collections = []models.Collection{}
	}

	c.JSON(http.StatusOK, CollectionListResponse{
		Collections: collections,
		Total:       len(collections),
	})
}

// GetCollection returns a single collection by id.
func (h *Handler) GetCollection(c *gin.Context) {
	collection, err := h.collections.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, collection)
}

// CreateCollection stores a new collection.
func (h *Handler) CreateCollection(c *gin.Context) {
	var req CreateCollectionRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	collection := h.collections.Create(services.CollectionInput{
		Name:        req.Name,
		Description: req.Description,
	})

	c.JSON(http.StatusCreated, collection)
}

// DeleteCollection removes a collection. Collections still referenced
// by prompts are refused.
func (h *Handler) DeleteCollection(c *gin.Context) {
	if err := h.collections.Delete(c.Param("id")); err != nil {
		switch {
		case errors.Is(err, services.ErrCollectionNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		default:
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		}
		return
	}

	c.Status(http.StatusNoContent)
}
