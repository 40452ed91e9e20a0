package collection_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"promptlab-backend/internal/api/v1/collection"
	"promptlab-backend/internal/models"
	"promptlab-backend/internal/services"
	"promptlab-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func setupHandler() (*collection.Handler, *store.Store) {
	gin.SetMode(gin.TestMode)
	st := store.New()
	return collection.NewHandler(services.NewCollectionService(st)), st
}

func TestCreateCollection(t *testing.T) {
	h, _ := setupHandler()

	reqBody := collection.CreateCollectionRequest{
		Name:        "My Collection",
		Description: strPtr("grouping"),
	}
	body, _ := json.Marshal(reqBody)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/collections", bytes.NewBuffer(body))

	h.CreateCollection(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.Collection
	json.Unmarshal(w.Body.Bytes(), &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "My Collection", created.Name)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateCollectionValidation(t *testing.T) {
	h, _ := setupHandler()

	// Missing required name
	body := []byte(`{"description": "no name"}`)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/collections", bytes.NewBuffer(body))

	h.CreateCollection(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetCollection(t *testing.T) {
	h, st := setupHandler()

	stored := st.CreateCollection(models.NewCollection("Stored", nil))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/collections/"+stored.ID, nil)
	c.Params = gin.Params{{Key: "id", Value: stored.ID}}

	h.GetCollection(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var got models.Collection
	json.Unmarshal(w.Body.Bytes(), &got)
	assert.Equal(t, stored.ID, got.ID)
}

func TestGetCollectionNotFound(t *testing.T) {
	h, _ := setupHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/collections/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	h.GetCollection(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListCollections(t *testing.T) {
	h, st := setupHandler()

	st.CreateCollection(models.NewCollection("First", nil))
	st.CreateCollection(models.NewCollection("Second", nil))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/collections", nil)

	h.ListCollections(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp collection.CollectionListResponse
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "First", resp.Collections[0].Name)
}

func TestListCollectionsEmpty(t *testing.T) {
	h, _ := setupHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/collections", nil)

	h.ListCollections(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"collections": [], "total": 0}`, w.Body.String())
}

func TestDeleteCollection(t *testing.T) {
	h, st := setupHandler()

	stored := st.CreateCollection(models.NewCollection("Doomed", nil))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("DELETE", "/collections/"+stored.ID, nil)
	c.Params = gin.Params{{Key: "id", Value: stored.ID}}

	h.DeleteCollection(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)

	_, ok := st.GetCollection(stored.ID)
	assert.False(t, ok)
}

func TestDeleteCollectionNotFound(t *testing.T) {
	h, _ := setupHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("DELETE", "/collections/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	h.DeleteCollection(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCollectionBlankID(t *testing.T) {
	h, _ := setupHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("DELETE", "/collections/%20", nil)
	c.Params = gin.Params{{Key: "id", Value: " "}}

	h.DeleteCollection(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteCollectionInUse(t *testing.T) {
	h, st := setupHandler()

	stored := st.CreateCollection(models.NewCollection("Held", nil))
	st.CreatePrompt(models.NewPrompt("Holder", "Content", nil, strPtr(stored.ID)))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("DELETE", "/collections/"+stored.ID, nil)
	c.Params = gin.Params{{Key: "id", Value: stored.ID}}

	h.DeleteCollection(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Refused delete performs no mutation
	_, ok := st.GetCollection(stored.ID)
	assert.True(t, ok)
}
