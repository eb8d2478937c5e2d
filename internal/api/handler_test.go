package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"agrilink/marketplace-backend/internal/repository"
	"agrilink/marketplace-backend/internal/service"
	"agrilink/marketplace-backend/internal/validation"
)

type cropListing struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type passValidator struct{}

func (passValidator) EntityType() string { return "crop_listing" }

func (passValidator) ValidateCreate(map[string]interface{}) validation.Result {
	return validation.OK()
}

func (passValidator) ValidateUpdate(map[string]interface{}) validation.Result {
	return validation.OK()
}

func (passValidator) ValidateStatusTransition(current, next string) validation.Result {
	res := validation.OK()
	if current == "archived" {
		res.Valid = false
		res.Errors = append(res.Errors, validation.ValidationError{
			Field: "status", Message: "archived is final", Code: validation.CodeInvalidTransition,
		})
	}
	return res
}

func newTestRouter(t *testing.T) (*gin.Engine, *service.Service[cropListing]) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&cropListing{}))

	svc := service.New("crop_listing", repository.New[cropListing](db), passValidator{}, zap.NewNop())

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewHandler(svc).Register(v1, "/crop-listings")
	return router, svc
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandlerCreateAndGet(t *testing.T) {
	router, _ := newTestRouter(t)
	id := uuid.New().String()

	rec := doRequest(router, http.MethodPost, "/api/v1/crop-listings", map[string]interface{}{
		"id":     id,
		"title":  "Fresh kale",
		"status": "active",
		"price":  35.0,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(router, http.MethodGet, "/api/v1/crop-listings/"+id, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp service.ServiceResponse[cropListing]
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Fresh kale", resp.Data.Title)
}

func TestHandlerGetInvalidID(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/v1/crop-listings/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerGetNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/v1/crop-listings/"+uuid.New().String(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerListPagination(t *testing.T) {
	router, svc := newTestRouter(t)
	for i := 0; i < 5; i++ {
		resp := svc.Create(context.Background(), map[string]interface{}{
			"id":     uuid.New().String(),
			"title":  "crop",
			"status": "active",
			"price":  float64(i),
		})
		assert.Nil(t, resp.Error)
	}

	rec := doRequest(router, http.MethodGet, "/api/v1/crop-listings?page=1&limit=2&sort_by=price", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp service.ListResponse[cropListing]
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.Count)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, 2.0, resp.Data[0].Price)
}

func TestHandlerChangeStatus(t *testing.T) {
	router, svc := newTestRouter(t)
	id := uuid.New().String()
	created := svc.Create(context.Background(), map[string]interface{}{"id": id, "title": "crop", "status": "active"})
	assert.Nil(t, created.Error)

	rec := doRequest(router, http.MethodPost, "/api/v1/crop-listings/"+id+"/status",
		map[string]interface{}{"status": "sold_out"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, http.MethodPost, "/api/v1/crop-listings/"+id+"/status",
		map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerChangeStatusRejected(t *testing.T) {
	router, svc := newTestRouter(t)
	id := uuid.New().String()
	created := svc.Create(context.Background(), map[string]interface{}{"id": id, "title": "crop", "status": "archived"})
	assert.Nil(t, created.Error)

	rec := doRequest(router, http.MethodPost, "/api/v1/crop-listings/"+id+"/status",
		map[string]interface{}{"status": "active"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandlerPatchStatusRunsTransitionGate(t *testing.T) {
	router, svc := newTestRouter(t)
	id := uuid.New().String()
	created := svc.Create(context.Background(), map[string]interface{}{"id": id, "title": "crop", "status": "archived"})
	assert.Nil(t, created.Error)

	rec := doRequest(router, http.MethodPatch, "/api/v1/crop-listings/"+id,
		map[string]interface{}{"status": "active"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	fetched := svc.Get(context.Background(), uuid.MustParse(id))
	assert.Equal(t, "archived", fetched.Data.Status)
}

func TestHandlerUpdateAndDelete(t *testing.T) {
	router, svc := newTestRouter(t)
	id := uuid.New().String()
	created := svc.Create(context.Background(), map[string]interface{}{"id": id, "title": "crop", "status": "active", "price": 10.0})
	assert.Nil(t, created.Error)

	rec := doRequest(router, http.MethodPatch, "/api/v1/crop-listings/"+id,
		map[string]interface{}{"price": 12.5})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, http.MethodDelete, "/api/v1/crop-listings/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(router, http.MethodDelete, "/api/v1/crop-listings/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
