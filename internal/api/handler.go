package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"agrilink/marketplace-backend/internal/service"
	"agrilink/marketplace-backend/pkg/query"
)

// Handler exposes the generic CRUD surface of a Service over HTTP. Domain
// specific routes live in routes.go next to the service that owns them.
type Handler[T any] struct {
	service *service.Service[T]
}

func NewHandler[T any](svc *service.Service[T]) *Handler[T] {
	return &Handler[T]{service: svc}
}

func (h *Handler[T]) Register(rg *gin.RouterGroup, path string) {
	group := rg.Group(path)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.PATCH("/:id", h.Update)
		group.POST("/:id/status", h.ChangeStatus)
		group.DELETE("/:id", h.Delete)
	}
}

func (h *Handler[T]) List(c *gin.Context) {
	resp := h.service.List(c.Request.Context(), parseListOptions(c))
	if resp.Error != nil {
		c.JSON(statusFor(resp.Error.Code), resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler[T]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp := h.service.Get(c.Request.Context(), id)
	if resp.Error != nil {
		c.JSON(statusFor(resp.Error.Code), resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler[T]) Create(c *gin.Context) {
	payload, ok := parsePayload(c)
	if !ok {
		return
	}
	resp := h.service.Create(c.Request.Context(), payload)
	if resp.Error != nil {
		c.JSON(statusFor(resp.Error.Code), resp)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *Handler[T]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	payload, ok := parsePayload(c)
	if !ok {
		return
	}
	resp := h.service.Update(c.Request.Context(), id, payload)
	if resp.Error != nil {
		c.JSON(statusFor(resp.Error.Code), resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler[T]) ChangeStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	resp := h.service.ChangeStatus(c.Request.Context(), id, body.Status)
	if resp.Error != nil {
		c.JSON(statusFor(resp.Error.Code), resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler[T]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp := h.service.Delete(c.Request.Context(), id)
	if resp.Error != nil {
		c.JSON(statusFor(resp.Error.Code), resp)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func parsePayload(c *gin.Context) (map[string]interface{}, bool) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return nil, false
	}
	return payload, true
}

func parseListOptions(c *gin.Context) query.Options {
	opts := query.Options{}

	if pageStr := c.Query("page"); pageStr != "" {
		page, _ := strconv.Atoi(pageStr)
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if limit <= 0 {
			limit = 20
		}
		opts.Pagination = &query.Pagination{Page: page, Limit: limit}
	}

	if sortBy := c.Query("sort_by"); sortBy != "" {
		opts.Sorts = []query.Sort{{
			Column:    sortBy,
			Ascending: !strings.EqualFold(c.Query("order"), "desc"),
		}}
	}

	return opts
}

func statusFor(code service.ServiceErrorCode) int {
	switch code {
	case service.ErrCodeNotFound:
		return http.StatusNotFound
	case service.ErrCodeConflict:
		return http.StatusConflict
	case service.ErrCodeValidation, service.ErrCodeInvalidTransition:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
