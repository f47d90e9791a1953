package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"furniture-admin-api/internal/dto"
	"furniture-admin-api/internal/metrics"
	"furniture-admin-api/internal/middleware"
	"furniture-admin-api/internal/response"
	"furniture-admin-api/internal/search"
)

// CrudService is the operation set every entity service exposes. The
// concrete services are generic instantiations, so the handler binds to
// this interface instead of a struct.
type CrudService[Req any, Res any] interface {
	Create(ctx context.Context, actor string, req Req) (Res, error)
	Update(ctx context.Context, actor string, id uint, req Req) (Res, error)
	GetByID(ctx context.Context, id uint) (Res, error)
	GetByUUID(ctx context.Context, uuid string) (Res, error)
	GetAll(ctx context.Context) ([]Res, error)
	GetAllPaged(ctx context.Context, page dto.PageRequest) (dto.Page[Res], error)
	DeleteByID(ctx context.Context, actor string, id uint) error
	DeleteByUUID(ctx context.Context, actor string, uuid string) error
	Search(ctx context.Context, req *search.Request, page dto.PageRequest) (dto.Page[Res], error)
	Import(ctx context.Context, actor string, data []byte) ([]byte, error)
	Export(ctx context.Context, req *search.Request) ([]byte, error)
	GenerateTemplate() ([]byte, error)
}

// BaseHandler exposes one entity's full HTTP surface
type BaseHandler[Req any, Res any] struct {
	service CrudService[Req, Res]
	entity  string
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewBaseHandler creates a BaseHandler for one entity
func NewBaseHandler[Req any, Res any](service CrudService[Req, Res], entity string, m *metrics.Metrics, logger *zap.Logger) *BaseHandler[Req, Res] {
	return &BaseHandler[Req, Res]{service: service, entity: entity, metrics: m, logger: logger}
}

// RegisterRoutes mounts the entity's routes under its resource group
func (h *BaseHandler[Req, Res]) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.GetAll)
	rg.GET("/paged", h.GetAllPaged)
	rg.GET("/:id", h.GetByID)
	rg.GET("/uuid/:uuid", h.GetByUUID)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.DeleteByID)
	rg.DELETE("/uuid/:uuid", h.DeleteByUUID)
	rg.POST("/search", h.Search)
	rg.POST("/import", h.Import)
	rg.POST("/export", h.Export)
	rg.GET("/template", h.Template)
}

// Create handles POST /
func (h *BaseHandler[Req, Res]) Create(c *gin.Context) {
	var req Req
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	res, err := h.service.Create(c.Request.Context(), middleware.Actor(c), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordEntityCreated(h.entity)
	}
	response.SendSuccess(c, http.StatusCreated, "created", res)
}

// GetAll handles GET /
func (h *BaseHandler[Req, Res]) GetAll(c *gin.Context) {
	res, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, "ok", res)
}

// GetAllPaged handles GET /paged
func (h *BaseHandler[Req, Res]) GetAllPaged(c *gin.Context) {
	var page dto.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	res, err := h.service.GetAllPaged(c.Request.Context(), page)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, "ok", res)
}

// GetByID handles GET /:id
func (h *BaseHandler[Req, Res]) GetByID(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	res, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, "ok", res)
}

// GetByUUID handles GET /uuid/:uuid
func (h *BaseHandler[Req, Res]) GetByUUID(c *gin.Context) {
	res, err := h.service.GetByUUID(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, "ok", res)
}

// Update handles PUT /:id
func (h *BaseHandler[Req, Res]) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req Req
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	res, err := h.service.Update(c.Request.Context(), middleware.Actor(c), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, "updated", res)
}

// DeleteByID handles DELETE /:id
func (h *BaseHandler[Req, Res]) DeleteByID(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteByID(c.Request.Context(), middleware.Actor(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordEntityDeleted(h.entity)
	}
	response.SendSuccess(c, http.StatusOK, "deleted", nil)
}

// DeleteByUUID handles DELETE /uuid/:uuid
func (h *BaseHandler[Req, Res]) DeleteByUUID(c *gin.Context) {
	err := h.service.DeleteByUUID(c.Request.Context(), middleware.Actor(c), c.Param("uuid"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordEntityDeleted(h.entity)
	}
	response.SendSuccess(c, http.StatusOK, "deleted", nil)
}

type searchBody struct {
	search.Request
	dto.PageRequest
}

// Search handles POST /search
func (h *BaseHandler[Req, Res]) Search(c *gin.Context) {
	var body searchBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	res, err := h.service.Search(c.Request.Context(), &body.Request, body.PageRequest)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, "ok", res)
}

// Import handles POST /import with a multipart workbook upload
func (h *BaseHandler[Req, Res]) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeMalformedFile, "cannot open uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeMalformedFile, "cannot read uploaded file")
		return
	}

	result, err := h.service.Import(c.Request.Context(), middleware.Actor(c), data)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordImport(h.entity)
	}
	response.SendFile(c, h.entity+"-import-result.xlsx", result)
}

// Export handles POST /export; the criteria body is optional
func (h *BaseHandler[Req, Res]) Export(c *gin.Context) {
	var req *search.Request
	var body search.Request
	if err := c.ShouldBindJSON(&body); err == nil {
		req = &body
	}

	data, err := h.service.Export(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordExport(h.entity)
	}
	response.SendFile(c, h.entity+"-export.xlsx", data)
}

// Template handles GET /template
func (h *BaseHandler[Req, Res]) Template(c *gin.Context) {
	data, err := h.service.GenerateTemplate()
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.SendFile(c, h.entity+"-template.xlsx", data)
}

func (h *BaseHandler[Req, Res]) pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func (h *BaseHandler[Req, Res]) handleError(c *gin.Context, err error) {
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		status := response.HTTPStatus(appErr.Code)
		if status >= http.StatusInternalServerError {
			h.logger.Error("request failed",
				zap.String("entity", h.entity),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
		}
		response.SendError(c, status, appErr.Code, appErr.Message)
		return
	}

	h.logger.Error("request failed",
		zap.String("entity", h.entity),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err))
	response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "internal server error")
}
