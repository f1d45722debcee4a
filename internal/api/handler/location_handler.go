package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OMoWiCe/admin-api/internal/dto"
	"github.com/OMoWiCe/admin-api/internal/service"
	"github.com/OMoWiCe/admin-api/pkg/response"
)

// LocationHandler 地点模块 HTTP 处理器
type LocationHandler struct {
	locationSvc service.LocationService
}

// NewLocationHandler 创建 LocationHandler
func NewLocationHandler(locationSvc service.LocationService) *LocationHandler {
	return &LocationHandler{locationSvc: locationSvc}
}

// ListLocations 获取地点列表（地点 + 参数 + 最新指标时间）
// GET /v1/locations
func (h *LocationHandler) ListLocations(c *gin.Context) {
	rows, err := h.locationSvc.List(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrStoreTimeout) {
			response.Error(c, http.StatusInternalServerError, "Database connection timeout. Try again in a few seconds!")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, rows)
}

// AddLocation 新增地点及其估算参数
// POST /v1/locations/add
func (h *LocationHandler) AddLocation(c *gin.Context) {
	var req dto.AddLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, dto.ErrAddMissingFields.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.locationSvc.Add(c.Request.Context(), &req); err != nil {
		h.handleLocationError(c, err)
		return
	}

	response.Created(c, "Location added successfully", req.ID)
}

// UpdateLocation 更新地点及其估算参数（参数行缺失时补建）
// PUT /v1/locations/update/:locationId
func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	id := c.Param("locationId")
	if id == "" {
		response.BadRequest(c, "Location ID is required in the URL parameter")
		return
	}

	var req dto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, io.EOF) {
			response.BadRequest(c, "Request body is empty")
			return
		}
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.locationSvc.Update(c.Request.Context(), id, &req); err != nil {
		h.handleLocationError(c, err)
		return
	}

	response.OKMessage(c, "Location updated successfully", id)
}

// DeleteLocation 删除地点并级联清理依赖记录
// DELETE /v1/locations/remove/:locationId
func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	id := c.Param("locationId")
	if id == "" {
		response.BadRequest(c, "Location ID is required in the URL parameter")
		return
	}

	if err := h.locationSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrStoreTimeout) {
			response.Error(c, http.StatusInternalServerError, "Database connection timeout. Please try again later.")
			return
		}
		h.handleLocationError(c, err)
		return
	}

	response.OKMessage(c, "Location and associated data deleted successfully", "")
}

// handleLocationError 统一处理地点模块业务错误
func (h *LocationHandler) handleLocationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrLocationNotFound):
		response.NotFound(c, "Location not found")
	case errors.Is(err, service.ErrLocationExists):
		response.Conflict(c, "Location with this ID already exists")
	case errors.Is(err, service.ErrInvalidReference):
		response.BadRequest(c, "Invalid reference in the data provided")
	case errors.Is(err, service.ErrHasDependents):
		response.Conflict(c, "Cannot delete this location due to existing related records. Please remove them first.")
	case errors.Is(err, service.ErrStoreTimeout):
		response.Error(c, http.StatusInternalServerError, "Database connection timeout. Try again later.")
	default:
		response.InternalError(c)
	}
}
