package handler

import (
	"mediadex/internal/dto"
	cErr "mediadex/internal/pkg/error"
	"mediadex/internal/pkg/response"
	"mediadex/internal/service"
	"mediadex/internal/telemetry"
	"mediadex/utils/validate"

	"github.com/gin-gonic/gin"
)

// TenantHandler carries the commands only an active tenant may run. Each
// handler calls the role gate itself before doing anything.
type TenantHandler struct {
	trace          *telemetry.Trace
	roleGate       *service.RoleGateService
	leaseService   *service.LeaseService
	catalogService *service.CatalogService
}

func NewTenantHandler(
	trace *telemetry.Trace,
	roleGate *service.RoleGateService,
	leaseService *service.LeaseService,
	catalogService *service.CatalogService,
) *TenantHandler {
	return &TenantHandler{
		trace:          trace,
		roleGate:       roleGate,
		leaseService:   leaseService,
		catalogService: catalogService,
	}
}

// SetChannel binds the tenant's membership channel.
// @Summary Set channel reference
// @Tags Tenant
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.SetChannelDto true "channel reference"
// @Success 200 {object} dto.ChannelResponseDto
// @Failure 403 {object} response.Response
// @Router /v1/tenant/channel [put]
func (h *TenantHandler) SetChannel(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	actorID, ok := actorFromContext(c)
	if !ok {
		err := cErr.Unauthorized("missing session context")
		end(err)
		response.AbortWithError(c, err)
		return
	}
	if _, err := h.roleGate.RequireActiveTenant(ctx, actorID); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}

	var req dto.SetChannelDto
	if cause, err := validate.BindAndValidate(c, &req); err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}

	if err := h.leaseService.SetChannel(ctx, actorID, req.ChannelRef); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, &dto.ChannelResponseDto{ChannelRef: req.ChannelRef})
}

// GetChannel returns the tenant's configured channel.
// @Summary Get channel reference
// @Tags Tenant
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ChannelResponseDto
// @Router /v1/tenant/channel [get]
func (h *TenantHandler) GetChannel(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	actorID, ok := actorFromContext(c)
	if !ok {
		err := cErr.Unauthorized("missing session context")
		end(err)
		response.AbortWithError(c, err)
		return
	}
	if _, err := h.roleGate.RequireActiveTenant(ctx, actorID); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}

	channel, err := h.leaseService.GetChannel(ctx, actorID)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, channel)
}

// CatalogSize reports how many items the tenant's store holds.
// @Summary Catalog size
// @Tags Tenant
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.CatalogSizeResponseDto
// @Router /v1/tenant/catalog/size [get]
func (h *TenantHandler) CatalogSize(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	actorID, ok := actorFromContext(c)
	if !ok {
		err := cErr.Unauthorized("missing session context")
		end(err)
		response.AbortWithError(c, err)
		return
	}
	if _, err := h.roleGate.RequireActiveTenant(ctx, actorID); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}

	size, err := h.catalogService.Size(ctx, actorID)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, size)
}

// SubmitContent stores one content item in the tenant's catalog.
// @Summary Submit content
// @Tags Tenant
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.SubmitContentDto true "content reference and caption"
// @Success 200 {object} dto.SubmitContentResponseDto
// @Failure 400 {object} response.Response
// @Router /v1/tenant/catalog/items [post]
func (h *TenantHandler) SubmitContent(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	actorID, ok := actorFromContext(c)
	if !ok {
		err := cErr.Unauthorized("missing session context")
		end(err)
		response.AbortWithError(c, err)
		return
	}
	if _, err := h.roleGate.RequireActiveTenant(ctx, actorID); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}

	var req dto.SubmitContentDto
	if cause, err := validate.BindAndValidate(c, &req); err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}

	result, err := h.catalogService.Submit(ctx, actorID, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, result)
}
