package handler

import (
	cErr "mediadex/internal/pkg/error"
	"mediadex/internal/pkg/response"
	"mediadex/internal/service"
	"mediadex/internal/telemetry"

	"github.com/gin-gonic/gin"
)

type TenancyHandler struct {
	trace        *telemetry.Trace
	leaseService *service.LeaseService
}

func NewTenancyHandler(trace *telemetry.Trace, leaseService *service.LeaseService) *TenancyHandler {
	return &TenancyHandler{trace: trace, leaseService: leaseService}
}

// Request files a tenancy application for the calling actor.
// @Summary Request tenancy
// @Tags Tenancy
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.RequestTenancyResponseDto
// @Failure 429 {object} response.Response
// @Router /v1/tenancy/requests [post]
func (h *TenancyHandler) Request(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	actorID, ok := actorFromContext(c)
	if !ok {
		err := cErr.Unauthorized("missing session context")
		end(err)
		response.AbortWithError(c, err)
		return
	}

	result, err := h.leaseService.RequestTenancy(ctx, actorID)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, result)
}
