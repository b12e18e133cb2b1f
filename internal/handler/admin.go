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

// AdminHandler carries the superuser commands.
type AdminHandler struct {
	trace        *telemetry.Trace
	roleGate     *service.RoleGateService
	leaseService *service.LeaseService
}

func NewAdminHandler(
	trace *telemetry.Trace,
	roleGate *service.RoleGateService,
	leaseService *service.LeaseService,
) *AdminHandler {
	return &AdminHandler{trace: trace, roleGate: roleGate, leaseService: leaseService}
}

func (h *AdminHandler) guard(c *gin.Context) (int64, bool) {
	actorID, ok := actorFromContext(c)
	if !ok {
		response.AbortWithError(c, cErr.Unauthorized("missing session context"))
		return 0, false
	}
	if err := h.roleGate.RequireSuperuser(c.Request.Context(), actorID); err != nil {
		response.AbortWithError(c, err)
		return 0, false
	}
	return actorID, true
}

// ListRequests lists pending tenancy applications.
// @Summary List tenancy requests
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.TenantRequestResponseDto
// @Router /v1/admin/requests [get]
func (h *AdminHandler) ListRequests(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	if _, ok := h.guard(c); !ok {
		return
	}

	requests, err := h.leaseService.ListRequests(ctx)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, requests)
}

// Approve turns a pending request into a lease.
// @Summary Approve a tenancy request
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param actorID path int true "actor id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /v1/admin/requests/{actorID}/approve [post]
func (h *AdminHandler) Approve(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	if _, ok := h.guard(c); !ok {
		return
	}
	targetID, cause, err := validate.ParseActorID(c, "actorID")
	if err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}

	if err := h.leaseService.Approve(ctx, targetID, 0); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"approved": targetID})
}

// Reject removes a pending request.
// @Summary Reject a tenancy request
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param actorID path int true "actor id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /v1/admin/requests/{actorID}/reject [post]
func (h *AdminHandler) Reject(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	if _, ok := h.guard(c); !ok {
		return
	}
	targetID, cause, err := validate.ParseActorID(c, "actorID")
	if err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}

	if err := h.leaseService.Reject(ctx, targetID); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"rejected": targetID})
}

// ListTenants lists every tenant with its current lease classification.
// @Summary List tenants
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.TenantResponseDto
// @Router /v1/admin/tenants [get]
func (h *AdminHandler) ListTenants(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	if _, ok := h.guard(c); !ok {
		return
	}

	tenants, err := h.leaseService.ListTenants(ctx)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, tenants)
}

// Grant opens a lease directly, without a pending request.
// @Summary Grant tenancy
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param actorID path int true "actor id"
// @Param body body dto.GrantTenantDto false "optional lease override"
// @Success 200 {object} dto.InvitationResponseDto
// @Router /v1/admin/tenants/{actorID} [post]
func (h *AdminHandler) Grant(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	if _, ok := h.guard(c); !ok {
		return
	}
	targetID, cause, err := validate.ParseActorID(c, "actorID")
	if err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}

	var req dto.GrantTenantDto
	if c.Request.ContentLength > 0 {
		if cause, bindErr := validate.BindAndValidate(c, &req); bindErr != nil {
			end(cause)
			response.AbortWithError(c, bindErr)
			return
		}
	}

	if err := h.leaseService.Grant(ctx, targetID, req.LeaseDays); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, h.leaseService.Invitation(targetID))
}

// Revoke removes a tenant record.
// @Summary Revoke tenancy
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param actorID path int true "actor id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /v1/admin/tenants/{actorID} [delete]
func (h *AdminHandler) Revoke(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	if _, ok := h.guard(c); !ok {
		return
	}
	targetID, cause, err := validate.ParseActorID(c, "actorID")
	if err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}

	if err := h.leaseService.Revoke(ctx, targetID); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"revoked": targetID})
}

// Renew opens a fresh lease window for an existing tenant.
// @Summary Renew tenancy
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param actorID path int true "actor id"
// @Param body body dto.GrantTenantDto false "optional lease override"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /v1/admin/tenants/{actorID}/renew [post]
func (h *AdminHandler) Renew(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	if _, ok := h.guard(c); !ok {
		return
	}
	targetID, cause, err := validate.ParseActorID(c, "actorID")
	if err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}

	var req dto.GrantTenantDto
	if c.Request.ContentLength > 0 {
		if cause, bindErr := validate.BindAndValidate(c, &req); bindErr != nil {
			end(cause)
			response.AbortWithError(c, bindErr)
			return
		}
	}

	if err := h.leaseService.Renew(ctx, targetID, req.LeaseDays); err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, gin.H{"renewed": targetID})
}
