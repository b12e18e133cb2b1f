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

type SessionHandler struct {
	trace          *telemetry.Trace
	sessionService *service.SessionService
}

func NewSessionHandler(trace *telemetry.Trace, sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{trace: trace, sessionService: sessionService}
}

// Start opens a session for an actor, redeeming an invitation token when one
// rode along.
// @Summary Start a session (transport bridge only)
// @Tags Session
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param body body dto.StartSessionDto true "actor id and optional invitation token"
// @Success 200 {object} dto.SessionResponseDto
// @Failure 400 {object} response.Response
// @Router /v1/session/start [post]
func (h *SessionHandler) Start(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.StartSessionDto
	if cause, err := validate.BindAndValidate(c, &req); err != nil {
		end(cause)
		response.AbortWithError(c, err)
		return
	}

	session, err := h.sessionService.StartSession(ctx, &req)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, session)
}

// Me reports the calling actor's resolved role.
// @Summary Who am I
// @Tags Session
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.WhoAmIResponseDto
// @Router /v1/me [get]
func (h *SessionHandler) Me(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	actorID, ok := actorFromContext(c)
	if !ok {
		err := cErr.Unauthorized("missing session context")
		end(err)
		response.AbortWithError(c, err)
		return
	}

	me, err := h.sessionService.WhoAmI(ctx, actorID)
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, me)
}
