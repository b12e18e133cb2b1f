package handler

import (
	cErr "mediadex/internal/pkg/error"
	"mediadex/internal/pkg/response"
	"mediadex/internal/service"
	"mediadex/internal/telemetry"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	trace         *telemetry.Trace
	searchService *service.SearchService
}

func NewSearchHandler(trace *telemetry.Trace, searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{trace: trace, searchService: searchService}
}

// Search fans the query out over every store the caller holds a grant for.
// @Summary Search granted catalogs
// @Tags Search
// @Security BearerAuth
// @Produce json
// @Param q query string true "query text"
// @Success 200 {object} dto.SearchResponseDto
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /v1/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	actorID, ok := actorFromContext(c)
	if !ok {
		err := cErr.Unauthorized("missing session context")
		end(err)
		response.AbortWithError(c, err)
		return
	}

	result, err := h.searchService.Search(ctx, actorID, c.Query("q"))
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, result)
}
