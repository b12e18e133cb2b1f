package handler

import (
	"mediadex/internal/core"

	"github.com/gin-gonic/gin"
)

func actorFromContext(c *gin.Context) (int64, bool) {
	raw, ok := c.Get(core.ContextActorKey)
	if !ok {
		return 0, false
	}
	id, ok := raw.(int64)
	return id, ok
}
