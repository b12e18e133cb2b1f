package router

import (
	"mediadex/internal/handler"
	"mediadex/internal/middleware"

	"github.com/gin-gonic/gin"
)

type TenantRouter struct {
	auth          *middleware.Auth
	tenantHandler *handler.TenantHandler
}

func NewTenantRouter(
	auth *middleware.Auth,
	tenantHandler *handler.TenantHandler,
) *TenantRouter {
	return &TenantRouter{
		auth:          auth,
		tenantHandler: tenantHandler,
	}
}

func (tenantRouter *TenantRouter) RegisterRoutes(r *gin.Engine) {
	g := r.Group("/v1/tenant", tenantRouter.auth.SessionHandler())
	{
		g.PUT("/channel", tenantRouter.tenantHandler.SetChannel)
		g.GET("/channel", tenantRouter.tenantHandler.GetChannel)
		g.GET("/catalog/size", tenantRouter.tenantHandler.CatalogSize)
		g.POST("/catalog/items", tenantRouter.tenantHandler.SubmitContent)
	}
}
