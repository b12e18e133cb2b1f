package router

import (
	"mediadex/internal/handler"
	"mediadex/internal/middleware"

	"github.com/gin-gonic/gin"
)

type AdminRouter struct {
	auth         *middleware.Auth
	adminHandler *handler.AdminHandler
}

func NewAdminRouter(
	auth *middleware.Auth,
	adminHandler *handler.AdminHandler,
) *AdminRouter {
	return &AdminRouter{
		auth:         auth,
		adminHandler: adminHandler,
	}
}

func (adminRouter *AdminRouter) RegisterRoutes(r *gin.Engine) {
	g := r.Group("/v1/admin", adminRouter.auth.SessionHandler())
	{
		g.GET("/requests", adminRouter.adminHandler.ListRequests)
		g.POST("/requests/:actorID/approve", adminRouter.adminHandler.Approve)
		g.POST("/requests/:actorID/reject", adminRouter.adminHandler.Reject)

		g.GET("/tenants", adminRouter.adminHandler.ListTenants)
		g.POST("/tenants/:actorID", adminRouter.adminHandler.Grant)
		g.DELETE("/tenants/:actorID", adminRouter.adminHandler.Revoke)
		g.POST("/tenants/:actorID/renew", adminRouter.adminHandler.Renew)
	}
}
