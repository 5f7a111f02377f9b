package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"syllabus-tracker/internal/middleware"
	"syllabus-tracker/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.middleware)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Logger(), gin.Recovery(), mw.CORS())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	if err := srv.setupDashboardDomain(ctx, api, mw); err != nil {
		return err
	}

	return nil
}
