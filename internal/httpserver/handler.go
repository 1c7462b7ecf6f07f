package httpserver

import (
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"smart-task-intake/docs"
	"smart-task-intake/internal/model"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(srv.mw.Recovery())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.environment != string(model.EnvironmentProduction) {
		docs.SwaggerInfo.BasePath = "/api/v1"
		srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

func (srv *HTTPServer) registerDomainRoutes() {
	api := srv.gin.Group("/api/v1")
	api.Use(srv.mw.ExtractScope())

	tasks := api.Group("/tasks")
	{
		tasks.POST("/intents", srv.mw.RateLimit(), srv.taskHandler.ProcessIntent)
		tasks.GET("", srv.taskHandler.List)
		tasks.PATCH("/:id", srv.taskHandler.Update)
		tasks.DELETE("/:id", srv.taskHandler.Delete)
		tasks.POST("/:id/breakdown", srv.taskHandler.Breakdown)
	}

	api.PATCH("/subtasks/:id", srv.taskHandler.ToggleSubtask)

	folders := api.Group("/folders")
	{
		folders.GET("", srv.folderHandler.List)
		folders.POST("/ensure", srv.folderHandler.Ensure)
	}
}
