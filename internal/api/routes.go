package api

import (
	"github.com/gin-gonic/gin"

	"yieldboard/server/config"
)

func SetupRoutes(router *gin.Engine, source DataSource, cfg *config.Config) {
	handler := NewHandler(source, cfg, nil)

	api := router.Group("/api")
	{
		api.GET("/yield", handler.GetYield)
		api.GET("/comparison", handler.GetComparison)
		api.GET("/options", handler.GetOptions)
		api.GET("/windows", handler.GetWindows)
	}
}
