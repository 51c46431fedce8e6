package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"school_registry/internal/controllers"
	"school_registry/internal/middleware"
)

func LoginLogRoutes(r *gin.Engine, db *gorm.DB) {
	loginLog := controllers.NewLoginLogController(db)

	logs := r.Group("/logs")
	logs.Use(middleware.RequireAuth())
	{
		logs.GET("", loginLog.List)
	}
}
