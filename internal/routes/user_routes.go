package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"school_registry/internal/controllers"
)

func UserRoutes(r *gin.Engine, db *gorm.DB) {
	user := controllers.NewUserController(db)

	users := r.Group("/users")
	{
		users.GET("", user.List)
		users.GET("/:id", user.View)
		users.PUT("/:id", user.Update)
		users.PATCH("/:id", user.Update)
		users.DELETE("/:id", user.Delete)
	}
}
