package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"school_registry/internal/controllers"
)

func AuthRoutes(r *gin.Engine, db *gorm.DB) {
	auth := controllers.NewAuthController(db)

	r.POST("/register", auth.Register)
	r.POST("/users", auth.Register) // original create-user path
	r.POST("/login", auth.Login)
}
