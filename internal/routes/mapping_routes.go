package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"school_registry/internal/controllers"
)

func MappingRoutes(r *gin.Engine, db *gorm.DB) {
	mapping := controllers.NewMappingController(db)

	r.POST("/mapping", mapping.Create)
	r.POST("/mapping/bulk", mapping.CreateBulk)
	r.GET("/teachers/:id/students", mapping.StudentsByTeacher)
	r.GET("/students/:id/teachers", mapping.TeachersByStudent)
}
