package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"school_registry/internal/apperr"
	"school_registry/internal/models"
)

type LoginLogController struct {
	DB *gorm.DB
}

func NewLoginLogController(db *gorm.DB) *LoginLogController {
	return &LoginLogController{DB: db}
}

// List returns every login audit row, unfiltered. No ordering promise.
func (lc *LoginLogController) List(c *gin.Context) {
	var logs []models.LoginLog
	if err := lc.DB.Find(&logs).Error; err != nil {
		apperr.Respond(c, apperr.Internal(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": logs})
}
