package controller

import (
	"buriti_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// Ping godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} util.Response
// @Router /ping [get]
func (ctrl *HealthController) Ping(c *gin.Context) {
	util.Success(c, gin.H{"message": "pong"})
}

// Health godoc
// @Summary Readiness probe with a database ping
// @Tags health
// @Produce json
// @Success 200 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /health [get]
func (ctrl *HealthController) Health(c *gin.Context) {
	sqlDB, err := ctrl.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		util.Error(c, 500, "database unreachable")
		return
	}
	util.Success(c, gin.H{"status": "ok"})
}
