package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-ai/database"
	"github.com/yeremiapane/restaurant-ai/utils"
	"gorm.io/gorm"
)

var errStoreUnavailable = errors.New("database unavailable")

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

func (hc *HealthController) Liveness(c *gin.Context) {
	sqlDB, err := hc.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		utils.ErrorLogger.Errorf("Health check failed: %v", err)
		utils.RespondError(c, http.StatusServiceUnavailable, errStoreUnavailable)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "ok", nil)
}

// SeedCounts reports rows per table, keyed by table name.
func (hc *HealthController) SeedCounts(c *gin.Context) {
	counts, err := database.TableCounts(c.Request.Context(), hc.DB)
	if err != nil {
		utils.ErrorLogger.Errorf("Counting rows failed: %v", err)
		utils.RespondError(c, http.StatusServiceUnavailable, errStoreUnavailable)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Row counts", counts)
}
