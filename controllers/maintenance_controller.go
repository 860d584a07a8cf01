package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MaintenanceController struct {
	buckets BucketStore
	logger  *zap.SugaredLogger
}

func NewMaintenanceController(buckets BucketStore, logger *zap.SugaredLogger) *MaintenanceController {
	return &MaintenanceController{buckets: buckets, logger: logger}
}

// /remove-tracings
// Daily sweep: clears the contents of every bucket dated before today.
// Triggered by the scheduler; safe to re-run.
func (mc *MaintenanceController) RemoveTracings(c *gin.Context) {
	deleted, err := mc.buckets.PurgeExpiredBuckets()
	if err != nil {
		mc.logger.Errorw("purge failed", "error", err)
		c.String(http.StatusInternalServerError, "Error: "+err.Error())
		return
	}
	mc.logger.Infow("purge completed", "records_deleted", deleted)
	c.String(http.StatusOK, "Old tracing documents deleted")
}
