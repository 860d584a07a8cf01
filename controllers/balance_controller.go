package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aandreu7/iNutriScan/models"
)

type BalanceController struct {
	buckets BucketStore
	users   ProfileStore
}

func NewBalanceController(buckets BucketStore, users ProfileStore) *BalanceController {
	return &BalanceController{buckets: buckets, users: users}
}

// POST /daily-balance  {user_id}
// Today's consumed vs burnt calories against the user's target.
func (bc *BalanceController) DailyBalance(c *gin.Context) {
	var req struct {
		UserID string `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'user_id' in request"})
		return
	}

	nutrients, err := bc.buckets.TodayNutrients(req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var target float64
	profile, err := bc.users.GetProfile(req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if profile != nil {
		target = profile.KcalTarget
	}

	c.JSON(http.StatusOK, gin.H{
		"consumed_kcal": nutrients["kcal"],
		"burnt_kcal":    nutrients[models.BurntKcalKey],
		"kcal_target":   target,
	})
}
