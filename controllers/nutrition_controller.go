package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aandreu7/iNutriScan/models"
	"github.com/aandreu7/iNutriScan/services"
	"github.com/aandreu7/iNutriScan/utils"
)

type NutritionController struct {
	extractor FoodExtractor
	nutrients NutrientSource
	buckets   BucketStore
	logger    *zap.SugaredLogger
}

func NewNutritionController(extractor FoodExtractor, nutrients NutrientSource, buckets BucketStore, logger *zap.SugaredLogger) *NutritionController {
	return &NutritionController{extractor: extractor, nutrients: nutrients, buckets: buckets, logger: logger}
}

// POST /extract-nutrients  {image: base64, user_id}
// Recognizes the foods in the image, sums their nutrients from the
// USDA database and folds the meal total into today's bucket.
func (nc *NutritionController) ExtractNutrients(c *gin.Context) {
	var req struct {
		Image  string `json:"image"`
		UserID string `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'image' in request"})
		return
	}
	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'user_id' in request"})
		return
	}

	data, mimeType, err := utils.DecodeImage(req.Image)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	foodItems, err := nc.extractor.ExtractFoodItems(c.Request.Context(), data, mimeType)
	if err != nil {
		nc.logger.Errorw("food extraction failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	totals := models.ZeroNutrients()
	if len(foodItems) == 0 {
		// Nothing recognized: nothing to look up, nothing to store.
		c.JSON(http.StatusOK, gin.H{
			"total_nutrients": totals,
			"breakdown":       gin.H{},
			"message":         "No foods detected",
		})
		return
	}

	breakdown := make(map[string]models.Nutrients, len(foodItems))
	for _, food := range foodItems {
		nutrients, found, err := nc.nutrients.QueryNutrients(c.Request.Context(), food)
		if err != nil {
			nc.logger.Errorw("nutrient lookup failed", "food", food, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !found {
			nutrients = models.ZeroNutrients()
		}
		breakdown[food] = nutrients
		totals.Add(nutrients)
	}
	mealTotals := totals.Rounded()

	bucket, err := nc.buckets.FindOrCreateTodayBucket(req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := nc.buckets.MergeNutrients(bucket, mealTotals, services.MergeAccumulate); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_nutrients": mealTotals,
		"breakdown":       breakdown,
	})
}
