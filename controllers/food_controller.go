package controllers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aandreu7/iNutriScan/utils"
)

type FoodController struct {
	extractor FoodExtractor
	detector  LabelDetector
	logger    *zap.SugaredLogger
}

func NewFoodController(extractor FoodExtractor, detector LabelDetector, logger *zap.SugaredLogger) *FoodController {
	return &FoodController{extractor: extractor, detector: detector, logger: logger}
}

// POST /extract-food  {image: base64}
// Asks the multimodal model for the foods visible in the image.
// Stateless; also called in-process by the nutrient and recipe
// handlers.
func (fc *FoodController) ExtractFood(c *gin.Context) {
	var req struct {
		Image string `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'image' in request"})
		return
	}

	data, mimeType, err := utils.DecodeImage(req.Image)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	foodItems, err := fc.extractor.ExtractFoodItems(c.Request.Context(), data, mimeType)
	if err != nil {
		fc.logger.Errorw("food extraction failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"food_items": foodItems})
}

// POST /scan-food  multipart form: image
// Label-detection variant of recognition, backed by Cloud Vision.
func (fc *FoodController) ScanFood(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
		return
	}

	name := strings.ToLower(file.Filename)
	if !strings.HasSuffix(name, ".png") && !strings.HasSuffix(name, ".jpg") && !strings.HasSuffix(name, ".jpeg") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file type. Only .png, .jpg, and .jpeg are allowed"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	labels, err := fc.detector.DetectLabels(c.Request.Context(), content)
	if err != nil {
		fc.logger.Errorw("label detection failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"food_items": labels})
}
