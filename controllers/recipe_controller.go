package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aandreu7/iNutriScan/utils"
)

type RecipeController struct {
	extractor FoodExtractor
	recipes   RecipeSource
	logger    *zap.SugaredLogger
}

func NewRecipeController(extractor FoodExtractor, recipes RecipeSource, logger *zap.SugaredLogger) *RecipeController {
	return &RecipeController{extractor: extractor, recipes: recipes, logger: logger}
}

// POST /get-recipe  {image: base64}
// Recognizes the foods in the image and returns the top recipe using
// them as required ingredients.
func (rc *RecipeController) GetRecipe(c *gin.Context) {
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

	foodItems, err := rc.extractor.ExtractFoodItems(c.Request.Context(), data, mimeType)
	if err != nil {
		rc.logger.Errorw("food extraction failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recipe, err := rc.recipes.FindByIngredients(c.Request.Context(), foodItems)
	if err != nil {
		rc.logger.Errorw("recipe search failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if recipe == nil {
		c.JSON(http.StatusOK, gin.H{"recipe": nil, "message": "No recipes found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}
