package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/aandreu7/iNutriScan/controllers"
	"github.com/aandreu7/iNutriScan/middlewares"
)

// Controllers groups everything the router wires up, built once at
// startup in cmd/main.go.
type Controllers struct {
	Activity    *controllers.ActivityController
	Food        *controllers.FoodController
	Nutrition   *controllers.NutritionController
	Recipe      *controllers.RecipeController
	Speech      *controllers.SpeechController
	Balance     *controllers.BalanceController
	Maintenance *controllers.MaintenanceController
}

func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	r.POST("/activity-tracker", ctrl.Activity.TrackActivity)
	r.POST("/add-activity", ctrl.Activity.AddActivity)

	r.POST("/extract-food", ctrl.Food.ExtractFood)
	r.POST("/scan-food", ctrl.Food.ScanFood)

	r.POST("/extract-nutrients", ctrl.Nutrition.ExtractNutrients)
	r.POST("/get-recipe", ctrl.Recipe.GetRecipe)
	r.POST("/read-recipe", ctrl.Speech.ReadRecipe)
	r.POST("/daily-balance", ctrl.Balance.DailyBalance)

	// The cleanup scheduler hits this with GET.
	r.POST("/remove-tracings", ctrl.Maintenance.RemoveTracings)
	r.GET("/remove-tracings", ctrl.Maintenance.RemoveTracings)

	return r
}
