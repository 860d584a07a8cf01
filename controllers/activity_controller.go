package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aandreu7/iNutriScan/models"
	"github.com/aandreu7/iNutriScan/services"
)

type ActivityController struct {
	fitness     FitnessProvider
	transcriber Transcriber
	estimator   ActivityEstimator
	buckets     BucketStore
	users       ProfileStore
	logger      *zap.SugaredLogger
}

func NewActivityController(
	fitness FitnessProvider,
	transcriber Transcriber,
	estimator ActivityEstimator,
	buckets BucketStore,
	users ProfileStore,
	logger *zap.SugaredLogger,
) *ActivityController {
	return &ActivityController{
		fitness:     fitness,
		transcriber: transcriber,
		estimator:   estimator,
		buckets:     buckets,
		users:       users,
		logger:      logger,
	}
}

// POST /activity-tracker  {access_token, user_id}
// Pulls today's Google Fit aggregate, stores the burnt kcal figure
// into today's bucket and echoes the raw provider payload.
func (ac *ActivityController) TrackActivity(c *gin.Context) {
	var req struct {
		AccessToken string `json:"access_token"`
		UserID      string `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.AccessToken == "" || req.UserID == "" {
		c.String(http.StatusBadRequest, "Missing 'access_token' or 'user_id' in request body")
		return
	}

	resp, burntKcal, err := ac.fitness.AggregateToday(c.Request.Context(), req.AccessToken)
	if err != nil {
		ac.logger.Errorw("fitness aggregate failed", "error", err)
		c.String(http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	bucket, err := ac.buckets.FindOrCreateTodayBucket(req.UserID)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error: "+err.Error())
		return
	}
	// The tracker reports an absolute daily figure, so this replaces
	// rather than accumulates.
	delta := models.Nutrients{models.BurntKcalKey: burntKcal}
	if err := ac.buckets.MergeNutrients(bucket, delta, services.MergeOverwrite); err != nil {
		c.String(http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, resp)
}

// POST /add-activity  multipart form: userId + file (audio) or text
// Transcribes the clip when audio is given, asks the estimator for a
// kcal figure and accumulates it into today's bucket.
func (ac *ActivityController) AddActivity(c *gin.Context) {
	userID := c.PostForm("userId")
	if userID == "" {
		c.String(http.StatusBadRequest, "Missing userId")
		return
	}

	var description string
	file, err := c.FormFile("file")
	if err == nil {
		if file.Filename == "" || file.Size == 0 {
			c.String(http.StatusBadRequest, "File has no name or is void")
			return
		}

		ext := filepath.Ext(file.Filename)
		savePath := filepath.Join(os.TempDir(), "activity-"+uuid.NewString()+ext)
		if err := c.SaveUploadedFile(file, savePath); err != nil {
			c.String(http.StatusInternalServerError, "Error: "+err.Error())
			return
		}
		// The audio artifact never outlives the request.
		defer os.Remove(savePath)

		description, err = ac.transcriber.TranscribeFile(c.Request.Context(), savePath)
		if err != nil {
			ac.logger.Errorw("speech-to-text failed", "error", err)
			c.String(http.StatusInternalServerError, "Speech recognition failed")
			return
		}
	} else {
		description = strings.TrimSpace(c.PostForm("text"))
		if description == "" {
			c.String(http.StatusBadRequest, "No file (audio) part")
			return
		}
	}

	physicalData := ""
	profile, err := ac.users.GetProfile(userID)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error: "+err.Error())
		return
	}
	if profile != nil {
		physicalData = profile.PhysicalData()
	}

	kcal, err := ac.estimator.EstimateActivityKcal(c.Request.Context(), description, physicalData)
	if err != nil {
		ac.logger.Errorw("kcal estimation failed", "error", err)
		c.String(http.StatusInternalServerError, "Failed to estimate kcal")
		return
	}

	bucket, err := ac.buckets.FindOrCreateTodayBucket(userID)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error: "+err.Error())
		return
	}
	delta := models.Nutrients{models.BurntKcalKey: float64(kcal)}
	if err := ac.buckets.MergeNutrients(bucket, delta, services.MergeAccumulate); err != nil {
		c.String(http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"kcal_estimated":       kcal,
		"activity_description": description,
	})
}
