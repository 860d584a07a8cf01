package controllers

import (
	"context"

	"google.golang.org/api/fitness/v1"

	"github.com/aandreu7/iNutriScan/models"
	"github.com/aandreu7/iNutriScan/services"
)

// Narrow views of the services, so controllers can be exercised with
// mocks in tests.

type BucketStore interface {
	FindOrCreateTodayBucket(userID string) (*models.DailyBucket, error)
	MergeNutrients(bucket *models.DailyBucket, delta models.Nutrients, mode services.MergeMode) error
	TodayNutrients(userID string) (models.Nutrients, error)
	PurgeExpiredBuckets() (int, error)
}

type ProfileStore interface {
	GetProfile(userID string) (*models.User, error)
}

type Transcriber interface {
	TranscribeFile(ctx context.Context, path string) (string, error)
}

type ActivityEstimator interface {
	EstimateActivityKcal(ctx context.Context, description, physicalData string) (int, error)
}

type FoodExtractor interface {
	ExtractFoodItems(ctx context.Context, image []byte, mimeType string) ([]string, error)
}

type LabelDetector interface {
	DetectLabels(ctx context.Context, content []byte) ([]string, error)
}

type NutrientSource interface {
	QueryNutrients(ctx context.Context, foodName string) (models.Nutrients, bool, error)
}

type RecipeSource interface {
	FindByIngredients(ctx context.Context, ingredients []string) (*services.Recipe, error)
}

type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type FitnessProvider interface {
	AggregateToday(ctx context.Context, accessToken string) (*fitness.AggregateResponse, float64, error)
}
