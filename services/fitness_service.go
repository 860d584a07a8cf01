package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/fitness/v1"
	"google.golang.org/api/option"

	"github.com/aandreu7/iNutriScan/models"
)

// FitnessService fetches activity aggregates from Google Fit on behalf
// of the user's OAuth access token. The client is rebuilt per call
// because the token arrives with the request.
type FitnessService struct {
	loc *time.Location
	now func() time.Time
}

func NewFitnessService(loc *time.Location) *FitnessService {
	return &FitnessService{loc: loc, now: time.Now}
}

// AggregateToday aggregates steps, distance, expended calories and
// heart rate from midnight until now, and extracts the burnt-kcal
// figure from the response.
func (s *FitnessService) AggregateToday(ctx context.Context, accessToken string) (*fitness.AggregateResponse, float64, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	svc, err := fitness.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, 0, fmt.Errorf("building fitness client: %w", err)
	}

	now := s.now().In(s.loc)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)

	req := &fitness.AggregateRequest{
		AggregateBy: []*fitness.AggregateBy{
			{DataTypeName: "com.google.step_count.delta"},
			{DataTypeName: "com.google.distance.delta"},
			{DataTypeName: "com.google.calories.expended"},
			{DataTypeName: "com.google.heart_rate.bpm"},
		},
		BucketByTime:    &fitness.BucketByTime{DurationMillis: 86400000},
		StartTimeMillis: midnight.UnixMilli(),
		EndTimeMillis:   now.UnixMilli(),
	}

	resp, err := svc.Users.Dataset.Aggregate("me", req).Context(ctx).Do()
	if err != nil {
		return nil, 0, fmt.Errorf("aggregating fitness data: %w", err)
	}
	return resp, ExtractBurntKcal(resp), nil
}

// ExtractBurntKcal walks the aggregate buckets looking at the calories
// expended data source. The last point seen wins, rounded to one
// decimal place.
func ExtractBurntKcal(resp *fitness.AggregateResponse) float64 {
	var burnt float64
	for _, bucket := range resp.Bucket {
		for _, ds := range bucket.Dataset {
			if !strings.Contains(ds.DataSourceId, "calories.expended") {
				continue
			}
			for _, p := range ds.Point {
				if len(p.Value) > 0 {
					burnt = p.Value[0].FpVal
				}
			}
		}
	}
	return models.Round1(burnt)
}
