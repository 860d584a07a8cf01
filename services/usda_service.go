package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aandreu7/iNutriScan/models"
)

const usdaSearchURL = "https://api.nal.usda.gov/fdc/v1/foods/search"

// USDAService queries the FoodData Central search endpoint for the
// best single match of a food name.
type USDAService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewUSDAService(apiKey string) *USDAService {
	return &USDAService{
		apiKey:  apiKey,
		baseURL: usdaSearchURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewUSDAServiceWithURL points the service at a different endpoint,
// used by tests.
func NewUSDAServiceWithURL(apiKey, baseURL string) *USDAService {
	s := NewUSDAService(apiKey)
	s.baseURL = baseURL
	return s
}

type usdaSearchResponse struct {
	Foods []struct {
		FoodNutrients []struct {
			NutrientName string  `json:"nutrientName"`
			UnitName     string  `json:"unitName"`
			Value        float64 `json:"value"`
		} `json:"foodNutrients"`
	} `json:"foods"`
}

// QueryNutrients looks the food up and maps the first result's
// nutrients onto the fixed field set. The second return is false when
// the database has no match at all; callers treat that as all zeroes.
func (s *USDAService) QueryNutrients(ctx context.Context, foodName string) (models.Nutrients, bool, error) {
	params := url.Values{
		"api_key":  {s.apiKey},
		"query":    {foodName},
		"pageSize": {"1"},
		"dataType": {"Foundation", "SR Legacy", "Branded"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, false, fmt.Errorf("building USDA request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("calling USDA API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("reading USDA response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("USDA API error %d: %s", resp.StatusCode, string(body))
	}

	var sr usdaSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, false, fmt.Errorf("parsing USDA JSON: %w", err)
	}
	if len(sr.Foods) == 0 {
		return nil, false, nil
	}

	nutrients := models.ZeroNutrients()
	for _, n := range sr.Foods[0].FoodNutrients {
		key, ok := MatchNutrient(n.NutrientName, n.UnitName)
		if !ok {
			continue
		}
		nutrients[key] = models.Round1(n.Value)
	}
	return nutrients, true, nil
}

// MatchNutrient maps a USDA nutrient name/unit pair onto one of the
// fixed record fields. First matching rule wins.
func MatchNutrient(name, unit string) (string, bool) {
	name = strings.ToLower(name)
	unit = strings.ToLower(unit)

	switch {
	case strings.Contains(name, "energy") && (strings.Contains(unit, "kcal") || strings.Contains(name, "calorie")):
		return "kcal", true
	case strings.Contains(name, "protein"):
		return "protein_g", true
	case name == "fat" || strings.Contains(name, "total lipid"):
		return "fat_g", true
	case strings.Contains(name, "saturated"):
		return "saturated_fat_g", true
	case strings.Contains(name, "carbohydrate"):
		return "carbohydrate_g", true
	case strings.Contains(name, "fiber"):
		return "fiber_g", true
	case strings.Contains(name, "cholesterol"):
		return "cholesterol_mg", true
	case strings.Contains(name, "sugar"):
		return "sugar_g", true
	}
	return "", false
}
