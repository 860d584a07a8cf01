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
)

const spoonacularSearchURL = "https://api.spoonacular.com/recipes/complexSearch"

// Recipe is the subset of a Spoonacular result returned to clients.
type Recipe struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Image   string `json:"image"`
	Summary string `json:"summary"`
}

// SpoonacularService searches recipes by required ingredients.
type SpoonacularService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewSpoonacularService(apiKey string) *SpoonacularService {
	return &SpoonacularService{
		apiKey:  apiKey,
		baseURL: spoonacularSearchURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewSpoonacularServiceWithURL points the service at a different
// endpoint, used by tests.
func NewSpoonacularServiceWithURL(apiKey, baseURL string) *SpoonacularService {
	s := NewSpoonacularService(apiKey)
	s.baseURL = baseURL
	return s
}

type recipeSearchResponse struct {
	Results []Recipe `json:"results"`
}

// FindByIngredients returns the single best recipe that includes the
// given ingredients, or nil when there is no match.
func (s *SpoonacularService) FindByIngredients(ctx context.Context, ingredients []string) (*Recipe, error) {
	params := url.Values{
		"includeIngredients":   {strings.Join(ingredients, ",")},
		"number":               {"1"},
		"addRecipeInformation": {"true"},
		"apiKey":               {s.apiKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building Spoonacular request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling Spoonacular API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading Spoonacular response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Spoonacular API error %d: %s", resp.StatusCode, string(body))
	}

	var sr recipeSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("parsing Spoonacular JSON: %w", err)
	}
	if len(sr.Results) == 0 {
		return nil, nil
	}
	return &sr.Results[0], nil
}
