package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aandreu7/iNutriScan/services"
)

func TestFindByIngredients(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Pizza,Mozzarella", r.URL.Query().Get("includeIngredients"))
		assert.Equal(t, "1", r.URL.Query().Get("number"))
		assert.Equal(t, "true", r.URL.Query().Get("addRecipeInformation"))
		w.Write([]byte(`{"results": [{"id": 716429, "title": "Margherita", "image": "https://img.spoonacular.com/716429.jpg", "summary": "A classic."}]}`))
	}))
	defer srv.Close()

	s := services.NewSpoonacularServiceWithURL("test-key", srv.URL)
	recipe, err := s.FindByIngredients(context.Background(), []string{"Pizza", "Mozzarella"})
	require.NoError(t, err)
	require.NotNil(t, recipe)
	assert.Equal(t, 716429, recipe.ID)
	assert.Equal(t, "Margherita", recipe.Title)
	assert.Equal(t, "A classic.", recipe.Summary)
}

func TestFindByIngredientsNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	s := services.NewSpoonacularServiceWithURL("test-key", srv.URL)
	recipe, err := s.FindByIngredients(context.Background(), []string{"gravel"})
	require.NoError(t, err)
	assert.Nil(t, recipe)
}

func TestFindByIngredientsProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "payment required", http.StatusPaymentRequired)
	}))
	defer srv.Close()

	s := services.NewSpoonacularServiceWithURL("test-key", srv.URL)
	_, err := s.FindByIngredients(context.Background(), []string{"pizza"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "402")
}
