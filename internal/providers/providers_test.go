package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastebud-app/tastebud-backend/internal/config"
)

func newProviderConfig(upstreamURL string) *config.ProvidersConfig {
	return &config.ProvidersConfig{
		SpoonacularAPIKey:  "test-key",
		SpoonacularBaseURL: upstreamURL,
		CocktailDBAPIKey:   "1",
		CocktailDBBaseURL:  upstreamURL,
		RequestTimeout:     time.Second,
	}
}

func TestSpoonacular_SearchForwardsParams(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"results":[{"id":1,"title":"Pasta"}]}`))
	}))
	defer upstream.Close()

	s := NewSpoonacular(newProviderConfig(upstream.URL))
	data, err := s.SearchRecipes(context.Background(), RecipeSearchParams{
		Query:   "pasta",
		Cuisine: "italian",
		Number:  5,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"results":[{"id":1,"title":"Pasta"}]}`, string(data))

	assert.Equal(t, "/recipes/complexSearch", gotPath)
	assert.Equal(t, []string{"pasta"}, gotQuery["query"])
	assert.Equal(t, []string{"italian"}, gotQuery["cuisine"])
	assert.Equal(t, []string{"5"}, gotQuery["number"])
	assert.Equal(t, []string{"test-key"}, gotQuery["apiKey"])
	assert.Equal(t, []string{"true"}, gotQuery["addRecipeInformation"])
}

func TestSpoonacular_NumberDefaultsToTen(t *testing.T) {
	var gotQuery map[string][]string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{}`))
	}))
	defer upstream.Close()

	s := NewSpoonacular(newProviderConfig(upstream.URL))
	_, err := s.GetRandomRecipes(context.Background(), 0, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"10"}, gotQuery["number"])
}

func TestSpoonacular_UpstreamErrorMapped(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"message":"quota exceeded"}`))
	}))
	defer upstream.Close()

	s := NewSpoonacular(newProviderConfig(upstream.URL))
	_, err := s.GetRecipeByID(context.Background(), "1")
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "SPOONACULAR_402", perr.Code)
	assert.Equal(t, "quota exceeded", perr.Message)
	assert.Equal(t, http.StatusPaymentRequired, perr.Status)
}

func TestSpoonacular_TransportErrorHasNoStatus(t *testing.T) {
	cfg := newProviderConfig("http://127.0.0.1:1")
	s := NewSpoonacular(cfg)

	_, err := s.GetRecipeByID(context.Background(), "1")
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "SPOONACULAR_ERROR", perr.Code)
	assert.Zero(t, perr.Status)
}

func TestCocktailDB_KeyInPath(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"drinks":[{"idDrink":"11007","strDrink":"Margarita"}]}`))
	}))
	defer upstream.Close()

	c := NewCocktailDB(newProviderConfig(upstream.URL))
	data, err := c.SearchByName(context.Background(), "margarita")
	require.NoError(t, err)

	assert.Equal(t, "/1/search.php", gotPath)
	assert.Equal(t, []string{"margarita"}, gotQuery["s"])

	var payload struct {
		Drinks []json.RawMessage `json:"drinks"`
	}
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Len(t, payload.Drinks, 1)
}

func TestCocktailDB_FilterEndpoints(t *testing.T) {
	var gotQuery map[string][]string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"drinks":[]}`))
	}))
	defer upstream.Close()

	c := NewCocktailDB(newProviderConfig(upstream.URL))

	_, err := c.FilterByIngredient(context.Background(), "gin")
	require.NoError(t, err)
	assert.Equal(t, []string{"gin"}, gotQuery["i"])

	_, err = c.FilterByAlcoholic(context.Background(), "Non alcoholic")
	require.NoError(t, err)
	assert.Equal(t, []string{"Non alcoholic"}, gotQuery["a"])
}
