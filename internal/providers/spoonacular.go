package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tastebud-app/tastebud-backend/internal/config"
)

// Spoonacular is a client for the Spoonacular recipe API.
type Spoonacular struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewSpoonacular creates a client from provider configuration.
func NewSpoonacular(cfg *config.ProvidersConfig) *Spoonacular {
	return &Spoonacular{
		apiKey:  cfg.SpoonacularAPIKey,
		baseURL: cfg.SpoonacularBaseURL,
		client:  &http.Client{Timeout: cfg.RequestTimeout},
	}
}

// RecipeSearchParams are the recipe search filters forwarded upstream.
type RecipeSearchParams struct {
	Query        string
	Cuisine      string
	Diet         string
	MaxReadyTime string
	Offset       int
	Number       int
}

// SearchRecipes searches recipes with filters.
func (s *Spoonacular) SearchRecipes(ctx context.Context, p RecipeSearchParams) (json.RawMessage, error) {
	params := s.params()
	if p.Query != "" {
		params.Set("query", p.Query)
	}
	if p.Cuisine != "" {
		params.Set("cuisine", p.Cuisine)
	}
	if p.Diet != "" {
		params.Set("diet", p.Diet)
	}
	if p.MaxReadyTime != "" {
		params.Set("maxReadyTime", p.MaxReadyTime)
	}
	if p.Offset > 0 {
		params.Set("offset", strconv.Itoa(p.Offset))
	}
	params.Set("number", strconv.Itoa(defaultNumber(p.Number)))
	params.Set("addRecipeInformation", "true")
	params.Set("fillIngredients", "true")

	return s.get(ctx, "/recipes/complexSearch", params)
}

// GetRecipeByID fetches full recipe information including nutrition.
func (s *Spoonacular) GetRecipeByID(ctx context.Context, id string) (json.RawMessage, error) {
	params := s.params()
	params.Set("includeNutrition", "true")
	return s.get(ctx, "/recipes/"+url.PathEscape(id)+"/information", params)
}

// GetRandomRecipes fetches random recipes, optionally filtered by tags.
func (s *Spoonacular) GetRandomRecipes(ctx context.Context, number int, tags string) (json.RawMessage, error) {
	params := s.params()
	params.Set("number", strconv.Itoa(defaultNumber(number)))
	if tags != "" {
		params.Set("tags", tags)
	}
	return s.get(ctx, "/recipes/random", params)
}

// FindByIngredients finds recipes that use as many of the given ingredients
// as possible.
func (s *Spoonacular) FindByIngredients(ctx context.Context, ingredients []string, number int) (json.RawMessage, error) {
	params := s.params()
	params.Set("ingredients", strings.Join(ingredients, ","))
	params.Set("number", strconv.Itoa(defaultNumber(number)))
	params.Set("ranking", "2") // maximize used ingredients
	params.Set("ignorePantry", "true")
	return s.get(ctx, "/recipes/findByIngredients", params)
}

// GetSimilarRecipes fetches recipes similar to the given one.
func (s *Spoonacular) GetSimilarRecipes(ctx context.Context, id string, number int) (json.RawMessage, error) {
	params := s.params()
	params.Set("number", strconv.Itoa(defaultNumber(number)))
	return s.get(ctx, "/recipes/"+url.PathEscape(id)+"/similar", params)
}

func (s *Spoonacular) params() url.Values {
	params := url.Values{}
	params.Set("apiKey", s.apiKey)
	return params
}

func (s *Spoonacular) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	return doGet(ctx, s.client, "SPOONACULAR", s.baseURL, path, params)
}

func defaultNumber(n int) int {
	if n <= 0 {
		return 10
	}
	return n
}
