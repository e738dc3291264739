package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/tastebud-app/tastebud-backend/internal/config"
)

// CocktailDB is a client for TheCocktailDB API. The API key is part of the
// URL path rather than a query parameter.
type CocktailDB struct {
	baseURL string
	client  *http.Client
}

// NewCocktailDB creates a client from provider configuration.
func NewCocktailDB(cfg *config.ProvidersConfig) *CocktailDB {
	return &CocktailDB{
		baseURL: strings.TrimRight(cfg.CocktailDBBaseURL, "/") + "/" + cfg.CocktailDBAPIKey,
		client:  &http.Client{Timeout: cfg.RequestTimeout},
	}
}

// SearchByName searches cocktails by name.
func (c *CocktailDB) SearchByName(ctx context.Context, name string) (json.RawMessage, error) {
	return c.get(ctx, "/search.php", url.Values{"s": {name}})
}

// GetCocktailByID looks up a cocktail by its id.
func (c *CocktailDB) GetCocktailByID(ctx context.Context, id string) (json.RawMessage, error) {
	return c.get(ctx, "/lookup.php", url.Values{"i": {id}})
}

// GetRandomCocktail fetches one random cocktail.
func (c *CocktailDB) GetRandomCocktail(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/random.php", nil)
}

// FilterByIngredient lists cocktails containing the given ingredient.
func (c *CocktailDB) FilterByIngredient(ctx context.Context, ingredient string) (json.RawMessage, error) {
	return c.get(ctx, "/filter.php", url.Values{"i": {ingredient}})
}

// FilterByCategory lists cocktails in the given category.
func (c *CocktailDB) FilterByCategory(ctx context.Context, category string) (json.RawMessage, error) {
	return c.get(ctx, "/filter.php", url.Values{"c": {category}})
}

// FilterByAlcoholic lists cocktails by alcoholic type.
func (c *CocktailDB) FilterByAlcoholic(ctx context.Context, alcoholic string) (json.RawMessage, error) {
	return c.get(ctx, "/filter.php", url.Values{"a": {alcoholic}})
}

// ListCategories lists all cocktail categories.
func (c *CocktailDB) ListCategories(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/list.php", url.Values{"c": {"list"}})
}

// ListIngredients lists all known ingredients.
func (c *CocktailDB) ListIngredients(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/list.php", url.Values{"i": {"list"}})
}

// ListGlasses lists all glass types.
func (c *CocktailDB) ListGlasses(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/list.php", url.Values{"g": {"list"}})
}

func (c *CocktailDB) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	return doGet(ctx, c.client, "COCKTAILDB", c.baseURL, path, params)
}
