package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tastebud-app/tastebud-backend/internal/providers"
	"github.com/tastebud-app/tastebud-backend/internal/utils"
)

// CocktailHandler proxies cocktail requests to TheCocktailDB.
type CocktailHandler struct {
	provider *providers.CocktailDB
	logger   *slog.Logger
}

// NewCocktailHandler creates a new CocktailHandler instance
func NewCocktailHandler(provider *providers.CocktailDB, logger *slog.Logger) *CocktailHandler {
	return &CocktailHandler{provider: provider, logger: logger}
}

// Search searches cocktails by name
// @Summary Search cocktails
// @Tags cocktails
// @Produce json
// @Param name query string false "Cocktail name"
// @Success 200 {object} object "Upstream payload"
// @Router /api/cocktails/search [get]
func (h *CocktailHandler) Search(w http.ResponseWriter, r *http.Request) {
	data, err := h.provider.SearchByName(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		writeUpstreamError(w, h.logger, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, data)
}

// Random fetches a random cocktail
// @Summary Random cocktail
// @Tags cocktails
// @Produce json
// @Success 200 {object} object "Upstream payload"
// @Router /api/cocktails/random [get]
func (h *CocktailHandler) Random(w http.ResponseWriter, r *http.Request) {
	data, err := h.provider.GetRandomCocktail(r.Context())
	if err != nil {
		writeUpstreamError(w, h.logger, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, data)
}

// ByIngredient filters cocktails by ingredient
// @Summary Filter cocktails by ingredient
// @Tags cocktails
// @Produce json
// @Param ingredient query string true "Ingredient name"
// @Success 200 {object} object "Upstream payload"
// @Router /api/cocktails/by-ingredient [get]
func (h *CocktailHandler) ByIngredient(w http.ResponseWriter, r *http.Request) {
	data, err := h.provider.FilterByIngredient(r.Context(), r.URL.Query().Get("ingredient"))
	if err != nil {
		writeUpstreamError(w, h.logger, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, data)
}

// ByCategory filters cocktails by category
// @Summary Filter cocktails by category
// @Tags cocktails
// @Produce json
// @Param category query string true "Category name"
// @Success 200 {object} object "Upstream payload"
// @Router /api/cocktails/by-category [get]
func (h *CocktailHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	data, err := h.provider.FilterByCategory(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeUpstreamError(w, h.logger, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, data)
}

// ByAlcoholic filters cocktails by alcoholic type
// @Summary Filter cocktails by alcoholic type
// @Tags cocktails
// @Produce json
// @Param alcoholic query string true "Alcoholic, Non alcoholic, or Optional alcohol"
// @Success 200 {object} object "Upstream payload"
// @Router /api/cocktails/by-alcoholic [get]
func (h *CocktailHandler) ByAlcoholic(w http.ResponseWriter, r *http.Request) {
	data, err := h.provider.FilterByAlcoholic(r.Context(), r.URL.Query().Get("alcoholic"))
	if err != nil {
		writeUpstreamError(w, h.logger, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, data)
}

// GetByID fetches one cocktail by id
// @Summary Get cocktail by id
// @Tags cocktails
// @Produce json
// @Param id path string true "Cocktail id"
// @Success 200 {object} object "Upstream payload"
// @Router /api/cocktails/{id} [get]
func (h *CocktailHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	data, err := h.provider.GetCocktailByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUpstreamError(w, h.logger, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, data)
}
