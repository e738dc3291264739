package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tastebud-app/tastebud-backend/internal/dto"
	"github.com/tastebud-app/tastebud-backend/internal/providers"
	"github.com/tastebud-app/tastebud-backend/internal/utils"
)

// RecipeHandler proxies recipe requests to the upstream recipe provider.
type RecipeHandler struct {
	provider *providers.Spoonacular
	logger   *slog.Logger
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(provider *providers.Spoonacular, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{provider: provider, logger: logger}
}

// Search searches recipes with filters
// @Summary Search recipes
// @Tags recipes
// @Produce json
// @Param query query string false "Free-text search"
// @Param cuisine query string false "Cuisine filter"
// @Param diet query string false "Diet filter"
// @Param maxReadyTime query string false "Maximum preparation time in minutes"
// @Param number query int false "Result count (default 10)"
// @Success 200 {object} object "Upstream search payload"
// @Router /api/recipes/search [get]
func (h *RecipeHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data, err := h.provider.SearchRecipes(r.Context(), providers.RecipeSearchParams{
		Query:        q.Get("query"),
		Cuisine:      q.Get("cuisine"),
		Diet:         q.Get("diet"),
		MaxReadyTime: q.Get("maxReadyTime"),
		Number:       queryInt(q.Get("number")),
	})
	if err != nil {
		writeUpstreamError(w, h.logger, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, data)
}

// Random fetches random recipes
// @Summary Random recipes
// @Tags recipes
// @Produce json
// @Param number query int false "Result count (default 10)"
// @Param tags query string false "Comma-separated tag filter"
// @Success 200 {object} object "Upstream payload"
// @Router /api/recipes/random [get]
func (h *RecipeHandler) Random(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data, err := h.provider.GetRandomRecipes(r.Context(), queryInt(q.Get("number")), q.Get("tags"))
	if err != nil {
		writeUpstreamError(w, h.logger, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, data)
}

// ByIngredients finds recipes by a list of ingredients
// @Summary Find recipes by ingredients
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body dto.FindByIngredientsRequest true "Ingredient list"
// @Success 200 {object} object "Upstream payload"
// @Router /api/recipes/by-ingredients [post]
func (h *RecipeHandler) ByIngredients(w http.ResponseWriter, r *http.Request) {
	var req dto.FindByIngredientsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	data, err := h.provider.FindByIngredients(r.Context(), req.Ingredients, req.Number)
	if err != nil {
		writeUpstreamError(w, h.logger, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, data)
}

// GetByID fetches one recipe with full information
// @Summary Get recipe by id
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe id"
// @Success 200 {object} object "Upstream payload"
// @Router /api/recipes/{id} [get]
func (h *RecipeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	data, err := h.provider.GetRecipeByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeUpstreamError(w, h.logger, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, data)
}

// Similar fetches recipes similar to the given one
// @Summary Similar recipes
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe id"
// @Param number query int false "Result count (default 10)"
// @Success 200 {object} object "Upstream payload"
// @Router /api/recipes/{id}/similar [get]
func (h *RecipeHandler) Similar(w http.ResponseWriter, r *http.Request) {
	data, err := h.provider.GetSimilarRecipes(r.Context(),
		chi.URLParam(r, "id"), queryInt(r.URL.Query().Get("number")))
	if err != nil {
		writeUpstreamError(w, h.logger, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, data)
}

// writeUpstreamError maps an upstream failure to a response. The upstream
// status is forwarded when one was received; transport failures become 502.
func writeUpstreamError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var perr *providers.Error
	if errors.As(err, &perr) {
		status := perr.Status
		if status == 0 {
			status = http.StatusBadGateway
		}
		logger.Warn("upstream request failed", "code", perr.Code, "status", perr.Status)
		utils.WriteJSONResponse(w, status, dto.UpstreamErrorResponse{Success: false, Error: perr})
		return
	}
	logger.Error("proxy request failed", "error", err)
	utils.WriteErrorResponse(w, http.StatusInternalServerError, "Something went wrong!")
}

func queryInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
