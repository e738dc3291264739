package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/tastebud-app/tastebud-backend/internal/auth"
	"github.com/tastebud-app/tastebud-backend/internal/handlers"
	"github.com/tastebud-app/tastebud-backend/internal/middleware"
)

// New assembles the application router. Auth and proxy routes are public;
// only the profile route sits behind the bearer-token gate.
func New(
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	recipeHandler *handlers.RecipeHandler,
	cocktailHandler *handlers.CocktailHandler,
	tokens *auth.TokenManager,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)

	r.Get("/api/health", healthHandler.HealthCheck)
	r.Get("/readyz", healthHandler.ReadinessCheck)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(tokens))
			r.Get("/profile", authHandler.GetProfile)
		})
	})

	r.Route("/api/recipes", func(r chi.Router) {
		r.Get("/search", recipeHandler.Search)
		r.Get("/random", recipeHandler.Random)
		r.Post("/by-ingredients", recipeHandler.ByIngredients)
		r.Get("/{id}", recipeHandler.GetByID)
		r.Get("/{id}/similar", recipeHandler.Similar)
	})

	r.Route("/api/cocktails", func(r chi.Router) {
		r.Get("/search", cocktailHandler.Search)
		r.Get("/random", cocktailHandler.Random)
		r.Get("/by-ingredient", cocktailHandler.ByIngredient)
		r.Get("/by-category", cocktailHandler.ByCategory)
		r.Get("/by-alcoholic", cocktailHandler.ByAlcoholic)
		r.Get("/{id}", cocktailHandler.GetByID)
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Tastebud backend is running."))
	})

	return r
}
