package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tastebud-app/tastebud-backend/internal/localstore"
)

func trimInput(line string) string {
	return strings.TrimSpace(line)
}

func (a *App) search(ctx context.Context, query string) {
	if query == "" {
		fmt.Fprintln(a.out, "usage: search <text>")
		return
	}

	raw, err := a.api.SearchRecipes(ctx, query, 10)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	var payload struct {
		Results []struct {
			ID    json.Number `json:"id"`
			Title string      `json:"title"`
		} `json:"results"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil || len(payload.Results) == 0 {
		fmt.Fprintln(a.out, "no results")
		return
	}
	for _, r := range payload.Results {
		marker := " "
		if a.store.IsSaved(r.ID.String()) {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %s  %s\n", marker, r.ID, r.Title)
	}
}

// save fetches the full payload and caches it locally. Saving an already
// saved id does nothing.
func (a *App) save(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "usage: save <id> [-c]")
		return
	}
	id := args[0]
	cocktail := len(args) > 1 && args[1] == "-c"

	recipe, err := a.fetchRecipe(ctx, id, cocktail)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	if a.store.IsSaved(recipe.ID) {
		fmt.Fprintln(a.out, "already saved")
		return
	}
	if err := a.store.AddToSaved(recipe); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	fmt.Fprintf(a.out, "saved %s\n", recipe.Title)
}

func (a *App) fetchRecipe(ctx context.Context, id string, cocktail bool) (localstore.Recipe, error) {
	if cocktail {
		raw, err := a.api.GetCocktail(ctx, id)
		if err != nil {
			return localstore.Recipe{}, err
		}
		var payload struct {
			Drinks []struct {
				ID    string `json:"idDrink"`
				Name  string `json:"strDrink"`
				Thumb string `json:"strDrinkThumb"`
			} `json:"drinks"`
		}
		if err := json.Unmarshal(raw, &payload); err != nil || len(payload.Drinks) == 0 {
			return localstore.Recipe{}, fmt.Errorf("cocktail %s not found", id)
		}
		d := payload.Drinks[0]
		return localstore.Recipe{ID: d.ID, Title: d.Name, Image: d.Thumb, Raw: raw}, nil
	}

	raw, err := a.api.GetRecipe(ctx, id)
	if err != nil {
		return localstore.Recipe{}, err
	}
	var payload struct {
		ID    json.Number `json:"id"`
		Title string      `json:"title"`
		Image string      `json:"image"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil || payload.ID.String() == "" {
		return localstore.Recipe{}, fmt.Errorf("recipe %s not found", id)
	}
	return localstore.Recipe{ID: payload.ID.String(), Title: payload.Title, Image: payload.Image, Raw: raw}, nil
}

func (a *App) unsave(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "usage: unsave <id>")
		return
	}
	if err := a.store.RemoveFromSaved(args[0]); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	fmt.Fprintln(a.out, "removed")
}

func (a *App) listSaved() {
	saved := a.store.Saved()
	if len(saved) == 0 {
		fmt.Fprintln(a.out, "nothing saved yet")
		return
	}
	for _, r := range saved {
		fmt.Fprintf(a.out, "%s  %s\n", r.ID, r.Title)
	}
}

func (a *App) plan(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(a.out, "usage: plan <id> <date> [meal]")
		return
	}
	id, date := args[0], args[1]
	mealType := ""
	if len(args) > 2 {
		mealType = args[2]
	}

	if _, err := time.Parse("2006-01-02", date); err != nil {
		fmt.Fprintln(a.out, "date must be YYYY-MM-DD")
		return
	}

	// Prefer the locally cached payload; fall back to fetching it.
	var recipe localstore.Recipe
	found := false
	for _, r := range a.store.Saved() {
		if r.ID == id {
			recipe, found = r, true
			break
		}
	}
	if !found {
		var err error
		recipe, err = a.fetchRecipe(ctx, id, false)
		if err != nil {
			fmt.Fprintln(a.out, err.Error())
			return
		}
	}

	item, err := a.store.AddToPlanner(recipe, date, mealType)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	fmt.Fprintf(a.out, "planned %s for %s (%s), entry %s\n", recipe.Title, item.Date, item.MealType, item.ID)
}

func (a *App) unplan(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "usage: unplan <item-id>")
		return
	}
	if err := a.store.RemoveFromPlanner(args[0]); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	fmt.Fprintln(a.out, "removed")
}

func (a *App) listPlanner() {
	items := a.store.Planner()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "planner is empty")
		return
	}
	for _, item := range items {
		fmt.Fprintf(a.out, "%s  %-10s %-10s %s\n", item.ID, item.Date, item.MealType, item.Recipe.Title)
	}
}
