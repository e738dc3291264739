package localstore

import (
	"encoding/json"
	"sort"

	"github.com/google/uuid"
)

// DefaultMealType is used when a planner entry does not name a meal.
const DefaultMealType = "Dinner"

// Recipe is a locally cached recipe or cocktail. ID is the upstream
// identifier as given by the provider; Raw carries the upstream payload
// verbatim for offline display.
type Recipe struct {
	ID    string          `json:"id"`
	Title string          `json:"title,omitempty"`
	Image string          `json:"image,omitempty"`
	Raw   json.RawMessage `json:"raw,omitempty"`
}

// PlannerItem schedules a recipe for a calendar date. The recipe is embedded
// by value so the plan survives the recipe being unsaved. ID is generated
// locally and is distinct from the recipe id.
type PlannerItem struct {
	ID       string `json:"id"`
	Recipe   Recipe `json:"recipe"`
	Date     string `json:"date"` // e.g. 2026-03-14
	MealType string `json:"mealType"`
}

// Store holds the saved-recipes and meal-planner collections, persisting
// each one in full on every mutation. It is meant for a single owner; calls
// are not synchronized.
type Store struct {
	kv      *KV
	saved   []Recipe
	planner []PlannerItem
}

// Open loads both collections from the kv layer. A missing or corrupt entry
// reads as an empty collection.
func Open(kv *KV) *Store {
	s := &Store{kv: kv}
	kv.Get(KeySavedRecipes, &s.saved)
	kv.Get(KeyPlannerItems, &s.planner)
	return s
}

// AddToSaved saves a recipe. Saving one that is already present is a no-op;
// at most one entry per recipe id is kept.
func (s *Store) AddToSaved(recipe Recipe) error {
	if s.IsSaved(recipe.ID) {
		return nil
	}
	s.saved = append(s.saved, recipe)
	return s.kv.Set(KeySavedRecipes, s.saved)
}

// RemoveFromSaved deletes the recipe with the given id. Removing an absent
// id is a no-op.
func (s *Store) RemoveFromSaved(id string) error {
	kept := s.saved[:0]
	removed := false
	for _, r := range s.saved {
		if r.ID == id {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	if !removed {
		return nil
	}
	s.saved = kept
	return s.kv.Set(KeySavedRecipes, s.saved)
}

// IsSaved reports whether the recipe id is in the saved collection.
func (s *Store) IsSaved(id string) bool {
	for _, r := range s.saved {
		if r.ID == id {
			return true
		}
	}
	return false
}

// Saved returns the saved collection in insertion order.
func (s *Store) Saved() []Recipe {
	out := make([]Recipe, len(s.saved))
	copy(out, s.saved)
	return out
}

// AddToPlanner schedules a recipe. Every call creates a new entry with a
// fresh id; planning the same recipe twice on the same date is allowed.
func (s *Store) AddToPlanner(recipe Recipe, date, mealType string) (PlannerItem, error) {
	if mealType == "" {
		mealType = DefaultMealType
	}
	item := PlannerItem{
		ID:       uuid.NewString(),
		Recipe:   recipe,
		Date:     date,
		MealType: mealType,
	}
	s.planner = append(s.planner, item)
	return item, s.kv.Set(KeyPlannerItems, s.planner)
}

// RemoveFromPlanner deletes the entry with the given id. Removing an absent
// id is a no-op.
func (s *Store) RemoveFromPlanner(id string) error {
	kept := s.planner[:0]
	removed := false
	for _, item := range s.planner {
		if item.ID == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return nil
	}
	s.planner = kept
	return s.kv.Set(KeyPlannerItems, s.planner)
}

// Planner returns planner entries ordered by date ascending.
func (s *Store) Planner() []PlannerItem {
	out := make([]PlannerItem, len(s.planner))
	copy(out, s.planner)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}
