package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKV(t *testing.T) (*KV, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store.json")
	kv, err := OpenKV(path)
	require.NoError(t, err)
	return kv, path
}

func TestAddToSaved_Idempotent(t *testing.T) {
	kv, _ := newTestKV(t)
	store := Open(kv)

	recipe := Recipe{ID: "716429", Title: "Pasta with Garlic"}
	require.NoError(t, store.AddToSaved(recipe))
	require.NoError(t, store.AddToSaved(recipe))

	assert.Len(t, store.Saved(), 1)
	assert.True(t, store.IsSaved("716429"))
}

func TestRemoveFromSaved_AbsentIsNoOp(t *testing.T) {
	kv, _ := newTestKV(t)
	store := Open(kv)

	require.NoError(t, store.AddToSaved(Recipe{ID: "1", Title: "Soup"}))
	require.NoError(t, store.RemoveFromSaved("does-not-exist"))

	assert.Len(t, store.Saved(), 1)

	require.NoError(t, store.RemoveFromSaved("1"))
	assert.Empty(t, store.Saved())
	assert.False(t, store.IsSaved("1"))
}

func TestAddToPlanner_NeverDeduplicates(t *testing.T) {
	kv, _ := newTestKV(t)
	store := Open(kv)

	recipe := Recipe{ID: "1", Title: "Soup"}
	first, err := store.AddToPlanner(recipe, "2026-09-01", "Lunch")
	require.NoError(t, err)
	second, err := store.AddToPlanner(recipe, "2026-09-01", "Lunch")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, store.Planner(), 2)
}

func TestAddToPlanner_DefaultMealType(t *testing.T) {
	kv, _ := newTestKV(t)
	store := Open(kv)

	item, err := store.AddToPlanner(Recipe{ID: "1"}, "2026-09-01", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultMealType, item.MealType)
}

func TestPlanner_OrderedByDate(t *testing.T) {
	kv, _ := newTestKV(t)
	store := Open(kv)

	_, err := store.AddToPlanner(Recipe{ID: "1", Title: "Late"}, "2026-09-20", "Dinner")
	require.NoError(t, err)
	_, err = store.AddToPlanner(Recipe{ID: "2", Title: "Early"}, "2026-09-01", "Breakfast")
	require.NoError(t, err)
	_, err = store.AddToPlanner(Recipe{ID: "3", Title: "Middle"}, "2026-09-10", "Dinner")
	require.NoError(t, err)

	items := store.Planner()
	require.Len(t, items, 3)
	assert.Equal(t, "2026-09-01", items[0].Date)
	assert.Equal(t, "2026-09-10", items[1].Date)
	assert.Equal(t, "2026-09-20", items[2].Date)
}

func TestPlannerSurvivesUnsave(t *testing.T) {
	kv, _ := newTestKV(t)
	store := Open(kv)

	recipe := Recipe{ID: "1", Title: "Soup"}
	require.NoError(t, store.AddToSaved(recipe))
	item, err := store.AddToPlanner(recipe, "2026-09-01", "Dinner")
	require.NoError(t, err)

	require.NoError(t, store.RemoveFromSaved("1"))

	items := store.Planner()
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
	assert.Equal(t, "Soup", items[0].Recipe.Title)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	kv, path := newTestKV(t)
	store := Open(kv)

	require.NoError(t, store.AddToSaved(Recipe{ID: "1", Title: "Soup"}))
	_, err := store.AddToPlanner(Recipe{ID: "1", Title: "Soup"}, "2026-09-01", "Dinner")
	require.NoError(t, err)

	reopened, err := OpenKV(path)
	require.NoError(t, err)
	fresh := Open(reopened)

	assert.True(t, fresh.IsSaved("1"))
	assert.Len(t, fresh.Planner(), 1)
}

func TestOpen_CorruptFileFailsOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	kv, err := OpenKV(path)
	require.NoError(t, err)
	store := Open(kv)

	assert.Empty(t, store.Saved())
	assert.Empty(t, store.Planner())

	// The store stays usable after recovering from corruption.
	require.NoError(t, store.AddToSaved(Recipe{ID: "1"}))
	assert.True(t, store.IsSaved("1"))
}

func TestKV_TokenAndUserRoundTrip(t *testing.T) {
	kv, path := newTestKV(t)

	require.NoError(t, kv.Set(KeyUserToken, "token-value"))
	require.NoError(t, kv.Set(KeyUserData, map[string]string{"email": "a@x.com"}))

	reopened, err := OpenKV(path)
	require.NoError(t, err)

	var token string
	require.True(t, reopened.Get(KeyUserToken, &token))
	assert.Equal(t, "token-value", token)

	var user map[string]string
	require.True(t, reopened.Get(KeyUserData, &user))
	assert.Equal(t, "a@x.com", user["email"])

	require.NoError(t, reopened.Delete(KeyUserToken))
	require.False(t, reopened.Get(KeyUserToken, &token))
}
