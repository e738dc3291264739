package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastebud-app/tastebud-backend/internal/config"
	"github.com/tastebud-app/tastebud-backend/internal/models"
	"github.com/tastebud-app/tastebud-backend/internal/storage"
	"github.com/tastebud-app/tastebud-backend/internal/storage/postgres"
)

// TestStoreIntegration exercises the store against a live database. The
// unique-index conflict path cannot be covered without one.
func TestStoreIntegration(t *testing.T) {
	if os.Getenv("RUN_DB_INTEGRATION") != "true" {
		t.Skip("set RUN_DB_INTEGRATION=true to run this integration test")
	}

	ctx := context.Background()
	dbCfg := &config.DatabaseConfig{
		Host:        getenv("DB_HOST", "localhost"),
		Port:        getenv("DB_PORT", "5432"),
		User:        getenv("DB_USER", "postgres"),
		Password:    os.Getenv("DB_PASSWORD"),
		Name:        getenv("DB_NAME", "tastebud_test"),
		SSLMode:     getenv("DB_SSLMODE", "disable"),
		MaxConns:    2,
		ConnTimeout: 10 * time.Second,
	}

	store, err := postgres.NewStore(ctx, dbCfg)
	require.NoError(t, err)
	defer store.Close()

	email := fmt.Sprintf("it_%d@example.com", time.Now().UnixNano())
	user := models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}

	created, err := store.CreateUser(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, user.ID, created.ID)

	// The unique index, not the pre-check, must reject the duplicate.
	_, err = store.CreateUser(ctx, models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "other-hash",
		CreatedAt:    time.Now().UTC(),
	})
	assert.ErrorIs(t, err, storage.ErrAlreadyExists)

	found, err := store.FindByEmail(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "hash", found.PasswordHash)

	byID, err := store.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, email, byID.Email)

	_, err = store.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
