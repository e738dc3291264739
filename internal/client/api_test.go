package client_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tastebud-app/tastebud-backend/internal/auth"
	"github.com/tastebud-app/tastebud-backend/internal/client"
	"github.com/tastebud-app/tastebud-backend/internal/config"
	"github.com/tastebud-app/tastebud-backend/internal/handlers"
	"github.com/tastebud-app/tastebud-backend/internal/providers"
	"github.com/tastebud-app/tastebud-backend/internal/routes"
	"github.com/tastebud-app/tastebud-backend/internal/storage/memory"
)

type pingOK struct{}

func (pingOK) Ping(ctx context.Context) error { return nil }

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	service := auth.NewService(memory.NewStore(), tokens, bcrypt.MinCost, time.Second)

	providerCfg := &config.ProvidersConfig{
		SpoonacularBaseURL: "http://127.0.0.1:0",
		CocktailDBBaseURL:  "http://127.0.0.1:0",
		CocktailDBAPIKey:   "1",
		RequestTimeout:     time.Second,
	}

	router := routes.New(
		handlers.NewAuthHandler(service, logger),
		handlers.NewHealthHandler(pingOK{}),
		handlers.NewRecipeHandler(providers.NewSpoonacular(providerCfg), logger),
		handlers.NewCocktailHandler(providers.NewCocktailDB(providerCfg), logger),
		tokens,
	)

	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)
	return ts
}

func TestAPI_RegisterLoginProfile(t *testing.T) {
	ts := newBackend(t)
	ctx := context.Background()

	api := client.New(ts.URL)

	name := "Ada Lovelace"
	session, err := api.Register(ctx, "a@x.com", "secret123", &name)
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	assert.Equal(t, "a@x.com", session.User.Email)

	api.SetToken(session.Token)
	profile, err := api.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, profile.ID)
	require.NotNil(t, profile.FullName)
	assert.Equal(t, name, *profile.FullName)

	fresh := client.New(ts.URL)
	loggedIn, err := fresh.Login(ctx, "a@x.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, loggedIn.User.ID)
}

func TestAPI_SurfacesServerErrorMessage(t *testing.T) {
	ts := newBackend(t)
	ctx := context.Background()

	api := client.New(ts.URL)

	_, err := api.Login(ctx, "nobody@x.com", "whatever")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())

	// Profile without a token comes back as the gate's message.
	_, err = api.Profile(ctx)
	require.Error(t, err)
	assert.Equal(t, "Access denied", err.Error())
}
