// Package client is the HTTP client for the tastebud backend used by the
// terminal client.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tastebud-app/tastebud-backend/internal/dto"
	"github.com/tastebud-app/tastebud-backend/internal/models"
)

// API talks to the backend. A bearer token, once set, is attached to every
// request.
type API struct {
	baseURL string
	http    *http.Client
	token   string
}

// New creates an API client for the given base URL.
func New(baseURL string) *API {
	return &API{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken sets the bearer token attached to subsequent requests.
func (a *API) SetToken(token string) {
	a.token = token
}

// Register creates an account and returns the fresh session.
func (a *API) Register(ctx context.Context, email, password string, fullName *string) (*dto.AuthResponse, error) {
	body := dto.RegisterRequest{Email: email, Password: password, FullName: fullName}
	var out dto.AuthResponse
	if err := a.do(ctx, http.MethodPost, "/api/auth/register", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates and returns the fresh session.
func (a *API) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	body := dto.LoginRequest{Email: email, Password: password}
	var out dto.AuthResponse
	if err := a.do(ctx, http.MethodPost, "/api/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Profile fetches the authenticated user's profile.
func (a *API) Profile(ctx context.Context) (*models.PublicUser, error) {
	var out dto.ProfileResponse
	if err := a.do(ctx, http.MethodGet, "/api/auth/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// SearchRecipes runs a free-text recipe search.
func (a *API) SearchRecipes(ctx context.Context, query string, number int) (json.RawMessage, error) {
	params := url.Values{"query": {query}}
	if number > 0 {
		params.Set("number", fmt.Sprint(number))
	}
	var out json.RawMessage
	if err := a.do(ctx, http.MethodGet, "/api/recipes/search?"+params.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetRecipe fetches one recipe's full payload.
func (a *API) GetRecipe(ctx context.Context, id string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := a.do(ctx, http.MethodGet, "/api/recipes/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCocktail fetches one cocktail's full payload.
func (a *API) GetCocktail(ctx context.Context, id string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := a.do(ctx, http.MethodGet, "/api/cocktails/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *API) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Every failure surfaces the server's {error} message uniformly.
		var payload dto.ErrorResponse
		if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
			return errors.New(payload.Error)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
