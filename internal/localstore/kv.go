// Package localstore implements the client-side durable state: a small
// file-backed key/value layer and the saved-recipes/meal-planner collections
// kept on top of it. There is no server mirror of this data.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Storage keys. The layout mirrors the mobile client's local storage.
const (
	KeyUserToken     = "userToken"
	KeyUserData      = "userData"
	KeySavedRecipes  = "savedRecipes"
	KeyPlannerItems  = "plannerItems"
	defaultStoreFile = "tastebud.json"
)

// KV is a durable string-to-JSON map persisted as a single file. Every Set
// rewrites the whole file through a temp-file rename, so a crash mid-write
// leaves the previous contents intact.
type KV struct {
	path string
	data map[string]json.RawMessage
}

// OpenKV loads the store file at path, creating parent directories as
// needed. A missing or unreadable file yields an empty store, never an
// error: first run and corruption both fail open.
func OpenKV(path string) (*KV, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	kv := &KV{path: path, data: make(map[string]json.RawMessage)}

	raw, err := os.ReadFile(path)
	if err != nil {
		// First run or unreadable file: start empty.
		return kv, nil
	}
	if err := json.Unmarshal(raw, &kv.data); err != nil {
		// Corrupt file: start empty rather than refuse to run.
		kv.data = make(map[string]json.RawMessage)
	}
	return kv, nil
}

// DefaultPath returns the store file location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tastebud", defaultStoreFile), nil
}

// Get unmarshals the value under key into out. It returns false when the key
// is absent or the stored value does not parse.
func (kv *KV) Get(key string, out any) bool {
	raw, ok := kv.data[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false
	}
	return true
}

// Set stores value under key and persists the whole map.
func (kv *KV) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	kv.data[key] = raw
	return kv.flush()
}

// Delete removes key and persists.
func (kv *KV) Delete(key string) error {
	if _, ok := kv.data[key]; !ok {
		return nil
	}
	delete(kv.data, key)
	return kv.flush()
}

func (kv *KV) flush() error {
	raw, err := json.MarshalIndent(kv.data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	tmp := kv.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp, kv.path); err != nil {
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}
