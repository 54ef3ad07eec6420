package repository

import (
	"testing"

	cfg "github.com/Dahreau/buy-01/src/configuration"
)

func TestInMemoryStore(t *testing.T) {
	config := &cfg.Properties{}
	store, err := NewTokenStore(config)

	if err != nil {
		t.Fatalf("Error creating TokenStore instance: %v", err)
	}

	t.Run("Connect", func(t *testing.T) {
		if !store.Connect() {
			t.Error("Connect() returned false, expected true")
		}
	})

	t.Run("SaveBeforeConnect", func(t *testing.T) {
		cold := &InMemoryStore{}
		if err := cold.Save("someToken"); err == nil {
			t.Error("Save() on a disconnected store should return an error")
		}
	})

	t.Run("SaveAndLoad", func(t *testing.T) {
		if err := store.Save("someToken"); err != nil {
			t.Errorf("Save() returned an error: %v", err)
		}
		token, ok := store.Load()
		if !ok || token != "someToken" {
			t.Errorf("Load() = %q, %v, expected someToken, true", token, ok)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		store.Clear()
		if _, ok := store.Load(); ok {
			t.Error("Load() returned a token after Clear()")
		}
	})

	t.Run("NilConfig", func(t *testing.T) {
		if _, err := NewTokenStore(nil); err == nil {
			t.Error("NewTokenStore(nil) should return an error")
		}
	})
}
