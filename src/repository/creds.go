package repository

import (
	"fmt"
	"sync"

	cfg "github.com/Dahreau/buy-01/src/configuration"
)

type (
	// TokenStore holds the single bearer token of the current session. The token
	// has one writer path (save/clear) and many readers.
	TokenStore interface {
		Save(token string) error
		Load() (string, bool)
		Clear()
		Connect() bool
	}

	InMemoryStore struct {
		mu    sync.RWMutex
		token string
		ready bool
	}
)

func NewTokenStore(config *cfg.Properties) (TokenStore, error) {
	if config == nil {
		return nil, fmt.Errorf("config is not valid")
	}
	return &InMemoryStore{}, nil
}

func (i *InMemoryStore) Connect() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.ready = true
	return true
}

func (i *InMemoryStore) Save(token string) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if !i.ready {
		return fmt.Errorf("can not save token, store is off")
	}
	i.token = token
	return nil
}

func (i *InMemoryStore) Load() (string, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if !i.ready || i.token == "" {
		return "", false
	}
	return i.token, true
}

func (i *InMemoryStore) Clear() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.token = ""
}
