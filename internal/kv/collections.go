package kv

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"conectacausa/pkg/types"
)

const DefaultPrefix = "connect_causa_"

// Collection keys.
const (
	UsersKey         = "users"
	OpportunitiesKey = "opportunities"
	ApplicationsKey  = "applications"
)

// Record is a persisted collection element.
type Record interface {
	Validate() error
}

// Collections is the store handle shared by every repository. Writers going
// through Update on the same handle are serialised per key.
type Collections struct {
	store  Store
	prefix string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewCollections(store Store, prefix string) *Collections {
	return &Collections{
		store:  store,
		prefix: prefix,
		locks:  make(map[string]*sync.Mutex),
	}
}

func (c *Collections) storageKey(key string) string {
	return c.prefix + key
}

func (c *Collections) lock(key string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()

	l, ok := c.locks[key]
	if !ok {
		l = new(sync.Mutex)
		c.locks[key] = l
	}
	return l
}

// Has reports whether anything has been written under key.
func (c *Collections) Has(ctx context.Context, key string) (bool, error) {
	_, found, err := c.store.Get(ctx, c.storageKey(key))
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return found, nil
}

// Load returns the collection stored under key, or a copy of defaults when
// the key has never been written. Defaults are not persisted.
func Load[T Record](ctx context.Context, c *Collections, key string, defaults []T) ([]T, error) {
	raw, found, err := c.store.Get(ctx, c.storageKey(key))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}

	if !found {
		out := slices.Clone(defaults)
		if out == nil {
			out = []T{}
		}
		return out, nil
	}

	return decode[T](key, raw)
}

// Save overwrites the collection stored under key.
func Save[T Record](ctx context.Context, c *Collections, key string, records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := c.store.Put(ctx, c.storageKey(key), data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	return nil
}

// Update runs a load-mutate-save cycle while holding the key's lock. If fn
// returns an error nothing is written.
func Update[T Record](ctx context.Context, c *Collections, key string, defaults []T, fn func([]T) ([]T, error)) error {
	l := c.lock(key)
	l.Lock()
	defer l.Unlock()

	records, err := Load(ctx, c, key, defaults)
	if err != nil {
		return err
	}

	records, err = fn(records)
	if err != nil {
		return err
	}

	return Save(ctx, c, key, records)
}

func decode[T Record](key string, raw []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: %s is not a JSON array", types.ErrStorageCorruption, key)
	}

	var records []T
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", types.ErrStorageCorruption, key, err)
	}

	for i, record := range records {
		if err := record.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s[%d]: %v", types.ErrStorageCorruption, key, i, err)
		}
	}

	if records == nil {
		records = []T{}
	}

	return records, nil
}
