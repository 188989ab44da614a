package keystore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/storacha/appstore/pkg/store"
)

func NewMemKeyStore() *MemKeyStore {
	return &MemKeyStore{
		m: make(map[string]KeyInfo),
	}
}

type MemKeyStore struct {
	mu sync.RWMutex
	m  map[string]KeyInfo
}

var _ KeyStore = (*MemKeyStore)(nil)

// Get gets a key out of keystore and returns KeyInfo corresponding to named key
func (mks *MemKeyStore) Get(ctx context.Context, k string) (KeyInfo, error) {
	mks.mu.RLock()
	defer mks.mu.RUnlock()
	ki, ok := mks.m[k]
	if !ok {
		return KeyInfo{}, fmt.Errorf("getting key (%s): %w", k, store.ErrNotFound)
	}

	return ki, nil
}

// Put saves a key info under given name
func (mks *MemKeyStore) Put(ctx context.Context, k string, ki KeyInfo) error {
	mks.mu.Lock()
	defer mks.mu.Unlock()
	mks.m[k] = ki
	return nil
}

func (mks *MemKeyStore) Has(ctx context.Context, s string) (bool, error) {
	mks.mu.RLock()
	defer mks.mu.RUnlock()
	_, has := mks.m[s]
	return has, nil
}

// List lists all the keys stored in the KeyStore, ordered by name.
func (mks *MemKeyStore) List(ctx context.Context) ([]KeyInfo, error) {
	mks.mu.RLock()
	defer mks.mu.RUnlock()
	names := make([]string, 0, len(mks.m))
	for name := range mks.m {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]KeyInfo, 0, len(names))
	for _, name := range names {
		out = append(out, mks.m[name])
	}
	return out, nil
}
