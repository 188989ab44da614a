package keystore

import (
	"context"
	"errors"
	"fmt"

	"github.com/ipfs/go-datastore"
	"github.com/ipfs/go-datastore/namespace"
	"github.com/ipfs/go-datastore/query"

	"github.com/storacha/appstore/pkg/store"
)

const DatastorePrefix = "keystore/"

// KeyInfo is used for storing keys in KeyStore
type KeyInfo struct {
	PrivateKey []byte
}

// KeyStore is used for storing secret keys
type KeyStore interface {
	// Get gets a key out of keystore and returns KeyInfo corresponding to named key
	Get(context.Context, string) (KeyInfo, error)
	// Put saves a key info under given name
	Put(context.Context, string, KeyInfo) error
	// Has reports whether a key with the given name exists
	Has(context.Context, string) (bool, error)
	// List lists all the keys stored in the KeyStore
	List(context.Context) ([]KeyInfo, error)
}

type keyStore struct {
	ds datastore.Datastore
}

func NewKeyStore(ds datastore.Datastore) (KeyStore, error) {
	ks := namespace.Wrap(ds, datastore.NewKey(DatastorePrefix))
	return &keyStore{ds: ks}, nil
}

func (k *keyStore) Get(ctx context.Context, s string) (KeyInfo, error) {
	res, err := k.ds.Get(ctx, datastore.NewKey(s))
	if err != nil {
		if errors.Is(err, datastore.ErrNotFound) {
			return KeyInfo{}, fmt.Errorf("getting key (%s): %w", s, store.ErrNotFound)
		}
		return KeyInfo{}, fmt.Errorf("getting key (%s): %w", s, err)
	}
	return KeyInfo{PrivateKey: res}, nil
}

func (k *keyStore) Put(ctx context.Context, s string, info KeyInfo) error {
	if err := k.ds.Put(ctx, datastore.NewKey(s), info.PrivateKey); err != nil {
		return fmt.Errorf("putting key (%s): %w", s, err)
	}
	return nil
}

func (k *keyStore) Has(ctx context.Context, s string) (bool, error) {
	return k.ds.Has(ctx, datastore.NewKey(s))
}

func (k *keyStore) List(ctx context.Context) ([]KeyInfo, error) {
	res, err := k.ds.Query(ctx, query.Query{})
	if err != nil {
		return nil, fmt.Errorf("querying keys: %w", err)
	}
	defer res.Close()

	var out []KeyInfo
	for r := range res.Next() {
		if r.Error != nil {
			return nil, fmt.Errorf("iterating keys: %w", r.Error)
		}
		out = append(out, KeyInfo{PrivateKey: r.Value})
	}
	return out, nil
}
