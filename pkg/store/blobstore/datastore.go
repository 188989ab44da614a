package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ipfs/go-datastore"
	"github.com/ipfs/go-datastore/namespace"
	multihash "github.com/multiformats/go-multihash"

	"github.com/storacha/appstore/pkg/internal/digestutil"
	"github.com/storacha/appstore/pkg/store"
)

const DatastorePrefix = "blobs/"

type DsBlobstore struct {
	data datastore.Datastore
}

func (d *DsBlobstore) Get(ctx context.Context, digest multihash.Multihash) (Object, error) {
	b, err := d.data.Get(ctx, datastore.NewKey(digestutil.Format(digest)))
	if err != nil {
		if errors.Is(err, datastore.ErrNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return MapObject{bytes: b}, nil
}

func (d *DsBlobstore) Has(ctx context.Context, digest multihash.Multihash) (bool, error) {
	return d.data.Has(ctx, datastore.NewKey(digestutil.Format(digest)))
}

func (d *DsBlobstore) Put(ctx context.Context, digest multihash.Multihash, size uint64, body io.Reader) error {
	b, err := verify(digest, size, body)
	if err != nil {
		return fmt.Errorf("putting blob: %w", err)
	}

	if err := d.data.Put(ctx, datastore.NewKey(digestutil.Format(digest)), b); err != nil {
		return fmt.Errorf("putting blob: %w", err)
	}
	return nil
}

// NewDsBlobstore creates an [Blobstore] backed by an IPFS datastore. Blobs are
// kept under their own namespace so the datastore may be shared.
func NewDsBlobstore(ds datastore.Datastore) *DsBlobstore {
	return &DsBlobstore{namespace.Wrap(ds, datastore.NewKey(DatastorePrefix))}
}

var _ Blobstore = (*DsBlobstore)(nil)
