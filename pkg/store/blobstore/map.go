package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/multiformats/go-multihash"

	"github.com/storacha/appstore/pkg/internal/digestutil"
	"github.com/storacha/appstore/pkg/store"
)

type MapObject struct {
	bytes []byte
}

func (o MapObject) Size() int64 {
	return int64(len(o.bytes))
}

func (o MapObject) Body() io.ReadCloser {
	return io.NopCloser(bytes.NewReader(o.bytes))
}

type MapBlobstore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func (mb *MapBlobstore) Get(ctx context.Context, digest multihash.Multihash) (Object, error) {
	mb.mu.RLock()
	defer mb.mu.RUnlock()

	b, ok := mb.data[digestutil.Format(digest)]
	if !ok {
		return nil, store.ErrNotFound
	}
	return MapObject{bytes: b}, nil
}

func (mb *MapBlobstore) Has(ctx context.Context, digest multihash.Multihash) (bool, error) {
	mb.mu.RLock()
	defer mb.mu.RUnlock()
	_, ok := mb.data[digestutil.Format(digest)]
	return ok, nil
}

func (mb *MapBlobstore) Put(ctx context.Context, digest multihash.Multihash, size uint64, body io.Reader) error {
	b, err := verify(digest, size, body)
	if err != nil {
		return fmt.Errorf("putting blob: %w", err)
	}

	mb.mu.Lock()
	defer mb.mu.Unlock()
	mb.data[digestutil.Format(digest)] = b
	return nil
}

var _ Blobstore = (*MapBlobstore)(nil)

// NewMapBlobstore creates a [Blobstore] backed by an in-memory map.
func NewMapBlobstore() *MapBlobstore {
	return &MapBlobstore{data: map[string][]byte{}}
}
