// Package local serves content from a blobstore, addressing each blob by a
// CIDv1 over the raw codec.
package local

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ipfs/go-cid"
	logging "github.com/ipfs/go-log/v2"
	"github.com/multiformats/go-multihash"

	"github.com/storacha/appstore/pkg/content"
	"github.com/storacha/appstore/pkg/store"
	"github.com/storacha/appstore/pkg/store/blobstore"
)

var log = logging.Logger("content/local")

type Store struct {
	blobs blobstore.Blobstore
}

var _ content.Store = (*Store)(nil)

func New(blobs blobstore.Blobstore) *Store {
	return &Store{blobs: blobs}
}

func (s *Store) Upload(ctx context.Context, name string, body io.Reader, opts ...content.UploadOption) (cid.Cid, error) {
	cfg := content.NewUploadConfig(opts...)

	data, err := io.ReadAll(content.NewProgressReader(body, cfg.Progress))
	if err != nil {
		return cid.Undef, fmt.Errorf("reading %s: %w", name, err)
	}
	digest, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, fmt.Errorf("hashing %s: %w", name, err)
	}

	has, err := s.blobs.Has(ctx, digest)
	if err != nil {
		return cid.Undef, fmt.Errorf("checking blob: %w", err)
	}
	if !has {
		if err := s.blobs.Put(ctx, digest, uint64(len(data)), bytes.NewReader(data)); err != nil {
			return cid.Undef, fmt.Errorf("writing blob: %w", err)
		}
	}

	c := cid.NewCidV1(cid.Raw, digest)
	log.Debugw("stored", "name", name, "cid", c, "size", len(data), "existing", has)
	return c, nil
}

func (s *Store) Fetch(ctx context.Context, c cid.Cid) (io.ReadCloser, error) {
	obj, err := s.blobs.Get(ctx, c.Hash())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, content.ErrNotFound
		}
		return nil, fmt.Errorf("reading blob: %w", err)
	}
	return obj.Body(), nil
}
