package blobstore

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/multiformats/go-multihash"

	"github.com/storacha/appstore/pkg/internal/digestutil"
	"github.com/storacha/appstore/pkg/store"
)

type FileObject struct {
	name string
	size int64
}

func (o FileObject) Size() int64 {
	return o.size
}

func (o FileObject) Body() io.ReadCloser {
	f, err := os.Open(o.name)
	if err != nil {
		r, w := io.Pipe()
		w.CloseWithError(err)
		return r
	}
	return f
}

// toPath shards the multibase key of a digest into two character directories.
func toPath(digest multihash.Multihash) string {
	str := digestutil.Format(digest)
	var parts []string
	for i := 0; i < len(str); i += 2 {
		end := i + 2
		if end > len(str) {
			end = len(str)
		}
		parts = append(parts, str[i:end])
	}
	return filepath.Join(parts...)
}

type FsBlobstore struct {
	rootdir string
}

func (b *FsBlobstore) Get(ctx context.Context, digest multihash.Multihash) (Object, error) {
	n := filepath.Join(b.rootdir, toPath(digest))
	inf, err := os.Stat(n)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("stat file: %w", err)
	}
	return FileObject{name: n, size: inf.Size()}, nil
}

func (b *FsBlobstore) Has(ctx context.Context, digest multihash.Multihash) (bool, error) {
	_, err := b.Get(ctx, digest)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (b *FsBlobstore) Put(ctx context.Context, digest multihash.Multihash, size uint64, body io.Reader) error {
	info, err := decodeDigest(digest)
	if err != nil {
		return err
	}

	n := filepath.Join(b.rootdir, toPath(digest))
	if err := os.MkdirAll(filepath.Dir(n), 0755); err != nil {
		return fmt.Errorf("creating intermediate directories: %w", err)
	}

	// written to a temp file first so a failed write never leaves a partial
	// blob under its final name
	f, err := os.CreateTemp(filepath.Dir(n), ".put-*")
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer os.Remove(f.Name())
	defer f.Close()

	hash := sha256.New()
	written, err := io.Copy(f, io.TeeReader(io.LimitReader(body, int64(size)+1), hash))
	if err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	if uint64(written) > size {
		return ErrTooLarge
	}
	if uint64(written) < size {
		return ErrTooSmall
	}
	if !bytes.Equal(hash.Sum(nil), info.Digest) {
		return ErrDataInconsistent
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}
	if err := os.Rename(f.Name(), n); err != nil {
		return fmt.Errorf("moving blob into place: %w", err)
	}
	return nil
}

var _ Blobstore = (*FsBlobstore)(nil)

func NewFsBlobstore(rootdir string) (*FsBlobstore, error) {
	err := os.MkdirAll(rootdir, 0755)
	if err != nil {
		return nil, fmt.Errorf("root directory not writable: %w", err)
	}
	return &FsBlobstore{rootdir}, nil
}
