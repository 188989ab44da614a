package blobstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/multiformats/go-multihash"
)

// ErrDataInconsistent is returned when the data being written does not hash to
// the expected value.
var ErrDataInconsistent = errors.New("data consistency check failed")

// ErrTooLarge is returned when the data being written is larger than expected.
var ErrTooLarge = errors.New("payload too large")

// ErrTooSmall is returned when the data being written is smaller than expected.
var ErrTooSmall = errors.New("payload too small")

type Object interface {
	// Size returns the total size of the object in bytes.
	Size() int64
	Body() io.ReadCloser
}

// Blobstore holds blobs addressed by the sha2-256 multihash of their bytes.
type Blobstore interface {
	// Put stores the bytes to the store and ensures it hashes to the passed
	// digest.
	Put(ctx context.Context, digest multihash.Multihash, size uint64, body io.Reader) error
	// Get retrieves the object identified by the passed digest. Returns nil and
	// [store.ErrNotFound] if the object does not exist.
	//
	// Note: data is not hashed on read.
	Get(ctx context.Context, digest multihash.Multihash) (Object, error)
	// Has reports whether the object identified by digest is stored.
	Has(ctx context.Context, digest multihash.Multihash) (bool, error)
}

// verify reads body fully and checks it against the expected size and
// sha2-256 digest.
func verify(digest multihash.Multihash, size uint64, body io.Reader) ([]byte, error) {
	info, err := decodeDigest(digest)
	if err != nil {
		return nil, err
	}

	b, err := io.ReadAll(io.LimitReader(body, int64(size)+1))
	if err != nil {
		return nil, err
	}
	if uint64(len(b)) > size {
		return nil, ErrTooLarge
	}
	if uint64(len(b)) < size {
		return nil, ErrTooSmall
	}

	sum, err := multihash.Sum(b, multihash.SHA2_256, -1)
	if err != nil {
		return nil, err
	}
	decoded, _ := multihash.Decode(sum)
	if !bytes.Equal(decoded.Digest, info.Digest) {
		return nil, ErrDataInconsistent
	}
	return b, nil
}

func decodeDigest(digest multihash.Multihash) (*multihash.DecodedMultihash, error) {
	info, err := multihash.Decode(digest)
	if err != nil {
		return nil, fmt.Errorf("decoding digest: %w", err)
	}
	if info.Code != multihash.SHA2_256 {
		return nil, fmt.Errorf("unsupported digest: 0x%x", info.Code)
	}
	return info, nil
}
