// Package content is the client side of content-addressed storage: blobs are
// uploaded under a name and retrieved by the CID the store returns for them.
package content

import (
	"context"
	"io"

	"github.com/ipfs/go-cid"
	logging "github.com/ipfs/go-log/v2"

	"github.com/storacha/appstore/pkg/store"
)

var log = logging.Logger("content")

// ErrNotFound is returned when a hash cannot be resolved by the store.
var ErrNotFound = store.ErrNotFound

// ProgressFunc receives the number of bytes sent so far.
type ProgressFunc func(bytesSoFar uint64)

type UploadConfig struct {
	progress ProgressFunc
}

// UploadOption configures a single upload.
type UploadOption func(*UploadConfig)

// WithProgress reports upload progress to fn. fn may be called zero or more
// times before Upload returns.
func WithProgress(fn ProgressFunc) UploadOption {
	return func(c *UploadConfig) {
		c.progress = fn
	}
}

func NewUploadConfig(opts ...UploadOption) UploadConfig {
	var c UploadConfig
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c UploadConfig) Progress(n uint64) {
	if c.progress != nil {
		c.progress(n)
	}
}

// Store uploads and fetches blobs in content-addressed storage. Uploading the
// same bytes twice yields the same CID.
type Store interface {
	// Upload stores one named blob and returns its content identifier. Failed
	// uploads are not resumable.
	Upload(ctx context.Context, name string, body io.Reader, opts ...UploadOption) (cid.Cid, error)
	// Fetch streams the blob identified by c.
	Fetch(ctx context.Context, c cid.Cid) (io.ReadCloser, error)
}

// ProgressReader counts the bytes read through it and reports the running
// total.
type ProgressReader struct {
	r        io.Reader
	read     uint64
	progress func(uint64)
}

func NewProgressReader(r io.Reader, progress func(uint64)) *ProgressReader {
	return &ProgressReader{r: r, progress: progress}
}

func (p *ProgressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.read += uint64(n)
		if p.progress != nil {
			p.progress(p.read)
		}
	}
	return n, err
}

func (p *ProgressReader) BytesRead() uint64 {
	return p.read
}
