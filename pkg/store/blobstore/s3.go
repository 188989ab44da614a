package blobstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	multihash "github.com/multiformats/go-multihash"

	"github.com/storacha/appstore/pkg/internal/digestutil"
	"github.com/storacha/appstore/pkg/store"
)

// S3Client is the subset of the S3 API used by [S3Blobstore].
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// S3Blobstore implements [Blobstore] on an S3 bucket.
type S3Blobstore struct {
	bucket    string
	keyPrefix string
	s3Client  S3Client
}

var _ Blobstore = (*S3Blobstore)(nil)

func NewS3Blobstore(cfg aws.Config, bucket string, keyPrefix string, opts ...func(*s3.Options)) *S3Blobstore {
	return NewS3BlobstoreWithClient(s3.NewFromConfig(cfg, opts...), bucket, keyPrefix)
}

func NewS3BlobstoreWithClient(client S3Client, bucket string, keyPrefix string) *S3Blobstore {
	return &S3Blobstore{
		s3Client:  client,
		bucket:    bucket,
		keyPrefix: keyPrefix,
	}
}

func (s *S3Blobstore) key(digest multihash.Multihash) *string {
	return aws.String(s.keyPrefix + digestutil.Format(digest))
}

// Put implements Blobstore. The body is verified before it is sent so the
// bucket never holds a blob under the wrong digest.
func (s *S3Blobstore) Put(ctx context.Context, digest multihash.Multihash, size uint64, body io.Reader) error {
	b, err := verify(digest, size, body)
	if err != nil {
		return fmt.Errorf("putting blob: %w", err)
	}
	_, err = s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           s.key(digest),
		Body:          bytes.NewReader(b),
		ContentLength: aws.Int64(int64(size)),
	})
	if err != nil {
		return fmt.Errorf("putting blob to s3: %w", err)
	}
	return nil
}

// Get implements Blobstore.
func (s *S3Blobstore) Get(ctx context.Context, digest multihash.Multihash) (Object, error) {
	out, err := s.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    s.key(digest),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &s3BlobObject{out}, nil
}

func (s *S3Blobstore) Has(ctx context.Context, digest multihash.Multihash) (bool, error) {
	_, err := s.s3Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    s.key(digest),
	})
	if err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

type s3BlobObject struct {
	output *s3.GetObjectOutput
}

func (s *s3BlobObject) Body() io.ReadCloser {
	return s.output.Body
}

func (s *s3BlobObject) Size() int64 {
	return aws.ToInt64(s.output.ContentLength)
}
