package blobstore

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/ipfs/go-datastore"
	dssync "github.com/ipfs/go-datastore/sync"
	"github.com/multiformats/go-multihash"
	"github.com/stretchr/testify/require"

	"github.com/storacha/appstore/pkg/internal/testutil"
	"github.com/storacha/appstore/pkg/store"
)

// memS3 is an in-memory stand-in for the S3 object API.
type memS3 struct {
	objects map[string][]byte
}

func (m *memS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	m.objects[*in.Bucket+"/"+*in.Key] = b
	return &s3.PutObjectOutput{}, nil
}

func (m *memS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	b, ok := m.objects[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	size := int64(len(b))
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(b)), ContentLength: &size}, nil
}

func (m *memS3) HeadObject(ctx context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if _, ok := m.objects[*in.Bucket+"/"+*in.Key]; !ok {
		return nil, &types.NotFound{}
	}
	return &s3.HeadObjectOutput{}, nil
}

func TestBlobstore(t *testing.T) {
	impls := map[string]Blobstore{
		"MapBlobstore": NewMapBlobstore(),
		"DsBlobstore":  NewDsBlobstore(dssync.MutexWrap(datastore.NewMapDatastore())),
		"FsBlobstore":  testutil.Must(NewFsBlobstore(t.TempDir()))(t),
		"S3Blobstore":  NewS3BlobstoreWithClient(&memS3{objects: map[string][]byte{}}, "apps", "blobs/"),
	}

	for k, s := range impls {
		t.Run("roundtrip "+k, func(t *testing.T) {
			data := testutil.RandomBytes(10)
			digest := testutil.Must(multihash.Sum(data, multihash.SHA2_256, -1))(t)

			err := s.Put(context.Background(), digest, uint64(len(data)), bytes.NewBuffer(data))
			require.NoError(t, err)

			has, err := s.Has(context.Background(), digest)
			require.NoError(t, err)
			require.True(t, has)

			obj, err := s.Get(context.Background(), digest)
			require.NoError(t, err)
			require.Equal(t, obj.Size(), int64(len(data)))
			body := obj.Body()
			defer body.Close()
			require.Equal(t, data, testutil.Must(io.ReadAll(body))(t))
		})

		t.Run("not found "+k, func(t *testing.T) {
			data := testutil.RandomBytes(10)
			digest := testutil.Must(multihash.Sum(data, multihash.SHA2_256, -1))(t)

			obj, err := s.Get(context.Background(), digest)
			require.ErrorIs(t, err, store.ErrNotFound)
			require.Nil(t, obj)

			has, err := s.Has(context.Background(), digest)
			require.NoError(t, err)
			require.False(t, has)
		})

		t.Run("data consistency "+k, func(t *testing.T) {
			data := testutil.RandomBytes(10)
			baddata := testutil.RandomBytes(10)
			digest := testutil.Must(multihash.Sum(data, multihash.SHA2_256, -1))(t)

			err := s.Put(context.Background(), digest, uint64(len(data)), bytes.NewBuffer(baddata))
			require.ErrorIs(t, err, ErrDataInconsistent)
		})

		t.Run("size mismatch "+k, func(t *testing.T) {
			data := testutil.RandomBytes(10)
			digest := testutil.Must(multihash.Sum(data, multihash.SHA2_256, -1))(t)

			err := s.Put(context.Background(), digest, 9, bytes.NewBuffer(data))
			require.ErrorIs(t, err, ErrTooLarge)

			err = s.Put(context.Background(), digest, 11, bytes.NewBuffer(data))
			require.ErrorIs(t, err, ErrTooSmall)
		})
	}
}
