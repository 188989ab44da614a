package cmd

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	leveldb "github.com/ipfs/go-ds-leveldb"

	"github.com/storacha/appstore/pkg/build"
	"github.com/storacha/appstore/pkg/config"
	"github.com/storacha/appstore/pkg/content"
	"github.com/storacha/appstore/pkg/content/ipfs"
	"github.com/storacha/appstore/pkg/content/local"
	"github.com/storacha/appstore/pkg/store/blobstore"
)

func noopClose() error { return nil }

// newContentStore builds the configured content backend. The close func
// releases any datastore it opened.
func newContentStore(ctx context.Context, cfg *config.Config) (content.Store, func() error, error) {
	switch cfg.Content.Backend {
	case config.BackendIPFS:
		endpoint, err := ipfs.ParseEndpoint(cfg.IPFS.API)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing ipfs api: %w", err)
		}
		authHeader := cfg.IPFS.AuthToken
		if cfg.IPFS.AuthSecret != "" {
			authHeader, err = ipfs.CreateJWTAuthHeader("appstore", []byte(cfg.IPFS.AuthSecret))
			if err != nil {
				return nil, nil, err
			}
		}
		client := &http.Client{Transport: userAgentTransport{base: http.DefaultTransport}}
		return ipfs.New(client, endpoint, authHeader), noopClose, nil

	case config.BackendMemory:
		log.Warn("using in-memory content store, uploads are lost on exit")
		return local.New(blobstore.NewMapBlobstore()), noopClose, nil

	case config.BackendLevelDB:
		dir, err := mkdirp(cfg.ContentPath())
		if err != nil {
			return nil, nil, err
		}
		ds, err := leveldb.NewDatastore(dir, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("opening content datastore: %w", err)
		}
		return local.New(blobstore.NewDsBlobstore(ds)), ds.Close, nil

	case config.BackendFS:
		bs, err := blobstore.NewFsBlobstore(cfg.ContentPath())
		if err != nil {
			return nil, nil, fmt.Errorf("creating fs blobstore: %w", err)
		}
		return local.New(bs), noopClose, nil

	case config.BackendS3:
		awsCfg, err := loadAWSConfig(ctx, cfg.Content)
		if err != nil {
			return nil, nil, err
		}
		var s3Opts []func(*s3.Options)
		if cfg.Content.Endpoint != "" {
			s3Opts = append(s3Opts, func(o *s3.Options) {
				o.BaseEndpoint = aws.String(cfg.Content.Endpoint)
				o.UsePathStyle = true
			})
		}
		bs := blobstore.NewS3Blobstore(awsCfg, cfg.Content.Bucket, cfg.Content.Prefix, s3Opts...)
		return local.New(bs), noopClose, nil
	}
	return nil, nil, fmt.Errorf("unknown content backend: %q", cfg.Content.Backend)
}

func loadAWSConfig(ctx context.Context, cc config.ContentConfig) (aws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cc.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cc.Region))
	}
	if cc.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cc.AccessKeyID, cc.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("loading aws config: %w", err)
	}
	return awsCfg, nil
}

type userAgentTransport struct {
	base http.RoundTripper
}

func (t userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", build.UserAgent())
	return t.base.RoundTrip(req)
}
