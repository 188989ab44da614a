package keystore

import (
	"context"
	"testing"

	"github.com/ipfs/go-datastore"
	dssync "github.com/ipfs/go-datastore/sync"
	"github.com/stretchr/testify/require"

	"github.com/storacha/appstore/pkg/internal/testutil"
	"github.com/storacha/appstore/pkg/store"
)

func TestKeyStore(t *testing.T) {
	impls := map[string]KeyStore{
		"MemKeyStore": NewMemKeyStore(),
		"KeyStore":    testutil.Must(NewKeyStore(dssync.MutexWrap(datastore.NewMapDatastore())))(t),
	}

	for name, ks := range impls {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := ks.Get(ctx, "missing")
			require.ErrorIs(t, err, store.ErrNotFound)

			has, err := ks.Has(ctx, "a")
			require.NoError(t, err)
			require.False(t, has)

			a := KeyInfo{PrivateKey: testutil.RandomBytes(32)}
			b := KeyInfo{PrivateKey: testutil.RandomBytes(32)}
			require.NoError(t, ks.Put(ctx, "a", a))
			require.NoError(t, ks.Put(ctx, "b", b))

			got, err := ks.Get(ctx, "a")
			require.NoError(t, err)
			require.Equal(t, a, got)

			has, err = ks.Has(ctx, "a")
			require.NoError(t, err)
			require.True(t, has)

			all, err := ks.List(ctx)
			require.NoError(t, err)
			require.ElementsMatch(t, []KeyInfo{a, b}, all)
		})
	}
}
