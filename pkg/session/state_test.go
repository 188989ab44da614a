package session

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/storacha/appstore/pkg/internal/testutil"
	"github.com/storacha/appstore/pkg/store/keystore"
	"github.com/storacha/appstore/pkg/wallet"
)

type fixedChain struct {
	mu  sync.Mutex
	id  *big.Int
	err error
}

func (c *fixedChain) ChainID(ctx context.Context) (*big.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.id, c.err
}

func (c *fixedChain) set(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.id = big.NewInt(id)
}

func TestSyncMarker(t *testing.T) {
	var m SyncMarker
	require.False(t, m.IsSet())
	require.True(t, m.Changed(big.NewInt(0)))

	v := big.NewInt(100)
	m.Set(v)
	v.SetInt64(5)
	require.False(t, m.Changed(big.NewInt(100)))
	require.True(t, m.Changed(big.NewInt(101)))
	require.Equal(t, big.NewInt(100), m.Value())

	m.Reset()
	require.False(t, m.IsSet())
	require.Nil(t, m.Value())
}

func TestMarkerAdvanceAfterReset(t *testing.T) {
	var m SyncMarker
	epoch := m.Epoch()
	require.True(t, m.Advance(big.NewInt(7), epoch))
	require.Equal(t, big.NewInt(7), m.Value())

	epoch = m.Epoch()
	m.Reset()
	require.False(t, m.Advance(big.NewInt(8), epoch))
	require.False(t, m.IsSet())

	require.True(t, m.Advance(big.NewInt(8), m.Epoch()))
	require.Equal(t, big.NewInt(8), m.Value())
}

func TestSetAccountResetsMarker(t *testing.T) {
	a := testutil.RandomAddress()
	s := NewState(a, big.NewInt(1))
	s.Marker.Set(big.NewInt(9))

	s.SetAccount(a)
	require.True(t, s.Marker.IsSet())

	b := testutil.RandomAddress()
	s.SetAccount(b)
	require.Equal(t, b, s.Account())
	require.False(t, s.Marker.IsSet())
}

func TestIsAdmin(t *testing.T) {
	s := NewState(common.Address{}, big.NewInt(1))
	require.False(t, s.IsAdmin())

	admin := testutil.RandomAddress()
	s.SetAdmin(admin)
	require.False(t, s.IsAdmin())
	s.SetAccount(admin)
	require.True(t, s.IsAdmin())
}

func TestConnect(t *testing.T) {
	ctx := context.Background()
	chain := &fixedChain{id: big.NewInt(1024)}

	w := testutil.Must(wallet.NewWallet(keystore.NewMemKeyStore()))(t)
	_, err := Connect(ctx, w, chain, common.Address{})
	require.ErrorIs(t, err, ErrNoWallet)

	first := testutil.Must(w.Generate(ctx))(t)
	second := testutil.Must(w.Generate(ctx))(t)

	s, err := Connect(ctx, w, chain, second)
	require.NoError(t, err)
	require.Equal(t, second, s.Account())
	require.Equal(t, big.NewInt(1024), s.ChainID())

	s, err = Connect(ctx, w, chain, common.Address{})
	require.NoError(t, err)
	require.Contains(t, []common.Address{first, second}, s.Account())

	_, err = Connect(ctx, w, chain, testutil.RandomAddress())
	require.ErrorIs(t, err, ErrNoWallet)

	chain.err = errors.New("rpc down")
	_, err = Connect(ctx, w, chain, common.Address{})
	require.Error(t, err)
}

func TestResolveAccount(t *testing.T) {
	ctx := context.Background()
	w := testutil.Must(wallet.NewWallet(keystore.NewMemKeyStore()))(t)
	_, err := ResolveAccount(ctx, w, common.Address{})
	require.ErrorIs(t, err, ErrNoWallet)

	a := testutil.Must(w.Generate(ctx))(t)
	got, err := ResolveAccount(ctx, w, common.Address{})
	require.NoError(t, err)
	require.Equal(t, a, got)

	got, err = ResolveAccount(ctx, w, a)
	require.NoError(t, err)
	require.Equal(t, a, got)

	_, err = ResolveAccount(ctx, w, testutil.RandomAddress())
	require.ErrorIs(t, err, ErrNoWallet)
}

func TestChainWatcherConcurrentStop(t *testing.T) {
	ctx := context.Background()
	w := NewChainWatcher(&fixedChain{id: big.NewInt(1)}, NewState(common.Address{}, big.NewInt(1)), WithInterval(time.Millisecond))
	w.Start(ctx)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, w.Stop(ctx))
		}()
	}
	wg.Wait()
}

func TestChainWatcherResets(t *testing.T) {
	ctx := context.Background()
	chain := &fixedChain{id: big.NewInt(1)}
	s := NewState(testutil.RandomAddress(), big.NewInt(1))
	s.SetAdmin(testutil.RandomAddress())
	s.Marker.Set(big.NewInt(3))

	changed := make(chan struct{}, 1)
	w := NewChainWatcher(chain, s, WithInterval(10*time.Millisecond), OnChainChanged(func(context.Context) {
		changed <- struct{}{}
	}))

	require.False(t, w.Check(ctx))
	require.True(t, s.Marker.IsSet())

	w.Start(ctx)
	chain.set(2)
	select {
	case <-changed:
	case <-time.After(time.Second):
		t.Fatal("chain change not observed")
	}
	require.NoError(t, w.Stop(ctx))

	require.Equal(t, big.NewInt(2), s.ChainID())
	require.Equal(t, common.Address{}, s.Admin())
	require.False(t, s.Marker.IsSet())
}
