package notice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNoticeExpires(t *testing.T) {
	b := NewBoard(WithTTL(20 * time.Millisecond))
	b.Notify(Succeed)
	n, ok := b.Current()
	require.True(t, ok)
	require.Equal(t, Succeed, n.Message)

	require.Eventually(t, func() bool {
		_, ok := b.Current()
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestLaterNoticeSupersedes(t *testing.T) {
	b := NewBoard(WithTTL(100 * time.Millisecond))
	b.Notify(Fail)
	time.Sleep(60 * time.Millisecond)
	b.Notify(Succeed)
	time.Sleep(60 * time.Millisecond)

	// the first notice's timer must not clear the second
	n, ok := b.Current()
	require.True(t, ok)
	require.Equal(t, Succeed, n.Message)
}

func TestBlockingStays(t *testing.T) {
	b := NewBoard(WithTTL(10 * time.Millisecond))
	b.Blocking("package too large")
	time.Sleep(30 * time.Millisecond)
	n, ok := b.Current()
	require.True(t, ok)
	require.Equal(t, LevelBlocking, n.Level)

	b.Clear()
	_, ok = b.Current()
	require.False(t, ok)
}

func TestOnPost(t *testing.T) {
	var got []string
	b := NewBoard(WithTTL(0), OnPost(func(n Notice) { got = append(got, n.Message) }))
	b.Notify(Succeed)
	b.Blocking("connect a wallet")
	require.Equal(t, []string{Succeed, "connect a wallet"}, got)
}

func TestBusyNests(t *testing.T) {
	b := NewBoard()
	require.False(t, b.IsBusy())
	b.SetBusy(true)
	b.SetBusy(true)
	b.SetBusy(false)
	require.True(t, b.IsBusy())
	b.SetBusy(false)
	require.False(t, b.IsBusy())
	b.SetBusy(false)
	require.False(t, b.IsBusy())
}
