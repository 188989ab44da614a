package cmd

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	ethkeystore "github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storacha/appstore/pkg/build"
	"github.com/storacha/appstore/pkg/config"
	"github.com/storacha/appstore/pkg/content"
	"github.com/storacha/appstore/pkg/model"
	"github.com/storacha/appstore/pkg/notice"
	"github.com/storacha/appstore/pkg/render"
	"github.com/storacha/appstore/pkg/session"
	"github.com/storacha/appstore/pkg/store/keystore"
	"github.com/storacha/appstore/pkg/wallet"
)

func TestDecodeKey(t *testing.T) {
	sk, err := crypto.GenerateKey()
	require.NoError(t, err)
	raw := crypto.FromECDSA(sk)

	t.Run("hex", func(t *testing.T) {
		key, err := decodeKey([]byte("0x"+hex.EncodeToString(raw)+"\n"), "hex", "")
		require.NoError(t, err)
		require.Equal(t, raw, key)
	})

	t.Run("json", func(t *testing.T) {
		data, err := json.Marshal(keystore.KeyInfo{PrivateKey: raw})
		require.NoError(t, err)
		key, err := decodeKey(data, "json", "")
		require.NoError(t, err)
		require.Equal(t, raw, key)
	})

	t.Run("keyfile", func(t *testing.T) {
		ks := ethkeystore.NewKeyStore(t.TempDir(), ethkeystore.LightScryptN, ethkeystore.LightScryptP)
		acct, err := ks.ImportECDSA(sk, "secret")
		require.NoError(t, err)
		data, err := ks.Export(acct, "secret", "secret")
		require.NoError(t, err)

		key, err := decodeKey(data, "keyfile", "secret")
		require.NoError(t, err)
		require.Equal(t, raw, key)

		_, err = decodeKey(data, "keyfile", "wrong")
		require.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := decodeKey([]byte("zz"), "hex", "")
		require.Error(t, err)
		_, err = decodeKey([]byte("00"), "hex", "")
		require.Error(t, err)
		_, err = decodeKey(raw, "pem", "")
		require.ErrorContains(t, err, "unrecognized format")
	})
}

func TestOpenWallet(t *testing.T) {
	dir := t.TempDir()
	wlt, closeWallet, err := openWallet(dir)
	require.NoError(t, err)
	addr, err := wlt.Generate(context.Background())
	require.NoError(t, err)
	require.NoError(t, closeWallet())

	wlt, closeWallet, err = openWallet(dir)
	require.NoError(t, err)
	defer closeWallet()
	accounts, err := wlt.Accounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	require.Equal(t, addr, accounts[0])
}

func TestSwitchAccount(t *testing.T) {
	ctx := context.Background()
	wlt, err := wallet.NewWallet(keystore.NewMemKeyStore())
	require.NoError(t, err)
	first, err := wlt.Generate(ctx)
	require.NoError(t, err)
	second, err := wlt.Generate(ctx)
	require.NoError(t, err)

	e := &env{wallet: wlt, state: session.NewState(first, big.NewInt(1))}
	e.state.Marker.Set(big.NewInt(5))

	changed, err := e.switchAccount(ctx, second.Hex())
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, second, e.state.Account())
	require.False(t, e.state.Marker.IsSet())

	e.state.Marker.Set(big.NewInt(6))
	changed, err = e.switchAccount(ctx, second.Hex())
	require.NoError(t, err)
	require.False(t, changed)
	require.True(t, e.state.Marker.IsSet())

	_, err = e.switchAccount(ctx, "0x6170dE2b09b404776197485F3dc6c968Ef948505")
	require.ErrorIs(t, err, session.ErrNoWallet)
	require.Equal(t, second, e.state.Account())
}

func TestNewContentStore(t *testing.T) {
	ctx := context.Background()
	for _, backend := range []string{config.BackendMemory, config.BackendLevelDB, config.BackendFS} {
		t.Run(backend, func(t *testing.T) {
			cfg := &config.Config{
				Wallet:  config.WalletConfig{DataDir: t.TempDir()},
				Content: config.ContentConfig{Backend: backend},
			}
			store, closeStore, err := newContentStore(ctx, cfg)
			require.NoError(t, err)
			defer closeStore()

			c, err := store.Upload(ctx, "Describe.txt", strings.NewReader("hello"))
			require.NoError(t, err)
			text, err := content.FetchText(ctx, store, c.String())
			require.NoError(t, err)
			require.Equal(t, "hello", text)
		})
	}

	t.Run("ipfs", func(t *testing.T) {
		cfg := &config.Config{
			IPFS:    config.IPFSConfig{API: "http://127.0.0.1:5001", AuthSecret: "s3cret"},
			Content: config.ContentConfig{Backend: config.BackendIPFS},
		}
		store, closeStore, err := newContentStore(ctx, cfg)
		require.NoError(t, err)
		require.NoError(t, closeStore())
		require.NotNil(t, store)
	})

	t.Run("unknown", func(t *testing.T) {
		_, _, err := newContentStore(ctx, &config.Config{Content: config.ContentConfig{Backend: "tape"}})
		require.Error(t, err)
	})
}

func TestLoadAWSConfig(t *testing.T) {
	cfg, err := loadAWSConfig(context.Background(), config.ContentConfig{
		Region:          "eu-west-1",
		AccessKeyID:     "AKIA",
		SecretAccessKey: "secret",
	})
	require.NoError(t, err)
	require.Equal(t, "eu-west-1", cfg.Region)

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	require.Equal(t, "AKIA", creds.AccessKeyID)
}

func TestUserAgentTransport(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	client := &http.Client{Transport: userAgentTransport{base: http.DefaultTransport}}
	res, err := client.Get(srv.URL)
	require.NoError(t, err)
	res.Body.Close()
	require.Equal(t, build.UserAgent(), got)
}

func TestTerminalSink(t *testing.T) {
	var buf bytes.Buffer
	sink := newTerminalSink(&buf)
	sink.Reset()
	sink.Append(render.Listing(model.Listing{
		ID:         3,
		Name:       "Foo",
		Version:    2,
		Status:     model.StatusPending,
		UpdateTime: time.Unix(1700000000, 0),
	}, content.Image{}, "some\n text", time.UTC))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "----", lines[0])
	assert.Contains(t, lines[1], "#3 Foo V 2")
	assert.Contains(t, lines[1], "2023-11-14 22:13:20")
	assert.Contains(t, lines[1], "actions=[edit,publish]")
	assert.Contains(t, lines[1], "some text")
}

func TestProgressPrinter(t *testing.T) {
	var buf bytes.Buffer
	print := progressPrinter(&buf)
	for _, p := range []int{0, 50, 50, 100, 100} {
		print(p)
	}
	assert.Equal(t, "\ruploading package:   0%\ruploading package:  50%\ruploading package: 100%\n", buf.String())
}

func TestPrintNotice(t *testing.T) {
	var buf bytes.Buffer
	printNotice(&buf, notice.Notice{Message: notice.Succeed})
	printNotice(&buf, notice.Notice{Message: "Please connect a wallet", Level: notice.LevelBlocking})
	assert.Equal(t, "» SUCCEED\n!! Please connect a wallet\n", buf.String())
}
