package wallet

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/storacha/appstore/pkg/store/keystore"
)

func TestLocalWallet(t *testing.T) {
	ctx := context.Background()
	wlt, err := NewWallet(keystore.NewMemKeyStore())
	require.NoError(t, err)

	accounts, err := wlt.Accounts(ctx)
	require.NoError(t, err)
	require.Empty(t, accounts)

	privKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	addr, err := wlt.Import(ctx, &keystore.KeyInfo{PrivateKey: crypto.FromECDSA(privKey)})
	require.NoError(t, err)
	require.Equal(t, crypto.PubkeyToAddress(privKey.PublicKey), addr)

	generated, err := wlt.Generate(ctx)
	require.NoError(t, err)

	accounts, err = wlt.Accounts(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []common.Address{addr, generated}, accounts)

	has, err := wlt.Has(ctx, generated)
	require.NoError(t, err)
	require.True(t, has)

	t.Run("signs transactions recoverable to the account", func(t *testing.T) {
		chainID := big.NewInt(1337)
		signer := types.LatestSignerForChainID(chainID)
		tx := types.NewTx(&types.DynamicFeeTx{
			ChainID:   chainID,
			Nonce:     1,
			GasFeeCap: big.NewInt(2),
			GasTipCap: big.NewInt(1),
			Gas:       21000,
			To:        &common.Address{},
		})

		signed, err := wlt.SignTransaction(ctx, addr, signer, tx)
		require.NoError(t, err)

		from, err := types.Sender(signer, signed)
		require.NoError(t, err)
		require.Equal(t, addr, from)
	})

	t.Run("unknown account", func(t *testing.T) {
		_, err := wlt.SignTransaction(ctx, common.HexToAddress("0x01"), types.HomesteadSigner{}, types.NewTx(&types.LegacyTx{}))
		require.Error(t, err)
	})
}
