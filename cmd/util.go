package cmd

import (
	"fmt"
	"math/big"
	"os"
	"path"

	"github.com/ethereum/go-ethereum/common"
	leveldb "github.com/ipfs/go-ds-leveldb"
	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"

	"github.com/storacha/appstore/pkg/build"
	"github.com/storacha/appstore/pkg/store/keystore"
	"github.com/storacha/appstore/pkg/wallet"
)

var log = logging.Logger("cmd")

const WalletDir = "wallet"

// SetupLogging applies --log-level to every subsystem.
func SetupLogging(cCtx *cli.Context) error {
	if err := logging.SetLogLevel("*", cCtx.String("log-level")); err != nil {
		return fmt.Errorf("setting log level: %w", err)
	}
	return nil
}

func PrintHero(account common.Address, chainID *big.Int, contract string) {
	fmt.Printf(`
   0000    000000   000000    0000000  00000000   0000000   000000   00000000
  00  00   00   00  00   00  00           00     00     00  00   00  00
 00    00  000000   000000    000000      00     00     00  000000   000000
 00000000  00       00             00     00     00     00  00  00   00
 00    00  00       00       0000000      00      0000000   00   00  00000000

🔥 App Store %s
⛓  chain %s registry %s
👛 %s
🚀 Ready!
`, build.Version, chainID, contract, account.Hex())
}

func mkdirp(dirpath ...string) (string, error) {
	dir := path.Join(dirpath...)
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return "", fmt.Errorf("creating directory: %s: %w", dir, err)
	}
	return dir, nil
}

// openWallet opens the leveldb backed keystore under dataDir. The returned
// close func releases the datastore.
func openWallet(dataDir string) (*wallet.LocalWallet, func() error, error) {
	walletDir, err := mkdirp(dataDir, WalletDir)
	if err != nil {
		return nil, nil, err
	}

	walletDs, err := leveldb.NewDatastore(walletDir, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("opening wallet datastore: %w", err)
	}

	keyStore, err := keystore.NewKeyStore(walletDs)
	if err != nil {
		walletDs.Close()
		return nil, nil, err
	}

	wlt, err := wallet.NewWallet(keyStore)
	if err != nil {
		walletDs.Close()
		return nil, nil, err
	}
	return wlt, walletDs.Close, nil
}
