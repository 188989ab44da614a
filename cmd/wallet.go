package cmd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	ethkeystore "github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/urfave/cli/v2"

	"github.com/storacha/appstore/pkg/config"
	"github.com/storacha/appstore/pkg/store/keystore"
)

var WalletCmd = &cli.Command{
	Name:  "wallet",
	Usage: "Manage wallet",
	Subcommands: []*cli.Command{
		walletImport,
		walletNew,
		walletList,
	},
}

var walletImport = &cli.Command{
	Name:      "import",
	Usage:     "import keys",
	ArgsUsage: "<key file>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "format",
			Usage: "specify input format for key (hex, json, keyfile)",
			Value: "hex",
		},
		&cli.StringFlag{
			Name:    "password",
			Usage:   "password for an encrypted keyfile",
			EnvVars: []string{"APPSTORE_KEY_PASSWORD"},
		},
	},

	Action: func(cctx *cli.Context) error {
		if cctx.Args().Len() != 1 {
			return fmt.Errorf("expected a key file path")
		}
		inpdata, err := os.ReadFile(cctx.Args().First())
		if err != nil {
			return err
		}

		privateKey, err := decodeKey(inpdata, cctx.String("format"), cctx.String("password"))
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig(cctx)
		if err != nil {
			return err
		}
		wlt, closeWallet, err := openWallet(cfg.Wallet.DataDir)
		if err != nil {
			return err
		}
		defer closeWallet()

		addr, err := wlt.Import(cctx.Context, &keystore.KeyInfo{PrivateKey: privateKey})
		if err != nil {
			return err
		}

		fmt.Printf("imported wallet %s successfully!\n", addr)
		return nil
	},
}

var walletNew = &cli.Command{
	Name:  "new",
	Usage: "Generate a new account",
	Action: func(cctx *cli.Context) error {
		cfg, err := config.LoadConfig(cctx)
		if err != nil {
			return err
		}
		wlt, closeWallet, err := openWallet(cfg.Wallet.DataDir)
		if err != nil {
			return err
		}
		defer closeWallet()

		addr, err := wlt.Generate(cctx.Context)
		if err != nil {
			return err
		}
		fmt.Printf("generated wallet %s\n", addr)
		return nil
	},
}

var walletList = &cli.Command{
	Name:  "list",
	Usage: "List wallet address",
	Action: func(cctx *cli.Context) error {
		cfg, err := config.LoadConfig(cctx)
		if err != nil {
			return err
		}
		wlt, closeWallet, err := openWallet(cfg.Wallet.DataDir)
		if err != nil {
			return err
		}
		defer closeWallet()

		kis, err := wlt.List(cctx.Context)
		if err != nil {
			return err
		}

		for _, k := range kis {
			fmt.Println("Address: ", k.Address.String())
		}

		return nil
	},
}

// decodeKey extracts a raw secp256k1 private key from key file contents.
func decodeKey(data []byte, format, password string) ([]byte, error) {
	switch format {
	case "hex":
		s := strings.TrimPrefix(strings.TrimSpace(string(data)), "0x")
		key, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("decoding hex key: %w", err)
		}
		if _, err := crypto.ToECDSA(key); err != nil {
			return nil, fmt.Errorf("invalid private key: %w", err)
		}
		return key, nil
	case "json":
		var ki keystore.KeyInfo
		if err := json.Unmarshal(data, &ki); err != nil {
			return nil, fmt.Errorf("parsing key json: %w", err)
		}
		if _, err := crypto.ToECDSA(ki.PrivateKey); err != nil {
			return nil, fmt.Errorf("invalid private key: %w", err)
		}
		return ki.PrivateKey, nil
	case "keyfile":
		key, err := ethkeystore.DecryptKey(data, password)
		if err != nil {
			return nil, fmt.Errorf("decrypting keyfile: %w", err)
		}
		return crypto.FromECDSA(key.PrivateKey), nil
	default:
		return nil, fmt.Errorf("unrecognized format: %s", format)
	}
}
