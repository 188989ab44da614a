package main

import (
	"os"

	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"

	"github.com/storacha/appstore/cmd"
	"github.com/storacha/appstore/internal/telemetry"
)

var log = logging.Logger("appstore")

func main() {
	app := &cli.App{
		Name:   "appstore",
		Usage:  "Browse and publish listings in the on-chain app registry.",
		Flags:  cmd.GlobalFlags,
		Before: cmd.SetupLogging,
		Commands: []*cli.Command{
			cmd.ListCmd,
			cmd.WatchCmd,
			cmd.AddCmd,
			cmd.UpdateCmd,
			cmd.PublishCmd,
			cmd.RemoveCmd,
			cmd.FetchCmd,
			cmd.WalletCmd,
			cmd.VersionCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		telemetry.ReportError(err)
		log.Fatal(err)
	}
}
