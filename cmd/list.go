package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/storacha/appstore/pkg/config"
	"github.com/storacha/appstore/pkg/session"
)

var ListCmd = &cli.Command{
	Name:  "list",
	Usage: "Render the listings visible to the connected account once.",
	Action: func(cCtx *cli.Context) error {
		e, err := setupEnv(cCtx, os.Stdout)
		if err != nil {
			return err
		}
		defer e.Close()

		if _, err := e.poller.Poll(cCtx.Context); err != nil {
			return fmt.Errorf("loading listings: %w", err)
		}
		return nil
	},
}

var WatchCmd = &cli.Command{
	Name:  "watch",
	Usage: "Keep the listing view in sync with the registry until interrupted. SIGHUP re-reads the configured account.",
	Action: func(cCtx *cli.Context) error {
		ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
		defer stop()

		e, err := setupEnv(cCtx, os.Stdout)
		if err != nil {
			return err
		}
		defer e.Close()

		watcher := session.NewChainWatcher(e.registry, e.state,
			session.WithInterval(e.cfg.Sync.PollInterval),
			session.OnChainChanged(func(ctx context.Context) {
				log.Warnw("chain changed, reloading", "chain", e.state.ChainID())
				if err := e.poller.Refresh(ctx, e.state); err != nil {
					log.Errorw("reload after chain change failed", "error", err)
				}
			}),
		)

		PrintHero(e.state.Account(), e.state.ChainID(), e.cfg.Chain.Contract)

		hup := make(chan os.Signal, 1)
		signal.Notify(hup, syscall.SIGHUP)
		defer signal.Stop(hup)

		e.poller.Start(ctx)
		watcher.Start(ctx)

	wait:
		for {
			select {
			case <-ctx.Done():
				break wait
			case <-hup:
				cfg, err := config.LoadConfig(cCtx)
				if err != nil {
					log.Errorw("reloading config", "error", err)
					continue
				}
				if _, err := e.switchAccount(ctx, cfg.Wallet.Account); err != nil {
					log.Errorw("switching account", "error", err)
				}
			}
		}

		stopCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		if err := watcher.Stop(stopCtx); err != nil {
			return fmt.Errorf("stopping chain watcher: %w", err)
		}
		if err := e.poller.Stop(stopCtx); err != nil {
			return fmt.Errorf("stopping poller: %w", err)
		}
		return nil
	},
}
