package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v2"

	"github.com/storacha/appstore/internal/telemetry"
	"github.com/storacha/appstore/pkg/catalog"
	"github.com/storacha/appstore/pkg/config"
	"github.com/storacha/appstore/pkg/content"
	"github.com/storacha/appstore/pkg/notice"
	"github.com/storacha/appstore/pkg/poller"
	"github.com/storacha/appstore/pkg/publish"
	"github.com/storacha/appstore/pkg/registry"
	"github.com/storacha/appstore/pkg/render"
	"github.com/storacha/appstore/pkg/session"
	"github.com/storacha/appstore/pkg/wallet"
)

// env is everything a command needs, wired from the loaded config.
type env struct {
	cfg      *config.Config
	wallet   wallet.Wallet
	registry *registry.Client
	content  content.Store
	state    *session.State
	board    *notice.Board
	catalog  *catalog.Catalog
	poller   *poller.Poller
	workflow *publish.Workflow

	closers []func() error
}

// setupEnv loads the config and connects the wallet, registry and content
// store. Without any wallet account the session browses anonymously and
// writes are refused by the workflow.
func setupEnv(cCtx *cli.Context, out io.Writer) (*env, error) {
	cfg, err := config.LoadConfig(cCtx)
	if err != nil {
		return nil, err
	}
	e := &env{cfg: cfg}

	if err := telemetry.SetupErrorReporting(cfg.Telemetry.SentryDSN, cfg.Telemetry.Environment); err != nil {
		return nil, err
	}

	wlt, closeWallet, err := openWallet(cfg.Wallet.DataDir)
	if err != nil {
		return nil, err
	}
	e.closers = append(e.closers, closeWallet)
	e.wallet = wlt

	opts := []registry.Option{
		registry.WithWallet(wlt),
		registry.WithConfirm(cfg.Chain.Confirm),
	}
	if cfg.Chain.ChainID != 0 {
		opts = append(opts, registry.WithChainID(new(big.Int).SetUint64(cfg.Chain.ChainID)))
	}
	reg, err := registry.Dial(cCtx.Context, cfg.Chain.RPCURL, common.HexToAddress(cfg.Chain.Contract), opts...)
	if err != nil {
		e.Close()
		return nil, err
	}
	e.registry = reg
	e.closers = append(e.closers, func() error { reg.Close(); return nil })

	var account common.Address
	if cfg.Wallet.Account != "" {
		account = common.HexToAddress(cfg.Wallet.Account)
	}
	st, err := session.Connect(cCtx.Context, wlt, reg, account)
	if err != nil {
		if !errors.Is(err, session.ErrNoWallet) || account != (common.Address{}) {
			e.Close()
			return nil, err
		}
		chainID, cerr := reg.ChainID(cCtx.Context)
		if cerr != nil {
			e.Close()
			return nil, cerr
		}
		log.Warn("wallet has no accounts, browsing without one (see `appstore wallet new`)")
		st = session.NewState(common.Address{}, chainID)
	}
	e.state = st

	store, closeStore, err := newContentStore(cCtx.Context, cfg)
	if err != nil {
		e.Close()
		return nil, err
	}
	e.content = store
	e.closers = append(e.closers, closeStore)

	e.board = notice.NewBoard(
		notice.WithTTL(cfg.Publish.NoticeTTL),
		notice.OnPost(func(n notice.Notice) { printNotice(os.Stderr, n) }),
	)

	e.catalog = catalog.New(reg, store, newTerminalSink(out),
		catalog.WithRenderPace(cfg.Sync.RenderPace),
		catalog.WithPageSize(cfg.Sync.PageSize),
	)
	e.poller = poller.New(reg, e.catalog, st,
		poller.WithInterval(cfg.Sync.PollInterval),
		poller.OnError(telemetry.ReportError),
	)
	e.workflow = publish.New(reg, store, e.board, e.board,
		publish.WithTextReuse(cfg.Publish.ReuseText),
		publish.WithRefresher(e.poller),
		publish.WithProgress(progressPrinter(os.Stderr)),
	)
	return e, nil
}

// switchAccount resolves the configured account again and moves the session
// to it. Moving resets the sync marker, so the next poll re-renders for the
// new viewer.
func (e *env) switchAccount(ctx context.Context, configured string) (bool, error) {
	var want common.Address
	if configured != "" {
		want = common.HexToAddress(configured)
	}
	next, err := session.ResolveAccount(ctx, e.wallet, want)
	if err != nil {
		return false, err
	}
	prev := e.state.Account()
	if next == prev {
		return false, nil
	}
	log.Infow("account changed", "from", prev, "to", next)
	e.state.SetAccount(next)
	return true, nil
}

// Close releases everything setupEnv opened, last opened first.
func (e *env) Close() error {
	var errs error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i](); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	e.closers = nil
	return errs
}

// progressPrinter redraws a single progress line, skipping repeats.
func progressPrinter(w io.Writer) func(percent int) {
	last := -1
	return func(percent int) {
		if percent == last {
			return
		}
		last = percent
		fmt.Fprintf(w, "\ruploading package: %3d%%", percent)
		if percent >= 100 {
			fmt.Fprintln(w)
		}
	}
}

func printNotice(w io.Writer, n notice.Notice) {
	if n.Level == notice.LevelBlocking {
		fmt.Fprintf(w, "!! %s\n", n.Message)
		return
	}
	fmt.Fprintf(w, "» %s\n", n.Message)
}

// terminalSink prints each rendered listing as a line. A reset starts a new
// block so a refreshed catalog reads top to bottom.
type terminalSink struct {
	mu  sync.Mutex
	out io.Writer
}

var _ catalog.Sink = (*terminalSink)(nil)

func newTerminalSink(out io.Writer) *terminalSink {
	return &terminalSink{out: out}
}

func (s *terminalSink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.out, "----")
}

func (s *terminalSink) Append(v render.View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.out, v.String())
}
