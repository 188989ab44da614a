// Package publish turns a filled in form into a single registry write,
// uploading only what the write needs, and drives listing status changes.
package publish

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	logging "github.com/ipfs/go-log/v2"

	"github.com/storacha/appstore/pkg/content"
	"github.com/storacha/appstore/pkg/model"
	"github.com/storacha/appstore/pkg/notice"
	"github.com/storacha/appstore/pkg/registry"
	"github.com/storacha/appstore/pkg/session"
)

var log = logging.Logger("publish")

// Registry is the write side of the registry.
type Registry interface {
	AddProject(ctx context.Context, from common.Address, name, descHash, sourceHash, iconHash string) (*registry.Receipt, error)
	UpdateProject(ctx context.Context, from common.Address, id uint64, name, descHash, sourceHash, iconHash string) (*registry.Receipt, error)
	UpdateStatus(ctx context.Context, from common.Address, id uint64, status model.Status, asAdmin bool) (*registry.Receipt, error)
	RemoveProject(ctx context.Context, from common.Address, id uint64) (*registry.Receipt, error)
}

type Refresher interface {
	Refresh(ctx context.Context, st *session.State) error
}

// Assets are the hashes a registry write is made from.
type Assets struct {
	NameHash        string
	DescriptionHash string
	IconHash        string
	SourceHash      string
	// Uploaded lists the blob paths uploaded while resolving.
	Uploaded []string
}

type Outcome struct {
	// Skipped is set when an update changed nothing and no call was made.
	Skipped bool
	Assets  Assets
	Receipt *registry.Receipt
}

type Workflow struct {
	registry  Registry
	content   content.Store
	refresher Refresher
	busy      notice.Busy
	notifier  notice.Notifier
	reuseText bool
	progress  func(percent int)
}

type Option func(*Workflow)

// WithTextReuse skips uploading the name and description on update when they
// are unchanged, reusing the stored description hash.
func WithTextReuse(reuse bool) Option {
	return func(w *Workflow) {
		w.reuseText = reuse
	}
}

// WithProgress receives package upload progress in whole percent.
func WithProgress(fn func(percent int)) Option {
	return func(w *Workflow) {
		w.progress = fn
	}
}

// WithRefresher sets what runs after a successful write.
func WithRefresher(r Refresher) Option {
	return func(w *Workflow) {
		w.refresher = r
	}
}

func New(reg Registry, store content.Store, busy notice.Busy, notifier notice.Notifier, opts ...Option) *Workflow {
	w := &Workflow{
		registry: reg,
		content:  store,
		busy:     busy,
		notifier: notifier,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Publish submits form as a new listing or as an update of existing. The busy
// indicator is held for the whole call. On failure the form is left as it was
// so the user can retry.
func (w *Workflow) Publish(ctx context.Context, st *session.State, form *Form, mode Mode, existing *Existing) (Outcome, error) {
	if w.busy.IsBusy() {
		return Outcome{}, ErrBusy
	}
	w.busy.SetBusy(true)
	defer w.busy.SetBusy(false)

	changed, err := form.validate(mode, existing)
	if err != nil {
		if errors.Is(err, ErrPackageTooLarge) {
			w.notifier.Blocking("The package must be smaller than 100M")
		}
		return Outcome{}, err
	}
	if !changed {
		log.Debugw("nothing changed, skipping update", "id", existing.Listing.ID)
		return Outcome{Skipped: true}, nil
	}

	from := st.Account()
	if from == (common.Address{}) {
		w.notifier.Blocking("Please connect a wallet")
		return Outcome{}, session.ErrNoWallet
	}

	assets, err := w.resolveAssets(ctx, form, mode, existing)
	if err != nil {
		log.Errorw("failed to upload assets", "mode", mode, "error", err)
		w.notifier.Notify(notice.Fail)
		return Outcome{Assets: assets}, err
	}

	var receipt *registry.Receipt
	switch mode {
	case ModeCreate:
		receipt, err = w.registry.AddProject(ctx, from, form.Name, assets.DescriptionHash, assets.SourceHash, assets.IconHash)
	case ModeUpdate:
		receipt, err = w.registry.UpdateProject(ctx, from, existing.Listing.ID, form.Name, assets.DescriptionHash, assets.SourceHash, assets.IconHash)
	}
	if err != nil {
		log.Errorw("failed to submit listing", "mode", mode, "error", err)
		w.notifier.Notify(notice.Fail)
		return Outcome{Assets: assets}, err
	}

	log.Infow("submitted listing", "mode", mode, "tx", receipt.TxHash, "name_hash", assets.NameHash, "uploaded", assets.Uploaded)
	form.Reset(mode)
	w.refresh(ctx, st)
	w.notifier.Notify(notice.Succeed)
	return Outcome{Assets: assets, Receipt: receipt}, nil
}

// resolveAssets uploads the blobs the write needs and reuses stored hashes for
// everything the user did not replace.
func (w *Workflow) resolveAssets(ctx context.Context, form *Form, mode Mode, existing *Existing) (Assets, error) {
	var a Assets
	update := mode == ModeUpdate && existing != nil

	if update && w.reuseText && form.Name == existing.Listing.Name && form.Description == existing.Description {
		a.DescriptionHash = existing.Listing.DescriptionHash
	} else {
		c, err := w.content.Upload(ctx, NamePath, strings.NewReader(form.Name))
		if err != nil {
			return a, fmt.Errorf("uploading name: %w", err)
		}
		a.NameHash = c.String()
		a.Uploaded = append(a.Uploaded, NamePath)

		c, err = w.content.Upload(ctx, DescriptionPath, strings.NewReader(form.Description))
		if err != nil {
			return a, fmt.Errorf("uploading description: %w", err)
		}
		a.DescriptionHash = c.String()
		a.Uploaded = append(a.Uploaded, DescriptionPath)
	}

	if form.Icon != nil {
		h, err := w.uploadFile(ctx, IconPath, form.Icon)
		if err != nil {
			return a, fmt.Errorf("uploading icon: %w", err)
		}
		a.IconHash = h
		a.Uploaded = append(a.Uploaded, IconPath)
	} else if update {
		a.IconHash = existing.Listing.IconHash
	}

	if form.Package != nil {
		size := form.Package.Size
		h, err := w.uploadFile(ctx, PackagePath, form.Package, content.WithProgress(func(n uint64) {
			w.reportProgress(Percent(n, size))
		}))
		if err != nil {
			return a, fmt.Errorf("uploading package: %w", err)
		}
		a.SourceHash = h
		a.Uploaded = append(a.Uploaded, PackagePath)
	} else if update {
		a.SourceHash = existing.Listing.SourceHash
	}
	return a, nil
}

func (w *Workflow) uploadFile(ctx context.Context, path string, f *File, opts ...content.UploadOption) (string, error) {
	r, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", f.Name, err)
	}
	defer r.Close()
	c, err := w.content.Upload(ctx, path, r, opts...)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

func (w *Workflow) reportProgress(p int) {
	if w.progress != nil {
		w.progress(p)
	}
}

func (w *Workflow) refresh(ctx context.Context, st *session.State) {
	if w.refresher == nil {
		return
	}
	if err := w.refresher.Refresh(ctx, st); err != nil {
		log.Warnw("failed to refresh after submit", "error", err)
	}
}

// Percent is floor(100*done/total) capped at 100. An unknown total reports
// complete.
func Percent(done uint64, total int64) int {
	if total <= 0 {
		return 100
	}
	p := done * 100 / uint64(total)
	if p > 100 {
		return 100
	}
	return int(p)
}
