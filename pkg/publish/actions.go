package publish

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/storacha/appstore/pkg/model"
	"github.com/storacha/appstore/pkg/notice"
	"github.com/storacha/appstore/pkg/session"
)

// ErrForbidden is returned when the session account is neither the listing
// owner nor the registry admin.
var ErrForbidden = errors.New("not the listing owner or admin")

// ErrBusy is returned when another workflow holds the busy indicator.
var ErrBusy = errors.New("another action is in progress")

// PublishListing moves a pending listing to published. The admin entry point
// is used when the session account is the registry admin.
func (w *Workflow) PublishListing(ctx context.Context, st *session.State, l model.Listing) error {
	return w.changeStatus(ctx, st, l, model.StatusPublished)
}

// RemoveListing moves a published listing to removed.
func (w *Workflow) RemoveListing(ctx context.Context, st *session.State, l model.Listing) error {
	return w.changeStatus(ctx, st, l, model.StatusRemoved)
}

func (w *Workflow) changeStatus(ctx context.Context, st *session.State, l model.Listing, to model.Status) error {
	if w.busy.IsBusy() {
		return ErrBusy
	}
	w.busy.SetBusy(true)
	defer w.busy.SetBusy(false)

	actor := st.Account()
	if actor == (common.Address{}) {
		w.notifier.Blocking("Please connect a wallet")
		return session.ErrNoWallet
	}
	if !l.CanAct(actor, st.Admin()) {
		return fmt.Errorf("listing %d: %w", l.ID, ErrForbidden)
	}
	if err := l.Transition(to); err != nil {
		return fmt.Errorf("listing %d: %w", l.ID, err)
	}

	var err error
	if to == model.StatusRemoved {
		_, err = w.registry.RemoveProject(ctx, actor, l.ID)
	} else {
		_, err = w.registry.UpdateStatus(ctx, actor, l.ID, to, st.IsAdmin())
	}
	if err != nil {
		log.Errorw("failed to change listing status", "id", l.ID, "to", to, "error", err)
		w.notifier.Notify(notice.Fail)
		return err
	}

	log.Infow("changed listing status", "id", l.ID, "from", l.Status, "to", to, "admin", st.IsAdmin())
	w.refresh(ctx, st)
	w.notifier.Notify(notice.Succeed)
	return nil
}
