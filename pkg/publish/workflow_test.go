package publish

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/storacha/appstore/internal/mocks"
	"github.com/storacha/appstore/pkg/content"
	"github.com/storacha/appstore/pkg/content/local"
	"github.com/storacha/appstore/pkg/internal/testutil"
	"github.com/storacha/appstore/pkg/model"
	"github.com/storacha/appstore/pkg/notice"
	"github.com/storacha/appstore/pkg/registry"
	"github.com/storacha/appstore/pkg/session"
	"github.com/storacha/appstore/pkg/store/blobstore"
)

type call struct {
	method  string
	from    common.Address
	id      uint64
	name    string
	desc    string
	source  string
	icon    string
	status  model.Status
	asAdmin bool
}

type fakeRegistry struct {
	calls []call
	err   error
}

func (r *fakeRegistry) AddProject(ctx context.Context, from common.Address, name, descHash, sourceHash, iconHash string) (*registry.Receipt, error) {
	r.calls = append(r.calls, call{method: "addProject", from: from, name: name, desc: descHash, source: sourceHash, icon: iconHash})
	return r.receipt()
}

func (r *fakeRegistry) UpdateProject(ctx context.Context, from common.Address, id uint64, name, descHash, sourceHash, iconHash string) (*registry.Receipt, error) {
	r.calls = append(r.calls, call{method: "updateProject", from: from, id: id, name: name, desc: descHash, source: sourceHash, icon: iconHash})
	return r.receipt()
}

func (r *fakeRegistry) UpdateStatus(ctx context.Context, from common.Address, id uint64, status model.Status, asAdmin bool) (*registry.Receipt, error) {
	r.calls = append(r.calls, call{method: "updateStatus", from: from, id: id, status: status, asAdmin: asAdmin})
	return r.receipt()
}

func (r *fakeRegistry) RemoveProject(ctx context.Context, from common.Address, id uint64) (*registry.Receipt, error) {
	r.calls = append(r.calls, call{method: "removeProject", from: from, id: id})
	return r.receipt()
}

func (r *fakeRegistry) receipt() (*registry.Receipt, error) {
	if r.err != nil {
		return nil, r.err
	}
	return &registry.Receipt{TxHash: common.BytesToHash(testutil.RandomBytes(32))}, nil
}

// ui records busy and notice signals.
type ui struct {
	sets, clears int
	notices      []string
	blocking     []string
	// held marks a busy indicator owned by another action.
	held bool
}

func (u *ui) IsBusy() bool { return u.held || u.sets > u.clears }

func (u *ui) SetBusy(busy bool) {
	if busy {
		u.sets++
	} else {
		u.clears++
	}
}

func (u *ui) Notify(msg string)   { u.notices = append(u.notices, msg) }
func (u *ui) Blocking(msg string) { u.blocking = append(u.blocking, msg) }

func (u *ui) requirePaired(t *testing.T) {
	t.Helper()
	require.LessOrEqual(t, u.sets, 1)
	require.Equal(t, 1, u.clears)
}

type countingRefresher struct{ calls int }

func (r *countingRefresher) Refresh(ctx context.Context, st *session.State) error {
	r.calls++
	return nil
}

func memFile(name string, data []byte, declared int64) *File {
	return &File{
		Name: name,
		Size: declared,
		Open: func() (io.ReadCloser, error) { return io.NopCloser(bytes.NewReader(data)), nil },
	}
}

func hashOf(t *testing.T, data []byte) string {
	s := local.New(blobstore.NewMapBlobstore())
	return testutil.Must(s.Upload(context.Background(), "x", bytes.NewReader(data)))(t).String()
}

type fixture struct {
	reg     *fakeRegistry
	ui      *ui
	ref     *countingRefresher
	store   content.Store
	state   *session.State
	account common.Address
}

func newFixture(t *testing.T) *fixture {
	account := testutil.RandomAddress()
	return &fixture{
		reg:     &fakeRegistry{},
		ui:      &ui{},
		ref:     &countingRefresher{},
		store:   local.New(blobstore.NewMapBlobstore()),
		state:   session.NewState(account, big.NewInt(1)),
		account: account,
	}
}

func (f *fixture) workflow(opts ...Option) *Workflow {
	return New(f.reg, f.store, f.ui, f.ui, append([]Option{WithRefresher(f.ref)}, opts...)...)
}

func existingListing(t *testing.T, owner common.Address) *Existing {
	return &Existing{
		Listing: model.Listing{
			ID:              5,
			Name:            "Foo",
			DescriptionHash: hashOf(t, []byte("bar")),
			IconHash:        testutil.RandomCID().String(),
			SourceHash:      testutil.RandomCID().String(),
			Version:         1,
			Owner:           owner,
			Status:          model.StatusPending,
		},
		Description: "bar",
	}
}

func TestCreate(t *testing.T) {
	f := newFixture(t)
	w := f.workflow()

	icon := testutil.RandomBytes(128)
	pkg := testutil.RandomBytes(4096)
	form := &Form{Name: "Foo", Description: "bar", Icon: memFile("logo.png", icon, 128)}
	require.NoError(t, form.SetPackage(memFile("app.zip", pkg, 50<<20)))

	out, err := w.Publish(context.Background(), f.state, form, ModeCreate, nil)
	require.NoError(t, err)
	require.False(t, out.Skipped)
	require.NotNil(t, out.Receipt)

	require.Len(t, f.reg.calls, 1)
	c := f.reg.calls[0]
	require.Equal(t, "addProject", c.method)
	require.Equal(t, f.account, c.from)
	// the registry gets the plain name, its blob hash is kept in the outcome
	require.Equal(t, "Foo", c.name)
	require.Equal(t, hashOf(t, []byte("Foo")), out.Assets.NameHash)
	require.Equal(t, hashOf(t, []byte("bar")), c.desc)
	require.Equal(t, hashOf(t, icon), c.icon)
	require.Equal(t, hashOf(t, pkg), c.source)
	require.Equal(t, []string{NamePath, DescriptionPath, IconPath, PackagePath}, out.Assets.Uploaded)

	require.Equal(t, []string{notice.Succeed}, f.ui.notices)
	require.Equal(t, 1, f.ref.calls)
	require.Equal(t, Form{}, *form)
	f.ui.requirePaired(t)
}

func TestCreateIncomplete(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	f.store = mocks.NewMockStore(ctrl)
	w := f.workflow()

	form := &Form{Name: "Foo"}
	_, err := w.Publish(context.Background(), f.state, form, ModeCreate, nil)
	require.ErrorIs(t, err, ErrIncompleteForm)
	require.Contains(t, err.Error(), "icon is required")
	require.Empty(t, f.reg.calls)
	require.Empty(t, f.ui.notices)
	f.ui.requirePaired(t)
}

func TestUpdateNameOnly(t *testing.T) {
	f := newFixture(t)
	w := f.workflow()
	existing := existingListing(t, f.account)

	form := &Form{Name: "Foo2", Description: "bar"}
	out, err := w.Publish(context.Background(), f.state, form, ModeUpdate, existing)
	require.NoError(t, err)

	require.Len(t, f.reg.calls, 1)
	c := f.reg.calls[0]
	require.Equal(t, "updateProject", c.method)
	require.Equal(t, uint64(5), c.id)
	require.Equal(t, "Foo2", c.name)
	require.Equal(t, existing.Listing.IconHash, c.icon)
	require.Equal(t, existing.Listing.SourceHash, c.source)
	require.Equal(t, hashOf(t, []byte("bar")), c.desc)
	require.Equal(t, hashOf(t, []byte("Foo2")), out.Assets.NameHash)
	require.Equal(t, []string{NamePath, DescriptionPath}, out.Assets.Uploaded)

	// an update keeps the text fields
	require.Equal(t, "Foo2", form.Name)
	require.Equal(t, "bar", form.Description)
	require.Equal(t, []string{notice.Succeed}, f.ui.notices)
	f.ui.requirePaired(t)
}

func TestUpdateNoChange(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	// any call on the store fails the test
	f.store = mocks.NewMockStore(ctrl)
	w := f.workflow()

	form := &Form{Name: "Foo", Description: "bar"}
	out, err := w.Publish(context.Background(), f.state, form, ModeUpdate, existingListing(t, f.account))
	require.NoError(t, err)
	require.True(t, out.Skipped)
	require.Empty(t, f.reg.calls)
	require.Empty(t, f.ui.notices)
	require.Empty(t, f.ui.blocking)
	require.Zero(t, f.ref.calls)
	f.ui.requirePaired(t)
}

func TestUpdateTextUpload(t *testing.T) {
	icon := testutil.RandomBytes(64)

	t.Run("unconditional", func(t *testing.T) {
		f := newFixture(t)
		w := f.workflow()
		existing := existingListing(t, f.account)
		form := &Form{Name: "Foo", Description: "bar", Icon: memFile("i.png", icon, 64)}

		out, err := w.Publish(context.Background(), f.state, form, ModeUpdate, existing)
		require.NoError(t, err)
		require.Equal(t, []string{NamePath, DescriptionPath, IconPath}, out.Assets.Uploaded)
		// identical bytes give the stored hash back
		require.Equal(t, existing.Listing.DescriptionHash, f.reg.calls[0].desc)
	})

	t.Run("reuse", func(t *testing.T) {
		f := newFixture(t)
		w := f.workflow(WithTextReuse(true))
		existing := existingListing(t, f.account)
		existing.Listing.DescriptionHash = testutil.RandomCID().String()
		form := &Form{Name: "Foo", Description: "bar", Icon: memFile("i.png", icon, 64)}

		out, err := w.Publish(context.Background(), f.state, form, ModeUpdate, existing)
		require.NoError(t, err)
		require.Equal(t, []string{IconPath}, out.Assets.Uploaded)
		require.Empty(t, out.Assets.NameHash)
		require.Equal(t, existing.Listing.DescriptionHash, f.reg.calls[0].desc)
		require.Equal(t, hashOf(t, icon), f.reg.calls[0].icon)
		require.Equal(t, existing.Listing.SourceHash, f.reg.calls[0].source)
	})

	t.Run("reuse with changed text", func(t *testing.T) {
		f := newFixture(t)
		w := f.workflow(WithTextReuse(true))
		form := &Form{Name: "Foo", Description: "baz"}

		out, err := w.Publish(context.Background(), f.state, form, ModeUpdate, existingListing(t, f.account))
		require.NoError(t, err)
		require.Equal(t, []string{NamePath, DescriptionPath}, out.Assets.Uploaded)
		require.Equal(t, hashOf(t, []byte("baz")), f.reg.calls[0].desc)
	})
}

func TestUpdateRejectedWhenNotPending(t *testing.T) {
	f := newFixture(t)
	w := f.workflow()
	existing := existingListing(t, f.account)
	existing.Listing.Status = model.StatusPublished

	_, err := w.Publish(context.Background(), f.state, &Form{Name: "New", Description: "bar"}, ModeUpdate, existing)
	require.ErrorIs(t, err, ErrNotUpdatable)
	require.Empty(t, f.reg.calls)
	f.ui.requirePaired(t)
}

func TestPackageSizeGuard(t *testing.T) {
	require.NoError(t, CheckPackageSize(MaxPackageSize))
	require.NoError(t, CheckPackageSize(104857600))
	require.ErrorIs(t, CheckPackageSize(104857601), ErrPackageTooLarge)

	var form Form
	require.NoError(t, form.SetPackage(memFile("ok.zip", nil, 104857600)))
	require.NotNil(t, form.Package)
	require.ErrorIs(t, form.SetPackage(memFile("big.zip", nil, 104857601)), ErrPackageTooLarge)
	require.Nil(t, form.Package)

	f := newFixture(t)
	ctrl := gomock.NewController(t)
	f.store = mocks.NewMockStore(ctrl)
	w := f.workflow()

	oversized := &Form{Name: "Foo", Description: "bar", Icon: memFile("i.png", nil, 1), Package: memFile("big.zip", nil, 104857601)}
	_, err := w.Publish(context.Background(), f.state, oversized, ModeCreate, nil)
	require.ErrorIs(t, err, ErrPackageTooLarge)
	require.Empty(t, f.reg.calls)
	require.Len(t, f.ui.blocking, 1)
	require.Empty(t, f.ui.notices)
	f.ui.requirePaired(t)
}

func TestUploadFailureKeepsForm(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	f.store = store
	w := f.workflow()

	store.EXPECT().Upload(gomock.Any(), NamePath, gomock.Any()).Return(testutil.RandomCID(), nil)
	store.EXPECT().Upload(gomock.Any(), DescriptionPath, gomock.Any()).Return(testutil.RandomCID(), nil)
	store.EXPECT().Upload(gomock.Any(), IconPath, gomock.Any()).Return(testutil.RandomCID(), nil)
	store.EXPECT().Upload(gomock.Any(), PackagePath, gomock.Any(), gomock.Any()).Return(testutil.RandomCID(), errors.New("gateway timeout"))

	icon := memFile("i.png", []byte("i"), 1)
	pkg := memFile("a.zip", []byte("a"), 1)
	form := &Form{Name: "Foo", Description: "bar", Icon: icon, Package: pkg}
	_, err := w.Publish(context.Background(), f.state, form, ModeCreate, nil)
	require.Error(t, err)

	require.Empty(t, f.reg.calls)
	require.Equal(t, []string{notice.Fail}, f.ui.notices)
	require.Equal(t, Form{Name: "Foo", Description: "bar", Icon: icon, Package: pkg}, *form)
	require.Zero(t, f.ref.calls)
	f.ui.requirePaired(t)
}

func TestRegistryFailureKeepsForm(t *testing.T) {
	f := newFixture(t)
	f.reg.err = errors.New("execution reverted")
	w := f.workflow()

	form := &Form{Name: "Foo2", Description: "bar"}
	_, err := w.Publish(context.Background(), f.state, form, ModeUpdate, existingListing(t, f.account))
	require.Error(t, err)
	require.Len(t, f.reg.calls, 1)
	require.Equal(t, []string{notice.Fail}, f.ui.notices)
	require.Equal(t, "Foo2", form.Name)
	f.ui.requirePaired(t)
}

func TestPublishWithoutAccount(t *testing.T) {
	f := newFixture(t)
	f.state = session.NewState(common.Address{}, big.NewInt(1))
	w := f.workflow()

	_, err := w.Publish(context.Background(), f.state, &Form{Name: "Foo2", Description: "bar"}, ModeUpdate, existingListing(t, common.Address{}))
	require.ErrorIs(t, err, session.ErrNoWallet)
	require.Len(t, f.ui.blocking, 1)
	f.ui.requirePaired(t)
}

func TestPackageProgress(t *testing.T) {
	f := newFixture(t)
	var seen []int
	w := f.workflow(WithProgress(func(p int) { seen = append(seen, p) }))

	pkg := testutil.RandomBytes(10000)
	form := &Form{Name: "Foo", Description: "bar", Icon: memFile("i.png", []byte("i"), 1), Package: memFile("a.zip", pkg, int64(len(pkg)))}
	_, err := w.Publish(context.Background(), f.state, form, ModeCreate, nil)
	require.NoError(t, err)

	require.NotEmpty(t, seen)
	require.Equal(t, 100, seen[len(seen)-1])
	for i := 1; i < len(seen); i++ {
		require.GreaterOrEqual(t, seen[i], seen[i-1])
	}
}

func TestPercent(t *testing.T) {
	require.Equal(t, 0, Percent(0, 100))
	require.Equal(t, 33, Percent(1, 3))
	require.Equal(t, 50, Percent(50, 100))
	require.Equal(t, 100, Percent(100, 100))
	// a wrong declared size only skews the estimate
	require.Equal(t, 100, Percent(500, 100))
	require.Equal(t, 100, Percent(5, 0))
}

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()
	_, err := OpenFile(dir)
	require.Error(t, err)

	path := filepath.Join(dir, "app.zip")
	require.NoError(t, os.WriteFile(path, []byte("zip"), 0o644))
	file, err := OpenFile(path)
	require.NoError(t, err)
	require.Equal(t, "app.zip", file.Name)
	require.Equal(t, int64(3), file.Size)
	r, err := file.Open()
	require.NoError(t, err)
	defer r.Close()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "zip", string(b))
}

func TestPublishRefusedWhileBusy(t *testing.T) {
	f := newFixture(t)
	f.ui.held = true
	w := f.workflow()

	form := &Form{Name: "Foo", Description: "bar", Icon: memFile("logo.png", []byte{1}, 1), Package: memFile("app.zip", []byte{2}, 1)}
	_, err := w.Publish(context.Background(), f.state, form, ModeCreate, nil)
	require.ErrorIs(t, err, ErrBusy)
	require.Empty(t, f.reg.calls)
	require.Zero(t, f.ui.sets)
	require.Zero(t, f.ui.clears)
	require.Equal(t, "Foo", form.Name)
}

func TestPublishWithBoardReleasesBusy(t *testing.T) {
	f := newFixture(t)
	board := notice.NewBoard()
	w := New(f.reg, f.store, board, board)

	form := &Form{Name: "Foo", Description: "bar", Icon: memFile("logo.png", []byte{1}, 1), Package: memFile("app.zip", []byte{2}, 1)}
	_, err := w.Publish(context.Background(), f.state, form, ModeCreate, nil)
	require.NoError(t, err)
	require.False(t, board.IsBusy())

	board.SetBusy(true)
	_, err = w.Publish(context.Background(), f.state, &Form{Name: "Foo"}, ModeCreate, nil)
	require.ErrorIs(t, err, ErrBusy)
}
