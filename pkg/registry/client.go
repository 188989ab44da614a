// Package registry is the client for the on-chain app registry.
package registry

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	logging "github.com/ipfs/go-log/v2"

	"github.com/storacha/appstore/pkg/model"
	"github.com/storacha/appstore/pkg/registry/contract"
	"github.com/storacha/appstore/pkg/wallet"
)

var log = logging.Logger("registry")

var (
	// ErrReverted is returned when a confirmed transaction did not succeed.
	ErrReverted = errors.New("transaction reverted")
	// ErrNoWallet is returned when a write is attempted without a signer.
	ErrNoWallet = errors.New("no wallet configured")
)

// Backend is the chain connection used for chain id lookups and receipts.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// Receipt describes a submitted registry write.
type Receipt struct {
	TxHash common.Hash
	// Listing is the entry emitted by the contract. Only set when the client
	// waits for confirmation.
	Listing *model.Listing
}

type Client struct {
	contract contract.Registry
	backend  Backend
	wallet   wallet.Wallet
	chainID  *big.Int
	confirm  bool
	closer   func()
}

type Option func(*Client)

// WithWallet sets the signer for registry writes.
func WithWallet(w wallet.Wallet) Option {
	return func(c *Client) {
		c.wallet = w
	}
}

// WithBackend sets the chain connection.
func WithBackend(b Backend) Option {
	return func(c *Client) {
		c.backend = b
	}
}

// WithChainID pins the chain id used for signing instead of asking the backend.
func WithChainID(id *big.Int) Option {
	return func(c *Client) {
		c.chainID = id
	}
}

// WithConfirm makes writes wait until the transaction is mined.
func WithConfirm(confirm bool) Option {
	return func(c *Client) {
		c.confirm = confirm
	}
}

func New(registry contract.Registry, opts ...Option) *Client {
	c := &Client{contract: registry}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dial connects to the RPC endpoint and binds the registry at address.
func Dial(ctx context.Context, rpcURL string, address common.Address, opts ...Option) (*Client, error) {
	eth, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", rpcURL, err)
	}
	reg, err := contract.New(address, eth)
	if err != nil {
		eth.Close()
		return nil, fmt.Errorf("binding registry contract: %w", err)
	}
	c := New(reg, append([]Option{WithBackend(eth)}, opts...)...)
	c.closer = eth.Close
	return c, nil
}

// Close releases the RPC connection opened by Dial.
func (c *Client) Close() {
	if c.closer != nil {
		c.closer()
	}
}

// ChainID returns the chain the client signs for.
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	if c.chainID != nil {
		return c.chainID, nil
	}
	if c.backend == nil {
		return nil, errors.New("chain id unknown: no backend")
	}
	id, err := c.backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting chain id: %w", err)
	}
	return id, nil
}

// GetProjects returns the listings in [start, end) in registry storage order.
func (c *Client) GetProjects(ctx context.Context, start, end uint64) ([]model.Listing, error) {
	projects, err := c.contract.GetProjects(&bind.CallOpts{Context: ctx}, new(big.Int).SetUint64(start), new(big.Int).SetUint64(end))
	if err != nil {
		return nil, fmt.Errorf("getting projects: %w", err)
	}
	listings := make([]model.Listing, 0, len(projects))
	for _, p := range projects {
		listings = append(listings, ListingFromProject(p))
	}
	return listings, nil
}

func (c *Client) GetProjectCount(ctx context.Context) (uint64, error) {
	n, err := c.contract.GetProjectCount(&bind.CallOpts{Context: ctx})
	if err != nil {
		return 0, fmt.Errorf("getting project count: %w", err)
	}
	return n.Uint64(), nil
}

func (c *Client) GetAdmin(ctx context.Context) (common.Address, error) {
	admin, err := c.contract.Admin(&bind.CallOpts{Context: ctx})
	if err != nil {
		return common.Address{}, fmt.Errorf("getting admin: %w", err)
	}
	return admin, nil
}

// GetLastUpdateTime returns the registry wide change marker.
func (c *Client) GetLastUpdateTime(ctx context.Context) (*big.Int, error) {
	t, err := c.contract.LatestUpdateTime(&bind.CallOpts{Context: ctx})
	if err != nil {
		return nil, fmt.Errorf("getting latest update time: %w", err)
	}
	return t, nil
}

func (c *Client) AddProject(ctx context.Context, from common.Address, name, descHash, sourceHash, iconHash string) (*Receipt, error) {
	opts, err := c.transactOpts(ctx, from)
	if err != nil {
		return nil, err
	}
	tx, err := c.contract.AddProject(opts, name, descHash, sourceHash, iconHash)
	if err != nil {
		return nil, fmt.Errorf("sending addProject: %w", err)
	}
	return c.finish(ctx, tx, "AddProject")
}

func (c *Client) UpdateProject(ctx context.Context, from common.Address, id uint64, name, descHash, sourceHash, iconHash string) (*Receipt, error) {
	opts, err := c.transactOpts(ctx, from)
	if err != nil {
		return nil, err
	}
	tx, err := c.contract.UpdateProject(opts, new(big.Int).SetUint64(id), name, descHash, sourceHash, iconHash)
	if err != nil {
		return nil, fmt.Errorf("sending updateProject: %w", err)
	}
	return c.finish(ctx, tx, "UpdateProject")
}

// UpdateStatus changes the status of a listing, through the admin entry point
// when asAdmin is set and the owner entry point otherwise.
func (c *Client) UpdateStatus(ctx context.Context, from common.Address, id uint64, status model.Status, asAdmin bool) (*Receipt, error) {
	opts, err := c.transactOpts(ctx, from)
	if err != nil {
		return nil, err
	}
	var tx *types.Transaction
	if asAdmin {
		tx, err = c.contract.UpdateProjectStatusByAdmin(opts, new(big.Int).SetUint64(id), uint8(status))
	} else {
		tx, err = c.contract.UpdateProjectStatusByOwner(opts, new(big.Int).SetUint64(id), uint8(status))
	}
	if err != nil {
		return nil, fmt.Errorf("sending status update: %w", err)
	}
	return c.finish(ctx, tx, "ProjectStatusChanged")
}

func (c *Client) RemoveProject(ctx context.Context, from common.Address, id uint64) (*Receipt, error) {
	opts, err := c.transactOpts(ctx, from)
	if err != nil {
		return nil, err
	}
	tx, err := c.contract.RemoveProject(opts, new(big.Int).SetUint64(id))
	if err != nil {
		return nil, fmt.Errorf("sending removeProject: %w", err)
	}
	return c.finish(ctx, tx, "RemovedProject")
}

func (c *Client) transactOpts(ctx context.Context, from common.Address) (*bind.TransactOpts, error) {
	if c.wallet == nil {
		return nil, ErrNoWallet
	}
	chainID, err := c.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	signer := types.LatestSignerForChainID(chainID)
	return &bind.TransactOpts{
		From:    from,
		Context: ctx,
		Signer: func(addr common.Address, tx *types.Transaction) (*types.Transaction, error) {
			if addr != from {
				return nil, bind.ErrNotAuthorized
			}
			return c.wallet.SignTransaction(ctx, addr, signer, tx)
		},
	}, nil
}

func (c *Client) finish(ctx context.Context, tx *types.Transaction, event string) (*Receipt, error) {
	log.Infow("sent transaction", "hash", tx.Hash(), "event", event)
	r := &Receipt{TxHash: tx.Hash()}
	if !c.confirm {
		return r, nil
	}
	if c.backend == nil {
		return nil, errors.New("cannot confirm transaction: no backend")
	}
	receipt, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		return nil, fmt.Errorf("waiting for %s: %w", tx.Hash(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%s: %w", tx.Hash(), ErrReverted)
	}
	p, err := contract.ProjectFromReceipt(receipt, event)
	if err != nil {
		log.Warnw("confirmed transaction without registry event", "hash", tx.Hash(), "error", err)
		return r, nil
	}
	l := ListingFromProject(p)
	r.Listing = &l
	log.Infow("confirmed transaction", "hash", tx.Hash(), "block", receipt.BlockNumber, "id", l.ID)
	return r, nil
}

// ListingFromProject converts a contract tuple. Times are unix seconds.
func ListingFromProject(p contract.Project) model.Listing {
	return model.Listing{
		ID:              bigUint(p.Id),
		Name:            p.Name,
		DescriptionHash: p.Desc,
		SourceHash:      p.Source,
		IconHash:        p.Icon,
		Version:         bigUint(p.Version),
		UUID:            p.Uuid,
		Owner:           p.Owner,
		Status:          model.Status(p.Status),
		CreateTime:      time.Unix(int64(bigUint(p.CreateTime)), 0),
		UpdateTime:      time.Unix(int64(bigUint(p.UpdateTime)), 0),
	}
}

func bigUint(v *big.Int) uint64 {
	if v == nil {
		return 0
	}
	return v.Uint64()
}
