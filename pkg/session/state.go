// Package session holds the per-run state shared by the poller, the catalog
// and the publish workflow: the connected account, the cached registry admin,
// the chain id and the last seen registry update marker.
package session

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	logging "github.com/ipfs/go-log/v2"

	"github.com/storacha/appstore/pkg/wallet"
)

var log = logging.Logger("session")

// ErrNoWallet is returned when no account is available to connect with.
var ErrNoWallet = errors.New("no wallet account available")

// SyncMarker is the last registry update time the client has rendered. An
// unset marker differs from every value. Every Reset starts a new epoch so a
// refresh that raced with a reset cannot advance the marker.
type SyncMarker struct {
	mu    sync.Mutex
	value *big.Int
	epoch uint64
}

func (m *SyncMarker) Set(v *big.Int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v == nil {
		m.value = nil
		return
	}
	m.value = new(big.Int).Set(v)
}

// Changed reports whether v differs from the stored marker.
func (m *SyncMarker) Changed(v *big.Int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.value == nil || v == nil {
		return true
	}
	return m.value.Cmp(v) != 0
}

func (m *SyncMarker) IsSet() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value != nil
}

func (m *SyncMarker) Value() *big.Int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.value == nil {
		return nil
	}
	return new(big.Int).Set(m.value)
}

// Epoch identifies the marker's reset generation.
func (m *SyncMarker) Epoch() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.epoch
}

// Advance sets the marker to v unless it was reset since epoch was read.
func (m *SyncMarker) Advance(v *big.Int, epoch uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.epoch != epoch {
		return false
	}
	if v == nil {
		m.value = nil
	} else {
		m.value = new(big.Int).Set(v)
	}
	return true
}

func (m *SyncMarker) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = nil
	m.epoch++
}

// State is safe for concurrent use.
type State struct {
	mu      sync.RWMutex
	account common.Address
	admin   common.Address
	chainID *big.Int

	Marker SyncMarker
}

func NewState(account common.Address, chainID *big.Int) *State {
	return &State{account: account, chainID: chainID}
}

// Account is the connected account. The zero address means disconnected.
func (s *State) Account() common.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.account
}

// SetAccount switches the connected account. The next refresh re-filters the
// catalog for the new viewer.
func (s *State) SetAccount(addr common.Address) {
	s.mu.Lock()
	prev := s.account
	s.account = addr
	s.mu.Unlock()
	if prev != addr {
		log.Infow("account changed", "from", prev, "to", addr)
		s.Marker.Reset()
	}
}

func (s *State) Admin() common.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.admin
}

func (s *State) SetAdmin(addr common.Address) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admin = addr
}

// IsAdmin reports whether the connected account is the registry admin.
func (s *State) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.account != (common.Address{}) && s.account == s.admin
}

func (s *State) ChainID() *big.Int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chainID
}

// Reset clears everything derived from the chain, as after a chain switch.
func (s *State) Reset(chainID *big.Int) {
	s.mu.Lock()
	s.chainID = chainID
	s.admin = common.Address{}
	s.mu.Unlock()
	s.Marker.Reset()
}

// ChainIDGetter reports the id of the connected chain.
type ChainIDGetter interface {
	ChainID(ctx context.Context) (*big.Int, error)
}

// Connect resolves the active account and chain.
func Connect(ctx context.Context, w wallet.Wallet, chain ChainIDGetter, account common.Address) (*State, error) {
	active, err := ResolveAccount(ctx, w, account)
	if err != nil {
		return nil, err
	}

	chainID, err := chain.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting chain id: %w", err)
	}
	log.Infow("connected", "account", active, "chain", chainID)
	return NewState(active, chainID), nil
}

// ResolveAccount picks the account to act as. A configured account must be
// held by the wallet, otherwise the first wallet account is used. A running
// session follows a new result through State.SetAccount.
func ResolveAccount(ctx context.Context, w wallet.Wallet, account common.Address) (common.Address, error) {
	accounts, err := w.Accounts(ctx)
	if err != nil {
		return common.Address{}, fmt.Errorf("listing wallet accounts: %w", err)
	}
	if len(accounts) == 0 {
		return common.Address{}, ErrNoWallet
	}
	if account == (common.Address{}) {
		return accounts[0], nil
	}
	for _, a := range accounts {
		if a == account {
			return account, nil
		}
	}
	return common.Address{}, fmt.Errorf("account %s: %w", account, ErrNoWallet)
}
