package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ErrInvalidTransition is returned when a status change is not allowed by the
// listing state machine.
var ErrInvalidTransition = errors.New("invalid status transition")

// Listing is the client side projection of one registry entry. The hashes are
// content identifiers in content-addressed storage, not inline content.
type Listing struct {
	ID              uint64
	Name            string
	DescriptionHash string
	SourceHash      string
	IconHash        string
	Version         uint64
	UUID            [32]byte
	Owner           common.Address
	Status          Status
	CreateTime      time.Time
	UpdateTime      time.Time
}

// IsOwner reports whether addr created the listing.
func (l Listing) IsOwner(addr common.Address) bool {
	return l.Owner == addr
}

// Visible reports whether viewer may see the listing. Owners see their own
// listings and the registry admin sees everything.
func (l Listing) Visible(viewer, admin common.Address) bool {
	if viewer == l.Owner {
		return true
	}
	return admin != (common.Address{}) && viewer == admin
}

// CanUpdate reports whether the listing content may still be edited.
func (l Listing) CanUpdate() bool {
	return l.Status == StatusPending
}

// CanAct reports whether actor may change the status of the listing, either
// as its owner or as the registry admin.
func (l Listing) CanAct(actor, admin common.Address) bool {
	if actor == (common.Address{}) {
		return false
	}
	return l.IsOwner(actor) || actor == admin
}

// Transition checks that the listing may move to the given status.
func (l Listing) Transition(to Status) error {
	if !CanTransition(l.Status, to) {
		return fmt.Errorf("%w: listing %d %s -> %s", ErrInvalidTransition, l.ID, l.Status, to)
	}
	return nil
}

func (l Listing) Validate() error {
	if !l.Status.Valid() {
		return fmt.Errorf("listing %d has unknown status %d", l.ID, uint8(l.Status))
	}
	if l.UpdateTime.Before(l.CreateTime) {
		return fmt.Errorf("listing %d updated (%s) before it was created (%s)", l.ID, l.UpdateTime, l.CreateTime)
	}
	return nil
}

// FollowsFrom checks that l is a valid successor of prev: same listing and
// owner, a strictly greater version and a non-decreasing update time.
func (l Listing) FollowsFrom(prev Listing) error {
	if l.ID != prev.ID {
		return fmt.Errorf("listing id changed from %d to %d", prev.ID, l.ID)
	}
	if l.Owner != prev.Owner {
		return fmt.Errorf("listing %d owner changed from %s to %s", l.ID, prev.Owner, l.Owner)
	}
	if l.Version <= prev.Version {
		return fmt.Errorf("listing %d version did not increase: %d -> %d", l.ID, prev.Version, l.Version)
	}
	if l.UpdateTime.Before(prev.UpdateTime) {
		return fmt.Errorf("listing %d update time went backwards", l.ID)
	}
	return nil
}
