package model

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of a listing. The numeric values match the
// uint8 enum used by the registry contract.
type Status uint8

const (
	StatusPending Status = iota
	StatusPublished
	StatusRemoved
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusPublished:
		return "published"
	case StatusRemoved:
		return "removed"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the known registry states.
func (s Status) Valid() bool {
	return s <= StatusRemoved
}

// ParseStatus accepts either the name or the wire number of a status.
func ParseStatus(v string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "pending", "0":
		return StatusPending, nil
	case "published", "1":
		return StatusPublished, nil
	case "removed", "2":
		return StatusRemoved, nil
	}
	return 0, fmt.Errorf("unknown listing status: %q", v)
}

// CanTransition reports whether the registry accepts a move from one status
// to another. Pending->Pending is the in-place update of a listing. Removed
// is terminal.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusPending || to == StatusPublished
	case StatusPublished:
		return to == StatusRemoved
	default:
		return false
	}
}
