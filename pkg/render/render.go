// Package render projects listings into display rows.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/storacha/appstore/pkg/content"
	"github.com/storacha/appstore/pkg/model"
)

// TimeLayout is the display format for update times.
const TimeLayout = "2006-01-02 15:04:05"

type Action string

const (
	ActionEdit    Action = "edit"
	ActionPublish Action = "publish"
	ActionRemove  Action = "remove"
)

// View holds everything needed to draw one listing row.
type View struct {
	ID          uint64
	Name        string
	Version     string
	Updated     string
	Icon        content.Image
	Description string
	Status      model.Status
	Actions     []Action
}

// Listing renders l with its already fetched icon and description. Visibility
// is the caller's concern. A nil loc means the local time zone.
func Listing(l model.Listing, icon content.Image, description string, loc *time.Location) View {
	if loc == nil {
		loc = time.Local
	}
	return View{
		ID:          l.ID,
		Name:        l.Name,
		Version:     fmt.Sprintf("V %d", l.Version),
		Updated:     l.UpdateTime.In(loc).Format(TimeLayout),
		Icon:        icon,
		Description: description,
		Status:      l.Status,
		Actions:     Actions(l.Status),
	}
}

// Actions returns the affordances for a listing in the given status.
func Actions(s model.Status) []Action {
	switch s {
	case model.StatusPending:
		return []Action{ActionEdit, ActionPublish}
	case model.StatusPublished:
		return []Action{ActionRemove}
	}
	return nil
}

func (v View) Has(a Action) bool {
	for _, x := range v.Actions {
		if x == a {
			return true
		}
	}
	return false
}

// String is a single line rendering used by the terminal sink.
func (v View) String() string {
	var acts []string
	for _, a := range v.Actions {
		acts = append(acts, string(a))
	}
	icon := "-"
	if !v.Icon.Empty() {
		icon = v.Icon.ContentType
	}
	desc := strings.Join(strings.Fields(v.Description), " ")
	return fmt.Sprintf("#%d %s %s [%s] %s icon=%s actions=[%s] %s",
		v.ID, v.Name, v.Version, v.Status, v.Updated, icon, strings.Join(acts, ","), desc)
}
