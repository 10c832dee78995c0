package ui

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownEvent is returned by Apply for an unrecognized event type.
var ErrUnknownEvent = errors.New("ui: unknown event")

// EventType names a browser event forwarded to the session.
type EventType string

const (
	EventScroll        EventType = "scroll"
	EventPointer       EventType = "pointer"
	EventVisibility    EventType = "visibility"
	EventTheme         EventType = "theme"
	EventMenu          EventType = "menu"
	EventMenuClose     EventType = "menu-close"
	EventNavigate      EventType = "navigate"
	EventScrollTop     EventType = "scroll-top"
	EventReset         EventType = "reset"
	EventSelectProject EventType = "select-project"
	EventSelectService EventType = "select-service"
	EventCloseModal    EventType = "close-modal"
	EventClickModal    EventType = "click-modal"
)

// Event is the wire form of a browser event. Only the fields relevant to
// Type are read.
type Event struct {
	Type EventType `json:"type"`

	Top          float64 `json:"top,omitempty"`
	ScrollHeight float64 `json:"scrollHeight,omitempty"`
	ClientHeight float64 `json:"clientHeight,omitempty"`

	X    int       `json:"x,omitempty"`
	Y    int       `json:"y,omitempty"`
	Path []Element `json:"path,omitempty"`

	Hidden bool `json:"hidden,omitempty"`

	Anchor  string `json:"anchor,omitempty"`
	Project int    `json:"project,omitempty"`
	Service string `json:"service,omitempty"`
	Inside  bool   `json:"inside,omitempty"`
}

// Apply routes ev to the matching session operation and returns the
// resulting state.
func (s *Session) Apply(ctx context.Context, ev Event) (Snapshot, error) {
	if s.isClosed() {
		return Snapshot{}, ErrClosed
	}
	var err error
	switch ev.Type {
	case EventScroll:
		err = s.Scroll(ev.Top, ev.ScrollHeight, ev.ClientHeight)
	case EventPointer:
		err = s.PointerMove(Point{X: ev.X, Y: ev.Y}, ev.Path)
	case EventVisibility:
		err = s.Visibility(ev.Hidden)
	case EventTheme:
		err = s.ToggleTheme(ctx)
	case EventMenu:
		err = s.ToggleMenu()
	case EventMenuClose:
		err = s.CloseMenu()
	case EventNavigate:
		err = s.Navigate(ev.Anchor)
	case EventScrollTop:
		err = s.ScrollToTop()
	case EventReset:
		err = s.Reset()
	case EventSelectProject:
		err = s.SelectProject(ev.Project)
	case EventSelectService:
		err = s.SelectService(ev.Service)
	case EventCloseModal:
		err = s.CloseModal()
	case EventClickModal:
		err = s.ClickModal(ev.Inside)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
	if errors.Is(err, ErrClosed) {
		return Snapshot{}, err
	}
	return s.Snapshot(), err
}
