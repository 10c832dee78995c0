package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Kavindu379/portfolio/internal/content"
)

const (
	// DefaultLoadingWindow is how long the preloader shows.
	DefaultLoadingWindow = 2200 * time.Millisecond
	// TitleRestoreDelay is how long the "restored" title stays up.
	TitleRestoreDelay = 2 * time.Second
	// HiddenTitle replaces the title while the page is in the background.
	HiddenTitle = "⚠️ Connection Lost..."
)

// ErrClosed is returned by every event method called after Unmount.
var ErrClosed = errors.New("ui: session closed")

// RestoredTitle is shown briefly when the page comes back into view.
func RestoredTitle(owner string) string {
	return "🟢 Signal Restored | " + owner
}

// Catalog resolves selections. *content.Catalog satisfies it.
type Catalog interface {
	Project(id int) (content.Project, error)
	Service(slug string) (content.Service, error)
}

// Options configure a Session.
type Options struct {
	Page          PageEffects
	Store         ThemeStore
	Catalog       Catalog
	Effects       *Effects
	Clock         Clock
	LoadingWindow time.Duration
	DefaultTheme  Theme
	Owner         string
	// OnChange is called, outside the session lock, after timer-driven
	// changes (preloader end, title restore).
	OnChange func(Snapshot)
}

// Snapshot is an immutable copy of the session state.
type Snapshot struct {
	Theme          Theme     `json:"theme"`
	ScrollProgress float64   `json:"scrollProgress"`
	ShowScrollTop  bool      `json:"showScrollTop"`
	Cursor         Point     `json:"cursor"`
	Hovering       bool      `json:"hovering"`
	Loading        bool      `json:"loading"`
	Selection      Selection `json:"selection"`
	MenuOpen       bool      `json:"menuOpen"`
	Hidden         bool      `json:"hidden"`
}

// Session owns the interactive state of one page view.
type Session struct {
	mu   sync.Mutex
	opts Options

	scope         *Scope
	originalTitle string

	state Snapshot

	loadTimer    Timer
	refreshTimer Timer
	titleTimer   Timer

	mounted bool
	closed  bool
}

// NewSession builds a session. Page is required; missing collaborators get
// in-memory or no-op stand-ins.
func NewSession(opts Options) *Session {
	if opts.Store == nil {
		opts.Store = &MemoryThemeStore{}
	}
	if opts.Effects == nil {
		opts.Effects = NewEffects()
	}
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	if opts.DefaultTheme == "" {
		opts.DefaultTheme = DefaultTheme
	}
	return &Session{
		opts:  opts,
		scope: NewScope(opts.Page),
		state: Snapshot{Theme: opts.DefaultTheme, Loading: true, Selection: NoSelection()},
	}
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Mount runs the startup sequence: start the effect engines, pin the page
// to the top, apply the stored theme, and schedule the end of the
// preloader. Mounting twice is a no-op.
func (s *Session) Mount(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.mounted {
		return nil
	}
	s.mounted = true
	s.originalTitle = s.opts.Page.Title()

	if err := s.opts.Effects.Init(ctx); err != nil {
		log.Printf("ui: effect init: %v", err)
	}

	s.opts.Page.Dispatch(Command{Kind: CmdRestoration, Payload: "manual"})
	s.opts.Page.Dispatch(Command{Kind: CmdScroll, Payload: ScrollPayload{Top: 0}})

	stored, err := s.opts.Store.LoadTheme(ctx)
	if err != nil {
		log.Printf("ui: loading theme preference: %v", err)
	}
	s.applyTheme(ParseTheme(stored, s.opts.DefaultTheme))

	if s.opts.LoadingWindow <= 0 {
		s.finishLoadingLocked()
		return nil
	}
	s.loadTimer = s.opts.Clock.AfterFunc(s.opts.LoadingWindow, func() {
		s.mu.Lock()
		changed := s.finishLoadingLocked()
		snap := s.state
		s.mu.Unlock()
		if changed {
			s.notify(snap)
		}
	})
	return nil
}

// finishLoadingLocked leaves the loading state. It only ever happens once.
func (s *Session) finishLoadingLocked() bool {
	if s.closed || !s.state.Loading {
		return false
	}
	s.state.Loading = false
	s.refreshTimer = s.opts.Clock.AfterFunc(RevealRefreshDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.closed {
			s.opts.Effects.Refresh(RevealEffect)
		}
	})
	return true
}

// Unmount stops timers, tears the effects down and puts the page back.
func (s *Session) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for _, t := range []Timer{s.loadTimer, s.refreshTimer, s.titleTimer} {
		if t != nil {
			t.Stop()
		}
	}
	s.opts.Effects.Teardown()
	s.scope.Release()
}

func (s *Session) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Session) notify(snap Snapshot) {
	if s.opts.OnChange != nil {
		s.opts.OnChange(snap)
	}
}

func (s *Session) applyTheme(t Theme) {
	s.scope.RemoveBodyClass(t.Toggle().BodyClass())
	s.scope.AddBodyClass(t.BodyClass())
	s.state.Theme = t
	s.opts.Effects.Configure(t)
}

// Scroll records a scroll event.
func (s *Session) Scroll(top, scrollHeight, clientHeight float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.state.ScrollProgress = ScrollProgress(top, scrollHeight, clientHeight)
	s.state.ShowScrollTop = ShowScrollTop(top)
	return nil
}

// PointerMove records the cursor and whether it is over something interactive.
func (s *Session) PointerMove(p Point, chain []Element) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.state.Cursor = p
	hovering := Hovering(chain)
	if hovering == s.state.Hovering {
		return nil
	}
	s.state.Hovering = hovering
	if hovering {
		s.scope.AddBodyClass(HoverClass)
	} else {
		s.scope.RemoveBodyClass(HoverClass)
	}
	return nil
}

// Visibility handles the page going to or coming back from the background.
func (s *Session) Visibility(hidden bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	if s.titleTimer != nil {
		s.titleTimer.Stop()
		s.titleTimer = nil
	}
	if hidden {
		s.state.Hidden = true
		s.scope.SetTitle(HiddenTitle)
		return nil
	}
	if !s.state.Hidden {
		return nil
	}
	s.state.Hidden = false
	s.scope.SetTitle(RestoredTitle(s.opts.Owner))
	s.titleTimer = s.opts.Clock.AfterFunc(TitleRestoreDelay, func() {
		s.mu.Lock()
		if s.closed || s.state.Hidden {
			s.mu.Unlock()
			return
		}
		s.scope.SetTitle(s.originalTitle)
		s.titleTimer = nil
		snap := s.state
		s.mu.Unlock()
		s.notify(snap)
	})
	return nil
}

// ToggleTheme flips the theme, re-applies it and persists the choice.
func (s *Session) ToggleTheme(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	next := s.state.Theme.Toggle()
	s.applyTheme(next)
	s.mu.Unlock()

	if err := s.opts.Store.SaveTheme(ctx, string(next)); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	return nil
}

// ToggleMenu opens or closes the mobile menu. The page cannot scroll while it is open.
func (s *Session) ToggleMenu() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.setMenuLocked(!s.state.MenuOpen)
	return nil
}

// CloseMenu closes the mobile menu.
func (s *Session) CloseMenu() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.setMenuLocked(false)
	return nil
}

func (s *Session) setMenuLocked(open bool) {
	s.state.MenuOpen = open
	s.scope.SetScrollLock(open)
}

// Navigate follows an in-page link, closing the mobile menu if it is open.
func (s *Session) Navigate(anchor string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if s.state.MenuOpen {
		s.setMenuLocked(false)
	}
	s.opts.Page.Dispatch(Command{Kind: CmdScrollAnchor, Target: anchor})
	return nil
}

// ScrollToTop smooth-scrolls back to the hero.
func (s *Session) ScrollToTop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.opts.Page.Dispatch(Command{Kind: CmdScroll, Payload: ScrollPayload{Top: 0, Smooth: true}})
	return nil
}

// Reset returns the page to its initial state: top of the page, URL
// without query or fragment, then a full reload.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	s.opts.Page.Dispatch(Command{Kind: CmdScroll, Payload: ScrollPayload{Top: 0}})
	s.opts.Page.Dispatch(Command{Kind: CmdReplaceURL, Payload: CleanURL(s.opts.Page.URL())})
	s.opts.Page.Dispatch(Command{Kind: CmdReload})

	s.state.ScrollProgress = 0
	s.state.ShowScrollTop = false
	s.state.Selection = NoSelection()
	if s.state.MenuOpen {
		s.setMenuLocked(false)
	}
	return nil
}

// SelectProject opens the project modal, replacing any open modal.
func (s *Session) SelectProject(id int) error {
	if s.isClosed() {
		return ErrClosed
	}
	if s.opts.Catalog != nil {
		if _, err := s.opts.Catalog.Project(id); err != nil {
			return err
		}
	}
	return s.setSelection(ProjectSelection(id))
}

// SelectService opens the service modal, replacing any open modal.
func (s *Session) SelectService(slug string) error {
	if s.isClosed() {
		return ErrClosed
	}
	if s.opts.Catalog != nil {
		if _, err := s.opts.Catalog.Service(slug); err != nil {
			return err
		}
	}
	return s.setSelection(ServiceSelection(slug))
}

func (s *Session) setSelection(sel Selection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.state.Selection = sel
	return nil
}

// CloseModal clears the selection.
func (s *Session) CloseModal() error {
	return s.setSelection(NoSelection())
}

// ClickModal handles a click while a modal is open: clicks on the overlay
// close it, clicks inside the panel do not.
func (s *Session) ClickModal(inside bool) error {
	if inside {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return ErrClosed
		}
		return nil
	}
	return s.CloseModal()
}
