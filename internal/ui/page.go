package ui

import (
	"net/url"
	"sort"
	"sync"
)

// Command is an imperative instruction for the browser: scroll, navigate,
// reload, or drive one of the visual-effect engines.
type Command struct {
	Kind    string `json:"kind"`
	Target  string `json:"target,omitempty"`
	Payload any    `json:"payload,omitempty"`
}

// Command kinds.
const (
	CmdScroll        = "scroll"
	CmdScrollAnchor  = "scroll-anchor"
	CmdRestoration   = "scroll-restoration"
	CmdReplaceURL    = "replace-url"
	CmdReload        = "reload"
	CmdEffectInit    = "effect.init"
	CmdEffectConfig  = "effect.configure"
	CmdEffectRefresh = "effect.refresh"
	CmdEffectDown    = "effect.teardown"
)

// ScrollPayload accompanies CmdScroll.
type ScrollPayload struct {
	Top    float64 `json:"top"`
	Smooth bool    `json:"smooth"`
}

// PageEffects is everything the session touches outside its own state:
// document title, root classes, the body scroll lock, and imperative
// browser commands.
type PageEffects interface {
	Title() string
	SetTitle(title string)
	HasBodyClass(class string) bool
	AddBodyClass(class string)
	RemoveBodyClass(class string)
	ScrollLocked() bool
	SetScrollLock(locked bool)
	URL() string
	Dispatch(cmd Command)
}

// Scope applies page effects and remembers what it overwrote, so Release
// can put the page back exactly as it found it.
type Scope struct {
	page     PageEffects
	restore  []func()
	touched  map[string]bool
	released bool
}

// NewScope starts a scope over page.
func NewScope(page PageEffects) *Scope {
	return &Scope{page: page, touched: make(map[string]bool)}
}

func (s *Scope) remember(key string, undo func()) {
	if s.touched[key] {
		return
	}
	s.touched[key] = true
	s.restore = append(s.restore, undo)
}

func (s *Scope) SetTitle(title string) {
	orig := s.page.Title()
	s.remember("title", func() { s.page.SetTitle(orig) })
	s.page.SetTitle(title)
}

func (s *Scope) AddBodyClass(class string) {
	s.rememberClass(class)
	s.page.AddBodyClass(class)
}

func (s *Scope) RemoveBodyClass(class string) {
	s.rememberClass(class)
	s.page.RemoveBodyClass(class)
}

func (s *Scope) rememberClass(class string) {
	had := s.page.HasBodyClass(class)
	s.remember("class:"+class, func() {
		if had {
			s.page.AddBodyClass(class)
		} else {
			s.page.RemoveBodyClass(class)
		}
	})
}

func (s *Scope) SetScrollLock(locked bool) {
	orig := s.page.ScrollLocked()
	s.remember("scroll-lock", func() { s.page.SetScrollLock(orig) })
	s.page.SetScrollLock(locked)
}

// Release undoes every change in reverse order. Releasing twice is a no-op.
func (s *Scope) Release() {
	if s.released {
		return
	}
	s.released = true
	for i := len(s.restore) - 1; i >= 0; i-- {
		s.restore[i]()
	}
	s.restore = nil
}

// PageState is the observable state of a Document.
type PageState struct {
	Title        string   `json:"title"`
	BodyClasses  []string `json:"bodyClasses"`
	ScrollLocked bool     `json:"scrollLocked"`
	URL          string   `json:"url"`
}

// Document is an in-memory PageEffects. The live session keeps one per
// connected page and ships its state and queued commands to the browser.
type Document struct {
	mu       sync.Mutex
	title    string
	classes  map[string]bool
	locked   bool
	url      string
	commands []Command
}

// NewDocument starts a document with the given title and URL.
func NewDocument(title, rawURL string) *Document {
	return &Document{title: title, url: rawURL, classes: make(map[string]bool)}
}

func (d *Document) Title() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.title
}

func (d *Document) SetTitle(title string) {
	d.mu.Lock()
	d.title = title
	d.mu.Unlock()
}

func (d *Document) HasBodyClass(class string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.classes[class]
}

func (d *Document) AddBodyClass(class string) {
	d.mu.Lock()
	d.classes[class] = true
	d.mu.Unlock()
}

func (d *Document) RemoveBodyClass(class string) {
	d.mu.Lock()
	delete(d.classes, class)
	d.mu.Unlock()
}

func (d *Document) ScrollLocked() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.locked
}

func (d *Document) SetScrollLock(locked bool) {
	d.mu.Lock()
	d.locked = locked
	d.mu.Unlock()
}

func (d *Document) URL() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.url
}

// Dispatch queues cmd. A replace-url command also updates the document URL.
func (d *Document) Dispatch(cmd Command) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if cmd.Kind == CmdReplaceURL {
		if u, ok := cmd.Payload.(string); ok {
			d.url = u
		}
	}
	d.commands = append(d.commands, cmd)
}

// Drain returns and clears the queued commands.
func (d *Document) Drain() []Command {
	d.mu.Lock()
	defer d.mu.Unlock()
	cmds := d.commands
	d.commands = nil
	return cmds
}

// State snapshots the document. Classes are sorted.
func (d *Document) State() PageState {
	d.mu.Lock()
	defer d.mu.Unlock()
	classes := make([]string, 0, len(d.classes))
	for c := range d.classes {
		classes = append(classes, c)
	}
	sort.Strings(classes)
	return PageState{Title: d.title, BodyClasses: classes, ScrollLocked: d.locked, URL: d.url}
}

// CleanURL reduces rawURL to its path, dropping host, query and fragment.
func CleanURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return "/"
	}
	return u.EscapedPath()
}
