package ui

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Effect is a pluggable visual-effect engine. The session only drives its
// lifecycle; what the engine draws is its own business.
type Effect interface {
	Name() string
	Init(ctx context.Context) error
	Refresh()
	Teardown()
}

// Themed effects restyle themselves when the theme changes.
type Themed interface {
	Configure(theme Theme)
}

// RevealEffect names the scroll-reveal engine.
const RevealEffect = "reveal"

// RevealConfig drives the scroll-reveal engine.
type RevealConfig struct {
	Duration        int    `json:"duration"`
	Easing          string `json:"easing"`
	Once            bool   `json:"once"`
	Offset          int    `json:"offset"`
	AnchorPlacement string `json:"anchorPlacement"`
	Delay           int    `json:"delay"`
}

// DefaultReveal is the reveal timing used across the page.
var DefaultReveal = RevealConfig{
	Duration:        800,
	Easing:          "ease-out-cubic",
	Once:            true,
	Offset:          50,
	AnchorPlacement: "top-bottom",
	Delay:           0,
}

// RevealRefreshDelay separates the end of the preloader from the reveal refresh.
const RevealRefreshDelay = 100 * time.Millisecond

// TypewriterConfig drives a typewriter text renderer.
type TypewriterConfig struct {
	Strings     []string `json:"strings"`
	AutoStart   bool     `json:"autoStart"`
	Loop        bool     `json:"loop"`
	Delay       int      `json:"delay"`
	DeleteSpeed int      `json:"deleteSpeed,omitempty"`
}

// PreloaderTypewriter plays once while the page loads.
var PreloaderTypewriter = TypewriterConfig{
	Strings:     []string{"System Initializing...", "Loading Assets...", "Welcome, User."},
	AutoStart:   true,
	Loop:        false,
	Delay:       40,
	DeleteSpeed: 20,
}

// RolesTypewriter loops the hero's role lines.
func RolesTypewriter(roles []string) TypewriterConfig {
	return TypewriterConfig{Strings: roles, AutoStart: true, Loop: true, Delay: 40}
}

// TiltConfig drives the card tilt/parallax wrapper.
type TiltConfig struct {
	MaxAngleX       float64 `json:"tiltMaxAngleX"`
	MaxAngleY       float64 `json:"tiltMaxAngleY"`
	Scale           float64 `json:"scale"`
	TransitionSpeed int     `json:"transitionSpeed"`
}

// DefaultTilt is applied to every service and project card.
var DefaultTilt = TiltConfig{MaxAngleX: 5, MaxAngleY: 5, Scale: 1.02, TransitionSpeed: 2500}

// BrowserEffect is an Effect whose engine runs in the browser. Each
// lifecycle call becomes a Command on the page.
type BrowserEffect struct {
	name      string
	page      PageEffects
	config    func(Theme) any
	theme     Theme
	themed    bool
	installed bool
}

// NewBrowserEffect wraps a fixed configuration.
func NewBrowserEffect(page PageEffects, name string, config any) *BrowserEffect {
	return &BrowserEffect{name: name, page: page, config: func(Theme) any { return config }}
}

// NewThemedEffect wraps a configuration that depends on the theme.
func NewThemedEffect(page PageEffects, name string, theme Theme, config func(Theme) any) *BrowserEffect {
	return &BrowserEffect{name: name, page: page, config: config, theme: theme, themed: true}
}

func (e *BrowserEffect) Name() string { return e.name }

func (e *BrowserEffect) Init(context.Context) error {
	if e.installed {
		return fmt.Errorf("effect %s already initialized", e.name)
	}
	e.installed = true
	e.page.Dispatch(Command{Kind: CmdEffectInit, Target: e.name, Payload: e.config(e.theme)})
	return nil
}

func (e *BrowserEffect) Configure(theme Theme) {
	e.theme = theme
	if e.themed && e.installed {
		e.page.Dispatch(Command{Kind: CmdEffectConfig, Target: e.name, Payload: e.config(theme)})
	}
}

func (e *BrowserEffect) Refresh() {
	if e.installed {
		e.page.Dispatch(Command{Kind: CmdEffectRefresh, Target: e.name})
	}
}

func (e *BrowserEffect) Teardown() {
	if !e.installed {
		return
	}
	e.installed = false
	e.page.Dispatch(Command{Kind: CmdEffectDown, Target: e.name})
}

// Effects runs a set of engines together: init in order, teardown in reverse.
type Effects struct {
	all     []Effect
	running []Effect
}

// NewEffects groups effects.
func NewEffects(effects ...Effect) *Effects {
	return &Effects{all: effects}
}

// Init starts every effect. An effect that fails to start is skipped; the
// returned error joins all failures.
func (e *Effects) Init(ctx context.Context) error {
	var errs []error
	for _, fx := range e.all {
		if err := fx.Init(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", fx.Name(), err))
			continue
		}
		e.running = append(e.running, fx)
	}
	return errors.Join(errs...)
}

// Refresh refreshes the named running effects, or all of them when no name is given.
func (e *Effects) Refresh(names ...string) {
	for _, fx := range e.running {
		if len(names) == 0 || contains(names, fx.Name()) {
			fx.Refresh()
		}
	}
}

// Configure passes the theme to every running effect that cares.
func (e *Effects) Configure(theme Theme) {
	for _, fx := range e.running {
		if t, ok := fx.(Themed); ok {
			t.Configure(theme)
		}
	}
}

// Teardown stops running effects in reverse start order.
func (e *Effects) Teardown() {
	for i := len(e.running) - 1; i >= 0; i-- {
		e.running[i].Teardown()
	}
	e.running = nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
