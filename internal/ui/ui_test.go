package ui

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in   string
		want Theme
	}{
		{"light", Light},
		{"dark", Dark},
		{"", Dark},
		{"Light", Dark},
		{"blue", Dark},
	}
	for _, tt := range tests {
		if got := ParseTheme(tt.in, Dark); got != tt.want {
			t.Errorf("ParseTheme(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := ParseTheme("nonsense", Light); got != Light {
		t.Errorf("fallback not honored: got %q", got)
	}
}

func TestThemeDoubleToggleIsIdentity(t *testing.T) {
	for _, th := range []Theme{Light, Dark} {
		if th.Toggle().Toggle() != th {
			t.Errorf("%s toggled twice gave %s", th, th.Toggle().Toggle())
		}
		if th.Toggle() == th {
			t.Errorf("%s toggled to itself", th)
		}
	}
	if Dark.BodyClass() != "dark-mode" || Light.BodyClass() != "light-mode" {
		t.Error("unexpected body classes")
	}
}

func TestScrollProgress(t *testing.T) {
	const sh, ch = 3000.0, 1000.0
	maxScroll := sh - ch

	prev := -1.0
	for top := 0.0; top <= maxScroll; top += 37 {
		got := ScrollProgress(top, sh, ch)
		if want := top / maxScroll; math.Abs(got-want) > 1e-12 {
			t.Fatalf("ScrollProgress(%v) = %v, want %v", top, got, want)
		}
		if got < prev {
			t.Fatalf("progress decreased at %v: %v < %v", top, got, prev)
		}
		prev = got
	}
	if got := ScrollProgress(maxScroll, sh, ch); got != 1 {
		t.Errorf("bottom of page: got %v, want 1", got)
	}
}

func TestScrollProgressEdges(t *testing.T) {
	tests := []struct {
		name             string
		top, sh, ch, out float64
	}{
		{"no scrollable content", 0, 800, 800, 0},
		{"viewport taller than content", 10, 500, 800, 0},
		{"overscroll clamps high", 2500, 3000, 1000, 1},
		{"negative top clamps low", -50, 3000, 1000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScrollProgress(tt.top, tt.sh, tt.ch)
			if math.IsNaN(got) || got != tt.out {
				t.Errorf("got %v, want %v", got, tt.out)
			}
		})
	}
}

func TestShowScrollTop(t *testing.T) {
	if ShowScrollTop(300) {
		t.Error("300 is not past the threshold")
	}
	if !ShowScrollTop(301) {
		t.Error("301 is past the threshold")
	}
}

func TestHovering(t *testing.T) {
	el := func(tag string, classes ...string) Element { return Element{Tag: tag, Classes: classes} }
	body := el("body")

	tests := []struct {
		name  string
		chain []Element
		want  bool
	}{
		{"link", []Element{el("a"), body}, true},
		{"icon inside button", []Element{el("i", "bi"), el("button"), body}, true},
		{"text inside card", []Element{el("p"), el("div", "card"), body}, true},
		{"logo", []Element{el("div", "logo"), el("nav"), body}, true},
		{"uppercase tag", []Element{el("TEXTAREA"), body}, true},
		{"plain paragraph", []Element{el("p"), el("section"), body}, false},
		{"footer cta heading", []Element{el("h2"), el("div", "footer-big-cta"), el("footer"), body}, true},
		{"h2 elsewhere", []Element{el("h2"), el("section"), body}, false},
		{"span in cta heading", []Element{el("span"), el("h2"), el("div", "footer-big-cta"), body}, true},
		{"mobile menu item", []Element{el("span"), el("a"), el("li"), el("div", "mobile-menu-overlay", "active"), body}, true},
		{"hamburger bar", []Element{el("span", "bar"), el("div", "hamburger", "active"), body}, true},
		{"link with classes", []Element{el("a", "btn", "btn-primary"), body}, true},
		{"custom element", []Element{el("x-widget", "cardish"), body}, false},
		{"cta class on the heading itself", []Element{el("h2", "footer-big-cta"), body}, false},
		{"empty chain", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hovering(tt.chain); got != tt.want {
				t.Errorf("Hovering() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDisplacement(t *testing.T) {
	r := Rect{Left: 100, Top: 200, Width: 80, Height: 40}

	if got := Displacement(Point{X: 140, Y: 220}, r); got != (Offset{}) {
		t.Errorf("pointer at center: got %+v, want zero", got)
	}

	got := Displacement(Point{X: 150, Y: 210}, r)
	want := Offset{X: 10 * 0.3, Y: -10 * 0.3}
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestMagneticDoesNotAccumulate(t *testing.T) {
	r := Rect{Width: 100, Height: 100}
	var m Magnetic

	m.Move(Point{X: 60, Y: 50}, r)
	m.Move(Point{X: 60, Y: 50}, r)
	if got := m.Offset(); math.Abs(got.X-3) > 1e-9 || got.Y != 0 {
		t.Errorf("repeated move: got %+v, want {3 0}", got)
	}

	m.Leave()
	if m.Offset() != (Offset{}) {
		t.Errorf("after leave: got %+v", m.Offset())
	}
	if m.Transform() != "translate(0px, 0px)" {
		t.Errorf("rest transform: got %q", m.Transform())
	}
}

func TestKindFor(t *testing.T) {
	if KindFor("cv.pdf") != MagneticLink {
		t.Error("href should render a link")
	}
	if KindFor("") != MagneticButton {
		t.Error("no href should render a button")
	}
}

func TestSelectionIsExclusive(t *testing.T) {
	var zero Selection
	if zero.Kind() != SelectNone || zero.Open() {
		t.Error("zero selection should be closed")
	}

	s := ProjectSelection(2)
	if id, ok := s.Project(); !ok || id != 2 {
		t.Errorf("project selection: %v", s)
	}
	if _, ok := s.Service(); ok {
		t.Error("project selection must not report a service")
	}

	s = ServiceSelection("mobile-apps")
	if _, ok := s.Project(); ok {
		t.Error("service selection must not report a project")
	}
	if s.String() != "service(mobile-apps)" {
		t.Errorf("String() = %q", s.String())
	}
}

func TestCleanURL(t *testing.T) {
	tests := map[string]string{
		"/?utm=x#contact":                 "/",
		"https://example.com/about?x=1#y": "/about",
		"":                                "/",
		"/portfolio/#portfolio":           "/portfolio/",
	}
	for in, want := range tests {
		if got := CleanURL(in); got != want {
			t.Errorf("CleanURL(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestScopeRelease(t *testing.T) {
	doc := NewDocument("Portfolio", "/")
	doc.AddBodyClass("dark-mode")

	scope := NewScope(doc)
	scope.SetTitle("one")
	scope.SetTitle("two")
	scope.RemoveBodyClass("dark-mode")
	scope.AddBodyClass("light-mode")
	scope.SetScrollLock(true)

	if doc.Title() != "two" || !doc.ScrollLocked() || doc.HasBodyClass("dark-mode") {
		t.Fatalf("effects not applied: %+v", doc.State())
	}

	scope.Release()
	st := doc.State()
	if st.Title != "Portfolio" {
		t.Errorf("title not restored: %q", st.Title)
	}
	if st.ScrollLocked {
		t.Error("scroll lock not restored")
	}
	if len(st.BodyClasses) != 1 || st.BodyClasses[0] != "dark-mode" {
		t.Errorf("classes not restored: %v", st.BodyClasses)
	}

	doc.SetTitle("later")
	scope.Release()
	if doc.Title() != "later" {
		t.Error("second release should be a no-op")
	}
}

type recordingEffect struct {
	name string
	log  *[]string
	fail bool
}

func (r *recordingEffect) Name() string { return r.name }
func (r *recordingEffect) Init(context.Context) error {
	*r.log = append(*r.log, "init:"+r.name)
	if r.fail {
		return errors.New("boom")
	}
	return nil
}
func (r *recordingEffect) Refresh()  { *r.log = append(*r.log, "refresh:"+r.name) }
func (r *recordingEffect) Teardown() { *r.log = append(*r.log, "down:"+r.name) }

func TestEffectsLifecycle(t *testing.T) {
	var log []string
	fx := NewEffects(
		&recordingEffect{name: "a", log: &log},
		&recordingEffect{name: "b", log: &log, fail: true},
		&recordingEffect{name: "c", log: &log},
	)

	if err := fx.Init(context.Background()); err == nil {
		t.Fatal("expected joined init error")
	}
	fx.Refresh("c")
	fx.Teardown()

	want := []string{"init:a", "init:b", "init:c", "refresh:c", "down:c", "down:a"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}
}

func TestBrowserEffectCommands(t *testing.T) {
	doc := NewDocument("", "/")
	fx := NewThemedEffect(doc, "particles", Dark, func(th Theme) any { return string(th) })

	fx.Refresh()
	if len(doc.Drain()) != 0 {
		t.Fatal("refresh before init should not dispatch")
	}

	if err := fx.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := fx.Init(context.Background()); err == nil {
		t.Error("second Init should fail")
	}
	fx.Configure(Light)
	fx.Teardown()
	fx.Teardown()

	cmds := doc.Drain()
	kinds := []string{CmdEffectInit, CmdEffectConfig, CmdEffectDown}
	if len(cmds) != len(kinds) {
		t.Fatalf("commands = %+v", cmds)
	}
	for i, k := range kinds {
		if cmds[i].Kind != k || cmds[i].Target != "particles" {
			t.Errorf("command %d = %+v, want kind %s", i, cmds[i], k)
		}
	}
	if cmds[0].Payload != "dark" || cmds[1].Payload != "light" {
		t.Errorf("payloads = %v, %v", cmds[0].Payload, cmds[1].Payload)
	}
}
