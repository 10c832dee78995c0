package views

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	g "maragu.dev/gomponents"

	"github.com/Kavindu379/portfolio/internal/content"
	"github.com/Kavindu379/portfolio/internal/ui"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		t.Fatalf("Render: %v", err)
	}
	return b.String()
}

func catalog(t *testing.T) *content.Catalog {
	t.Helper()
	c, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default: %v", err)
	}
	return c
}

func TestPageSections(t *testing.T) {
	out := render(t, Page(PageData{Catalog: catalog(t), Theme: ui.Light, LoadingWindow: 2200 * time.Millisecond}))

	for _, want := range []string{
		"<!DOCTYPE html>",
		`class="light-mode is-loading"`,
		`data-loading-window="2200"`,
		`id="home"`, `id="about"`, `id="resume"`, `id="services"`, `id="portfolio"`, `id="contact"`,
		`class="preloader"`,
		"Kavindu Kavishka.",
		"<strong>KDU</strong>",
		"95%", "80%",
		`hx-get="/projects/1"`,
		`hx-get="/services/mobile-apps"`,
		`id="effect-config"`,
		"SYSTEM ONLINE",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestTechTrackRenderedTwice(t *testing.T) {
	c := catalog(t)
	out := render(t, About(c))
	if n := strings.Count(out, `class="tech-item"`); n != 2*len(c.Tech) {
		t.Errorf("tech items = %d, want %d", n, 2*len(c.Tech))
	}
}

func TestProjectCardSummary(t *testing.T) {
	c := catalog(t)
	out := render(t, Projects(c.Projects))
	if !strings.Contains(out, c.Projects[0].Summary()) {
		t.Error("card should show the truncated description")
	}
	if strings.Contains(out, c.Projects[0].Description) {
		t.Error("card should not show the full description")
	}
}

func TestMagneticButtonKind(t *testing.T) {
	link := render(t, MagneticButton("/cv.pdf", "creative-btn", g.Text("Resume")))
	if !strings.HasPrefix(link, "<a ") || !strings.Contains(link, `href="/cv.pdf"`) {
		t.Errorf("href should render a link: %s", link)
	}
	btn := render(t, MagneticButton("", "btn"))
	if !strings.HasPrefix(btn, "<button ") {
		t.Errorf("no href should render a button: %s", btn)
	}
	if !strings.Contains(btn, "transition: transform 0.1s ease-out; display: inline-block") {
		t.Errorf("missing magnetic style: %s", btn)
	}
}

func TestModals(t *testing.T) {
	c := catalog(t)
	p, _ := c.Project(2)
	out := render(t, ProjectModal(p))
	for _, want := range []string{p.Title, p.Category, p.Description, "modal-tech-tag", p.Repo, `data-action="close-modal"`} {
		if !strings.Contains(out, want) {
			t.Errorf("project modal missing %q", want)
		}
	}

	s, _ := c.Service("circuit-design")
	out = render(t, ServiceModal(s))
	if !strings.Contains(out, "bi-diagram-2") || !strings.Contains(out, "Altium") {
		t.Errorf("service modal: %s", out)
	}
}

func TestContactFragments(t *testing.T) {
	ok := render(t, ContactSuccess("Kavindu"))
	if !strings.Contains(ok, "Message sent") || strings.Contains(ok, `value="Ada"`) {
		t.Errorf("success fragment: %s", ok)
	}
	if !strings.Contains(ok, "root@kavindu:~$") {
		t.Error("prompt should use the lowercased owner name")
	}

	bad := render(t, ContactError(FormValues{Name: "Ada", Email: "ada@example.com", Message: "<hi>"}, "Kavindu", "relay down"))
	for _, want := range []string{`role="alert"`, "relay down", `value="Ada"`, `value="ada@example.com"`, "&lt;hi&gt;"} {
		if !strings.Contains(bad, want) {
			t.Errorf("error fragment missing %q", want)
		}
	}
}

func TestRendererContentType(t *testing.T) {
	w := httptest.NewRecorder()
	if err := (Renderer{Node: NotFound("Project")}).Render(w); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(w.Body.String(), "Project not found.") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestModalsRenderMarkdown(t *testing.T) {
	out := render(t, ProjectModal(content.Project{ID: 7, Title: "X", Description: "Uses **bold** claims"}))
	if !strings.Contains(out, "<strong>bold</strong>") || strings.Contains(out, "**bold**") {
		t.Errorf("project description not rendered as markdown: %s", out)
	}

	out = render(t, ServiceModal(content.Service{Title: "X", Long: "Ships *fast*"}))
	if !strings.Contains(out, "<em>fast</em>") || strings.Contains(out, "*fast*") {
		t.Errorf("service long text not rendered as markdown: %s", out)
	}
}
