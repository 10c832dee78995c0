package views

import (
	"encoding/json"
	"log"
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Kavindu379/portfolio/internal/content"
	"github.com/Kavindu379/portfolio/internal/ui"
)

// PageData is everything the full page needs.
type PageData struct {
	Catalog       *content.Catalog
	Theme         ui.Theme
	LoadingWindow time.Duration
}

func (d PageData) title() string {
	return d.Catalog.Profile.ShortName + " | Portfolio"
}

// Page renders the whole single-page site. The preloader is part of the
// markup and is dismissed by the client after the loading window.
func Page(d PageData) g.Node {
	p := d.Catalog.Profile
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(d.title())),
				Meta(Name("description"), Content(p.Tagline)),
				Link(Rel("stylesheet"), Href("https://cdn.jsdelivr.net/npm/bootstrap-icons@1.11.3/font/bootstrap-icons.min.css")),
				Link(Rel("stylesheet"), Href("https://unpkg.com/aos@2.3.4/dist/aos.css")),
				Link(Rel("stylesheet"), Href("/static/css/site.css")),
			),
			Body(
				Class(d.Theme.BodyClass()+" is-loading"),
				g.Attr("data-loading-window", strconv.FormatInt(d.LoadingWindow.Milliseconds(), 10)),
				g.Attr("data-theme", string(d.Theme)),

				Preloader(),
				Div(Class("app"),
					Div(Class("cursor-dot")),
					Div(Class("cursor-outline")),
					Div(ID("particles-js"), Class("particles-background")),
					Div(ID("scroll-progress"), Class("scroll-progress")),

					NavBar(p),
					MobileMenu(p),
					Hero(p),
					About(d.Catalog),
					Resume(d.Catalog.Timeline),
					Services(d.Catalog.Services),
					Projects(d.Catalog.Projects),
					Div(ID("modal-root")),
					Contact(p),
					SiteFooter(p),
					ScrollTopButton(),
				),

				effectConfig(d),
				Script(Src("https://unpkg.com/htmx.org@2.0.4")),
				Script(Src("https://unpkg.com/aos@2.3.4/dist/aos.js")),
				Script(Src("https://unpkg.com/typewriter-effect@2.21.0/dist/core.js")),
				Script(Src("https://cdn.jsdelivr.net/npm/vanilla-tilt@1.8.1/dist/vanilla-tilt.min.js")),
				Script(Src("https://cdn.jsdelivr.net/npm/particles.js@2.0.0/particles.min.js")),
				Script(Src("/static/js/site.js")),
			),
		),
	})
}

// effectConfig embeds the effect-engine settings the client starts with.
func effectConfig(d PageData) g.Node {
	cfg := map[string]any{
		"reveal":       ui.DefaultReveal,
		"refreshDelay": ui.RevealRefreshDelay.Milliseconds(),
		"preloader":    ui.PreloaderTypewriter,
		"roles":        ui.RolesTypewriter(d.Catalog.Profile.Roles),
		"tilt":         ui.DefaultTilt,
		"magnetic":     map[string]any{"damping": ui.MagneticDamping, "transition": ui.MagneticTransition},
		"hover":        map[string]any{"selectors": ui.InteractiveSelectors, "class": ui.HoverClass},
		"scrollTop":    ui.ScrollTopThreshold,
		"titles": map[string]any{
			"hidden":   ui.HiddenTitle,
			"restored": ui.RestoredTitle(d.Catalog.Profile.ShortName),
			"delay":    ui.TitleRestoreDelay.Milliseconds(),
		},
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		log.Printf("views: encoding effect config: %v", err)
		raw = []byte("{}")
	}
	return Script(ID("effect-config"), Type("application/json"), g.Raw(string(raw)))
}

// markdown renders trusted catalog text, falling back to plain text.
func markdown(src string) g.Node {
	html, err := content.Markdown(src)
	if err != nil {
		log.Printf("views: rendering markdown: %v", err)
		return g.Text(src)
	}
	return g.Raw(string(html))
}
