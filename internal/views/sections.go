package views

import (
	"slices"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Kavindu379/portfolio/internal/content"
	"github.com/Kavindu379/portfolio/internal/ui"
)

var navItems = []struct{ anchor, label string }{
	{"home", "01. Home"},
	{"about", "02. About"},
	{"resume", "03. Resume"},
	{"portfolio", "04. Projects"},
	{"contact", "05. Contact"},
}

func aos(effect string) g.Node { return g.Attr("data-aos", effect) }

func aosDelay(ms int) g.Node { return g.Attr("data-aos-delay", strconv.Itoa(ms)) }

func icon(class string) g.Node { return I(Class("bi " + class)) }

func heading(num, title string) g.Node {
	return H2(aos("fade-up"), Span(Class("section-num"), g.Text(num)), g.Text(" "+title))
}

// Preloader is shown until the loading window elapses.
func Preloader() g.Node {
	return Div(Class("preloader"), ID("preloader"),
		H2(Class("loader-text"), ID("loader-text")),
		Div(Class("loader-bar")),
	)
}

// Logo is the clickable brand mark. Clicking it resets the site.
func Logo(text string) g.Node {
	return Div(Class("logo"), Title("Reset Site"), g.Attr("data-action", "reset"), g.Text(text))
}

// MagneticButton renders a link when href is set and a button otherwise.
// The client applies the magnetic displacement.
func MagneticButton(href, class string, children ...g.Node) g.Node {
	attrs := []g.Node{
		Class(class),
		g.Attr("data-magnetic", ""),
		Style("transition: " + ui.MagneticTransition + "; display: inline-block"),
	}
	if ui.KindFor(href) == ui.MagneticLink {
		return A(append(append(attrs, Href(href)), children...)...)
	}
	return Button(append(attrs, children...)...)
}

func resumeButton(p content.Profile, label string) g.Node {
	return MagneticButton("/"+p.Resume, "creative-btn", g.Attr("download", ""), icon("bi-download"), g.Text(" "+label))
}

// NavBar is the fixed top navigation.
func NavBar(p content.Profile) g.Node {
	return Nav(aos("fade-down"), g.Attr("data-aos-duration", "1000"), aosDelay(200),
		Logo(p.Logo),
		Ul(Class("nav-links"),
			g.Map(navItems, func(n struct{ anchor, label string }) g.Node {
				return Li(A(Href("#"+n.anchor), g.Attr("data-nav", n.anchor), g.Text(n.label)))
			}),
		),
		Div(Class("nav-actions"),
			Button(Class("creative-theme-toggle"), g.Attr("aria-label", "Toggle Theme"), g.Attr("data-action", "theme"),
				Div(Class("sun-moon-icon")),
			),
			Div(Class("desktop-btn"), resumeButton(p, "Resume")),
			Div(Class("hamburger"), g.Attr("data-action", "menu"),
				Span(Class("bar")), Span(Class("bar")), Span(Class("bar")),
			),
		),
	)
}

// MobileMenu is the full-screen overlay menu.
func MobileMenu(p content.Profile) g.Node {
	return Div(Class("mobile-menu-overlay"),
		Ul(Class("mobile-nav-links"),
			g.Map(navItems, func(n struct{ anchor, label string }) g.Node {
				return Li(A(Href("#"+n.anchor), g.Attr("data-nav", n.anchor), g.Text(n.label[4:])))
			}),
			Li(resumeButton(p, "Download Resume")),
		),
	)
}

func socialLinks(socials []content.Social) g.Node {
	return Div(Class("social-icons"),
		g.Map(socials, func(s content.Social) g.Node {
			return A(Href(s.URL), Target("_blank"), Rel("noopener"), icon("bi-"+s.Icon))
		}),
	)
}

// Hero is the landing section.
func Hero(p content.Profile) g.Node {
	return Section(ID("home"), Class("hero"),
		Div(Class("hero-text"), aos("fade-up"), aosDelay(300),
			Div(Class("status-badge"),
				Div(Class("status-dot")),
				Span(g.Text("Currently working on: "), Strong(g.Text(p.Status))),
			),
			H3(g.Text("Hi, my name is")),
			H1(Class("glitch"), g.Attr("data-text", p.Name+"."), g.Text(p.Name+".")),
			H2(Class("hero-headline"), g.Text(p.Headline)),
			Div(Class("hero-roles"), ID("hero-roles")),
			Div(Class("hero-intro"), markdown(p.Intro)),
			socialLinks(append(slices.Clone(p.Socials), content.Social{Icon: "envelope", URL: "mailto:" + p.Email})),
			MagneticButton("#contact", "btn btn-primary", g.Text("Check out my work!")),
		),
		Div(Class("hero-img"), aos("fade-left"), aosDelay(600),
			Img(Src("/"+p.Photo), Alt(p.ShortName), Class("profile-pic")),
		),
		A(Href("#about"), Class("scroll-down"), icon("bi-arrow-down-circle")),
	)
}

// About holds the bio, stats, skill bars and the scrolling tech track.
func About(c *content.Catalog) g.Node {
	p := c.Profile
	return Section(ID("about"),
		heading("01.", "About Me"),
		Div(Class("grid about-grid"),
			Div(Class("about-text"), aos("fade-right"),
				P(g.Text(p.About)),
				Div(Class("stats-row"),
					g.Map(p.Stats, func(s content.Stat) g.Node {
						return Div(Class("stat"), Strong(g.Text(s.Value)), g.Text(" "+s.Label))
					}),
				),
			),
			Div(aos("fade-left"),
				Div(Class("skills-container"),
					H3(g.Text("Technical Proficiency")),
					skillBars(c.Skills),
				),
			),
		),
		Div(Class("tech-scroller"), aos("fade-up"),
			Div(Class("tech-track"),
				g.Map(c.TechTrack(), func(t content.TechBadge) g.Node {
					return Div(Class("tech-item"), icon(t.Icon), Span(g.Text(t.Name)))
				}),
			),
		),
	)
}

func skillBars(skills []content.Skill) g.Node {
	nodes := make([]g.Node, 0, len(skills))
	for i, s := range skills {
		pct := strconv.Itoa(s.Percent) + "%"
		nodes = append(nodes, Div(Class("skill-bar"),
			Div(Class("skill-info"), Span(g.Text(s.Name)), Span(g.Text(pct))),
			Div(Class("progress"),
				Div(Class("progress-bar"), Style("width: "+pct),
					aos("slide-right"), g.Attr("data-aos-duration", "1000"), aosDelay(i*100)),
			),
		))
	}
	return g.Group(nodes)
}

// Resume is the alternating timeline.
func Resume(entries []content.TimelineEntry) g.Node {
	items := make([]g.Node, 0, len(entries))
	for i, e := range entries {
		side, effect := "left", "fade-right"
		if i%2 == 1 {
			side, effect = "right", "fade-left"
		}
		items = append(items, Div(Class("timeline-item "+side), aos(effect),
			Div(Class("timeline-dot")),
			Div(Class("timeline-content"),
				Span(Class("timeline-date"), g.Text(e.Date)),
				H3(g.Text(e.Title)),
				H4(g.Text(e.Org)),
				markdown(e.Body),
			),
		))
	}
	return Section(ID("resume"),
		heading("02.", "Where I've Been"),
		Div(Class("timeline"), g.Group(items)),
	)
}

func tiltAttrs() g.Node {
	t := ui.DefaultTilt
	return g.Group([]g.Node{
		g.Attr("data-tilt", ""),
		g.Attr("data-tilt-max", strconv.FormatFloat(t.MaxAngleX, 'f', -1, 64)),
		g.Attr("data-tilt-scale", strconv.FormatFloat(t.Scale, 'f', -1, 64)),
		g.Attr("data-tilt-speed", strconv.Itoa(t.TransitionSpeed)),
	})
}

// Services is the "What I Do" grid. Each card opens its detail modal.
func Services(services []content.Service) g.Node {
	cards := make([]g.Node, 0, len(services))
	for i, s := range services {
		cards = append(cards, Div(Class("card"), tiltAttrs(), aos("fade-up"), aosDelay(i*50),
			g.Attr("hx-get", "/services/"+s.Slug()),
			g.Attr("hx-target", "#modal-root"),
			g.Attr("data-select", "service:"+s.Slug()),
			Div(Class("icon"), icon("bi-"+s.Icon)),
			H3(g.Text(s.Title)),
			P(g.Text(s.Short)),
			Small(Class("read-more"), g.Text("Read More →")),
		))
	}
	return Section(ID("services"),
		heading("03.", "What I Do"),
		Div(Class("grid"), g.Group(cards)),
	)
}

// Projects is the showcase grid. Each card opens its detail modal.
func Projects(projects []content.Project) g.Node {
	cards := make([]g.Node, 0, len(projects))
	for i, p := range projects {
		id := strconv.Itoa(p.ID)
		cards = append(cards, Div(Class("card"), tiltAttrs(), aos("fade-up"), aosDelay(i*50),
			g.Attr("hx-get", "/projects/"+id),
			g.Attr("hx-target", "#modal-root"),
			g.Attr("data-select", "project:"+id),
			Div(Class("icon"), icon(p.Icon)),
			H3(g.Text(p.Title)),
			P(g.Text(p.Summary())),
			Small(Class("read-more"), g.Text("Click for details →")),
		))
	}
	return Section(ID("portfolio"),
		heading("04.", "Featured Projects"),
		Div(Class("grid"), g.Group(cards)),
	)
}

// Contact pairs the contact details with the terminal-style form.
func Contact(p content.Profile) g.Node {
	info := func(ic, label, value string) g.Node {
		return Div(Class("contact-info-item"), icon(ic), Div(H4(g.Text(label)), P(g.Text(value))))
	}
	return Section(ID("contact"),
		heading("05.", "Get In Touch"),
		Div(Class("contact-container"),
			Div(aos("fade-right"), aosDelay(100),
				info("bi-geo-alt", "Location", p.Location),
				info("bi-telephone", "Phone", p.Phone),
				info("bi-envelope", "Email", p.Email),
			),
			Div(Class("terminal-window"), aos("fade-left"),
				Div(Class("terminal-header"),
					Div(Class("terminal-btn red")), Div(Class("terminal-btn yellow")), Div(Class("terminal-btn green")),
					Div(Class("terminal-title"), g.Text("bash 80x24")),
				),
				Div(Class("terminal-body"), ContactPanel(FormValues{}, p.ShortName, nil)),
			),
		),
	)
}

// SiteFooter holds the big call to action, link columns and status line.
func SiteFooter(p content.Profile) g.Node {
	menu := []struct{ anchor, label string }{
		{"home", "Home"}, {"about", "About"}, {"portfolio", "Projects"}, {"contact", "Contact"},
	}
	return Footer(
		Div(Class("footer-big-cta"),
			A(Href("mailto:"+p.Email), H2(g.Text("LET'S BUILD SOMETHING"))),
		),
		Div(Class("footer-container"),
			Div(Class("footer-col"),
				H2(Class("logo"), Title("Reset Site"), g.Attr("data-action", "reset"), g.Text(p.Logo)),
				P(Class("footer-tagline"), g.Text(p.Tagline)),
			),
			Div(Class("footer-col"),
				H4(g.Text("Menu")),
				Ul(g.Map(menu, func(m struct{ anchor, label string }) g.Node {
					return Li(A(Href("#"+m.anchor), g.Attr("data-nav", m.anchor), icon("bi-chevron-right"), g.Text(" "+m.label)))
				})),
			),
			Div(Class("footer-col"),
				H4(g.Text("Expertise")),
				Ul(g.Map(p.Expertise, func(e string) g.Node {
					return Li(A(Href("#services"), g.Text(e)))
				})),
			),
			Div(Class("footer-col"),
				H4(g.Text("Connect")),
				Ul(
					Li(icon("bi-geo-alt"), g.Text(" "+p.Location)),
					Li(icon("bi-envelope"), g.Text(" "+p.Email)),
				),
				socialLinks(p.Socials),
			),
		),
		Div(Class("footer-bottom"),
			P(g.Text(p.Copyright)),
			Div(Class("system-status"), Div(Class("blink")), g.Text(" SYSTEM ONLINE")),
		),
	)
}

// ScrollTopButton appears once the page is scrolled past the threshold.
func ScrollTopButton() g.Node {
	return Button(Class("scroll-top"), ID("scroll-top"), g.Attr("data-action", "scroll-top"),
		g.Attr("aria-label", "Back to top"), g.Attr("hidden", ""),
		icon("bi-arrow-up"),
	)
}
