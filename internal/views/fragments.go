package views

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Kavindu379/portfolio/internal/content"
)

func modal(extraClass string, children ...g.Node) g.Node {
	return Div(Class("modal-overlay "+extraClass), g.Attr("data-action", "modal-overlay"),
		Div(Class("modal-content"), g.Attr("data-modal-panel", ""),
			Button(Class("close-btn"), g.Attr("data-action", "close-modal"), g.Attr("aria-label", "Close"), g.Raw("&times;")),
			g.Group(children),
		),
	)
}

// ProjectModal is the detail view of one project.
func ProjectModal(p content.Project) g.Node {
	return modal("project-modal",
		Div(Class("modal-header"), Img(Src(p.Image), Alt(p.Title))),
		Div(Class("modal-body"),
			H3(g.Text(p.Title)),
			P(Class("modal-category"), g.Text(p.Category)),
			Div(Class("modal-description"), markdown(p.Description)),
			Div(Class("modal-tech-list"),
				g.Map(p.Tech, func(t string) g.Node { return Span(Class("modal-tech-tag"), g.Text(t)) }),
			),
			Div(Class("modal-links"),
				MagneticButton(p.Repo, "btn btn-primary", Target("_blank"), Rel("noopener"), icon("bi-github"), g.Text(" View Code")),
			),
		),
	)
}

// ServiceModal is the detail view of one service.
func ServiceModal(s content.Service) g.Node {
	return modal("service-modal",
		Div(Class("modal-body service-body"),
			Div(Class("icon"), icon("bi-"+s.Icon)),
			H3(g.Text(s.Title)),
			Div(Class("modal-description"), markdown(s.Long)),
		),
	)
}

// NotFound is returned in place of a modal for an unknown item.
func NotFound(what string) g.Node {
	return modal("not-found",
		Div(Class("modal-body"),
			H3(g.Text("404")),
			P(g.Text(what+" not found.")),
		),
	)
}

// FormValues repopulates the contact form after a failed send.
type FormValues struct {
	Name    string
	Email   string
	Message string
}

// ContactForm is the terminal-style form. It posts back to the site and
// the response replaces the surrounding panel.
func ContactForm(v FormValues, owner string) g.Node {
	prompt := Span(Class("prompt"), g.Text("root@"+strings.ToLower(owner)+":~$"))
	return Form(Action("/contact"), Method("post"),
		g.Attr("hx-post", "/contact"),
		g.Attr("hx-target", "#contact-panel"),
		g.Attr("hx-swap", "outerHTML"),
		Div(Class("command-line"), prompt,
			Input(Type("text"), Name("name"), Class("terminal-input"), Placeholder("enter name"), Required(), Value(v.Name))),
		Div(Class("command-line"), prompt,
			Input(Type("email"), Name("email"), Class("terminal-input"), Placeholder("enter email"), Required(), Value(v.Email))),
		Div(Class("command-line"), prompt,
			Textarea(Name("message"), Class("terminal-input"), Rows("3"), Placeholder("enter message..."), Required(), g.Text(v.Message))),
		MagneticButton("", "btn btn-primary", Type("submit"), g.Text("> Send Message")),
	)
}

// ContactPanel wraps the form and an optional status line.
func ContactPanel(v FormValues, owner string, status g.Node) g.Node {
	return Div(ID("contact-panel"), status, ContactForm(v, owner))
}

// ContactSuccess replaces the panel after a delivered message: a
// confirmation and a cleared form.
func ContactSuccess(owner string) g.Node {
	return ContactPanel(FormValues{}, owner,
		Div(Class("terminal-output success"), g.Attr("role", "status"),
			g.Text("Message sent successfully! I'll get back to you soon.")))
}

// ContactError keeps what the visitor typed and says why it failed.
func ContactError(v FormValues, owner, reason string) g.Node {
	return ContactPanel(v, owner,
		Div(Class("terminal-output error"), g.Attr("role", "alert"), g.Text(reason)))
}
