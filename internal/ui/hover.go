package ui

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element describes one node on the path from a pointer target to the root.
type Element struct {
	Tag     string   `json:"tag"`
	Classes []string `json:"classes,omitempty"`
}

// HoverClass is added to the page root while the pointer is over something interactive.
const HoverClass = "hovering"

// InteractiveSelectors are the targets that switch the cursor into its hover state.
const InteractiveSelectors = "a, button, .card, .logo, input, textarea, .footer-big-cta h2, .hamburger, .mobile-menu-overlay a"

var interactive = cascadia.MustCompile(InteractiveSelectors)

// Hovering reports whether the pointer target, given as its ancestor chain
// (target first), is or sits inside an interactive element.
func Hovering(chain []Element) bool {
	for n := elementTree(chain); n != nil; n = n.Parent {
		if interactive.Match(n) {
			return true
		}
	}
	return false
}

// elementTree rebuilds the chain as linked html nodes and returns the target.
func elementTree(chain []Element) *html.Node {
	var parent, n *html.Node
	for i := len(chain) - 1; i >= 0; i-- {
		n = elementNode(chain[i])
		if parent != nil {
			parent.AppendChild(n)
		}
		parent = n
	}
	return n
}

func elementNode(el Element) *html.Node {
	tag := strings.ToLower(el.Tag)
	n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
	if len(el.Classes) > 0 {
		n.Attr = []html.Attribute{{Key: "class", Val: strings.Join(el.Classes, " ")}}
	}
	return n
}
