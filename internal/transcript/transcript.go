// Package transcript extracts conversation turns from a rendered chat
// page and assembles the Markdown export document.
//
// A page is expected to carry one element per turn tagged with a
// data-message-author-role attribute. Each role selects its own content
// subtree: plain-text roles keep their literal text in a
// whitespace-pre-wrap container, rich-content roles carry rendered
// Markdown under a markdown-classed container. Pages without tagged turns
// degrade to a single turn built from the page's main content node.
package transcript

import (
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/tesh254/chatdown/internal/markdown"
)

// Roles recognized on turn containers.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	// RolePage is the synthetic role for pages without tagged turns.
	RolePage = "transcript"
)

// roleAttr is the attribute carrying the author role on each turn element.
const roleAttr = "data-message-author-role"

// Message is a single conversation turn: the author role and the content
// subtree selected for it.
type Message struct {
	Role    string
	Content *html.Node
}

// Document is a full conversation ready to be rendered as Markdown.
type Document struct {
	Title      string
	Source     string
	ExportedAt time.Time
	Messages   []Message
}

// Parse reads a rendered page and produces the export document.
func Parse(r io.Reader) (*Document, error) {
	node, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return FromNode(node), nil
}

// FromNode builds the export document from an already parsed page.
func FromNode(node *html.Node) *Document {
	doc := &Document{
		Title:      pageTitle(node),
		ExportedAt: time.Now(),
		Messages:   Extract(node),
	}
	if len(doc.Messages) == 0 {
		if main := mainContentNode(node); main != nil {
			doc.Messages = []Message{{Role: RolePage, Content: main}}
		}
	}
	return doc
}

// Extract collects the per-turn messages in document order. Turns are not
// nested, so the walk stops descending once a role-tagged element is found.
func Extract(node *html.Node) []Message {
	var messages []Message
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if role := attr(n, roleAttr); role != "" {
				messages = append(messages, Message{Role: role, Content: contentRoot(n, role)})
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(node)
	return messages
}

// contentRoot picks the subtree to convert for a role, falling back to the
// whole turn when the expected container is missing.
func contentRoot(turn *html.Node, role string) *html.Node {
	class := "markdown"
	if role == RoleUser {
		class = "whitespace-pre-wrap"
	}
	if n := findByClass(turn, class); n != nil {
		return n
	}
	return turn
}

// Convert renders one message to Markdown. Rich-content turns were
// authored as Markdown, so their text passes through unescaped. A failure
// inside the engine degrades to a placeholder section instead of aborting
// the whole export.
func Convert(msg Message) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = "*[message could not be converted]*\n"
		}
	}()
	ctx := markdown.Context{SuppressEscape: msg.Role == RoleAssistant}
	return markdown.Render(msg.Content, ctx)
}

// pageTitle returns the text of the first <title> element, collapsed to a
// single line.
func pageTitle(n *html.Node) string {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, "title") && n.FirstChild != nil {
		return strings.Join(strings.Fields(n.FirstChild.Data), " ")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if title := pageTitle(c); title != "" {
			return title
		}
	}
	return ""
}

// mainContentNode finds the node a page without tagged turns converts
// from: <main>, <article>, an id of "content"/"main", then <body>.
func mainContentNode(node *html.Node) *html.Node {
	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode {
			if n.Data == "main" || n.Data == "article" {
				found = n
				return
			}
			if id := attr(n, "id"); id == "content" || id == "main" {
				found = n
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(node)
	if found != nil {
		return found
	}
	return findTag(node, "body")
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func findByClass(n *html.Node, class string) *html.Node {
	if n.Type == html.ElementNode {
		for _, c := range strings.Fields(attr(n, "class")) {
			if c == class {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByClass(c, class); found != nil {
			return found
		}
	}
	return nil
}

func findTag(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findTag(c, tag); found != nil {
			return found
		}
	}
	return nil
}
