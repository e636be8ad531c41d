// Package markdown converts rendered chat-transcript HTML into
// GitHub-flavored Markdown.
//
// The conversion is a single depth-first, pre-order walk over a parsed
// golang.org/x/net/html node tree. Each node produces a string fragment;
// fragments concatenate in document order. The walk threads a small
// Context value through the recursion instead of storing state on nodes
// or re-walking parent chains, and it never mutates the caller's tree.
package markdown

import (
	"strings"

	"golang.org/x/net/html"
)

// Context carries traversal-scoped flags down the recursive render.
// It is passed by value; a child's flags never leak back to its parent.
type Context struct {
	// InCode is set once a <pre> or <code> ancestor has been entered.
	// Text below it is emitted raw instead of normalized and escaped.
	InCode bool
	// InPre distinguishes a <code> inside a fenced block from inline code.
	InPre bool
	// SuppressEscape passes text through verbatim for subtrees that are
	// already well-formed Markdown.
	SuppressEscape bool
	// InListItem marks content whose nearest block ancestor is a list
	// item, which changes paragraph and nested-list emission.
	InListItem bool
}

// Render converts a node subtree to Markdown.
func Render(n *html.Node, ctx Context) string {
	if n == nil {
		return ""
	}
	switch n.Type {
	case html.TextNode:
		return renderText(n.Data, ctx)
	case html.ElementNode:
		return renderElement(n, ctx)
	case html.DocumentNode:
		return renderChildren(n, ctx)
	default:
		// Comments and doctypes have no Markdown representation.
		return ""
	}
}

func renderText(text string, ctx Context) string {
	if ctx.InCode {
		return text
	}
	text = Normalize(text, ctx.SuppressEscape)
	if ctx.SuppressEscape {
		return text
	}
	return Escape(text)
}

func renderChildren(n *html.Node, ctx Context) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(Render(c, ctx))
	}
	return b.String()
}

func renderElement(n *html.Node, ctx Context) string {
	tag := strings.ToLower(n.Data)

	// Decorative empty containers produce no structural markup at all.
	if isEmptyContainer(n) {
		return ""
	}

	childCtx := ctx
	switch tag {
	case "pre":
		childCtx.InCode = true
		childCtx.InPre = true
	case "code":
		childCtx.InCode = true
	}

	// These handlers walk their own subtrees: a table renders per cell, a
	// code fence wants the literal text of its code child, and a list item
	// may need a structural copy with its checkbox removed.
	switch tag {
	case "pre":
		return codeBlock(n, childCtx)
	case "table":
		return table(n, ctx)
	case "li":
		return listItem(n, ctx)
	case "input":
		return ""
	}

	content := renderChildren(n, childCtx)

	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return heading(int(tag[1]-'0'), content)
	case "p":
		return paragraph(content, ctx)
	case "strong", "b":
		return wrap(content, "**")
	case "em", "i":
		return wrap(content, "*")
	case "del", "s", "strike":
		return wrap(content, "~~")
	case "sup":
		return rawPair(content, "sup")
	case "sub":
		return rawPair(content, "sub")
	case "code":
		return inlineCode(content, ctx)
	case "a":
		return anchor(n, content)
	case "img":
		return image(n)
	case "br":
		return "\n"
	case "blockquote":
		return blockquote(content)
	case "hr":
		return "---\n\n"
	case "ul", "ol":
		return list(content, ctx)
	default:
		// Generic layout containers carry no Markdown semantics; their
		// children pass through unchanged.
		return content
	}
}

// isEmptyContainer reports whether an element holds only whitespace and
// none of the constructs that render without text.
func isEmptyContainer(n *html.Node) bool {
	if strings.TrimSpace(textContent(n)) != "" {
		return false
	}
	return !containsAny(n, "img", "hr", "br", "table")
}

// attr returns the value of the named attribute, or "" when absent.
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// hasAttr reports whether the attribute is present, regardless of value.
func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

// textContent concatenates every text descendant of n.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}

// containsAny reports whether n or any descendant is one of the tags.
func containsAny(n *html.Node, tags ...string) bool {
	if n.Type == html.ElementNode {
		name := strings.ToLower(n.Data)
		for _, tag := range tags {
			if name == tag {
				return true
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if containsAny(c, tags...) {
			return true
		}
	}
	return false
}

// findFirst returns the first descendant element with the given tag, or nil.
func findFirst(n *html.Node, tag string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && strings.EqualFold(c.Data, tag) {
			return c
		}
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// cloneWithout makes a structural copy of n, skipping the excluded node
// wherever it appears. The original tree is left untouched.
func cloneWithout(n, skip *html.Node) *html.Node {
	clone := &html.Node{
		Type:      n.Type,
		Data:      n.Data,
		DataAtom:  n.DataAtom,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c == skip {
			continue
		}
		clone.AppendChild(cloneWithout(c, skip))
	}
	return clone
}
