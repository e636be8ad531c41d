package markdown

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

var (
	fenceLangRe       = regexp.MustCompile(`language-(\S+)`)
	leadingBlankRe    = regexp.MustCompile(`^\n+`)
	trailingNewlineRe = regexp.MustCompile(`\n+$`)
)

func heading(level int, content string) string {
	return strings.Repeat("#", level) + " " + strings.TrimSpace(content) + "\n\n"
}

// paragraph drops the trailing blank line inside a list item: a blank line
// there would split the item in two.
func paragraph(content string, ctx Context) string {
	if ctx.InListItem {
		return strings.TrimSpace(content)
	}
	return strings.TrimSpace(content) + "\n\n"
}

// codeBlock emits a fenced block. When the <pre> wraps a <code> child, its
// literal text is used and a language-<token> class becomes the fence
// language; otherwise the rendered children stand in.
func codeBlock(n *html.Node, ctx Context) string {
	lang := ""
	var code string
	if codeNode := findFirst(n, "code"); codeNode != nil {
		if m := fenceLangRe.FindStringSubmatch(attr(codeNode, "class")); m != nil {
			lang = m[1]
		}
		code = textContent(codeNode)
	} else {
		code = renderChildren(n, ctx)
	}
	return "```" + lang + "\n" + strings.TrimSpace(code) + "\n```\n\n"
}

func blockquote(content string) string {
	lines := strings.Split(strings.TrimSpace(content), "\n")
	for i, line := range lines {
		lines[i] = "> " + line
	}
	return strings.Join(lines, "\n") + "\n\n"
}

// list wraps the concatenated items with single newlines. Items terminate
// themselves, so no blank-line padding is added; a blank line around a
// nested list would break the parent item.
func list(content string, ctx Context) string {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return ""
	}
	if ctx.InListItem {
		return "\n  " + strings.ReplaceAll(trimmed, "\n", "\n  ") + "\n"
	}
	return "\n" + trimmed + "\n"
}

// listItem emits one item. A checkbox child turns the item into a task
// entry and is removed via a structural copy before the body renders, so
// neither the caller's tree nor the output carries the checkbox itself.
func listItem(n *html.Node, ctx Context) string {
	marker := "- "
	if parent := n.Parent; parent != nil && parent.Type == html.ElementNode && strings.EqualFold(parent.Data, "ol") {
		start := 1
		if v := attr(parent, "start"); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil {
				start = parsed
			}
		}
		marker = strconv.Itoa(start+itemIndex(n)) + ". "
	}

	task := ""
	body := n
	if box := findCheckbox(n); box != nil {
		if hasAttr(box, "checked") {
			task = "[x] "
		} else {
			task = "[ ] "
		}
		body = cloneWithout(n, box)
	}

	itemCtx := ctx
	itemCtx.InListItem = true
	content := renderChildren(body, itemCtx)
	content = leadingBlankRe.ReplaceAllString(content, "")
	content = trailingNewlineRe.ReplaceAllString(content, "\n")
	// Continuation lines nest under the marker.
	content = strings.ReplaceAll(content, "\n", "\n  ")
	content = strings.TrimRight(content, " ")

	out := marker + task + content
	if n.NextSibling != nil && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}

// itemIndex is the 0-based position of n among its li siblings.
func itemIndex(n *html.Node) int {
	i := 0
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode && strings.EqualFold(s.Data, "li") {
			i++
		}
	}
	return i
}

func findCheckbox(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && strings.EqualFold(c.Data, "input") &&
			strings.EqualFold(attr(c, "type"), "checkbox") {
			return c
		}
		if found := findCheckbox(c); found != nil {
			return found
		}
	}
	return nil
}
