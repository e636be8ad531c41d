package markdown

import (
	"strings"

	"golang.org/x/net/html"
)

// wrap emits a delimited inline span, or nothing when the content is
// effectively empty, so a <strong> around whitespace never becomes "****".
func wrap(content, delim string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	return delim + content + delim
}

// rawPair falls back to raw markup for constructs Markdown has no syntax
// for, such as superscript and subscript.
func rawPair(content, tag string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	return "<" + tag + ">" + content + "</" + tag + ">"
}

// inlineCode emits a backtick span. Inside a <pre> the surrounding fence
// handles delimiting, so content passes through unchanged. The delimiter
// doubles when the content itself holds a backtick, and a space pads each
// side when the content starts or ends with a backtick or space, keeping
// the delimiters unambiguous.
func inlineCode(content string, ctx Context) string {
	if ctx.InPre {
		return content
	}
	if content == "" {
		return ""
	}
	content = strings.ReplaceAll(content, "\n", " ")

	delim := "`"
	if strings.Contains(content, "`") {
		delim = "``"
	}
	pad := ""
	if strings.HasPrefix(content, "`") || strings.HasSuffix(content, "`") ||
		strings.HasPrefix(content, " ") || strings.HasSuffix(content, " ") {
		pad = " "
	}
	return delim + pad + content + pad + delim
}

func anchor(n *html.Node, content string) string {
	href := attr(n, "href")
	if href == "" {
		return content
	}
	if title := attr(n, "title"); title != "" {
		return "[" + content + "](" + href + " \"" + strings.ReplaceAll(title, `"`, `\"`) + "\")"
	}
	return "[" + content + "](" + href + ")"
}

func image(n *html.Node) string {
	src := attr(n, "src")
	if src == "" {
		return ""
	}
	alt := attr(n, "alt")
	if title := attr(n, "title"); title != "" {
		return "![" + alt + "](" + src + " \"" + title + "\")"
	}
	return "![" + alt + "](" + src + ")"
}
