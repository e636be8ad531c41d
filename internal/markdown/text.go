package markdown

import "regexp"

var (
	anySpaceRe     = regexp.MustCompile(`[ \t\r\n]+`)
	inlineSpaceRe  = regexp.MustCompile(`[ \t]+`)
	manyNewlinesRe = regexp.MustCompile(`\n{3,}`)
)

// Normalize collapses whitespace the way Markdown itself treats it. With
// preserveNewlines false every whitespace run becomes a single space; with
// it true only spaces and tabs collapse, and runs of three or more
// newlines shrink to exactly two.
func Normalize(text string, preserveNewlines bool) string {
	if !preserveNewlines {
		return anySpaceRe.ReplaceAllString(text, " ")
	}
	text = inlineSpaceRe.ReplaceAllString(text, " ")
	return manyNewlinesRe.ReplaceAllString(text, "\n\n")
}

// escapeRules run in a fixed order: the backslash rule comes first so a
// later escape never re-triggers it.
var escapeRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`\\`), `\\`},
	{regexp.MustCompile(`\*`), `\*`},
	{regexp.MustCompile(`(?m)^-`), `\-`},
	{regexp.MustCompile(`(?m)^\+ `), `\+ `},
	{regexp.MustCompile(`(?m)^(=+)`), `\$1`},
	{regexp.MustCompile(`(?m)^(#{1,6}) `), `\$1 `},
	{regexp.MustCompile("`"), "\\`"},
	{regexp.MustCompile(`\[`), `\[`},
	{regexp.MustCompile(`\]`), `\]`},
	{regexp.MustCompile(`(?m)^>`), `\>`},
	{regexp.MustCompile(`_`), `\_`},
	{regexp.MustCompile(`(?m)^(\d+)\. `), `$1\. `},
}

// Escape backslash-escapes the characters that would otherwise be read as
// Markdown syntax, including list, heading, and blockquote leaders at the
// start of a line.
func Escape(text string) string {
	for _, rule := range escapeRules {
		text = rule.re.ReplaceAllString(text, rule.repl)
	}
	return text
}
