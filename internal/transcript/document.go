package transcript

import (
	"regexp"
	"strings"
)

var (
	blankRunRe     = regexp.MustCompile(`\n{3,}`)
	unsafeFileRe   = regexp.MustCompile(`[^a-zA-Z0-9 _-]+`)
	spaceRunFileRe = regexp.MustCompile(`[ _]+`)
)

// Markdown assembles the full export: title line, export timestamp, one
// role heading per turn with a separator between turns, and a final
// global whitespace cleanup.
func (d *Document) Markdown() string {
	var b strings.Builder

	title := d.Title
	if title == "" {
		title = "Conversation"
	}
	b.WriteString("# " + title + "\n\n")
	if !d.ExportedAt.IsZero() {
		b.WriteString("Exported at " + d.ExportedAt.Format("2006-01-02 15:04:05") + "\n\n")
	}

	for i, msg := range d.Messages {
		if i > 0 {
			b.WriteString("---\n\n")
		}
		b.WriteString("## " + roleHeading(msg.Role) + "\n\n")
		b.WriteString(Convert(msg))
		b.WriteString("\n\n")
	}

	return Cleanup(b.String())
}

// Cleanup collapses runs of three or more newlines to a blank line and
// trims the document edges, leaving a single trailing newline.
func Cleanup(s string) string {
	s = blankRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s) + "\n"
}

func roleHeading(role string) string {
	if role == "" {
		return "Unknown"
	}
	return strings.ToUpper(role[:1]) + role[1:]
}

// SanitizeFilename turns a conversation title into a safe file name,
// without extension. An unusable title falls back to "conversation".
func SanitizeFilename(title string) string {
	name := unsafeFileRe.ReplaceAllString(title, "")
	name = strings.TrimSpace(name)
	name = spaceRunFileRe.ReplaceAllString(name, "_")
	if len(name) > 100 {
		name = name[:100]
	}
	name = strings.Trim(name, "_-")
	if name == "" {
		return "conversation"
	}
	return name
}
