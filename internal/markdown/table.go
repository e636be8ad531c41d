package markdown

import (
	"strings"

	"golang.org/x/net/html"
)

// table converts a <table> subtree into a GFM pipe table. The first row of
// a <thead> becomes the header with a synthesized "---" separator row; a
// <tbody>'s rows become data rows. A table with neither section promotes
// its first non-empty row to the header. Separator width follows the first
// row, so a headless table with uneven rows emits a mismatched separator;
// that quirk is kept rather than guessed around.
func table(n *html.Node, ctx Context) string {
	var lines []string

	writeRow := func(cells []string) {
		lines = append(lines, "| "+strings.Join(cells, " | ")+" |")
	}
	writeHeader := func(cells []string) {
		writeRow(cells)
		seps := make([]string, len(cells))
		for i := range seps {
			seps[i] = "---"
		}
		writeRow(seps)
	}

	headerDone := false
	if head := childElement(n, "thead"); head != nil {
		headerDone = true
		if row := childElement(head, "tr"); row != nil {
			if cells := rowCells(row, ctx); len(cells) > 0 {
				writeHeader(cells)
			}
		}
	}
	if body := childElement(n, "tbody"); body != nil {
		for row := body.FirstChild; row != nil; row = row.NextSibling {
			if !isElement(row, "tr") {
				continue
			}
			if cells := rowCells(row, ctx); len(cells) > 0 {
				writeRow(cells)
			}
		}
	}

	// Rows hanging directly off the table. The first one stands in as the
	// header when no head section was present.
	for row := n.FirstChild; row != nil; row = row.NextSibling {
		if !isElement(row, "tr") {
			continue
		}
		cells := rowCells(row, ctx)
		if len(cells) == 0 {
			continue
		}
		if !headerDone {
			writeHeader(cells)
			headerDone = true
			continue
		}
		writeRow(cells)
	}

	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n\n"
}

// rowCells renders each cell of a row to trimmed single-line text with
// pipes escaped, so cell content cannot break the table structure.
func rowCells(row *html.Node, ctx Context) []string {
	var cells []string
	for c := row.FirstChild; c != nil; c = c.NextSibling {
		if !isElement(c, "td") && !isElement(c, "th") {
			continue
		}
		text := strings.TrimSpace(renderChildren(c, ctx))
		text = strings.ReplaceAll(text, "\n", " ")
		text = strings.ReplaceAll(text, "|", `\|`)
		cells = append(cells, text)
	}
	return cells
}

func childElement(n *html.Node, tag string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isElement(c, tag) {
			return c
		}
	}
	return nil
}

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && strings.EqualFold(n.Data, tag)
}
