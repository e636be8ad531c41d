package transcript

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<html><head><title>  Weather
  Chat  </title></head><body>
<div data-message-author-role="user"><div class="whitespace-pre-wrap">What is 2 * 2?</div></div>
<div data-message-author-role="assistant"><div class="markdown"><p>The answer is <strong>4</strong>.</p></div></div>
</body></html>`

func parsePage(t *testing.T, page string) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func TestExtractMessages(t *testing.T) {
	doc := parsePage(t, samplePage)

	require.Len(t, doc.Messages, 2)
	assert.Equal(t, RoleUser, doc.Messages[0].Role)
	assert.Equal(t, RoleAssistant, doc.Messages[1].Role)
	assert.Equal(t, "Weather Chat", doc.Title)
}

func TestConvertEscapesPlainTextRoles(t *testing.T) {
	doc := parsePage(t, samplePage)

	// The user's literal "*" must not come out as Markdown emphasis.
	assert.Equal(t, `What is 2 \* 2?`, Convert(doc.Messages[0]))
	assert.Equal(t, "The answer is **4**.\n\n", Convert(doc.Messages[1]))
}

func TestConvertPassesRichContentThrough(t *testing.T) {
	page := `<html><body><div data-message-author-role="assistant">` +
		`<div class="markdown">- already markdown</div></div></body></html>`
	doc := parsePage(t, page)

	require.Len(t, doc.Messages, 1)
	assert.Equal(t, "- already markdown", Convert(doc.Messages[0]))
}

func TestContentRootFallsBackToTurn(t *testing.T) {
	page := `<html><body><div data-message-author-role="user">bare text</div></body></html>`
	doc := parsePage(t, page)

	require.Len(t, doc.Messages, 1)
	assert.Equal(t, "bare text", Convert(doc.Messages[0]))
}

func TestUntaggedPageDegradesToMainContent(t *testing.T) {
	page := `<html><head><title>Docs</title></head><body>` +
		`<nav>skip me</nav><main><h1>Hello</h1></main></body></html>`
	doc := parsePage(t, page)

	require.Len(t, doc.Messages, 1)
	assert.Equal(t, RolePage, doc.Messages[0].Role)
	assert.Equal(t, "# Hello\n\n", Convert(doc.Messages[0]))
}

func TestConvertRecoversFromNilContent(t *testing.T) {
	assert.Equal(t, "", Convert(Message{Role: RoleUser}))
}

func TestDocumentMarkdown(t *testing.T) {
	doc := parsePage(t, samplePage)
	doc.ExportedAt = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	want := "# Weather Chat\n\n" +
		"Exported at 2026-08-31 12:00:00\n\n" +
		"## User\n\n" +
		`What is 2 \* 2?` + "\n\n" +
		"---\n\n" +
		"## Assistant\n\n" +
		"The answer is **4**.\n"
	assert.Equal(t, want, doc.Markdown())
}

func TestDocumentMarkdownEmptyTitle(t *testing.T) {
	doc := &Document{}
	assert.True(t, strings.HasPrefix(doc.Markdown(), "# Conversation\n"))
}

func TestCleanup(t *testing.T) {
	assert.Equal(t, "a\n\nb\n", Cleanup("\n\na\n\n\n\n\nb\n\n"))
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Weather Chat", "Weather_Chat"},
		{"a/b\\c: d?", "abc_d"},
		{"  spaced   out  ", "spaced_out"},
		{"///", "conversation"},
		{"", "conversation"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.in), "input %q", tt.in)
	}
}
