package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// renderHTML parses a fragment the way a browser would and renders the
// body's children, which is how the engine receives real message subtrees.
func renderHTML(t *testing.T, fragment string, ctx Context) string {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(fragment))
	require.NoError(t, err)
	body := findFirst(doc, "body")
	require.NotNil(t, body)
	return renderChildren(body, ctx)
}

func TestPlainTextIdentity(t *testing.T) {
	got := renderHTML(t, "hello world 123", Context{})
	assert.Equal(t, "hello world 123", got)
}

func TestLeaderEscaping(t *testing.T) {
	assert.Equal(t, `\- not a list`, renderHTML(t, "- not a list", Context{}))
	assert.Equal(t, "- not a list", renderHTML(t, "- not a list", Context{SuppressEscape: true}))
}

func TestHeadings(t *testing.T) {
	assert.Equal(t, "# Title\n\n", renderHTML(t, "<h1> Title </h1>", Context{}))
	assert.Equal(t, "###### Deep\n\n", renderHTML(t, "<h6>Deep</h6>", Context{}))
}

func TestParagraph(t *testing.T) {
	assert.Equal(t, "one two\n\n", renderHTML(t, "<p>one\ntwo</p>", Context{}))
}

func TestInlineFormatting(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strong", "<strong>bold</strong>", "**bold**"},
		{"b alias", "<b>bold</b>", "**bold**"},
		{"emphasis", "<em>it</em>", "*it*"},
		{"strike", "<del>gone</del>", "~~gone~~"},
		{"superscript", "x<sup>2</sup>", "x<sup>2</sup>"},
		{"subscript", "H<sub>2</sub>O", "H<sub>2</sub>O"},
		{"empty strong collapses", "<strong>   </strong>", ""},
		{"empty emphasis collapses", "a<em> </em>b", "ab"},
		{"nested strong em", "<strong><em>x</em></strong>", "***x***"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderHTML(t, tt.in, Context{}))
		})
	}
}

func TestInlineCode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "<code>go test</code>", "`go test`"},
		{"newlines collapse", "<code>a\nb</code>", "`a b`"},
		{"backtick doubles delimiter", "<code>a`b</code>", "``a`b``"},
		{"leading backtick pads", "<code>`x</code>", "`` `x ``"},
		{"leading space pads", "<code> x</code>", "`  x `"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderHTML(t, tt.in, Context{}))
		})
	}
}

func TestAnchors(t *testing.T) {
	assert.Equal(t, "[site](https://example.com)",
		renderHTML(t, `<a href="https://example.com">site</a>`, Context{}))
	assert.Equal(t, `[site](https://example.com "a\"b")`,
		renderHTML(t, `<a href="https://example.com" title='a"b'>site</a>`, Context{}))
	assert.Equal(t, "just text", renderHTML(t, "<a>just text</a>", Context{}))
}

func TestImages(t *testing.T) {
	assert.Equal(t, "![alt](pic.png)", renderHTML(t, `<img src="pic.png" alt="alt">`, Context{}))
	assert.Equal(t, `![](pic.png "t")`, renderHTML(t, `<img src="pic.png" title="t">`, Context{}))
	assert.Equal(t, "", renderHTML(t, `<img alt="no source">`, Context{}))
}

func TestLineBreak(t *testing.T) {
	assert.Equal(t, "a\nb", renderHTML(t, "a<br>b", Context{}))
}

func TestCodeFence(t *testing.T) {
	got := renderHTML(t, `<pre><code class="language-python">print(1)</code></pre>`, Context{})
	assert.Equal(t, "```python\nprint(1)\n```\n\n", got)
}

func TestCodeFenceWithoutLanguage(t *testing.T) {
	got := renderHTML(t, "<pre><code>raw *stuff*</code></pre>", Context{})
	assert.Equal(t, "```\nraw *stuff*\n```\n\n", got)
}

func TestCodeFencePreservesLiteralText(t *testing.T) {
	// Code inside a fence is neither collapsed nor escaped.
	got := renderHTML(t, "<pre><code>a  b\n_c_</code></pre>", Context{})
	assert.Equal(t, "```\na  b\n_c_\n```\n\n", got)
}

func TestBlockquote(t *testing.T) {
	got := renderHTML(t, "<blockquote>line one<br>line two</blockquote>", Context{})
	assert.Equal(t, "> line one\n> line two\n\n", got)
}

func TestHorizontalRule(t *testing.T) {
	assert.Equal(t, "---\n\n", renderHTML(t, "<hr>", Context{}))
}

func TestUnknownTagsPassThrough(t *testing.T) {
	assert.Equal(t, "a b", renderHTML(t, "<div><span>a</span> b</div>", Context{}))
}

func TestEmptyContainerGuard(t *testing.T) {
	assert.Equal(t, "", renderHTML(t, "<p>   </p>", Context{}))
	assert.Equal(t, "", renderHTML(t, "<div><span>\n\t</span></div>", Context{}))
	// An image keeps its otherwise-empty container alive.
	assert.Equal(t, "![](x.png)", renderHTML(t, `<div><img src="x.png"></div>`, Context{}))
}

func TestUnorderedList(t *testing.T) {
	got := renderHTML(t, "<ul><li>a</li><li>b</li></ul>", Context{})
	assert.Equal(t, "\n- a\n- b\n", got)
}

func TestOrderedListWithStart(t *testing.T) {
	got := renderHTML(t, `<ol start="3"><li>a</li><li>b</li></ol>`, Context{})
	assert.Equal(t, "\n3. a\n4. b\n", got)
}

func TestNestedListIndentation(t *testing.T) {
	got := renderHTML(t, "<ul><li><ul><li>x</li></ul></li></ul>", Context{})
	assert.Equal(t, "\n-   - x\n", got)
}

func TestListItemWithParagraphAndNestedList(t *testing.T) {
	got := renderHTML(t, "<ul><li><p>a</p><ul><li>x</li></ul></li></ul>", Context{})
	assert.Equal(t, "\n- a\n    - x\n", got)
}

func TestTaskList(t *testing.T) {
	got := renderHTML(t, `<ul><li><input type="checkbox" checked>done</li></ul>`, Context{})
	assert.Equal(t, "\n- [x] done\n", got)

	got = renderHTML(t, `<ul><li><input type="checkbox">done</li></ul>`, Context{})
	assert.Equal(t, "\n- [ ] done\n", got)
}

func TestTaskListDoesNotMutateInput(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<ul><li><input type="checkbox" checked>done</li></ul>`))
	require.NoError(t, err)
	body := findFirst(doc, "body")
	require.NotNil(t, body)

	_ = renderChildren(body, Context{})

	// The checkbox is still attached to the caller's tree after rendering.
	item := findFirst(body, "li")
	require.NotNil(t, item)
	assert.NotNil(t, findCheckbox(item))
}

func TestEmptyListRendersNothing(t *testing.T) {
	assert.Equal(t, "", renderHTML(t, "<ul><li>  </li></ul>", Context{}))
}

func TestParagraphInsideListItemStaysTight(t *testing.T) {
	got := renderHTML(t, "<ul><li><p>para</p></li><li>next</li></ul>", Context{})
	assert.Equal(t, "\n- para\n- next\n", got)
}

func TestOrphanListItemGetsDefaultMarker(t *testing.T) {
	// A list item without a marker-able parent degrades to an unordered
	// marker instead of failing.
	item := elem("li", text("stray"))
	assert.Equal(t, "- stray", Render(item, Context{}))
}

func TestMixedBlocks(t *testing.T) {
	fragment := "<h2>Plan</h2><p>Steps:</p><ol><li>first</li><li>second</li></ol><p>Done.</p>"
	want := "## Plan\n\nSteps:\n\n\n1. first\n2. second\nDone.\n\n"
	assert.Equal(t, want, renderHTML(t, fragment, Context{}))
}

func TestSuppressedEscapingPreservesNewlines(t *testing.T) {
	got := renderHTML(t, "a\n\n\n\nb", Context{SuppressEscape: true})
	assert.Equal(t, "a\n\nb", got)
}
