package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name             string
		in               string
		preserveNewlines bool
		want             string
	}{
		{"collapses all whitespace", "a \t\r\n b", false, "a b"},
		{"single spaces untouched", "a b c", false, "a b c"},
		{"keeps newlines when asked", "a  \tb\nc", true, "a b\nc"},
		{"caps blank runs at one blank line", "a\n\n\n\nb", true, "a\n\nb"},
		{"two newlines survive", "a\n\nb", true, "a\n\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in, tt.preserveNewlines))
		})
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"backslash first", `a\*b`, `a\\\*b`},
		{"asterisk", "a*b*c", `a\*b\*c`},
		{"leading dash", "- not a list", `\- not a list`},
		{"dash only at line start", "a - b", "a - b"},
		{"leading plus", "+ item", `\+ item`},
		{"setext underline", "===", `\===`},
		{"heading leader", "# heading", `\# heading`},
		{"seven hashes left alone", "####### x", "####### x"},
		{"backticks", "`code`", "\\`code\\`"},
		{"brackets", "[x]", `\[x\]`},
		{"blockquote leader", "> quoted", `\> quoted`},
		{"underscore", "snake_case", `snake\_case`},
		{"ordered leader", "1. item", `1\. item`},
		{"dot without space untouched", "1.item", "1.item"},
		{"multiline leaders", "- a\n- b", "\\- a\n\\- b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Escape(tt.in))
		})
	}
}
