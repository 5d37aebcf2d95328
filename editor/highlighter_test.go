//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/timburks/ked/syntax"
	"github.com/timburks/ked/types"
)

const (
	N  = types.HighlightNormal
	C  = types.HighlightComment
	B  = types.HighlightBlockComment
	K1 = types.HighlightKeyword1
	K2 = types.HighlightKeyword2
	S  = types.HighlightString
	D  = types.HighlightNumber
)

func cHighlighter() *Highlighter {
	return NewHighlighter(syntax.NewDatabase().Select("test.c"))
}

func highlight(h *Highlighter, text string, inComment bool) ([]types.Highlight, bool) {
	hl := make([]types.Highlight, len(text))
	open := h.Highlight(hl, []byte(text), inComment)
	return hl, open
}

func TestHighlight(t *testing.T) {
	h := cHighlighter()
	for _, tt := range []struct {
		name string
		text string
		want []types.Highlight
	}{
		{"declaration", "int x = 42; // hi",
			[]types.Highlight{K2, K2, K2, N, N, N, N, N, D, D, N, N, C, C, C, C, C}},
		{"keyword", "if(x)", []types.Highlight{K1, K1, N, N, N}},
		{"keyword prefix", "integer", []types.Highlight{N, N, N, N, N, N, N}},
		{"digit in identifier", "x1", []types.Highlight{N, N}},
		{"decimal", "1.5", []types.Highlight{D, D, D}},
		{"escaped quote", `"a\"b" c`, []types.Highlight{S, S, S, S, S, S, N, N}},
		{"single quotes", `'x'`, []types.Highlight{S, S, S}},
		{"comment in string", `"//"`, []types.Highlight{S, S, S, S}},
		{"block comment", "a /* b */ c", []types.Highlight{N, N, B, B, B, B, B, B, B, N, N}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			hl, open := highlight(h, tt.text, false)
			assert.Equal(t, tt.want, hl)
			assert.False(t, open)
		})
	}
}

func TestHighlightOpenComment(t *testing.T) {
	h := cHighlighter()

	hl, open := highlight(h, "x /* y", false)
	assert.True(t, open)
	assert.Equal(t, []types.Highlight{N, N, B, B, B, B}, hl)

	hl, open = highlight(h, "a */ b", true)
	assert.False(t, open)
	assert.Equal(t, []types.Highlight{B, B, B, B, N, N}, hl)

	hl, open = highlight(h, "// not a line comment", true)
	assert.True(t, open)
	for _, class := range hl {
		assert.Equal(t, B, class)
	}
}

func TestHighlightWithoutProfile(t *testing.T) {
	h := NewHighlighter(nil)
	hl, open := highlight(h, "int /* x", true)
	assert.False(t, open)
	for _, class := range hl {
		assert.Equal(t, N, class)
	}
}

func TestHighlightLongestKeyword(t *testing.T) {
	h := NewHighlighter(&syntax.Profile{
		FileType: "test",
		Keywords: []string{"a", "a.b|"},
	})
	hl, _ := highlight(h, "a.b a", false)
	assert.Equal(t, []types.Highlight{K2, K2, K2, N, K1}, hl)
}

func TestHighlightIsIdempotent(t *testing.T) {
	h := cHighlighter()
	text := []byte(`while (n < 10) { s = "x"; /* loop`)
	first := make([]types.Highlight, len(text))
	open := h.Highlight(first, text, false)
	second := make([]types.Highlight, len(text))
	copy(second, first)
	assert.Equal(t, open, h.Highlight(second, text, false))
	assert.Equal(t, first, second)
}

func TestHighlightFlags(t *testing.T) {
	h := NewHighlighter(&syntax.Profile{FileType: "plain", SingleLineComment: "#"})
	hl, _ := highlight(h, `7 "s" # c`, false)
	assert.Equal(t, []types.Highlight{N, N, N, N, N, N, C, C, C}, hl)
}
