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
	"bytes"
	"sort"

	"github.com/timburks/ked/syntax"
	"github.com/timburks/ked/types"
)

type keyword struct {
	text      []byte
	secondary bool
}

// A Highlighter classifies the bytes of rendered rows using a syntax
// profile. A nil profile leaves everything Normal.
type Highlighter struct {
	profile  *syntax.Profile
	keywords []keyword // longest first
	scs      []byte
	mcs      []byte
	mce      []byte
}

func NewHighlighter(p *syntax.Profile) *Highlighter {
	h := &Highlighter{profile: p}
	if p == nil {
		return h
	}
	for _, k := range p.Keywords {
		kw := keyword{text: []byte(k)}
		if n := len(kw.text); n > 0 && kw.text[n-1] == '|' {
			kw.text = kw.text[:n-1]
			kw.secondary = true
		}
		if len(kw.text) > 0 {
			h.keywords = append(h.keywords, kw)
		}
	}
	sort.SliceStable(h.keywords, func(i, j int) bool {
		return len(h.keywords[i].text) > len(h.keywords[j].text)
	})
	h.scs = []byte(p.SingleLineComment)
	h.mcs = []byte(p.BlockCommentStart)
	h.mce = []byte(p.BlockCommentEnd)
	return h
}

func (h *Highlighter) Profile() *syntax.Profile {
	return h.profile
}

// Highlight fills hl (which must be as long as text) and returns whether
// text ends inside a block comment. inComment is the state carried over
// from the previous row.
func (h *Highlighter) Highlight(hl []types.Highlight, text []byte, inComment bool) bool {
	for i := range hl {
		hl[i] = types.HighlightNormal
	}
	p := h.profile
	if p == nil {
		return false
	}

	prevSep := true
	var inString byte

	i := 0
	for i < len(text) {
		c := text[i]
		prevHL := types.HighlightNormal
		if i > 0 {
			prevHL = hl[i-1]
		}

		if len(h.scs) > 0 && inString == 0 && !inComment {
			if bytes.HasPrefix(text[i:], h.scs) {
				fill(hl[i:], types.HighlightComment)
				break
			}
		}

		if len(h.mcs) > 0 && len(h.mce) > 0 && inString == 0 {
			if inComment {
				hl[i] = types.HighlightBlockComment
				if bytes.HasPrefix(text[i:], h.mce) {
					fill(hl[i:i+len(h.mce)], types.HighlightBlockComment)
					i += len(h.mce)
					inComment = false
					prevSep = true
					continue
				}
				i++
				continue
			} else if bytes.HasPrefix(text[i:], h.mcs) {
				fill(hl[i:i+len(h.mcs)], types.HighlightBlockComment)
				i += len(h.mcs)
				inComment = true
				continue
			}
		}

		if p.HasFlag(syntax.HighlightStrings) {
			if inString != 0 {
				hl[i] = types.HighlightString
				// an escaped character never closes the string
				if c == '\\' && i+1 < len(text) {
					hl[i+1] = types.HighlightString
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			} else if c == '"' || c == '\'' {
				inString = c
				hl[i] = types.HighlightString
				i++
				continue
			}
		}

		if p.HasFlag(syntax.HighlightNumbers) {
			if (isDigit(c) && (prevSep || prevHL == types.HighlightNumber)) ||
				(c == '.' && prevHL == types.HighlightNumber) {
				hl[i] = types.HighlightNumber
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if kw, ok := h.matchKeyword(text[i:]); ok {
				class := types.HighlightKeyword1
				if kw.secondary {
					class = types.HighlightKeyword2
				}
				fill(hl[i:i+len(kw.text)], class)
				i += len(kw.text)
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}
	return inComment
}

// a keyword only matches when it is followed by a separator or the end of the row
func (h *Highlighter) matchKeyword(text []byte) (keyword, bool) {
	for _, kw := range h.keywords {
		n := len(kw.text)
		if bytes.HasPrefix(text, kw.text) && (n == len(text) || isSeparator(text[n])) {
			return kw, true
		}
	}
	return keyword{}, false
}

func fill(hl []types.Highlight, class types.Highlight) {
	for i := range hl {
		hl[i] = class
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r', 0:
		return true
	}
	return bytes.IndexByte([]byte(",.()+-/*=~%<>[];"), c) >= 0
}
