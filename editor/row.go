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
	"github.com/timburks/ked/types"
)

// A row of text in the editor
type Row struct {
	Index     int
	raw       []byte
	render    []byte
	highlight []types.Highlight
	open      bool // ends inside an unterminated block comment
	openIn    bool // block comment state the row was last highlighted with
	fresh     bool // false until the row has been highlighted once
}

func newRow(index int, text []byte) *Row {
	r := &Row{Index: index}
	r.raw = append(make([]byte, 0, len(text)), text...)
	return r
}

// Raw returns the bytes of the row as they are stored in the file.
func (r *Row) Raw() []byte {
	return r.raw
}

// Render returns the row with tabs expanded.
func (r *Row) Render() []byte {
	return r.render
}

// Highlight returns one classification per byte of Render.
func (r *Row) Highlight() []types.Highlight {
	return r.highlight
}

// Open reports whether the row ends inside a block comment.
func (r *Row) Open() bool {
	return r.open
}

func (r *Row) Length() int {
	return len(r.raw)
}

func (r *Row) Text() string {
	return string(r.raw)
}

// returns the text after a specified column
func (r *Row) TextAfter(col int) string {
	if col < len(r.raw) {
		return string(r.raw[col:])
	}
	return ""
}

// We replace each tab with spaces up to the next tab stop.
func (r *Row) updateRender(tabStop int) {
	tabs := 0
	for _, c := range r.raw {
		if c == '\t' {
			tabs++
		}
	}
	render := r.render[:0]
	if cap(render) < len(r.raw)+tabs*(tabStop-1) {
		render = make([]byte, 0, len(r.raw)+tabs*(tabStop-1))
	}
	for _, c := range r.raw {
		if c == '\t' {
			render = append(render, ' ')
			for len(render)%tabStop != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}
	r.render = render
	if cap(r.highlight) >= len(render) {
		r.highlight = r.highlight[:len(render)]
	} else {
		r.highlight = make([]types.Highlight, len(render))
	}
}

func (r *Row) insertChar(at int, c byte) {
	if at < 0 || at > len(r.raw) {
		at = len(r.raw)
	}
	r.raw = append(r.raw, 0)
	copy(r.raw[at+1:], r.raw[at:])
	r.raw[at] = c
}

// delete character at col, reporting whether anything was deleted
func (r *Row) deleteChar(at int) bool {
	if at < 0 || at >= len(r.raw) {
		return false
	}
	r.raw = append(r.raw[:at], r.raw[at+1:]...)
	return true
}

func (r *Row) appendBytes(text []byte) {
	r.raw = append(r.raw, text...)
}

// truncates the row at col and returns a copy of the removed suffix
func (r *Row) split(col int) []byte {
	after := append([]byte(nil), r.raw[col:]...)
	r.raw = r.raw[:col]
	return after
}

// CxToRx returns the display column of byte column cx.
func (r *Row) CxToRx(cx, tabStop int) int {
	return CxToRx(r.raw, cx, tabStop)
}

// RxToCx returns the byte column shown at display column rx.
func (r *Row) RxToCx(rx, tabStop int) int {
	return RxToCx(r.raw, rx, tabStop)
}

// CxToRx converts a byte column into a display column by expanding tabs.
// Columns past the end of text are clamped to its length.
func CxToRx(text []byte, cx, tabStop int) int {
	if cx > len(text) {
		cx = len(text)
	}
	rx := 0
	for j := 0; j < cx; j++ {
		if text[j] == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
	}
	return rx
}

// RxToCx is the inverse of CxToRx: it returns the first byte column whose
// display extent passes rx, or the length of text when rx is beyond it.
func RxToCx(text []byte, rx, tabStop int) int {
	cur := 0
	cx := 0
	for ; cx < len(text); cx++ {
		if text[cx] == '\t' {
			cur += (tabStop - 1) - (cur % tabStop)
		}
		cur++
		if cur > rx {
			return cx
		}
	}
	return cx
}
