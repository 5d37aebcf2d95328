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

	"github.com/timburks/ked/syntax"
)

// DefaultTabStop is the width of a tab when none is configured.
const DefaultTabStop = 2

// A Buffer is the document being edited: an ordered list of rows, each kept
// in sync with its rendered and highlighted form.
type Buffer struct {
	fileName    string
	rows        []*Row
	dirty       int
	tabStop     int
	highlighter *Highlighter
}

func NewBuffer(tabStop int) *Buffer {
	if tabStop < 1 {
		tabStop = DefaultTabStop
	}
	b := &Buffer{tabStop: tabStop}
	b.rows = make([]*Row, 0)
	b.highlighter = NewHighlighter(nil)
	return b
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
}

func (b *Buffer) TabStop() int {
	return b.tabStop
}

// Syntax returns the selected profile, or nil when highlighting is off.
func (b *Buffer) Syntax() *syntax.Profile {
	return b.highlighter.Profile()
}

// SetSyntax selects a profile and rehighlights every row.
func (b *Buffer) SetSyntax(p *syntax.Profile) {
	b.highlighter = NewHighlighter(p)
	for _, r := range b.rows {
		r.fresh = false
	}
	b.highlightFrom(0, true)
}

// Dirty counts the changes made since the last load or save.
func (b *Buffer) Dirty() int {
	return b.dirty
}

func (b *Buffer) IsDirty() bool {
	return b.dirty != 0
}

func (b *Buffer) MarkClean() {
	b.dirty = 0
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

// Row returns row i, or nil if there is no such row.
func (b *Buffer) Row(i int) *Row {
	if i < 0 || i >= len(b.rows) {
		return nil
	}
	return b.rows[i]
}

func (b *Buffer) GetRowLength(i int) int {
	if r := b.Row(i); r != nil {
		return r.Length()
	}
	return 0
}

func (b *Buffer) TextAfter(row, col int) string {
	if r := b.Row(row); r != nil {
		return r.TextAfter(col)
	}
	return ""
}

// LoadLines replaces the contents of the buffer and marks it clean.
func (b *Buffer) LoadLines(lines [][]byte) {
	b.rows = make([]*Row, 0, len(lines))
	for i, line := range lines {
		r := newRow(i, line)
		r.updateRender(b.tabStop)
		b.rows = append(b.rows, r)
	}
	b.highlightFrom(0, true)
	b.dirty = 0
}

// ReplaceLines replaces the contents of the buffer as a single change.
func (b *Buffer) ReplaceLines(lines [][]byte) {
	dirty := b.dirty
	b.LoadLines(lines)
	b.dirty = dirty + 1
}

// InsertRow adds a row before index at, which is clamped to the valid range.
func (b *Buffer) InsertRow(at int, text []byte) {
	if at < 0 {
		at = 0
	}
	if at > len(b.rows) {
		at = len(b.rows)
	}
	r := newRow(at, text)
	b.rows = append(b.rows, nil)
	copy(b.rows[at+1:], b.rows[at:])
	b.rows[at] = r
	b.renumber(at + 1)
	b.update(at)
	b.dirty++
}

// DeleteRow removes row at. The last remaining row is never removed.
func (b *Buffer) DeleteRow(at int) {
	if at < 0 || at >= len(b.rows) {
		return
	}
	if len(b.rows) == 1 {
		return
	}
	copy(b.rows[at:], b.rows[at+1:])
	b.rows[len(b.rows)-1] = nil
	b.rows = b.rows[:len(b.rows)-1]
	b.renumber(at)
	b.highlightFrom(at, false)
	b.dirty++
}

// InsertChar inserts c into row before col, which is clamped to the row.
func (b *Buffer) InsertChar(row, col int, c byte) {
	r := b.Row(row)
	if r == nil {
		return
	}
	r.insertChar(col, c)
	b.update(row)
	b.dirty++
}

// DeleteChar removes the byte at col; out of range columns are ignored.
func (b *Buffer) DeleteChar(row, col int) {
	r := b.Row(row)
	if r == nil {
		return
	}
	if !r.deleteChar(col) {
		return
	}
	b.update(row)
	b.dirty++
}

// SplitRow moves the text from col onwards into a new row below.
func (b *Buffer) SplitRow(row, col int) {
	r := b.Row(row)
	if r == nil {
		return
	}
	if col < 0 {
		col = 0
	}
	if col > r.Length() {
		col = r.Length()
	}
	after := r.split(col)
	b.update(row)
	b.InsertRow(row+1, after)
}

func (b *Buffer) AppendBytes(row int, text []byte) {
	r := b.Row(row)
	if r == nil {
		return
	}
	r.appendBytes(text)
	b.update(row)
	b.dirty++
}

// RowsToText joins the rows, ending each one with a newline.
func (b *Buffer) RowsToText() []byte {
	size := 0
	for _, r := range b.rows {
		size += r.Length() + 1
	}
	var buf bytes.Buffer
	buf.Grow(size)
	for _, r := range b.rows {
		buf.Write(r.raw)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func (b *Buffer) Bytes() []byte {
	return b.RowsToText()
}

func (b *Buffer) RowCxToRx(row, cx int) int {
	if r := b.Row(row); r != nil {
		return r.CxToRx(cx, b.tabStop)
	}
	return 0
}

func (b *Buffer) RowRxToCx(row, rx int) int {
	if r := b.Row(row); r != nil {
		return r.RxToCx(rx, b.tabStop)
	}
	return 0
}

func (b *Buffer) renumber(from int) {
	for i := from; i < len(b.rows); i++ {
		b.rows[i].Index = i
	}
}

// update rebuilds the render of a changed row and rehighlights it.
func (b *Buffer) update(at int) {
	b.rows[at].updateRender(b.tabStop)
	b.highlightFrom(at, true)
}

// highlightFrom rehighlights row at (unconditionally when force is set) and
// then each following row whose incoming block comment state no longer
// matches the state its predecessor ends with. A single unterminated
// comment can reach the end of the document, so this is a loop.
func (b *Buffer) highlightFrom(at int, force bool) {
	for i := at; i < len(b.rows); i++ {
		r := b.rows[i]
		in := i > 0 && b.rows[i-1].open
		if !force && r.fresh && r.openIn == in {
			return
		}
		force = false
		r.open = b.highlighter.Highlight(r.highlight, r.render, in)
		r.openIn = in
		r.fresh = true
	}
}
