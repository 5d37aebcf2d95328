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
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/timburks/ked/syntax"
	"github.com/timburks/ked/types"
)

// ErrNoFileName is returned when saving a buffer that has never been named.
var ErrNoFileName = errors.New("no file name")

// DefaultMessageTimeout is how long a status message stays visible.
const DefaultMessageTimeout = 5 * time.Second

// The Editor is one editing session: a buffer, the window onto it, the
// editing mode and the status message.
type Editor struct {
	Window
	Buffer         *Buffer
	MessageTimeout time.Duration
	syntaxes       *syntax.Database
	mode           int
	message        string
	messageTime    time.Time
	search         *Search
}

func NewEditor(syntaxes *syntax.Database, tabStop int) *Editor {
	if syntaxes == nil {
		syntaxes = syntax.NewDatabase()
	}
	e := &Editor{
		Buffer:         NewBuffer(tabStop),
		MessageTimeout: DefaultMessageTimeout,
		syntaxes:       syntaxes,
		mode:           types.ModeStandard,
	}
	e.search = &Search{editor: e, lastMatch: -1, direction: 1}
	return e
}

func (e *Editor) Syntaxes() *syntax.Database {
	return e.syntaxes
}

func (e *Editor) Search() *Search {
	return e.search
}

func (e *Editor) GetMode() int {
	return e.mode
}

func (e *Editor) SetMode(m int) {
	e.mode = m
}

// ModeName is the short mode label shown in the status bar.
func (e *Editor) ModeName() string {
	if e.mode == types.ModeEdit {
		return "ed"
	}
	return "st"
}

// SetFileName names the buffer and selects the matching syntax profile.
func (e *Editor) SetFileName(name string) {
	e.Buffer.SetFileName(name)
	e.SelectSyntax()
}

// SelectSyntax rehighlights the buffer with the profile for its file name.
func (e *Editor) SelectSyntax() {
	e.Buffer.SetSyntax(e.syntaxes.Select(e.Buffer.GetFileName()))
}

func (e *Editor) SetStatusMessage(format string, args ...interface{}) {
	e.message = fmt.Sprintf(format, args...)
	e.messageTime = time.Now()
}

// StatusMessage returns the current message and when it was set.
func (e *Editor) StatusMessage() (string, time.Time) {
	return e.message, e.messageTime
}

func (e *Editor) ReadFile(path string) error {
	lines, err := readLines(path)
	if err != nil {
		return err
	}
	e.Buffer.SetFileName(path)
	e.Buffer.LoadLines(lines)
	e.SelectSyntax()
	e.Cursor = types.Point{}
	e.Offset = types.Size{}
	zap.L().Info("read file", zap.String("path", path), zap.Int("rows", len(lines)))
	return nil
}

func (e *Editor) WriteFile(path string) (int, error) {
	return writeFile(path, e.Buffer.RowsToText())
}

// Save writes the buffer to its file and reports the outcome in the
// status message. On failure the buffer stays dirty.
func (e *Editor) Save() (int, error) {
	name := e.Buffer.GetFileName()
	if name == "" {
		return 0, ErrNoFileName
	}
	n, err := e.WriteFile(name)
	if err != nil {
		zap.L().Warn("save failed", zap.String("path", name), zap.Error(err))
		e.SetStatusMessage("Can't save! I/O error: %s", err.Error())
		return n, err
	}
	e.Buffer.MarkClean()
	zap.L().Info("saved file", zap.String("path", name), zap.Int("bytes", n))
	e.SetStatusMessage("%d bytes written to disk", n)
	return n, nil
}

// Scroll derives the cursor's display column and adjusts the offsets.
func (e *Editor) Scroll() {
	e.Window.scroll(e.Buffer)
}

func (e *Editor) MoveCursor(direction int) {
	b := e.Buffer
	row := b.Row(e.Cursor.Row)
	switch direction {
	case types.MoveLeft:
		if e.Cursor.Col != 0 {
			e.Cursor.Col--
		} else if e.Cursor.Row > 0 {
			// wrap to the end of the previous line
			e.Cursor.Row--
			e.Cursor.Col = b.GetRowLength(e.Cursor.Row)
		}
	case types.MoveRight:
		if row != nil && e.Cursor.Col < row.Length() {
			e.Cursor.Col++
		} else if row != nil && e.Cursor.Col == row.Length() {
			e.Cursor.Row++
			e.Cursor.Col = 0
		}
	case types.MoveUp:
		if e.Cursor.Row != 0 {
			e.Cursor.Row--
		}
	case types.MoveDown:
		if e.Cursor.Row < b.GetRowCount() {
			e.Cursor.Row++
		}
	}
	// don't go past the end of the current line
	if rowLength := b.GetRowLength(e.Cursor.Row); e.Cursor.Col > rowLength {
		e.Cursor.Col = rowLength
	}
}

func (e *Editor) MoveToBeginningOfLine() {
	e.Cursor.Col = 0
}

func (e *Editor) MoveToEndOfLine() {
	if e.Cursor.Row < e.Buffer.GetRowCount() {
		e.Cursor.Col = e.Buffer.GetRowLength(e.Cursor.Row)
	}
}

func (e *Editor) PageUp() {
	// move to the top of the screen
	e.Cursor.Row = e.Offset.Rows
	// move up by a page
	for i := 0; i < e.size.Rows; i++ {
		e.MoveCursor(types.MoveUp)
	}
}

func (e *Editor) PageDown() {
	// move to the bottom of the screen
	e.Cursor.Row = e.Offset.Rows + e.size.Rows - 1
	if e.Cursor.Row > e.Buffer.GetRowCount() {
		e.Cursor.Row = e.Buffer.GetRowCount()
	}
	// move down by a page
	for i := 0; i < e.size.Rows; i++ {
		e.MoveCursor(types.MoveDown)
	}
}

// InsertChar inserts c at the cursor. Typing on the line past the end of
// the buffer first appends a row.
func (e *Editor) InsertChar(c byte) {
	if e.Cursor.Row == e.Buffer.GetRowCount() {
		e.Buffer.InsertRow(e.Buffer.GetRowCount(), nil)
	}
	e.Buffer.InsertChar(e.Cursor.Row, e.Cursor.Col, c)
	e.Cursor.Col++
}

// InsertNewline splits the current row at the cursor, or opens a blank row
// above it when the cursor is at the start of the row.
func (e *Editor) InsertNewline() {
	if e.Cursor.Col == 0 {
		e.Buffer.InsertRow(e.Cursor.Row, nil)
	} else {
		e.Buffer.SplitRow(e.Cursor.Row, e.Cursor.Col)
	}
	e.Cursor.Row++
	e.Cursor.Col = 0
}

// DeleteChar deletes the character left of the cursor. At the start of a
// row it joins the row onto the previous one.
func (e *Editor) DeleteChar() {
	b := e.Buffer
	if e.Cursor.Row >= b.GetRowCount() {
		return
	}
	if e.Cursor.Col == 0 && e.Cursor.Row == 0 {
		return
	}
	if e.Cursor.Col > 0 {
		b.DeleteChar(e.Cursor.Row, e.Cursor.Col-1)
		e.Cursor.Col--
		return
	}
	previous := e.Cursor.Row - 1
	e.Cursor.Col = b.GetRowLength(previous)
	b.AppendBytes(previous, b.Row(e.Cursor.Row).Raw())
	b.DeleteRow(e.Cursor.Row)
	e.Cursor.Row = previous
}
