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
package screen

import (
	"bytes"
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/timburks/ked/editor"
	"github.com/timburks/ked/types"
)

// Version appears in the welcome banner.
const Version = "0.0.1"

// Output is where frames are written.
type Output interface {
	Size() (types.Size, error)
	Write(p []byte) (int, error)
}

// The Screen draws the state of an Editor.
type Screen struct {
	out  Output
	size types.Size // screen size
}

func NewScreen(out Output) *Screen {
	return &Screen{out: out}
}

func (s *Screen) GetSize() types.Size {
	return s.size
}

// Render draws one frame of the editor with a single write.
func (s *Screen) Render(e *editor.Editor) error {
	size, err := s.out.Size()
	if err != nil {
		return fmt.Errorf("get window size: %w", err)
	}
	s.size = size

	editSize := size
	editSize.Rows -= 2
	if editSize.Rows < 0 {
		editSize.Rows = 0
	}
	e.SetSize(editSize)
	e.Scroll()

	frame := s.Compose(e, time.Now())
	if _, err := s.out.Write(frame); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// Clear erases the terminal and homes the cursor.
func (s *Screen) Clear() error {
	_, err := s.out.Write([]byte("\x1b[2J\x1b[H"))
	return err
}

// Compose builds the frame for e. The editor must already be scrolled.
func (s *Screen) Compose(e *editor.Editor, now time.Time) []byte {
	var ab bytes.Buffer
	ab.WriteString("\x1b[?25l")
	ab.WriteString("\x1b[H")
	s.drawRows(&ab, e)
	s.drawStatusBar(&ab, e)
	s.drawMessageBar(&ab, e, now)
	cursor := e.ScreenCursor()
	fmt.Fprintf(&ab, "\x1b[%d;%dH", cursor.Row+1, cursor.Col+1)
	ab.WriteString("\x1b[?25h")
	return ab.Bytes()
}

func (s *Screen) drawRows(ab *bytes.Buffer, e *editor.Editor) {
	b := e.Buffer
	size := e.GetSize()
	for y := 0; y < size.Rows; y++ {
		fileRow := y + e.Offset.Rows
		if fileRow >= b.GetRowCount() {
			if b.GetRowCount() == 0 && y == size.Rows/2 {
				s.drawWelcome(ab, size.Cols)
			} else {
				ab.WriteByte('~')
			}
		} else {
			drawRow(ab, b.Row(fileRow), e.Offset.Cols, size.Cols)
		}
		ab.WriteString("\x1b[K")
		ab.WriteString("\r\n")
	}
}

func (s *Screen) drawWelcome(ab *bytes.Buffer, cols int) {
	welcome := runewidth.Truncate("ked editor -- version "+Version, cols, "")
	padding := (cols - runewidth.StringWidth(welcome)) / 2
	if padding > 0 {
		ab.WriteByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		ab.WriteByte(' ')
	}
	ab.WriteString(welcome)
}

// drawRow writes the visible slice of a row, switching colors only where
// the highlight class changes.
func drawRow(ab *bytes.Buffer, row *editor.Row, offset, cols int) {
	render := row.Render()
	hl := row.Highlight()
	start := offset
	if start > len(render) {
		start = len(render)
	}
	end := start + cols
	if end > len(render) {
		end = len(render)
	}
	color := -1
	for i := start; i < end; i++ {
		c := render[i]
		switch {
		case isControl(c):
			sym := byte('?')
			if c <= 26 {
				sym = '@' + c
			}
			ab.WriteString("\x1b[7m")
			ab.WriteByte(sym)
			ab.WriteString("\x1b[m")
			if color != -1 {
				fmt.Fprintf(ab, "\x1b[%dm", color)
			}
		case hl[i] == types.HighlightNormal:
			if color != -1 {
				ab.WriteString("\x1b[39m")
				color = -1
			}
			ab.WriteByte(c)
		default:
			if next := hl[i].Color(); next != color {
				color = next
				fmt.Fprintf(ab, "\x1b[%dm", color)
			}
			ab.WriteByte(c)
		}
	}
	ab.WriteString("\x1b[39m")
}

func isControl(c byte) bool {
	return c < 0x20 || c == 0x7f
}

func (s *Screen) drawStatusBar(ab *bytes.Buffer, e *editor.Editor) {
	b := e.Buffer
	cols := e.GetSize().Cols

	name := b.GetFileName()
	if name == "" {
		name = "[No Name]"
	}
	modified := ""
	if b.IsDirty() {
		modified = "(modified)"
	}
	fileType := "no ft"
	if p := b.Syntax(); p != nil {
		fileType = p.FileType
	}
	status := fmt.Sprintf("%.20s - %d lines %s - %s", name, b.GetRowCount(), modified, e.ModeName())
	rstatus := fmt.Sprintf("%s | %d/%d", fileType, e.Cursor.Row+1, b.GetRowCount())

	ab.WriteString("\x1b[7m")
	status = runewidth.Truncate(status, cols, "")
	ab.WriteString(status)
	width := runewidth.StringWidth(status)
	rwidth := runewidth.StringWidth(rstatus)
	for width < cols {
		if cols-width == rwidth {
			ab.WriteString(rstatus)
			break
		}
		ab.WriteByte(' ')
		width++
	}
	ab.WriteString("\x1b[m")
	ab.WriteString("\r\n")
}

func (s *Screen) drawMessageBar(ab *bytes.Buffer, e *editor.Editor, now time.Time) {
	ab.WriteString("\x1b[K")
	message, at := e.StatusMessage()
	if message == "" || now.Sub(at) >= e.MessageTimeout {
		return
	}
	message = runewidth.Truncate(message, e.GetSize().Cols, "")
	ab.WriteString(message)
}
