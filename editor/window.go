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

// A Window is the view of a buffer: the cursor and the scroll offsets
// that keep it visible.
type Window struct {
	Cursor types.Point // cursor position; Col is a byte column
	Offset types.Size  // display offset
	RX     int         // display column of the cursor, derived on each scroll
	size   types.Size  // size of the text area
}

func (w *Window) SetSize(s types.Size) {
	w.size = s
}

func (w *Window) GetSize() types.Size {
	return w.size
}

// Recompute the display offset to keep the cursor onscreen.
func (w *Window) scroll(b *Buffer) {
	w.RX = 0
	if w.Cursor.Row < b.GetRowCount() {
		w.RX = b.RowCxToRx(w.Cursor.Row, w.Cursor.Col)
	}
	if w.Cursor.Row < w.Offset.Rows {
		// scroll up
		w.Offset.Rows = w.Cursor.Row
	}
	if w.size.Rows > 0 && w.Cursor.Row >= w.Offset.Rows+w.size.Rows {
		// scroll down
		w.Offset.Rows = w.Cursor.Row - w.size.Rows + 1
	}
	if w.RX < w.Offset.Cols {
		// scroll left
		w.Offset.Cols = w.RX
	}
	if w.size.Cols > 0 && w.RX >= w.Offset.Cols+w.size.Cols {
		// scroll right
		w.Offset.Cols = w.RX - w.size.Cols + 1
	}
}

// ScreenCursor returns the cursor position relative to the visible area,
// clamped to the area's bounds.
func (w *Window) ScreenCursor() types.Point {
	return types.Point{
		Row: clamp(w.Cursor.Row-w.Offset.Rows, w.size.Rows),
		Col: clamp(w.RX-w.Offset.Cols, w.size.Cols),
	}
}

func clamp(v, n int) int {
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}
