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

	"github.com/timburks/ked/types"
)

// Search states.
const (
	SearchIdle = iota
	SearchActive
)

// A Search is an incremental search over an editor's buffer. It is driven
// one keystroke at a time by Update while the search prompt is open.
type Search struct {
	editor    *Editor
	state     int
	lastMatch int
	direction int

	// position before the search started
	savedCursor types.Point
	savedOffset types.Size

	// highlight of the row under the current match
	savedRow       int
	savedHighlight []types.Highlight
}

func (s *Search) State() int {
	return s.state
}

// Active reports whether a search is in progress.
func (s *Search) Active() bool {
	return s.state == SearchActive
}

// Begin starts a search from the current cursor position.
func (s *Search) Begin() {
	s.state = SearchActive
	s.lastMatch = -1
	s.direction = 1
	s.savedCursor = s.editor.Cursor
	s.savedOffset = s.editor.Offset
	s.savedHighlight = nil
}

// Update advances the search after a keystroke. Enter ends the search at
// the current match and Escape ends it at the starting position. The arrow
// keys step to the next or previous match and any other key searches
// again from the top for the edited query.
func (s *Search) Update(query string, key types.Key) {
	if s.state != SearchActive {
		return
	}
	s.restoreHighlight()

	switch key {
	case types.KeyEnter:
		s.finish()
		return
	case types.KeyEsc:
		s.editor.Cursor = s.savedCursor
		s.editor.Offset = s.savedOffset
		s.finish()
		return
	case types.KeyArrowRight, types.KeyArrowDown:
		s.direction = 1
	case types.KeyArrowLeft, types.KeyArrowUp:
		s.direction = -1
	default:
		s.lastMatch = -1
		s.direction = 1
	}
	if query == "" {
		return
	}
	if s.lastMatch == -1 {
		s.direction = 1
	}
	s.step([]byte(query))
}

func (s *Search) step(query []byte) {
	b := s.editor.Buffer
	rowCount := b.GetRowCount()
	current := s.lastMatch
	for i := 0; i < rowCount; i++ {
		current += s.direction
		if current == -1 {
			current = rowCount - 1
		} else if current == rowCount {
			current = 0
		}
		row := b.Row(current)
		at := bytes.Index(row.render, query)
		if at < 0 {
			continue
		}
		s.lastMatch = current
		s.editor.Cursor.Row = current
		s.editor.Cursor.Col = row.RxToCx(at, b.TabStop())
		// the next scroll brings the matching row to the top of the screen
		s.editor.Offset.Rows = rowCount

		s.savedRow = current
		s.savedHighlight = append([]types.Highlight(nil), row.highlight...)
		fill(row.highlight[at:at+len(query)], types.HighlightMatch)
		return
	}
}

func (s *Search) restoreHighlight() {
	if s.savedHighlight == nil {
		return
	}
	if row := s.editor.Buffer.Row(s.savedRow); row != nil && len(row.highlight) == len(s.savedHighlight) {
		copy(row.highlight, s.savedHighlight)
	}
	s.savedHighlight = nil
}

func (s *Search) finish() {
	s.state = SearchIdle
	s.lastMatch = -1
	s.direction = 1
}
