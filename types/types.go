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

package types

// Editor modes
const (
	ModeStandard = 0
	ModeEdit     = 1
	ModePrompt   = 2
	ModeQuit     = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// A Key is either a byte read from the terminal (printable characters and
// control codes) or one of the special keys below.
type Key int

const (
	KeyNone      Key = -1
	KeyTab       Key = '\t'
	KeyEnter     Key = '\r'
	KeyEsc       Key = 0x1b
	KeyBackspace Key = 127
)

// Special keys are numbered above the byte range so they never collide with
// typed characters.
const (
	KeyArrowLeft Key = iota + 1000
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// CtrlKey returns the key produced by holding control with k.
func CtrlKey(k byte) Key {
	return Key(k & 0x1f)
}

// IsByte reports whether k carries a single byte of input.
func (k Key) IsByte() bool {
	return k >= 0 && k <= 0xff
}

// IsPrintable reports whether k is a byte that can be inserted as text.
func (k Key) IsPrintable() bool {
	return k >= 0x20 && k < 0x7f
}

// Highlight classifies one byte of a rendered row.
type Highlight uint8

const (
	HighlightNormal Highlight = iota
	HighlightComment
	HighlightBlockComment
	HighlightKeyword1
	HighlightKeyword2
	HighlightString
	HighlightNumber
	HighlightMatch
)

// ANSI foreground colors for each highlight class.
func (h Highlight) Color() int {
	switch h {
	case HighlightComment, HighlightBlockComment:
		return 36
	case HighlightKeyword1:
		return 33
	case HighlightKeyword2:
		return 32
	case HighlightString:
		return 35
	case HighlightNumber:
		return 31
	case HighlightMatch:
		return 34
	default:
		return 37
	}
}
