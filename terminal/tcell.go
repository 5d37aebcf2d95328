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
package terminal

import (
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/timburks/ked/types"
)

// tcellTerminal uses tcell for raw mode and input decoding. Like the
// termbox backend it leaves drawing to the frames written to stdout.
type tcellTerminal struct {
	stdout
	screen  tcell.Screen
	pending keyQueue
}

func openTcell() (Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return &tcellTerminal{screen: s}, nil
}

func (t *tcellTerminal) Size() (types.Size, error) {
	cols, rows := t.screen.Size()
	return types.Size{Rows: rows, Cols: cols}, nil
}

func (t *tcellTerminal) ReadKey() (types.Key, error) {
	if k, ok := t.pending.pop(); ok {
		return k, nil
	}
	switch ev := t.screen.PollEvent().(type) {
	case nil:
		// the screen was finalized
		return types.KeyNone, io.EOF
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			return t.pending.pushRune(ev.Rune()), nil
		}
		return tcellKey(ev.Key()), nil
	default:
		return types.KeyNone, nil
	}
}

func (t *tcellTerminal) Close() error {
	t.screen.Fini()
	return nil
}

func tcellKey(k tcell.Key) types.Key {
	switch k {
	case tcell.KeyUp:
		return types.KeyArrowUp
	case tcell.KeyDown:
		return types.KeyArrowDown
	case tcell.KeyLeft:
		return types.KeyArrowLeft
	case tcell.KeyRight:
		return types.KeyArrowRight
	case tcell.KeyHome:
		return types.KeyHome
	case tcell.KeyEnd:
		return types.KeyEnd
	case tcell.KeyPgUp:
		return types.KeyPageUp
	case tcell.KeyPgDn:
		return types.KeyPageDown
	case tcell.KeyDelete:
		return types.KeyDelete
	}
	if k < tcell.KeyRune {
		return types.Key(k)
	}
	return types.KeyNone
}
