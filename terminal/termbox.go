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
	"github.com/nsf/termbox-go"

	"github.com/timburks/ked/types"
)

// termboxTerminal uses termbox for raw mode and input decoding. Frames
// are written directly to stdout and termbox's own cell buffer is unused.
type termboxTerminal struct {
	stdout
	pending keyQueue
}

func openTermbox() (Terminal, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	return &termboxTerminal{}, nil
}

func (t *termboxTerminal) Size() (types.Size, error) {
	cols, rows := termbox.Size()
	return types.Size{Rows: rows, Cols: cols}, nil
}

func (t *termboxTerminal) ReadKey() (types.Key, error) {
	if k, ok := t.pending.pop(); ok {
		return k, nil
	}
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventKey:
		if event.Ch != 0 {
			return t.pending.pushRune(event.Ch), nil
		}
		return termboxKey(event.Key), nil
	case termbox.EventError:
		return types.KeyNone, event.Err
	default:
		return types.KeyNone, nil
	}
}

func (t *termboxTerminal) Close() error {
	termbox.Close()
	return nil
}

func termboxKey(k termbox.Key) types.Key {
	switch k {
	case termbox.KeyArrowUp:
		return types.KeyArrowUp
	case termbox.KeyArrowDown:
		return types.KeyArrowDown
	case termbox.KeyArrowLeft:
		return types.KeyArrowLeft
	case termbox.KeyArrowRight:
		return types.KeyArrowRight
	case termbox.KeyHome:
		return types.KeyHome
	case termbox.KeyEnd:
		return types.KeyEnd
	case termbox.KeyPgup:
		return types.KeyPageUp
	case termbox.KeyPgdn:
		return types.KeyPageDown
	case termbox.KeyDelete:
		return types.KeyDelete
	}
	// control keys and space carry their byte values
	if k <= termbox.KeySpace || k == termbox.KeyBackspace2 {
		return types.Key(k)
	}
	return types.KeyNone
}
