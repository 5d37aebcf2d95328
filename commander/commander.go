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
package commander

import (
	"errors"

	"go.uber.org/zap"

	"github.com/timburks/ked/editor"
	"github.com/timburks/ked/types"
)

// DefaultQuitTimes is how many extra Ctrl-Q presses quit a modified buffer.
const DefaultQuitTimes = 3

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor    *editor.Editor
	lisp      *Interpreter
	prompt    *Prompt // prompt in progress
	quitTimes int     // configured number of confirmations
	quitCount int     // confirmations still needed
	quit      bool
}

func NewCommander(e *editor.Editor, quitTimes int) *Commander {
	if quitTimes < 0 {
		quitTimes = DefaultQuitTimes
	}
	return &Commander{
		editor:    e,
		lisp:      NewInterpreter(e),
		quitTimes: quitTimes,
		quitCount: quitTimes,
	}
}

func (c *Commander) Interpreter() *Interpreter {
	return c.lisp
}

func (c *Commander) GetMode() int {
	switch {
	case c.quit:
		return types.ModeQuit
	case c.prompt != nil:
		return types.ModePrompt
	default:
		return c.editor.GetMode()
	}
}

func (c *Commander) IsRunning() bool {
	return !c.quit
}

// Prompt returns the prompt in progress, if any.
func (c *Commander) Prompt() *Prompt {
	return c.prompt
}

// StartPrompt opens p in the message bar. Keys go to the prompt until it
// is accepted or cancelled.
func (c *Commander) StartPrompt(p *Prompt) {
	c.prompt = p
	c.editor.SetStatusMessage("%s", p.Message())
}

func (c *Commander) ProcessKey(key types.Key) error {
	if key == types.KeyNone {
		return nil
	}
	if key == types.CtrlKey('q') && c.prompt == nil {
		c.processQuit()
		return nil
	}
	if c.prompt != nil {
		c.processKeyPromptMode(key)
	} else {
		c.processKey(key)
	}
	c.quitCount = c.quitTimes
	return nil
}

func (c *Commander) processQuit() {
	if c.editor.Buffer.IsDirty() && c.quitCount > 0 {
		c.editor.SetStatusMessage("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", c.quitCount)
		c.quitCount--
		return
	}
	zap.L().Info("quit", zap.Bool("dirty", c.editor.Buffer.IsDirty()))
	c.quit = true
}

func (c *Commander) processKeyPromptMode(key types.Key) {
	p := c.prompt
	state := p.Handle(key)
	if state == PromptOpen {
		c.editor.SetStatusMessage("%s", p.Message())
		return
	}
	c.prompt = nil
	c.editor.SetStatusMessage("")
	if p.done != nil {
		p.done(p.Input(), state == PromptAccepted)
	}
}

func (c *Commander) processKey(key types.Key) {
	e := c.editor
	switch key {
	case types.CtrlKey('s'):
		c.save()
	case types.CtrlKey('f'):
		c.find()
	case types.KeyHome:
		e.MoveToBeginningOfLine()
	case types.KeyEnd:
		e.MoveToEndOfLine()
	case types.KeyPageUp, types.CtrlKey('y'):
		e.PageUp()
	case types.KeyPageDown, types.CtrlKey('e'):
		e.PageDown()
	case types.KeyArrowUp:
		e.MoveCursor(types.MoveUp)
	case types.KeyArrowDown:
		e.MoveCursor(types.MoveDown)
	case types.KeyArrowLeft:
		e.MoveCursor(types.MoveLeft)
	case types.KeyArrowRight:
		e.MoveCursor(types.MoveRight)
	case types.CtrlKey('l'), types.KeyEsc:
		// the next frame redraws everything
	default:
		if e.GetMode() == types.ModeEdit {
			c.processKeyEditMode(key)
		} else {
			c.processKeyStandardMode(key)
		}
	}
}

func (c *Commander) processKeyEditMode(key types.Key) {
	e := c.editor
	switch key {
	case types.KeyEnter:
		e.InsertNewline()
	case types.KeyBackspace, types.CtrlKey('h'), types.KeyDelete:
		if key == types.KeyDelete {
			e.MoveCursor(types.MoveRight)
		}
		e.DeleteChar()
	case types.CtrlKey('j'):
		e.SetMode(types.ModeStandard)
	default:
		if key.IsByte() {
			e.InsertChar(byte(key))
		}
	}
}

func (c *Commander) processKeyStandardMode(key types.Key) {
	e := c.editor
	switch key {
	case 'h':
		e.MoveCursor(types.MoveLeft)
	case 'j':
		e.MoveCursor(types.MoveDown)
	case 'k':
		e.MoveCursor(types.MoveUp)
	case 'l':
		e.MoveCursor(types.MoveRight)
	case 'i':
		e.SetMode(types.ModeEdit)
	case '(':
		c.eval()
	}
}

func (c *Commander) save() {
	e := c.editor
	if e.Buffer.GetFileName() != "" {
		c.write()
		return
	}
	c.StartPrompt(NewPrompt("Save as: %s (ESC to cancel)", nil, func(input string, accepted bool) {
		if !accepted {
			e.SetStatusMessage("Save aborted")
			return
		}
		e.SetFileName(input)
		c.write()
	}))
}

func (c *Commander) write() {
	if _, err := c.editor.Save(); err != nil && !errors.Is(err, editor.ErrNoFileName) {
		zap.L().Warn("write failed", zap.Error(err))
	}
}

func (c *Commander) find() {
	search := c.editor.Search()
	search.Begin()
	c.StartPrompt(NewPrompt("Search: %s (Use ESC/Arrows/Enter)", search, nil))
}

func (c *Commander) eval() {
	e := c.editor
	p := NewPrompt("Eval: %s", nil, func(input string, accepted bool) {
		if !accepted {
			return
		}
		result, err := c.lisp.ParseEval(input)
		if err != nil {
			e.SetStatusMessage("Error: %s", err.Error())
			return
		}
		e.SetStatusMessage("%s", result)
	})
	p.SetInput("(")
	c.StartPrompt(p)
}
