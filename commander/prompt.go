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
	"fmt"

	"github.com/timburks/ked/types"
)

// Prompt states returned by Handle.
const (
	PromptOpen = iota
	PromptAccepted
	PromptCancelled
)

// An Observer is told about every keystroke typed into a prompt.
type Observer interface {
	Update(input string, key types.Key)
}

// A Prompt reads a line of input in the message bar.
type Prompt struct {
	format   string // printf format with one %s for the input
	input    []byte
	observer Observer
	done     func(input string, accepted bool)
}

func NewPrompt(format string, observer Observer, done func(input string, accepted bool)) *Prompt {
	return &Prompt{format: format, observer: observer, done: done}
}

func (p *Prompt) Input() string {
	return string(p.input)
}

// SetInput replaces the text typed so far.
func (p *Prompt) SetInput(s string) {
	p.input = []byte(s)
}

// Message is the prompt as shown in the message bar.
func (p *Prompt) Message() string {
	return fmt.Sprintf(p.format, p.input)
}

// Handle applies one key to the prompt and returns the resulting state.
// Enter with no input is ignored.
func (p *Prompt) Handle(key types.Key) int {
	switch {
	case key == types.KeyBackspace || key == types.KeyDelete || key == types.CtrlKey('h'):
		if len(p.input) > 0 {
			p.input = p.input[:len(p.input)-1]
		}
	case key == types.KeyEsc:
		p.notify(key)
		return PromptCancelled
	case key == types.KeyEnter:
		if len(p.input) == 0 {
			return PromptOpen
		}
		p.notify(key)
		return PromptAccepted
	case key.IsPrintable():
		p.input = append(p.input, byte(key))
	}
	p.notify(key)
	return PromptOpen
}

func (p *Prompt) notify(key types.Key) {
	if p.observer != nil {
		p.observer.Update(string(p.input), key)
	}
}
