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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/timburks/ked/types"
)

type recorder struct {
	inputs []string
	keys   []types.Key
}

func (r *recorder) Update(input string, key types.Key) {
	r.inputs = append(r.inputs, input)
	r.keys = append(r.keys, key)
}

func TestPromptEditing(t *testing.T) {
	r := &recorder{}
	p := NewPrompt("Find: %s", r, nil)
	assert.Equal(t, "Find: ", p.Message())

	for _, k := range []types.Key{'a', 'b', 'c', types.KeyBackspace, 'd', types.KeyDelete, types.CtrlKey('h'), 'x'} {
		assert.Equal(t, PromptOpen, p.Handle(k))
	}
	assert.Equal(t, "ax", p.Input())
	assert.Equal(t, "Find: ax", p.Message())
	assert.Equal(t, []string{"a", "ab", "abc", "ab", "abd", "ab", "a", "ax"}, r.inputs)
}

func TestPromptIgnoresControlKeys(t *testing.T) {
	p := NewPrompt("%s", nil, nil)
	for _, k := range []types.Key{types.KeyArrowUp, types.KeyTab, types.CtrlKey('a'), 0xe9, 'z'} {
		assert.Equal(t, PromptOpen, p.Handle(k))
	}
	assert.Equal(t, "z", p.Input())
}

func TestPromptAccept(t *testing.T) {
	r := &recorder{}
	p := NewPrompt("%s", r, nil)

	// enter does nothing until there is some input
	assert.Equal(t, PromptOpen, p.Handle(types.KeyEnter))
	assert.Empty(t, r.keys)

	p.Handle('q')
	assert.Equal(t, PromptAccepted, p.Handle(types.KeyEnter))
	assert.Equal(t, []types.Key{'q', types.KeyEnter}, r.keys)
}

func TestPromptCancel(t *testing.T) {
	r := &recorder{}
	p := NewPrompt("%s", r, nil)
	assert.Equal(t, PromptCancelled, p.Handle(types.KeyEsc))
	assert.Equal(t, []types.Key{types.KeyEsc}, r.keys)
}

func TestPromptInitialInput(t *testing.T) {
	p := NewPrompt("Eval: %s", nil, nil)
	p.SetInput("(")
	p.Handle('+')
	assert.Equal(t, "Eval: (+", p.Message())
}
