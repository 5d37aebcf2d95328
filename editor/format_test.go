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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/ked/types"
)

func TestFormat(t *testing.T) {
	e := NewEditor(nil, DefaultTabStop)
	e.SetFileName("main.go")
	e.Buffer.LoadLines(lines("package main", "func main(){", "x:=1", "_ = x", "}"))
	e.Cursor = types.Point{Row: 4, Col: 1}

	require.NoError(t, e.Format())
	assert.Equal(t, "package main\n\nfunc main() {\n\tx := 1\n\t_ = x\n}\n", string(e.Buffer.RowsToText()))
	assert.True(t, e.Buffer.IsDirty())
	assert.Equal(t, types.Point{Row: 4, Col: 1}, e.Cursor)

	// formatting clean source changes nothing
	e.Buffer.MarkClean()
	require.NoError(t, e.Format())
	assert.False(t, e.Buffer.IsDirty())
}

func TestFormatClampsCursor(t *testing.T) {
	e := NewEditor(nil, DefaultTabStop)
	e.SetFileName("main.go")
	e.Buffer.LoadLines(lines("package main", "", "", "", "var x    =    1"))
	e.Cursor = types.Point{Row: 5, Col: 0}
	require.NoError(t, e.Format())
	assert.Equal(t, "package main\n\nvar x = 1\n", string(e.Buffer.RowsToText()))
	assert.Equal(t, types.Point{Row: 3, Col: 0}, e.Cursor)
}

func TestFormatErrors(t *testing.T) {
	e := NewEditor(nil, DefaultTabStop)
	e.SetFileName("notes.txt")
	e.Buffer.LoadLines(lines("hello"))
	assert.ErrorIs(t, e.Format(), ErrNotGo)

	e.SetFileName("main.go")
	e.Buffer.LoadLines(lines("package main", "func ("))
	assert.Error(t, e.Format())
	assert.Equal(t, "package main\nfunc (\n", string(e.Buffer.RowsToText()))
	assert.False(t, e.Buffer.IsDirty())
	message, _ := e.StatusMessage()
	assert.Contains(t, message, "gofmt: ")
}
