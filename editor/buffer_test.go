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

	"github.com/timburks/ked/syntax"
	"github.com/timburks/ked/types"
)

func lines(text ...string) [][]byte {
	result := make([][]byte, len(text))
	for i, s := range text {
		result[i] = []byte(s)
	}
	return result
}

func cBuffer(text ...string) *Buffer {
	b := NewBuffer(DefaultTabStop)
	b.SetSyntax(syntax.NewDatabase().Select("test.c"))
	b.LoadLines(lines(text...))
	return b
}

func rowClasses(b *Buffer, i int) []types.Highlight {
	return b.Row(i).Highlight()
}

func allClass(t *testing.T, b *Buffer, i int, class types.Highlight) {
	t.Helper()
	for j, c := range rowClasses(b, i) {
		assert.Equal(t, class, c, "row %d col %d", i, j)
	}
}

func TestLoadLines(t *testing.T) {
	b := cBuffer("a", "\tb", "")
	assert.Equal(t, 3, b.GetRowCount())
	assert.Equal(t, 0, b.Dirty())
	assert.Equal(t, "  b", string(b.Row(1).Render()))
	for i := 0; i < b.GetRowCount(); i++ {
		assert.Equal(t, i, b.Row(i).Index)
	}
	assert.Equal(t, "a\n\tb\n\n", string(b.RowsToText()))
	assert.Nil(t, b.Row(3))
	assert.Nil(t, b.Row(-1))
}

func TestEmptyBuffer(t *testing.T) {
	b := NewBuffer(0)
	assert.Equal(t, DefaultTabStop, b.TabStop())
	assert.Equal(t, 0, b.GetRowCount())
	assert.Empty(t, b.RowsToText())
	assert.Nil(t, b.Syntax())
}

func TestBlockCommentCascade(t *testing.T) {
	b := cBuffer("/* start", "middle", "end */ x", "int y;")
	assert.True(t, b.Row(0).Open())
	assert.True(t, b.Row(1).Open())
	assert.False(t, b.Row(2).Open())
	allClass(t, b, 1, B)
	assert.Equal(t, []types.Highlight{B, B, B, B, B, B, N, N}, rowClasses(b, 2))
	assert.Equal(t, K2, rowClasses(b, 3)[0])

	// removing the opening slash uncomments the rows below
	b.DeleteChar(0, 0)
	assert.False(t, b.Row(0).Open())
	allClass(t, b, 1, N)
	assert.Equal(t, K2, rowClasses(b, 3)[0])

	// and putting it back comments them again
	b.InsertChar(0, 0, '/')
	assert.True(t, b.Row(1).Open())
	allClass(t, b, 1, B)
	assert.Equal(t, B, rowClasses(b, 2)[0])
}

func TestCascadeThroughInsertedRows(t *testing.T) {
	b := cBuffer("int a;", "int b;", "int c;")
	b.InsertRow(1, []byte("/*"))
	assert.Equal(t, 4, b.GetRowCount())
	assert.True(t, b.Row(1).Open())
	allClass(t, b, 2, B)
	allClass(t, b, 3, B)
	assert.True(t, b.Row(3).Open())

	b.DeleteRow(1)
	assert.Equal(t, 3, b.GetRowCount())
	assert.Equal(t, K2, rowClasses(b, 1)[0])
	assert.Equal(t, K2, rowClasses(b, 2)[0])
	for i := 0; i < b.GetRowCount(); i++ {
		assert.False(t, b.Row(i).Open())
		assert.Equal(t, i, b.Row(i).Index)
	}
}

func TestCascadeStopsWhenStateSettles(t *testing.T) {
	b := cBuffer("/*", "a */", "int x;")
	assert.Equal(t, K2, rowClasses(b, 2)[0])
	b.InsertChar(1, 0, 'b')
	assert.Equal(t, "ba */", b.Row(1).Text())
	assert.False(t, b.Row(1).Open())
	assert.Equal(t, K2, rowClasses(b, 2)[0])
}

func TestSplitRow(t *testing.T) {
	b := cBuffer("hello world")
	b.SplitRow(0, 5)
	require.Equal(t, 2, b.GetRowCount())
	assert.Equal(t, "hello", b.Row(0).Text())
	assert.Equal(t, " world", b.Row(1).Text())
	assert.Equal(t, 1, b.Row(1).Index)

	b.SplitRow(1, 100)
	require.Equal(t, 3, b.GetRowCount())
	assert.Equal(t, " world", b.Row(1).Text())
	assert.Equal(t, "", b.Row(2).Text())
}

func TestSplitRowInsideComment(t *testing.T) {
	b := cBuffer("x /* y */ z")
	b.SplitRow(0, 6)
	assert.True(t, b.Row(0).Open())
	assert.Equal(t, []types.Highlight{B, B, B, N, N}, rowClasses(b, 1))
}

func TestInsertRowClamps(t *testing.T) {
	b := cBuffer("b")
	b.InsertRow(-5, []byte("a"))
	b.InsertRow(100, []byte("c"))
	assert.Equal(t, "a\nb\nc\n", string(b.RowsToText()))
	assert.Equal(t, 2, b.Dirty())
}

func TestInsertText(t *testing.T) {
	text := []byte("x")
	b := NewBuffer(DefaultTabStop)
	b.InsertRow(0, text)
	text[0] = 'y'
	assert.Equal(t, "x", b.Row(0).Text())
}

func TestCharEdits(t *testing.T) {
	b := cBuffer("ac")
	b.InsertChar(0, 1, 'b')
	b.InsertChar(0, 99, 'd')
	assert.Equal(t, "abcd", b.Row(0).Text())
	assert.Equal(t, 2, b.Dirty())

	b.DeleteChar(0, 4)
	b.DeleteChar(0, -1)
	b.DeleteChar(5, 0)
	assert.Equal(t, 2, b.Dirty())

	b.DeleteChar(0, 0)
	assert.Equal(t, "bcd", b.Row(0).Text())
	assert.Equal(t, 3, b.Dirty())

	b.AppendBytes(0, []byte("ef"))
	assert.Equal(t, "bcdef", b.TextAfter(0, 0))
	assert.Equal(t, "ef", b.TextAfter(0, 3))
	assert.Equal(t, 4, b.Dirty())

	b.MarkClean()
	assert.False(t, b.IsDirty())
}

func TestDeleteRowBounds(t *testing.T) {
	b := cBuffer("only")
	b.DeleteRow(0)
	b.DeleteRow(1)
	b.DeleteRow(-1)
	assert.Equal(t, 1, b.GetRowCount())
	assert.Equal(t, 0, b.Dirty())
}

func TestSetSyntaxRehighlights(t *testing.T) {
	b := NewBuffer(DefaultTabStop)
	b.LoadLines(lines("int x;", "/* y"))
	assert.Equal(t, N, rowClasses(b, 0)[0])
	assert.False(t, b.Row(1).Open())

	b.SetSyntax(syntax.NewDatabase().Select("test.c"))
	assert.Equal(t, K2, rowClasses(b, 0)[0])
	assert.True(t, b.Row(1).Open())

	b.SetSyntax(nil)
	allClass(t, b, 0, N)
	assert.False(t, b.Row(1).Open())
}

func TestTabStopMapping(t *testing.T) {
	b := NewBuffer(4)
	b.LoadLines(lines("\tx"))
	assert.Equal(t, 4, b.RowCxToRx(0, 1))
	assert.Equal(t, 1, b.RowRxToCx(0, 4))
	assert.Equal(t, 0, b.RowCxToRx(5, 1))
}

func TestCommentExample(t *testing.T) {
	b := cBuffer("/* a", "b", "c */ d")
	allClass(t, b, 0, B)
	allClass(t, b, 1, B)
	assert.Equal(t, []types.Highlight{B, B, B, B, N, N}, rowClasses(b, 2))
	assert.True(t, b.Row(0).Open())
	assert.True(t, b.Row(1).Open())
	assert.False(t, b.Row(2).Open())
}

func TestSecondaryKeyword(t *testing.T) {
	b := cBuffer("integer", "int x")
	allClass(t, b, 0, N)
	assert.Equal(t, []types.Highlight{K2, K2, K2, N, N}, rowClasses(b, 1))
}
