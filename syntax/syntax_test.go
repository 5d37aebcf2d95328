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
package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectByExtension(t *testing.T) {
	d := NewDatabase()
	p := d.Select("editor.c")
	require.NotNil(t, p)
	assert.Equal(t, "c", p.FileType)

	p = d.Select("src/main.go")
	require.NotNil(t, p)
	assert.Equal(t, "go", p.FileType)
}

func TestSelectNoMatch(t *testing.T) {
	d := NewDatabase()
	assert.Nil(t, d.Select(""))
	assert.Nil(t, d.Select("notes.txt"))
	// an extension pattern never matches a substring
	assert.Nil(t, d.Select("file.cfg"))
	assert.Nil(t, d.Select("archive.c.bak"))
}

func TestSelectBySubstring(t *testing.T) {
	d := NewDatabase()
	d.Add(&Profile{FileType: "make", FileMatch: []string{"Makefile"}})
	p := d.Select("build/Makefile")
	require.NotNil(t, p)
	assert.Equal(t, "make", p.FileType)
}

func TestAddedProfilesTakePrecedence(t *testing.T) {
	d := NewDatabase()
	d.Add(&Profile{FileType: "c99", FileMatch: []string{".c"}})
	assert.Equal(t, "c99", d.Select("x.c").FileType)
	assert.Len(t, d.Profiles(), len(builtins)+1)
}
