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

// Package syntax describes the file types that ked knows how to highlight.
// A Profile is a declarative table: file patterns, keywords and comment
// markers. Profiles are never modified once they are added to a Database.
package syntax

import (
	"path/filepath"
	"strings"
)

// Flags enable optional highlighting rules.
type Flags int

const (
	HighlightNumbers Flags = 1 << iota
	HighlightStrings
)

// A Profile describes how to classify the text of one kind of file.
type Profile struct {
	FileType          string   // name displayed in the status bar
	FileMatch         []string // ".ext" matches an extension, anything else a substring
	Keywords          []string // a trailing "|" marks a secondary keyword
	SingleLineComment string
	BlockCommentStart string
	BlockCommentEnd   string
	Flags             Flags
}

// Matches reports whether a profile applies to a filename.
func (p *Profile) Matches(filename string) bool {
	ext := filepath.Ext(filename)
	for _, pattern := range p.FileMatch {
		if strings.HasPrefix(pattern, ".") {
			if ext != "" && ext == pattern {
				return true
			}
		} else if pattern != "" && strings.Contains(filename, pattern) {
			return true
		}
	}
	return false
}

func (p *Profile) HasFlag(f Flags) bool {
	return p.Flags&f != 0
}

// A Database is an ordered list of profiles; the first match wins.
type Database struct {
	profiles []*Profile
}

// NewDatabase returns a database holding the built-in profiles.
func NewDatabase() *Database {
	d := &Database{}
	d.profiles = append(d.profiles, builtins...)
	return d
}

// Add registers a profile ahead of all existing ones, so that scripts can
// replace a built-in file type.
func (d *Database) Add(p *Profile) {
	d.profiles = append([]*Profile{p}, d.profiles...)
}

func (d *Database) Profiles() []*Profile {
	return d.profiles
}

// Select returns the first profile matching filename, or nil.
func (d *Database) Select(filename string) *Profile {
	if filename == "" {
		return nil
	}
	for _, p := range d.profiles {
		if p.Matches(filename) {
			return p
		}
	}
	return nil
}

var builtins = []*Profile{
	{
		FileType:  "c",
		FileMatch: []string{".c", ".h", ".cpp"},
		Keywords: []string{
			"switch", "if", "while", "for", "break", "continue", "return", "else",
			"struct", "union", "typedef", "static", "enum", "class", "case",
			"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|",
			"void|",
		},
		SingleLineComment: "//",
		BlockCommentStart: "/*",
		BlockCommentEnd:   "*/",
		Flags:             HighlightNumbers | HighlightStrings,
	},
	{
		FileType:  "go",
		FileMatch: []string{".go"},
		Keywords: []string{
			"break", "default", "func", "interface", "select", "case", "defer",
			"go", "map", "struct", "chan", "else", "goto", "package", "switch",
			"const", "fallthrough", "if", "range", "type", "continue", "for",
			"import", "return", "var",
			"bool|", "byte|", "error|", "int|", "int64|", "rune|", "string|",
			"uint|", "float64|", "nil|", "true|", "false|",
		},
		SingleLineComment: "//",
		BlockCommentStart: "/*",
		BlockCommentEnd:   "*/",
		Flags:             HighlightNumbers | HighlightStrings,
	},
}
