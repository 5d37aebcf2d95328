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
	"github.com/timburks/ked/types"
)

// byteSource returns the next input byte, or false if none arrives in time.
type byteSource func() (byte, bool)

// decodeEscape reads the rest of an escape sequence whose leading ESC has
// already been consumed. Incomplete or unknown sequences decode as Escape.
func decodeEscape(next byteSource) types.Key {
	seq0, ok := next()
	if !ok {
		return types.KeyEsc
	}
	seq1, ok := next()
	if !ok {
		return types.KeyEsc
	}
	switch seq0 {
	case '[':
		if seq1 >= '0' && seq1 <= '9' {
			seq2, ok := next()
			if !ok || seq2 != '~' {
				return types.KeyEsc
			}
			switch seq1 {
			case '1', '7':
				return types.KeyHome
			case '3':
				return types.KeyDelete
			case '4', '8':
				return types.KeyEnd
			case '5':
				return types.KeyPageUp
			case '6':
				return types.KeyPageDown
			}
			return types.KeyEsc
		}
		switch seq1 {
		case 'A':
			return types.KeyArrowUp
		case 'B':
			return types.KeyArrowDown
		case 'C':
			return types.KeyArrowRight
		case 'D':
			return types.KeyArrowLeft
		case 'H':
			return types.KeyHome
		case 'F':
			return types.KeyEnd
		}
	case 'O':
		switch seq1 {
		case 'H':
			return types.KeyHome
		case 'F':
			return types.KeyEnd
		}
	}
	return types.KeyEsc
}

// decodeKey decodes one key starting with the byte c.
func decodeKey(c byte, next byteSource) types.Key {
	if types.Key(c) == types.KeyEsc {
		return decodeEscape(next)
	}
	return types.Key(c)
}
