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
	"fmt"

	"github.com/timburks/ked/types"
)

// parseCursorPosition parses a cursor position report ("ESC [ rows ; cols")
// without its trailing 'R'.
func parseCursorPosition(reply []byte) (types.Size, error) {
	var size types.Size
	if len(reply) < 2 || reply[0] != 0x1b || reply[1] != '[' {
		return size, fmt.Errorf("bad cursor position report %q", reply)
	}
	if _, err := fmt.Sscanf(string(reply[2:]), "%d;%d", &size.Rows, &size.Cols); err != nil {
		return size, fmt.Errorf("bad cursor position report %q: %w", reply, err)
	}
	return size, nil
}
