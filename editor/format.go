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
	"bytes"
	"errors"
	"fmt"
	"go/format"

	"go.uber.org/zap"
)

// ErrNotGo is returned when formatting a buffer that is not Go source.
var ErrNotGo = errors.New("not a go buffer")

// Format rewrites a Go buffer in gofmt style. Buffers with syntax errors
// are left unchanged.
func (e *Editor) Format() error {
	b := e.Buffer
	if p := b.Syntax(); p == nil || p.FileType != "go" {
		return ErrNotGo
	}
	input := b.RowsToText()
	output, err := format.Source(input)
	if err != nil {
		zap.L().Info("gofmt failed", zap.String("path", b.GetFileName()), zap.Error(err))
		e.SetStatusMessage("gofmt: %s", err.Error())
		return fmt.Errorf("gofmt %s: %w", b.GetFileName(), err)
	}
	if bytes.Equal(input, output) {
		return nil
	}
	b.ReplaceLines(splitLines(output))

	// keep the cursor inside the new text
	if e.Cursor.Row > b.GetRowCount() {
		e.Cursor.Row = b.GetRowCount()
	}
	if n := b.GetRowLength(e.Cursor.Row); e.Cursor.Col > n {
		e.Cursor.Col = n
	}
	e.SetStatusMessage("formatted %s", b.GetFileName())
	return nil
}

func splitLines(text []byte) [][]byte {
	if len(text) == 0 {
		return nil
	}
	return bytes.Split(bytes.TrimSuffix(text, []byte("\n")), []byte("\n"))
}
