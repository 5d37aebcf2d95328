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
// Package terminal reads keys from and writes frames to the user's
// terminal. Several backends are available; all of them deliver keys as
// bytes plus the special keys defined in the types package.
package terminal

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/timburks/ked/types"
)

// Backend names.
const (
	BackendTermbox = "termbox"
	BackendTcell   = "tcell"
	BackendRaw     = "raw"
)

// ErrUnknownBackend is returned by Open for an unrecognized backend name.
var ErrUnknownBackend = errors.New("unknown terminal backend")

// A Terminal is a raw-mode terminal session.
type Terminal interface {
	// Size returns the size of the terminal in character cells.
	Size() (types.Size, error)
	// ReadKey blocks until a key is available. It returns KeyNone for
	// events that carry no key, such as a resize.
	ReadKey() (types.Key, error)
	// Write sends bytes to the terminal unchanged.
	Write(p []byte) (int, error)
	// Close restores the terminal to its original state.
	Close() error
}

// Open starts a terminal session with the named backend.
func Open(backend string) (Terminal, error) {
	var t Terminal
	var err error
	switch backend {
	case BackendTermbox, "":
		t, err = openTermbox()
	case BackendTcell:
		t, err = openTcell()
	case BackendRaw:
		t, err = openRaw()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s terminal: %w", backend, err)
	}
	zap.L().Info("terminal opened", zap.String("backend", backend))
	return t, nil
}

// keyQueue holds keys that were decoded together but are delivered one
// at a time.
type keyQueue []types.Key

func (q *keyQueue) pop() (types.Key, bool) {
	if len(*q) == 0 {
		return types.KeyNone, false
	}
	k := (*q)[0]
	*q = (*q)[1:]
	return k, true
}

// pushRune queues r as bytes and returns the first of them.
func (q *keyQueue) pushRune(r rune) types.Key {
	if r < utf8.RuneSelf {
		return types.Key(r)
	}
	buf := make([]byte, utf8.UTFMax)
	n := utf8.EncodeRune(buf, r)
	for _, c := range buf[1:n] {
		*q = append(*q, types.Key(c))
	}
	return types.Key(buf[0])
}

type stdout struct{}

func (stdout) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}
