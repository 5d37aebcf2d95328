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

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/timburks/ked/types"
)

// rawTerminal puts the controlling terminal into raw mode itself.
type rawTerminal struct {
	in       int
	out      int
	original *unix.Termios
}

func openRaw() (Terminal, error) {
	in := int(os.Stdin.Fd())
	if !term.IsTerminal(in) {
		return nil, errors.New("stdin is not a terminal")
	}
	original, err := unix.IoctlGetTermios(in, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("tcgetattr: %w", err)
	}
	raw := *original
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	// return after 100ms even when no byte arrives
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(in, ioctlWriteTermios, &raw); err != nil {
		return nil, fmt.Errorf("tcsetattr: %w", err)
	}
	return &rawTerminal{in: in, out: int(os.Stdout.Fd()), original: original}, nil
}

func (t *rawTerminal) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

func (t *rawTerminal) Close() error {
	return unix.IoctlSetTermios(t.in, ioctlWriteTermios, t.original)
}

// readByte makes one timed read.
func (t *rawTerminal) readByte() (byte, bool, error) {
	var buf [1]byte
	n, err := unix.Read(t.in, buf[:])
	if err != nil && err != unix.EAGAIN && err != unix.EINTR {
		return 0, false, err
	}
	return buf[0], n == 1, nil
}

func (t *rawTerminal) ReadKey() (types.Key, error) {
	var c byte
	for {
		b, ok, err := t.readByte()
		if err != nil {
			return types.KeyNone, fmt.Errorf("read: %w", err)
		}
		if ok {
			c = b
			break
		}
	}
	return decodeKey(c, func() (byte, bool) {
		b, ok, err := t.readByte()
		return b, ok && err == nil
	}), nil
}

func (t *rawTerminal) Size() (types.Size, error) {
	cols, rows, err := term.GetSize(t.out)
	if err == nil && cols > 0 {
		return types.Size{Rows: rows, Cols: cols}, nil
	}
	// push the cursor to the bottom right corner and ask where it is
	if _, err := t.Write([]byte("\x1b[999C\x1b[999B")); err != nil {
		return types.Size{}, err
	}
	return t.cursorPosition()
}

func (t *rawTerminal) cursorPosition() (types.Size, error) {
	if _, err := t.Write([]byte("\x1b[6n")); err != nil {
		return types.Size{}, err
	}
	var reply []byte
	for len(reply) < 32 {
		b, ok, err := t.readByte()
		if err != nil {
			return types.Size{}, err
		}
		if !ok || b == 'R' {
			break
		}
		reply = append(reply, b)
	}
	return parseCursorPosition(reply)
}
