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
// Package config loads ked's settings from a TOML file.
//
// A missing file is not an error; every setting has a default.
//
//	tab_stop = 4
//	quit_times = 3
//	message_seconds = 5
//	backend = "tcell"
//	log_file = "/tmp/ked.log"
//	init_script = "~/.ked.lisp"
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds ked's settings.
type Config struct {
	TabStop        int    `toml:"tab_stop"`
	QuitTimes      int    `toml:"quit_times"`
	MessageSeconds int    `toml:"message_seconds"`
	Backend        string `toml:"backend"`
	LogFile        string `toml:"log_file"`
	InitScript     string `toml:"init_script"`
}

// Default returns the settings used when no file overrides them. Paths
// are relative to home.
func Default(home string) Config {
	return Config{
		TabStop:        2,
		QuitTimes:      3,
		MessageSeconds: 5,
		Backend:        "termbox",
		LogFile:        filepath.Join(home, ".kedlog"),
		InitScript:     filepath.Join(home, ".ked.lisp"),
	}
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath(home string) string {
	return filepath.Join(home, ".ked.toml")
}

// Load reads the file at path over the defaults. A missing file yields the
// defaults.
func Load(path, home string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(home), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	c, err := Parse(string(data), home)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes TOML text over the defaults and validates the result.
func Parse(text, home string) (Config, error) {
	c := Default(home)
	md, err := toml.Decode(text, &c)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	if c.TabStop < 1 {
		return Config{}, fmt.Errorf("tab_stop must be positive, got %d", c.TabStop)
	}
	if c.QuitTimes < 0 {
		return Config{}, fmt.Errorf("quit_times must not be negative, got %d", c.QuitTimes)
	}
	if c.MessageSeconds < 0 {
		return Config{}, fmt.Errorf("message_seconds must not be negative, got %d", c.MessageSeconds)
	}
	c.LogFile = expandHome(c.LogFile, home)
	c.InitScript = expandHome(c.InitScript, home)
	return c, nil
}

// MessageTimeout is how long status messages stay visible.
func (c Config) MessageTimeout() time.Duration {
	return time.Duration(c.MessageSeconds) * time.Second
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
