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
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/timburks/ked/commander"
	"github.com/timburks/ked/config"
	"github.com/timburks/ked/editor"
	"github.com/timburks/ked/screen"
	"github.com/timburks/ked/syntax"
	"github.com/timburks/ked/terminal"
)

const help = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find | i = edit | Ctrl-J = stop editing | ( = eval"

type options struct {
	configPath string
	script     string
	backend    string
	filename   string
}

func parseArgs(args []string) (options, error) {
	var o options
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--config", "--eval", "--backend":
			i++
			if i >= len(args) {
				return o, fmt.Errorf("no value specified for %s option", arg)
			}
			switch arg {
			case "--config":
				o.configPath = args[i]
			case "--eval":
				o.script = args[i]
			case "--backend":
				o.backend = args[i]
			}
		default:
			if strings.HasPrefix(arg, "--") {
				return o, fmt.Errorf("unknown option %s", arg)
			}
			if o.filename != "" {
				return o, errors.New("only one file can be edited at a time")
			}
			o.filename = arg
		}
	}
	return o, nil
}

func newLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "ked: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	o, err := parseArgs(args)
	if err != nil {
		return err
	}

	home := os.Getenv("HOME")
	if o.configPath == "" {
		o.configPath = config.DefaultPath(home)
	}
	cfg, err := config.Load(o.configPath, home)
	if err != nil {
		return err
	}
	if o.backend != "" {
		cfg.Backend = o.backend
	}

	// Open a log file.
	logger, err := newLogger(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)
	zap.L().Info("starting", zap.String("config", o.configPath), zap.String("file", o.filename))

	// The editor manages all text manipulation.
	e := editor.NewEditor(syntax.NewDatabase(), cfg.TabStop)
	e.MessageTimeout = cfg.MessageTimeout()

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e, cfg.QuitTimes)

	var initErr error
	if err := c.Interpreter().ParseEvalFile(cfg.InitScript); err != nil && !errors.Is(err, fs.ErrNotExist) {
		zap.L().Warn("init script failed", zap.String("path", cfg.InitScript), zap.Error(err))
		initErr = err
	}

	if o.filename != "" {
		if err := e.ReadFile(o.filename); err != nil {
			zap.L().Error("open failed", zap.String("path", o.filename), zap.Error(err))
			return err
		}
	}

	if o.script != "" {
		// Run a script and exit.
		return c.Interpreter().ParseEvalFile(o.script)
	}

	t, err := terminal.Open(cfg.Backend)
	if err != nil {
		zap.L().Error("terminal failed", zap.Error(err))
		return err
	}
	defer t.Close()
	s := screen.NewScreen(t)
	defer s.Clear()

	if initErr != nil {
		e.SetStatusMessage("init script: %s", initErr.Error())
	} else {
		e.SetStatusMessage(help)
	}

	// Run the main event loop.
	for c.IsRunning() {
		if err := s.Render(e); err != nil {
			zap.L().Error("render failed", zap.Error(err))
			return err
		}
		key, err := t.ReadKey()
		if err != nil {
			zap.L().Error("read failed", zap.Error(err))
			return fmt.Errorf("read key: %w", err)
		}
		if err := c.ProcessKey(key); err != nil {
			zap.L().Warn("command failed", zap.Error(err))
		}
	}
	zap.L().Info("exiting")
	return nil
}
