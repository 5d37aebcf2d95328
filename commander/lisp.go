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
package commander

import (
	"errors"
	"fmt"
	"os"

	"github.com/steelseries/golisp"
	"go.uber.org/zap"

	"github.com/timburks/ked/editor"
	"github.com/timburks/ked/syntax"
)

// An Interpreter evaluates lisp expressions against an editor. The
// primitives it defines are:
//
//	(message text)          show text in the message bar
//	(row-count)             number of rows in the buffer
//	(append-line text)      add a row at the end of the buffer
//	(save)                  write the buffer to its file
//	(gofmt)                 format a go buffer
//	(define-syntax name matches keywords comment block-start block-end flags)
type Interpreter struct {
	editor *editor.Editor
}

// NewInterpreter binds the editor primitives in the global lisp
// environment. Primitives defined by an earlier interpreter are replaced.
func NewInterpreter(e *editor.Editor) *Interpreter {
	i := &Interpreter{editor: e}
	golisp.MakePrimitiveFunction("message", "1", i.messageImpl)
	golisp.MakePrimitiveFunction("row-count", "0", i.rowCountImpl)
	golisp.MakePrimitiveFunction("append-line", "1", i.appendLineImpl)
	golisp.MakePrimitiveFunction("save", "0", i.saveImpl)
	golisp.MakePrimitiveFunction("gofmt", "0", i.gofmtImpl)
	golisp.MakePrimitiveFunction("define-syntax", "7", i.defineSyntaxImpl)
	return i
}

// ParseEval evaluates source and returns the printed form of the result.
func (i *Interpreter) ParseEval(source string) (string, error) {
	value, err := golisp.ParseAndEval(source)
	if err != nil {
		zap.L().Info("eval failed", zap.String("source", source), zap.Error(err))
		return "", err
	}
	result := golisp.String(value)
	zap.L().Debug("eval", zap.String("source", source), zap.String("result", result))
	return result, nil
}

// ParseEvalFile evaluates every expression in a file.
func (i *Interpreter) ParseEvalFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if _, err := i.ParseEval("(begin " + string(source) + "\n)"); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	zap.L().Info("evaluated script", zap.String("path", path))
	return nil
}

func (i *Interpreter) messageImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	text := golisp.String(val)
	if golisp.StringP(val) {
		text = golisp.StringValue(val)
	}
	i.editor.SetStatusMessage("%s", text)
	return golisp.StringWithValue(text), nil
}

func (i *Interpreter) rowCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.IntegerWithValue(int64(i.editor.Buffer.GetRowCount())), nil
}

func (i *Interpreter) appendLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("append-line requires a string argument")
	}
	b := i.editor.Buffer
	b.InsertRow(b.GetRowCount(), []byte(golisp.StringValue(val)))
	return golisp.IntegerWithValue(int64(b.GetRowCount())), nil
}

func (i *Interpreter) saveImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	n, err := i.editor.Save()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(n)), nil
}

func (i *Interpreter) gofmtImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if err := i.editor.Format(); err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(i.editor.Buffer.GetRowCount())), nil
}

func (i *Interpreter) defineSyntaxImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	var p syntax.Profile
	var err error
	if p.FileType, err = stringArg(args, 0, "name"); err != nil {
		return nil, err
	}
	if p.FileMatch, err = stringListArg(args, 1, "matches"); err != nil {
		return nil, err
	}
	if p.Keywords, err = stringListArg(args, 2, "keywords"); err != nil {
		return nil, err
	}
	if p.SingleLineComment, err = stringArg(args, 3, "comment"); err != nil {
		return nil, err
	}
	if p.BlockCommentStart, err = stringArg(args, 4, "block-start"); err != nil {
		return nil, err
	}
	if p.BlockCommentEnd, err = stringArg(args, 5, "block-end"); err != nil {
		return nil, err
	}
	flags := nth(args, 6)
	if !golisp.IntegerP(flags) {
		return nil, errors.New("define-syntax: flags must be an integer")
	}
	p.Flags = syntax.Flags(golisp.IntegerValue(flags))

	i.editor.Syntaxes().Add(&p)
	i.editor.SelectSyntax()
	zap.L().Info("defined syntax", zap.String("filetype", p.FileType), zap.Strings("matches", p.FileMatch))
	return golisp.StringWithValue(p.FileType), nil
}

func nth(list *golisp.Data, n int) *golisp.Data {
	for ; n > 0; n-- {
		list = golisp.Cdr(list)
	}
	return golisp.Car(list)
}

func stringArg(args *golisp.Data, n int, name string) (string, error) {
	val := nth(args, n)
	if !golisp.StringP(val) {
		return "", fmt.Errorf("define-syntax: %s must be a string", name)
	}
	return golisp.StringValue(val), nil
}

func stringListArg(args *golisp.Data, n int, name string) ([]string, error) {
	var values []string
	for cell := nth(args, n); !golisp.NilP(cell); cell = golisp.Cdr(cell) {
		val := golisp.Car(cell)
		if !golisp.StringP(val) {
			return nil, fmt.Errorf("define-syntax: %s must be a list of strings", name)
		}
		values = append(values, golisp.StringValue(val))
	}
	return values, nil
}
