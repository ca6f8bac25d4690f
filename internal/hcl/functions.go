package hcl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// newEvalContext builds the evaluation context for one configuration file.
// Relative paths given to file() are resolved against baseDir.
func (l *Loader) newEvalContext(baseDir string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": environObject(l.environ()),
		},
		Functions: map[string]function.Function{
			"file":      fileFunc(baseDir),
			"trimspace": stdlib.TrimSpaceFunc,
			"chomp":     stdlib.ChompFunc,
			"upper":     stdlib.UpperFunc,
			"lower":     stdlib.LowerFunc,
			"join":      stdlib.JoinFunc,
		},
	}
}

// environObject turns KEY=VALUE pairs into a cty object of strings.
func environObject(environ []string) cty.Value {
	vars := make(map[string]cty.Value, len(environ))
	for _, e := range environ {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) == 2 && pair[0] != "" {
			vars[pair[0]] = cty.StringVal(pair[1])
		}
	}
	if len(vars) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(vars)
}

// fileFunc returns a file(path) function that reads a UTF-8 text file.
func fileFunc(baseDir string) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "path", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			path := args[0].AsString()
			if !filepath.IsAbs(path) {
				path = filepath.Join(baseDir, path)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return cty.NilVal, fmt.Errorf("failed to read %s: %w", path, err)
			}
			if !utf8.Valid(data) {
				return cty.NilVal, fmt.Errorf("contents of %s are not valid UTF-8", path)
			}
			return cty.StringVal(string(data)), nil
		},
	})
}
