// Package emit renders a symbol table into generated source files. Output
// is a pure function of the table: the same bindings always produce the
// same bytes, which is what keeps regeneration idempotent and diffs in
// version control limited to actual catalog changes.
package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"

	"assetsym/internal/symbols"
)

// goTemplate renders the generated Go file. One constant per binding, each
// with a doc comment naming the catalog resource it stands for.
var goTemplate = template.Must(template.New("go").Parse(`// Code generated by assetsym. DO NOT EDIT.

// Package {{.Package}} exposes the project's asset catalog image resource
// names as compile-time string constants.
package {{.Package}}
{{range .Bindings}}
// The {{printf "%q" .Key}} asset catalog image resource.
const {{.Name}} = {{printf "%q" .Key}}
{{end}}`))

// GoSource renders the table as a gofmt-formatted Go file declaring one
// string constant per binding.
func GoSource(table *symbols.Table, pkg string) ([]byte, error) {
	var buf bytes.Buffer
	err := goTemplate.Execute(&buf, struct {
		Package  string
		Bindings []symbols.Binding
	}{Package: pkg, Bindings: table.Bindings})
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", pkg, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

// WriteFile writes content to path, creating parent directories as needed.
// The file is left untouched when its content already matches, so build
// tools watching mtimes do not see spurious changes. Reports whether the
// file was written.
func WriteFile(path string, content []byte) (bool, error) {
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, content) {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}
