// Package generator wires the pipeline together: scan catalogs, build the
// symbol table, emit the generated files. Each run is a wholesale rebuild
// from the catalogs; there is no partial update path.
package generator

import (
	"context"

	"assetsym/internal/catalog"
	"assetsym/internal/config"
	"assetsym/internal/emit"
	"assetsym/internal/symbols"
)

// Rendered holds one regeneration pass's output before it touches disk.
type Rendered struct {
	Table    *symbols.Table
	GoSource []byte
	ObjC     []byte // nil unless an objc header is configured
}

// Result reports what a Run pass did.
type Result struct {
	Bindings    int
	WroteGo     bool
	WroteHeader bool
}

// Render scans the configured catalogs and renders the generated sources
// in memory.
func Render(ctx context.Context, cfg *config.Config) (*Rendered, error) {
	scanner := &catalog.Scanner{
		DefaultVisibility: cfg.DefaultVisibility(),
		Include:           cfg.Filter.Include,
		Exclude:           cfg.Filter.Exclude,
	}

	set, err := scanner.LoadAll(ctx, cfg.Catalogs)
	if err != nil {
		return nil, err
	}

	table, err := symbols.Build(set, cfg.Symbols.Prefix)
	if err != nil {
		return nil, err
	}

	goSrc, err := emit.GoSource(table, cfg.Output.Package)
	if err != nil {
		return nil, err
	}

	rendered := &Rendered{Table: table, GoSource: goSrc}
	if cfg.Output.ObjCHeader != "" {
		objc, err := emit.ObjCHeader(table)
		if err != nil {
			return nil, err
		}
		rendered.ObjC = objc
	}
	return rendered, nil
}

// Run renders and writes the configured outputs. Files already matching
// the rendered content are left untouched.
func Run(ctx context.Context, cfg *config.Config) (*Result, error) {
	rendered, err := Render(ctx, cfg)
	if err != nil {
		return nil, err
	}

	res := &Result{Bindings: len(rendered.Table.Bindings)}

	res.WroteGo, err = emit.WriteFile(cfg.Output.GoFile, rendered.GoSource)
	if err != nil {
		return nil, err
	}

	if rendered.ObjC != nil {
		res.WroteHeader, err = emit.WriteFile(cfg.Output.ObjCHeader, rendered.ObjC)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}
