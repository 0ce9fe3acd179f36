package symbols

import (
	"fmt"

	"assetsym/internal/catalog"
)

// Binding pairs a constant identifier with the catalog key it names.
type Binding struct {
	Name     string // constant identifier, e.g. "ImageNameIconBell"
	Key      string // catalog key, e.g. "icon_bell"; the constant's value
	Exported bool
}

// Table is the full set of bindings for one generated file, ordered by
// catalog key. The table is built in one shot and never patched; a catalog
// change rebuilds it wholesale.
type Table struct {
	Bindings []Binding
}

// Build derives one binding per resource. It fails when two catalog keys
// collapse to the same identifier, since the generated file would not
// compile and the collision is almost always an authoring mistake in the
// catalog.
func Build(set *catalog.Set, prefix string) (*Table, error) {
	table := &Table{Bindings: make([]Binding, 0, len(set.Resources))}
	byName := make(map[string]string) // identifier -> key

	for _, res := range set.Resources {
		name, err := Derive(prefix, res.Name)
		if err != nil {
			return nil, err
		}
		exported := res.Visibility != catalog.VisibilityInternal
		if !exported {
			name = unexport(name)
		}
		if prev, ok := byName[name]; ok {
			return nil, fmt.Errorf("resources %q and %q both derive constant %s", prev, res.Name, name)
		}
		byName[name] = res.Name
		table.Bindings = append(table.Bindings, Binding{Name: name, Key: res.Name, Exported: exported})
	}
	return table, nil
}
