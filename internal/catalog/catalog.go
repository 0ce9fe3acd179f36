// Package catalog loads image resource names from .xcassets-style asset
// catalogs. Only resource names and per-resource properties are read; image
// payloads are never touched.
package catalog

import (
	"fmt"
	"sort"
)

// Visibility controls whether a resource's generated symbol is exported.
type Visibility string

const (
	// VisibilityPublic emits an exported constant.
	VisibilityPublic Visibility = "public"
	// VisibilityInternal emits an unexported constant, visible only to the
	// package that holds the generated table.
	VisibilityInternal Visibility = "internal"
)

// Valid reports whether v is a recognized visibility value.
func (v Visibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityInternal
}

// Resource is one image resource discovered in a catalog.
type Resource struct {
	// Name is the catalog key, e.g. "icon_bell". The generated constant's
	// value equals this string byte-for-byte.
	Name string

	// Visibility of the generated symbol. Defaults to the scanner's
	// DefaultVisibility when the resource declares none.
	Visibility Visibility

	// Dir is the imageset directory the resource was loaded from,
	// relative to the catalog root. Used in error messages only.
	Dir string
}

// Set is the resources of one or more catalogs, sorted by name.
type Set struct {
	Resources []Resource
}

// merge combines resources from multiple catalogs, rejecting name
// collisions across catalogs.
func merge(groups ...[]Resource) (*Set, error) {
	seen := make(map[string]string) // name -> dir of first occurrence
	var all []Resource
	for _, group := range groups {
		for _, res := range group {
			if prev, ok := seen[res.Name]; ok {
				return nil, fmt.Errorf("duplicate resource %q (in %s and %s)", res.Name, prev, res.Dir)
			}
			seen[res.Name] = res.Dir
			all = append(all, res)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return &Set{Resources: all}, nil
}

// Names returns the catalog keys in sorted order.
func (s *Set) Names() []string {
	names := make([]string, len(s.Resources))
	for i, res := range s.Resources {
		names[i] = res.Name
	}
	return names
}
