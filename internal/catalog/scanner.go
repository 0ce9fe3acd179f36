package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// imagesetSuffix marks a directory as one image resource. Directories
// without the suffix are group folders and are descended into.
const imagesetSuffix = ".imageset"

// Scanner discovers image resources in catalog directory trees.
type Scanner struct {
	// DefaultVisibility applies to resources whose Contents.json declares
	// no visibility. Zero value means VisibilityPublic.
	DefaultVisibility Visibility

	// Include and Exclude filter resources by name with doublestar glob
	// patterns. An empty Include list admits everything; Exclude wins.
	Include []string
	Exclude []string
}

// Load scans a single catalog root and returns its resources, unsorted.
func (s *Scanner) Load(root string) ([]Resource, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("catalog %s: not a directory", root)
	}

	var resources []Resource
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() || !strings.HasSuffix(d.Name(), imagesetSuffix) {
			return nil
		}

		res, err := s.loadImageset(root, path)
		if err != nil {
			return err
		}
		if res != nil {
			resources = append(resources, *res)
		}
		// Imagesets do not nest.
		return fs.SkipDir
	})
	if err != nil {
		return nil, err
	}
	return resources, nil
}

// LoadAll scans every catalog root concurrently and merges the results
// into one sorted set. Duplicate resource names across catalogs are an
// error because they would collapse to the same constant.
func (s *Scanner) LoadAll(ctx context.Context, roots []string) (*Set, error) {
	groups := make([][]Resource, len(roots))

	g, ctx := errgroup.WithContext(ctx)
	for i, root := range roots {
		i, root := i, root
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			resources, err := s.Load(root)
			if err != nil {
				return err
			}
			groups[i] = resources
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return merge(groups...)
}

// loadImageset reads one imageset directory. A nil resource with nil error
// means the resource was filtered out.
func (s *Scanner) loadImageset(root, dir string) (*Resource, error) {
	name := strings.TrimSuffix(filepath.Base(dir), imagesetSuffix)
	rel, err := filepath.Rel(root, dir)
	if err != nil {
		rel = dir
	}
	if name == "" {
		return nil, fmt.Errorf("catalog %s: imageset %s has an empty resource name", root, rel)
	}

	data, err := os.ReadFile(filepath.Join(dir, "Contents.json"))
	if err != nil {
		return nil, fmt.Errorf("catalog %s: imageset %s: %w", root, rel, err)
	}
	var c contents
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("catalog %s: imageset %s: malformed Contents.json: %w", root, rel, err)
	}

	keep, err := s.admit(name)
	if err != nil {
		return nil, err
	}
	if !keep {
		return nil, nil
	}

	vis := s.DefaultVisibility
	if vis == "" {
		vis = VisibilityPublic
	}
	if c.Properties.Visibility != "" {
		vis = Visibility(c.Properties.Visibility)
		if !vis.Valid() {
			return nil, fmt.Errorf("catalog %s: imageset %s: unknown visibility %q", root, rel, c.Properties.Visibility)
		}
	}

	return &Resource{Name: name, Visibility: vis, Dir: rel}, nil
}
