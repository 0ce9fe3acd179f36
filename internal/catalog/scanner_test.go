package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeImageset creates an imageset directory with a Contents.json.
func writeImageset(t *testing.T, root, name, contents string) {
	t.Helper()
	dir := filepath.Join(root, name+".imageset")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Contents.json"), []byte(contents), 0644))
}

const minimalContents = `{"info": {"author": "xcode", "version": 1}}`

func TestScannerLoad(t *testing.T) {
	t.Run("finds imagesets including nested groups", func(t *testing.T) {
		root := t.TempDir()
		writeImageset(t, root, "icon_bell", minimalContents)
		writeImageset(t, root, "icon_fire", minimalContents)
		writeImageset(t, filepath.Join(root, "Badges"), "badge_new", minimalContents)

		s := &Scanner{}
		resources, err := s.Load(root)
		require.NoError(t, err)
		require.Len(t, resources, 3)

		byName := map[string]Resource{}
		for _, res := range resources {
			byName[res.Name] = res
		}
		assert.Contains(t, byName, "icon_bell")
		assert.Contains(t, byName, "icon_fire")
		assert.Contains(t, byName, "badge_new")
		assert.Equal(t, VisibilityPublic, byName["icon_bell"].Visibility)
	})

	t.Run("group folders without Contents.json are not resources", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "Icons"), 0755))
		writeImageset(t, filepath.Join(root, "Icons"), "icon_flag", minimalContents)

		s := &Scanner{}
		resources, err := s.Load(root)
		require.NoError(t, err)
		require.Len(t, resources, 1)
		assert.Equal(t, "icon_flag", resources[0].Name)
	})

	t.Run("imageset without Contents.json is an error", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "broken.imageset"), 0755))

		s := &Scanner{}
		_, err := s.Load(root)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken.imageset")
	})

	t.Run("malformed Contents.json is an error naming the file", func(t *testing.T) {
		root := t.TempDir()
		writeImageset(t, root, "icon_bad", `{"info": `)

		s := &Scanner{}
		_, err := s.Load(root)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "icon_bad.imageset")
		assert.Contains(t, err.Error(), "malformed")
	})

	t.Run("visibility property overrides the default", func(t *testing.T) {
		root := t.TempDir()
		writeImageset(t, root, "icon_hidden", `{
			"info": {"author": "xcode", "version": 1},
			"properties": {"visibility": "internal"}
		}`)
		writeImageset(t, root, "icon_shown", minimalContents)

		s := &Scanner{DefaultVisibility: VisibilityPublic}
		resources, err := s.Load(root)
		require.NoError(t, err)

		byName := map[string]Visibility{}
		for _, res := range resources {
			byName[res.Name] = res.Visibility
		}
		assert.Equal(t, VisibilityInternal, byName["icon_hidden"])
		assert.Equal(t, VisibilityPublic, byName["icon_shown"])
	})

	t.Run("unknown visibility value is an error", func(t *testing.T) {
		root := t.TempDir()
		writeImageset(t, root, "icon_odd", `{
			"info": {"author": "xcode", "version": 1},
			"properties": {"visibility": "secret"}
		}`)

		s := &Scanner{}
		_, err := s.Load(root)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"secret"`)
	})

	t.Run("missing catalog root is an error", func(t *testing.T) {
		s := &Scanner{}
		_, err := s.Load(filepath.Join(t.TempDir(), "nope.xcassets"))
		assert.Error(t, err)
	})
}

func TestScannerFilter(t *testing.T) {
	root := t.TempDir()
	writeImageset(t, root, "icon_bell", minimalContents)
	writeImageset(t, root, "icon_fire", minimalContents)
	writeImageset(t, root, "logo_small", minimalContents)

	t.Run("include admits matching names only", func(t *testing.T) {
		s := &Scanner{Include: []string{"icon_*"}}
		resources, err := s.Load(root)
		require.NoError(t, err)
		require.Len(t, resources, 2)
	})

	t.Run("exclude wins over include", func(t *testing.T) {
		s := &Scanner{Include: []string{"icon_*"}, Exclude: []string{"icon_fire"}}
		resources, err := s.Load(root)
		require.NoError(t, err)
		require.Len(t, resources, 1)
		assert.Equal(t, "icon_bell", resources[0].Name)
	})

	t.Run("bad pattern is an error", func(t *testing.T) {
		s := &Scanner{Include: []string{"[icon"}}
		_, err := s.Load(root)
		assert.Error(t, err)
	})
}

func TestScannerLoadAll(t *testing.T) {
	t.Run("merges catalogs sorted by name", func(t *testing.T) {
		first := t.TempDir()
		second := t.TempDir()
		writeImageset(t, first, "icon_fire", minimalContents)
		writeImageset(t, second, "icon_bell", minimalContents)

		s := &Scanner{}
		set, err := s.LoadAll(context.Background(), []string{first, second})
		require.NoError(t, err)
		assert.Equal(t, []string{"icon_bell", "icon_fire"}, set.Names())
	})

	t.Run("duplicate names across catalogs are an error", func(t *testing.T) {
		first := t.TempDir()
		second := t.TempDir()
		writeImageset(t, first, "icon_bell", minimalContents)
		writeImageset(t, second, "icon_bell", minimalContents)

		s := &Scanner{}
		_, err := s.LoadAll(context.Background(), []string{first, second})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate resource")
	})

	t.Run("empty catalog yields an empty set", func(t *testing.T) {
		s := &Scanner{}
		set, err := s.LoadAll(context.Background(), []string{t.TempDir()})
		require.NoError(t, err)
		assert.Empty(t, set.Resources)
	})
}
