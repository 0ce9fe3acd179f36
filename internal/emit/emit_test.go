package emit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assetsym/internal/symbols"
)

func table(bindings ...symbols.Binding) *symbols.Table {
	return &symbols.Table{Bindings: bindings}
}

var icons = table(
	symbols.Binding{Name: "ImageNameIconBell", Key: "icon_bell", Exported: true},
	symbols.Binding{Name: "ImageNameIconCalendar", Key: "icon_calendar", Exported: true},
	symbols.Binding{Name: "imageNameIconDebug", Key: "icon_debug", Exported: false},
)

func TestGoSource(t *testing.T) {
	src, err := GoSource(icons, "assets")
	require.NoError(t, err)
	out := string(src)

	t.Run("marked as generated", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(out, "// Code generated by assetsym. DO NOT EDIT.\n"))
	})

	t.Run("declares each constant with its exact key", func(t *testing.T) {
		assert.Contains(t, out, `const ImageNameIconBell = "icon_bell"`)
		assert.Contains(t, out, `const ImageNameIconCalendar = "icon_calendar"`)
		assert.Contains(t, out, `const imageNameIconDebug = "icon_debug"`)
	})

	t.Run("documents the catalog resource per constant", func(t *testing.T) {
		assert.Contains(t, out, `// The "icon_bell" asset catalog image resource.`)
	})

	t.Run("uses the configured package", func(t *testing.T) {
		assert.Contains(t, out, "package assets\n")
	})

	t.Run("byte-identical across runs", func(t *testing.T) {
		again, err := GoSource(icons, "assets")
		require.NoError(t, err)
		assert.Equal(t, src, again)
	})

	t.Run("empty table still renders a valid file", func(t *testing.T) {
		src, err := GoSource(table(), "assets")
		require.NoError(t, err)
		assert.Contains(t, string(src), "package assets")
		assert.NotContains(t, string(src), "\nconst ")
	})
}

// Adding one binding must keep every prior line and introduce exactly one
// new constant.
func TestGoSourceIncrementalStability(t *testing.T) {
	before, err := GoSource(icons, "assets")
	require.NoError(t, err)

	grown := table(append(append([]symbols.Binding{}, icons.Bindings...),
		symbols.Binding{Name: "ImageNameIconFire", Key: "icon_fire", Exported: true})...)
	after, err := GoSource(grown, "assets")
	require.NoError(t, err)

	beforeLines := strings.Split(string(before), "\n")
	afterLines := map[string]bool{}
	for _, line := range strings.Split(string(after), "\n") {
		afterLines[line] = true
	}
	for _, line := range beforeLines {
		assert.True(t, afterLines[line], "line dropped by regeneration: %q", line)
	}

	beforeConsts := strings.Count(string(before), "\nconst ")
	afterConsts := strings.Count(string(after), "\nconst ")
	assert.Equal(t, beforeConsts+1, afterConsts)
}

func TestObjCHeader(t *testing.T) {
	hdr, err := ObjCHeader(icons)
	require.NoError(t, err)
	out := string(hdr)

	t.Run("declares NSString constants", func(t *testing.T) {
		assert.Contains(t, out, `static NSString * const ImageNameIconBell = @"icon_bell";`)
	})

	t.Run("internal bindings carry the swift_private attribute", func(t *testing.T) {
		assert.Contains(t, out, `static NSString * const imageNameIconDebug AC_SWIFT_PRIVATE = @"icon_debug";`)
	})

	t.Run("guards the visibility macro", func(t *testing.T) {
		assert.Contains(t, out, "#if __has_attribute(swift_private)")
		assert.True(t, strings.HasSuffix(out, "#undef AC_SWIFT_PRIVATE\n"))
	})

	t.Run("byte-identical across runs", func(t *testing.T) {
		again, err := ObjCHeader(icons)
		require.NoError(t, err)
		assert.Equal(t, hdr, again)
	})
}

func TestWriteFile(t *testing.T) {
	t.Run("creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gen", "assets.go")
		wrote, err := WriteFile(path, []byte("package assets\n"))
		require.NoError(t, err)
		assert.True(t, wrote)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "package assets\n", string(data))
	})

	t.Run("unchanged content is not rewritten", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "assets.go")
		_, err := WriteFile(path, []byte("package assets\n"))
		require.NoError(t, err)

		wrote, err := WriteFile(path, []byte("package assets\n"))
		require.NoError(t, err)
		assert.False(t, wrote)
	})

	t.Run("changed content is rewritten", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "assets.go")
		_, err := WriteFile(path, []byte("package assets\n"))
		require.NoError(t, err)

		wrote, err := WriteFile(path, []byte("package icons\n"))
		require.NoError(t, err)
		assert.True(t, wrote)
	})
}
