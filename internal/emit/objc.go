package emit

import (
	"bytes"
	"fmt"
	"text/template"

	"assetsym/internal/symbols"
)

// objcTemplate mirrors the header shape Xcode's asset compiler emits, so
// mixed Go/ObjC projects can share one symbol source. Bindings marked
// internal carry the swift_private attribute, which hides them from Swift
// bindings without affecting the constant's value.
var objcTemplate = template.Must(template.New("objc").Parse(`#import <Foundation/Foundation.h>

#if __has_attribute(swift_private)
#define AC_SWIFT_PRIVATE __attribute__((swift_private))
#else
#define AC_SWIFT_PRIVATE
#endif
{{range .Bindings}}
/// The {{printf "%q" .Key}} asset catalog image resource.
static NSString * const {{.Name}}{{if not .Exported}} AC_SWIFT_PRIVATE{{end}} = @{{printf "%q" .Key}};
{{end}}
#undef AC_SWIFT_PRIVATE
`))

// ObjCHeader renders the table as an Objective-C header of NSString
// constants.
func ObjCHeader(table *symbols.Table) ([]byte, error) {
	var buf bytes.Buffer
	err := objcTemplate.Execute(&buf, struct {
		Bindings []symbols.Binding
	}{Bindings: table.Bindings})
	if err != nil {
		return nil, fmt.Errorf("render objc header: %w", err)
	}
	return buf.Bytes(), nil
}
