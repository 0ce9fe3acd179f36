package catalog

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// admit applies the include/exclude patterns to a resource name.
// Exclusion takes precedence over inclusion.
func (s *Scanner) admit(name string) (bool, error) {
	for _, pattern := range s.Exclude {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			return false, fmt.Errorf("exclude pattern %q: %w", pattern, err)
		}
		if ok {
			return false, nil
		}
	}
	if len(s.Include) == 0 {
		return true, nil
	}
	for _, pattern := range s.Include {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			return false, fmt.Errorf("include pattern %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
