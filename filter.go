package prettylog

import "strings"

// moduleFilter holds the ordered module prefixes configured at
// initialization. It is immutable after construction and read by any
// goroutine without synchronization; an empty set matches every origin.
type moduleFilter struct {
	prefixes []string
}

func newModuleFilter(modules []string) *moduleFilter {
	prefixes := make([]string, 0, len(modules))
	for _, module := range modules {
		module = strings.TrimSpace(module)
		if module == "" {
			continue
		}
		prefixes = append(prefixes, module)
	}
	return &moduleFilter{prefixes: prefixes}
}

// enabled reports whether origin passes the filter: an exact entry, a
// descendant of an entry separated by "::", or any origin at all when the
// set is empty.
func (f *moduleFilter) enabled(origin string) bool {
	if len(f.prefixes) == 0 {
		return true
	}
	for _, prefix := range f.prefixes {
		if origin == prefix || strings.HasPrefix(origin, prefix+"::") {
			return true
		}
	}
	return false
}
