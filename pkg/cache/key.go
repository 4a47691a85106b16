package cache

import (
	"sort"
	"strings"
)

// Key builds a deterministic cache key from a resource prefix and an
// unordered parameter map.
//
// With no parameters the prefix is returned unchanged. Otherwise entries are
// sorted bytewise by parameter name, rendered as "name=value", joined with
// "&" and appended to the prefix after a ":" separator:
//
//	Key("cards", map[string]string{"pageSize": "10", "orderBy": "-releaseDate"})
//	// => "cards:orderBy=-releaseDate&pageSize=10"
//
// Two maps holding the same entries always produce the same key, regardless
// of insertion order.
//
// Values are not URL-encoded. Callers must not put "&", "=" or ":" into
// parameter names or values; the resulting key would be ambiguous.
func Key(prefix string, params map[string]string) string {
	if len(params) == 0 {
		return prefix
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteByte(':')
	for i, name := range names {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(params[name])
	}
	return b.String()
}
