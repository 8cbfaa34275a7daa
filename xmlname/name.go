// Package xmlname holds the tag-name helpers shared by the encoder
// and decoder: Clark-notation rewriting and tag sanitization.
package xmlname

import "strings"

// IsClark reports whether name carries a Clark-notation qualifier,
// i.e. has the form "{uri}local".
func IsClark(name string) bool {
	return strings.HasPrefix(name, "{") && strings.Contains(name, "}")
}

// SplitClark splits "{uri}local" into its uri and local parts. The
// uri is empty when name is not in Clark notation.
func SplitClark(name string) (uri, local string) {
	if !IsClark(name) {
		return "", name
	}
	i := strings.Index(name, "}")
	return name[1:i], name[i+1:]
}

// Resolve rewrites a Clark-notation name to a prefixed name using the
// namespace table (URI -> prefix). An unmapped URI strips the
// qualifier, leaving the bare local name. Names without a qualifier
// pass through unchanged. The decode direction never calls this:
// serialized namespaces are a write-side convenience only.
func Resolve(name string, ns map[string]string) string {
	uri, local := SplitClark(name)
	if uri == "" {
		return local
	}
	prefix, ok := ns[uri]
	if !ok || prefix == "" {
		return local
	}
	return prefix + ":" + local
}

// Sanitize adjusts names that would not render as a valid tag: a
// leading digit gets a "_" prefix.
func Sanitize(name string) string {
	if name == "" {
		return name
	}
	if name[0] >= '0' && name[0] <= '9' {
		return "_" + name
	}
	return name
}
