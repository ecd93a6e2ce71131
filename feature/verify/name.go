package verify

import "strings"

// NameOf derives the canonical name that joins a local file to its remote
// source: the substring after the last '/' (the whole string if there is
// none), truncated at the first '?' to drop any query string.
func NameOf(s string) string {
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		s = s[i+1:]
	}
	if i := strings.IndexByte(s, '?'); i >= 0 {
		s = s[:i]
	}
	return s
}
