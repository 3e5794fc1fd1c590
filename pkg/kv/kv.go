// Package kv parses "key=value" strings.
package kv

import "strings"

// ParseLine splits line at its only '='. ok is false when line contains no
// '=' or more than one.
func ParseLine(line string) (key, value string, ok bool) {
	if strings.Count(line, "=") != 1 {
		return "", "", false
	}
	key, value, _ = strings.Cut(line, "=")
	return key, value, true
}

// ParseAll parses every line, returning the pairs in order and the lines
// that could not be parsed.
func ParseAll(lines []string) (pairs [][2]string, invalid []string) {
	for _, l := range lines {
		k, v, ok := ParseLine(l)
		if !ok {
			invalid = append(invalid, l)
			continue
		}
		pairs = append(pairs, [2]string{k, v})
	}
	return pairs, invalid
}
