package kv

import "strings"

// ToMap converts a slice of "KEY=value" strings, as produced by os.Environ,
// into a map. Entries without an "=" are ignored. Entries are processed in
// order, so the last occurrence of a key wins.
func ToMap(environment []string) map[string]string {
	result := make(map[string]string, len(environment))
	for _, entry := range environment {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		result[key] = value
	}
	return result
}

// FromMap converts a map into a slice of "KEY=value" strings in sorted key
// order. A nil map yields a nil slice and an empty map an empty one, which
// is the distinction os/exec cares about.
func FromMap(environment map[string]string) []string {
	if environment == nil {
		return nil
	}
	result := make([]string, 0, len(environment))
	for _, key := range SortedKeys(environment) {
		result = append(result, key+"="+environment[key])
	}
	return result
}
