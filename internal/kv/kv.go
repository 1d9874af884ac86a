// Package kv provides small conveniences over string-to-string maps:
// key filtering, merging, and conversion to and from "KEY=value" slices.
package kv

import "sort"

// Pick returns a new map holding only the entries of m whose keys are listed.
// Keys absent from m are ignored.
func Pick(m map[string]string, keys ...string) map[string]string {
	result := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			result[k] = v
		}
	}
	return result
}

// Omit returns a new map holding the entries of m except the listed keys.
func Omit(m map[string]string, keys ...string) map[string]string {
	drop := make(map[string]bool, len(keys))
	for _, k := range keys {
		drop[k] = true
	}
	result := make(map[string]string, len(m))
	for k, v := range m {
		if !drop[k] {
			result[k] = v
		}
	}
	return result
}

// Filter returns a new map holding the entries of m for which keep returns true.
func Filter(m map[string]string, keep func(key, value string) bool) map[string]string {
	result := make(map[string]string, len(m))
	for k, v := range m {
		if keep(k, v) {
			result[k] = v
		}
	}
	return result
}

// Merge combines maps left to right into a new map; later maps win on
// conflicting keys. Nil maps are skipped.
func Merge(maps ...map[string]string) map[string]string {
	result := map[string]string{}
	for _, m := range maps {
		for k, v := range m {
			result[k] = v
		}
	}
	return result
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
