package utils

import "strings"

// SplitList flattens form values that may hold comma separated entries,
// trimming each entry and dropping empty ones.
func SplitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}
