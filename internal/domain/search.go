package domain

import "strings"

// ContainsFold reports whether substr is within s, ignoring case.
// An empty substr matches every string.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
