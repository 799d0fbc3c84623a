package client

import "strings"

// Status narrows a list by the isActive flag.
type Status int

const (
	StatusAll Status = iota
	StatusActive
	StatusInactive
)

// ParseStatus maps the --status flag values onto a Status.
func ParseStatus(s string) Status {
	switch strings.ToLower(s) {
	case "active":
		return StatusActive
	case "inactive":
		return StatusInactive
	default:
		return StatusAll
	}
}

// Filter narrows items by a case-insensitive substring match over the
// searchable text and by active status.
func Filter[T any](items []T, search string, status Status, text func(T) string, active func(T) bool) []T {
	search = strings.ToLower(strings.TrimSpace(search))

	out := make([]T, 0, len(items))
	for _, item := range items {
		if search != "" && !strings.Contains(strings.ToLower(text(item)), search) {
			continue
		}
		switch status {
		case StatusActive:
			if !active(item) {
				continue
			}
		case StatusInactive:
			if active(item) {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}
