package hal

import "strings"

// Shared helpers used by GPIO code.

func parsePull(v any) Pull {
	switch s := strings.ToLower(asString(v)); s {
	case "up", "pullup":
		return PullUp
	case "down", "pulldown":
		return PullDown
	default:
		return PullNone
	}
}

func toPullString(p Pull) string {
	switch p {
	case PullUp:
		return "up"
	case PullDown:
		return "down"
	default:
		return "none"
	}
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// wantBool extracts a boolean from either a map payload (by key) or a scalar.
// Recognises true/false, 1/0, on/off, yes/no (case-insensitive).
func wantBool(src any, key string) bool {
	if m, ok := src.(map[string]any); ok {
		if v, ok := m[key]; ok {
			return wantBool(v, "")
		}
		return false
	}
	switch v := src.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case float64:
		return v != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "on", "yes":
			return true
		}
	}
	return false
}
