package util

// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// BoolToString renders a boolean for key/value storage.
func BoolToString(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// StringToBool parses a value written by BoolToString. Unknown input
// yields fallback.
func StringToBool(s string, fallback bool) bool {
	switch s {
	case "1", "true":
		return true
	case "0", "false":
		return false
	}
	return fallback
}
