package util

import "math"

// AnswerIndex coerces a decoded JSON value into an option index. Returns
// false for null, non-numeric, or fractional values; callers treat those
// as an unanswered (incorrect) question rather than an error.
func AnswerIndex(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}

// RoundPercent rounds a ratio to a whole percentage using round half to
// even, matching the scoring behavior the content was calibrated against.
func RoundPercent(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.RoundToEven(float64(correct) / float64(total) * 100))
}
