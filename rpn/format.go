package rpn

import "strconv"

// Format renders v with precision digits after the point.
// A negative precision yields the shortest representation that parses back to v.
func Format(v float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}
