// Copyright (c) 2026 GolpoHub. All rights reserved.

/*
Package convert provides fault-tolerant conversions for query and path values.

Malformed input collapses to a caller-chosen default instead of an error. Use
it only where "absent" and "garbage" lead to the same behaviour, such as an
optional page number or a confirmation flag.
*/
package convert

import (
	"strconv"
	"strings"
)

// ToIntD converts a string to an int, returning def if parsing fails or the string is empty.
func ToIntD(str string, def int) int {
	str = strings.TrimSpace(str)
	if str == "" {
		return def
	}

	if v, err := strconv.Atoi(str); err == nil {
		return v
	}

	return def
}

// ToBool parses a boolean string ("true", "1", "false", "0").
// It returns false on empty string or parse error.
func ToBool(s string) bool {
	v, _ := strconv.ParseBool(strings.TrimSpace(s))
	return v
}
