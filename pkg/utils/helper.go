package utils

import (
	"strconv"
)

// ParseID converts a path parameter into a positive primary key.
func ParseID(value string) (uint, bool) {
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
