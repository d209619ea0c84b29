package utils

import (
	"net/url"
	"strconv"
)

// QueryInt reads a positive integer query parameter. Missing, malformed and
// non-positive values all yield fallback.
func QueryInt(query url.Values, key string, fallback int) int {
	n, err := strconv.Atoi(query.Get(key))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
