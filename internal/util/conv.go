package util

import (
	"encoding/json"
	"strconv"
)

// MustParseUint converts a route parameter to uint, returning 0 on failure.
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}

// MarshalJSONString serializes v into the string shape gorm json columns
// store.
func MarshalJSONString(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
