package models

import (
	"fmt"
	"strings"
)

// parseEnum upper-cases and trims s, then checks it against valid.
func parseEnum[T ~string](kind, s string, valid func(T) bool) (T, error) {
	v := T(strings.ToUpper(strings.TrimSpace(s)))
	if !valid(v) {
		return "", fmt.Errorf("invalid %s %q", kind, s)
	}
	return v, nil
}
