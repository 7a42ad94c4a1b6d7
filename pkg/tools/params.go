package tools

import (
	"fmt"
	"strconv"
	"strings"
)

// ReadText reads a string parameter without altering it. Analysis input
// must keep its surrounding whitespace, so this never trims.
func ReadText(params map[string]any, key string, required bool) (string, error) {
	v, ok := params[key]
	if !ok || v == nil {
		if required {
			return "", fmt.Errorf("parameter %q is required", key)
		}
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		if required {
			return "", fmt.Errorf("parameter %q must be a string", key)
		}
		return "", nil
	}
	return s, nil
}

// ReadString reads a string parameter, trimmed of surrounding whitespace.
func ReadString(params map[string]any, key string, required bool) (string, error) {
	s, err := ReadText(params, key, required)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

// ReadStringDefault reads a string parameter with a default value.
func ReadStringDefault(params map[string]any, key, defaultVal string) string {
	s, err := ReadString(params, key, false)
	if err != nil || s == "" {
		return defaultVal
	}
	return s
}

// ReadNumber reads a numeric parameter from input.
func ReadNumber(params map[string]any, key string, required bool) (float64, error) {
	v, ok := params[key]
	if !ok || v == nil {
		if required {
			return 0, fmt.Errorf("parameter %q is required", key)
		}
		return 0, nil
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			if required {
				return 0, fmt.Errorf("parameter %q must be a number", key)
			}
			return 0, nil
		}
		return f, nil
	}
	if required {
		return 0, fmt.Errorf("parameter %q must be a number", key)
	}
	return 0, nil
}

// ReadInt reads an integer parameter from input.
func ReadInt(params map[string]any, key string, required bool) (int, error) {
	n, err := ReadNumber(params, key, required)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// Has reports whether a parameter is present, so callers can tell an
// explicit zero from an absent value.
func Has(params map[string]any, key string) bool {
	v, ok := params[key]
	return ok && v != nil
}
