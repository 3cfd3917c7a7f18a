package env

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Get reads an environment variable and parses it into the type of the
// default value. An unset variable yields the default without error.
func Get[T any](key string, defaultValue T) (T, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	var result any
	var err error

	switch any(defaultValue).(type) {
	case string:
		result = value
	case int:
		var parsed int64
		parsed, err = strconv.ParseInt(value, 10, 32)
		if err == nil {
			result = int(parsed)
		}
	case int64:
		result, err = strconv.ParseInt(value, 10, 64)
	case bool:
		result, err = strconv.ParseBool(value)
	case time.Duration:
		result, err = time.ParseDuration(value)
	default:
		return defaultValue, fmt.Errorf("unsupported type for environment variable %s", key)
	}

	if err != nil {
		return defaultValue, fmt.Errorf("failed to parse environment variable %s: %w", key, err)
	}

	return result.(T), nil
}

// MustGet is Get for configuration that has no sensible recovery path.
func MustGet[T any](key string, defaultValue T) T {
	value, err := Get(key, defaultValue)
	if err != nil {
		panic(fmt.Sprintf("failed to get environment variable %s: %v", key, err))
	}
	return value
}
