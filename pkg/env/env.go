package env

import (
	"os"
	"strings"
)

// Get reads an environment variable, falling back when unset or blank.
// Surrounding whitespace is stripped so a variable set to spaces behaves
// like an unset one.
func Get(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
