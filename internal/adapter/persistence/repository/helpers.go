package repository

import "os"

// getenvDefault resolves a table name override from the environment,
// falling back to the compiled-in default.
func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
