package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DefaultEnvFiles are read from the project root when present.
var DefaultEnvFiles = []string{".env", ".env.local"}

// LoadEnvFiles reads dotenv files without touching the process environment.
// Earlier files win on duplicate keys. Missing files are skipped and malformed
// files are logged and skipped. It returns the merged values and the files read.
func LoadEnvFiles(projectRoot string, files []string, log *slog.Logger) (map[string]string, []string) {
	values := make(map[string]string)
	var loaded []string

	for _, name := range files {
		path := name
		if !filepath.IsAbs(path) {
			path = filepath.Join(projectRoot, name)
		}

		if _, err := os.Stat(path); err != nil {
			continue
		}

		fileValues, err := godotenv.Read(path)
		if err != nil {
			// Log warning but don't fail
			log.Warn("failed to load env file", "path", path, "error", err)
			continue
		}

		for k, v := range fileValues {
			if _, exists := values[k]; !exists {
				values[k] = v
			}
		}
		loaded = append(loaded, path)
	}

	return values, loaded
}

// LayeredLookup reads from primary first and falls back to the dotenv values.
// An empty primary value does not shadow a file value.
func LayeredLookup(primary LookupFunc, fileValues map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		if v, ok := lookupNonEmpty(primary, name); ok {
			return v, true
		}
		v, ok := fileValues[name]
		return v, ok
	}
}
