package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/hhcfg/internal/domain/config"
)

// projectMarkers identify a contracts project root.
var projectMarkers = []string{
	"hardhat.config.ts",
	"hardhat.config.js",
	"foundry.toml",
	"package.json",
	".env",
}

// Provider creates RuntimeConfig for Wire dependency injection.
// It fails when RPC_URL is unset so nothing downstream sees a partial record.
func Provider(v *viper.Viper, lookup LookupFunc, log *slog.Logger) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		projectRoot = FindProjectRoot()
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Strict:         v.GetBool("strict"),
		Timeout:        v.GetDuration("timeout"),
	}

	envFiles := DefaultEnvFiles
	if extra := v.GetStringSlice("env_file"); len(extra) > 0 {
		// Explicit files take precedence over the defaults
		envFiles = append(append([]string{}, extra...), DefaultEnvFiles...)
	}
	fileValues, loaded := LoadEnvFiles(projectRoot, envFiles, log)
	cfg.EnvFiles = loaded
	log.Debug("loaded env files", "files", loaded)

	record, err := NewAssembler(LayeredLookup(lookup, fileValues), log).Assemble()
	if err != nil {
		return nil, err
	}
	if err := Validate(record); err != nil {
		return nil, err
	}
	if cfg.Strict {
		if err := RequireFundedSafeAll(record); err != nil {
			return nil, err
		}
	}
	cfg.Record = record

	return cfg, nil
}

// FindProjectRoot walks up from the current directory to the first directory holding a
// project marker. It falls back to the current directory.
func FindProjectRoot() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}

	dir := cwd
	for {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()

	// Set up config file
	v.SetConfigName(".hhcfg")
	v.SetConfigType("yaml")
	if projectRoot != "" {
		v.AddConfigPath(projectRoot)
	}

	// Set up environment variables
	v.SetEnvPrefix("HHCFG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("timeout", "30s")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("strict", false)
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			if bindErr != nil {
				return
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil {
				bindErr = fmt.Errorf("failed to bind flag %s: %w", f.Name, err)
			}
		})
		if bindErr != nil {
			return nil, bindErr
		}
	}

	return v, nil
}
