package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	intconfig "github.com/mazo-labs/mazo/internal/config"
)

// loggerKey is used to store logger in context.
// This key is shared with root.go via both using the same type.
type loggerKey struct{}

// maxUpwardSearchLevels limits how far up the directory tree to search for config files.
const maxUpwardSearchLevels = 10

// Package-level koanf instance and config file tracking
var (
	k              = koanf.New(".")
	configFileUsed string
	currentConfig  *Config // Stores the loaded config for access by commands
)

// configExistsIn checks if a mazo config file exists in the directory.
func configExistsIn(dir string) bool {
	for _, name := range []string{"mazo.yaml", "mazo.yml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// findProjectRootUpward searches upward from startDir for a mazo config file.
// Returns empty string if not found within maxUpwardSearchLevels.
func findProjectRootUpward(startDir string) string {
	dir := startDir
	for i := 0; i < maxUpwardSearchLevels; i++ {
		if configExistsIn(dir) {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}
	return ""
}

// inferProjectRoot determines the project root from CLI flags and filesystem.
// Priority:
//  1. Infer from --sections-dir (parent if it contains a config file)
//  2. Search upward from CWD for mazo.yaml
//  3. Current working directory
func inferProjectRoot(flags *pflag.FlagSet) string {
	if flags != nil {
		if sectionsDir, _ := flags.GetString("sections-dir"); sectionsDir != "" && flags.Changed("sections-dir") {
			if abs, err := filepath.Abs(sectionsDir); err == nil {
				if parent := filepath.Dir(abs); configExistsIn(parent) {
					return parent
				}
			}
		}
	}

	if cwd, err := os.Getwd(); err == nil {
		if root := findProjectRootUpward(cwd); root != "" {
			return root
		}
	}

	cwd, _ := os.Getwd()
	if cwd == "" {
		cwd = "."
	}
	return cwd
}

// resolvePathRelativeTo resolves a path relative to baseDir if it's not absolute.
// Returns the path unchanged if it's empty or already absolute.
func resolvePathRelativeTo(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// ResetConfig resets the koanf instance. Used for testing.
func ResetConfig() {
	k = koanf.New(".")
	configFileUsed = ""
	currentConfig = nil
}

// LoadConfig loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	// Reset koanf for fresh load
	k = koanf.New(".")

	projectRoot := inferProjectRoot(flags)

	// Track paths that were explicitly provided as flags (already relative
	// to CWD). These are converted to absolute paths up front so the
	// project-root resolution below cannot re-anchor them.
	var flagSectionsDir, flagOutput, flagStatePath string
	if flags != nil {
		if flags.Changed("sections-dir") {
			if v, _ := flags.GetString("sections-dir"); v != "" {
				flagSectionsDir, _ = filepath.Abs(v)
			}
		}
		if flags.Changed("out") {
			if v, _ := flags.GetString("out"); v != "" {
				flagOutput, _ = filepath.Abs(v)
			}
		}
		if flags.Changed("state") {
			if v, _ := flags.GetString("state"); v != "" {
				// State can be :memory: or a file path
				if v != ":memory:" {
					flagStatePath, _ = filepath.Abs(v)
				} else {
					flagStatePath = v
				}
			}
		}
	}

	// If an explicit config file is provided, use its directory as project root
	if cfgFile != "" {
		if absPath, err := filepath.Abs(cfgFile); err == nil {
			projectRoot = filepath.Dir(absPath)
		}
	}

	// 1. Load defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"sections_dir": intconfig.DefaultSectionsDir,
		"output":       intconfig.DefaultOutput,
		"pattern":      intconfig.DefaultPattern,
		"state_path":   intconfig.DefaultStatePath,
		"allow_empty":  intconfig.DefaultAllowEmpty,
		"verbose":      false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Find and load config file
	if cfgFile == "" {
		for _, name := range []string{"mazo.yaml", "mazo.yml"} {
			candidate := filepath.Join(projectRoot, name)
			if _, err := os.Stat(candidate); err == nil {
				cfgFile = candidate
				break
			}
		}
	}
	configFileUsed = cfgFile
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Load environment variables (MAZO_ prefix)
	// Transform: MAZO_SECTIONS_DIR -> sections_dir
	if err := k.Load(env.Provider("MAZO_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "MAZO_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Load flags (highest priority - overrides env vars and config file)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only load flags that were explicitly set
			if !f.Changed {
				return "", nil
			}
			// Transform kebab-case to snake_case for config keys
			key := strings.ReplaceAll(f.Name, "-", "_")

			// EXPLICIT MAPPING: the CLI flag names differ from the
			// config keys for brevity (--out, --state) and polarity
			// (--strict means allow_empty=false).
			switch key {
			case "out":
				return "output", posflag.FlagVal(flags, f)
			case "state":
				return "state_path", posflag.FlagVal(flags, f)
			case "strict":
				if strict, ok := posflag.FlagVal(flags, f).(bool); ok {
					return "allow_empty", !strict
				}
				return "allow_empty", false
			}

			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// 6. Set project root and resolve relative paths
	cfg.ProjectRoot = projectRoot

	// For paths explicitly provided via flags, use the pre-computed absolute
	// paths. For paths from config file or defaults, resolve relative to
	// project root.
	if flagSectionsDir != "" {
		cfg.SectionsDir = flagSectionsDir
	} else {
		cfg.SectionsDir = resolvePathRelativeTo(cfg.SectionsDir, projectRoot)
	}
	if flagOutput != "" {
		cfg.Output = flagOutput
	} else {
		cfg.Output = resolvePathRelativeTo(cfg.Output, projectRoot)
	}
	if flagStatePath != "" {
		cfg.StatePath = flagStatePath
	} else if cfg.StatePath != ":memory:" {
		cfg.StatePath = resolvePathRelativeTo(cfg.StatePath, projectRoot)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Store config for access by commands
	currentConfig = &cfg

	return &cfg, nil
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}

// GetCurrentConfig returns the currently loaded configuration.
// This is available after LoadConfig is called.
func GetCurrentConfig() *Config {
	return currentConfig
}

// LoggerKey returns the context key used for storing the logger.
// This allows the commands package to retrieve the logger from context
// without creating an import cycle with the cli package.
func LoggerKey() interface{} {
	return loggerKey{}
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}
