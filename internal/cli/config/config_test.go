package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfigFile writes a mazo.yaml with the given content into a temp
// directory and returns its path.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "mazo.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0600))
	return cfgPath
}

// TestConfig_Validate tests the Config.Validate method.
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantErr   bool
		errSubstr string
	}{
		{
			name:    "valid config",
			cfg:     Config{SectionsDir: "sections", Output: "english.json", Pattern: "sec_*.json"},
			wantErr: false,
		},
		{
			name:      "empty sections_dir",
			cfg:       Config{Output: "english.json", Pattern: "sec_*.json"},
			wantErr:   true,
			errSubstr: "sections_dir is required",
		},
		{
			name:      "empty output",
			cfg:       Config{SectionsDir: "sections", Pattern: "sec_*.json"},
			wantErr:   true,
			errSubstr: "output is required",
		},
		{
			name:      "empty pattern",
			cfg:       Config{SectionsDir: "sections", Output: "english.json"},
			wantErr:   true,
			errSubstr: "pattern is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err, "expected error but got nil")
				assert.Contains(t, err.Error(), tt.errSubstr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestValidateDirectories verifies the sections directory existence check.
func TestValidateDirectories(t *testing.T) {
	t.Run("existing directory", func(t *testing.T) {
		cfg := &Config{SectionsDir: t.TempDir()}
		assert.NoError(t, cfg.ValidateDirectories())
	})

	t.Run("missing directory", func(t *testing.T) {
		cfg := &Config{SectionsDir: filepath.Join(t.TempDir(), "absent")}
		err := cfg.ValidateDirectories()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sections directory does not exist")
		assert.Contains(t, err.Error(), "Hint:")
	})
}

// TestLoadConfig_Defaults verifies defaults when the config file sets nothing.
func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfigFile(t, "# empty project config\n")
	projectRoot := filepath.Dir(cfgPath)

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(projectRoot, DefaultSectionsDir), cfg.SectionsDir)
	assert.Equal(t, filepath.Join(projectRoot, DefaultOutput), cfg.Output)
	assert.Equal(t, filepath.Join(projectRoot, DefaultStateFile), cfg.StatePath)
	assert.Equal(t, DefaultPattern, cfg.Pattern)
	assert.True(t, cfg.AllowEmpty)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, projectRoot, cfg.ProjectRoot)
	assert.Equal(t, cfgPath, GetConfigFileUsed())
	assert.Equal(t, cfg, GetCurrentConfig())
}

// TestLoadConfig_FileValues verifies values from the config file are picked
// up and resolved against the project root.
func TestLoadConfig_FileValues(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfigFile(t, `sections_dir: cards
output: dist/deck.json
pattern: "part_*.json"
allow_empty: false
`)
	projectRoot := filepath.Dir(cfgPath)

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(projectRoot, "cards"), cfg.SectionsDir)
	assert.Equal(t, filepath.Join(projectRoot, "dist", "deck.json"), cfg.Output)
	assert.Equal(t, "part_*.json", cfg.Pattern)
	assert.False(t, cfg.AllowEmpty)
}

// TestLoadConfig_EnvPrecedenceOverFile tests that env vars override the
// config file.
func TestLoadConfig_EnvPrecedenceOverFile(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfigFile(t, "sections_dir: from_file\n")
	projectRoot := filepath.Dir(cfgPath)

	require.NoError(t, os.Setenv("MAZO_SECTIONS_DIR", "from_env"))
	defer func() { _ = os.Unsetenv("MAZO_SECTIONS_DIR") }()

	cfg, err := LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(projectRoot, "from_env"), cfg.SectionsDir,
		"env var should override config file")
}

// TestLoadConfig_FlagPrecedence tests that flags override env vars and the
// config file.
func TestLoadConfig_FlagPrecedence(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfigFile(t, "sections_dir: from_file\n")

	require.NoError(t, os.Setenv("MAZO_SECTIONS_DIR", "from_env"))
	defer func() { _ = os.Unsetenv("MAZO_SECTIONS_DIR") }()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("sections-dir", "", "sections directory")
	require.NoError(t, flags.Set("sections-dir", "from_flag"))

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)

	// Flag paths are anchored at the invocation directory, not the
	// project root.
	wantDir, err := filepath.Abs("from_flag")
	require.NoError(t, err)
	assert.Equal(t, wantDir, cfg.SectionsDir, "flag value should override config file and env var")
}

// TestLoadConfig_FlagNotSetUsesEnv tests that unset flags fall back to env
// vars.
func TestLoadConfig_FlagNotSetUsesEnv(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfigFile(t, "sections_dir: from_file\n")
	projectRoot := filepath.Dir(cfgPath)

	require.NoError(t, os.Setenv("MAZO_SECTIONS_DIR", "from_env"))
	defer func() { _ = os.Unsetenv("MAZO_SECTIONS_DIR") }()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("sections-dir", "", "sections directory")
	// Note: not calling flags.Set(), so Changed is false

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(projectRoot, "from_env"), cfg.SectionsDir,
		"env var should be used when flag is not set")
}

// TestLoadConfig_OutAndStateFlags verifies the explicit flag-to-key
// mappings for --out and --state.
func TestLoadConfig_OutAndStateFlags(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfigFile(t, "output: from_file.json\n")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("out", "", "output artifact")
	flags.String("state", "", "state database")
	require.NoError(t, flags.Set("out", "deck.json"))
	require.NoError(t, flags.Set("state", ":memory:"))

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)

	wantOut, err := filepath.Abs("deck.json")
	require.NoError(t, err)
	assert.Equal(t, wantOut, cfg.Output)
	assert.Equal(t, ":memory:", cfg.StatePath, ":memory: must not be resolved to a path")
}

// TestLoadConfig_StrictFlag verifies that --strict flips allow_empty off.
func TestLoadConfig_StrictFlag(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfigFile(t, "allow_empty: true\n")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bool("strict", false, "fail when no partitions match")
	require.NoError(t, flags.Set("strict", "true"))

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)

	assert.False(t, cfg.AllowEmpty, "--strict should disable allow_empty")
}

// TestLoadConfig_MissingExplicitFile verifies that a bad --config path is
// reported.
func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	ResetConfig()
	cfgPath := filepath.Join(t.TempDir(), "nope.yaml")

	_, err := LoadConfig(cfgPath, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

// TestLoadConfig_RejectsEmptiedKeys verifies that a config file blanking a
// required key is rejected.
func TestLoadConfig_RejectsEmptiedKeys(t *testing.T) {
	ResetConfig()
	cfgPath := writeConfigFile(t, `pattern: ""
`)

	_, err := LoadConfig(cfgPath, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), "pattern is required")
}
