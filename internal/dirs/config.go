package dirs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"

	"github.com/calvinalkan/configdirs/pkg/nonempty"
)

// Where the directory list came from.
const (
	SourceDefault = "default"
	SourceGlobal  = "global"
	SourceProject = "project"
	SourceEnv     = "env"
	SourceFlag    = "flag"
)

// ConfigFileName is the default project config file name.
const ConfigFileName = ".cfgdirs.json"

// Config holds the resolved configuration.
type Config struct {
	// Dirs is the ordered directory list. Dirs.Head() is the cache directory.
	Dirs nonempty.Slice[string]

	// EffectiveCwd is the absolute working directory (from -C flag or os.Getwd).
	EffectiveCwd string

	// Sources tracks where values were loaded from (for diagnostics).
	Sources ConfigSources
}

// ConfigSources tracks which config files were loaded.
type ConfigSources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project config if loaded, empty otherwise
	Dirs    string // One of the Source* constants
}

// fileConfig is the on-disk shape of a config file. A missing or null
// config_dirs leaves the directories unset.
type fileConfig struct {
	ConfigDirs *nonempty.Slice[string] `json:"config_dirs"` //nolint:tagliatelle // snake_case for config file
}

// LoadConfigInput holds the inputs for LoadConfig.
type LoadConfigInput struct {
	WorkDirOverride string            // -C/--cwd flag value; if empty, os.Getwd() is used
	ConfigPath      string            // -c/--config flag value
	DirsOverride    string            // --dirs flag value, split like CONFIG_DIRS
	HasDirsOverride bool              // --dirs was given, even if empty
	Env             map[string]string // environment variables
}

// LoadConfig loads configuration with the following precedence (highest wins):
// 1. Default: CONFIG_DIRS read as "", giving one empty directory
// 2. Global user config (~/.config/cfgdirs/config.json or $XDG_CONFIG_HOME/cfgdirs/config.json)
// 3. Project config file at default location (.cfgdirs.json, if exists)
// 4. Explicit config file via ConfigPath (replaces 3)
// 5. CONFIG_DIRS, when present in Env
// 6. --dirs override.
func LoadConfig(input LoadConfigInput) (Config, error) {
	workDir := input.WorkDirOverride
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	if !filepath.IsAbs(workDir) {
		abs, err := filepath.Abs(workDir)
		if err != nil {
			return Config{}, fmt.Errorf("cannot resolve working directory: %w", err)
		}

		workDir = abs
	}

	defaults, err := FromEnv(nil)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Dirs:         defaults,
		EffectiveCwd: workDir,
		Sources:      ConfigSources{Dirs: SourceDefault},
	}

	globalCfg, globalPath, err := loadGlobalConfig(input.Env)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Global = globalPath
	cfg = mergeConfig(cfg, globalCfg, SourceGlobal)

	projectCfg, projectPath, err := loadProjectConfig(workDir, input.ConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Project = projectPath
	cfg = mergeConfig(cfg, projectCfg, SourceProject)

	if _, ok := input.Env[EnvVar]; ok {
		envDirs, err := FromEnv(input.Env)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvVar, err)
		}

		cfg.Dirs = envDirs
		cfg.Sources.Dirs = SourceEnv
	}

	if input.HasDirsOverride {
		flagDirs, err := nonempty.TryFrom(Split(input.DirsOverride))
		if err != nil {
			return Config{}, fmt.Errorf("--dirs: %w", err)
		}

		cfg.Dirs = flagDirs
		cfg.Sources.Dirs = SourceFlag
	}

	return cfg, nil
}

// EmptyEntries returns the indexes of directories that are the empty string.
func (c Config) EmptyEntries() []int {
	var idx []int

	for i, d := range c.Dirs.All() {
		if d == "" {
			idx = append(idx, i)
		}
	}

	return idx
}

// Abs resolves dir against EffectiveCwd. The empty string stays empty.
func (c Config) Abs(dir string) string {
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}

	return filepath.Join(c.EffectiveCwd, dir)
}

// getGlobalConfigPath returns the path to the global config file.
// Uses $XDG_CONFIG_HOME/cfgdirs/config.json if set, otherwise ~/.config/cfgdirs/config.json.
// Returns empty string if home directory cannot be determined.
func getGlobalConfigPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "cfgdirs", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "cfgdirs", "config.json")
	}

	return ""
}

// loadGlobalConfig loads the global user config file if it exists.
// Returns the config, the path if loaded, and any error.
func loadGlobalConfig(env map[string]string) (fileConfig, string, error) {
	globalCfgPath := getGlobalConfigPath(env)
	if globalCfgPath == "" {
		return fileConfig{}, "", nil
	}

	globalCfg, loaded, err := loadConfigFile(globalCfgPath, false)
	if err != nil {
		return fileConfig{}, "", err
	}

	if !loaded {
		return fileConfig{}, "", nil
	}

	return globalCfg, globalCfgPath, nil
}

// loadProjectConfig loads the project config file (.cfgdirs.json) or an explicit config file.
// Returns the config, the path if loaded, and any error.
func loadProjectConfig(workDir, configPath string) (fileConfig, string, error) {
	var cfgFile string

	var mustExist bool

	if configPath != "" {
		// Explicit config file - must exist
		cfgFile = configPath
		if !filepath.IsAbs(cfgFile) {
			cfgFile = filepath.Join(workDir, cfgFile)
		}

		mustExist = true

		_, statErr := os.Stat(cfgFile)
		if statErr != nil {
			return fileConfig{}, "", fmt.Errorf("%w: %s", ErrConfigFileNotFound, configPath)
		}
	} else {
		cfgFile = filepath.Join(workDir, ConfigFileName)
		mustExist = false
	}

	fileCfg, loaded, err := loadConfigFile(cfgFile, mustExist)
	if err != nil {
		return fileConfig{}, "", err
	}

	if !loaded {
		return fileConfig{}, "", nil
	}

	return fileCfg, cfgFile, nil
}

// loadConfigFile loads a config file. If mustExist is false, missing files return zero config.
// Returns the config, whether the file was loaded, and any error.
func loadConfigFile(path string, mustExist bool) (fileConfig, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return fileConfig{}, false, nil
		}

		if mustExist {
			return fileConfig{}, false, fmt.Errorf("%w: %s", ErrConfigFileRead, path)
		}

		return fileConfig{}, false, nil
	}

	cfg, parseErr := parseConfig(data)
	if parseErr != nil {
		return fileConfig{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, parseErr)
	}

	return cfg, true, nil
}

func parseConfig(data []byte) (fileConfig, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return fileConfig{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg fileConfig

	unmarshalErr := json.Unmarshal(standardized, &cfg)
	if unmarshalErr != nil {
		return fileConfig{}, fmt.Errorf("invalid JSON: %w", unmarshalErr)
	}

	return cfg, nil
}

func mergeConfig(base Config, overlay fileConfig, source string) Config {
	if overlay.ConfigDirs != nil {
		base.Dirs = *overlay.ConfigDirs
		base.Sources.Dirs = source
	}

	return base
}
