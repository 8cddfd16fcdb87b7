package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// FileName is the configuration file name searched for by the resolver.
const FileName = "crous.yml"

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	UserHomeDir() (string, error)
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// Resolver handles finding the config file.
type Resolver struct {
	FileSystem FileSystem
}

// ResolveFile returns explicit if set, otherwise the first existing file in
// the search path, or "" when none exists.
func (cr *Resolver) ResolveFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, path := range cr.searchPaths() {
		if cr.FileSystem.Exists(path) {
			return path
		}
	}
	return ""
}

func (cr *Resolver) searchPaths() []string {
	paths := []string{
		"./" + FileName,
		"./config/" + FileName,
	}
	if home, err := cr.FileSystem.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "crous", FileName))
	}
	return paths
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// Load reads the configuration file, applies defaults and validates the
// result. A searched-for file that does not exist yields the defaults; an
// explicit path that does not exist is an error.
func Load(opts ...LoaderOption) (*Config, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	resolver := &Resolver{FileSystem: lc.FileSystem}
	file := resolver.ResolveFile(lc.ConfigFile)

	if lc.ConfigFile != "" && !lc.FileSystem.Exists(lc.ConfigFile) {
		return nil, fmt.Errorf("config file %s not found", lc.ConfigFile)
	}

	cfg, err := loadFromFile(file)
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFromFile unmarshals file into a Config. An empty path yields a zero Config.
func loadFromFile(file string) (*Config, error) {
	v := viper.New()
	cfg := &Config{}

	if file == "" {
		return cfg, nil
	}

	v.SetConfigFile(file)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file %s: %w", file, err)
	}

	return cfg, nil
}
