// Package config provides configuration management for contract-size.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the tool reads.
const EnvPrefix = "CONTRACT_SIZE"

// Config holds the application configuration.
type Config struct {
	// ArtifactsDir is the absolute path of the build artifacts root.
	ArtifactsDir string
	// CompileHint is the build command suggested when no artifacts exist.
	CompileHint string
	// StrictHex rejects bytecode that is not well-formed hex.
	StrictHex bool

	LogLevel  string
	LogFormat string
}

// LoadFromEnv loads configuration from CONTRACT_SIZE_* environment
// variables. A relative ArtifactsDir is resolved against the working
// directory.
func LoadFromEnv() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)

	v.SetDefault("artifacts_dir", filepath.Join("artifacts", "contracts"))
	v.SetDefault("compile_hint", "pnpm compile")
	v.SetDefault("strict_hex", "true")
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "text")

	v.AutomaticEnv()

	dir := v.GetString("artifacts_dir")
	if dir == "" {
		return nil, fmt.Errorf("%s_ARTIFACTS_DIR must not be empty", EnvPrefix)
	}
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		dir = filepath.Join(cwd, dir)
	}

	strict, err := strconv.ParseBool(v.GetString("strict_hex"))
	if err != nil {
		return nil, fmt.Errorf("invalid %s_STRICT_HEX value %q: %w", EnvPrefix, v.GetString("strict_hex"), err)
	}

	return &Config{
		ArtifactsDir: dir,
		CompileHint:  v.GetString("compile_hint"),
		StrictHex:    strict,
		LogLevel:     v.GetString("log_level"),
		LogFormat:    v.GetString("log_format"),
	}, nil
}
