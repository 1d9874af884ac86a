// Package config provides project configuration management,
// including reading and writing the workbench configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"workbench.dev/workbench/internal/run"
)

// FileName is the configuration file kept at the project root.
const FileName = ".workbench.yaml"

// Defaults applied when the configuration file is absent or silent.
const (
	DefaultInterpreter   = "sh"
	DefaultElevatePolicy = "auto"
	DefaultPropsPath     = "build.properties"
)

// Config represents the project configuration
type Config struct {
	Interpreter *string `yaml:"interpreter,omitempty"`
	Elevate     *string `yaml:"elevate,omitempty"`
	PropsPath   *string `yaml:"propsPath,omitempty"`
}

// Load reads the project configuration. A missing file is not an error:
// it yields the zero config, whose getters fall back to defaults.
func Load(projectRoot string) (*Config, error) {
	configPath := filepath.Join(projectRoot, FileName)

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

func save(projectRoot string, config *Config) error {
	configYAML, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(filepath.Join(projectRoot, FileName), configYAML, 0600)
}

// GetInterpreter returns the configured interpreter binary, or the default
func GetInterpreter(projectRoot string) (string, error) {
	config, err := Load(projectRoot)
	if err != nil {
		return "", err
	}
	if config.Interpreter != nil && *config.Interpreter != "" {
		return *config.Interpreter, nil
	}
	return DefaultInterpreter, nil
}

// SetInterpreter updates the interpreter binary in the config
func SetInterpreter(projectRoot string, interpreter string) error {
	if interpreter == "" {
		return fmt.Errorf("interpreter must not be empty")
	}

	config, err := Load(projectRoot)
	if err != nil {
		return err
	}

	config.Interpreter = &interpreter
	return save(projectRoot, config)
}

// GetElevatePolicy returns the configured elevation policy, or the default
func GetElevatePolicy(projectRoot string) (run.ElevatePolicy, error) {
	config, err := Load(projectRoot)
	if err != nil {
		return "", err
	}
	if config.Elevate != nil && *config.Elevate != "" {
		policy, ok := run.ParseElevatePolicy(*config.Elevate)
		if !ok {
			return "", fmt.Errorf("invalid elevate policy %q in config", *config.Elevate)
		}
		return policy, nil
	}
	return run.ElevatePolicy(DefaultElevatePolicy), nil
}

// SetElevatePolicy updates the elevation policy in the config
func SetElevatePolicy(projectRoot string, policy string) error {
	if _, ok := run.ParseElevatePolicy(policy); !ok {
		return fmt.Errorf("invalid elevate policy %q (want never, auto, or always)", policy)
	}

	config, err := Load(projectRoot)
	if err != nil {
		return err
	}

	config.Elevate = &policy
	return save(projectRoot, config)
}

// GetPropsPath returns the default properties file path, or the default
func GetPropsPath(projectRoot string) (string, error) {
	config, err := Load(projectRoot)
	if err != nil {
		return "", err
	}
	if config.PropsPath != nil && *config.PropsPath != "" {
		return *config.PropsPath, nil
	}
	return DefaultPropsPath, nil
}

// SetPropsPath updates the default properties file path in the config
func SetPropsPath(projectRoot string, path string) error {
	if path == "" {
		return fmt.Errorf("propsPath must not be empty")
	}

	config, err := Load(projectRoot)
	if err != nil {
		return err
	}

	config.PropsPath = &path
	return save(projectRoot, config)
}

// IsInitialized checks if a workbench config file exists at the project root
func IsInitialized(projectRoot string) bool {
	_, err := os.Stat(filepath.Join(projectRoot, FileName))
	return err == nil
}
