package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// AppConfig represents the YAML configuration structure
type AppConfig struct {
	Version string        `yaml:"version"`
	General GeneralConfig `yaml:"general"`
	Output  OutputConfig  `yaml:"output"`
	Limits  LimitsConfig  `yaml:"limits"`
	CLI     CLIConfig     `yaml:"cli"`
	Filters FilterConfig  `yaml:"filters"`
}

// GeneralConfig holds general execution settings
type GeneralConfig struct {
	Timeout  int    `yaml:"timeout"`   // Whole-run timeout in seconds
	LogLevel string `yaml:"log_level"` // Log level: silent, normal, verbose, debug
	Progress bool   `yaml:"progress"`  // Progress bar display
}

// OutputConfig holds report output settings
type OutputConfig struct {
	File   string `yaml:"file"`   // Output file path ("-" = stdout)
	Format string `yaml:"format"` // Output format: csv, tsv, json
}

// LimitsConfig holds the page-size caps passed to the external client's
// list operations. The run never paginates past these.
type LimitsConfig struct {
	PluggableDatabases int `yaml:"pluggable_databases"`
	Databases          int `yaml:"databases"`
	DBHomes            int `yaml:"db_homes"`
}

// CLIConfig holds settings for the external control-plane client
type CLIConfig struct {
	Binary string `yaml:"binary"` // Executable name or path of the OCI CLI
}

// defaultOutputFile is the report filename when none is configured.
const defaultOutputFile = "pdb_cdb_mapping.csv"

// getDefaultConfig returns the built-in configuration values
func getDefaultConfig() *AppConfig {
	return &AppConfig{
		Version: "1.0",
		General: GeneralConfig{
			Timeout:  300, // 5 minutes default
			LogLevel: "normal",
			Progress: true,
		},
		Output: OutputConfig{
			File:   defaultOutputFile,
			Format: "csv",
		},
		Limits: LimitsConfig{
			PluggableDatabases: 1000,
			Databases:          2000,
			DBHomes:            1000,
		},
		CLI: CLIConfig{
			Binary: "oci",
		},
		Filters: FilterConfig{
			NamePattern:        "",
			ExcludeNamePattern: "",
		},
	}
}

// getConfigPaths returns the configuration file search paths in priority order
func getConfigPaths() []string {
	paths := []string{}

	// 1. Environment variable
	if configFile := os.Getenv("OCI_PDB_MAPPING_CONFIG_FILE"); configFile != "" {
		paths = append(paths, configFile)
	}

	// 2. Current directory
	paths = append(paths, "./oci-pdb-mapping.yaml")

	// 3. Home directory
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".oci-pdb-mapping.yaml"))
	}

	// 4. System directory
	paths = append(paths, "/etc/oci-pdb-mapping.yaml")

	return paths
}

// LoadConfig loads configuration from a YAML file with fallback to defaults.
// The first file found on the search path wins.
func LoadConfig() (*AppConfig, error) {
	config := getDefaultConfig()

	for _, path := range getConfigPaths() {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse configuration file %s: %w", path, err)
			}
			break
		}
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// validateConfig validates the loaded configuration
func validateConfig(config *AppConfig) error {
	validLogLevels := []string{"silent", "normal", "verbose", "debug"}
	if !contains(validLogLevels, config.General.LogLevel) {
		return fmt.Errorf("invalid log_level '%s', must be one of: %v", config.General.LogLevel, validLogLevels)
	}

	validFormats := []string{"csv", "tsv", "json"}
	if !contains(validFormats, config.Output.Format) {
		return fmt.Errorf("invalid output format '%s', must be one of: %v", config.Output.Format, validFormats)
	}

	if config.General.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got: %d", config.General.Timeout)
	}

	if config.Output.File == "" {
		return fmt.Errorf("output file must not be empty (use \"-\" for stdout)")
	}

	if config.CLI.Binary == "" {
		return fmt.Errorf("cli binary must not be empty")
	}

	if config.Limits.PluggableDatabases <= 0 || config.Limits.Databases <= 0 || config.Limits.DBHomes <= 0 {
		return fmt.Errorf("list limits must be positive, got: %+v", config.Limits)
	}

	if config.Filters.NamePattern != "" {
		if _, err := regexp.Compile(config.Filters.NamePattern); err != nil {
			return fmt.Errorf("invalid name_pattern '%s': %v", config.Filters.NamePattern, err)
		}
	}
	if config.Filters.ExcludeNamePattern != "" {
		if _, err := regexp.Compile(config.Filters.ExcludeNamePattern); err != nil {
			return fmt.Errorf("invalid exclude_name_pattern '%s': %v", config.Filters.ExcludeNamePattern, err)
		}
	}

	return nil
}

// contains checks if a string slice contains a specific string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// SaveConfig saves the current configuration to a YAML file
func SaveConfig(config *AppConfig, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

// GenerateDefaultConfigFile creates a default configuration file
func GenerateDefaultConfigFile(filename string) error {
	return SaveConfig(getDefaultConfig(), filename)
}

// MergeWithCLIArgs merges configuration file settings with CLI arguments.
// CLI arguments have higher priority than the configuration file.
func MergeWithCLIArgs(config *AppConfig, cliTimeout *int, cliLogLevel, cliFormat, cliOutputFile *string, cliProgress *bool) {
	if cliTimeout != nil && *cliTimeout > 0 {
		config.General.Timeout = *cliTimeout
	}

	if cliLogLevel != nil && *cliLogLevel != "" {
		config.General.LogLevel = *cliLogLevel
	}

	if cliFormat != nil && *cliFormat != "" {
		config.Output.Format = *cliFormat
	}

	if cliOutputFile != nil && *cliOutputFile != "" {
		config.Output.File = *cliOutputFile
	}

	if cliProgress != nil {
		config.General.Progress = *cliProgress
	}
}
