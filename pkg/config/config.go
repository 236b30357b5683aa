package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/config-vault/config"
	ConfigFileName    = "config-vault.yml"
)

// VaultConfig holds all vault configuration settings
type VaultConfig struct {
	// BindAddress is the address the HTTP server listens on
	BindAddress string `yaml:"bind_address" json:"bind_address"`

	// Port is the HTTP server port
	Port int `yaml:"port" json:"port"`

	// RSAKeySize is the modulus size in bits for issued key pairs
	RSAKeySize int `yaml:"rsa_key_size" json:"rsa_key_size"`

	// DefaultKeyTTLDays is the key lifetime applied when an issuance
	// request doesn't specify one
	DefaultKeyTTLDays int `yaml:"default_key_ttl_days" json:"default_key_ttl_days"`

	// APIListLimitMax is the maximum number of results for listing requests
	APIListLimitMax int `yaml:"api_list_limit_max" json:"api_list_limit_max"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *VaultConfig
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *VaultConfig {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Return defaults on error
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *VaultConfig {
	return &VaultConfig{
		BindAddress:       "0.0.0.0",
		Port:              8000,
		RSAKeySize:        2048,
		DefaultKeyTTLDays: 365,
		APIListLimitMax:   1000,
		sources:           make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*VaultConfig, error) {
	config := newDefault()

	// Initialize all sources as "default"
	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	// Determine config file path
	configPath := os.Getenv("CONFIG_VAULT_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	// Try to load from config file
	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig VaultConfig
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	// Override with environment variables
	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"bind_address", "port", "rsa_key_size",
		"default_key_ttl_days", "api_list_limit_max",
	}
}

func (c *VaultConfig) applyFileConfig(file *VaultConfig) {
	if file.BindAddress != "" {
		c.BindAddress = file.BindAddress
		c.sources["bind_address"] = "file"
	}
	if file.Port != 0 {
		c.Port = file.Port
		c.sources["port"] = "file"
	}
	if file.RSAKeySize != 0 {
		c.RSAKeySize = file.RSAKeySize
		c.sources["rsa_key_size"] = "file"
	}
	if file.DefaultKeyTTLDays != 0 {
		c.DefaultKeyTTLDays = file.DefaultKeyTTLDays
		c.sources["default_key_ttl_days"] = "file"
	}
	if file.APIListLimitMax != 0 {
		c.APIListLimitMax = file.APIListLimitMax
		c.sources["api_list_limit_max"] = "file"
	}
}

func (c *VaultConfig) applyEnvConfig() {
	if val := os.Getenv("CONFIG_VAULT_BIND_ADDRESS"); val != "" {
		c.BindAddress = val
		c.sources["bind_address"] = "environment"
	}
	if val := os.Getenv("CONFIG_VAULT_PORT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.Port = i
			c.sources["port"] = "environment"
		}
	}
	if val := os.Getenv("CONFIG_VAULT_RSA_KEY_SIZE"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.RSAKeySize = i
			c.sources["rsa_key_size"] = "environment"
		}
	}
	if val := os.Getenv("CONFIG_VAULT_DEFAULT_KEY_TTL_DAYS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.DefaultKeyTTLDays = i
			c.sources["default_key_ttl_days"] = "environment"
		}
	}
	if val := os.Getenv("CONFIG_VAULT_API_LIST_LIMIT_MAX"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.APIListLimitMax = i
			c.sources["api_list_limit_max"] = "environment"
		}
	}
}

// ConfigFilePath returns the path to the config file
func (c *VaultConfig) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *VaultConfig) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// Validate validates the configuration
func (c *VaultConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.RSAKeySize < 2048 {
		return fmt.Errorf("rsa_key_size must be at least 2048 bits, got %d", c.RSAKeySize)
	}
	if c.DefaultKeyTTLDays < 1 {
		return fmt.Errorf("default_key_ttl_days must be positive, got %d", c.DefaultKeyTTLDays)
	}
	if c.APIListLimitMax < 1 {
		return fmt.Errorf("api_list_limit_max must be positive, got %d", c.APIListLimitMax)
	}
	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *VaultConfig) Attributes() []Attribute {
	return []Attribute{
		{Name: "bind_address", Value: c.BindAddress, Source: c.Source("bind_address")},
		{Name: "port", Value: strconv.Itoa(c.Port), Source: c.Source("port")},
		{Name: "rsa_key_size", Value: strconv.Itoa(c.RSAKeySize), Source: c.Source("rsa_key_size")},
		{Name: "default_key_ttl_days", Value: strconv.Itoa(c.DefaultKeyTTLDays), Source: c.Source("default_key_ttl_days")},
		{Name: "api_list_limit_max", Value: strconv.Itoa(c.APIListLimitMax), Source: c.Source("api_list_limit_max")},
	}
}

// FormatText returns a text representation of the configuration
func (c *VaultConfig) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-30s %-20s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-30s %-20s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-30s %-20s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *VaultConfig) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
