package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/dyluth/belay/pkg/discipline"
	"github.com/dyluth/belay/pkg/grade"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when --config is not given
const DefaultPath = "belay.yml"

// DefaultContext is applied when default_context is omitted
const DefaultContext = grade.ContextUS

// BelayConfig represents the top-level belay.yml configuration
type BelayConfig struct {
	Version        string                       `yaml:"version"`
	DefaultContext string                       `yaml:"default_context,omitempty"` // Grade context used when --context is omitted
	Scales         map[string]string            `yaml:"scales,omitempty"`          // Alias → canonical scale name
	Contexts       map[string]map[string]string `yaml:"contexts,omitempty"`        // Context → discipline → scale name, overlaid on the built-ins
}

// Default returns the configuration used when no belay.yml exists
func Default() *BelayConfig {
	return &BelayConfig{
		Version:        "1.0",
		DefaultContext: string(DefaultContext),
	}
}

// Validate performs strict validation on the configuration
func (c *BelayConfig) Validate() error {
	// Required: version
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	registry, err := c.buildRegistry()
	if err != nil {
		return err
	}

	// Validate each context in a stable order so errors are reproducible
	seen := make(map[grade.Context]string, len(c.Contexts))
	for _, name := range sortedKeys(c.Contexts) {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("context name cannot be empty")
		}

		// Context names are case-insensitive
		ctx := contextName(name)
		if previous, exists := seen[ctx]; exists {
			return fmt.Errorf("context '%s' duplicates '%s'", name, previous)
		}
		seen[ctx] = name

		scales := c.Contexts[name]
		for _, key := range sortedKeys(scales) {
			if err := discipline.Key(key).Validate(); err != nil {
				return fmt.Errorf("context '%s': %w", name, err)
			}
			if _, ok := registry.Resolve(scales[key]); !ok {
				return fmt.Errorf("context '%s': discipline '%s' uses unknown scale '%s'", name, key, scales[key])
			}
		}
	}

	// Apply default context if missing
	if c.DefaultContext == "" {
		c.DefaultContext = string(DefaultContext)
	}

	if _, err := c.ContextTable().ParseContext(c.DefaultContext); err != nil {
		return fmt.Errorf("invalid default_context: %w", err)
	}

	return nil
}

// Registry returns the built-in scale registry extended with the configured aliases.
// Call Validate first; alias errors are ignored here.
func (c *BelayConfig) Registry() *grade.Registry {
	registry, _ := c.buildRegistry()
	return registry
}

func (c *BelayConfig) buildRegistry() (*grade.Registry, error) {
	registry := grade.DefaultRegistry()
	for _, alias := range sortedKeys(c.Scales) {
		if err := registry.Alias(alias, c.Scales[alias]); err != nil {
			return registry, fmt.Errorf("scales: %w", err)
		}
	}
	return registry, nil
}

// ContextTable returns the built-in context table with the configured
// contexts overlaid. Context names are upper-cased.
func (c *BelayConfig) ContextTable() grade.ContextTable {
	overlay := make(grade.ContextTable, len(c.Contexts))
	for name, scales := range c.Contexts {
		ctx := contextName(name)
		m, ok := overlay[ctx]
		if !ok {
			m = make(grade.ScaleMap, len(scales))
			overlay[ctx] = m
		}
		for key, scale := range scales {
			m[discipline.Key(key)] = scale
		}
	}
	return grade.DefaultContexts().Merge(overlay)
}

// Load reads and validates belay.yml from the specified path
func Load(path string) (*BelayConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config BelayConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// LoadOrDefault loads path, falling back to Default() when the file does not exist.
// Any other read, parse or validation error is returned.
func LoadOrDefault(path string) (*BelayConfig, error) {
	config, err := Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return config, nil
}

// contextName normalizes a configured context name the way grade.ParseContext does.
func contextName(name string) grade.Context {
	return grade.Context(strings.ToUpper(strings.TrimSpace(name)))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
