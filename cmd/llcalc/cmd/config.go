package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/schuko"
)

// Config is the configuration of the command line driver. It is read from a
// TOML file and serves as a schuko.Configuration for setting up tracing.
//
//	[tracing]
//	adapter = "go"
//
//	[tracelevel]
//	root = "Error"
//	"llcalc.parser" = "Debug"
//
//	[parser]
//	maxdepth = 10000
//
//	[output]
//	format = "text"
//
// Nested tables are flattened to dotted keys, e.g. "tracelevel.llcalc.parser".
type Config struct {
	values map[string]interface{}
}

var _ schuko.Configuration = (*Config)(nil)

// tracer keys of this module
var traceKeys = []string{
	"llcalc.scanner", "llcalc.grammar", "llcalc.calc", "llcalc.parser", "llcalc.cli",
}

// LoadConfig reads a TOML configuration file. An empty path results in a
// configuration holding defaults only.
func LoadConfig(path string) (*Config, error) {
	c := &Config{values: make(map[string]interface{})}
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read configuration: %w", err)
		}
		var data map[string]interface{}
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, fmt.Errorf("TOML parse error in %s: %w", path, err)
		}
		flatten("", data, c.values)
	}
	c.InitDefaults()
	return c, nil
}

func flatten(prefix string, data map[string]interface{}, into map[string]interface{}) {
	for k, v := range data {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if m, ok := v.(map[string]interface{}); ok {
			flatten(key, m, into)
			continue
		}
		into[key] = v
	}
}

// InitDefaults is part of interface schuko.Configuration.
// Values already set are left untouched.
func (c *Config) InitDefaults() {
	defaults := map[string]interface{}{
		"tracing.adapter": "go",
		"tracelevel.root": "Error",
		"parser.maxdepth": int64(10000),
		"output.format":   "text",
	}
	for _, key := range traceKeys {
		defaults["tracelevel."+key] = "Error"
	}
	for k, v := range defaults {
		if !c.IsSet(k) {
			c.values[k] = v
		}
	}
}

// Set sets a configuration value, overriding values from the file.
func (c *Config) Set(key string, value interface{}) {
	c.values[key] = value
}

// SetTraceLevel sets the trace level for all tracers of this module.
func (c *Config) SetTraceLevel(level string) {
	for _, key := range traceKeys {
		c.Set("tracelevel."+key, level)
	}
}

// IsSet is part of interface schuko.Configuration.
func (c *Config) IsSet(key string) bool {
	_, ok := c.values[key]
	return ok
}

// GetString is part of interface schuko.Configuration.
func (c *Config) GetString(key string) string {
	v, ok := c.values[key]
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// GetInt is part of interface schuko.Configuration. Non-numeric values
// result in 0.
func (c *Config) GetInt(key string) int {
	switch v := c.values[key].(type) {
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	}
	return 0
}

// GetBool is part of interface schuko.Configuration.
func (c *Config) GetBool(key string) bool {
	switch v := c.values[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(v))
		return b
	}
	return false
}

// IsInteractive is part of interface schuko.Configuration.
func (c *Config) IsInteractive() bool {
	return c.GetBool("interactive")
}
