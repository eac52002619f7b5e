// Package config loads run settings for the host-side step driver.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// RunConfig is the JSON schema accepted by steprun -config. Every field is
// optional; unset fields fall back to the Get* defaults so partial files are
// safe.
type RunConfig struct {
	Rule     *string           `json:"rule,omitempty"`
	N        *int              `json:"n,omitempty"`
	Steps    *int              `json:"steps,omitempty"`
	Seed     *int64            `json:"seed,omitempty"`
	Pattern  *string           `json:"pattern,omitempty"`
	TPS      *int              `json:"tps,omitempty"`
	LogEvery *int              `json:"log_every,omitempty"`
	Timeout  *string           `json:"timeout,omitempty"` // duration string like "30s"
	Params   map[string]string `json:"params,omitempty"`
}

const maxFileSize = 1 * 1024 * 1024

// Load reads a RunConfig from a .json file of at most 1MB.
func Load(path string) (*RunConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}
	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := &RunConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the values that are set.
func (c *RunConfig) Validate() error {
	if c.N != nil && *c.N < 0 {
		return fmt.Errorf("n must be non-negative, got %d", *c.N)
	}
	if c.Steps != nil && *c.Steps < 0 {
		return fmt.Errorf("steps must be non-negative, got %d", *c.Steps)
	}
	if c.LogEvery != nil && *c.LogEvery < 0 {
		return fmt.Errorf("log_every must be non-negative, got %d", *c.LogEvery)
	}
	if c.Timeout != nil && *c.Timeout != "" {
		if _, err := time.ParseDuration(*c.Timeout); err != nil {
			return fmt.Errorf("invalid timeout '%s': %w", *c.Timeout, err)
		}
	}
	return nil
}

// GetRule returns the rule name or "average4".
func (c *RunConfig) GetRule() string {
	if c.Rule == nil || *c.Rule == "" {
		return "average4"
	}
	return *c.Rule
}

// GetN returns the grid side or 64.
func (c *RunConfig) GetN() int {
	if c.N == nil {
		return 64
	}
	return *c.N
}

// GetSteps returns the step count or 100.
func (c *RunConfig) GetSteps() int {
	if c.Steps == nil {
		return 100
	}
	return *c.Steps
}

// GetSeed returns the RNG seed or 42.
func (c *RunConfig) GetSeed() int64 {
	if c.Seed == nil {
		return 42
	}
	return *c.Seed
}

// GetPattern returns the starting pattern or "uniform".
func (c *RunConfig) GetPattern() string {
	if c.Pattern == nil || *c.Pattern == "" {
		return "uniform"
	}
	return *c.Pattern
}

// GetTPS returns the pacing rate; 0 runs unpaced.
func (c *RunConfig) GetTPS() int {
	if c.TPS == nil {
		return 0
	}
	return *c.TPS
}

// GetLogEvery returns how many steps pass between statistics lines, or 10.
func (c *RunConfig) GetLogEvery() int {
	if c.LogEvery == nil {
		return 10
	}
	return *c.LogEvery
}

// GetTimeout returns the run deadline; 0 means none.
func (c *RunConfig) GetTimeout() time.Duration {
	if c.Timeout == nil || *c.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(*c.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// ParamKeys lists the rule parameter keys in sorted order.
func (c *RunConfig) ParamKeys() []string {
	keys := make([]string, 0, len(c.Params))
	for k := range c.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Merge overlays the fields set in o onto c. Params merge key by key.
func (c *RunConfig) Merge(o *RunConfig) {
	if o == nil {
		return
	}
	if o.Rule != nil {
		c.Rule = o.Rule
	}
	if o.N != nil {
		c.N = o.N
	}
	if o.Steps != nil {
		c.Steps = o.Steps
	}
	if o.Seed != nil {
		c.Seed = o.Seed
	}
	if o.Pattern != nil {
		c.Pattern = o.Pattern
	}
	if o.TPS != nil {
		c.TPS = o.TPS
	}
	if o.LogEvery != nil {
		c.LogEvery = o.LogEvery
	}
	if o.Timeout != nil {
		c.Timeout = o.Timeout
	}
	if len(o.Params) > 0 {
		if c.Params == nil {
			c.Params = make(map[string]string, len(o.Params))
		}
		for k, v := range o.Params {
			c.Params[k] = v
		}
	}
}
