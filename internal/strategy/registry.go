package strategy

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Registry holds the configs selectable by questionnaire type.
// It is filled at startup and read-only afterwards.
type Registry struct {
	configs map[string]*Config
}

// NewRegistry creates a registry holding the built-in configs
func NewRegistry() *Registry {
	r := &Registry{configs: make(map[string]*Config)}
	for _, c := range Builtins() {
		c := c
		r.configs[c.Type] = &c
	}
	return r
}

// Lookup returns the config for a questionnaire type
func (r *Registry) Lookup(typ string) (*Config, bool) {
	c, ok := r.configs[typ]
	return c, ok
}

// Types lists registered types in sorted order
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.configs))
	for t := range r.configs {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// All returns every registered config sorted by type
func (r *Registry) All() []*Config {
	out := make([]*Config, 0, len(r.configs))
	for _, t := range r.Types() {
		out = append(out, r.configs[t])
	}
	return out
}

// file is the YAML layout of a strategy override file
type file struct {
	Strategies []Config `yaml:"strategies"`
}

// Load validates configs and adds them, replacing any config of the same type
func (r *Registry) Load(configs []Config) error {
	for i := range configs {
		if err := configs[i].Validate(); err != nil {
			return err
		}
	}
	for i := range configs {
		c := configs[i]
		r.configs[c.Type] = &c
	}
	return nil
}

// LoadYAML parses a strategy override document and loads it
func (r *Registry) LoadYAML(data []byte) error {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse strategies: %w", err)
	}
	return r.Load(f.Strategies)
}

// LoadFile reads a YAML strategy file and loads it
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read strategies: %w", err)
	}
	return r.LoadYAML(data)
}
