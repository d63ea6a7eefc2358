package registry

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed environments.yaml
var environmentsYAML []byte

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

// Default returns the registry of the built-in environments, parsed once.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultRegistry, defaultErr = Load(bytes.NewReader(environmentsYAML))
	})
	return defaultRegistry, defaultErr
}

// document is the registry file: one template and a partial override per environment.
//
//	defaults:
//	  vammInitMsg:
//	    funding_period: 3600
//	environments:
//	  local:
//	    vammInitMsg:
//	      base_asset: ETH
type document struct {
	Defaults     yaml.Node            `yaml:"defaults"`
	Environments map[string]yaml.Node `yaml:"environments"`
}

// Load reads a registry file. Every environment starts as a copy of defaults,
// then its override is applied on top: keys present replace the default, ~ clears a field.
func Load(r io.Reader) (*Registry, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode registry: %w", err)
	}

	var base Config
	if err := decodeConfig(&doc.Defaults, &base); err != nil {
		return nil, fmt.Errorf("decode defaults: %w", err)
	}
	if len(doc.Environments) == 0 {
		return nil, errors.New("decode registry: no environments defined")
	}

	configs := make(map[string]Config, len(doc.Environments))
	for name, node := range doc.Environments {
		if strings.TrimSpace(name) != name || name == "" {
			return nil, fmt.Errorf("decode registry: invalid environment name %q", name)
		}

		cfg := base.Clone()
		if err := decodeConfig(&node, &cfg); err != nil {
			return nil, fmt.Errorf("decode environment %q: %w", name, err)
		}
		configs[name] = cfg
	}
	return New(configs), nil
}

func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open registry: %w", err)
	}
	defer f.Close()

	r, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// decodeConfig applies node on top of out, rejecting unknown keys.
func decodeConfig(node *yaml.Node, out *Config) error {
	if node.IsZero() || (node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null") {
		return nil
	}

	raw, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	return dec.Decode(out)
}
