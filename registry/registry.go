package registry

import "sort"

// Registry maps environment names to deployment configs.
// It is never modified after construction, Get hands out copies.
type Registry struct {
	configs map[string]Config
}

// New builds a Registry from the given records, which are copied.
func New(configs map[string]Config) *Registry {
	r := &Registry{configs: make(map[string]Config, len(configs))}
	for name, cfg := range configs {
		r.configs[name] = cfg.Clone()
	}
	return r
}

// Get returns the config of an environment, or ErrConfigNotFound.
// Names are matched exactly, surrounding whitespace is not trimmed.
func (r *Registry) Get(name string) (Config, error) {
	cfg, ok := r.configs[name]
	if !ok {
		return Config{}, notFound(name)
	}
	return cfg.Clone(), nil
}

func (r *Registry) Has(name string) bool {
	_, ok := r.configs[name]
	return ok
}

// Names returns the environment names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.configs))
	for name := range r.configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Len() int {
	return len(r.configs)
}
