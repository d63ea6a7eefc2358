package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/margined-protocol/mrgnd-perpetuals/registry"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
	outputTOML = "toml"
)

func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", outputJSON, "Output format, options: json, yaml, toml")
}

func writeOutput(w io.Writer, flags *pflag.FlagSet, v interface{}) error {
	format, err := flags.GetString("output")
	if err != nil {
		return err
	}

	switch strings.ToLower(format) {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case outputTOML:
		return toml.NewEncoder(w).Encode(v)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func addSetFlag(cmd *cobra.Command) {
	cmd.Flags().StringArray("set", nil, "Resolved address as field=address, repeatable. Fields: "+fieldNames())
}

// applySets resolves every --set field=address on top of cfg, in flag order.
func applySets(cfg registry.Config, flags *pflag.FlagSet) (registry.Config, error) {
	sets, err := flags.GetStringArray("set")
	if err != nil {
		return cfg, err
	}

	for _, set := range sets {
		name, addr, ok := strings.Cut(set, "=")
		if !ok {
			return cfg, fmt.Errorf("invalid --set %q, expected field=address", set)
		}
		field, err := registry.ParseAddressField(strings.TrimSpace(name))
		if err != nil {
			return cfg, err
		}
		if cfg, err = registry.WithResolvedAddress(cfg, field, addr); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func fieldNames() string {
	var names []string
	for _, f := range registry.AddressFields() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
