package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/margined-protocol/mrgnd-perpetuals/registry"
)

func describeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <environment>",
		Short: "To print the ratios of an environment as fractions, with the vAMM invariant and initial price",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.get(args[0])
			if err != nil {
				return err
			}
			return describe(cmd.OutOrStdout(), args[0], cfg)
		},
	}
}

func describe(out io.Writer, env string, cfg registry.Config) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	engine, vamm := cfg.EngineInitMsg, cfg.VammInitMsg

	fmt.Fprintf(w, "environment\t%s\n", env)
	fmt.Fprintf(w, "market\t%s/%s\n", vamm.BaseAsset, vamm.QuoteAsset)
	fmt.Fprintf(w, "decimals\t%d\n", vamm.Decimals)

	ratios := []struct {
		name     string
		value    string
		decimals int
	}{
		{"initial_margin_ratio", engine.InitialMarginRatio, engine.Decimals},
		{"maintenance_margin_ratio", engine.MaintenanceMarginRatio, engine.Decimals},
		{"liquidation_fee", engine.LiquidationFee, engine.Decimals},
		{"toll_ratio", vamm.TollRatio, vamm.Decimals},
		{"spread_ratio", vamm.SpreadRatio, vamm.Decimals},
		{"fluctuation_limit_ratio", vamm.FluctuationLimitRatio, vamm.Decimals},
	}
	for _, r := range ratios {
		f, err := registry.Fraction(r.value, r.decimals)
		if err != nil {
			fmt.Fprintf(w, "%s\t%s\t(invalid: %s)\n", r.name, r.value, err)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s%%\n", r.name, r.value, f.Shift(2).String())
	}

	fmt.Fprintf(w, "funding_period\t%ds\n", vamm.FundingPeriod)
	if k, err := registry.ConstantProduct(vamm); err != nil {
		fmt.Fprintf(w, "k\tunset (%s)\n", err)
	} else {
		fmt.Fprintf(w, "k\t%s\n", k)
	}
	if price, err := registry.InitialPrice(vamm); err != nil {
		fmt.Fprintf(w, "initial_price\tunset (%s)\n", err)
	} else {
		fmt.Fprintf(w, "initial_price\t%s %s\n", price.String(), vamm.QuoteAsset)
	}

	for _, field := range registry.AddressFields() {
		addr, ok := cfg.Address(field)
		if !ok {
			addr = "<unresolved>"
		}
		fmt.Fprintf(w, "%s\t%s\n", field.Path(), addr)
	}
	for i, asset := range cfg.InitialAssets {
		fmt.Fprintf(w, "initialAssets[%d]\t%s\n", i, asset)
	}
	return w.Flush()
}
