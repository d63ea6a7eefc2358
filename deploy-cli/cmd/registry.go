package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/margined-protocol/mrgnd-perpetuals/registry"
)

func environmentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "environments",
		Short: "To list the known environments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range a.registry.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func getCmd(a *app) *cobra.Command {
	command := &cobra.Command{
		Use:   "get <environment>",
		Short: "To print the deployment record of an environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.get(args[0])
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), cmd.Flags(), cfg)
		},
	}
	addOutputFlag(command)
	return command
}

func resolveCmd(a *app) *cobra.Command {
	command := &cobra.Command{
		Use:   "resolve <environment> --set field=address ...",
		Short: "To print the record with the given addresses resolved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.get(args[0])
			if err != nil {
				return err
			}
			if cfg, err = applySets(cfg, cmd.Flags()); err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), cmd.Flags(), cfg)
		},
	}
	addOutputFlag(command)
	addSetFlag(command)
	return command
}

func validateCmd(a *app) *cobra.Command {
	command := &cobra.Command{
		Use:   "validate <environment>",
		Short: "To validate the record of an environment, as deployable unless --template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env := args[0]
			cfg, err := a.get(env)
			if err != nil {
				return err
			}
			if cfg, err = applySets(cfg, cmd.Flags()); err != nil {
				return err
			}

			stage := registry.StageDeployable
			if template, _ := cmd.Flags().GetBool("template"); template {
				stage = registry.StageTemplate
			}
			errs := []error{cfg.ValidateStage(env, stage)}
			if cmd.Flags().Changed("bech32-prefix") {
				errs = append(errs, registry.CheckBech32(env, cfg, a.conf.Chain.Bech32Prefix))
			}

			if err := errors.Join(errs...); err != nil {
				violations := registry.Violations(err)
				for _, v := range violations {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", v.Field, v.Reason)
				}
				return fmt.Errorf("%s is not valid as %s: %d violation(s): %w", env, stage, len(violations), registry.ErrConfigInvalid)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid as %s\n", env, stage)
			return nil
		},
	}
	command.Flags().Bool("template", false, "Validate as a template, unset addresses and placeholder reserves are accepted")
	addSetFlag(command)
	return command
}
