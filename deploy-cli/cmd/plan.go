package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/margined-protocol/mrgnd-perpetuals/deployer"
	"github.com/margined-protocol/mrgnd-perpetuals/logger"
	"github.com/margined-protocol/mrgnd-perpetuals/metrics"
)

func planCmd(a *app) *cobra.Command {
	command := &cobra.Command{
		Use:   "plan <environment> [--set field=address ...]",
		Short: "To dry-run the deployment of an environment and print the instantiate messages in order",
		Long: `To dry-run the deployment of an environment.

Nothing is broadcast. The contracts are instantiated in deployment order with the
code ids of the config, addresses are derived as a fresh chain would assign them
and threaded into the modules depending on them. Addresses the operator provides,
such as the oracle hub or fee pool, are set with --set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env := args[0]
			cfg, err := a.get(env)
			if err != nil {
				return err
			}
			if cfg, err = applySets(cfg, cmd.Flags()); err != nil {
				return err
			}

			opts := deployer.DefaultOptions().
				WithSender(a.conf.Deployer.Sender).
				WithAdmin(a.conf.Deployer.Admin).
				WithCodeIDs(a.conf.CodeIDs)
			if prefixed, _ := cmd.Flags().GetBool("label-env"); prefixed {
				opts = opts.WithLabelPrefix(env)
			}

			dryRun := deployer.NewDryRun(a.conf.Chain.Bech32Prefix)
			res, err := deployer.New(dryRun, opts, a.logger, metrics.Noop{}).Deploy(cmd.Context(), env, cfg)
			if err != nil {
				// show what was instantiated before the failure
				if res != nil {
					if werr := writeOutput(cmd.OutOrStdout(), cmd.Flags(), res); werr != nil {
						return errors.Join(err, werr)
					}
				}
				return err
			}

			a.logger.Info("Deployment planned",
				logger.WithField("environment", env),
				logger.WithField("chain_id", a.conf.Chain.ID),
				logger.WithField("instantiations", len(dryRun.Msgs())),
			)
			return writeOutput(cmd.OutOrStdout(), cmd.Flags(), res)
		},
	}
	command.Flags().Bool("label-env", false, "Prefix the contract labels with the environment name")
	addOutputFlag(command)
	addSetFlag(command)
	return command
}
