package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/margined-protocol/mrgnd-perpetuals/deploy-cli/conf"
	"github.com/margined-protocol/mrgnd-perpetuals/logger"
	"github.com/margined-protocol/mrgnd-perpetuals/registry"
)

// app holds what the commands share once the config has been read.
type app struct {
	v        *viper.Viper
	conf     *conf.Conf
	logger   logger.Logger
	registry *registry.Registry

	newLogger func(service string) logger.Logger
}

func newApp() *app {
	return &app{v: viper.New(), newLogger: logger.NewZapLogger}
}

// Execute runs the command line and flushes the logger, whether the command failed or not.
func Execute() error {
	a := newApp()
	return a.execute(a.rootCmd())
}

func RootCmd() *cobra.Command {
	return newApp().rootCmd()
}

func (a *app) execute(rootCmd *cobra.Command) error {
	defer func() {
		if a.logger != nil {
			// stderr cannot be synced on some terminals
			_ = logger.Sync(a.logger)
		}
	}()
	return rootCmd.Execute()
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mrgnd",
		Short:         "Deployment configuration of the margined perpetuals contracts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	rootCmd.PersistentFlags().String("config", "", "Path to the config file, e.g. ~/.config/mrgnd/config.toml")
	rootCmd.PersistentFlags().String("registry", "", "Registry file with the environments, the built-in registry when empty")
	rootCmd.PersistentFlags().String("log-level", "", "Log level, options: debug, info, warn, error")
	rootCmd.PersistentFlags().String("bech32-prefix", "", "Bech32 prefix of the chain addresses, e.g. juno")

	_ = a.v.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = a.v.BindPFlag("registry", rootCmd.PersistentFlags().Lookup("registry"))
	_ = a.v.BindPFlag("logLevel", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("chain.bech32Prefix", rootCmd.PersistentFlags().Lookup("bech32-prefix"))

	rootCmd.AddCommand(environmentsCmd(a))
	rootCmd.AddCommand(getCmd(a))
	rootCmd.AddCommand(validateCmd(a))
	rootCmd.AddCommand(resolveCmd(a))
	rootCmd.AddCommand(describeCmd(a))
	rootCmd.AddCommand(planCmd(a))
	rootCmd.AddCommand(serveCmd(a))
	rootCmd.AddCommand(versionCmd())
	return rootCmd
}

func (a *app) init() error {
	c, err := conf.Load(a.v)
	if err != nil {
		return err
	}
	a.conf = c

	a.logger = a.newLogger("mrgnd")
	a.logger.SetLogLevel(c.LogLevel)

	if c.Registry == "" {
		a.registry, err = registry.Default()
	} else {
		a.registry, err = registry.LoadFile(c.Registry)
	}
	if err != nil {
		return fmt.Errorf("load registry: %w", err)
	}
	a.logger.Debug("Registry loaded",
		logger.WithField("source", registrySource(c.Registry)),
		logger.WithField("environments", a.registry.Names()),
	)
	return nil
}

// get returns the record of env, counting on the caller to report ErrConfigNotFound.
func (a *app) get(env string) (registry.Config, error) {
	cfg, err := a.registry.Get(env)
	if err != nil {
		return registry.Config{}, fmt.Errorf("%w, known environments: %v", err, a.registry.Names())
	}
	return cfg, nil
}

func registrySource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
