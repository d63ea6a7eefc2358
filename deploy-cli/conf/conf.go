package conf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/margined-protocol/mrgnd-perpetuals/deployer"
)

// EnvConfig overrides the config file location.
const EnvConfig = "MRGND_CONFIG"

type Conf struct {
	LogLevel string           `mapstructure:"logLevel"`
	Registry string           `mapstructure:"registry"`
	Chain    ChainConf        `mapstructure:"chain"`
	Deployer DeployerConf     `mapstructure:"deployer"`
	CodeIDs  deployer.CodeIDs `mapstructure:"codeIds"`
	Server   ServerConf       `mapstructure:"server"`
}

type ChainConf struct {
	ID           string `mapstructure:"id"`
	Bech32Prefix string `mapstructure:"bech32Prefix"`
}

type DeployerConf struct {
	Sender string `mapstructure:"sender"`
	Admin  string `mapstructure:"admin"`
}

type ServerConf struct {
	Addr string `mapstructure:"addr"`
}

// Load reads the config file into v and decodes it. The file is, in order, the
// "config" key of v (bound to the --config flag), $MRGND_CONFIG, or
// ~/.config/mrgnd/config.toml, which is created with defaults when missing.
func Load(v *viper.Viper) (*Conf, error) {
	v.SetEnvPrefix("MRGND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	configPath := v.GetString("config")
	if configPath == "" {
		configPath = os.Getenv(EnvConfig)
	}
	if configPath == "" {
		var err error
		if configPath, err = ensureDefault(); err != nil {
			return nil, err
		}
	}

	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", configPath, err)
	}

	var c Conf
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config file invalid: %w", err)
	}
	return &c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("chain.bech32Prefix", "juno")
	v.SetDefault("server.addr", ":8080")
}

// ensureDefault creates the default config file if it does not exist yet.
func ensureDefault() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	configDir := filepath.Join(home, ".config", "mrgnd")
	configFile := filepath.Join(configDir, "config.toml")

	if _, err := os.Stat(configFile); err == nil {
		return configFile, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(configFile, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write default config: %w", err)
	}
	return configFile, nil
}

// WriteDefault writes the default config to path, failing if it already exists.
func WriteDefault(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(content)
	return err
}
