package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Default(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteDefault(path))
	assert.Error(t, WriteDefault(path))

	v := viper.New()
	v.Set("config", path)
	c, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "juno", c.Chain.Bech32Prefix)
	assert.Equal(t, "uni-6", c.Chain.ID)
	assert.Equal(t, ":8080", c.Server.Addr)
	assert.Zero(t, c.CodeIDs.Engine)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mrgnd.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
logLevel = "debug"
registry = "/etc/mrgnd/environments.yaml"

[chain]
bech32Prefix = "osmo"

[deployer]
sender = "osmo1sender"

[codeIds]
pricefeed = 11
insuranceFund = 12
engine = 13
vamm = 14
`), 0o600))

	t.Setenv(EnvConfig, path)
	c, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "/etc/mrgnd/environments.yaml", c.Registry)
	assert.Equal(t, "osmo", c.Chain.Bech32Prefix)
	assert.Equal(t, "osmo1sender", c.Deployer.Sender)
	assert.Equal(t, uint64(13), c.CodeIDs.Engine)
	assert.Equal(t, uint64(14), c.CodeIDs.Vamm)
	// defaults fill what the file leaves out
	assert.Equal(t, ":8080", c.Server.Addr)
}

func TestLoad_Missing(t *testing.T) {
	v := viper.New()
	v.Set("config", filepath.Join(t.TempDir(), "missing.toml"))
	_, err := Load(v)
	assert.Error(t, err)
}

func TestBuildVersion(t *testing.T) {
	assert.NotEmpty(t, BuildVersion())

	Version = "v1.0.0"
	t.Cleanup(func() { Version = "" })
	assert.Equal(t, "v1.0.0", BuildVersion())
}
