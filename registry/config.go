package registry

import (
	"fmt"

	"github.com/margined-protocol/mrgnd-perpetuals/cosmwasm-schema/engine"
	insurancefund "github.com/margined-protocol/mrgnd-perpetuals/cosmwasm-schema/insurance-fund"
	"github.com/margined-protocol/mrgnd-perpetuals/cosmwasm-schema/pricefeed"
	"github.com/margined-protocol/mrgnd-perpetuals/cosmwasm-schema/vamm"
)

// Built-in environments of the embedded registry.
const (
	JunoTestnet = "juno_testnet"
	OsmoTestnet = "osmo_testnet"
	Local       = "local"
)

// Config holds everything needed to instantiate the four perpetuals contracts of one environment.
type Config struct {
	// Collateral assets whitelisted once the engine is live, in order.
	InitialAssets        []Asset                      `json:"initialAssets" yaml:"initialAssets" toml:"initialAssets"`
	InsuranceFundInitMsg insurancefund.InstantiateMsg `json:"insuranceFundInitMsg" yaml:"insuranceFundInitMsg" toml:"insuranceFundInitMsg"`
	PriceFeedInitMsg     pricefeed.InstantiateMsg     `json:"priceFeedInitMsg" yaml:"priceFeedInitMsg" toml:"priceFeedInitMsg"`
	EngineInitMsg        engine.InstantiateMsg        `json:"engineInitMsg" yaml:"engineInitMsg" toml:"engineInitMsg"`
	VammInitMsg          vamm.InstantiateMsg          `json:"vammInitMsg" yaml:"vammInitMsg" toml:"vammInitMsg"`
}

// Clone returns a deep copy, no pointer or slice is shared with c.
func (c Config) Clone() Config {
	out := c
	out.InitialAssets = make([]Asset, len(c.InitialAssets))
	for i, asset := range c.InitialAssets {
		out.InitialAssets[i] = asset.clone()
	}
	out.PriceFeedInitMsg.OracleHubContract = cloneString(c.PriceFeedInitMsg.OracleHubContract)
	out.EngineInitMsg.InsuranceFund = cloneString(c.EngineInitMsg.InsuranceFund)
	out.EngineInitMsg.FeePool = cloneString(c.EngineInitMsg.FeePool)
	out.EngineInitMsg.EligibleCollateral = cloneString(c.EngineInitMsg.EligibleCollateral)
	out.VammInitMsg.Pricefeed = cloneString(c.VammInitMsg.Pricefeed)
	return out
}

// InstantiateMsg returns the instantiate message of the given module.
func (c Config) InstantiateMsg(module Module) (any, error) {
	switch module {
	case ModulePriceFeed:
		return c.PriceFeedInitMsg, nil
	case ModuleInsuranceFund:
		return c.InsuranceFundInitMsg, nil
	case ModuleEngine:
		return c.EngineInitMsg, nil
	case ModuleVamm:
		return c.VammInitMsg, nil
	default:
		return nil, fmt.Errorf("unknown module %q", module)
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
