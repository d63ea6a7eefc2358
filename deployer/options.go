package deployer

import (
	"fmt"

	"github.com/margined-protocol/mrgnd-perpetuals/registry"
)

// CodeIDs are the stored wasm code ids of each contract.
type CodeIDs struct {
	PriceFeed     uint64 `json:"pricefeed" mapstructure:"pricefeed"`
	InsuranceFund uint64 `json:"insuranceFund" mapstructure:"insuranceFund"`
	Engine        uint64 `json:"engine" mapstructure:"engine"`
	Vamm          uint64 `json:"vamm" mapstructure:"vamm"`
}

func (c CodeIDs) For(module registry.Module) (uint64, error) {
	var id uint64
	switch module {
	case registry.ModulePriceFeed:
		id = c.PriceFeed
	case registry.ModuleInsuranceFund:
		id = c.InsuranceFund
	case registry.ModuleEngine:
		id = c.Engine
	case registry.ModuleVamm:
		id = c.Vamm
	default:
		return 0, fmt.Errorf("unknown module %q", module)
	}
	if id == 0 {
		return 0, fmt.Errorf("code id of %s is not set", module)
	}
	return id, nil
}

type Options struct {
	Sender      string  // Sender: Address signing the instantiate messages
	Admin       string  // Admin: Address allowed to migrate the contracts, empty for none
	CodeIDs     CodeIDs // CodeIDs: Stored code of each contract
	LabelPrefix string  // LabelPrefix: Prepended to the module label, e.g. "juno_testnet"
}

func DefaultOptions() Options {
	return Options{}
}

func (opts Options) WithSender(sender string) Options {
	opts.Sender = sender
	return opts
}

func (opts Options) WithAdmin(admin string) Options {
	opts.Admin = admin
	return opts
}

func (opts Options) WithCodeIDs(codeIDs CodeIDs) Options {
	opts.CodeIDs = codeIDs
	return opts
}

func (opts Options) WithLabelPrefix(prefix string) Options {
	opts.LabelPrefix = prefix
	return opts
}

func (opts Options) label(module registry.Module) string {
	if opts.LabelPrefix == "" {
		return module.Label()
	}
	return opts.LabelPrefix + " " + module.Label()
}
