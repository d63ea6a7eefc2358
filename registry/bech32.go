package registry

import (
	"errors"
	"fmt"

	"github.com/cosmos/cosmos-sdk/types/bech32"
)

// CheckBech32 checks that every address set in cfg is bech32 encoded with the chain prefix.
// Unset addresses are left to Validate.
func CheckBech32(env string, cfg Config, prefix string) error {
	var errs []error
	check := func(field, addr string) {
		hrp, _, err := bech32.DecodeAndConvert(addr)
		if err != nil {
			errs = append(errs, newInvalid(env, field, "invalid bech32 address %q: %s", addr, err))
			return
		}
		if hrp != prefix {
			errs = append(errs, newInvalid(env, field, "address %q has prefix %q, expected %q", addr, hrp, prefix))
		}
	}

	for _, field := range AddressFields() {
		if addr, ok := cfg.Address(field); ok {
			check(field.Path(), addr)
		}
	}
	for i, asset := range cfg.InitialAssets {
		if asset.Token != nil {
			check(fmt.Sprintf("initialAssets[%d].token.contract_addr", i), asset.Token.ContractAddr)
		}
	}
	return errors.Join(errs...)
}
