package registry

import (
	"fmt"
	"strings"
)

// AddressField names an address slot of a Config that is filled in during deployment.
type AddressField string

const (
	FieldOracleHubContract  AddressField = "oracle_hub_contract"
	FieldInsuranceFund      AddressField = "insurance_fund"
	FieldFeePool            AddressField = "fee_pool"
	FieldEligibleCollateral AddressField = "eligible_collateral"
	FieldPricefeed          AddressField = "pricefeed"
)

// AddressFields returns every address field in dependency order.
func AddressFields() []AddressField {
	return []AddressField{
		FieldOracleHubContract,
		FieldInsuranceFund,
		FieldFeePool,
		FieldEligibleCollateral,
		FieldPricefeed,
	}
}

func ParseAddressField(s string) (AddressField, error) {
	for _, f := range AddressFields() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown address field %q", s)
}

// Module is the module whose instantiate message carries the field.
func (f AddressField) Module() Module {
	switch f {
	case FieldOracleHubContract:
		return ModulePriceFeed
	case FieldPricefeed:
		return ModuleVamm
	default:
		return ModuleEngine
	}
}

// Path is the dotted path of the field inside a Config, e.g. engineInitMsg.fee_pool.
func (f AddressField) Path() string {
	return msgPath(f.Module()) + "." + string(f)
}

// Address returns the value of an address field and whether it is set.
func (c Config) Address(field AddressField) (string, bool) {
	slot := c.addressSlot(field)
	if slot == nil || *slot == nil {
		return "", false
	}
	return **slot, true
}

// WithResolvedAddress returns a copy of cfg with one address field set.
// cfg itself is never modified, resolving the same address twice yields the same record.
func WithResolvedAddress(cfg Config, field AddressField, address string) (Config, error) {
	address = strings.TrimSpace(address)

	out := cfg.Clone()
	slot := out.addressSlot(field)
	if slot == nil {
		return cfg, newInvalid("", string(field), "unknown address field")
	}
	if address == "" {
		return cfg, newInvalid("", field.Path(), "cannot resolve to an empty address")
	}

	*slot = &address
	return out, nil
}

func (c *Config) addressSlot(field AddressField) **string {
	switch field {
	case FieldOracleHubContract:
		return &c.PriceFeedInitMsg.OracleHubContract
	case FieldInsuranceFund:
		return &c.EngineInitMsg.InsuranceFund
	case FieldFeePool:
		return &c.EngineInitMsg.FeePool
	case FieldEligibleCollateral:
		return &c.EngineInitMsg.EligibleCollateral
	case FieldPricefeed:
		return &c.VammInitMsg.Pricefeed
	default:
		return nil
	}
}

func msgPath(module Module) string {
	switch module {
	case ModulePriceFeed:
		return "priceFeedInitMsg"
	case ModuleInsuranceFund:
		return "insuranceFundInitMsg"
	case ModuleEngine:
		return "engineInitMsg"
	case ModuleVamm:
		return "vammInitMsg"
	default:
		return string(module)
	}
}
