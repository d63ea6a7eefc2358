package registry

import "fmt"

// Module is one of the contracts instantiated from a Config.
type Module string

const (
	ModulePriceFeed     Module = "pricefeed"
	ModuleInsuranceFund Module = "insurance_fund"
	ModuleEngine        Module = "engine"
	ModuleVamm          Module = "vamm"
)

// DeploymentOrder returns the modules in the order they must be instantiated.
// A module only depends on addresses provided by modules before it, or set by the operator.
func DeploymentOrder() []Module {
	return []Module{ModulePriceFeed, ModuleInsuranceFund, ModuleEngine, ModuleVamm}
}

func ParseModule(s string) (Module, error) {
	for _, m := range DeploymentOrder() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown module %q", s)
}

// Dependencies are the address fields that must be resolved before the module is instantiated.
func (m Module) Dependencies() []AddressField {
	switch m {
	case ModulePriceFeed:
		return []AddressField{FieldOracleHubContract}
	case ModuleEngine:
		return []AddressField{FieldInsuranceFund, FieldFeePool, FieldEligibleCollateral}
	case ModuleVamm:
		return []AddressField{FieldPricefeed}
	default:
		return nil
	}
}

// Provides is the address field filled in with the module's own address once it is instantiated.
func (m Module) Provides() (AddressField, bool) {
	switch m {
	case ModulePriceFeed:
		return FieldPricefeed, true
	case ModuleInsuranceFund:
		return FieldInsuranceFund, true
	default:
		return "", false
	}
}

// Label is the on-chain contract label.
func (m Module) Label() string {
	switch m {
	case ModulePriceFeed:
		return "Margined Price Feed"
	case ModuleInsuranceFund:
		return "Margined Insurance Fund"
	case ModuleEngine:
		return "Margined Engine"
	case ModuleVamm:
		return "Margined vAMM"
	default:
		return string(m)
	}
}
