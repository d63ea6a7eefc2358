package registry

import (
	"errors"
	"fmt"
	"strings"

	"cosmossdk.io/math"
)

// Stage selects how strict validation is.
type Stage int

const (
	// StageTemplate accepts unset addresses and placeholder reserves.
	StageTemplate Stage = iota
	// StageDeployable requires everything needed to instantiate the contracts.
	StageDeployable
)

func (s Stage) String() string {
	switch s {
	case StageTemplate:
		return "template"
	case StageDeployable:
		return "deployable"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

func ParseStage(s string) (Stage, error) {
	switch strings.ToLower(s) {
	case "template":
		return StageTemplate, nil
	case "", "deployable":
		return StageDeployable, nil
	default:
		return 0, fmt.Errorf("unknown validation stage %q", s)
	}
}

// Validate checks that c can be used to instantiate every module.
func (c Config) Validate(env string) error {
	return c.ValidateStage(env, StageDeployable)
}

// ValidateTemplate checks c as a pre-deployment record.
func (c Config) ValidateTemplate(env string) error {
	return c.ValidateStage(env, StageTemplate)
}

func (c Config) ValidateStage(env string, stage Stage) error {
	return c.validate(env, stage, DeploymentOrder()...)
}

// ReadyFor checks that the module can be instantiated from c.
// Modules sharing a denomination must still agree on decimals.
func (c Config) ReadyFor(env string, module Module) error {
	if _, err := ParseModule(string(module)); err != nil {
		return newInvalid(env, string(module), "unknown module")
	}
	return c.validate(env, StageDeployable, module)
}

func (c Config) validate(env string, stage Stage, modules ...Module) error {
	v := &validator{env: env, stage: stage}
	v.decimals(c)

	for _, m := range modules {
		switch m {
		case ModulePriceFeed:
			v.address(FieldOracleHubContract, c.PriceFeedInitMsg.OracleHubContract)
		case ModuleInsuranceFund:
		case ModuleEngine:
			v.engine(c)
			v.assets(c.InitialAssets)
		case ModuleVamm:
			v.vamm(c)
		}
	}
	return errors.Join(v.errs...)
}

type validator struct {
	env   string
	stage Stage
	errs  []error
}

func (v *validator) fail(field, format string, args ...any) {
	v.errs = append(v.errs, newInvalid(v.env, field, format, args...))
}

func (v *validator) decimals(c Config) {
	fields := []struct {
		path  string
		value int
	}{
		{msgPath(ModulePriceFeed) + ".decimals", c.PriceFeedInitMsg.Decimals},
		{msgPath(ModuleEngine) + ".decimals", c.EngineInitMsg.Decimals},
		{msgPath(ModuleVamm) + ".decimals", c.VammInitMsg.Decimals},
	}

	for _, f := range fields {
		if !validDecimals(f.value) {
			v.fail(f.path, "decimals %d out of range 1..%d", f.value, MaxDecimals)
		}
	}
	for _, f := range fields[1:] {
		if f.value != fields[0].value {
			v.fail(f.path, "decimals %d do not match %s %d", f.value, fields[0].path, fields[0].value)
		}
	}
}

func (v *validator) address(field AddressField, value *string) {
	switch {
	case value == nil:
		if v.stage == StageDeployable {
			v.fail(field.Path(), "required address is not set")
		}
	case strings.TrimSpace(*value) == "":
		v.fail(field.Path(), "address is set but empty")
	}
}

// ratio parses a ratio or fee, which cannot exceed 1.0 at the module's scale.
func (v *validator) ratio(field, value string, decimals int) (math.Uint, bool) {
	amount, err := ParseAmount(value)
	if err != nil {
		v.fail(field, "%s", err)
		return math.Uint{}, false
	}
	if validDecimals(decimals) && amount.GT(Scale(decimals)) {
		v.fail(field, "%s exceeds 1.0 at scale %s", value, Scale(decimals))
	}
	return amount, true
}

// reserve parses a vamm reserve, empty and zero are template placeholders.
func (v *validator) reserve(field, value string) (math.Uint, bool) {
	if value == "" {
		if v.stage == StageDeployable {
			v.fail(field, "reserve is not set")
		}
		return math.Uint{}, false
	}

	amount, err := ParseAmount(value)
	if err != nil {
		v.fail(field, "%s", err)
		return math.Uint{}, false
	}
	if amount.IsZero() {
		if v.stage == StageDeployable {
			v.fail(field, "reserve must be strictly positive")
		}
		return math.Uint{}, false
	}
	return amount, true
}

func (v *validator) engine(c Config) {
	msg := c.EngineInitMsg
	path := msgPath(ModuleEngine)

	v.address(FieldInsuranceFund, msg.InsuranceFund)
	v.address(FieldFeePool, msg.FeePool)
	v.address(FieldEligibleCollateral, msg.EligibleCollateral)

	initial, okInitial := v.ratio(path+".initial_margin_ratio", msg.InitialMarginRatio, msg.Decimals)
	maintenance, okMaintenance := v.ratio(path+".maintenance_margin_ratio", msg.MaintenanceMarginRatio, msg.Decimals)
	v.ratio(path+".liquidation_fee", msg.LiquidationFee, msg.Decimals)

	if okInitial && okMaintenance && maintenance.GT(initial) {
		v.fail(path+".maintenance_margin_ratio", "%s is above initial_margin_ratio %s", maintenance, initial)
	}
}

func (v *validator) vamm(c Config) {
	msg := c.VammInitMsg
	path := msgPath(ModuleVamm)

	v.address(FieldPricefeed, msg.Pricefeed)

	if strings.TrimSpace(msg.QuoteAsset) == "" {
		v.fail(path+".quote_asset", "symbol is empty")
	}
	if strings.TrimSpace(msg.BaseAsset) == "" {
		v.fail(path+".base_asset", "symbol is empty")
	}
	if msg.FundingPeriod <= 0 {
		v.fail(path+".funding_period", "funding period must be positive, got %d", msg.FundingPeriod)
	}

	v.ratio(path+".toll_ratio", msg.TollRatio, msg.Decimals)
	v.ratio(path+".spread_ratio", msg.SpreadRatio, msg.Decimals)
	v.ratio(path+".fluctuation_limit_ratio", msg.FluctuationLimitRatio, msg.Decimals)

	_, okQuote := v.reserve(path+".quote_asset_reserve", msg.QuoteAssetReserve)
	_, okBase := v.reserve(path+".base_asset_reserve", msg.BaseAssetReserve)
	if okQuote && okBase {
		if _, err := ConstantProduct(msg); err != nil {
			v.fail(path+".quote_asset_reserve", "%s", err)
		}
	}
}

func (v *validator) assets(assets []Asset) {
	for i, asset := range assets {
		field := fmt.Sprintf("initialAssets[%d]", i)
		switch {
		case asset.Token != nil && asset.NativeToken != nil:
			v.fail(field, "token and native_token are both set")
		case asset.Token != nil:
			if strings.TrimSpace(asset.Token.ContractAddr) == "" {
				v.fail(field+".token.contract_addr", "address is empty")
			}
		case asset.NativeToken != nil:
			if strings.TrimSpace(asset.NativeToken.Denom) == "" {
				v.fail(field+".native_token.denom", "denom is empty")
			}
		default:
			v.fail(field, "one of token or native_token must be set")
		}
	}
}

func validDecimals(d int) bool {
	return d >= 1 && d <= MaxDecimals
}
