// Instantiate message of the margined-engine contract.
//
//    instantiateMsg, err := UnmarshalInstantiateMsg(bytes)
//    bytes, err = instantiateMsg.Marshal()

package engine

import "encoding/json"

func UnmarshalInstantiateMsg(data []byte) (InstantiateMsg, error) {
	var r InstantiateMsg
	err := json.Unmarshal(data, &r)
	return r, err
}

func (r *InstantiateMsg) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

type InstantiateMsg struct {
	Decimals int `json:"decimals" yaml:"decimals" toml:"decimals"`
	// Address of the insurance fund absorbing bad debt
	InsuranceFund *string `json:"insurance_fund,omitempty" yaml:"insurance_fund,omitempty" toml:"insurance_fund,omitempty"`
	// Address receiving the toll and spread fees
	FeePool *string `json:"fee_pool,omitempty" yaml:"fee_pool,omitempty" toml:"fee_pool,omitempty"`
	// cw20 token accepted as margin
	EligibleCollateral *string `json:"eligible_collateral,omitempty" yaml:"eligible_collateral,omitempty" toml:"eligible_collateral,omitempty"`
	// Uint128 at 10^decimals, "62500" is 6.25% with 6 decimals
	InitialMarginRatio     string `json:"initial_margin_ratio" yaml:"initial_margin_ratio" toml:"initial_margin_ratio"`
	MaintenanceMarginRatio string `json:"maintenance_margin_ratio" yaml:"maintenance_margin_ratio" toml:"maintenance_margin_ratio"`
	LiquidationFee         string `json:"liquidation_fee" yaml:"liquidation_fee" toml:"liquidation_fee"`
}
