// Instantiate message of the margined-vamm contract.
//
//    instantiateMsg, err := UnmarshalInstantiateMsg(bytes)
//    bytes, err = instantiateMsg.Marshal()

package vamm

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
	// Address of the margined-pricefeed contract used for the index price
	Pricefeed  *string `json:"pricefeed,omitempty" yaml:"pricefeed,omitempty" toml:"pricefeed,omitempty"`
	QuoteAsset string  `json:"quote_asset" yaml:"quote_asset" toml:"quote_asset"`
	BaseAsset  string  `json:"base_asset" yaml:"base_asset" toml:"base_asset"`
	// Uint128 token amounts at 10^decimals, their product is the constant k of the vamm
	QuoteAssetReserve string `json:"quote_asset_reserve" yaml:"quote_asset_reserve" toml:"quote_asset_reserve"`
	BaseAssetReserve  string `json:"base_asset_reserve" yaml:"base_asset_reserve" toml:"base_asset_reserve"`
	// Seconds between funding payments
	FundingPeriod         int64  `json:"funding_period" yaml:"funding_period" toml:"funding_period"`
	TollRatio             string `json:"toll_ratio" yaml:"toll_ratio" toml:"toll_ratio"`
	SpreadRatio           string `json:"spread_ratio" yaml:"spread_ratio" toml:"spread_ratio"`
	FluctuationLimitRatio string `json:"fluctuation_limit_ratio" yaml:"fluctuation_limit_ratio" toml:"fluctuation_limit_ratio"`
}
