package vamm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratedTypes(t *testing.T) {
	pricefeed := "juno1pricefeed"
	msg := InstantiateMsg{
		Decimals:              6,
		Pricefeed:             &pricefeed,
		QuoteAsset:            "USDC",
		BaseAsset:             "ETH",
		QuoteAssetReserve:     "1200000000000",
		BaseAssetReserve:      "1000000000",
		FundingPeriod:         3_600,
		TollRatio:             "0",
		SpreadRatio:           "0",
		FluctuationLimitRatio: "0",
	}

	msgBytes, err := msg.Marshal()
	assert.NoError(t, err)
	assert.Equal(t, `{"decimals":6,"pricefeed":"juno1pricefeed","quote_asset":"USDC","base_asset":"ETH",`+
		`"quote_asset_reserve":"1200000000000","base_asset_reserve":"1000000000","funding_period":3600,`+
		`"toll_ratio":"0","spread_ratio":"0","fluctuation_limit_ratio":"0"}`, string(msgBytes))

	decoded, err := UnmarshalInstantiateMsg(msgBytes)
	assert.NoError(t, err)
	assert.Equal(t, msg, decoded)
}
