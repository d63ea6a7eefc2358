package deployer

import (
	"context"
	"testing"

	"github.com/CosmWasm/wasmd/x/wasm/keeper"
	"github.com/cosmos/cosmos-sdk/types/bech32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/margined-protocol/mrgnd-perpetuals/registry"
)

func TestContractAddress(t *testing.T) {
	// first contract of a fresh wasmd chain
	addr, err := ContractAddress("wasm", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "wasm14hj2tavq8fpesdwxxcu44rty3hh90vhujrvcmstl4zr3txmfvw9s0phg4d", addr)

	for _, ids := range [][2]uint64{{1, 1}, {3, 7}, {42, 1000}} {
		addr, err := ContractAddress("juno", ids[0], ids[1])
		require.NoError(t, err)
		expected, err := bech32.ConvertAndEncode("juno", keeper.BuildContractAddressClassic(ids[0], ids[1]))
		require.NoError(t, err)
		assert.Equal(t, expected, addr, ids)
	}

	hrp, bz, err := bech32.DecodeAndConvert(addr)
	require.NoError(t, err)
	assert.Equal(t, "wasm", hrp)
	assert.Len(t, bz, 32)

	other, err := ContractAddress("wasm", 1, 2)
	require.NoError(t, err)
	assert.NotEqual(t, addr, other)
}

func TestDryRun_Instantiate(t *testing.T) {
	d := NewDryRun("osmo")
	req := InstantiateRequest{
		Module: registry.ModuleInsuranceFund,
		Sender: "osmo1sender",
		CodeID: 7,
		Label:  registry.ModuleInsuranceFund.Label(),
		Msg:    []byte(`{}`),
	}

	addr, err := d.Instantiate(context.Background(), req)
	require.NoError(t, err)
	expected, err := ContractAddress("osmo", 7, 1)
	require.NoError(t, err)
	assert.Equal(t, expected, addr)

	tests := []struct {
		name   string
		mutate func(r *InstantiateRequest)
	}{
		{"no code id", func(r *InstantiateRequest) { r.CodeID = 0 }},
		{"no label", func(r *InstantiateRequest) { r.Label = "" }},
		{"invalid json", func(r *InstantiateRequest) { r.Msg = []byte(`{"decimals":`) }},
		{"empty msg", func(r *InstantiateRequest) { r.Msg = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := req
			tt.mutate(&r)
			_, err := d.Instantiate(context.Background(), r)
			assert.Error(t, err)
		})
	}

	// rejected requests do not consume an instance id
	addr, err = d.Instantiate(context.Background(), req)
	require.NoError(t, err)
	expected, err = ContractAddress("osmo", 7, 2)
	require.NoError(t, err)
	assert.Equal(t, expected, addr)
	assert.Len(t, d.Msgs(), 2)
}

func TestCodeIDs(t *testing.T) {
	ids := CodeIDs{PriceFeed: 1, Engine: 3}

	id, err := ids.For(registry.ModuleEngine)
	assert.NoError(t, err)
	assert.Equal(t, uint64(3), id)

	_, err = ids.For(registry.ModuleInsuranceFund)
	assert.ErrorContains(t, err, "code id of insurance_fund is not set")

	_, err = ids.For(registry.Module("oracle"))
	assert.Error(t, err)
}
