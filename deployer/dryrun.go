package deployer

import (
	"context"
	"fmt"
	"sync"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
	"github.com/cosmos/cosmos-sdk/types/bech32"
)

// DryRun builds the instantiate messages without broadcasting them.
// Addresses follow the classic wasm scheme, derived from the code id and a global instance sequence.
type DryRun struct {
	mu         sync.Mutex
	prefix     string
	instanceID uint64
	msgs       []*wasmtypes.MsgInstantiateContract
}

var _ Instantiator = (*DryRun)(nil)

func NewDryRun(bech32Prefix string) *DryRun {
	return &DryRun{prefix: bech32Prefix}
}

func (d *DryRun) Instantiate(ctx context.Context, req InstantiateRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	msg := &wasmtypes.MsgInstantiateContract{
		Sender: req.Sender,
		Admin:  req.Admin,
		CodeID: req.CodeID,
		Label:  req.Label,
		Msg:    req.Msg,
		Funds:  sdk.NewCoins(),
	}
	if msg.CodeID == 0 {
		return "", fmt.Errorf("%s: code id is required", req.Module)
	}
	if err := wasmtypes.ValidateLabel(msg.Label); err != nil {
		return "", fmt.Errorf("%s: label: %w", req.Module, err)
	}
	if err := msg.Msg.ValidateBasic(); err != nil {
		return "", fmt.Errorf("%s: instantiate msg: %w", req.Module, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.instanceID++
	addr, err := ContractAddress(d.prefix, msg.CodeID, d.instanceID)
	if err != nil {
		return "", err
	}
	d.msgs = append(d.msgs, msg)
	return addr, nil
}

// Msgs returns the messages built so far.
func (d *DryRun) Msgs() []*wasmtypes.MsgInstantiateContract {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]*wasmtypes.MsgInstantiateContract(nil), d.msgs...)
}

// ContractAddress is the classic wasm contract address of the instanceID-th instantiation, holding codeID.
func ContractAddress(bech32Prefix string, codeID, instanceID uint64) (string, error) {
	contractID := append(sdk.Uint64ToBigEndian(codeID), sdk.Uint64ToBigEndian(instanceID)...)
	addr := address.Module(wasmtypes.ModuleName, contractID)[:wasmtypes.ContractAddrLen]
	return bech32.ConvertAndEncode(bech32Prefix, addr)
}
