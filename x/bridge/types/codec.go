package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterLegacyAminoCodec registers the bridge module's messages and
// state types with the given codec. State records go through the same
// codec so genesis export and store marshalling stay in sync.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgInitConfig{}, "veil/bridge/MsgInitConfig", nil)
	cdc.RegisterConcrete(&MsgUpdateConfig{}, "veil/bridge/MsgUpdateConfig", nil)
	cdc.RegisterConcrete(&MsgDeposit{}, "veil/bridge/MsgDeposit", nil)
	cdc.RegisterConcrete(&MsgClaim{}, "veil/bridge/MsgClaim", nil)
	cdc.RegisterConcrete(&MsgReleaseExpiredClaim{}, "veil/bridge/MsgReleaseExpiredClaim", nil)
	cdc.RegisterConcrete(&MsgSettle{}, "veil/bridge/MsgSettle", nil)
	cdc.RegisterConcrete(&MsgResolveComputation{}, "veil/bridge/MsgResolveComputation", nil)

	cdc.RegisterConcrete(BridgeConfig{}, "veil/bridge/BridgeConfig", nil)
	cdc.RegisterConcrete(BridgeRequest{}, "veil/bridge/BridgeRequest", nil)
	cdc.RegisterConcrete(ComputationJob{}, "veil/bridge/ComputationJob", nil)
}

// ModuleCdc is the module-wide amino codec, used for store marshalling
// and genesis.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
	sdk.RegisterLegacyAminoCodec(ModuleCdc)
}
