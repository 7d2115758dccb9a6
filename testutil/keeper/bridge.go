package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"
	"github.com/stretchr/testify/require"

	"github.com/veilbridge/veil/x/bridge/keeper"
	"github.com/veilbridge/veil/x/bridge/types"
)

// BridgeFixture bundles a bridge keeper with the real auth and bank
// keepers backing it, so tests exercise actual coin movement instead of
// mocks.
type BridgeFixture struct {
	Keeper        *keeper.Keeper
	BankKeeper    bankkeeper.BaseKeeper
	AccountKeeper authkeeper.AccountKeeper
	Ctx           sdk.Context
}

// BridgeKeeper creates a test fixture for the bridge module with an
// in-memory multistore and real auth and bank keepers.
func BridgeKeeper(t testing.TB) *BridgeFixture {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	authStoreKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankStoreKey := storetypes.NewKVStoreKey(banktypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(authStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(bankStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	authtypes.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	maccPerms := map[string][]string{
		authtypes.FeeCollectorName: nil,
		minttypes.ModuleName:       {authtypes.Minter},
		types.ModuleName:           nil,
	}

	accountKeeper := authkeeper.NewAccountKeeper(
		cdc,
		runtime.NewKVStoreService(authStoreKey),
		authtypes.ProtoBaseAccount,
		maccPerms,
		address.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		sdk.GetConfig().GetBech32AccountAddrPrefix(),
		authority.String(),
	)

	bankKeeper := bankkeeper.NewBaseKeeper(
		cdc,
		runtime.NewKVStoreService(bankStoreKey),
		accountKeeper,
		map[string]bool{},
		authority.String(),
		log.NewNopLogger(),
	)

	amino := codec.NewLegacyAmino()
	types.RegisterLegacyAminoCodec(amino)

	k := keeper.NewKeeper(
		amino,
		storeKey,
		bankKeeper,
		accountKeeper,
		authority.String(),
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger()).
		WithBlockTime(time.Unix(1_700_000_000, 0))

	return &BridgeFixture{
		Keeper:        k,
		BankKeeper:    bankKeeper,
		AccountKeeper: accountKeeper,
		Ctx:           ctx,
	}
}

// FundAccount mints coins and hands them to addr
func (f *BridgeFixture) FundAccount(t testing.TB, addr sdk.AccAddress, denom string, amount uint64) {
	coins := sdk.NewCoins(sdk.NewCoin(denom, math.NewIntFromUint64(amount)))
	require.NoError(t, f.BankKeeper.MintCoins(f.Ctx, minttypes.ModuleName, coins))
	require.NoError(t, f.BankKeeper.SendCoinsFromModuleToAccount(f.Ctx, minttypes.ModuleName, addr, coins))
}

// Balance returns addr's balance in denom as a uint64
func (f *BridgeFixture) Balance(addr sdk.AccAddress, denom string) uint64 {
	return f.BankKeeper.GetBalance(f.Ctx, addr, denom).Amount.Uint64()
}

// Advance moves the block time forward
func (f *BridgeFixture) Advance(d time.Duration) {
	f.Ctx = f.Ctx.WithBlockTime(f.Ctx.BlockTime().Add(d))
}
