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
	banktestutil "github.com/cosmos/cosmos-sdk/x/bank/testutil"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"
	"github.com/stretchr/testify/require"

	creditkeeper "github.com/keel-chain/keel/x/credit/keeper"
	credittypes "github.com/keel-chain/keel/x/credit/types"
	guardkeeper "github.com/keel-chain/keel/x/guard/keeper"
	guardtypes "github.com/keel-chain/keel/x/guard/types"
	registrykeeper "github.com/keel-chain/keel/x/registry/keeper"
	registrytypes "github.com/keel-chain/keel/x/registry/types"
	settlementkeeper "github.com/keel-chain/keel/x/settlement/keeper"
	settlementtypes "github.com/keel-chain/keel/x/settlement/types"
)

// Fixture wires the full keeper graph against an in-memory multistore:
// auth and bank from the SDK plus the four keel modules, with the guard
// verifier swapped for the deterministic fixture verifier and the
// settlement module account allow-listed in the registry.
type Fixture struct {
	Ctx sdk.Context

	AccountKeeper authkeeper.AccountKeeper
	BankKeeper    bankkeeper.Keeper

	Registry   *registrykeeper.Keeper
	Credit     creditkeeper.Keeper
	Guard      *guardkeeper.Keeper
	Settlement *settlementkeeper.Keeper

	Authority string
}

// NewFixture builds the cross-module test fixture.
func NewFixture(t testing.TB) *Fixture {
	registryStoreKey := storetypes.NewKVStoreKey(registrytypes.StoreKey)
	creditStoreKey := storetypes.NewKVStoreKey(credittypes.StoreKey)
	guardStoreKey := storetypes.NewKVStoreKey(guardtypes.StoreKey)
	settlementStoreKey := storetypes.NewKVStoreKey(settlementtypes.StoreKey)
	authStoreKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankStoreKey := storetypes.NewKVStoreKey(banktypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(registryStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(creditStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(guardStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(settlementStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(authStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(bankStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	interfaceRegistry := codectypes.NewInterfaceRegistry()
	banktypes.RegisterInterfaces(interfaceRegistry)
	authtypes.RegisterInterfaces(interfaceRegistry)
	cdc := codec.NewProtoCodec(interfaceRegistry)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	maccPerms := map[string][]string{
		authtypes.FeeCollectorName: nil,
		minttypes.ModuleName:       {authtypes.Minter},
		credittypes.ModuleName:     nil,
		settlementtypes.ModuleName: nil,
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

	registryKeeper := registrykeeper.NewKeeper(cdc, registryStoreKey, authority.String())
	creditKeeper := creditkeeper.NewKeeper(cdc, creditStoreKey, bankKeeper, registryKeeper, authority.String())
	guardKeeper := guardkeeper.NewKeeper(cdc, guardStoreKey, &guardkeeper.FixtureVerifier{}, authority.String())
	settlementKeeper := settlementkeeper.NewKeeper(
		cdc,
		settlementStoreKey,
		bankKeeper,
		registryKeeper,
		guardKeeper,
		nil,
		authority.String(),
	)
	guardKeeper.SetActionExecutor(settlementKeeper)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: time.Unix(1_700_000_000, 0)}, false, log.NewNopLogger())

	registryKeeper.InitGenesis(ctx, *registrytypes.DefaultGenesis())
	creditKeeper.InitGenesis(ctx, *credittypes.DefaultGenesis())
	guardKeeper.InitGenesis(ctx, *guardtypes.DefaultGenesis())
	settlementKeeper.InitGenesis(ctx, *settlementtypes.DefaultGenesis())

	// The settlement router records settled volume under its own module
	// account, which must be allow-listed in the registry.
	registryKeeper.SetWhitelistedCaller(ctx, settlementKeeper.ModuleAddress())

	return &Fixture{
		Ctx:           ctx,
		AccountKeeper: accountKeeper,
		BankKeeper:    bankKeeper,
		Registry:      registryKeeper,
		Credit:        creditKeeper,
		Guard:         guardKeeper,
		Settlement:    settlementKeeper,
		Authority:     authority.String(),
	}
}

// FundAccount mints payment-denom coins and sends them to addr.
func (f *Fixture) FundAccount(t testing.TB, addr sdk.AccAddress, denom string, amount math.Int) {
	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	require.NoError(t, banktestutil.FundAccount(f.Ctx, f.BankKeeper, addr, coins))
}

// AdvanceTime moves the block time forward and returns the new context.
func (f *Fixture) AdvanceTime(d time.Duration) sdk.Context {
	f.Ctx = f.Ctx.WithBlockTime(f.Ctx.BlockTime().Add(d)).WithBlockHeight(f.Ctx.BlockHeight() + 1)
	return f.Ctx
}
