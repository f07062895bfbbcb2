package keeper

import (
	"encoding/hex"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	"github.com/keel-chain/keel/x/registry/keeper"
	"github.com/keel-chain/keel/x/registry/types"
)

// RegistryKeeper creates a standalone registry keeper for tests that do
// not need the full module graph.
func RegistryKeeper(t testing.TB) (*keeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	k := keeper.NewKeeper(cdc, storeKey, authority.String())

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())
	k.InitGenesis(ctx, *types.DefaultGenesis())

	return k, ctx
}

// RegisterTestAgent publishes a single-leaf membership root for the agent
// and self-registers its passport. Only one agent at a time can hold the
// root; call again for each agent under test.
func RegisterTestAgent(t testing.TB, k *keeper.Keeper, ctx sdk.Context, agent sdk.AccAddress) {
	leaf := types.DeriveIdentityCommitment(agent)
	require.NoError(t, k.SetMembershipRoot(ctx, leaf[:]))
	require.NoError(t, k.Register(ctx, agent, hex.EncodeToString(leaf[:]), types.MembershipProof{}))
}
