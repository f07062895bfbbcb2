package api

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	creditkeeper "github.com/keel-chain/keel/x/credit/keeper"
	credittypes "github.com/keel-chain/keel/x/credit/types"
	registrykeeper "github.com/keel-chain/keel/x/registry/keeper"
	registrytypes "github.com/keel-chain/keel/x/registry/types"
	settlementkeeper "github.com/keel-chain/keel/x/settlement/keeper"
	settlementtypes "github.com/keel-chain/keel/x/settlement/types"
)

// MarketService exposes the settlement module's read surface.
type MarketService interface {
	Listings() []settlementtypes.AssetListing
	Listing(denom string) (settlementtypes.AssetListing, bool)
	Inventory(denom string) math.Int
	Quote(denom string, amount math.Int) (settlementtypes.Quote, error)
	Paused() bool
}

// AgentService exposes passport, eligibility and credit reads for a
// single agent.
type AgentService interface {
	Passport(agent sdk.AccAddress) (*registrytypes.Passport, error)
	Eligibility(agent sdk.AccAddress) (bool, string)
	Verified(agent sdk.AccAddress) bool
	CreditLimit(agent sdk.AccAddress) math.Int
	Debt(agent sdk.AccAddress) math.Int
	HealthFactor(agent sdk.AccAddress) (math.Int, bool)
}

// VaultService exposes the lending vault aggregates.
type VaultService interface {
	VaultStats() credittypes.VaultState
}

// KeeperBackend serves the gateway straight from module keepers. The
// context provider returns a query context for the latest committed
// state, so the backend works against a node or a test fixture alike.
type KeeperBackend struct {
	ctx        func() sdk.Context
	registry   *registrykeeper.Keeper
	credit     creditkeeper.Keeper
	settlement *settlementkeeper.Keeper
}

var (
	_ MarketService = (*KeeperBackend)(nil)
	_ AgentService  = (*KeeperBackend)(nil)
	_ VaultService  = (*KeeperBackend)(nil)
)

// NewKeeperBackend wires the gateway services to live keepers.
func NewKeeperBackend(
	ctx func() sdk.Context,
	registry *registrykeeper.Keeper,
	credit creditkeeper.Keeper,
	settlement *settlementkeeper.Keeper,
) *KeeperBackend {
	return &KeeperBackend{
		ctx:        ctx,
		registry:   registry,
		credit:     credit,
		settlement: settlement,
	}
}

func (b *KeeperBackend) Listings() []settlementtypes.AssetListing {
	return b.settlement.GetAllListings(b.ctx())
}

func (b *KeeperBackend) Listing(denom string) (settlementtypes.AssetListing, bool) {
	return b.settlement.GetListing(b.ctx(), denom)
}

func (b *KeeperBackend) Inventory(denom string) math.Int {
	return b.settlement.Inventory(b.ctx(), denom)
}

func (b *KeeperBackend) Quote(denom string, amount math.Int) (settlementtypes.Quote, error) {
	return b.settlement.GetQuote(b.ctx(), denom, amount)
}

func (b *KeeperBackend) Paused() bool {
	return b.settlement.IsPaused(b.ctx())
}

func (b *KeeperBackend) Passport(agent sdk.AccAddress) (*registrytypes.Passport, error) {
	return b.registry.GetPassport(b.ctx(), agent)
}

func (b *KeeperBackend) Eligibility(agent sdk.AccAddress) (bool, string) {
	return b.registry.CheckEligibilityWithReason(b.ctx(), agent)
}

func (b *KeeperBackend) Verified(agent sdk.AccAddress) bool {
	return b.registry.IsAgentVerified(b.ctx(), agent)
}

func (b *KeeperBackend) CreditLimit(agent sdk.AccAddress) math.Int {
	return b.credit.GetCreditLimit(b.ctx(), agent)
}

func (b *KeeperBackend) Debt(agent sdk.AccAddress) math.Int {
	return b.credit.GetDebt(b.ctx(), agent)
}

func (b *KeeperBackend) HealthFactor(agent sdk.AccAddress) (math.Int, bool) {
	return b.credit.GetHealthFactor(b.ctx(), agent)
}

func (b *KeeperBackend) VaultStats() credittypes.VaultState {
	return b.credit.GetVaultStats(b.ctx())
}
