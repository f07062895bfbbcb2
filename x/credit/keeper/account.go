package keeper

import (
	"encoding/json"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keel-chain/keel/x/credit/types"
)

// GetCreditAccount returns the agent's credit account and whether it exists.
func (k Keeper) GetCreditAccount(ctx sdk.Context, agent sdk.AccAddress) (types.CreditAccount, bool) {
	store := k.getStore(ctx)
	bz := store.Get(AccountKey(agent))
	if bz == nil {
		return types.CreditAccount{}, false
	}
	var acct types.CreditAccount
	if err := json.Unmarshal(bz, &acct); err != nil {
		k.Logger(ctx).Error("corrupt credit account", "agent", agent.String(), "error", err)
		return types.CreditAccount{}, false
	}
	return acct, true
}

// SetCreditAccount writes the account, or deletes it when it is empty so
// settled positions do not linger in state.
func (k Keeper) SetCreditAccount(ctx sdk.Context, acct types.CreditAccount) error {
	agent, err := sdk.AccAddressFromBech32(acct.Agent)
	if err != nil {
		return types.ErrInvalidAddress.Wrapf("agent: %s", err)
	}
	store := k.getStore(ctx)
	if acct.IsEmpty() {
		store.Delete(AccountKey(agent))
		return nil
	}
	bz, err := json.Marshal(acct)
	if err != nil {
		return types.ErrMarshalFailed.Wrapf("credit account: %s", err)
	}
	store.Set(AccountKey(agent), bz)
	return nil
}

// IterateCreditAccounts calls cb for each stored account until cb returns true.
func (k Keeper) IterateCreditAccounts(ctx sdk.Context, cb func(types.CreditAccount) bool) {
	store := k.getStore(ctx)
	iterator := store.Iterator(AccountKeyPrefix, storetypes.PrefixEndBytes(AccountKeyPrefix))
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var acct types.CreditAccount
		if err := json.Unmarshal(iterator.Value(), &acct); err != nil {
			continue
		}
		if cb(acct) {
			break
		}
	}
}

// GetAllCreditAccounts returns every stored credit account.
func (k Keeper) GetAllCreditAccounts(ctx sdk.Context) []types.CreditAccount {
	var accounts []types.CreditAccount
	k.IterateCreditAccounts(ctx, func(acct types.CreditAccount) bool {
		accounts = append(accounts, acct)
		return false
	})
	return accounts
}
