package keeper

import (
	"context"
	"encoding/json"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/keel-chain/keel/x/registry/types"
)

// GetPassport retrieves an agent's passport from the store
func (k Keeper) GetPassport(ctx context.Context, agent sdk.AccAddress) (*types.Passport, error) {
	store := k.getStore(ctx)
	bz := store.Get(PassportKey(agent))
	if bz == nil {
		return nil, types.ErrPassportNotFound.Wrapf("agent %s", agent.String())
	}

	var passport types.Passport
	if err := json.Unmarshal(bz, &passport); err != nil {
		return nil, types.ErrUnmarshalFailed.Wrapf("passport for %s: %v", agent.String(), err)
	}
	return &passport, nil
}

// HasPassport reports whether an agent holds a passport, active or not
func (k Keeper) HasPassport(ctx context.Context, agent sdk.AccAddress) bool {
	return k.getStore(ctx).Has(PassportKey(agent))
}

// SetPassport saves an agent's passport to the store
func (k Keeper) SetPassport(ctx context.Context, passport types.Passport) error {
	agent, err := sdk.AccAddressFromBech32(passport.Agent)
	if err != nil {
		return types.ErrInvalidAddress.Wrapf("passport agent: %v", err)
	}

	bz, err := json.Marshal(passport)
	if err != nil {
		return types.ErrMarshalFailed.Wrapf("passport for %s: %v", passport.Agent, err)
	}

	k.getStore(ctx).Set(PassportKey(agent), bz)
	return nil
}

// IteratePassports iterates over all passports until the callback returns stop
func (k Keeper) IteratePassports(ctx context.Context, cb func(passport types.Passport) (stop bool, err error)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PassportKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var passport types.Passport
		if err := json.Unmarshal(iterator.Value(), &passport); err != nil {
			return types.ErrUnmarshalFailed.Wrapf("passport at %x: %v", iterator.Key(), err)
		}
		stop, err := cb(passport)
		if err != nil {
			return err
		}
		if stop {
			break
		}
	}
	return nil
}

// GetAllPassports returns every passport in the store
func (k Keeper) GetAllPassports(ctx context.Context) ([]types.Passport, error) {
	var passports []types.Passport
	err := k.IteratePassports(ctx, func(passport types.Passport) (bool, error) {
		passports = append(passports, passport)
		return false, nil
	})
	return passports, err
}
