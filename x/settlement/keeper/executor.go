package keeper

import (
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"

	guardtypes "github.com/keel-chain/keel/x/guard/types"

	"github.com/keel-chain/keel/x/settlement/types"
)

var _ guardtypes.ActionExecutor = (*Keeper)(nil)

// ExecuteAction implements the guard's strict-mode executor. The guard
// has already verified custody, nonce freshness and the inference proof,
// so the payload is decoded and settled without a second compliance
// check. The pause flag and listing state still apply.
func (k *Keeper) ExecuteAction(ctx sdk.Context, agent sdk.AccAddress, payload []byte) error {
	var instruction types.SettlementInstruction
	if err := json.Unmarshal(payload, &instruction); err != nil {
		return types.ErrInvalidActionPayload.Wrapf("decode: %s", err)
	}
	if err := instruction.Validate(); err != nil {
		return err
	}
	if k.IsPaused(ctx) {
		return types.ErrPaused
	}
	if ctx.BlockTime().Unix() > instruction.QuoteExpiry {
		return types.ErrQuoteExpired.Wrapf("expiry %d", instruction.QuoteExpiry)
	}
	listing, err := k.activeListing(ctx, instruction.AssetDenom)
	if err != nil {
		return err
	}
	auth, err := types.DecodeFundsAuthorization(instruction.AuthTag, instruction.AuthPayload)
	if err != nil {
		return err
	}
	_, _, _, err = k.executeSettlement(ctx, agent, listing, instruction.Amount, auth)
	return err
}
