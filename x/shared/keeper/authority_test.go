package keeper_test

import (
	"testing"

	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	"github.com/keel-chain/keel/x/shared/keeper"
)

func TestValidateAuthority(t *testing.T) {
	require.NoError(t, keeper.ValidateAuthority("keel1gov", "keel1gov"))

	err := keeper.ValidateAuthority("keel1gov", "keel1other")
	require.ErrorIs(t, err, govtypes.ErrInvalidSigner)

	require.Error(t, keeper.ValidateAuthority("keel1gov", ""))
}
