package keeper

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/keel-chain/keel/x/guard/types"
)

var maxInt256 = new(big.Int).Exp(big.NewInt(2), big.NewInt(256), nil)

// SafeMulDiv performs (a * b) / c with overflow protection on the
// intermediate product.
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsZero() {
		return math.Int{}, types.ErrInvalidParams.Wrap("division by zero")
	}
	intermediate := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if intermediate.Cmp(maxInt256) >= 0 {
		return math.Int{}, types.ErrInvalidParams.Wrap("overflow in multiplication step")
	}
	return math.NewIntFromBigInt(new(big.Int).Div(intermediate, c.BigInt())), nil
}

// SafeAddUint64 adds two uint64 values with overflow checking.
func SafeAddUint64(a, b uint64) (uint64, error) {
	if a > (1<<64-1)-b {
		return 0, types.ErrInvalidParams.Wrap("uint64 addition overflow")
	}
	return a + b, nil
}
