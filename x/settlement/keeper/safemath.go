package keeper

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/keel-chain/keel/x/settlement/types"
)

var maxInt256 = new(big.Int).Exp(big.NewInt(2), big.NewInt(256), nil)

// SafeMul multiplies two math.Int values with overflow checking.
func SafeMul(a, b math.Int) (math.Int, error) {
	if a.IsZero() || b.IsZero() {
		return math.ZeroInt(), nil
	}
	result := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if result.Cmp(maxInt256) >= 0 {
		return math.Int{}, types.ErrInvalidParams.Wrap("multiplication result exceeds maximum value")
	}
	return math.NewIntFromBigInt(result), nil
}

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
