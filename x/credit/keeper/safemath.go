package keeper

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/keel-chain/keel/x/credit/types"
)

var maxInt256 = new(big.Int).Exp(big.NewInt(2), big.NewInt(256), nil)

// SafeAdd adds two math.Int values with overflow checking.
func SafeAdd(a, b math.Int) (math.Int, error) {
	result := new(big.Int).Add(a.BigInt(), b.BigInt())
	if result.Cmp(maxInt256) >= 0 {
		return math.Int{}, types.ErrArithmeticOverflow.Wrap("addition result exceeds maximum value")
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeSub subtracts b from a with underflow checking.
func SafeSub(a, b math.Int) (math.Int, error) {
	if a.LT(b) {
		return math.Int{}, types.ErrArithmeticOverflow.Wrapf("cannot subtract %s from %s", b, a)
	}
	return math.NewIntFromBigInt(new(big.Int).Sub(a.BigInt(), b.BigInt())), nil
}

// SafeMul multiplies two math.Int values with overflow checking.
func SafeMul(a, b math.Int) (math.Int, error) {
	if a.IsZero() || b.IsZero() {
		return math.ZeroInt(), nil
	}
	result := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if result.Cmp(maxInt256) >= 0 {
		return math.Int{}, types.ErrArithmeticOverflow.Wrap("multiplication result exceeds maximum value")
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeMulDiv performs (a * b) / c with overflow protection on the
// intermediate product. Used for share and interest calculations.
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsZero() {
		return math.Int{}, types.ErrDivisionByZero
	}
	intermediate := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if intermediate.Cmp(maxInt256) >= 0 {
		return math.Int{}, types.ErrArithmeticOverflow.Wrap("overflow in multiplication step")
	}
	return math.NewIntFromBigInt(new(big.Int).Div(intermediate, c.BigInt())), nil
}
