// Package keeper provides shared keeper utilities for cross-module use.
package keeper

import (
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
)

// ValidateAuthority checks that the provided authority matches the expected
// authority. Every admin operation (parameter updates, membership root
// rotation, asset listing, pause) is gated through this check.
//
// Returns govtypes.ErrInvalidSigner on mismatch, nil otherwise.
func ValidateAuthority(expected, actual string) error {
	if expected != actual {
		return govtypes.ErrInvalidSigner.Wrapf(
			"invalid authority; expected %s, got %s",
			expected,
			actual,
		)
	}
	return nil
}
