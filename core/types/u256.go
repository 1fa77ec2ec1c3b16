package types

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
)

// U256 is a 256-bit unsigned integer as four little-endian 64-bit limbs
// (limb 0 is least significant). Same layout as uint256.Int.
type U256 [4]uint64

// U256FromUint64 returns v as a U256.
func U256FromUint64(v uint64) U256 {
	return U256{v}
}

// U256FromBig converts b. Negative values and values above 2^256-1 are rejected.
func U256FromBig(b *big.Int) (U256, error) {
	if b == nil {
		return U256{}, nil
	}
	if b.Sign() < 0 {
		return U256{}, fmt.Errorf("negative value %s", b)
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		return U256{}, fmt.Errorf("value %s overflows 256 bits", b)
	}
	return U256(*v), nil
}

// Uint256 returns u as a uint256.Int.
func (u U256) Uint256() *uint256.Int {
	v := uint256.Int(u)
	return &v
}

func (u U256) Big() *big.Int { return u.Uint256().ToBig() }

func (u U256) IsZero() bool { return u == U256{} }

func (u U256) String() string { return u.Uint256().Dec() }
