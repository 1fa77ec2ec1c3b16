package types

import (
	"encoding/hex"

	"github.com/ethereum/go-ethereum/common"
)

// AddressLength is the size of an account address.
const AddressLength = 20

// Address is the last 20 bytes of the Keccak-256 hash of an uncompressed
// public key. Equality is byte-wise.
type Address [AddressLength]byte

// BytesToAddress copies b into an Address. b must be exactly 20 bytes; it is
// never truncated or padded.
func BytesToAddress(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressLength {
		return a, lengthError(len(b))
	}
	copy(a[:], b)
	return a, nil
}

// AddressFromCommon converts a go-ethereum address.
func AddressFromCommon(a common.Address) Address { return Address(a) }

// Common returns a as a go-ethereum address.
func (a Address) Common() common.Address { return common.Address(a) }

func (a Address) Bytes() []byte { return a[:] }

// Text returns the 40 character lowercase hex form without 0x prefix.
func (a Address) Text() string {
	return hex.EncodeToString(a[:])
}

func (a Address) String() string { return a.Text() }

// Hex returns the 0x-prefixed EIP-55 checksummed form.
func (a Address) Hex() string { return a.Common().Hex() }

// ParseAddress parses exactly 40 hex characters (either case, no prefix).
func ParseAddress(s string) (Address, error) {
	var a Address
	if len(s) != AddressLength*2 {
		return a, &ParseError{Kind: ErrInvalidHexLength, Input: s, Pos: -1}
	}
	for i := 0; i < len(s); i++ {
		if !isHexChar(s[i]) {
			return a, &ParseError{Kind: ErrInvalidHexChar, Input: s, Pos: i}
		}
	}
	// all characters checked above
	if _, err := hex.Decode(a[:], []byte(s)); err != nil {
		return Address{}, &ParseError{Kind: ErrInvalidHexChar, Input: s, Pos: 0}
	}
	return a, nil
}

func isHexChar(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.Text()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
