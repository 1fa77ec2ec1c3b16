package types

import (
	"encoding/hex"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ethereumspace/ic-eth-recover/crypto"
)

// HashLength is the size of a message or signed-message digest.
const HashLength = 32

// Hash is an opaque 32-byte digest.
type Hash [HashLength]byte

func (h Hash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

func (h Hash) Bytes() []byte { return h[:] }

// Common returns h as a go-ethereum hash.
func (h Hash) Common() common.Hash { return common.Hash(h) }

// BytesToHash copies b into a Hash. b must be exactly 32 bytes.
func BytesToHash(b []byte) (Hash, error) {
	var h Hash
	if len(b) != HashLength {
		return h, fmt.Errorf("invalid hash length: expected %d bytes, got %d", HashLength, len(b))
	}
	copy(h[:], b)
	return h, nil
}

// HashBytes returns the Keccak-256 digest of data.
func HashBytes(data []byte) Hash {
	return Hash(crypto.Keccak256(data))
}
