package crypto

import (
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

// SignedMessagePrefix is prepended (together with the decimal message length)
// to every personal message before hashing.
const SignedMessagePrefix = "\x19Ethereum Signed Message:\n"

// Keccak256 returns the legacy Keccak-256 digest of the concatenated inputs.
// This is NOT SHA3-256: the padding differs and addresses are defined against Keccak.
func Keccak256(data ...[]byte) [32]byte {
	var out [32]byte

	h := sha3.NewLegacyKeccak256()
	for _, b := range data {
		h.Write(b)
	}
	h.Sum(out[:0])

	return out
}

// Keccak256Hash is Keccak256 returned as a go-ethereum hash.
func Keccak256Hash(data ...[]byte) common.Hash {
	return common.Hash(Keccak256(data...))
}

// HashMessage hashes msg under the personal-message convention:
//
//	keccak256("\x19Ethereum Signed Message:\n" + len(msg) + msg)
func HashMessage(msg []byte) [32]byte {
	h, _ := TextAndHash(msg)
	return h
}

// TextAndHash returns the personal-message digest together with the framed
// text that was hashed.
func TextAndHash(msg []byte) ([32]byte, string) {
	framed := make([]byte, 0, len(SignedMessagePrefix)+20+len(msg))
	framed = append(framed, SignedMessagePrefix...)
	framed = strconv.AppendInt(framed, int64(len(msg)), 10)
	framed = append(framed, msg...)

	return Keccak256(framed), string(framed)
}
