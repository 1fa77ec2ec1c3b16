package types

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/ethereumspace/ic-eth-recover/crypto"
)

const (
	// SignatureLength is the r || s || v wire form with a one byte v.
	SignatureLength = 65

	// UncompressedPubKeyLength is 0x04 || X || Y.
	UncompressedPubKeyLength = 65

	legacyVOffset  = 27
	eip155VOffset  = 35
	compactMagic   = 27 // decred compact signature header offset
	compactPubComp = 4  // header flag: recovered key is compressed
)

// Signature is a recoverable secp256k1 ECDSA signature. V may follow the raw
// (0/1), legacy (27/28) or EIP-155 (>= 35) convention.
type Signature struct {
	R [32]byte `json:"r"`
	S [32]byte `json:"s"`
	V uint64   `json:"v"`
}

// SignatureFromBytes parses the 65 byte r || s || v form.
func SignatureFromBytes(b []byte) (Signature, error) {
	var sig Signature
	if len(b) != SignatureLength {
		return sig, fmt.Errorf("invalid signature length: expected %d bytes, got %d", SignatureLength, len(b))
	}
	copy(sig.R[:], b[:32])
	copy(sig.S[:], b[32:64])
	sig.V = uint64(b[64])
	return sig, nil
}

// Bytes returns the 65 byte r || s || v form. V must fit in one byte, which
// rules out EIP-155 values for most chains.
func (sig Signature) Bytes() ([]byte, error) {
	if sig.V > 0xff {
		return nil, fmt.Errorf("v %d does not fit the 65 byte signature form", sig.V)
	}
	out := make([]byte, SignatureLength)
	copy(out[:32], sig.R[:])
	copy(out[32:64], sig.S[:])
	out[64] = byte(sig.V)
	return out, nil
}

// ChainID returns the chain id encoded in an EIP-155 v. ok is false for raw
// and legacy values.
func (sig Signature) ChainID() (id uint64, ok bool) {
	if sig.V < eip155VOffset {
		return 0, false
	}
	return (sig.V - eip155VOffset) / 2, true
}

// --------------------------------------------------------
// Recovery id
// --------------------------------------------------------

// NormalizeRecoveryID maps a wire level v to the 0/1 recovery id:
//
//	0, 1   -> 0, 1
//	27, 28 -> 0, 1
//	>= 35  -> (v - 1) mod 2   (chain id is dropped)
//
// Everything else is rejected.
func NormalizeRecoveryID(v uint64) (byte, error) {
	switch {
	case v == 0 || v == 1:
		return byte(v), nil
	case v == legacyVOffset || v == legacyVOffset+1:
		return byte(v - legacyVOffset), nil
	case v >= eip155VOffset:
		return byte((v - 1) % 2), nil
	default:
		return 0, recoveryError(ErrInvalidRecoveryID, nil, "v=%d", v)
	}
}

// --------------------------------------------------------
// Recovery
// --------------------------------------------------------

// Recover returns the address of the key that produced sig over msg.
func (sig Signature) Recover(msg RecoveryMessage) (Address, error) {
	pub, err := sig.RecoverPublicKey(msg)
	if err != nil {
		return Address{}, err
	}
	return PublicKeyToAddress(pub)
}

// RecoverPublicKey returns the 65 byte uncompressed public key that produced
// sig over msg.
func (sig Signature) RecoverPublicKey(msg RecoveryMessage) ([]byte, error) {
	digest := msg.Digest()

	recID, err := NormalizeRecoveryID(sig.V)
	if err != nil {
		return nil, err
	}

	compact, err := sig.compact(recID)
	if err != nil {
		return nil, err
	}

	candidate, err := recoverCompressed(compact, digest)
	if err != nil {
		return nil, err
	}

	return decompress(candidate)
}

// compact validates r and s and lays them out in decred's compact form:
// header || r || s, header = 27 + 4 + recid.
func (sig Signature) compact(recID byte) ([]byte, error) {
	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(sig.R[:]); overflow {
		return nil, recoveryError(ErrInvalidSignatureScalar, nil, "r is not below the curve order")
	}
	if r.IsZero() {
		return nil, recoveryError(ErrInvalidSignatureScalar, nil, "r is zero")
	}
	if overflow := s.SetByteSlice(sig.S[:]); overflow {
		return nil, recoveryError(ErrInvalidSignatureScalar, nil, "s is not below the curve order")
	}
	if s.IsZero() {
		return nil, recoveryError(ErrInvalidSignatureScalar, nil, "s is zero")
	}

	out := make([]byte, 1+32+32)
	out[0] = compactMagic + compactPubComp + recID
	copy(out[1:33], sig.R[:])
	copy(out[33:65], sig.S[:])
	return out, nil
}

func recoverCompressed(compact []byte, digest Hash) ([]byte, error) {
	pub, compressed, err := ecdsa.RecoverCompact(compact, digest[:])
	if err != nil {
		return nil, recoveryError(ErrPublicKeyRecoveryFailed, err, "digest %s", digest)
	}
	if !compressed {
		return nil, recoveryError(ErrPublicKeyRecoveryFailed, nil, "unexpected uncompressed candidate")
	}
	return pub.SerializeCompressed(), nil
}

func decompress(compressed []byte) ([]byte, error) {
	pub, err := secp256k1.ParsePubKey(compressed)
	if err != nil {
		return nil, recoveryError(ErrPublicKeyDecompressionFailed, err, "")
	}
	return pub.SerializeUncompressed(), nil
}

// PublicKeyToAddress derives the address of a 65 byte uncompressed public key:
// the last 20 bytes of keccak256(X || Y).
func PublicKeyToAddress(pub []byte) (Address, error) {
	if len(pub) != UncompressedPubKeyLength || pub[0] != 0x04 {
		return Address{}, recoveryError(ErrPublicKeyDecompressionFailed, nil, "not an uncompressed public key (%d bytes)", len(pub))
	}
	h := crypto.Keccak256(pub[1:])

	var a Address
	copy(a[:], h[HashLength-AddressLength:])
	return a, nil
}

// RecoverAddress recovers from a 65 byte r || s || v signature over a digest.
func RecoverAddress(digest Hash, sig []byte) (Address, error) {
	s, err := SignatureFromBytes(sig)
	if err != nil {
		return Address{}, recoveryError(ErrInvalidSignatureScalar, err, "")
	}
	return s.Recover(MessageHash(digest))
}
