package types

import "github.com/ethereumspace/ic-eth-recover/crypto"

type messageKind uint8

const (
	messageData messageKind = iota
	messageHash
)

// RecoveryMessage is what a signature is recovered against: either raw
// message bytes (hashed under the personal-message convention first) or a
// ready digest (used verbatim). The zero value is Data(nil).
type RecoveryMessage struct {
	kind messageKind
	data []byte
	hash Hash
}

// MessageData wraps raw message bytes.
func MessageData(data []byte) RecoveryMessage {
	return RecoveryMessage{kind: messageData, data: data}
}

// MessageHash wraps a digest that must not be re-hashed.
func MessageHash(h Hash) RecoveryMessage {
	return RecoveryMessage{kind: messageHash, hash: h}
}

// FromBytes always yields the Data variant, even for 32-byte input.
func FromBytes(b []byte) RecoveryMessage { return MessageData(b) }

// IsHash reports whether m is the Hash variant.
func (m RecoveryMessage) IsHash() bool { return m.kind == messageHash }

// Data returns the raw bytes of a Data message, nil for a Hash message.
func (m RecoveryMessage) Data() []byte {
	if m.kind != messageData {
		return nil
	}
	return m.data
}

// Hash returns the digest of a Hash message and false for a Data message.
func (m RecoveryMessage) Hash() (Hash, bool) {
	if m.kind != messageHash {
		return Hash{}, false
	}
	return m.hash, true
}

// Digest resolves the 32 bytes the recovery primitive signs over.
func (m RecoveryMessage) Digest() Hash {
	switch m.kind {
	case messageHash:
		return m.hash
	default:
		return Hash(crypto.HashMessage(m.data))
	}
}
