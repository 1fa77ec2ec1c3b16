package types

import (
	"errors"
	"io"

	"github.com/ethereum/go-ethereum/rlp"
)

var (
	_ rlp.Encoder = Address{}
	_ rlp.Decoder = (*Address)(nil)
)

// Wire format: a single-element RLP list holding the raw 20-byte address.
//
//	0xd5 0x94 <20 bytes>

func (a Address) encode(w rlp.EncoderBuffer) {
	l := w.List()
	w.WriteBytes(a[:])
	w.ListEnd(l)
}

// EncodeRLP implements rlp.Encoder.
func (a Address) EncodeRLP(w io.Writer) error {
	buf := rlp.NewEncoderBuffer(w)
	a.encode(buf)
	return buf.Flush()
}

// DecodeRLP implements rlp.Decoder. The list must hold exactly one string
// element of exactly 20 bytes.
func (a *Address) DecodeRLP(s *rlp.Stream) error {
	if _, err := s.List(); err != nil {
		return malformed(err)
	}

	kind, _, err := s.Kind()
	if err != nil {
		// empty list ends up here with rlp.EOL
		return malformed(err)
	}
	if kind == rlp.List {
		return malformed(errors.New("address element is a list"))
	}

	payload, err := s.Bytes()
	if err != nil {
		return malformed(err)
	}
	if len(payload) != AddressLength {
		return lengthError(len(payload))
	}

	if err := s.ListEnd(); err != nil {
		return malformed(err)
	}

	copy(a[:], payload)
	return nil
}

// Encode returns the RLP wire form of a.
func (a Address) Encode() []byte {
	buf := rlp.NewEncoderBuffer(nil)
	a.encode(buf)
	return buf.ToBytes()
}

// DecodeAddress decodes the RLP wire form produced by Encode. Trailing bytes
// after the list are rejected. All failures are *CodecError.
func DecodeAddress(b []byte) (Address, error) {
	var a Address
	if err := rlp.DecodeBytes(b, &a); err != nil {
		var ce *CodecError
		if errors.As(err, &ce) {
			return Address{}, ce
		}
		return Address{}, malformed(err)
	}
	return a, nil
}
