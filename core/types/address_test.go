package types

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const referenceAddress = "D32927BF9c8F54C5955Fa415eF9A045cC211125B"

func TestAddressText(t *testing.T) {
	t.Run("mixed case input, lowercase output", func(t *testing.T) {
		addr, err := ParseAddress(referenceAddress)
		require.NoError(t, err)
		assert.Equal(t, strings.ToLower(referenceAddress), addr.Text())
		assert.Equal(t, addr.Text(), addr.String())
		assert.Len(t, addr.Text(), 40)
	})

	t.Run("lowercase round trip", func(t *testing.T) {
		for _, s := range []string{
			"0000000000000000000000000000000000000000",
			"ffffffffffffffffffffffffffffffffffffffff",
			"d32927bf9c8f54c5955fa415ef9a045cc211125b",
			"0123456789abcdef0123456789abcdef01234567",
		} {
			addr, err := ParseAddress(s)
			require.NoError(t, err)
			assert.Equal(t, s, addr.Text())
		}
	})

	t.Run("checksummed hex", func(t *testing.T) {
		addr, err := ParseAddress("1be31a94361a391bbafb2a4ccd704f57dc04d4bb")
		require.NoError(t, err)
		assert.Equal(t, "0x1Be31A94361a391bBaFB2a4CCd704F57dc04d4bb", addr.Hex())
	})

	t.Run("length errors", func(t *testing.T) {
		for _, s := range []string{
			"",
			"d32927bf9c8f54c5955fa415ef9a045cc211125",
			"d32927bf9c8f54c5955fa415ef9a045cc211125b0",
			"0xd32927bf9c8f54c5955fa415ef9a045cc211125b",
		} {
			_, err := ParseAddress(s)
			require.Error(t, err, s)
			assert.ErrorIs(t, err, ErrInvalidHexLength)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, -1, pe.Pos)
		}
	})

	t.Run("character errors", func(t *testing.T) {
		tests := []struct {
			input string
			pos   int
		}{
			{"g32927bf9c8f54c5955fa415ef9a045cc211125b", 0},
			{"d32927bf9c8f54c5955fa415ef9a045cc211125z", 39},
			{"d32927bf9c8f54c5955f 415ef9a045cc211125b", 20},
			{"0x2927bf9c8f54c5955fa415ef9a045cc211125b", 1},
		}
		for _, test := range tests {
			_, err := ParseAddress(test.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidHexChar)
			assert.NotErrorIs(t, err, ErrInvalidHexLength)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, test.pos, pe.Pos)
			assert.Contains(t, pe.Error(), "position")
		}
	})

	t.Run("json", func(t *testing.T) {
		addr, err := ParseAddress(referenceAddress)
		require.NoError(t, err)

		data, err := json.Marshal(addr)
		require.NoError(t, err)
		assert.Equal(t, `"d32927bf9c8f54c5955fa415ef9a045cc211125b"`, string(data))

		var decoded Address
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, addr, decoded)

		err = json.Unmarshal([]byte(`"abc"`), &decoded)
		assert.ErrorIs(t, err, ErrInvalidHexLength)
	})
}

func TestBytesToAddress(t *testing.T) {
	b := bytes.Repeat([]byte{0xab}, 20)
	addr, err := BytesToAddress(b)
	require.NoError(t, err)
	assert.Equal(t, b, addr.Bytes())

	for _, n := range []int{0, 19, 21, 32} {
		_, err := BytesToAddress(make([]byte, n))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidLength)

		var ce *CodecError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, 20, ce.Expected)
		assert.Equal(t, n, ce.Actual)
	}
}

func TestAddressCommon(t *testing.T) {
	c := common.HexToAddress("0x" + referenceAddress)
	addr := AddressFromCommon(c)
	assert.Equal(t, c.Bytes(), addr.Bytes())
	assert.Equal(t, c, addr.Common())
}

func TestAddressRLP(t *testing.T) {
	t.Run("reference round trip", func(t *testing.T) {
		addr, err := ParseAddress(referenceAddress)
		require.NoError(t, err)

		encoded := addr.Encode()
		decoded, err := DecodeAddress(encoded)
		require.NoError(t, err)
		assert.Equal(t, addr, decoded)
	})

	t.Run("wire layout", func(t *testing.T) {
		addr, err := ParseAddress(referenceAddress)
		require.NoError(t, err)

		want := append([]byte{0xd5, 0x94}, addr.Bytes()...)
		assert.Equal(t, want, addr.Encode())

		viaRLP, err := rlp.EncodeToBytes(addr)
		require.NoError(t, err)
		assert.Equal(t, want, viaRLP)

		var buf bytes.Buffer
		require.NoError(t, addr.EncodeRLP(&buf))
		assert.Equal(t, want, buf.Bytes())
	})

	t.Run("round trip many", func(t *testing.T) {
		var addr Address
		for i := 0; i < 64; i++ {
			for j := range addr {
				addr[j] = byte(i*31 + j*7)
			}
			decoded, err := DecodeAddress(addr.Encode())
			require.NoError(t, err)
			assert.Equal(t, addr, decoded)
		}
		decoded, err := DecodeAddress(Address{}.Encode())
		require.NoError(t, err)
		assert.Equal(t, Address{}, decoded)
	})

	t.Run("embedded in a struct", func(t *testing.T) {
		type envelope struct {
			Nonce uint64
			From  Address
		}
		in := envelope{Nonce: 7, From: Address{1, 2, 3}}
		data, err := rlp.EncodeToBytes(in)
		require.NoError(t, err)

		var out envelope
		require.NoError(t, rlp.DecodeBytes(data, &out))
		assert.Equal(t, in, out)
	})
}

func TestDecodeAddressErrors(t *testing.T) {
	listOf := func(items ...interface{}) []byte {
		b, err := rlp.EncodeToBytes(items)
		require.NoError(t, err)
		return b
	}

	t.Run("wrong payload length", func(t *testing.T) {
		for _, n := range []int{0, 1, 19, 21, 32} {
			_, err := DecodeAddress(listOf(make([]byte, n)))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidLength, "payload of %d bytes", n)

			var ce *CodecError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, 20, ce.Expected)
			assert.Equal(t, n, ce.Actual)
		}
	})

	malformedInputs := map[string][]byte{
		"empty input":         {},
		"empty list":          {0xc0},
		"bare string":         mustHex(t, "94d32927bf9c8f54c5955fa415ef9a045cc211125b"),
		"nested list":         listOf([]interface{}{make([]byte, 20)}),
		"two elements":        listOf(make([]byte, 20), make([]byte, 20)),
		"trailing bytes":      append(listOf(make([]byte, 20)), 0x00),
		"truncated payload":   mustHex(t, "d594d32927bf9c8f54c5955fa415ef9a045cc211"),
		"list size too large": mustHex(t, "d694d32927bf9c8f54c5955fa415ef9a045cc211125b"),
	}
	for name, input := range malformedInputs {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeAddress(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedContainer)
			assert.NotErrorIs(t, err, ErrInvalidLength)

			var ce *CodecError
			assert.True(t, errors.As(err, &ce))
		})
	}
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}
