package polkadot

import (
	"bytes"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"

	"github.com/openweb3-io/chaindata/types"
)

// ss58Prefix is the checksum domain separator defined by the SS58 format.
var ss58Prefix = []byte("SS58PRE")

// decodeSS58 decodes an SS58-encoded address and returns the 32-byte
// account id. Network prefixes of one and two bytes are accepted.
func decodeSS58(address string) ([]byte, error) {
	raw, err := base58.Decode(address)
	if err != nil {
		return nil, err
	}
	if len(raw) < 3 {
		return nil, fmt.Errorf("ss58 payload too short")
	}

	var prefixLen int
	switch {
	case raw[0] < 64:
		prefixLen = 1
	case raw[0] < 128:
		prefixLen = 2
	default:
		return nil, fmt.Errorf("reserved ss58 network prefix %d", raw[0])
	}
	if len(raw) < prefixLen+32+2 {
		return nil, fmt.Errorf("ss58 payload too short for account id")
	}

	body := raw[:len(raw)-2]
	checksum := raw[len(raw)-2:]
	hash := blake2b.Sum512(append(append([]byte{}, ss58Prefix...), body...))
	if !bytes.Equal(checksum, hash[:2]) {
		return nil, fmt.Errorf("ss58 checksum mismatch")
	}
	return body[prefixLen:], nil
}

func validateAddress(address types.Address) error {
	if _, err := decodeSS58(string(address)); err != nil {
		return types.WrapErr(types.ErrInvalidAddress, err)
	}
	return nil
}
