package xrpl

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/openweb3-io/chaindata/types"
)

// rippleAlphabet is the base58 dictionary used by the XRP Ledger.
const rippleAlphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

var rippleDecoder = base58.NewAlphabet(rippleAlphabet)

// decodeClassicAddress decodes a classic r-address and returns the 20-byte
// account id. X-addresses are rejected; the hosted API expects classic form.
func decodeClassicAddress(address string) ([]byte, error) {
	raw, err := base58.DecodeAlphabet(address, rippleDecoder)
	if err != nil {
		return nil, err
	}
	if len(raw) != 25 {
		return nil, fmt.Errorf("classic address payload is %d bytes, want 25", len(raw))
	}
	if raw[0] != 0x00 {
		return nil, fmt.Errorf("not an account-id type prefix: %#x", raw[0])
	}
	body := raw[:21]
	checksum := raw[21:]
	first := sha256.Sum256(body)
	second := sha256.Sum256(first[:])
	if !bytes.Equal(checksum, second[:4]) {
		return nil, fmt.Errorf("address checksum mismatch")
	}
	return body[1:], nil
}

func validateAddress(address types.Address) error {
	if _, err := decodeClassicAddress(string(address)); err != nil {
		return types.WrapErr(types.ErrInvalidAddress, err)
	}
	return nil
}
