package types

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// BigInt is a raw integer amount in the chain's smallest unit, as the
// hosted API reports balances and transfer values.
type BigInt big.Int

// AmountHumanReadable is a decimal amount as a human expects it for readability.
type AmountHumanReadable decimal.Decimal

func (amount BigInt) String() string {
	bigInt := big.Int(amount)
	return bigInt.String()
}

// Int converts a BigInt into *big.Int
func (amount BigInt) Int() *big.Int {
	bigInt := big.Int(amount)
	return &bigInt
}

// Uint64 converts a BigInt into uint64
func (amount BigInt) Uint64() uint64 {
	bigInt := big.Int(amount)
	return bigInt.Uint64()
}

// Use the underlying big.Int.Cmp()
func (amount *BigInt) Cmp(other *BigInt) int {
	return amount.Int().Cmp(other.Int())
}

var zero = big.NewInt(0)

func (amount *BigInt) IsZero() bool {
	return amount.Int().Cmp(zero) == 0
}

func (amount *BigInt) ToHuman(decimals int32) AmountHumanReadable {
	dec := decimal.NewFromBigInt(amount.Int(), -decimals)
	return AmountHumanReadable(dec)
}

// NewBigIntFromUint64 creates a new BigInt from a uint64
func NewBigIntFromUint64(u64 uint64) BigInt {
	bigInt := new(big.Int).SetUint64(u64)
	return BigInt(*bigInt)
}

// NewBigIntFromStr parses a base-10 raw amount as the API serializes it.
func NewBigIntFromStr(str string) (BigInt, error) {
	bigInt, ok := new(big.Int).SetString(str, 10)
	if !ok {
		return BigInt{}, fmt.Errorf("invalid raw amount: %s", str)
	}
	return BigInt(*bigInt), nil
}

func (amount BigInt) MarshalJSON() ([]byte, error) {
	return []byte(`"` + amount.String() + `"`), nil
}

func (amount *BigInt) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) >= 2 && str[0] == '"' {
		str = str[1 : len(str)-1]
	}
	if str == "" || str == "null" {
		*amount = BigInt{}
		return nil
	}
	parsed, err := NewBigIntFromStr(str)
	if err != nil {
		return err
	}
	*amount = parsed
	return nil
}

func (amount AmountHumanReadable) Decimal() decimal.Decimal {
	return decimal.Decimal(amount)
}

func (amount AmountHumanReadable) String() string {
	return decimal.Decimal(amount).String()
}

// ToBlockchain converts a human decimal into the chain's smallest unit.
func (amount AmountHumanReadable) ToBlockchain(decimals int32) BigInt {
	raw := decimal.Decimal(amount).Shift(decimals).BigInt()
	return BigInt(*raw)
}

func NewAmountHumanReadableFromStr(str string) (AmountHumanReadable, error) {
	dec, err := decimal.NewFromString(str)
	return AmountHumanReadable(dec), err
}

func (amount AmountHumanReadable) MarshalJSON() ([]byte, error) {
	return []byte(`"` + amount.String() + `"`), nil
}

func (amount *AmountHumanReadable) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) >= 2 && str[0] == '"' {
		str = str[1 : len(str)-1]
	}
	dec, err := decimal.NewFromString(str)
	if err != nil {
		return err
	}
	*amount = AmountHumanReadable(dec)
	return nil
}
