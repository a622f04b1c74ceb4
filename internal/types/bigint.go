package types

import (
	"fmt"
	"math/big"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// BigInt is an arbitrary-precision integer that serializes as a decimal string
// in both JSON and BSON. Token amounts and vault nonces exceed 64 bits, so they
// must survive persistence and transport without truncation.
type BigInt struct {
	value *big.Int
}

func NewBigInt(v *big.Int) BigInt {
	return BigInt{value: new(big.Int).Set(v)}
}

func NewBigIntFromInt64(v int64) BigInt {
	return BigInt{value: big.NewInt(v)}
}

// NewBigIntFromString parses a base-10 string into a BigInt.
func NewBigIntFromString(s string) (BigInt, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return BigInt{}, fmt.Errorf("invalid decimal integer: %q", s)
	}
	return BigInt{value: v}, nil
}

// Int returns a copy of the underlying value. A zero BigInt yields 0.
func (b BigInt) Int() *big.Int {
	if b.value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(b.value)
}

func (b BigInt) String() string {
	if b.value == nil {
		return "0"
	}
	return b.value.String()
}

func (b BigInt) Cmp(other BigInt) int {
	return b.Int().Cmp(other.Int())
}

func (b BigInt) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.String() + `"`), nil
}

func (b *BigInt) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := NewBigIntFromString(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

func (b BigInt) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(b.String())
}

func (b *BigInt) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	var s string
	if err := bson.UnmarshalValue(t, data, &s); err != nil {
		return err
	}
	parsed, err := NewBigIntFromString(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
