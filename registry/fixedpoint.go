package registry

import (
	"errors"
	"fmt"
	"math/big"

	"cosmossdk.io/math"
	"github.com/shopspring/decimal"

	"github.com/margined-protocol/mrgnd-perpetuals/cosmwasm-schema/vamm"
)

const (
	// DefaultDecimals is the token precision of every built-in environment.
	// Ratios and fees are integers at Scale(decimals), so "62500" is 0.0625 with 6 decimals.
	DefaultDecimals = 6
	MaxDecimals     = 18

	// maxBitLen matches the width of math.Uint
	maxBitLen = 256
)

// Scale returns 10^decimals, the fixed-point unit of a value with the given precision.
func Scale(decimals int) math.Uint {
	if decimals < 0 {
		decimals = 0
	}
	return math.NewUintFromBigInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
}

// ParseAmount parses a fixed-point string: base-10 digits only, no sign, at most 256 bits.
func ParseAmount(s string) (math.Uint, error) {
	if s == "" {
		return math.Uint{}, errors.New("empty amount")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return math.Uint{}, fmt.Errorf("%q is not a base-10 unsigned integer", s)
		}
	}

	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return math.Uint{}, fmt.Errorf("%q is not a base-10 unsigned integer", s)
	}
	if i.BitLen() > maxBitLen {
		return math.Uint{}, fmt.Errorf("%q overflows %d bits", s, maxBitLen)
	}
	return math.NewUintFromBigInt(i), nil
}

// Fraction converts a fixed-point string to its decimal value, Fraction("62500", 6) is 0.0625.
func Fraction(s string, decimals int) (decimal.Decimal, error) {
	amount, err := ParseAmount(s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromBigInt(amount.BigInt(), -int32(decimals)), nil
}

// ConstantProduct is the vamm invariant k = quote_asset_reserve * base_asset_reserve.
func ConstantProduct(msg vamm.InstantiateMsg) (math.Uint, error) {
	quote, base, err := reserves(msg)
	if err != nil {
		return math.Uint{}, err
	}

	k := new(big.Int).Mul(quote.BigInt(), base.BigInt())
	if k.BitLen() > maxBitLen {
		return math.Uint{}, fmt.Errorf("constant product overflows %d bits", maxBitLen)
	}
	return math.NewUintFromBigInt(k), nil
}

// InitialPrice is the quote price of one base asset implied by the reserves.
func InitialPrice(msg vamm.InstantiateMsg) (decimal.Decimal, error) {
	quote, base, err := reserves(msg)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if base.IsZero() {
		return decimal.Decimal{}, errors.New("base asset reserve is zero")
	}
	return decimal.NewFromBigInt(quote.BigInt(), 0).Div(decimal.NewFromBigInt(base.BigInt(), 0)), nil
}

func reserves(msg vamm.InstantiateMsg) (math.Uint, math.Uint, error) {
	quote, err := ParseAmount(msg.QuoteAssetReserve)
	if err != nil {
		return math.Uint{}, math.Uint{}, fmt.Errorf("quote_asset_reserve: %w", err)
	}
	base, err := ParseAmount(msg.BaseAssetReserve)
	if err != nil {
		return math.Uint{}, math.Uint{}, fmt.Errorf("base_asset_reserve: %w", err)
	}
	return quote, base, nil
}
