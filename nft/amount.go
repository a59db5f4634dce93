package nft

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a human readable amount into base units of a token
// with the given decimals, "1.5" with 18 decimals is 1500000000000000000.
func ParseAmount(s string, decimals int32) (*big.Int, error) {
	if decimals < 0 || decimals > 77 {
		return nil, fmt.Errorf("invalid decimals %d", decimals)
	}
	amt, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %s", s)
	}
	units := amt.Shift(decimals)
	if !units.Equal(units.Truncate(0)) {
		return nil, fmt.Errorf("invalid amount %s with %d decimals", s, decimals)
	}
	return units.BigInt(), nil
}

// FormatAmount is the inverse of ParseAmount.
func FormatAmount(units *big.Int, decimals int32) string {
	if units == nil {
		return "0"
	}
	return decimal.NewFromBigInt(units, -decimals).String()
}
