// File: decimal.go
// Title: Decimal Arithmetic Implementation
// Description: Exact decimal arithmetic for prices. Values are backed by
//              big.Rat, so sums of any number of prices carry no rounding
//              error; rounding only happens when a value is formatted.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core decimal operations
// - 2026-10-12 v0.2.0: Reduced to the operations prices need, made the zero
//                       value usable and added text (un)marshalling

package mathx

import (
	"fmt"
	"math/big"
	"strings"
)

// Decimal represents an exact decimal number. The zero value is 0.
// Decimals are immutable; every operation returns a new value.
type Decimal struct {
	value *big.Rat
}

// NewDecimal parses a decimal such as "123.45", "-6", "1e3" or "1/2"
func NewDecimal(s string) (Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Decimal{}, fmt.Errorf("invalid decimal format: empty string")
	}
	rat, ok := new(big.Rat).SetString(s)
	if !ok {
		return Decimal{}, fmt.Errorf("invalid decimal format: %s", s)
	}
	return Decimal{value: rat}, nil
}

// MustNewDecimal parses a decimal and panics on malformed input.
// Intended for constants.
func MustNewDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewDecimalFromInt creates a Decimal from an integer
func NewDecimalFromInt(i int64) Decimal {
	return Decimal{value: new(big.Rat).SetInt64(i)}
}

// Zero returns a Decimal representing 0
func Zero() Decimal {
	return Decimal{}
}

func (d Decimal) rat() *big.Rat {
	if d.value == nil {
		return new(big.Rat)
	}
	return d.value
}

// Add returns d + other
func (d Decimal) Add(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Add(d.rat(), other.rat())}
}

// Sub returns d - other
func (d Decimal) Sub(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Sub(d.rat(), other.rat())}
}

// Mul returns d * other
func (d Decimal) Mul(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Mul(d.rat(), other.rat())}
}

// Sign returns -1, 0 or +1
func (d Decimal) Sign() int {
	return d.rat().Sign()
}

// IsZero reports whether d == 0
func (d Decimal) IsZero() bool {
	return d.Sign() == 0
}

// IsNegative reports whether d < 0
func (d Decimal) IsNegative() bool {
	return d.Sign() < 0
}

// Compare returns -1, 0 or +1 depending on whether d is less than, equal to
// or greater than other
func (d Decimal) Compare(other Decimal) int {
	return d.rat().Cmp(other.rat())
}

// Equal reports whether both decimals hold the same value
func (d Decimal) Equal(other Decimal) bool {
	return d.Compare(other) == 0
}

// Sum adds all values exactly
func Sum(values ...Decimal) Decimal {
	total := new(big.Rat)
	for _, v := range values {
		total.Add(total, v.rat())
	}
	return Decimal{value: total}
}

// StringFixed formats d with exactly places fractional digits, rounding
// halves away from zero
func (d Decimal) StringFixed(places int) string {
	if places < 0 {
		places = 0
	}
	return d.rat().FloatString(places)
}

// String returns the shortest exact decimal form, e.g. "1500" or "99.9".
// Values without a finite decimal expansion are cut at ten places.
func (d Decimal) String() string {
	r := d.rat()
	if r.IsInt() {
		return r.Num().String()
	}
	places, exact := fractionalDigits(r.Denom())
	if !exact {
		return r.FloatString(10)
	}
	return r.FloatString(places)
}

// fractionalDigits returns how many decimal places represent 1/denom exactly
func fractionalDigits(denom *big.Int) (int, bool) {
	d := new(big.Int).Set(denom)
	two, five, zero := big.NewInt(2), big.NewInt(5), big.NewInt(0)
	twos, fives := 0, 0
	mod := new(big.Int)
	for mod.Mod(d, two).Cmp(zero) == 0 {
		d.Div(d, two)
		twos++
	}
	for mod.Mod(d, five).Cmp(zero) == 0 {
		d.Div(d, five)
		fives++
	}
	if d.Cmp(big.NewInt(1)) != 0 {
		return 0, false
	}
	if twos > fives {
		return twos, true
	}
	return fives, true
}

// Float64 returns the nearest float64, for display and charts only
func (d Decimal) Float64() float64 {
	f, _ := d.rat().Float64()
	return f
}

// MarshalText implements encoding.TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so prices can be read
// from YAML, TOML and JSON strings or numbers
func (d *Decimal) UnmarshalText(text []byte) error {
	parsed, err := NewDecimal(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
