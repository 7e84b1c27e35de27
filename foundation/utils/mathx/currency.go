// File: currency.go
// Title: Currency and Money Formatting
// Description: Currency metadata and a Money value used to present prices.
//              Amounts stay exact; rounding to the currency's decimal places
//              happens only in Format.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with money arithmetic
// - 2026-10-12 v0.2.0: Added BRL, removed allocation and registry mutation

package mathx

import (
	"fmt"
	"strings"
)

// Currency represents a currency with its properties
type Currency struct {
	Code          string // ISO 4217 code
	Symbol        string
	DecimalPlaces int
	Name          string
}

// Supported currencies
var (
	BRL = Currency{Code: "BRL", Symbol: "R$", DecimalPlaces: 2, Name: "Brazilian Real"}
	USD = Currency{Code: "USD", Symbol: "$", DecimalPlaces: 2, Name: "US Dollar"}
	EUR = Currency{Code: "EUR", Symbol: "€", DecimalPlaces: 2, Name: "Euro"}
)

var currencies = map[string]Currency{
	"BRL": BRL,
	"USD": USD,
	"EUR": EUR,
}

// GetCurrency looks a currency up by its code, case-insensitively
func GetCurrency(code string) (Currency, bool) {
	c, ok := currencies[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// CurrencyCodes returns the supported currency codes
func CurrencyCodes() []string {
	return []string{"BRL", "EUR", "USD"}
}

// Money is an exact amount in a currency
type Money struct {
	Amount   Decimal
	Currency Currency
}

// NewMoney pairs an amount with a currency without rounding it
func NewMoney(amount Decimal, currency Currency) Money {
	return Money{Amount: amount, Currency: currency}
}

// Add returns the sum of two amounts of the same currency
func (m Money) Add(other Money) (Money, error) {
	if m.Currency.Code != other.Currency.Code {
		return Money{}, fmt.Errorf("cannot add different currencies: %s and %s", m.Currency.Code, other.Currency.Code)
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// Format renders the amount with the currency symbol, e.g. "R$ 1500.00"
func (m Money) Format() string {
	return fmt.Sprintf("%s %s", m.Currency.Symbol, m.Amount.StringFixed(m.Currency.DecimalPlaces))
}

// FormatWithCode renders the amount followed by the currency code
func (m Money) FormatWithCode() string {
	return fmt.Sprintf("%s %s", m.Amount.StringFixed(m.Currency.DecimalPlaces), m.Currency.Code)
}

// String implements fmt.Stringer
func (m Money) String() string {
	return m.Format()
}
