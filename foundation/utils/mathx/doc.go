// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides exact decimal arithmetic and currency
//              formatting for prices.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2026-10-12 v0.2.0: Trimmed to decimal and money handling

// Package mathx provides exact decimal arithmetic for monetary values.
//
// Decimal wraps big.Rat, so adding prices never loses precision:
//
//	total := mathx.Sum(
//	    mathx.MustNewDecimal("1500"),
//	    mathx.MustNewDecimal("0.10"),
//	)
//	fmt.Println(total.StringFixed(2)) // 1500.10
//
// Money pairs an amount with a Currency and formats it for display:
//
//	price := mathx.NewMoney(total, mathx.BRL)
//	fmt.Println(price.Format()) // R$ 1500.10
//
// Decimals implement encoding.TextMarshaler and encoding.TextUnmarshaler so
// they can be read directly from YAML, TOML and JSON documents.
package mathx
