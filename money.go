package rcheckbook

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// currencyCode is the register's display currency.
const currencyCode = "USD"

// DisplayAmount formats a decimal amount for display in the register's
// currency, e.g. "$1,234.50".
func DisplayAmount(v decimal.Decimal) string {
	// to get a never nil currency we need to call the Money constructor
	cur := *money.New(0, currencyCode).Currency()
	return cur.Formatter().Format(v.Shift(int32(cur.Fraction)).IntPart())
}

// DisplaySignedAmount is like DisplayAmount but keeps an explicit sign on
// positive values, for the summary's per-category flows.
func DisplaySignedAmount(v decimal.Decimal) string {
	if v.IsPositive() {
		return "+" + DisplayAmount(v)
	}
	return DisplayAmount(v)
}
