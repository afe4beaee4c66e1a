// Package format holds the currency catalog and amount rendering rules.
package format

import (
	"errors"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/md8-habibullah/ledger-tracker/internal/models"
)

var ErrUnknownCurrency = errors.New("unknown currency code")

// Currency describes one supported display currency. Locale drives digit
// grouping when the number format preference is "local".
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Locale string `json:"locale"`
}

// currencies is ordered; the first entry is the default.
var currencies = []Currency{
	{Code: "BDT", Symbol: "৳", Name: "Bangladeshi Taka", Locale: "bn-BD"},
	{Code: "USD", Symbol: "$", Name: "US Dollar", Locale: "en-US"},
	{Code: "EUR", Symbol: "€", Name: "Euro", Locale: "de-DE"},
	{Code: "GBP", Symbol: "£", Name: "British Pound", Locale: "en-GB"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee", Locale: "en-IN"},
	{Code: "SAR", Symbol: "﷼", Name: "Saudi Riyal", Locale: "ar-SA"},
	{Code: "AED", Symbol: "د.إ", Name: "UAE Dirham", Locale: "ar-AE"},
	{Code: "MYR", Symbol: "RM", Name: "Malaysian Ringgit", Locale: "ms-MY"},
}

// Currencies returns the supported currency catalog in display order.
func Currencies() []Currency {
	out := make([]Currency, len(currencies))
	copy(out, currencies)
	return out
}

// DefaultCurrency returns the catalog's first entry.
func DefaultCurrency() Currency {
	return currencies[0]
}

// CurrencyByCode looks a currency up by its ISO code.
func CurrencyByCode(code string) (Currency, error) {
	for _, c := range currencies {
		if c.Code == code {
			return c, nil
		}
	}
	return Currency{}, ErrUnknownCurrency
}

// IsValidCurrency reports whether code is in the catalog.
func IsValidCurrency(code string) bool {
	_, err := CurrencyByCode(code)
	return err == nil
}

// Amount renders value with the currency's symbol and whole-unit
// precision. International mode always groups digits the en-US way;
// local mode follows the currency's own locale, which for bn-BD and
// en-IN produces lakh/crore grouping.
func Amount(value float64, currency Currency, mode string) string {
	tag := language.AmericanEnglish
	if mode == models.NumberFormatLocal {
		if parsed, err := language.Parse(currency.Locale); err == nil {
			tag = parsed
		}
	}
	printer := message.NewPrinter(tag)
	return currency.Symbol + printer.Sprint(number.Decimal(value, number.MaxFractionDigits(0)))
}
