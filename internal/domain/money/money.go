package money

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultLocale = "en-IN"
	DefaultSymbol = "₹"
)

// Formatter renders integer amounts as locale-grouped strings prefixed with a
// currency symbol, e.g. 2499 -> "₹2,499".
type Formatter struct {
	symbol  string
	printer *message.Printer
}

func NewFormatter(locale, symbol string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return &Formatter{
		symbol:  symbol,
		printer: message.NewPrinter(tag),
	}, nil
}

// Default returns the en-IN Rupee formatter.
func Default() *Formatter {
	f, err := NewFormatter(DefaultLocale, DefaultSymbol)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Formatter) Format(amount int64) string {
	if amount < 0 {
		return "-" + f.symbol + f.printer.Sprintf("%d", -amount)
	}
	return f.symbol + f.printer.Sprintf("%d", amount)
}
