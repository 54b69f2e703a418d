package pricing

import (
	"fmt"
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultCurrency = "UGX"
	DefaultLocale   = "en-UG"
)

// Formatter выводит цену как денежную сумму без копеек в валюте целевого рынка.
type Formatter struct {
	unit    currency.Unit
	printer *message.Printer
}

// NewFormatter создает форматтер для ISO-кода валюты и BCP 47 локали.
func NewFormatter(currencyCode, locale string) (*Formatter, error) {
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, fmt.Errorf("unknown currency %q: %w", currencyCode, err)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &Formatter{unit: unit, printer: message.NewPrinter(tag)}, nil
}

var defaultFormatter = func() *Formatter {
	f, err := NewFormatter(DefaultCurrency, DefaultLocale)
	if err != nil {
		panic(err)
	}
	return f
}()

// Default возвращает форматтер для угандийского шиллинга.
func Default() *Formatter {
	return defaultFormatter
}

// Format округляет цену до целого и выводит ее с локальным символом валюты,
// например 95000000 -> "USh 95,000,000".
func (f *Formatter) Format(price float64) string {
	amount := int64(math.Round(price))
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(amount)))
}

// Currency возвращает ISO-код валюты форматтера.
func (f *Formatter) Currency() string {
	return f.unit.String()
}

// FormatPrice - короткая форма для форматтера по умолчанию.
func FormatPrice(price float64) string {
	return defaultFormatter.Format(price)
}
