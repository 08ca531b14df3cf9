package commerce

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Money is an exact monetary amount in a single currency.
type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// NewMoney builds a Money from a decimal string and an ISO 4217 code.
func NewMoney(amount, code string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Money{}, fmt.Errorf("parse currency %q: %w", code, err)
	}
	return Money{Amount: d, Currency: unit}, nil
}

// NewMoneyFromFloat builds a Money from a float amount. Backends that report
// prices as JSON numbers go through here.
func NewMoneyFromFloat(amount float64, code string) (Money, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Money{}, fmt.Errorf("parse currency %q: %w", code, err)
	}
	return Money{Amount: decimal.NewFromFloat(amount), Currency: unit}, nil
}

// Zero returns a zero amount in the given currency. Invalid codes fall back
// to USD.
func Zero(code string) Money {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}
	return Money{Amount: decimal.Zero, Currency: unit}
}

// Add returns m + other. Mismatched currencies are an error.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("currency mismatch: %s vs %s", m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// MulInt returns m multiplied by an integer quantity.
func (m Money) MulInt(n int) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(int64(n))), Currency: m.Currency}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.Amount.IsZero() }

// String renders the amount with its currency code.
func (m Money) String() string {
	return m.Amount.String() + " " + m.Currency.String()
}

type moneyJSON struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// MarshalJSON renders the amount as a decimal string to avoid float drift.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{Amount: m.Amount.String(), Currency: m.Currency.String()})
}

// UnmarshalJSON parses the {amount, currency} shape produced by MarshalJSON.
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := NewMoney(raw.Amount, raw.Currency)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
