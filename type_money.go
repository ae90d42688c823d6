package coinwatch

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Money represents a monetary value. The whole portfolio is USD-denominated,
// so Money carries no currency; formatting always uses the USD formatter.
type Money struct {
	value decimal.Decimal // as major unit value
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// usd is the formatting currency for all monetary values.
var usd = *money.New(0, money.USD).Currency()

// String returns the string representation of the money value, e.g. "$1,234.56".
func (m Money) String() string {
	dec := m.value.Shift(int32(usd.Fraction))
	return usd.Formatter().Format(dec.Round(0).IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(q Quantity) Money            { return Money{value: m.value.Mul(q.value)} }

// AsFloat degrades the money to a float64. Percentages are the only intended
// consumer: a ratio of two Money values has to tolerate a zero denominator,
// which exact division cannot.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// UnmarshalYAML decodes any numeric (or quoted numeric) scalar exactly.
func (m *Money) UnmarshalYAML(node *yaml.Node) error {
	if node.Value == "" {
		m.value = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(node.Value)
	if err != nil {
		return err
	}
	m.value = d
	return nil
}

func (m Money) MarshalYAML() (interface{}, error) {
	return m.value.String(), nil
}
