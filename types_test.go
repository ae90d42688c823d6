package coinwatch

import (
	"math"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestPercent(t *testing.T) {
	cases := []struct {
		p      Percent
		str    string
		signed string
	}{
		{Percent(7.14), "7.14%", "+7.14%"},
		{Percent(-2.5), "-2.50%", "-2.50%"},
		{Percent(0), "0.00%", "-"},
		{Percent(math.Inf(1)), "n/a", "n/a"},
		{Percent(math.NaN()), "n/a", "n/a"},
	}
	for _, tc := range cases {
		if got := tc.p.String(); got != tc.str {
			t.Errorf("Percent(%v).String() = %q, want %q", float64(tc.p), got, tc.str)
		}
		if got := tc.p.SignedString(); got != tc.signed {
			t.Errorf("Percent(%v).SignedString() = %q, want %q", float64(tc.p), got, tc.signed)
		}
	}
	if Percent(math.Inf(-1)).Defined() {
		t.Error("-Inf should not be defined")
	}
	if !Percent(0).Defined() {
		t.Error("0 should be defined")
	}
}

func TestMoneyString(t *testing.T) {
	if got, want := M(1234.56).String(), "$1,234.56"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := M(-12.5).String(), "-$12.50"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := M(49).SignedString(), "+$49.00"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
	if got, want := M(0).SignedString(), "-"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
}

// Ledger entries come from a hand-edited YAML file: amounts appear as
// plain numbers, quoted numbers, or not at all.
func TestYAMLDecoding(t *testing.T) {
	doc := `
- coin: BTC
  amount: 0.5
  price: 2500
  fee: 10
  wallet: Coinbase
- coin: ETH
  operation: sell
  amount: "4"
  price: 300.25
`
	var entries []LedgerEntry
	if err := yaml.Unmarshal([]byte(doc), &entries); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %+v, want 2", entries)
	}
	if want := Q(0.5); !entries[0].Amount.Equal(want) {
		t.Errorf("amount = %s, want %s", entries[0].Amount, want)
	}
	if want := M(2500); !entries[0].UnitPrice.Equal(want) {
		t.Errorf("price = %s, want %s", entries[0].UnitPrice, want)
	}
	if entries[1].Op() != Sell {
		t.Errorf("operation = %q, want sell", entries[1].Op())
	}
	if want := Q(4); !entries[1].Amount.Equal(want) {
		t.Errorf("quoted amount = %s, want %s", entries[1].Amount, want)
	}
	if !entries[1].Fee.IsZero() {
		t.Errorf("missing fee = %s, want 0", entries[1].Fee)
	}
}
