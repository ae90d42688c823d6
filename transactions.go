package coinwatch

import "fmt"

// Operation is a typed string for the two ledger entry operations.
type Operation string

const (
	// Buy increases the held amount and the cost basis.
	Buy Operation = "buy"
	// Sell decreases the held amount and the cost basis.
	Sell Operation = "sell"
)

// Me is the sentinel counterparty naming the portfolio owner in a Transfer.
const Me = "me"

// UnknownWallet is the wallet key used when an entry does not name one.
const UnknownWallet = "Unknown"

// LedgerEntry records a single buy or sell of an asset.
//
// An entry with an empty Operation is a buy: the original settings format
// predates sells, and existing files must keep their meaning.
type LedgerEntry struct {
	Asset     string    `yaml:"coin"`
	Operation Operation `yaml:"operation,omitempty"`
	Amount    Quantity  `yaml:"amount"`
	UnitPrice Money     `yaml:"price"`
	Fee       Money     `yaml:"fee,omitempty"`
	Wallet    string    `yaml:"wallet,omitempty"`
}

// Op returns the entry operation, defaulting to Buy.
func (e LedgerEntry) Op() Operation {
	if e.Operation == "" {
		return Buy
	}
	return e.Operation
}

// Cost returns the total cost of the entry: amount x unit price + fee.
func (e LedgerEntry) Cost() Money {
	return e.UnitPrice.Mul(e.Amount).Add(e.Fee)
}

// Validate checks an entry for correctness.
func (e LedgerEntry) Validate() error {
	if e.Asset == "" {
		return fmt.Errorf("ledger entry has no coin symbol")
	}
	if op := e.Op(); op != Buy && op != Sell {
		return fmt.Errorf("unknown operation %q on %s entry", op, e.Asset)
	}
	if e.Amount.IsNegative() {
		return fmt.Errorf("negative amount on %s entry", e.Asset)
	}
	if e.UnitPrice.IsNegative() {
		return fmt.Errorf("negative price on %s entry", e.Asset)
	}
	return nil
}

// Transfer records an asset moving between the portfolio owner ("me") and
// some other party. Transfers are cost-basis neutral: they change the held
// amount but never what was paid for it.
type Transfer struct {
	Asset  string   `yaml:"coin"`
	From   string   `yaml:"from"`
	To     string   `yaml:"to"`
	Amount Quantity `yaml:"amount"`
	Fee    Quantity `yaml:"fee,omitempty"`
	Wallet string   `yaml:"wallet,omitempty"`
}

// Validate checks a transfer for correctness.
func (t Transfer) Validate() error {
	if t.Asset == "" {
		return fmt.Errorf("transfer has no coin symbol")
	}
	if t.From != Me && t.To != Me {
		return fmt.Errorf("transfer of %s involves neither side as %q", t.Asset, Me)
	}
	return nil
}

// TokenPurchase records a token bought directly from an issuer (an ICO).
// Those tokens are not listed on exchanges, so they are valued at a
// user-supplied mark instead of a live quote.
type TokenPurchase struct {
	Token  string   `yaml:"token"`
	Amount Quantity `yaml:"amount"`
	Price  Money    `yaml:"price"`
	Value  Money    `yaml:"value,omitempty"`
}

// Mark returns the current value of the purchase, defaulting to its cost
// when the user has not supplied one.
func (t TokenPurchase) Mark() Money {
	if t.Value.IsZero() {
		return t.Price
	}
	return t.Value
}
