package coinwatch

// Holding accumulates the net position of one asset: how many coins are
// held and what was paid for them. Both values may go negative when the
// ledger records more sells (or outgoing transfers) than buys; callers
// decide whether such positions are displayed.
type Holding struct {
	Amount Quantity
	Paid   Money // cost basis
}

// Holdings is the result of folding the ledger entry and transfer streams:
// one accumulator per asset, and one per (wallet, asset) pair. Assets and
// wallets iterate in first-seen input order so downstream lists are
// deterministic, but the accumulated values themselves are sums and do not
// depend on that order.
type Holdings struct {
	assets  []string
	byAsset map[string]*Holding

	wallets      []string
	walletAssets map[string][]string
	byWallet     map[string]map[string]*Holding
}

// Accumulate folds ledger entries, then transfers, into per-asset and
// per-wallet holdings.
//
// A buy adds amount to the position and amount x price + fee to the cost
// basis; a sell subtracts both. A transfer from "me" debits amount + fee,
// a transfer to "me" credits amount; either way the cost basis is
// untouched. Entries with no wallet accumulate under UnknownWallet.
func Accumulate(entries []LedgerEntry, transfers []Transfer) *Holdings {
	h := &Holdings{
		byAsset:      make(map[string]*Holding),
		walletAssets: make(map[string][]string),
		byWallet:     make(map[string]map[string]*Holding),
	}
	for _, e := range entries {
		amount, cost := e.Amount, e.Cost()
		if e.Op() == Sell {
			amount, cost = amount.Neg(), cost.Neg()
		}
		h.add(e.Asset, e.Wallet, amount, cost)
	}
	for _, t := range transfers {
		var amount Quantity
		if t.From == Me {
			amount = amount.Sub(t.Amount).Sub(t.Fee)
		}
		if t.To == Me {
			amount = amount.Add(t.Amount)
		}
		h.add(t.Asset, t.Wallet, amount, Money{})
	}
	return h
}

func (h *Holdings) add(asset, wallet string, amount Quantity, paid Money) {
	acc, ok := h.byAsset[asset]
	if !ok {
		acc = &Holding{}
		h.byAsset[asset] = acc
		h.assets = append(h.assets, asset)
	}
	acc.Amount = acc.Amount.Add(amount)
	acc.Paid = acc.Paid.Add(paid)

	if wallet == "" {
		wallet = UnknownWallet
	}
	wacc, ok := h.byWallet[wallet]
	if !ok {
		wacc = make(map[string]*Holding)
		h.byWallet[wallet] = wacc
		h.wallets = append(h.wallets, wallet)
	}
	acc, ok = wacc[asset]
	if !ok {
		acc = &Holding{}
		wacc[asset] = acc
		h.walletAssets[wallet] = append(h.walletAssets[wallet], asset)
	}
	acc.Amount = acc.Amount.Add(amount)
	acc.Paid = acc.Paid.Add(paid)
}

// Assets returns the asset symbols in first-seen order.
func (h *Holdings) Assets() []string { return h.assets }

// Get returns the accumulated holding for an asset, or a zero holding if
// the asset never appeared.
func (h *Holdings) Get(asset string) Holding {
	if acc, ok := h.byAsset[asset]; ok {
		return *acc
	}
	return Holding{}
}

// Wallets returns the wallet names in first-seen order.
func (h *Holdings) Wallets() []string { return h.wallets }

// WalletAssets returns the asset symbols held in a wallet, in first-seen order.
func (h *Holdings) WalletAssets(wallet string) []string { return h.walletAssets[wallet] }

// WalletGet returns the accumulated holding for an asset inside one wallet.
func (h *Holdings) WalletGet(wallet, asset string) Holding {
	if acc, ok := h.byWallet[wallet][asset]; ok {
		return *acc
	}
	return Holding{}
}

// Empty reports whether no asset has any participation at all: no entry
// and no transfer ever mentioned one. An empty portfolio short-circuits
// the valuation, no quote is fetched for it.
func (h *Holdings) Empty() bool { return len(h.assets) == 0 }
