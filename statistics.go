package coinwatch

// CoinStat is the valuation of one asset position against its live quote.
type CoinStat struct {
	Asset         string
	Price         Money
	Change24h     Money
	ChangePct24h  Percent
	High24h       Money
	Low24h        Money
	Amount        Quantity
	Paid          Money
	Value         Money // Price x Amount
	ProfitLoss    Money // Value - Paid
	ProfitLossPct Percent
}

// WalletCoin is one asset position inside a wallet.
type WalletCoin struct {
	Asset  string
	Price  Money
	Amount Quantity
	Value  Money
}

// WalletStat groups the valued positions of one wallet.
type WalletStat struct {
	Wallet string
	Coins  []WalletCoin
}

// TokenStat is a token purchase projected through the valuation: the mark
// is user-supplied, never fetched.
type TokenStat struct {
	Token      string
	Amount     Quantity
	Cost       Money
	Value      Money
	ProfitLoss Money // Value - Cost
}

// SubTotal aggregates the 24h price movement across held assets. All
// percentages are price-weighted: sums of per-coin prices, highs and lows,
// regardless of how much of each coin is held.
type SubTotal struct {
	ChangeTotal    Money   // sum of 24h changes
	ChangeTotalPct Percent // ChangeTotal / sum of prices
	MaxChangePct   Percent // (sum of highs - sum of prices) / sum of prices
	MinChangePct   Percent // (sum of lows - sum of prices) / sum of prices
}

// Total aggregates the portfolio profit and loss. All values are
// amount-weighted: each coin contributes price x held amount. The Max/Min
// variants substitute the 24h high/low for the current price.
type Total struct {
	Value            Money
	Paid             Money
	ProfitLoss       Money
	MaxProfitLoss    Money
	MinProfitLoss    Money
	ProfitLossPct    Percent
	MaxProfitLossPct Percent
	MinProfitLossPct Percent
}

// PortfolioSnapshot is the complete, immutable result of one aggregation
// cycle. A new one is built from scratch on every successful cycle; a
// failed cycle produces none, and consumers keep showing the previous one.
type PortfolioSnapshot struct {
	Coins          []CoinStat
	Wallets        []WalletStat
	TokenPurchases []TokenStat
	SubTotal       SubTotal
	Total          Total
}

// ratioPct returns num/den x 100 as a Percent, degrading to a non-finite
// marker when den is zero.
func ratioPct(num, den Money) Percent {
	return Percent(num.AsFloat() / den.AsFloat() * 100)
}

// profitPct returns value/paid x 100 - 100 as a Percent.
func profitPct(value, paid Money) Percent {
	return Percent(value.AsFloat()/paid.AsFloat()*100 - 100)
}

// Aggregate folds the portfolio and revalues it against one batched quote
// request to the source, tagged to the configured market venue.
//
// An empty portfolio short-circuits: no network call is made and the
// snapshot is nil with no error. A failed or explicitly erroneous quote
// response fails the whole cycle; Aggregate never synthesizes zero-valued
// statistics for assets it could not price.
func Aggregate(source QuoteSource, entries []LedgerEntry, transfers []Transfer, tokens []TokenPurchase, market string) (*PortfolioSnapshot, error) {
	holdings := Accumulate(entries, transfers)
	if holdings.Empty() {
		return nil, nil
	}

	quotes, err := source.PriceMultiFull(holdings.Assets(), market)
	if err != nil {
		return nil, err
	}

	snapshot := &PortfolioSnapshot{}

	// Price-weighted sums for the subtotal, amount-weighted for the total.
	var changeTotal, priceTotal, highTotal, lowTotal Money
	var paidTotal, valueTotal, highValueTotal, lowValueTotal Money

	for _, asset := range holdings.Assets() {
		quote, ok := quotes[asset]
		if !ok {
			// the venue does not list this asset: it contributes to no
			// statistic at all rather than being worth zero.
			continue
		}
		held := holdings.Get(asset)
		value := quote.Price.Mul(held.Amount)
		snapshot.Coins = append(snapshot.Coins, CoinStat{
			Asset:         asset,
			Price:         quote.Price,
			Change24h:     quote.Change24h,
			ChangePct24h:  quote.ChangePct24h,
			High24h:       quote.High24h,
			Low24h:        quote.Low24h,
			Amount:        held.Amount,
			Paid:          held.Paid,
			Value:         value,
			ProfitLoss:    value.Sub(held.Paid),
			ProfitLossPct: profitPct(value, held.Paid),
		})

		changeTotal = changeTotal.Add(quote.Change24h)
		priceTotal = priceTotal.Add(quote.Price)
		highTotal = highTotal.Add(quote.High24h)
		lowTotal = lowTotal.Add(quote.Low24h)

		paidTotal = paidTotal.Add(held.Paid)
		valueTotal = valueTotal.Add(value)
		highValueTotal = highValueTotal.Add(quote.High24h.Mul(held.Amount))
		lowValueTotal = lowValueTotal.Add(quote.Low24h.Mul(held.Amount))
	}

	for _, wallet := range holdings.Wallets() {
		stat := WalletStat{Wallet: wallet}
		for _, asset := range holdings.WalletAssets(wallet) {
			quote, ok := quotes[asset]
			if !ok {
				continue
			}
			held := holdings.WalletGet(wallet, asset)
			stat.Coins = append(stat.Coins, WalletCoin{
				Asset:  asset,
				Price:  quote.Price,
				Amount: held.Amount,
				Value:  quote.Price.Mul(held.Amount),
			})
		}
		snapshot.Wallets = append(snapshot.Wallets, stat)
	}

	for _, t := range tokens {
		snapshot.TokenPurchases = append(snapshot.TokenPurchases, TokenStat{
			Token:      t.Token,
			Amount:     t.Amount,
			Cost:       t.Price,
			Value:      t.Mark(),
			ProfitLoss: t.Mark().Sub(t.Price),
		})
	}

	snapshot.SubTotal = SubTotal{
		ChangeTotal:    changeTotal,
		ChangeTotalPct: ratioPct(changeTotal, priceTotal),
		MaxChangePct:   ratioPct(highTotal.Sub(priceTotal), priceTotal),
		MinChangePct:   ratioPct(lowTotal.Sub(priceTotal), priceTotal),
	}
	snapshot.Total = Total{
		Value:            valueTotal,
		Paid:             paidTotal,
		ProfitLoss:       valueTotal.Sub(paidTotal),
		MaxProfitLoss:    highValueTotal.Sub(paidTotal),
		MinProfitLoss:    lowValueTotal.Sub(paidTotal),
		ProfitLossPct:    profitPct(valueTotal, paidTotal),
		MaxProfitLossPct: profitPct(highValueTotal, paidTotal),
		MinProfitLossPct: profitPct(lowValueTotal, paidTotal),
	}
	return snapshot, nil
}
