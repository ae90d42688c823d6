package icon

// CoinChange is the per-coin input of the portfolio icon: one asset and
// its 24h change percentage.
type CoinChange struct {
	Asset     string
	ChangePct float64
}

// Limits are the full-scale deflections, in percent, of the three bar
// kinds composing the portfolio icon.
type Limits struct {
	Coin     float64
	SubTotal float64
	Total    float64
}

// Portfolio assembles the icon bar list for a portfolio: one narrow bar
// per coin (24h change against +/-limits.Coin), then a wide bar for the
// portfolio price movement and a wide bar for the profit/loss percentage.
//
// The list may exceed the canvas capacity when too many coins are held;
// Render reports that, it is a configuration problem, not a render bug.
func Portfolio(limits Limits, coins []CoinChange, subTotalPct, totalPct float64) []Bar {
	bars := make([]Bar, 0, len(coins)+2)
	for _, c := range coins {
		color := CoinColor(c.Asset)
		bars = append(bars, Bar{
			Value:    c.ChangePct,
			Min:      -limits.Coin,
			Max:      limits.Coin,
			Positive: color,
			Negative: color,
		})
	}
	bars = append(bars,
		Bar{
			Value:    subTotalPct,
			Min:      -limits.SubTotal,
			Max:      limits.SubTotal,
			Span:     2,
			Positive: TotalPositive,
			Negative: TotalNegative,
		},
		Bar{
			Value:    totalPct,
			Min:      -limits.Total,
			Max:      limits.Total,
			Span:     2,
			Positive: TotalPositive,
			Negative: TotalNegative,
		})
	return bars
}
