// Package renderer turns a PortfolioSnapshot into markdown reports.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/coinwatch"
)

// SnapshotMarkdown renders the full snapshot: per-coin statistics, wallet
// breakdown, token purchases and the portfolio totals.
func SnapshotMarkdown(s *coinwatch.PortfolioSnapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Portfolio\n\n")
	fmt.Fprintln(&b, "| Coin | Price | 24h | Amount | Paid | Value | P/L | P/L %% |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|---:|")
	for _, c := range s.Coins {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			c.Asset,
			c.Price,
			c.ChangePct24h.SignedString(),
			c.Amount,
			c.Paid,
			c.Value,
			c.ProfitLoss.SignedString(),
			c.ProfitLossPct.SignedString(),
		)
	}
	fmt.Fprintf(&b, "| **Total** | | %s | | %s | %s | %s | %s |\n",
		s.SubTotal.ChangeTotalPct.SignedString(),
		s.Total.Paid,
		s.Total.Value,
		s.Total.ProfitLoss.SignedString(),
		s.Total.ProfitLossPct.SignedString(),
	)

	if len(s.Wallets) > 0 {
		fmt.Fprintf(&b, "\n## Wallets\n\n")
		fmt.Fprintln(&b, "| Wallet | Coin | Price | Amount | Value |")
		fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|")
		for _, w := range s.Wallets {
			for i, c := range w.Coins {
				name := w.Wallet
				if i > 0 {
					name = ""
				}
				fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
					name, c.Asset, c.Price, c.Amount, c.Value)
			}
		}
	}

	if len(s.TokenPurchases) > 0 {
		fmt.Fprintf(&b, "\n## Token Purchases\n\n")
		fmt.Fprintln(&b, "| Token | Amount | Cost | Value | P/L |")
		fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")
		for _, t := range s.TokenPurchases {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				t.Token, t.Amount, t.Cost, t.Value, t.ProfitLoss.SignedString())
		}
	}

	fmt.Fprintf(&b, "\n## 24h Range\n\n")
	fmt.Fprintln(&b, "| | Min | Current | Max |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	fmt.Fprintf(&b, "| Market move | %s | %s | %s |\n",
		s.SubTotal.MinChangePct.SignedString(),
		s.SubTotal.ChangeTotalPct.SignedString(),
		s.SubTotal.MaxChangePct.SignedString(),
	)
	fmt.Fprintf(&b, "| Profit/Loss | %s | %s | %s |\n",
		s.Total.MinProfitLossPct.SignedString(),
		s.Total.ProfitLossPct.SignedString(),
		s.Total.MaxProfitLossPct.SignedString(),
	)

	return b.String()
}
