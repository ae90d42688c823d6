package coinwatch

import (
	"fmt"
	"strings"
)

// maxTooltipLen is the character budget of an OS tray tooltip.
const maxTooltipLen = 127

// Tooltip builds the status icon tooltip for a snapshot: one signature
// line, one price/change line per coin, and a fixed summary of the
// portfolio movement and profit/loss.
//
// The whole text is capped to 127 characters. Only the per-coin detail is
// truncated to fit; the signature and the summary always survive intact.
func Tooltip(s *PortfolioSnapshot) string {
	signature := fmt.Sprintf("coinwatch v%s", Version)

	var detail strings.Builder
	for _, c := range s.Coins {
		fmt.Fprintf(&detail, "%s:%s(%s)\n", c.Asset, c.Price, c.ChangePct24h)
	}
	fixed := fmt.Sprintf("Average: %s\nProfit/Loss: %s (%s)",
		s.SubTotal.ChangeTotalPct, s.Total.ProfitLoss, s.Total.ProfitLossPct)

	budget := maxTooltipLen - len(signature) - 1 - len(fixed)
	variable := detail.String()
	if budget < 0 {
		budget = 0
	}
	if len(variable) > budget {
		variable = variable[:budget]
	}
	return signature + "\n" + variable + fixed
}
