package icon

import (
	"hash/fnv"
	"image/color"
)

// Totals colors: green for gains, red for losses.
var (
	TotalPositive = color.NRGBA{R: 0x6A, G: 0x99, B: 0x13, A: 0xFF}
	TotalNegative = color.NRGBA{R: 0xDA, G: 0x36, B: 0x12, A: 0xFF}
)

// Palette holds the well-known coin colors.
var Palette = map[string]color.NRGBA{
	"BTC": {R: 0xFF, G: 0x85, B: 0x00, A: 0xFF},
	"ETH": {R: 0x51, G: 0xB0, B: 0xD1, A: 0xFF},
	"BCH": {R: 0xFF, G: 0xEB, B: 0x42, A: 0xFF},
	"XRP": {R: 0xCE, G: 0xEA, B: 0xF2, A: 0xFF},
	"LTC": {R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF},
}

// CoinColor returns the palette color for a symbol, or a fallback color
// derived from the symbol itself. The fallback is deterministic so that a
// coin keeps its color from one render to the next.
func CoinColor(symbol string) color.NRGBA {
	if c, ok := Palette[symbol]; ok {
		return c
	}
	h := fnv.New32a()
	h.Write([]byte(symbol))
	sum := h.Sum32()
	return color.NRGBA{R: uint8(sum), G: uint8(sum >> 8), B: uint8(sum >> 16), A: 0xFF}
}
