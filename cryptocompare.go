package coinwatch

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// This file contains functions to access the CryptoCompare min-api.

// Quote is a point-in-time USD market quote for one asset.
type Quote struct {
	Price        Money
	Change24h    Money
	ChangePct24h Percent
	High24h      Money
	Low24h       Money
	Open24h      Money
}

// QuoteSource is the single outbound dependency of the valuation: one
// batched quote request per aggregation cycle.
type QuoteSource interface {
	// PriceMultiFull returns the USD quote of every requested symbol that
	// the venue knows about; unknown symbols are simply absent from the map.
	PriceMultiFull(symbols []string, market string) (map[string]Quote, error)
}

const cryptocompareURL = "https://min-api.cryptocompare.com"

// QuoteClient fetches quotes from the CryptoCompare min-api.
//
// The zero value is not usable, use NewQuoteClient. BaseURL is a field so
// tests can point the client at a local server.
type QuoteClient struct {
	BaseURL string
	Client  *http.Client
}

func NewQuoteClient() *QuoteClient {
	return &QuoteClient{BaseURL: cryptocompareURL, Client: new(http.Client)}
}

// pricemultifull payload:
//
//	{
//	  "RAW": {
//	    "BTC": {
//	      "USD": {
//	        "PRICE": 104875.1,
//	        "CHANGE24HOUR": 1200.4,
//	        "CHANGEPCT24HOUR": 1.15,
//	        "HIGH24HOUR": 105000,
//	        "LOW24HOUR": 103000,
//	        "OPEN24HOUR": 103674.7
//	      }
//	    }
//	  }
//	}
//
// and on failure a flat {"Response": "Error", "Message": "..."} document.
type multiFullResponse struct {
	Response string                         `json:"Response"`
	Message  string                         `json:"Message"`
	RAW      map[string]map[string]rawQuote `json:"RAW"`
}

type rawQuote struct {
	Price        float64 `json:"PRICE"`
	Change24h    float64 `json:"CHANGE24HOUR"`
	ChangePct24h float64 `json:"CHANGEPCT24HOUR"`
	High24h      float64 `json:"HIGH24HOUR"`
	Low24h       float64 `json:"LOW24HOUR"`
	Open24h      float64 `json:"OPEN24HOUR"`
}

// PriceMultiFull implements QuoteSource against the pricemultifull endpoint.
// The request is fire-once: no retry, no backoff; the caller decides what a
// failed cycle means.
func (c *QuoteClient) PriceMultiFull(symbols []string, market string) (map[string]Quote, error) {
	v := url.Values{}
	v.Set("fsyms", strings.Join(symbols, ","))
	v.Set("tsyms", "USD")
	v.Set("e", market)
	v.Set("extraParams", "coinwatch")
	addr := c.BaseURL + "/data/pricemultifull?" + v.Encode()

	var payload multiFullResponse
	if err := jwget(c.Client, addr, &payload); err != nil {
		return nil, fmt.Errorf("cannot fetch quotes for %s: %w", strings.Join(symbols, ","), err)
	}
	// A quote-source error is explicit in the payload, not in the HTTP status.
	if payload.Response == "Error" {
		return nil, fmt.Errorf("quote source error: %s", payload.Message)
	}

	quotes := make(map[string]Quote, len(payload.RAW))
	for sym, byCurrency := range payload.RAW {
		raw, ok := byCurrency["USD"]
		if !ok {
			continue
		}
		quotes[sym] = Quote{
			Price:        M(decimal.NewFromFloat(raw.Price)),
			Change24h:    M(decimal.NewFromFloat(raw.Change24h)),
			ChangePct24h: Percent(raw.ChangePct24h),
			High24h:      M(decimal.NewFromFloat(raw.High24h)),
			Low24h:       M(decimal.NewFromFloat(raw.Low24h)),
			Open24h:      M(decimal.NewFromFloat(raw.Open24h)),
		}
	}
	return quotes, nil
}
