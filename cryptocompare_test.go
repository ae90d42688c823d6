package coinwatch

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const multiFullFixture = `{
  "RAW": {
    "BTC": {
      "USD": {
        "PRICE": 150,
        "CHANGE24HOUR": 10,
        "CHANGEPCT24HOUR": 7.14,
        "HIGH24HOUR": 160,
        "LOW24HOUR": 140,
        "OPEN24HOUR": 140
      }
    },
    "ETH": {
      "USD": {
        "PRICE": 300.5,
        "CHANGE24HOUR": -4.2,
        "CHANGEPCT24HOUR": -1.38,
        "HIGH24HOUR": 310,
        "LOW24HOUR": 295,
        "OPEN24HOUR": 304.7
      }
    }
  }
}`

func TestPriceMultiFull(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(multiFullFixture))
	}))
	defer server.Close()

	c := NewQuoteClient()
	c.BaseURL = server.URL

	quotes, err := c.PriceMultiFull([]string{"BTC", "ETH"}, "Coinbase")
	if err != nil {
		t.Fatalf("PriceMultiFull() error: %v", err)
	}

	if gotPath != "/data/pricemultifull" {
		t.Errorf("path = %q, want /data/pricemultifull", gotPath)
	}
	for _, want := range []string{"fsyms=BTC%2CETH", "tsyms=USD", "e=Coinbase", "extraParams=coinwatch"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("query %q misses %q", gotQuery, want)
		}
	}

	if len(quotes) != 2 {
		t.Fatalf("quotes = %v, want 2", quotes)
	}
	btc := quotes["BTC"]
	if want := M(150); !btc.Price.Equal(want) {
		t.Errorf("BTC price = %s, want %s", btc.Price, want)
	}
	if want := Percent(7.14); !btc.ChangePct24h.Equal(want) {
		t.Errorf("BTC changePct = %s, want %s", btc.ChangePct24h, want)
	}
	eth := quotes["ETH"]
	if want := M(-4.2); !eth.Change24h.Equal(want) {
		t.Errorf("ETH change = %s, want %s", eth.Change24h, want)
	}
}

func TestPriceMultiFull_ErrorPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// cryptocompare reports errors in the body with a 200 status.
		w.Write([]byte(`{"Response": "Error", "Message": "e param is not valid the market does not exist for this coin pair"}`))
	}))
	defer server.Close()

	c := NewQuoteClient()
	c.BaseURL = server.URL

	_, err := c.PriceMultiFull([]string{"BTC"}, "nowhere")
	if err == nil {
		t.Fatal("expected an error from the error payload")
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("error %q should carry the source message", err)
	}
}

func TestPriceMultiFull_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := NewQuoteClient()
	c.BaseURL = server.URL

	if _, err := c.PriceMultiFull([]string{"BTC"}, "Coinbase"); err == nil {
		t.Fatal("expected an error from the http status")
	}
}
