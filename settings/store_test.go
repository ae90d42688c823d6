package settings

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

const testSettings = `
transactions:
  - coin: BTC
    amount: 1
    price: 100
    fee: 1
    wallet: Coinbase
transfers:
  - coin: ETH
    from: me
    to: shapeshift
    amount: 1
market: Coinbase
interval: 60
percentageLimit:
  coin: 10
  subTotal: 10
  total: 50
startWithOS: true
`

func open(t *testing.T, content string) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_CreatesSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coinwatch", "settings.yaml")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("sample settings file was not created: %v", err)
	}
	// the bundled sample is a usable portfolio.
	st := s.Settings()
	if len(st.LedgerEntries) == 0 {
		t.Error("sample settings hold no ledger entries")
	}
	if err := st.Validate(); err != nil {
		t.Errorf("sample settings do not validate: %v", err)
	}
}

func TestOpen_MalformedFirstLoadFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("market: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Fatal("expected the first load of a malformed file to fail")
	}
}

func TestSettings_Typed(t *testing.T) {
	s := open(t, testSettings)
	st := s.Settings()

	if st.Market != "Coinbase" {
		t.Errorf("market = %q, want Coinbase", st.Market)
	}
	if st.PollIntervalSeconds != 60 || st.Interval() != 60 {
		t.Errorf("interval = %d (%d), want 60", st.Interval(), st.PollIntervalSeconds)
	}
	if st.PercentageLimits.Total != 50 {
		t.Errorf("percentageLimit.total = %v, want 50", st.PercentageLimits.Total)
	}
	if !st.StartWithOS {
		t.Error("startWithOS = false, want true")
	}
	if len(st.LedgerEntries) != 1 || len(st.Transfers) != 1 {
		t.Errorf("parsed %d entries and %d transfers, want 1 and 1", len(st.LedgerEntries), len(st.Transfers))
	}
}

func TestInterval_Floor(t *testing.T) {
	if got := (Settings{PollIntervalSeconds: 3}).Interval(); got != 10 {
		t.Errorf("Interval() = %d, want the 10s floor", got)
	}
	if got := (Settings{PollIntervalSeconds: 300}).Interval(); got != 300 {
		t.Errorf("Interval() = %d, want 300", got)
	}
}

func TestGet_Path(t *testing.T) {
	s := open(t, testSettings)

	cases := []struct {
		path string
		want any
	}{
		{"market", "Coinbase"},
		{"percentageLimit.coin", 10},
		{"transactions[0].coin", "BTC"},
		{"transfers[0].from", "me"},
	}
	for _, tc := range cases {
		got, err := s.Get(tc.path)
		if err != nil {
			t.Errorf("Get(%q) error: %v", tc.path, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Get(%q) = %v (%T), want %v (%T)", tc.path, got, got, tc.want, tc.want)
		}
	}

	if _, err := s.Get("no.such.path"); err == nil {
		t.Error("Get of an unknown path should fail")
	}
}

func TestDebounce_CollapsesBursts(t *testing.T) {
	s := open(t, testSettings)

	var changes atomic.Int32
	cancel := s.OnChange(func() { changes.Add(1) })
	defer cancel()

	// three writes in a burst, well inside the debounce window.
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(s.Path(), []byte(testSettings), 0644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(50 * time.Millisecond)
	}

	deadline := time.Now().Add(3 * time.Second)
	for changes.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	// wait out a would-be second event.
	time.Sleep(2 * debounceDelay)

	if got := changes.Load(); got != 1 {
		t.Errorf("got %d change events for one burst, want exactly 1", got)
	}
}

func TestReload_MalformedKeepsPreviousSnapshot(t *testing.T) {
	s := open(t, testSettings)

	if err := os.WriteFile(s.Path(), []byte("market: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	// wait for the watcher to invalidate the snapshot.
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		s.mu.Lock()
		invalid := s.invalid
		s.mu.Unlock()
		if invalid {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}

	// the previous snapshot remains authoritative.
	if got := s.Settings().Market; got != "Coinbase" {
		t.Errorf("market after malformed reload = %q, want the stale Coinbase", got)
	}
}

func TestReload_PicksUpEdits(t *testing.T) {
	s := open(t, testSettings)

	edited := testSettings + "\nwebsite: https://example.com\n"
	if err := os.WriteFile(s.Path(), []byte(edited), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if s.Settings().Website == "https://example.com" {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Error("edit was never observed")
}

func TestOnChange_Cancel(t *testing.T) {
	s := open(t, testSettings)

	var changes atomic.Int32
	cancel := s.OnChange(func() { changes.Add(1) })
	cancel()

	if err := os.WriteFile(s.Path(), []byte(testSettings), 0644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(3 * debounceDelay)
	if got := changes.Load(); got != 0 {
		t.Errorf("cancelled subscriber got %d events, want 0", got)
	}
}
