package api

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func validAPITrade() APITrade {
	return APITrade{
		ProxyWallet:     "0xabc123",
		Name:            "whale-trader",
		EventSlug:       "presidential-election-2028",
		Outcome:         "Yes",
		Price:           decimal.RequireFromString("0.75"),
		Size:            decimal.NewFromInt(1000),
		Timestamp:       1735689600, // 2025-01-01 00:00:00 UTC
		Side:            "BUY",
		Asset:           "71321045679252212594626385532706912750332728571942532289631379312455583992563",
		ConditionID:     "0xdead",
		Title:           "Presidential Election 2028",
		TransactionHash: "0xfeed",
	}
}

func TestToModel(t *testing.T) {
	trade := validAPITrade()

	m, err := trade.ToModel(time.UTC)
	if err != nil {
		t.Fatalf("ToModel failed: %v", err)
	}

	if m.DisplayName != "whale-trader" {
		t.Errorf("DisplayName = %q, want %q", m.DisplayName, "whale-trader")
	}
	if m.WalletAddress != "0xabc123" {
		t.Errorf("WalletAddress = %q, want %q", m.WalletAddress, "0xabc123")
	}
	if m.EventSlug != "presidential-election-2028" {
		t.Errorf("EventSlug = %q, want %q", m.EventSlug, "presidential-election-2028")
	}
	if !m.Cost.Equal(decimal.NewFromInt(750)) {
		t.Errorf("Cost = %s, want 750", m.Cost)
	}
	want := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if !m.BetTimestamp.Equal(want) {
		t.Errorf("BetTimestamp = %v, want %v", m.BetTimestamp, want)
	}
	if m.TransactionHash != "0xfeed" {
		t.Errorf("TransactionHash = %q, want %q", m.TransactionHash, "0xfeed")
	}
}

func TestToModel_Localizes(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	trade := validAPITrade()
	m, err := trade.ToModel(loc)
	if err != nil {
		t.Fatalf("ToModel failed: %v", err)
	}

	if m.BetTimestamp.Location() != loc {
		t.Errorf("BetTimestamp location = %v, want %v", m.BetTimestamp.Location(), loc)
	}
	// Same instant, different zone
	if m.BetTimestamp.Unix() != trade.Timestamp {
		t.Errorf("BetTimestamp unix = %d, want %d", m.BetTimestamp.Unix(), trade.Timestamp)
	}
}

func TestToModel_NilLocationDefaultsUTC(t *testing.T) {
	trade := validAPITrade()
	m, err := trade.ToModel(nil)
	if err != nil {
		t.Fatalf("ToModel failed: %v", err)
	}
	if m.BetTimestamp.Location() != time.UTC {
		t.Errorf("BetTimestamp location = %v, want UTC", m.BetTimestamp.Location())
	}
}

func TestToModel_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*APITrade)
		wantErr error
	}{
		{"no display name", func(tr *APITrade) { tr.Name = "" }, ErrMissingName},
		{"no wallet", func(tr *APITrade) { tr.ProxyWallet = "" }, ErrMissingWallet},
		{"no event slug", func(tr *APITrade) { tr.EventSlug = "" }, ErrMissingEventSlug},
		{"zero timestamp", func(tr *APITrade) { tr.Timestamp = 0 }, ErrMissingTimestamp},
		{"negative price", func(tr *APITrade) { tr.Price = decimal.NewFromInt(-1) }, ErrNegativeAmount},
		{"negative size", func(tr *APITrade) { tr.Size = decimal.NewFromInt(-5) }, ErrNegativeAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trade := validAPITrade()
			tt.mutate(&trade)
			_, err := trade.ToModel(time.UTC)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ToModel error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestToModel_EmptyTransactionHashAllowed(t *testing.T) {
	trade := validAPITrade()
	trade.TransactionHash = ""

	m, err := trade.ToModel(time.UTC)
	if err != nil {
		t.Fatalf("ToModel failed: %v", err)
	}
	if m.TransactionHash != "" {
		t.Errorf("TransactionHash = %q, want empty", m.TransactionHash)
	}
}
