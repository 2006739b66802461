package api

import "github.com/shopspring/decimal"

// APITrade represents one trade object from GET /trades.
//
// The payload also carries profile decoration (slug, icon, outcomeIndex,
// pseudonym, bio, profileImage, profileImageOptimized) which the ingestor
// has no use for; those fields are deliberately unmapped.
type APITrade struct {
	ProxyWallet     string          `json:"proxyWallet"`
	Name            string          `json:"name"`
	EventSlug       string          `json:"eventSlug"`
	Outcome         string          `json:"outcome"`
	Price           decimal.Decimal `json:"price"`
	Size            decimal.Decimal `json:"size"`
	Timestamp       int64           `json:"timestamp"` // Unix seconds
	Side            string          `json:"side"`      // BUY, SELL
	Asset           string          `json:"asset"`
	ConditionID     string          `json:"conditionId"`
	Title           string          `json:"title"`
	TransactionHash string          `json:"transactionHash"`
}

// GetTradesOptions configures a GetTrades request.
type GetTradesOptions struct {
	Limit  int
	Offset int
	Market string // Filter by condition id
	User   string // Filter by proxy wallet address
}
