package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Normalized Trade
// -----------------------------------------------------------------------------

// Trade is a normalized trade row from the Polymarket data API.
type Trade struct {
	DisplayName     string          // Trader display name (natural key for pm.users)
	WalletAddress   string          // Proxy wallet address (natural key for pm.wallets)
	EventSlug       string          // Event slug (natural key for pm.events)
	Outcome         string          // Outcome label (e.g., "Yes", "No")
	BetTimestamp    time.Time       // Trade time, localized
	Price           decimal.Decimal // Execution price (0-1 range)
	Size            decimal.Decimal // Number of shares
	Cost            decimal.Decimal // price * size, computed during normalization
	Side            string          // BUY or SELL
	Asset           string          // Outcome token id
	ConditionID     string          // Market condition id
	Title           string          // Market title
	TransactionHash string          // On-chain tx hash (dedup key for pm.bets)
}

// Qualifies reports whether the trade's cost meets the threshold.
func (t Trade) Qualifies(threshold decimal.Decimal) bool {
	return t.Cost.GreaterThanOrEqual(threshold)
}

// -----------------------------------------------------------------------------
// Persisted Entities
// -----------------------------------------------------------------------------

// User represents a row in pm.users. Created on first sighting, never updated.
type User struct {
	UserID      uuid.UUID
	DisplayName string
}

// Wallet represents a row in pm.wallets. Created on first sighting.
type Wallet struct {
	WalletID      uuid.UUID
	WalletAddress string
}

// Event represents a row in pm.events. Exists only if at least one
// qualifying bet references it.
type Event struct {
	EventID   uuid.UUID
	EventSlug string
	Outcome   string
}

// Bet represents a row in pm.bets, ready for insert. The surrogate keys
// come from the id maps resolved after the user/wallet/event upserts.
type Bet struct {
	UserID          uuid.UUID
	WalletID        uuid.UUID
	EventID         uuid.UUID
	BetTimestamp    time.Time
	Cost            decimal.Decimal
	TransactionHash string
	Title           string
	Outcome         string
	Side            string
	Asset           string
	ConditionID     string
	Price           decimal.Decimal
	Size            decimal.Decimal
}
