package api

import (
	"errors"
	"time"

	"github.com/whalewatch/polymarket-data/internal/model"
)

// Conversion errors for trades that cannot be normalized.
var (
	ErrMissingName      = errors.New("missing display name")
	ErrMissingWallet    = errors.New("missing proxy wallet")
	ErrMissingEventSlug = errors.New("missing event slug")
	ErrMissingTimestamp = errors.New("missing timestamp")
	ErrNegativeAmount   = errors.New("negative price or size")
)

// ToModel normalizes an API trade into a model.Trade, computing
// cost = price * size and localizing the timestamp. Trades missing a
// required field are rejected; callers skip them and keep going.
func (t *APITrade) ToModel(loc *time.Location) (model.Trade, error) {
	if t.Name == "" {
		return model.Trade{}, ErrMissingName
	}
	if t.ProxyWallet == "" {
		return model.Trade{}, ErrMissingWallet
	}
	if t.EventSlug == "" {
		return model.Trade{}, ErrMissingEventSlug
	}
	if t.Timestamp <= 0 {
		return model.Trade{}, ErrMissingTimestamp
	}
	if t.Price.IsNegative() || t.Size.IsNegative() {
		return model.Trade{}, ErrNegativeAmount
	}

	if loc == nil {
		loc = time.UTC
	}

	return model.Trade{
		DisplayName:     t.Name,
		WalletAddress:   t.ProxyWallet,
		EventSlug:       t.EventSlug,
		Outcome:         t.Outcome,
		BetTimestamp:    time.Unix(t.Timestamp, 0).In(loc),
		Price:           t.Price,
		Size:            t.Size,
		Cost:            t.Price.Mul(t.Size),
		Side:            t.Side,
		Asset:           t.Asset,
		ConditionID:     t.ConditionID,
		Title:           t.Title,
		TransactionHash: t.TransactionHash,
	}, nil
}
