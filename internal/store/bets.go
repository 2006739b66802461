package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/whalewatch/polymarket-data/internal/model"
)

// PostgreSQL error codes classified as skip-and-continue for bet inserts.
const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

// BetStats summarizes an InsertBets call.
type BetStats struct {
	Inserted   int // New rows written
	Duplicates int // transaction_hash already present
	Rejected   int // Constraint violations (e.g., below minimum cost)
}

const insertBetSQL = `
	INSERT INTO pm.bets (
	  user_id, wallet_id, event_id,
	  bet_timestamp, cost,
	  transaction_hash,
	  title, outcome, side, asset, condition_id,
	  price, size
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	ON CONFLICT (transaction_hash) DO NOTHING
`

// InsertBets writes qualifying bets one at a time. A duplicate hash is a
// silent no-op; a check or uniqueness violation is logged and skipped; any
// other database error aborts the run.
func (s *Store) InsertBets(ctx context.Context, bets []model.Bet) (BetStats, error) {
	var stats BetStats

	for _, b := range bets {
		ct, err := s.pool.Exec(ctx, insertBetSQL,
			b.UserID, b.WalletID, b.EventID,
			b.BetTimestamp, b.Cost,
			nullIfEmpty(b.TransactionHash),
			b.Title, b.Outcome, b.Side, b.Asset, b.ConditionID,
			b.Price, b.Size,
		)
		if err != nil {
			if skip, reason := classifyBetError(err); skip {
				s.logger.Warn("skipping bet",
					"reason", reason,
					"transaction_hash", b.TransactionHash,
					"cost", b.Cost,
				)
				if reason == "duplicate" {
					stats.Duplicates++
				} else {
					stats.Rejected++
				}
				continue
			}
			return stats, err
		}

		if ct.RowsAffected() == 0 {
			stats.Duplicates++
		} else {
			stats.Inserted++
		}
	}

	return stats, nil
}

// classifyBetError reports whether the error is a per-row constraint
// violation that should be skipped, and a short reason label.
func classifyBetError(err error) (skip bool, reason string) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false, ""
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return true, "duplicate"
	case pgCheckViolation:
		return true, "check_violation"
	default:
		return false, ""
	}
}

// nullIfEmpty maps an empty string to SQL NULL. The unique index on
// transaction_hash ignores NULLs, so hashless rows never collide.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
