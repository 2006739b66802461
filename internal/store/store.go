package store

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store provides writes against the pm schema.
type Store struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// New creates a Store backed by the given pool.
func New(pool *pgxpool.Pool, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		pool:   pool,
		logger: logger,
	}
}

const (
	upsertUserSQL = `
		INSERT INTO pm.users (display_name)
		VALUES ($1)
		ON CONFLICT (display_name) DO NOTHING
	`
	upsertWalletSQL = `
		INSERT INTO pm.wallets (wallet_address)
		VALUES ($1)
		ON CONFLICT (wallet_address) DO NOTHING
	`
	upsertEventSQL = `
		INSERT INTO pm.events (event_slug)
		VALUES ($1)
		ON CONFLICT (event_slug) DO NOTHING
	`

	userIDsSQL = `
		SELECT display_name, user_id
		FROM pm.users
		WHERE display_name = ANY($1)
	`
	walletIDsSQL = `
		SELECT wallet_address, wallet_id
		FROM pm.wallets
		WHERE wallet_address = ANY($1)
	`
	eventIDsSQL = `
		SELECT event_slug, event_id
		FROM pm.events
		WHERE event_slug = ANY($1)
	`
)

// UpsertUsers inserts any display names not yet present. Returns the number
// of rows actually inserted.
func (s *Store) UpsertUsers(ctx context.Context, displayNames []string) (int, error) {
	return s.upsertNaturals(ctx, upsertUserSQL, displayNames)
}

// UpsertWallets inserts any wallet addresses not yet present.
func (s *Store) UpsertWallets(ctx context.Context, walletAddresses []string) (int, error) {
	return s.upsertNaturals(ctx, upsertWalletSQL, walletAddresses)
}

// UpsertEvents inserts any event slugs not yet present. Callers must only
// pass slugs referenced by at least one qualifying bet.
func (s *Store) UpsertEvents(ctx context.Context, eventSlugs []string) (int, error) {
	return s.upsertNaturals(ctx, upsertEventSQL, eventSlugs)
}

// UserIDs resolves display names to user ids.
func (s *Store) UserIDs(ctx context.Context, displayNames []string) (map[string]uuid.UUID, error) {
	return s.idMap(ctx, userIDsSQL, displayNames)
}

// WalletIDs resolves wallet addresses to wallet ids.
func (s *Store) WalletIDs(ctx context.Context, walletAddresses []string) (map[string]uuid.UUID, error) {
	return s.idMap(ctx, walletIDsSQL, walletAddresses)
}

// EventIDs resolves event slugs to event ids.
func (s *Store) EventIDs(ctx context.Context, eventSlugs []string) (map[string]uuid.UUID, error) {
	return s.idMap(ctx, eventIDsSQL, eventSlugs)
}

// upsertNaturals queues one insert per natural key in a single batch.
// ON CONFLICT DO NOTHING makes re-runs idempotent.
func (s *Store) upsertNaturals(ctx context.Context, sql string, naturals []string) (int, error) {
	if len(naturals) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, n := range naturals {
		batch.Queue(sql, n)
	}

	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for range naturals {
		ct, err := results.Exec()
		if err != nil {
			return inserted, err
		}
		inserted += int(ct.RowsAffected())
	}

	return inserted, nil
}

// idMap returns natural key -> surrogate uuid for the given naturals.
func (s *Store) idMap(ctx context.Context, sql string, naturals []string) (map[string]uuid.UUID, error) {
	m := make(map[string]uuid.UUID, len(naturals))
	if len(naturals) == 0 {
		return m, nil
	}

	rows, err := s.pool.Query(ctx, sql, naturals)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var natural string
		var id uuid.UUID
		if err := rows.Scan(&natural, &id); err != nil {
			return nil, err
		}
		m[natural] = id
	}

	return m, rows.Err()
}
