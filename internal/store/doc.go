// Package store implements persistence for the pm schema.
//
// Write semantics:
//   - users, wallets: upserted unconditionally for every normalized trade
//   - events: upserted only for slugs referenced by a qualifying bet
//   - bets: inserted with ON CONFLICT (transaction_hash) DO NOTHING;
//     re-ingesting a seen hash is a no-op
//
// A bet that violates the minimum-cost check constraint is skipped and
// counted, never fatal for the run.
package store
