// Package database provides PostgreSQL connection pool management.
//
// The ingestor uses a single database holding the pm schema
// (users, wallets, events, bets).
package database
