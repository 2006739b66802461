// Package ingest orchestrates the fetch -> normalize -> filter -> persist
// pipeline.
//
// One Run is one batch: a single API fetch, one normalize pass, one write
// pass. Users and wallets are persisted for every normalized trade; events
// and bets only for trades whose cost meets the threshold.
package ingest
