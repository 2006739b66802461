// Package api provides the Polymarket data API client.
//
// Endpoint:
//   - https://data-api.polymarket.com/trades
//
// The trades endpoint is public (no authentication) and returns a bare
// JSON array of trade objects, newest first. Pagination is limit/offset.
package api
