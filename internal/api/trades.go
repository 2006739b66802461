package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// GetTrades fetches a page of recent trades.
func (c *Client) GetTrades(ctx context.Context, opts GetTradesOptions) ([]APITrade, error) {
	query := url.Values{}

	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Offset > 0 {
		query.Set("offset", strconv.Itoa(opts.Offset))
	}
	if opts.Market != "" {
		query.Set("market", opts.Market)
	}
	if opts.User != "" {
		query.Set("user", opts.User)
	}

	var trades []APITrade
	if err := c.get(ctx, "/trades", query, &trades); err != nil {
		return nil, fmt.Errorf("get trades: %w", err)
	}

	c.logger.Debug("fetched trades",
		"count", len(trades),
		"limit", opts.Limit,
		"offset", opts.Offset,
	)

	return trades, nil
}
