package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/whalewatch/polymarket-data/internal/api"
	"github.com/whalewatch/polymarket-data/internal/model"
	"github.com/whalewatch/polymarket-data/internal/store"
)

// TradeSource fetches raw trades from the data API.
type TradeSource interface {
	GetTrades(ctx context.Context, opts api.GetTradesOptions) ([]api.APITrade, error)
}

// Persister writes normalized entities to the pm schema.
type Persister interface {
	UpsertUsers(ctx context.Context, displayNames []string) (int, error)
	UpsertWallets(ctx context.Context, walletAddresses []string) (int, error)
	UpsertEvents(ctx context.Context, eventSlugs []string) (int, error)
	UserIDs(ctx context.Context, displayNames []string) (map[string]uuid.UUID, error)
	WalletIDs(ctx context.Context, walletAddresses []string) (map[string]uuid.UUID, error)
	EventIDs(ctx context.Context, eventSlugs []string) (map[string]uuid.UUID, error)
	InsertBets(ctx context.Context, bets []model.Bet) (store.BetStats, error)
}

// Config holds runner settings.
type Config struct {
	FetchLimit    int             // Trades requested per fetch
	FetchOffset   int             // Pagination offset
	CostThreshold decimal.Decimal // Minimum cost to qualify
	Location      *time.Location  // Zone for bet timestamps
}

// Summary reports what one ingestion run did.
type Summary struct {
	Fetched         int // Raw trades returned by the API
	Normalized      int // Trades surviving normalization
	Skipped         int // Trades dropped during normalization
	Qualifying      int // Trades with cost >= threshold
	Unresolved      int // Qualifying trades whose ids could not be resolved
	UsersInserted   int
	WalletsInserted int
	EventsInserted  int
	Bets            store.BetStats
}

// Runner executes the ingestion pipeline.
type Runner struct {
	cfg    Config
	source TradeSource
	store  Persister
	logger *slog.Logger
}

// NewRunner creates a Runner.
func NewRunner(cfg Config, source TradeSource, persister Persister, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Runner{
		cfg:    cfg,
		source: source,
		store:  persister,
		logger: logger,
	}
}

// Run performs one full ingestion pass: fetch, normalize, filter, persist.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	var sum Summary
	start := time.Now()

	raw, err := r.source.GetTrades(ctx, api.GetTradesOptions{
		Limit:  r.cfg.FetchLimit,
		Offset: r.cfg.FetchOffset,
	})
	if err != nil {
		return sum, fmt.Errorf("fetch trades: %w", err)
	}
	sum.Fetched = len(raw)

	trades := make([]model.Trade, 0, len(raw))
	for _, t := range raw {
		m, err := t.ToModel(r.cfg.Location)
		if err != nil {
			sum.Skipped++
			r.logger.Debug("dropping trade",
				"reason", err,
				"transaction_hash", t.TransactionHash,
			)
			continue
		}
		trades = append(trades, m)
	}
	sum.Normalized = len(trades)

	qualifying := Filter(trades, r.cfg.CostThreshold)
	sum.Qualifying = len(qualifying)

	// Users and wallets are stored for every trade, qualifying or not.
	names := DistinctDisplayNames(trades)
	wallets := DistinctWalletAddresses(trades)

	// Events exist only if a qualifying bet references them.
	slugs := DistinctEventSlugs(qualifying)

	r.logger.Info("normalized trades",
		"fetched", sum.Fetched,
		"normalized", sum.Normalized,
		"skipped", sum.Skipped,
		"qualifying", sum.Qualifying,
		"users", len(names),
		"wallets", len(wallets),
		"events", len(slugs),
	)

	if sum.UsersInserted, err = r.store.UpsertUsers(ctx, names); err != nil {
		return sum, fmt.Errorf("upsert users: %w", err)
	}
	if sum.WalletsInserted, err = r.store.UpsertWallets(ctx, wallets); err != nil {
		return sum, fmt.Errorf("upsert wallets: %w", err)
	}
	if len(slugs) > 0 {
		if sum.EventsInserted, err = r.store.UpsertEvents(ctx, slugs); err != nil {
			return sum, fmt.Errorf("upsert events: %w", err)
		}
	}

	userIDs, err := r.store.UserIDs(ctx, names)
	if err != nil {
		return sum, fmt.Errorf("resolve user ids: %w", err)
	}
	walletIDs, err := r.store.WalletIDs(ctx, wallets)
	if err != nil {
		return sum, fmt.Errorf("resolve wallet ids: %w", err)
	}
	eventIDs, err := r.store.EventIDs(ctx, slugs)
	if err != nil {
		return sum, fmt.Errorf("resolve event ids: %w", err)
	}

	bets := make([]model.Bet, 0, len(qualifying))
	for _, t := range qualifying {
		bet, ok := buildBet(t, userIDs, walletIDs, eventIDs)
		if !ok {
			// Should not happen after a successful upsert; skip rather
			// than abort the run.
			sum.Unresolved++
			r.logger.Warn("unresolved ids for qualifying trade",
				"display_name", t.DisplayName,
				"event_slug", t.EventSlug,
				"transaction_hash", t.TransactionHash,
			)
			continue
		}
		bets = append(bets, bet)
	}

	if len(bets) > 0 {
		stats, err := r.store.InsertBets(ctx, bets)
		sum.Bets = stats
		if err != nil {
			return sum, fmt.Errorf("insert bets: %w", err)
		}
	}

	r.logger.Info("ingestion complete",
		"users_inserted", sum.UsersInserted,
		"wallets_inserted", sum.WalletsInserted,
		"events_inserted", sum.EventsInserted,
		"bets_inserted", sum.Bets.Inserted,
		"bets_duplicate", sum.Bets.Duplicates,
		"bets_rejected", sum.Bets.Rejected,
		"duration", time.Since(start),
	)

	return sum, nil
}

// RunLoop re-runs the pipeline on a ticker until the context is cancelled.
// A failed run is logged; the next tick starts fresh.
func (r *Runner) RunLoop(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Run immediately on start.
	if _, err := r.Run(ctx); err != nil {
		r.logger.Error("ingestion run failed", "err", err)
	}

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("ingestion loop stopped")
			return nil
		case <-ticker.C:
			if _, err := r.Run(ctx); err != nil {
				r.logger.Error("ingestion run failed", "err", err)
			}
		}
	}
}

// buildBet resolves surrogate keys for a qualifying trade.
func buildBet(
	t model.Trade,
	userIDs, walletIDs, eventIDs map[string]uuid.UUID,
) (model.Bet, bool) {
	userID, ok := userIDs[t.DisplayName]
	if !ok {
		return model.Bet{}, false
	}
	walletID, ok := walletIDs[t.WalletAddress]
	if !ok {
		return model.Bet{}, false
	}
	eventID, ok := eventIDs[t.EventSlug]
	if !ok {
		return model.Bet{}, false
	}

	return model.Bet{
		UserID:          userID,
		WalletID:        walletID,
		EventID:         eventID,
		BetTimestamp:    t.BetTimestamp,
		Cost:            t.Cost,
		TransactionHash: t.TransactionHash,
		Title:           t.Title,
		Outcome:         t.Outcome,
		Side:            t.Side,
		Asset:           t.Asset,
		ConditionID:     t.ConditionID,
		Price:           t.Price,
		Size:            t.Size,
	}, true
}
