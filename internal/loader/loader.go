package loader

import (
	"context"
	"fmt"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/feral-file/ff-greeting-cards/internal/adapter"
	"github.com/feral-file/ff-greeting-cards/internal/domain"
	"github.com/feral-file/ff-greeting-cards/internal/logger"
	"github.com/feral-file/ff-greeting-cards/internal/providers/ethereum"
	"github.com/feral-file/ff-greeting-cards/internal/settle"
)

// Loader fetches the window of most recently minted cards
//
//go:generate mockgen -source=loader.go -destination=../mocks/loader.go -package=mocks -mock_names=Loader=MockLoader
type Loader interface {
	// Load fetches up to windowSize of the newest tokens.
	// Tokens whose reads fail are dropped; only failures before any token read is issued are returned.
	// The order of the returned records is unspecified.
	Load(ctx context.Context, totalSupply uint64, windowSize int) ([]domain.TokenRecord, error)

	// LoadLatest reads the total supply and then loads the window
	LoadLatest(ctx context.Context, windowSize int) ([]domain.TokenRecord, error)

	// Close stops the worker pool
	Close()
}

// Config holds the loader configuration
type Config struct {
	// MaxConcurrency caps concurrent token reads across all loads
	MaxConcurrency int
}

type loader struct {
	reader  ethereum.LedgerReader
	pool    pond.Pool
	clock   adapter.Clock
	metrics *Metrics
}

// NewLoader creates a new collection loader
func NewLoader(cfg Config, reader ethereum.LedgerReader, clock adapter.Clock, metrics *Metrics) Loader {
	concurrency := cfg.MaxConcurrency
	if concurrency <= 0 {
		concurrency = 64
	}

	return &loader{
		reader:  reader,
		pool:    pond.NewPool(concurrency),
		clock:   clock,
		metrics: metrics,
	}
}

// LoadLatest reads the total supply and then loads the window
func (l *loader) LoadLatest(ctx context.Context, windowSize int) ([]domain.TokenRecord, error) {
	totalSupply, err := l.reader.TotalSupply(ctx)
	if err != nil {
		l.metrics.observeLoad("error", 0, 0, 0)
		return nil, fmt.Errorf("%w: failed to read total supply: %w", domain.ErrCollectionUnavailable, err)
	}

	return l.Load(ctx, totalSupply, windowSize)
}

// Load fetches up to windowSize of the newest tokens
func (l *loader) Load(ctx context.Context, totalSupply uint64, windowSize int) ([]domain.TokenRecord, error) {
	if windowSize < 1 {
		return nil, domain.ErrInvalidWindow
	}

	if totalSupply == 0 {
		logger.DebugCtx(ctx, "Empty collection, skipping load")
		return []domain.TokenRecord{}, nil
	}

	start := l.clock.Now()

	lastTokenID, err := l.reader.LastTokenID(ctx)
	if err != nil {
		l.metrics.observeLoad("error", 0, 0, l.clock.Since(start).Seconds())
		return nil, fmt.Errorf("%w: failed to read last token id: %w", domain.ErrCollectionUnavailable, err)
	}

	ids := windowIDs(lastTokenID, windowSize)
	if len(ids) == 0 {
		l.metrics.observeLoad("success", 0, 0, l.clock.Since(start).Seconds())
		return []domain.TokenRecord{}, nil
	}

	outcome := settle.All(ctx, ids, l.readToken, settle.Options[uint64]{
		Pool: l.pool,
		OnFailure: func(id uint64, err error) {
			logger.DebugCtx(ctx, "Dropping token from window", logger.TokenID(id), zap.Error(err))
		},
	})

	duration := l.clock.Since(start)
	l.metrics.observeLoad("success", len(outcome.Succeeded), outcome.FailedCount, duration.Seconds())

	logger.InfoCtx(ctx, "Collection window loaded",
		zap.Uint64("total_supply", totalSupply),
		zap.Uint64("first_token_id", ids[0]),
		zap.Uint64("last_token_id", lastTokenID),
		zap.Int("loaded", len(outcome.Succeeded)),
		zap.Int("dropped", outcome.FailedCount),
		zap.Duration("duration", duration),
	)

	return outcome.Succeeded, nil
}

// readToken assembles one record from three concurrent sub-reads.
// Any failing sub-read or absent metadata fails the whole token.
func (l *loader) readToken(ctx context.Context, tokenID uint64) (domain.TokenRecord, error) {
	var (
		metadata *domain.CardMetadata
		owner    string
		approved string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		metadata, err = l.reader.TokenMetadata(gctx, tokenID)
		return err
	})
	g.Go(func() error {
		var err error
		owner, err = l.reader.TokenOwner(gctx, tokenID)
		return err
	})
	g.Go(func() error {
		var err error
		approved, err = l.reader.Approved(gctx, tokenID)
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.TokenRecord{}, err
	}

	if metadata == nil {
		return domain.TokenRecord{}, fmt.Errorf("%w: %d", domain.ErrMetadataMissing, tokenID)
	}

	return domain.TokenRecord{
		TokenID:          tokenID,
		Metadata:         *metadata,
		Owner:            owner,
		ApprovedOperator: approved,
	}, nil
}

// Close stops the worker pool
func (l *loader) Close() {
	l.pool.StopAndWait()
}

// windowIDs returns the ids from max(1, last-window+1) through last
func windowIDs(lastTokenID uint64, windowSize int) []uint64 {
	if lastTokenID == 0 || windowSize < 1 {
		return nil
	}

	first := uint64(1)
	if lastTokenID >= uint64(windowSize) {
		first = lastTokenID - uint64(windowSize) + 1
	}

	// counted loop: last may be MaxUint64
	n := lastTokenID - first + 1
	ids := make([]uint64, 0, n)
	for i := uint64(0); i < n; i++ {
		ids = append(ids, first+i)
	}
	return ids
}
