package collection

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-greeting-cards/internal/adapter"
	"github.com/feral-file/ff-greeting-cards/internal/domain"
	"github.com/feral-file/ff-greeting-cards/internal/loader"
	"github.com/feral-file/ff-greeting-cards/internal/logger"
	"github.com/feral-file/ff-greeting-cards/internal/providers/ethereum"
)

// DefaultWindowSize is the number of most recent tokens loaded when none is configured
const DefaultWindowSize = 50

// Snapshot is the set of records currently on display
type Snapshot struct {
	Records    []domain.TokenRecord
	Generation uint64    // generation of the load that produced Records, or of the last failed load
	LoadedAt   time.Time // zero until the first successful load
	Err        error     // error of the last applied load, nil when it succeeded
}

// Collection owns the displayed snapshot and the actions that change it
//
//go:generate mockgen -source=collection.go -destination=../mocks/collection.go -package=mocks -mock_names=Collection=MockCollection
type Collection interface {
	// Reload loads the latest window and applies it unless a newer load was applied first
	Reload(ctx context.Context) (Snapshot, error)

	// Snapshot returns the current snapshot
	Snapshot() Snapshot

	// Records returns the records of the current snapshot
	Records() []domain.TokenRecord

	// Get returns a displayed record by token id
	Get(tokenID uint64) (domain.TokenRecord, error)

	// Transfer moves a token to the recipient and reloads on success
	Transfer(ctx context.Context, tokenID uint64, recipient string) error

	// Approve grants an operator and reloads on success
	Approve(ctx context.Context, tokenID uint64, operator string) error

	// RevokeApproval clears the approved operator and reloads on success
	RevokeApproval(ctx context.Context, tokenID uint64) error

	// Burn destroys a token and reloads on success
	Burn(ctx context.Context, tokenID uint64) error
}

// Config holds the collection configuration
type Config struct {
	WindowSize int
}

type collection struct {
	config Config
	loader loader.Loader
	writer ethereum.LedgerWriter
	clock  adapter.Clock

	mu       sync.RWMutex
	issued   uint64
	snapshot Snapshot
}

// NewCollection creates an empty collection; call Reload to populate it
func NewCollection(cfg Config, l loader.Loader, writer ethereum.LedgerWriter, clock adapter.Clock) Collection {
	if cfg.WindowSize < 1 {
		cfg.WindowSize = DefaultWindowSize
	}

	return &collection{
		config:   cfg,
		loader:   l,
		writer:   writer,
		clock:    clock,
		snapshot: Snapshot{Records: []domain.TokenRecord{}},
	}
}

// Reload issues a new generation and loads the latest window.
// Loads may resolve out of order; one resolving after a newer load was applied is dropped.
// A failed load keeps the previous records and records the error.
func (c *collection) Reload(ctx context.Context) (Snapshot, error) {
	c.mu.Lock()
	c.issued++
	generation := c.issued
	c.mu.Unlock()

	records, err := c.loader.LoadLatest(ctx, c.config.WindowSize)

	c.mu.Lock()
	defer c.mu.Unlock()

	if generation < c.snapshot.Generation {
		logger.DebugCtx(ctx, "Discarding superseded load",
			zap.Uint64("generation", generation),
			zap.Uint64("applied", c.snapshot.Generation),
		)
		return c.snapshot, nil
	}

	c.snapshot.Generation = generation
	if err != nil {
		c.snapshot.Err = err
		logger.WarnCtx(ctx, "Failed to reload collection, keeping previous records",
			zap.Uint64("generation", generation),
			zap.Error(err),
		)
		return c.snapshot, err
	}

	c.snapshot = Snapshot{
		Records:    records,
		Generation: generation,
		LoadedAt:   c.clock.Now(),
	}
	logger.InfoCtx(ctx, "Collection reloaded",
		zap.Uint64("generation", generation),
		zap.Int("count", len(records)),
	)

	return c.snapshot, nil
}

func (c *collection) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

func (c *collection) Records() []domain.TokenRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot.Records
}

func (c *collection) Get(tokenID uint64) (domain.TokenRecord, error) {
	for _, r := range c.Records() {
		if r.TokenID == tokenID {
			return r, nil
		}
	}
	return domain.TokenRecord{}, fmt.Errorf("%w: %d", domain.ErrTokenNotFound, tokenID)
}

func (c *collection) Transfer(ctx context.Context, tokenID uint64, recipient string) error {
	return c.mutate(ctx, "transfer", tokenID, func() error {
		return c.writer.Transfer(ctx, tokenID, recipient)
	})
}

func (c *collection) Approve(ctx context.Context, tokenID uint64, operator string) error {
	return c.mutate(ctx, "approve", tokenID, func() error {
		return c.writer.Approve(ctx, tokenID, operator)
	})
}

func (c *collection) RevokeApproval(ctx context.Context, tokenID uint64) error {
	return c.mutate(ctx, "revoke", tokenID, func() error {
		return c.writer.RevokeApproval(ctx, tokenID)
	})
}

func (c *collection) Burn(ctx context.Context, tokenID uint64) error {
	return c.mutate(ctx, "burn", tokenID, func() error {
		return c.writer.Burn(ctx, tokenID)
	})
}

// mutate runs a write and reloads the whole window once it succeeds.
// The write error is returned unchanged; a failed reload after a successful write is only logged.
func (c *collection) mutate(ctx context.Context, action string, tokenID uint64, write func() error) error {
	if err := write(); err != nil {
		logger.WarnCtx(ctx, "Card action failed",
			zap.String("action", action),
			logger.TokenID(tokenID),
			zap.Error(err),
		)
		return err
	}

	logger.InfoCtx(ctx, "Card action confirmed", zap.String("action", action), logger.TokenID(tokenID))

	if _, err := c.Reload(ctx); err != nil {
		logger.WarnCtx(ctx, "Failed to reload after card action",
			zap.String("action", action),
			logger.TokenID(tokenID),
			zap.Error(err),
		)
	}

	return nil
}
