package executor

import (
	"context"
	"fmt"

	"github.com/feral-file/ff-greeting-cards/internal/api/shared/constants"
	"github.com/feral-file/ff-greeting-cards/internal/api/shared/dto"
	"github.com/feral-file/ff-greeting-cards/internal/collection"
	"github.com/feral-file/ff-greeting-cards/internal/domain"
	"github.com/feral-file/ff-greeting-cards/internal/search"
	"github.com/feral-file/ff-greeting-cards/internal/wallet"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// ListCards searches the displayed collection and returns one page of the sorted result
	ListCards(ctx context.Context, criteria domain.FilterCriteria, limit *int, offset *uint64) (*dto.CardListResponse, error)

	// GetCard retrieves a displayed card by its token id
	GetCard(ctx context.Context, tokenID uint64) (*dto.CardResponse, error)

	// ReloadCards reloads the latest window from the chain
	ReloadCards(ctx context.Context) (*dto.ReloadResponse, error)

	// TransferCard transfers a card from the connected wallet
	TransferCard(ctx context.Context, tokenID uint64, recipient string) (*dto.CardActionResponse, error)

	// ApproveCard approves an operator for a card
	ApproveCard(ctx context.Context, tokenID uint64, operator string) (*dto.CardActionResponse, error)

	// RevokeCardApproval clears the approved operator of a card
	RevokeCardApproval(ctx context.Context, tokenID uint64) (*dto.CardActionResponse, error)

	// BurnCard burns a card
	BurnCard(ctx context.Context, tokenID uint64) (*dto.CardActionResponse, error)

	// GetWallet returns the wallet session status
	GetWallet(ctx context.Context) *dto.WalletResponse

	// DisconnectWallet drops the signing key of the wallet session
	DisconnectWallet(ctx context.Context) *dto.WalletResponse
}

type executor struct {
	collection collection.Collection
	engine     *search.Engine
	session    *wallet.Session
	chainID    int64
}

func NewExecutor(coll collection.Collection, engine *search.Engine, session *wallet.Session, chainID int64) Executor {
	return &executor{
		collection: coll,
		engine:     engine,
		session:    session,
		chainID:    chainID,
	}
}

func (e *executor) ListCards(ctx context.Context, criteria domain.FilterCriteria, limit *int, offset *uint64) (*dto.CardListResponse, error) {
	// Use defaults if not provided
	if limit == nil {
		defaultLimit := constants.DEFAULT_CARDS_LIMIT
		limit = &defaultLimit
	}
	if offset == nil {
		defaultOffset := constants.DEFAULT_OFFSET
		offset = &defaultOffset
	}

	snap := e.collection.Snapshot()

	// Nothing was ever loaded, the failure is the answer
	if snap.LoadedAt.IsZero() && snap.Err != nil {
		return nil, snap.Err
	}

	criteria = criteria.Normalize()
	results := e.engine.Search(snap.Records, criteria.SearchTerm, criteria)

	total := len(results)
	start := int(min(*offset, uint64(total)))
	end := min(start+*limit, total)

	resp := &dto.CardListResponse{
		Cards:    dto.MapRecordsToDTO(results[start:end]),
		Total:    total,
		Offset:   *offset,
		Criteria: criteria,
		Snapshot: dto.MapSnapshotInfo(snap),
	}
	if end < total {
		next := uint64(end)
		resp.NextOffset = &next
	}

	return resp, nil
}

func (e *executor) GetCard(ctx context.Context, tokenID uint64) (*dto.CardResponse, error) {
	record, err := e.collection.Get(tokenID)
	if err != nil {
		return nil, err
	}

	card := dto.MapRecordToDTO(record)
	return &card, nil
}

func (e *executor) ReloadCards(ctx context.Context) (*dto.ReloadResponse, error) {
	snap, err := e.collection.Reload(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload cards: %w", err)
	}

	return &dto.ReloadResponse{Snapshot: dto.MapSnapshotInfo(snap)}, nil
}

func (e *executor) TransferCard(ctx context.Context, tokenID uint64, recipient string) (*dto.CardActionResponse, error) {
	return e.act(tokenID, "transfer", func() error {
		return e.collection.Transfer(ctx, tokenID, recipient)
	})
}

func (e *executor) ApproveCard(ctx context.Context, tokenID uint64, operator string) (*dto.CardActionResponse, error) {
	return e.act(tokenID, "approve", func() error {
		return e.collection.Approve(ctx, tokenID, operator)
	})
}

func (e *executor) RevokeCardApproval(ctx context.Context, tokenID uint64) (*dto.CardActionResponse, error) {
	return e.act(tokenID, "revoke", func() error {
		return e.collection.RevokeApproval(ctx, tokenID)
	})
}

func (e *executor) BurnCard(ctx context.Context, tokenID uint64) (*dto.CardActionResponse, error) {
	return e.act(tokenID, "burn", func() error {
		return e.collection.Burn(ctx, tokenID)
	})
}

func (e *executor) act(tokenID uint64, action string, run func() error) (*dto.CardActionResponse, error) {
	if err := run(); err != nil {
		return nil, err
	}

	return &dto.CardActionResponse{
		TokenID:  tokenID,
		Action:   action,
		Snapshot: dto.MapSnapshotInfo(e.collection.Snapshot()),
	}, nil
}

func (e *executor) GetWallet(ctx context.Context) *dto.WalletResponse {
	return &dto.WalletResponse{
		Status:  e.session.Status(),
		ChainID: e.chainID,
	}
}

func (e *executor) DisconnectWallet(ctx context.Context) *dto.WalletResponse {
	e.session.Disconnect()
	return e.GetWallet(ctx)
}
