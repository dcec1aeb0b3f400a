package dto

import (
	"time"

	apierrors "github.com/feral-file/ff-greeting-cards/internal/api/shared/errors"
	"github.com/feral-file/ff-greeting-cards/internal/wallet"
)

// ReloadResponse represents the outcome of a collection reload
type ReloadResponse struct {
	Snapshot SnapshotInfo `json:"snapshot"`
}

// CardActionResponse represents the outcome of a confirmed card action
type CardActionResponse struct {
	TokenID  uint64       `json:"token_id"`
	Action   string       `json:"action"`
	Snapshot SnapshotInfo `json:"snapshot"`
}

// WalletResponse represents the wallet session status
type WalletResponse struct {
	wallet.Status
	ChainID int64 `json:"chain_id"`
}

// LiveSearchMessage is pushed to live search clients after each debounced search or failure
type LiveSearchMessage struct {
	Type      string              `json:"type"` // "session", "results" or "error"
	SessionID string              `json:"session_id"`
	Term      string              `json:"term,omitempty"`
	Cards     []CardResponse      `json:"cards,omitempty"`
	Total     int                 `json:"total"`
	Snapshot  *SnapshotInfo       `json:"snapshot,omitempty"`
	Error     *apierrors.APIError `json:"error,omitempty"`
	SentAt    time.Time           `json:"sent_at"`
}
