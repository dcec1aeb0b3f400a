package dto

import (
	"strings"

	apierrors "github.com/feral-file/ff-greeting-cards/internal/api/shared/errors"
	"github.com/feral-file/ff-greeting-cards/internal/domain"
)

// TransferCardRequest represents the request body for transferring a card
type TransferCardRequest struct {
	Recipient string `json:"recipient"`
}

// Validate validates the request body
func (r *TransferCardRequest) Validate() error {
	if strings.TrimSpace(r.Recipient) == "" {
		return apierrors.NewValidationError("recipient is required")
	}
	if !domain.IsValidAddress(r.Recipient) {
		return apierrors.NewValidationError("invalid recipient address: " + r.Recipient)
	}
	return nil
}

// ApproveCardRequest represents the request body for approving an operator
type ApproveCardRequest struct {
	Operator string `json:"operator"`
}

// Validate validates the request body
func (r *ApproveCardRequest) Validate() error {
	if strings.TrimSpace(r.Operator) == "" {
		return apierrors.NewValidationError("operator is required")
	}
	if !domain.IsValidAddress(r.Operator) {
		return apierrors.NewValidationError("invalid operator address: " + r.Operator)
	}
	return nil
}

// LiveSearchRequest is one message received on the live search socket.
// Criteria fields left out keep their defaults.
type LiveSearchRequest struct {
	Term     string                 `json:"term"`
	Criteria *domain.FilterCriteria `json:"criteria,omitempty"`
	Limit    int                    `json:"limit,omitempty"`
}
