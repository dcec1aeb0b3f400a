package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// CardMetadata is the immutable on-chain payload of a greeting card
type CardMetadata struct {
	Name      string `json:"name"`
	Message   string `json:"message"`
	Festival  string `json:"festival"`
	ImageURI  string `json:"image_uri,omitempty"` // empty when the card was minted without an image
	Sender    string `json:"sender"`
	CreatedAt int64  `json:"created_at"` // unix seconds
}

// TokenRecord is the client-side view of one greeting-card NFT
type TokenRecord struct {
	TokenID          uint64       `json:"token_id"`
	Metadata         CardMetadata `json:"metadata"`
	Owner            string       `json:"owner"`
	ApprovedOperator string       `json:"approved_operator,omitempty"`
}

// HasApprovedOperator reports whether a delegated-transfer grantee is set
func (r TokenRecord) HasApprovedOperator() bool {
	return r.ApprovedOperator != ""
}

// NormalizeAddress returns the checksummed form of an EVM address.
// It returns an empty string for the zero address so that "no approval" stays absent.
func NormalizeAddress(address string) string {
	if !common.IsHexAddress(address) {
		return ""
	}

	addr := common.HexToAddress(address)
	if addr == (common.Address{}) {
		return ""
	}

	return addr.Hex()
}

// IsValidAddress checks if a string is a well-formed, non-zero EVM address
func IsValidAddress(address string) bool {
	return NormalizeAddress(strings.TrimSpace(address)) != ""
}
