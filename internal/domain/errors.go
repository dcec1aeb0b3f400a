package domain

import "errors"

var (
	// ErrTokenNotFound is returned when a token does not exist on the ledger
	ErrTokenNotFound = errors.New("token not found")

	// ErrMetadataMissing is returned when a token resolves without metadata
	ErrMetadataMissing = errors.New("token metadata missing")

	// ErrMetadataMalformed is returned when on-chain metadata cannot be represented
	ErrMetadataMalformed = errors.New("token metadata malformed")

	// ErrCollectionUnavailable is returned when a load fails before any token read is issued
	ErrCollectionUnavailable = errors.New("collection unavailable")

	// ErrInvalidWindow is returned when a load is requested with a window smaller than one
	ErrInvalidWindow = errors.New("window size must be at least 1")

	// ErrInvalidAddress is returned when a recipient or operator is not a valid address
	ErrInvalidAddress = errors.New("invalid address")

	// ErrWalletNotConnected is returned when a mutating call is attempted without a wallet session
	ErrWalletNotConnected = errors.New("wallet not connected")

	// ErrTxRejected is returned when a transaction is reverted or refused by the ledger
	ErrTxRejected = errors.New("transaction rejected")

	// ErrNetwork is returned when the ledger could not be reached
	ErrNetwork = errors.New("network error")
)
