package wallet

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/feral-file/ff-greeting-cards/internal/domain"
)

// Status is the externally visible state of a wallet session
type Status struct {
	Connected bool   `json:"connected"`
	Address   string `json:"address,omitempty"`
}

// Session holds the signing key of the connected wallet.
// A single owner connects and disconnects it; every other component receives it by reference
// and only reads the status or asks it to sign.
type Session struct {
	mu      sync.RWMutex
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewSession creates a disconnected session
func NewSession() *Session {
	return &Session{}
}

// Connect loads a hex-encoded secp256k1 private key into the session
func (s *Session) Connect(privateKeyHex string) error {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(privateKeyHex), "0x"))
	if err != nil {
		return fmt.Errorf("failed to parse private key: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.key = key
	s.address = crypto.PubkeyToAddress(key.PublicKey)

	return nil
}

// Disconnect drops the signing key
func (s *Session) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.key = nil
	s.address = common.Address{}
}

// Connected reports whether a key is loaded
func (s *Session) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key != nil
}

// Address returns the signer address of the connected wallet
func (s *Session) Address() (common.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.key == nil {
		return common.Address{}, domain.ErrWalletNotConnected
	}
	return s.address, nil
}

// Status returns a snapshot of the session state
func (s *Session) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.key == nil {
		return Status{}
	}
	return Status{Connected: true, Address: s.address.Hex()}
}

// SignTx signs a transaction for the given chain with the connected key
func (s *Session) SignTx(tx *types.Transaction, chainID *big.Int) (*types.Transaction, error) {
	s.mu.RLock()
	key := s.key
	s.mu.RUnlock()

	if key == nil {
		return nil, domain.ErrWalletNotConnected
	}

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	return signed, nil
}
