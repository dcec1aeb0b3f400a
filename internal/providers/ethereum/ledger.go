package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/feral-file/ff-greeting-cards/internal/adapter"
	"github.com/feral-file/ff-greeting-cards/internal/domain"
	"github.com/feral-file/ff-greeting-cards/internal/logger"
	"github.com/feral-file/ff-greeting-cards/internal/wallet"
)

// LedgerReader reads greeting-card state from the chain
//
//go:generate mockgen -source=ledger.go -destination=../../mocks/ledger.go -package=mocks -mock_names=LedgerReader=MockLedgerReader,LedgerWriter=MockLedgerWriter,Ledger=MockLedger
type LedgerReader interface {
	// TotalSupply returns the number of cards in circulation
	TotalSupply(ctx context.Context) (uint64, error)

	// LastTokenID returns the highest token id ever assigned
	LastTokenID(ctx context.Context) (uint64, error)

	// TokenMetadata returns the card payload of a token, or nil when the token carries none
	TokenMetadata(ctx context.Context, tokenID uint64) (*domain.CardMetadata, error)

	// TokenOwner returns the current holder of a token
	TokenOwner(ctx context.Context, tokenID uint64) (string, error)

	// Approved returns the approved operator of a token, or an empty string when none is set
	Approved(ctx context.Context, tokenID uint64) (string, error)
}

// LedgerWriter submits mutating transactions signed by the connected wallet.
// None of the calls returns an updated record; callers reload the collection on success.
type LedgerWriter interface {
	// Transfer moves a token from the connected wallet to the recipient
	Transfer(ctx context.Context, tokenID uint64, recipient string) error

	// Approve grants an operator the right to transfer a token
	Approve(ctx context.Context, tokenID uint64, operator string) error

	// RevokeApproval clears the approved operator of a token
	RevokeApproval(ctx context.Context, tokenID uint64) error

	// Burn destroys a token
	Burn(ctx context.Context, tokenID uint64) error
}

// Ledger is the full chain collaborator
type Ledger interface {
	LedgerReader
	LedgerWriter
}

// Config holds the ledger configuration
type Config struct {
	ChainID             int64
	ContractAddress     string
	ReceiptTimeout      time.Duration // how long to wait for a transaction to be mined
	ReceiptPollInterval time.Duration // first polling interval, grows exponentially
}

type ledger struct {
	config   Config
	chainID  *big.Int
	contract common.Address
	abi      abi.ABI
	client   adapter.EthClient
	session  *wallet.Session
}

// NewLedger creates a ledger bound to the greeting-card contract
func NewLedger(cfg Config, client adapter.EthClient, session *wallet.Session) (Ledger, error) {
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("%w: contract %q", domain.ErrInvalidAddress, cfg.ContractAddress)
	}

	parsed, err := parseGreetingCardABI()
	if err != nil {
		return nil, err
	}

	if cfg.ReceiptTimeout <= 0 {
		cfg.ReceiptTimeout = 2 * time.Minute
	}
	if cfg.ReceiptPollInterval <= 0 {
		cfg.ReceiptPollInterval = time.Second
	}

	return &ledger{
		config:   cfg,
		chainID:  big.NewInt(cfg.ChainID),
		contract: common.HexToAddress(cfg.ContractAddress),
		abi:      parsed,
		client:   client,
		session:  session,
	}, nil
}

// TotalSupply returns the number of cards in circulation
func (l *ledger) TotalSupply(ctx context.Context) (uint64, error) {
	return l.callUint(ctx, "totalSupply")
}

// LastTokenID returns the highest token id ever assigned
func (l *ledger) LastTokenID(ctx context.Context) (uint64, error) {
	return l.callUint(ctx, "lastTokenId")
}

// TokenMetadata returns the card payload of a token
func (l *ledger) TokenMetadata(ctx context.Context, tokenID uint64) (*domain.CardMetadata, error) {
	out, err := l.call(ctx, "getTokenMetadata", new(big.Int).SetUint64(tokenID))
	if err != nil {
		return nil, err
	}

	md := *abi.ConvertType(out[0], new(onchainMetadata)).(*onchainMetadata)

	// A default-valued tuple means the token was never given metadata
	if md.CreatedAt == nil || md.CreatedAt.Sign() == 0 {
		return nil, nil
	}
	if !md.CreatedAt.IsInt64() {
		return nil, fmt.Errorf("%w: token %d created_at %s out of range", domain.ErrMetadataMalformed, tokenID, md.CreatedAt)
	}

	return &domain.CardMetadata{
		Name:      md.Name,
		Message:   md.Message,
		Festival:  md.Festival,
		ImageURI:  md.ImageURI,
		Sender:    md.Sender.Hex(),
		CreatedAt: md.CreatedAt.Int64(),
	}, nil
}

// TokenOwner returns the current holder of a token
func (l *ledger) TokenOwner(ctx context.Context, tokenID uint64) (string, error) {
	owner, err := l.callAddress(ctx, "ownerOf", new(big.Int).SetUint64(tokenID))
	if err != nil {
		return "", err
	}
	if owner == (common.Address{}) {
		return "", fmt.Errorf("%w: %d has no owner", domain.ErrTokenNotFound, tokenID)
	}
	return owner.Hex(), nil
}

// Approved returns the approved operator of a token
func (l *ledger) Approved(ctx context.Context, tokenID uint64) (string, error) {
	operator, err := l.callAddress(ctx, "getApproved", new(big.Int).SetUint64(tokenID))
	if err != nil {
		return "", err
	}
	return domain.NormalizeAddress(operator.Hex()), nil
}

// Transfer moves a token from the connected wallet to the recipient
func (l *ledger) Transfer(ctx context.Context, tokenID uint64, recipient string) error {
	if !domain.IsValidAddress(recipient) {
		return fmt.Errorf("%w: recipient %q", domain.ErrInvalidAddress, recipient)
	}

	from, err := l.session.Address()
	if err != nil {
		return err
	}

	return l.transact(ctx, "transferFrom", from, common.HexToAddress(strings.TrimSpace(recipient)), new(big.Int).SetUint64(tokenID))
}

// Approve grants an operator the right to transfer a token
func (l *ledger) Approve(ctx context.Context, tokenID uint64, operator string) error {
	if !domain.IsValidAddress(operator) {
		return fmt.Errorf("%w: operator %q", domain.ErrInvalidAddress, operator)
	}

	return l.transact(ctx, "approve", common.HexToAddress(strings.TrimSpace(operator)), new(big.Int).SetUint64(tokenID))
}

// RevokeApproval clears the approved operator by approving the zero address
func (l *ledger) RevokeApproval(ctx context.Context, tokenID uint64) error {
	return l.transact(ctx, "approve", common.Address{}, new(big.Int).SetUint64(tokenID))
}

// Burn destroys a token
func (l *ledger) Burn(ctx context.Context, tokenID uint64) error {
	return l.transact(ctx, "burn", new(big.Int).SetUint64(tokenID))
}

// call packs and executes a view call and unpacks its outputs
func (l *ledger) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := l.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack data: %w", err)
	}

	result, err := l.client.CallContract(ctx, ethereum.CallMsg{
		To:   &l.contract,
		Data: data,
	}, nil)
	if err != nil {
		if isRevertError(err) {
			return nil, fmt.Errorf("%w: %s reverted: %v", domain.ErrTokenNotFound, method, err)
		}
		return nil, fmt.Errorf("%w: failed to call %s: %v", domain.ErrNetwork, method, err)
	}

	out, err := l.abi.Unpack(method, result)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack result: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty result from %s", method)
	}

	return out, nil
}

func (l *ledger) callUint(ctx context.Context, method string) (uint64, error) {
	out, err := l.call(ctx, method)
	if err != nil {
		return 0, err
	}

	value, ok := out[0].(*big.Int)
	if !ok || !value.IsUint64() {
		return 0, fmt.Errorf("unexpected %s result: %v", method, out[0])
	}

	return value.Uint64(), nil
}

func (l *ledger) callAddress(ctx context.Context, method string, args ...interface{}) (common.Address, error) {
	out, err := l.call(ctx, method, args...)
	if err != nil {
		return common.Address{}, err
	}

	addr, ok := out[0].(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("unexpected %s result: %v", method, out[0])
	}

	return addr, nil
}

// transact signs and submits a contract call, then waits for it to be mined
func (l *ledger) transact(ctx context.Context, method string, args ...interface{}) error {
	from, err := l.session.Address()
	if err != nil {
		return err
	}

	data, err := l.abi.Pack(method, args...)
	if err != nil {
		return fmt.Errorf("failed to pack data: %w", err)
	}

	gas, err := l.client.EstimateGas(ctx, ethereum.CallMsg{
		From: from,
		To:   &l.contract,
		Data: data,
	})
	if err != nil {
		return classifyTxError(method, err)
	}

	nonce, err := l.client.PendingNonceAt(ctx, from)
	if err != nil {
		return fmt.Errorf("%w: failed to get nonce: %v", domain.ErrNetwork, err)
	}

	tx, err := l.buildTx(ctx, nonce, gas, data)
	if err != nil {
		return err
	}

	signed, err := l.session.SignTx(tx, l.chainID)
	if err != nil {
		return err
	}

	if err := l.client.SendTransaction(ctx, signed); err != nil {
		return classifyTxError(method, err)
	}

	logger.InfoCtx(ctx, "Transaction submitted",
		zap.String("method", method),
		zap.String("tx_hash", signed.Hash().Hex()),
		zap.Uint64("nonce", nonce),
	)

	receipt, err := l.waitMined(ctx, signed.Hash())
	if err != nil {
		return err
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("%w: %s reverted in tx %s", domain.ErrTxRejected, method, signed.Hash().Hex())
	}

	return nil
}

// buildTx creates a dynamic fee transaction, or a legacy one on chains without a base fee
func (l *ledger) buildTx(ctx context.Context, nonce, gas uint64, data []byte) (*types.Transaction, error) {
	head, err := l.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get latest header: %v", domain.ErrNetwork, err)
	}

	if head.BaseFee == nil {
		gasPrice, err := l.client.SuggestGasPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to suggest gas price: %v", domain.ErrNetwork, err)
		}

		return types.NewTx(&types.LegacyTx{
			Nonce:    nonce,
			GasPrice: gasPrice,
			Gas:      gas,
			To:       &l.contract,
			Data:     data,
		}), nil
	}

	tip, err := l.client.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to suggest gas tip: %v", domain.ErrNetwork, err)
	}

	// Fee cap leaves room for the base fee to double before the tx becomes unmineable
	feeCap := new(big.Int).Add(tip, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))

	return types.NewTx(&types.DynamicFeeTx{
		ChainID:   l.chainID,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       gas,
		To:        &l.contract,
		Data:      data,
	}), nil
}

// waitMined polls for the receipt of a transaction with exponential backoff
func (l *ledger) waitMined(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	var receipt *types.Receipt

	operation := func() error {
		r, err := l.client.TransactionReceipt(ctx, hash)
		if err != nil {
			return err
		}
		receipt = r
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = l.config.ReceiptPollInterval
	b.MaxInterval = 10 * time.Second
	b.MaxElapsedTime = l.config.ReceiptTimeout

	notify := func(err error, next time.Duration) {
		if !errors.Is(err, ethereum.NotFound) {
			logger.WarnCtx(ctx, "Failed to fetch receipt, retrying",
				zap.String("tx_hash", hash.Hex()),
				zap.Duration("next", next),
				zap.Error(err),
			)
		}
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify); err != nil {
		return nil, fmt.Errorf("%w: receipt for %s not available: %v", domain.ErrNetwork, hash.Hex(), err)
	}

	return receipt, nil
}

// isRevertError checks if the error is an EVM execution revert
func isRevertError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "execution reverted") ||
		strings.Contains(errStr, "invalid opcode") ||
		strings.Contains(errStr, "nonexistent token")
}

// classifyTxError maps submission failures to rejected or network errors
func classifyTxError(method string, err error) error {
	errStr := strings.ToLower(err.Error())
	if isRevertError(err) ||
		strings.Contains(errStr, "insufficient funds") ||
		strings.Contains(errStr, "nonce too low") ||
		strings.Contains(errStr, "replacement transaction underpriced") {
		return fmt.Errorf("%w: %s: %v", domain.ErrTxRejected, method, err)
	}
	return fmt.Errorf("%w: %s: %v", domain.ErrNetwork, method, err)
}
