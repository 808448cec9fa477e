package ledger

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/samber/lo"

	orderUsecases "github.com/SportsX-xyz/sportsx-ticket-backend/internal/application/order/usecases"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/domain/order"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/infrastructure/cache"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/biztime"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/config"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/id"
	"github.com/SportsX-xyz/sportsx-ticket-backend/internal/shared/logger"
)

const maxNonceAttempts = 3

// commitment levels in increasing strength.
var commitmentRank = map[string]int{
	"processed": 1,
	"confirmed": 2,
	"finalized": 3,
}

type NonceReserver interface {
	Reserve(ctx context.Context, nonce, ticketID string) error
}

type ConfirmationCache interface {
	Get(ctx context.Context, txHash string) (*cache.CachedConfirmation, error)
	Put(ctx context.Context, txHash string, conf cache.CachedConfirmation) error
}

// Client implements the order SettlementLedger port against a ledger node.
type Client struct {
	signer     *Signer
	rpc        *rpcClient
	nonces     NonceReserver
	confirms   ConfirmationCache
	validity   time.Duration
	commitment string
	now        func() time.Time
	logger     logger.Interface
}

func NewClient(
	cfg config.LedgerConfig,
	signer *Signer,
	nonces NonceReserver,
	confirms ConfirmationCache,
	logger logger.Interface,
) (*Client, error) {
	if cfg.RPCURL == "" {
		return nil, fmt.Errorf("ledger rpc url is required")
	}
	if _, ok := commitmentRank[cfg.Commitment]; !ok {
		return nil, fmt.Errorf("unknown ledger commitment %q", cfg.Commitment)
	}

	return &Client{
		signer: signer,
		rpc: &rpcClient{
			url:        cfg.RPCURL,
			httpClient: &http.Client{Timeout: cfg.RequestTimeout()},
		},
		nonces:     nonces,
		confirms:   confirms,
		validity:   cfg.ArtifactValidity(),
		commitment: cfg.Commitment,
		now:        biztime.NowUTC,
		logger:     logger,
	}, nil
}

// RequestSettlement signs a purchase authorization under a freshly reserved
// nonce.
func (c *Client) RequestSettlement(ctx context.Context, req orderUsecases.SettlementRequest) (*order.Settlement, error) {
	if req.BuyerWallet == "" {
		return nil, fmt.Errorf("buyer wallet is required")
	}

	nonce, err := c.reserveNonce(ctx, req.TicketID)
	if err != nil {
		return nil, err
	}

	validUntil := c.now().Add(c.validity).Truncate(time.Second)
	message, signature := c.signer.Sign(authorization{
		Buyer:      req.BuyerWallet,
		TicketID:   req.TicketID,
		MaxPrice:   req.PriceCeiling,
		ValidUntil: validUntil,
		Nonce:      nonce,
		Row:        req.Row,
		Column:     req.Column,
	})

	c.logger.Debugw("settlement authorized",
		"ticket_id", req.TicketID,
		"nonce", nonce,
		"valid_until", validUntil,
	)

	return &order.Settlement{
		Message:    message,
		Signature:  signature,
		Nonce:      nonce,
		ValidUntil: validUntil,
	}, nil
}

func (c *Client) reserveNonce(ctx context.Context, ticketID string) (string, error) {
	for attempt := 0; attempt < maxNonceAttempts; attempt++ {
		nonce := id.New()
		err := c.nonces.Reserve(ctx, nonce, ticketID)
		if err == nil {
			return nonce, nil
		}
		if !errors.Is(err, cache.ErrNonceTaken) {
			return "", err
		}
		c.logger.Warnw("settlement nonce collision", "ticket_id", ticketID, "attempt", attempt+1)
	}
	return "", fmt.Errorf("failed to reserve a settlement nonce after %d attempts", maxNonceAttempts)
}

// Confirm asks the ledger node whether txHash settled the authorization
// issued under nonce. A transaction binds to at most one nonce, so a hash
// already confirmed for another settlement never confirms this one. Only
// verdicts at the configured commitment are cached; a pending transaction
// reports failure without being remembered.
func (c *Client) Confirm(ctx context.Context, txHash, nonce string) (*orderUsecases.Confirmation, error) {
	if txHash == "" {
		return nil, fmt.Errorf("tx hash is required")
	}
	if nonce == "" {
		return nil, fmt.Errorf("settlement nonce is required")
	}

	cached, err := c.confirms.Get(ctx, txHash)
	if err != nil {
		c.logger.Warnw("confirmation cache read failed", "tx_hash", txHash, "error", err)
	} else if cached != nil {
		if cached.Success && cached.Nonce != nonce {
			c.logger.Warnw("transaction already settled another authorization", "tx_hash", txHash)
			return &orderUsecases.Confirmation{Success: false}, nil
		}
		return toConfirmation(*cached), nil
	}

	var result signatureStatusesResult
	params := []interface{}{
		[]string{txHash},
		map[string]bool{"searchTransactionHistory": true},
	}
	if err := c.rpc.call(ctx, "getSignatureStatuses", params, &result); err != nil {
		return nil, err
	}

	if len(result.Value) == 0 || result.Value[0] == nil {
		c.logger.Infow("transaction not found on ledger", "tx_hash", txHash)
		return &orderUsecases.Confirmation{Success: false}, nil
	}

	status := result.Value[0]
	if status.failed() {
		verdict := cache.CachedConfirmation{Success: false}
		c.remember(ctx, txHash, verdict)
		return toConfirmation(verdict), nil
	}
	if commitmentRank[status.ConfirmationStatus] < commitmentRank[c.commitment] {
		c.logger.Infow("transaction not yet at required commitment",
			"tx_hash", txHash,
			"status", status.ConfirmationStatus,
			"required", c.commitment,
		)
		return &orderUsecases.Confirmation{Success: false}, nil
	}

	carries, err := c.carriesNonce(ctx, txHash, nonce)
	if err != nil {
		return nil, err
	}
	if !carries {
		c.logger.Warnw("transaction does not carry the settlement nonce", "tx_hash", txHash, "nonce", nonce)
		return &orderUsecases.Confirmation{Success: false}, nil
	}

	verdict := cache.CachedConfirmation{Success: true, Nonce: nonce, FinalizedAt: c.now().UnixMilli()}
	c.remember(ctx, txHash, verdict)
	return toConfirmation(verdict), nil
}

// carriesNonce reports whether the settlement program logged nonce while
// executing txHash.
func (c *Client) carriesNonce(ctx context.Context, txHash, nonce string) (bool, error) {
	commitment := c.commitment
	if commitmentRank[commitment] < commitmentRank["confirmed"] {
		// getTransaction does not accept processed.
		commitment = "confirmed"
	}
	params := []interface{}{
		txHash,
		map[string]interface{}{
			"encoding":                       "json",
			"commitment":                     commitment,
			"maxSupportedTransactionVersion": 0,
		},
	}

	var tx *transactionResult
	if err := c.rpc.call(ctx, "getTransaction", params, &tx); err != nil {
		return false, err
	}
	if tx == nil || tx.Meta == nil {
		return false, nil
	}
	return lo.ContainsBy(tx.Meta.LogMessages, func(line string) bool {
		return strings.Contains(line, nonce)
	}), nil
}

func (c *Client) remember(ctx context.Context, txHash string, verdict cache.CachedConfirmation) {
	if err := c.confirms.Put(ctx, txHash, verdict); err != nil {
		c.logger.Warnw("confirmation cache write failed", "tx_hash", txHash, "error", err)
	}
}

func toConfirmation(v cache.CachedConfirmation) *orderUsecases.Confirmation {
	conf := &orderUsecases.Confirmation{Success: v.Success}
	if v.FinalizedAt > 0 {
		at := time.UnixMilli(v.FinalizedAt).UTC()
		conf.FinalizedAt = &at
	}
	return conf
}
