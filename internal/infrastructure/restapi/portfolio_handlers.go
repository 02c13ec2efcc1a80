package restapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"portfolio_engine/internal/app/port"
	"portfolio_engine/internal/client"
	"portfolio_engine/internal/domain/entity"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// defaultChainID is used when a request names no chain.
const defaultChainID = "ETHEREUM"

// DataResponse wraps every successful payload.
type DataResponse struct {
	Data any `json:"data"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// RefreshRequest is the body of POST /wallet-records/:id/refresh.
type RefreshRequest struct {
	Address string `json:"address" binding:"required"`
	Chain   string `json:"chain"`
}

// StoredSnapshotResponse is a persisted snapshot with its write time.
type StoredSnapshotResponse struct {
	WalletID string                `json:"walletId"`
	StoredAt time.Time             `json:"storedAt"`
	Snapshot entity.WalletSnapshot `json:"snapshot"`
}

// PortfolioHandler serves the portfolio HTTP API.
type PortfolioHandler struct {
	portfolioService port.PortfolioService
	snapshots        port.SnapshotReader
	bans             port.BannedTokenRegistry
	logger           port.Logger
	requestTimeout   time.Duration
}

// NewPortfolioHandler creates a new PortfolioHandler. snapshots and bans may be nil.
func NewPortfolioHandler(
	ps port.PortfolioService,
	snapshots port.SnapshotReader,
	bans port.BannedTokenRegistry,
	logger port.Logger,
	requestTimeout time.Duration,
) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: ps,
		snapshots:        snapshots,
		bans:             bans,
		logger:           logger,
		requestTimeout:   requestTimeout,
	}
}

func (h *PortfolioHandler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.requestTimeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.requestTimeout)
}

// ListChainsHandler returns the supported chains in registry order.
func (h *PortfolioHandler) ListChainsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, DataResponse{Data: h.portfolioService.ListSupportedChains()})
}

// GetWalletSnapshotHandler returns the aggregated holdings of one wallet on one chain.
// Banned tokens are flagged, or removed when excludeBanned=true.
func (h *PortfolioHandler) GetWalletSnapshotHandler(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	excludeBanned := false
	if raw := c.Query("excludeBanned"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.abort(c, http.StatusBadRequest, "excludeBanned must be a boolean")
			return
		}
		excludeBanned = parsed
	}

	snapshot, err := h.portfolioService.GetWalletSnapshot(ctx, c.Param("address"), c.DefaultQuery("chain", defaultChainID))
	if err != nil {
		h.fail(c, err)
		return
	}

	if h.bans != nil {
		banned, err := h.bans.BannedAddresses(ctx)
		if err != nil {
			h.logger.Warn("Token ban list unavailable, serving unfiltered snapshot", "error", err)
		} else {
			snapshot = snapshot.ApplyBanList(banned, excludeBanned)
		}
	}

	c.JSON(http.StatusOK, DataResponse{Data: snapshot})
}

// GetTokenMetadataHandler returns the metadata of one fungible token.
func (h *PortfolioHandler) GetTokenMetadataHandler(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	metadata, err := h.portfolioService.GetTokenMetadata(ctx, c.Param("address"), c.DefaultQuery("chain", defaultChainID))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, DataResponse{Data: metadata})
}

// GetNFTMetadataHandler returns the metadata of one NFT.
func (h *PortfolioHandler) GetNFTMetadataHandler(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	metadata, err := h.portfolioService.GetNFTMetadata(ctx, c.Param("contract"), c.Param("tokenId"), c.DefaultQuery("chain", defaultChainID))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, DataResponse{Data: metadata})
}

// RefreshWalletRecordHandler snapshots a wallet and stores it under the wallet record id.
func (h *PortfolioHandler) RefreshWalletRecordHandler(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abort(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Chain == "" {
		req.Chain = defaultChainID
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	snapshot, err := h.portfolioService.RefreshWalletRecord(ctx, c.Param("id"), req.Address, req.Chain)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, DataResponse{Data: snapshot})
}

// GetStoredSnapshotHandler returns the last snapshot stored for a wallet record.
func (h *PortfolioHandler) GetStoredSnapshotHandler(c *gin.Context) {
	if h.snapshots == nil {
		h.fail(c, entity.ErrPersistenceDisabled)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	walletID := c.Param("id")
	blob, storedAt, err := h.snapshots.LoadSnapshot(ctx, walletID)
	if err != nil {
		h.fail(c, err)
		return
	}

	var snapshot entity.WalletSnapshot
	if err := json.Unmarshal(blob, &snapshot); err != nil {
		h.logger.Error("Stored snapshot is not decodable", "wallet_id", walletID, "error", err)
		h.abort(c, http.StatusInternalServerError, "stored snapshot is corrupt")
		return
	}

	c.JSON(http.StatusOK, DataResponse{Data: StoredSnapshotResponse{
		WalletID: walletID,
		StoredAt: storedAt,
		Snapshot: snapshot,
	}})
}

// HealthHandler reports liveness.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *PortfolioHandler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed", "path", c.FullPath(), "status", status, "error", err)
	}
	h.abort(c, status, err.Error())
}

func (h *PortfolioHandler) abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message, RequestID: c.GetString(requestIDKey)})
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var apiErr *client.APIError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, entity.ErrUnsupportedChain), errors.Is(err, entity.ErrInvalidAddress):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrFoundationalFetch):
		return http.StatusBadGateway
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrPersistenceDisabled):
		return http.StatusServiceUnavailable
	case errors.As(err, &apiErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
