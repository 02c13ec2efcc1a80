package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio_engine/internal/domain/entity"
	"portfolio_engine/internal/pkg/metrics"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const apiKeyHeader = "X-API-Key"

// APIError is a non-2xx answer from the data provider.
type APIError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("provider request to %s failed with status %d: %s", e.URL, e.StatusCode, e.Body)
}

// Is reports 404 answers as entity.ErrNotFound.
func (e *APIError) Is(target error) bool {
	return target == entity.ErrNotFound && e.StatusCode == fasthttp.StatusNotFound
}

func (e *APIError) retryable() bool {
	return e.StatusCode == fasthttp.StatusTooManyRequests || e.StatusCode >= fasthttp.StatusInternalServerError
}

// MoralisConfig configures the provider REST transport.
type MoralisConfig struct {
	EVMBaseURL         string
	SolanaBaseURL      string
	APIKey             string
	Timeout            time.Duration
	RateLimitPerSecond float64
	BurstLimit         int
	MaxRetries         int
	RetryBackoff       time.Duration
}

// MoralisClient is the rate-limited REST transport shared by the EVM and Solana providers.
type MoralisClient struct {
	client        *fasthttp.Client
	evmBaseURL    string
	solanaBaseURL string
	apiKey        string
	timeout       time.Duration
	limiter       *rate.Limiter
	maxRetries    int
	retryBackoff  time.Duration
	logger        *zap.Logger
}

// NewMoralisClient creates a new instance of MoralisClient.
func NewMoralisClient(cfg MoralisConfig, logger *zap.Logger) *MoralisClient {
	limit := rate.Inf
	if cfg.RateLimitPerSecond > 0 {
		limit = rate.Limit(cfg.RateLimitPerSecond)
	}
	burst := cfg.BurstLimit
	if burst <= 0 {
		burst = 1
	}
	return &MoralisClient{
		client:        &fasthttp.Client{},
		evmBaseURL:    strings.TrimRight(cfg.EVMBaseURL, "/"),
		solanaBaseURL: strings.TrimRight(cfg.SolanaBaseURL, "/"),
		apiKey:        cfg.APIKey,
		timeout:       cfg.Timeout,
		limiter:       rate.NewLimiter(limit, burst),
		maxRetries:    cfg.MaxRetries,
		retryBackoff:  cfg.RetryBackoff,
		logger:        logger.Named("MoralisClient"),
	}
}

// request describes one GET call against the provider.
type request struct {
	family    entity.ChainFamily
	operation string
	baseURL   string
	path      string
	query     [][2]string
}

func (r request) uri() string {
	if len(r.query) == 0 {
		return r.baseURL + r.path
	}
	args := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(args)
	for _, kv := range r.query {
		args.Add(kv[0], kv[1])
	}
	return r.baseURL + r.path + "?" + args.String()
}

func (c *MoralisClient) evm(operation, path string, query ...[2]string) request {
	return request{family: entity.ChainFamilyEVM, operation: operation, baseURL: c.evmBaseURL, path: path, query: query}
}

func (c *MoralisClient) solana(operation, path string, query ...[2]string) request {
	return request{family: entity.ChainFamilySolana, operation: operation, baseURL: c.solanaBaseURL, path: path, query: query}
}

// get performs the request, retrying 429 and 5xx answers, and returns the body of a 2xx answer.
func (c *MoralisClient) get(ctx context.Context, r request) ([]byte, error) {
	requestURL := r.uri()
	start := time.Now()
	defer func() {
		metrics.ProviderLatency.WithLabelValues(string(r.family), r.operation).Observe(time.Since(start).Seconds())
	}()

	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			metrics.ProviderRequests.WithLabelValues(string(r.family), r.operation, metrics.OutcomeError).Inc()
			return nil, fmt.Errorf("rate limiter: %w", err)
		}

		body, err := c.do(ctx, requestURL)
		if err == nil {
			metrics.ProviderRequests.WithLabelValues(string(r.family), r.operation, metrics.OutcomeSuccess).Inc()
			return body, nil
		}

		var apiErr *APIError
		retry := !errors.As(err, &apiErr) || apiErr.retryable()
		if !retry || attempt >= c.maxRetries || ctx.Err() != nil {
			metrics.ProviderRequests.WithLabelValues(string(r.family), r.operation, metrics.OutcomeError).Inc()
			return nil, err
		}

		backoff := c.retryBackoff * time.Duration(attempt+1)
		c.logger.Warn("Retrying provider request",
			zap.String("operation", r.operation),
			zap.String("url", requestURL),
			zap.Int("attempt", attempt+1),
			zap.Duration("backoff", backoff),
			zap.Error(err))

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			metrics.ProviderRequests.WithLabelValues(string(r.family), r.operation, metrics.OutcomeError).Inc()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

func (c *MoralisClient) do(ctx context.Context, requestURL string) ([]byte, error) {
	c.logger.Debug("Requesting provider", zap.String("url", requestURL))

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, fmt.Errorf("failed to execute request to %s: %w", requestURL, err)
		}
	} else {
		if err := c.client.DoTimeout(req, resp, c.timeout); err != nil {
			return nil, fmt.Errorf("failed to execute request to %s with default timeout: %w", requestURL, err)
		}
	}

	body := append([]byte(nil), resp.Body()...)
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode(), URL: requestURL, Body: string(body)}
	}
	return body, nil
}

// getJSON performs the request and decodes the answer into out.
func (c *MoralisClient) getJSON(ctx context.Context, r request, out any) error {
	body, err := c.get(ctx, r)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		c.logger.Error("Failed to unmarshal provider response",
			zap.String("operation", r.operation),
			zap.ByteString("responseBody", body),
			zap.Error(err))
		return fmt.Errorf("failed to unmarshal %s response: %w", r.operation, err)
	}
	return nil
}

// getList decodes a list answer that is either wrapped as {"result": [...]} or a bare array.
func getList[T any](ctx context.Context, c *MoralisClient, r request) ([]T, error) {
	body, err := c.get(ctx, r)
	if err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "[") {
		var direct []T
		if err := json.Unmarshal(body, &direct); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s response: %w", r.operation, err)
		}
		return direct, nil
	}

	var wrapper struct {
		Result []T `json:"result"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil {
		c.logger.Error("Failed to unmarshal provider list response (neither wrapped nor array)",
			zap.String("operation", r.operation),
			zap.ByteString("responseBody", body),
			zap.Error(err))
		return nil, fmt.Errorf("failed to unmarshal %s response: %w", r.operation, err)
	}
	return wrapper.Result, nil
}
