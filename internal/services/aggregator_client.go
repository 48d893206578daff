package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/dto"
)

const (
	pathTransactionsGet = "/transactions/get"
	pathRecurringGet    = "/transactions/recurring/get"

	defaultProviderPageSize = 500
	maxProviderPages        = 100
)

// ProviderAPIError is a non-2xx response from the aggregation provider
type ProviderAPIError struct {
	StatusCode   int
	ErrorType    string
	ErrorCode    string
	ErrorMessage string
}

func (e *ProviderAPIError) Error() string {
	if e.ErrorCode == "" {
		return fmt.Sprintf("provider error (%d): %s", e.StatusCode, e.ErrorMessage)
	}
	return fmt.Sprintf("provider error (%d) %s/%s: %s", e.StatusCode, e.ErrorType, e.ErrorCode, e.ErrorMessage)
}

type jsonTransport struct {
	base http.RoundTripper
}

func (t *jsonTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return t.base.RoundTrip(req)
}

// HTTPAggregatorClient talks to the aggregation provider's JSON API
type HTTPAggregatorClient struct {
	config *config.ProviderConfig
	client *http.Client
	logger *slog.Logger
}

// NewHTTPAggregatorClient creates a provider client with the configured timeout
func NewHTTPAggregatorClient(cfg *config.ProviderConfig, logger *slog.Logger) AggregatorClientInterface {
	client := &http.Client{
		Transport: &jsonTransport{base: http.DefaultTransport},
		Timeout:   cfg.Timeout,
	}

	return &HTTPAggregatorClient{
		config: cfg,
		client: client,
		logger: logger,
	}
}

// GetTransactions pages through the provider until total_transactions records were read
func (c *HTTPAggregatorClient) GetTransactions(ctx context.Context, accessToken, providerAccountID string, start, end time.Time) ([]dto.ProviderTransaction, error) {
	pageSize := c.config.PageSize
	if pageSize <= 0 {
		pageSize = defaultProviderPageSize
	}

	var all []dto.ProviderTransaction
	for page := 0; page < maxProviderPages; page++ {
		request := dto.ProviderTransactionsRequest{
			ClientID:    c.config.ClientID,
			Secret:      c.config.Secret,
			AccessToken: accessToken,
			StartDate:   start.Format(providerDateLayout),
			EndDate:     end.Format(providerDateLayout),
			Options: dto.ProviderTransactionOptions{
				AccountIDs: accountFilter(providerAccountID),
				Count:      pageSize,
				Offset:     len(all),
			},
		}

		var response dto.ProviderTransactionsResponse
		if err := c.post(ctx, pathTransactionsGet, request, &response); err != nil {
			return nil, err
		}

		all = append(all, response.Transactions...)
		if len(response.Transactions) == 0 || len(all) >= response.TotalTransactions {
			return all, nil
		}
	}

	return nil, fmt.Errorf("transactions for account %s exceeded %d pages", providerAccountID, maxProviderPages)
}

// GetRecurringStreams fetches the provider's recurring streams for one account
func (c *HTTPAggregatorClient) GetRecurringStreams(ctx context.Context, accessToken, providerAccountID string) (*dto.ProviderRecurringResponse, error) {
	request := dto.ProviderRecurringRequest{
		ClientID:    c.config.ClientID,
		Secret:      c.config.Secret,
		AccessToken: accessToken,
		AccountIDs:  accountFilter(providerAccountID),
	}

	var response dto.ProviderRecurringResponse
	if err := c.post(ctx, pathRecurringGet, request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *HTTPAggregatorClient) post(ctx context.Context, path string, body, out any) error {
	req, err := c.buildRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}

	resp, payload, err := c.do(req)
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		if err := json.Unmarshal(payload, out); err != nil {
			return fmt.Errorf("decode provider response: %w", err)
		}
		return nil
	}

	apiErr := &ProviderAPIError{StatusCode: resp.StatusCode}
	var errResp dto.ProviderErrorResponse
	if err := json.Unmarshal(payload, &errResp); err == nil && errResp.ErrorCode != "" {
		apiErr.ErrorType = errResp.ErrorType
		apiErr.ErrorCode = errResp.ErrorCode
		apiErr.ErrorMessage = errResp.ErrorMessage
	} else {
		apiErr.ErrorMessage = strings.TrimSpace(string(payload))
	}

	c.logger.Error("provider request failed",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.String("error_code", apiErr.ErrorCode),
	)

	return apiErr
}

func (c *HTTPAggregatorClient) buildRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(c.config.BaseURL, "/")+path, buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return req, nil
}

func (c *HTTPAggregatorClient) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("provider request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("error", err.Error()),
		)
		return nil, nil, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()

	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	return resp, body, nil
}

func accountFilter(providerAccountID string) []string {
	if providerAccountID == "" {
		return nil
	}
	return []string{providerAccountID}
}
