// Package bankid is the relying party client for the BankID v6 API.
package bankid

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"valunds/config"
	"valunds/internal/domain/entity"
	"valunds/internal/domain/service"
	"valunds/internal/errors"
)

const maxErrorBodyBytes = 2048

// Client calls the BankID auth, collect and cancel endpoints over mutual TLS.
type Client struct {
	baseURL        string
	requestTimeout time.Duration
	cancelTimeout  time.Duration
	httpClient     *http.Client
	logger         *slog.Logger
}

// NewClient builds the mTLS client from the configured certificate files.
func NewClient(cfg *config.Config, logger *slog.Logger) (service.BankIDClient, error) {
	tlsConfig, err := loadTLSConfig(cfg.BankID)
	if err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if tlsConfig != nil {
		transport.TLSClientConfig = tlsConfig
	} else {
		logger.Warn("BankID client certificate not configured, requests will not be mutually authenticated")
	}

	return NewClientWithHTTP(cfg, logger, &http.Client{Transport: transport}), nil
}

// NewClientWithHTTP creates a client that sends requests through httpClient.
func NewClientWithHTTP(cfg *config.Config, logger *slog.Logger, httpClient *http.Client) *Client {
	return &Client{
		baseURL:        strings.TrimRight(cfg.BankID.APIURL, "/"),
		requestTimeout: cfg.BankID.RequestTimeout,
		cancelTimeout:  cfg.BankID.CancelTimeout,
		httpClient:     httpClient,
		logger:         logger,
	}
}

func loadTLSConfig(cfg *config.BankIDConfig) (*tls.Config, error) {
	if cfg.CertPath == "" && cfg.KeyPath == "" {
		return nil, nil
	}

	cert, err := tls.LoadX509KeyPair(cfg.CertPath, cfg.KeyPath)
	if err != nil {
		return nil, errors.Wrap(err, "load BankID client certificate")
	}

	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}

	if cfg.CACertPath != "" {
		pem, err := os.ReadFile(cfg.CACertPath)
		if err != nil {
			return nil, errors.Wrap(err, "read BankID CA certificate")
		}

		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, errors.New("BankID CA certificate contains no PEM certificates")
		}
		tlsConfig.RootCAs = pool
	}

	return tlsConfig, nil
}

type authRequest struct {
	EndUserIP      string `json:"endUserIp"`
	PersonalNumber string `json:"personalNumber,omitempty"`
}

type orderRequest struct {
	OrderRef string `json:"orderRef"`
}

type collectResponse struct {
	OrderRef       string              `json:"orderRef"`
	Status         entity.BankIDStatus `json:"status"`
	HintCode       string              `json:"hintCode"`
	CompletionData *struct {
		User entity.BankIDUser `json:"user"`
	} `json:"completionData"`
}

// Auth starts an order for the end user's address.
func (c *Client) Auth(ctx context.Context, endUserIP, personalNumber string) (*entity.BankIDOrder, error) {
	var order entity.BankIDOrder
	if err := c.post(ctx, c.requestTimeout, "auth", authRequest{EndUserIP: endUserIP, PersonalNumber: personalNumber}, &order); err != nil {
		return nil, err
	}

	if order.OrderRef == "" {
		return nil, errors.Wrap(service.ErrBankIDUnavailable, "auth response carried no orderRef")
	}

	return &order, nil
}

// Collect polls the order once.
func (c *Client) Collect(ctx context.Context, orderRef string) (*entity.BankIDCollectResult, error) {
	var resp collectResponse
	if err := c.post(ctx, c.requestTimeout, "collect", orderRequest{OrderRef: orderRef}, &resp); err != nil {
		return nil, err
	}

	result := &entity.BankIDCollectResult{
		OrderRef: resp.OrderRef,
		Status:   resp.Status,
		HintCode: resp.HintCode,
	}
	if resp.Status == entity.BankIDStatusComplete {
		if resp.CompletionData == nil || resp.CompletionData.User.PersonalNumber == "" {
			return nil, errors.Wrap(service.ErrBankIDUnavailable, "complete order carried no user")
		}
		user := resp.CompletionData.User
		result.CompletionUser = &user
	}

	return result, nil
}

// Cancel aborts the order using the shorter cancel timeout.
func (c *Client) Cancel(ctx context.Context, orderRef string) error {
	return c.post(ctx, c.cancelTimeout, "cancel", orderRequest{OrderRef: orderRef}, nil)
}

func (c *Client) post(ctx context.Context, timeout time.Duration, endpoint string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrapf(err, "encode BankID %s request", endpoint)
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrapf(err, "create BankID %s request", endpoint)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(service.ErrBankIDUnavailable, "BankID %s: %v", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.providerError(ctx, endpoint, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(service.ErrBankIDUnavailable, "decode BankID %s response: %v", endpoint, err)
	}

	return nil
}

func (c *Client) providerError(ctx context.Context, endpoint string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

	c.logger.WarnContext(ctx, "BankID request rejected",
		slog.String("endpoint", endpoint),
		slog.Int("status", resp.StatusCode),
		slog.String("body", string(body)),
	)

	if resp.StatusCode >= http.StatusInternalServerError {
		return errors.Wrapf(service.ErrBankIDUnavailable, "BankID %s returned %d", endpoint, resp.StatusCode)
	}

	return errors.Wrapf(service.ErrBankIDRejected, "BankID %s returned %d", endpoint, resp.StatusCode)
}
