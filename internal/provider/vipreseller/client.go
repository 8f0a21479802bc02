package vipreseller

import (
	"bytes"
	"context"
	"crypto/md5" //nolint:gosec // подпись запроса задана протоколом провайдера
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avc/topup-storefront/internal/domain"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

const (
	defaultTimeout       = 15 * time.Second
	defaultStatusRetries = 2
	maxResponseSize      = 1 << 20
)

// Config параметры подключения к VIP-Reseller
type Config struct {
	BaseURL       string
	APIID         string
	APIKey        string
	Timeout       time.Duration
	StatusRetries int
}

// Client реализует domain.ProviderGateway для VIP-Reseller
type Client struct {
	baseURL      string
	apiKey       string
	sign         string
	submitClient *http.Client
	statusClient *retryablehttp.Client
	logger       *zap.Logger
}

var _ domain.ProviderGateway = (*Client)(nil)

// NewClient создает новый клиент провайдера.
// Отправка заказа выполняется без повторов: повтор мог бы оформить заказ дважды.
// Запросы статуса идемпотентны и повторяются при сетевых ошибках и 5xx.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	retries := cfg.StatusRetries
	if retries < 0 {
		retries = defaultStatusRetries
	}

	submitClient := cleanhttp.DefaultPooledClient()
	submitClient.Timeout = timeout

	statusClient := retryablehttp.NewClient()
	statusClient.HTTPClient = cleanhttp.DefaultPooledClient()
	statusClient.HTTPClient.Timeout = timeout
	statusClient.RetryMax = retries
	statusClient.RetryWaitMin = 200 * time.Millisecond
	statusClient.RetryWaitMax = 2 * time.Second
	statusClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	statusClient.Logger = newLeveledLogger(logger)

	return &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:       cfg.APIKey,
		sign:         Sign(cfg.APIID, cfg.APIKey),
		submitClient: submitClient,
		statusClient: statusClient,
		logger:       logger,
	}
}

// Configured сообщает, заданы ли адрес API и ключ; без них провайдер не примет ни один заказ
func (c *Client) Configured() bool {
	if c.apiKey == "" {
		return false
	}
	u, err := url.Parse(c.baseURL)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Sign вычисляет подпись запросов md5(apiID + apiKey)
func Sign(apiID, apiKey string) string {
	sum := md5.Sum([]byte(apiID + apiKey)) //nolint:gosec // формат подписи провайдера
	return hex.EncodeToString(sum[:])
}

type apiResponse struct {
	Result  bool            `json:"result"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type trxData struct {
	TrxID  string `json:"trxid"`
	Status string `json:"status"`
	Note   string `json:"note"`
	SN     string `json:"sn"`
}

// endpoint возвращает путь API для категории товара
func endpoint(category domain.Category) string {
	switch category {
	case domain.CategoryPrepaid:
		return "/prepaid"
	case domain.CategorySocialMedia:
		return "/social-media"
	default:
		return "/game-feature"
	}
}

// SubmitOrder отправляет одну позицию заказа провайдеру
func (c *Client) SubmitOrder(ctx context.Context, req domain.SubmitRequest) (*domain.SubmitResult, error) {
	form := c.form("order")
	form.Set("service", req.ProductCode)
	form.Set("data_no", req.Target)
	if req.Zone != "" {
		form.Set("data_zone", req.Zone)
	}
	if req.Category == domain.CategorySocialMedia {
		form.Set("quantity", strconv.Itoa(req.Quantity))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint(req.Category), strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("vipreseller: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.submitClient.Do(httpReq)
	if err != nil {
		return nil, transportError("submit", err)
	}
	defer resp.Body.Close()

	apiResp, err := decodeResponse(resp)
	if err != nil {
		return nil, err
	}

	if !apiResp.Result {
		c.logger.Info("provider rejected order",
			zap.String("reference", req.Reference),
			zap.String("service", req.ProductCode),
			zap.String("message", apiResp.Message),
		)
		return &domain.SubmitResult{Accepted: false, Message: apiResp.Message}, nil
	}

	data, err := pickData(apiResp.Data, "")
	if err != nil {
		return nil, err
	}
	if data.TrxID == "" {
		return nil, fmt.Errorf("vipreseller: accepted order without trxid: %w", domain.ErrProviderUnavailable)
	}

	return &domain.SubmitResult{
		Accepted:   true,
		ExternalID: data.TrxID,
		Status:     MapStatus(data.Status),
		Message:    apiResp.Message,
	}, nil
}

// QueryStatus запрашивает статус транзакции у провайдера
func (c *Client) QueryStatus(ctx context.Context, category domain.Category, externalID string) (*domain.ProviderStatus, error) {
	form := c.form("status")
	form.Set("trxid", externalID)

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint(category), []byte(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("vipreseller: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.statusClient.Do(httpReq)
	if err != nil {
		return nil, transportError("status", err)
	}
	defer resp.Body.Close()

	apiResp, err := decodeResponse(resp)
	if err != nil {
		return nil, err
	}
	if !apiResp.Result {
		return nil, fmt.Errorf("vipreseller: status query for %s failed: %s: %w", externalID, apiResp.Message, domain.ErrProviderUnavailable)
	}

	data, err := pickData(apiResp.Data, externalID)
	if err != nil {
		return nil, err
	}

	return &domain.ProviderStatus{
		ExternalID:   externalID,
		Status:       MapStatus(data.Status),
		RawStatus:    data.Status,
		Note:         data.Note,
		SerialNumber: data.SN,
	}, nil
}

func (c *Client) form(requestType string) url.Values {
	form := url.Values{}
	form.Set("key", c.apiKey)
	form.Set("sign", c.sign)
	form.Set("type", requestType)
	return form
}

// transportError классифицирует сетевую ошибку как таймаут или недоступность
func transportError(op string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("vipreseller: %s request timed out: %w", op, domain.ErrProviderTimeout)
	}
	return fmt.Errorf("vipreseller: %s request failed: %v: %w", op, err, domain.ErrProviderUnavailable)
}

func decodeResponse(resp *http.Response) (*apiResponse, error) {
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		seconds, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		return nil, NewRateLimitError(time.Duration(seconds) * time.Second)
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("vipreseller: unexpected status code %d: %w", resp.StatusCode, domain.ErrProviderUnavailable)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("vipreseller: failed to read response: %v: %w", err, domain.ErrProviderUnavailable)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("vipreseller: failed to decode response (status %d): %v: %w", resp.StatusCode, err, domain.ErrProviderUnavailable)
	}

	return &apiResp, nil
}

// pickData разбирает поле data, которое бывает объектом или массивом.
// Ответ без элемента с запрошенным trxid считается сбоем провайдера.
func pickData(raw json.RawMessage, trxID string) (*trxData, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, fmt.Errorf("vipreseller: response without data: %w", domain.ErrProviderUnavailable)
	}

	if raw[0] == '[' {
		var list []trxData
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("vipreseller: failed to decode data list: %v: %w", err, domain.ErrProviderUnavailable)
		}
		if len(list) == 0 {
			return nil, fmt.Errorf("vipreseller: empty data list: %w", domain.ErrProviderUnavailable)
		}
		if trxID == "" {
			return &list[0], nil
		}
		for i := range list {
			if list[i].TrxID == trxID {
				return &list[i], nil
			}
		}
		return nil, fmt.Errorf("vipreseller: trxid %s not in response: %w", trxID, domain.ErrProviderUnavailable)
	}

	var data trxData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("vipreseller: failed to decode data: %v: %w", err, domain.ErrProviderUnavailable)
	}
	if trxID != "" && data.TrxID != "" && data.TrxID != trxID {
		return nil, fmt.Errorf("vipreseller: response for trxid %s, expected %s: %w", data.TrxID, trxID, domain.ErrProviderUnavailable)
	}
	return &data, nil
}
