package storeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"listings-service/internal/contextkeys"
	"net/http"
	"strings"
	"time"
)

const restPath = "/rest/v1/"

// Client - клиент размещенного сервиса данных (PostgREST-совместимый протокол).
// Ретраев и пула соединений здесь нет, только то, что дает http.Client.
type Client struct {
	baseURL    string // например, "https://xyz.supabase.co"
	apiKey     string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient подменяет транспорт (используется в тестах). nil игнорируется.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout задает общий таймаут на запрос. По умолчанию таймаута нет.
// Переданный через WithHTTPClient клиент не меняется, таймаут ставится на копию.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		cp := *c.httpClient
		cp.Timeout = timeout
		c.httpClient = &cp
	}
}

// New создает клиента. Без адреса или ключа работать нельзя, поэтому ошибка сразу.
func New(baseURL, apiKey string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("store client: base URL is required")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("store client: api key is required")
	}

	c := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// From возвращает запрос, привязанный к таблице.
func (c *Client) From(table string) *Query {
	return newQuery(c, table)
}

// doRequest - внутренний хелпер для выполнения запросов
func (c *Client) doRequest(ctx context.Context, method, url string, body io.Reader, headers http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for key, values := range headers {
		req.Header[key] = values
	}

	return c.httpClient.Do(req)
}

// execute выполняет собранный запрос и декодирует ответ в dest (может быть nil).
func (c *Client) execute(ctx context.Context, q *Query, dest interface{}) error {
	var body io.Reader
	if q.body != nil {
		payload, err := json.Marshal(q.body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	url := c.baseURL + restPath + q.table
	if encoded := q.params.Encode(); encoded != "" {
		url += "?" + encoded
	}

	resp, err := c.doRequest(ctx, q.method, url, body, q.headers())
	if err != nil {
		return fmt.Errorf("request to store failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read store response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, raw)
	}

	if dest == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("failed to decode store response: %w", err)
	}
	return nil
}
