package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/model"
)

const (
	// DefaultTimeout bounds a single request.
	DefaultTimeout = 5 * time.Second

	// maxBody caps the payload we are willing to decode.
	maxBody = 1 << 20
)

// HTTP fetches the collection with a GET on Endpoint.
type HTTP struct {
	Endpoint string
	Timeout  time.Duration
	Client   *http.Client
	Logger   *slog.Logger
}

// NewHTTP returns an HTTP source with a default client.
func NewHTTP(endpoint string, timeout time.Duration, logger *slog.Logger) *HTTP {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &HTTP{
		Endpoint: endpoint,
		Timeout:  timeout,
		Client:   http.DefaultClient,
		Logger:   logging.Component(logger, "source"),
	}
}

// Fetch implements Source.
func (h *HTTP) Fetch(ctx context.Context) ([]model.Record, error) {
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	log := h.Logger
	if log == nil {
		log = logging.Discard()
	}
	start := time.Now()
	log.Debug("fetch started", "endpoint", h.Endpoint)

	records, err := h.fetch(ctx)
	if err != nil {
		log.Error("fetch failed", "endpoint", h.Endpoint, "duration", time.Since(start), "error", err)
		return nil, err
	}
	log.Info("fetch finished", "endpoint", h.Endpoint, "duration", time.Since(start), "count", len(records))
	return records, nil
}

func (h *HTTP) fetch(ctx context.Context) ([]model.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.Endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", h.Endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(body) > maxBody {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrMalformed, maxBody)
	}
	return Decode(body)
}

// Decode parses a JSON array of objects carrying a text field.
// A null payload is an empty collection.
func Decode(body []byte) ([]model.Record, error) {
	body = bytes.TrimSpace(body)
	if bytes.Equal(body, []byte("null")) {
		return []model.Record{}, nil
	}
	if len(body) == 0 || body[0] != '[' {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrMalformed)
	}
	var records []model.Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if records == nil {
		records = []model.Record{}
	}
	return records, nil
}
