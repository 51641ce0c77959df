package backend

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/muhammadheryan/shop-console/constant"
	"github.com/muhammadheryan/shop-console/utils/errors"
	"github.com/muhammadheryan/shop-console/utils/logger"
	"go.uber.org/zap"
)

// Client sends JSON requests to the catalog backend. Every failure is
// returned as an errors.CustomError carrying a user-facing message.
type Client interface {
	// Do sends body (if any) to path, which is relative to the base URL and
	// may carry a query string, and decodes a 2xx JSON response into out.
	Do(ctx context.Context, method, path string, body, out interface{}) error
}

// MaxResponseBytes caps how much of a response body is read.
const MaxResponseBytes = 8 << 20

type httpClient struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) Client {
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type errorBody struct {
	Message string `json:"message"`
}

func (c *httpClient) Do(ctx context.Context, method, path string, body, out interface{}) error {
	start := time.Now()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return unknownError(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return unknownError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		cerr := transportError(err)
		logger.Warn("[backend.Do] no response",
			zap.String("method", method),
			zap.String("path", path),
			zap.Duration("duration", time.Since(start)),
			zap.String("error", err.Error()),
		)
		return cerr
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes+1))
	if err != nil {
		return unknownError(err)
	}
	if len(data) > MaxResponseBytes {
		logger.Warn("[backend.Do] response too large",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return unknownError(fmt.Errorf("response body exceeds %d bytes", MaxResponseBytes))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		cerr := responseError(resp.StatusCode, data)
		logger.Warn("[backend.Do] error response",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.Duration("duration", time.Since(start)),
			zap.String("message", cerr.Error()),
		)
		return cerr
	}

	logger.Debug("[backend.Do] ok",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return unknownError(err)
	}
	return nil
}

// responseError classifies a non-2xx response.
func responseError(status int, data []byte) errors.CustomError {
	msg := bodyMessage(data)

	switch status {
	case http.StatusBadRequest:
		return errors.NewResponseError(constant.ErrInvalidInput, status, msg)
	case http.StatusNotFound:
		return errors.NewResponseError(constant.ErrNotFound, status, "")
	case http.StatusConflict:
		return errors.NewResponseError(constant.ErrConflict, status, msg)
	case http.StatusInternalServerError:
		return errors.NewResponseError(constant.ErrServer, status, "")
	default:
		if msg == "" {
			msg = fmt.Sprintf("Erreur %d", status)
		}
		return errors.NewResponseError(constant.ErrUnclassified, status, msg)
	}
}

func bodyMessage(data []byte) string {
	var body errorBody
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return body.Message
}

// transportError classifies a failure where no response was received.
func transportError(err error) errors.CustomError {
	var netErr net.Error
	if stderrors.Is(err, context.DeadlineExceeded) || (stderrors.As(err, &netErr) && netErr.Timeout()) {
		return errors.SetCustomError(constant.ErrNetworkTimeout)
	}
	return errors.SetCustomError(constant.ErrUnreachable)
}

func unknownError(err error) errors.CustomError {
	if err == nil || err.Error() == "" {
		return errors.SetCustomError(constant.ErrUnknown)
	}
	return errors.NewCustomError(constant.ErrUnknown, err.Error())
}
