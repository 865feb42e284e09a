package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-statement-list/models"
)

const statusStreamBuffer = 32

// SubscribeStatusUpdates implements [ServerAdapter]. Frames that are not
// valid JSON are logged and skipped; validating their content is left to the
// consumer.
func (h *httpServerAdapter) SubscribeStatusUpdates(ctx context.Context, companyID string) (<-chan models.StatusMessage, error) {
	streamURL, err := h.statusStreamURL(companyID)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	if token := h.Token(); token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, streamURL, header)
	if err != nil {
		if resp != nil {
			defer resp.Body.Close()
			body, _ := io.ReadAll(resp.Body)
			return nil, fmt.Errorf("%w: %w", ErrStreamHandshake, mapStatus(resp.StatusCode, string(body)))
		}
		return nil, fmt.Errorf("%w: %w", ErrStreamHandshake, err)
	}

	out := make(chan models.StatusMessage, statusStreamBuffer)
	done := make(chan struct{})

	// closing the connection unblocks ReadMessage
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
		_ = conn.Close()
	}()

	go func() {
		defer close(out)
		defer close(done)

		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				if ctx.Err() == nil {
					h.logger.Warn().Err(err).
						Str("func", "httpServerAdapter.SubscribeStatusUpdates").
						Str("company_id", companyID).
						Msg("status stream dropped")
				}
				return
			}

			var msg models.StatusMessage
			if err = json.Unmarshal(data, &msg); err != nil {
				h.logger.Debug().Err(err).
					Str("func", "httpServerAdapter.SubscribeStatusUpdates").
					Msg("malformed status frame skipped")
				continue
			}

			select {
			case out <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// statusStreamURL derives the ws:// or wss:// address of the push stream
// from the HTTP base URL.
func (h *httpServerAdapter) statusStreamURL(companyID string) (string, error) {
	u, err := url.Parse(h.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}

	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = strings.TrimRight(u.Path, "/") +
		strings.Replace(statusPath, "{companyID}", companyID, 1)

	return u.String(), nil
}
