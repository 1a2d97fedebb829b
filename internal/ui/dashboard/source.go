package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/bjhara/temp-hum-logger/internal/ui/measurement"
)

// Source supplies client ids and their measurements.
type Source interface {
	ClientIDs(ctx context.Context) ([]string, error)
	Measurements(ctx context.Context, clientID string) ([]measurement.Sample, error)
}

// HTTPSource reads GET /clients and GET /clients/{id} from a server.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource uses http.DefaultClient when client is nil. No timeout is
// applied beyond what ctx carries.
func NewHTTPSource(baseURL string, client *http.Client) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (s *HTTPSource) ClientIDs(ctx context.Context) ([]string, error) {
	var ids []string
	if err := s.getJSON(ctx, s.baseURL+"/clients", &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *HTTPSource) Measurements(ctx context.Context, clientID string) ([]measurement.Sample, error) {
	var samples []measurement.Sample
	if err := s.getJSON(ctx, s.baseURL+"/clients/"+url.PathEscape(clientID), &samples); err != nil {
		return nil, err
	}
	return samples, nil
}

func (s *HTTPSource) getJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", u, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get %s: unexpected status %d", u, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", u, err)
	}
	return nil
}
