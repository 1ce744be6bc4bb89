package session

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HeaderProvider reads the bearer token already presented on an incoming
// request. This is the usual path when the service sits behind the web
// frontend: the browser holds the identity session and forwards the
// access token on every call.
type HeaderProvider struct {
	header string
}

func NewHeaderProvider(r *http.Request) *HeaderProvider {
	return &HeaderProvider{header: r.Header.Get("Authorization")}
}

func (p *HeaderProvider) GetSession(_ context.Context) (*Session, error) {
	if !strings.HasPrefix(p.header, "Bearer ") {
		return nil, nil
	}
	token := strings.TrimSpace(strings.TrimPrefix(p.header, "Bearer "))
	if token == "" {
		return nil, nil
	}
	return &Session{AccessToken: token}, nil
}

// HTTPProvider asks a remote identity service for the current session.
// A 401 or an empty body means no session, not a failure.
type HTTPProvider struct {
	baseURL    string
	httpClient *http.Client
	cookie     string
}

func NewHTTPProvider(baseURL string, timeout time.Duration, cookie string) *HTTPProvider {
	return &HTTPProvider{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cookie: cookie,
	}
}

func (p *HTTPProvider) GetSession(ctx context.Context) (*Session, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/session", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create session request: %w", err)
	}
	if p.cookie != "" {
		req.Header.Set("Cookie", p.cookie)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("session request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identity service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read session response: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(body, &sess); err != nil {
		return nil, fmt.Errorf("failed to decode session response: %w", err)
	}
	if sess.AccessToken == "" {
		return nil, nil
	}
	return &sess, nil
}

// StaticProvider returns a fixed session. Test helper and local tooling.
type StaticProvider struct {
	Token string
}

func (p *StaticProvider) GetSession(_ context.Context) (*Session, error) {
	if p.Token == "" {
		return nil, nil
	}
	return &Session{AccessToken: p.Token}, nil
}
